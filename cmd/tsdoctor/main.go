package main

import (
	"os"

	"tsdoctor/cmd/tsdoctor/commands"
	"tsdoctor/internal/domain"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(domain.ExitCode(err))
	}
}
