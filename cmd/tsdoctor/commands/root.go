package commands

import (
	"os"

	"github.com/spf13/cobra"

	"tsdoctor/internal/app"
	"tsdoctor/internal/report"
)

var (
	dir        string
	fixTypings bool
)

func Execute() error {
	rep := report.New(os.Stdout, os.Stderr)

	root := &cobra.Command{
		Use:           "tsdoctor",
		Short:         "Checks a TypeScript package for typings misconfigurations",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := app.NewWire(app.Config{Dir: dir, Reporter: rep})
			if fixTypings {
				return w.Fixer.Run()
			}
			return w.Analyzer.Run()
		},
	}

	root.Flags().StringVar(&dir, "dir", ".", "project directory to inspect")
	root.Flags().BoolVar(&fixTypings, "fix-typings", false, "strip reference directives from generated declaration files")

	err := root.Execute()
	if err != nil {
		rep.Fatal(err.Error())
	}
	return err
}
