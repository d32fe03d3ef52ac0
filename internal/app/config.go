package app

import "tsdoctor/internal/report"

// Config holds runtime wiring options for building the app.
type Config struct {
	Dir      string           // project directory, e.g. "."
	Reporter *report.Reporter // console output sink
}
