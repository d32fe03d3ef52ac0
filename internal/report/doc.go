// Package report writes the doctor's console output: dimmed advisory hints
// and raw lines on standard output, fatal errors on standard error.
package report
