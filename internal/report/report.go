package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	hintStyle  = color.New(color.Faint)
	errorStyle = color.New(color.FgRed, color.Bold)
)

// Reporter writes advisory hints to out and fatal errors to errW.
type Reporter struct {
	out  io.Writer
	errW io.Writer
}

// New returns a reporter over the given writers.
func New(out, errW io.Writer) *Reporter { return &Reporter{out: out, errW: errW} }

// Hint prints a dimmed advisory followed by a blank separator line.
func (r *Reporter) Hint(format string, args ...any) {
	hintStyle.Fprintf(r.out, "hint  "+format+"\n\n", args...)
}

// Print writes a plain line to standard output.
func (r *Reporter) Print(format string, args ...any) {
	fmt.Fprintf(r.out, format+"\n", args...)
}

// Blank writes an empty separator line.
func (r *Reporter) Blank() {
	fmt.Fprintln(r.out)
}

// Fatal prints an error message to the error stream.
func (r *Reporter) Fatal(msg string) {
	errorStyle.Fprint(r.errW, "error  ")
	fmt.Fprintln(r.errW, msg)
}
