package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

var (
	stepColor    = color.New(color.FgCyan)
	successColor = color.New(color.FgGreen)
	failColor    = color.New(color.FgRed)
	warnColor    = color.New(color.FgYellow)
	funColor     = color.New(color.FgMagenta)
	debugColor   = color.New(color.Faint)
)

// Reporter prints status lines. Progress goes to Out; failures, warnings
// and debug lines go to Err.
type Reporter struct {
	Out     io.Writer
	Err     io.Writer
	Verbose bool
}

// NewReporter returns a Reporter on the given writers, defaulting to the
// process's stdout/stderr.
func NewReporter(out, err io.Writer) *Reporter {
	if out == nil {
		out = os.Stdout
	}
	if err == nil {
		err = os.Stderr
	}
	return &Reporter{Out: out, Err: err}
}

// Step announces a pipeline step before it runs.
func (r *Reporter) Step(format string, args ...any) {
	stepColor.Fprintf(r.Out, "▶ "+format+"\n", args...)
}

// Success reports a completed step or run.
func (r *Reporter) Success(format string, args ...any) {
	successColor.Fprintf(r.Out, "✓ "+format+"\n", args...)
}

// Failure reports a failed step or run.
func (r *Reporter) Failure(format string, args ...any) {
	failColor.Fprintf(r.Err, "✖ "+format+"\n", args...)
}

// Warn reports a non-fatal problem.
func (r *Reporter) Warn(format string, args ...any) {
	warnColor.Fprintf(r.Err, "⚠ "+format+"\n", args...)
}

// Hint prints a follow-up suggestion, e.g. the next command to run.
func (r *Reporter) Hint(format string, args ...any) {
	warnColor.Fprintf(r.Out, format+"\n", args...)
}

// Fun prints a light-hearted message.
func (r *Reporter) Fun(format string, args ...any) {
	funColor.Fprintf(r.Out, format+"\n", args...)
}

// Info prints an uncolored line.
func (r *Reporter) Info(format string, args ...any) {
	fmt.Fprintf(r.Out, format+"\n", args...)
}

// Debugf prints only when Verbose is set.
func (r *Reporter) Debugf(format string, args ...any) {
	if !r.Verbose {
		return
	}
	debugColor.Fprintf(r.Err, "debug: "+format+"\n", args...)
}
