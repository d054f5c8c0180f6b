package cli

import (
	"fmt"
	"io"
)

// IO is the stdout/stderr pair a command writes to. Warnings collected with
// [IO.Warn] are printed before the first output and again by [IO.Finish].
type IO struct {
	out      io.Writer
	errOut   io.Writer
	warnings []string
	started  bool
}

func NewIO(out, errOut io.Writer) *IO {
	return &IO{out: out, errOut: errOut}
}

// Warn records a non-fatal problem such as a failed history save, and the
// fix for it. Any warning makes [IO.Finish] return 1.
func (o *IO) Warn(issue string, action string) {
	o.warnings = append(o.warnings, fmt.Sprintf("%s: %s", issue, action))
}

// Println writes to stdout.
func (o *IO) Println(a ...any) {
	o.flushWarningsStart()
	_, _ = fmt.Fprintln(o.out, a...)
}

func (o *IO) Printf(format string, a ...any) {
	o.flushWarningsStart()
	_, _ = fmt.Fprintf(o.out, format, a...)
}

// Write lets capability implementations such as testclass.Echo print
// through IO.
func (o *IO) Write(p []byte) (int, error) {
	o.flushWarningsStart()

	return o.out.Write(p)
}

// ErrPrintln writes to stderr.
func (o *IO) ErrPrintln(a ...any) {
	_, _ = fmt.Fprintln(o.errOut, a...)
}

// Finish prints the collected warnings and returns 1 if there were any.
func (o *IO) Finish() int {
	o.flushWarningsStart()

	for _, w := range o.warnings {
		_, _ = fmt.Fprintln(o.errOut, "warning:", w)
	}

	if len(o.warnings) > 0 {
		return 1
	}

	return 0
}

func (o *IO) flushWarningsStart() {
	if !o.started && len(o.warnings) > 0 {
		for _, w := range o.warnings {
			_, _ = fmt.Fprintln(o.errOut, "warning:", w)
		}

		o.started = true
	}
}
