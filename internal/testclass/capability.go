package testclass

import (
	"fmt"
	"io"
)

// DefaultMessage is written by [DefaultMethod] when the capability does not
// override it.
const DefaultMessage = "Default implementation"

// Capability is the required part of the capability set.
type Capability interface {
	InterfaceMethod(param string)
}

// DefaultMethoder is implemented by capabilities that override the default
// operation.
type DefaultMethoder interface {
	DefaultMethod(w io.Writer)
}

// DefaultMethod runs the default operation for c.
//
// If c implements [DefaultMethoder] its override is called. Otherwise
// [DefaultMessage] is written to w as a single line.
func DefaultMethod(w io.Writer, c Capability) {
	if d, ok := c.(DefaultMethoder); ok {
		d.DefaultMethod(w)

		return
	}

	_, _ = fmt.Fprintln(w, DefaultMessage)
}

// Echo is a [Capability] that writes each param to W as a line.
// It does not override the default operation.
type Echo struct {
	W io.Writer
}

// InterfaceMethod writes param to e.W.
func (e Echo) InterfaceMethod(param string) {
	_, _ = fmt.Fprintln(e.W, param)
}

// Compile-time interface check.
var _ Capability = Echo{}
