package cli

import (
	"context"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/calvinalkan/testclass/internal/testclass"
)

// UpperCmd returns the upper command.
func UpperCmd(a *app) *Command {
	fs := newFlagSet("upper")
	absent := fs.Bool("absent", false, "Pass an absent input instead of text")

	return &Command{
		Flags: fs,
		Usage: "upper [--absent] <text>",
		Short: "Print text in upper case",
		Long: `Print text with every character mapped to upper case.

Multiple arguments are joined with a single space. --absent passes no
input at all, which is an error.`,
		Exec: func(_ context.Context, o *IO, args []string) error {
			return execUpper(a, o, args, *absent)
		},
	}
}

func execUpper(a *app, o *IO, args []string, absent bool) error {
	var input *string

	if !absent {
		if len(args) == 0 {
			return ErrTextRequired
		}

		text := strings.Join(args, " ")
		input = &text
	} else if len(args) != 0 {
		return ErrWrongArgCount
	}

	a.log.Debug("transform to upper", zap.Bool("absent", input == nil))

	upper, err := testclass.New().TransformToUpper(input)
	if err != nil {
		return err
	}

	o.Println(upper)

	return nil
}

// ValidCmd returns the valid command.
func ValidCmd(a *app) *Command {
	return &Command{
		Flags: newFlagSet("valid"),
		Usage: "valid [text]",
		Short: "Print whether text is present and non-empty",
		Long: `Print "true" if text is present and non-empty, "false" otherwise.

Without arguments the input is absent.`,
		Exec: func(_ context.Context, o *IO, args []string) error {
			var input *string

			if len(args) > 0 {
				text := strings.Join(args, " ")
				input = &text
			}

			valid := testclass.New().IsValidInput(input)
			a.log.Debug("validate input", zap.Bool("absent", input == nil), zap.Bool("valid", valid))

			o.Println(strconv.FormatBool(valid))

			return nil
		},
	}
}

// EchoCmd returns the echo command.
func EchoCmd(a *app) *Command {
	return &Command{
		Flags: newFlagSet("echo"),
		Usage: "echo <param>",
		Short: "Call the capability's required operation",
		Long:  "Pass param to the echo capability, which prints it on its own line.",
		Exec: func(_ context.Context, o *IO, args []string) error {
			if len(args) == 0 {
				return ErrWrongArgCount
			}

			a.log.Debug("interface method", zap.Int("words", len(args)))

			testclass.Echo{W: o}.InterfaceMethod(strings.Join(args, " "))

			return nil
		},
	}
}

// DefaultCmd returns the default command.
func DefaultCmd(a *app) *Command {
	return &Command{
		Flags: newFlagSet("default"),
		Usage: "default",
		Short: "Call the capability's default operation",
		Long:  `Run the default operation of the echo capability, which prints "` + testclass.DefaultMessage + `".`,
		Exec: func(_ context.Context, o *IO, args []string) error {
			if len(args) != 0 {
				return ErrWrongArgCount
			}

			a.log.Debug("default method")

			testclass.DefaultMethod(o, testclass.Echo{W: o})

			return nil
		},
	}
}
