package cli

import (
	"context"
)

const helloText = "Hello World"

// HelloCmd returns the hello command. It is also what runs when no
// command is given.
func HelloCmd() *Command {
	return &Command{
		Flags: newFlagSet("hello"),
		Usage: "hello",
		Short: "Print Hello World",
		Exec: func(_ context.Context, o *IO, args []string) error {
			if len(args) != 0 {
				return ErrWrongArgCount
			}

			o.Println(helloText)

			return nil
		},
	}
}
