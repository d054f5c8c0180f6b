package cli

import (
	"context"

	"go.uber.org/zap"

	"github.com/calvinalkan/testclass/internal/testclass"
)

// DescribeCmd returns the describe command.
func DescribeCmd(a *app) *Command {
	fs := newFlagSet("describe")
	name := fs.String("name", "", "Name")
	age := fs.Int("age", 0, "Age")
	items := fs.StringSlice("items", nil, "Comma-separated items")
	active := fs.Bool("active", false, "Active flag")

	return &Command{
		Flags: fs,
		Usage: "describe [flags]",
		Short: "Accept a description and do nothing with it",
		Long:  "Pass name, age, items and the active flag to Describe. Prints nothing.",
		Exec: func(_ context.Context, _ *IO, args []string) error {
			if len(args) != 0 {
				return ErrWrongArgCount
			}

			a.log.Debug("describe",
				zap.String("name", *name),
				zap.Int("age", *age),
				zap.Strings("items", *items),
				zap.Bool("active", *active))

			testclass.New().Describe(*name, *age, *items, *active)

			return nil
		},
	}
}

// RiskyCmd returns the risky command.
func RiskyCmd(a *app) *Command {
	return &Command{
		Flags: newFlagSet("risky"),
		Usage: "risky",
		Short: "Run an operation that always fails",
		Exec: func(_ context.Context, _ *IO, args []string) error {
			if len(args) != 0 {
				return ErrWrongArgCount
			}

			a.log.Debug("risky operation")

			return testclass.New().RiskyOperation()
		},
	}
}
