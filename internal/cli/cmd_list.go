package cli

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/calvinalkan/testclass/internal/testclass"
)

// RepeatCmd returns the repeat command.
func RepeatCmd(a *app) *Command {
	return &Command{
		Flags: newFlagSet("repeat"),
		Usage: "repeat <item> <count>",
		Short: "Print item count times, one per line",
		Long: `Build a list holding item count times and print one element per line.

A count of 0 prints nothing. A negative count, or one above 16777216,
is an invalid argument.
Use "--" before a negative count: repeat -- x -1`,
		Exec: func(_ context.Context, o *IO, args []string) error {
			if len(args) != 2 {
				return ErrWrongArgCount
			}

			item := args[0]

			count, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("count %q: %w", args[1], ErrNotInteger)
			}

			a.log.Debug("build repeated list", zap.String("item", item), zap.Int("count", count))

			list, err := testclass.BuildRepeatedList(item, count)
			if err != nil {
				return err
			}

			for _, v := range list {
				o.Println(v)
			}

			return nil
		},
	}
}
