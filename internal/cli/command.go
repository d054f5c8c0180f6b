package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	flag "github.com/spf13/pflag"
)

// Command is one testclass subcommand. Its name is the first word of Usage.
type Command struct {
	Flags *flag.FlagSet
	Usage string // e.g. "calc [--float] <a> <b> [c]"
	Short string // shown in the command list
	Long  string // shown by --help; Short when empty
	Exec  func(ctx context.Context, o *IO, args []string) error
}

// Name returns the first word of Usage.
func (c *Command) Name() string {
	name, _, _ := strings.Cut(c.Usage, " ")

	return name
}

// HelpLine formats the command for usage and the repl help listing.
func (c *Command) HelpLine() string {
	return fmt.Sprintf("  %-30s %s", c.Usage, c.Short)
}

// PrintHelp prints usage, description and flags.
func (c *Command) PrintHelp(o *IO) {
	o.Println("Usage: testclass", c.Usage)
	o.Println()

	desc := c.Long
	if desc == "" {
		desc = c.Short
	}

	o.Println(desc)

	if c.Flags != nil && c.Flags.HasFlags() {
		o.Println()
		o.Println("Flags:")
		o.Printf("%s", c.Flags.FlagUsages())
	}
}

// Run parses args, runs Exec and returns the exit code. Errors are printed
// to stderr as "error: ...".
func (c *Command) Run(ctx context.Context, o *IO, args []string) int {
	c.Flags.SetOutput(&strings.Builder{}) // discard pflag output

	err := c.Flags.Parse(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			c.PrintHelp(o)

			return 0
		}

		o.ErrPrintln("error:", err)
		o.ErrPrintln()
		c.PrintHelp(o)

		return 1
	}

	err = c.Exec(ctx, o, c.Flags.Args())
	if err != nil {
		o.ErrPrintln("error:", err)

		return 1
	}

	return 0
}

// newFlagSet returns a FlagSet configured the way every command expects.
func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SortFlags = false

	return fs
}
