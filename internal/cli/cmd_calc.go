package cli

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/calvinalkan/testclass/internal/testclass"
)

// CalcCmd returns the calc command.
func CalcCmd(a *app) *Command {
	fs := newFlagSet("calc")
	useFloat := fs.Bool("float", false, "Add two floating-point operands")

	return &Command{
		Flags: fs,
		Usage: "calc [--float] <a> <b> [c]",
		Short: "Print the sum of two or three operands",
		Long: `Print the sum of the operands.

Two or three integer operands are added as integers; integer overflow wraps.
--float adds exactly two floating-point operands.
Use "--" before negative operands: calc -- -1 2`,
		Exec: func(_ context.Context, o *IO, args []string) error {
			if *useFloat {
				return execCalcFloat(a, o, args)
			}

			return execCalcInt(a, o, args)
		},
	}
}

func execCalcInt(a *app, o *IO, args []string) error {
	if len(args) != 2 && len(args) != 3 {
		return ErrWrongArgCount
	}

	ops := make([]int, len(args))

	for i, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("operand %q: %w", arg, ErrNotInteger)
		}

		ops[i] = n
	}

	a.log.Debug("calculate ints", zap.Ints("operands", ops))

	tc := testclass.New()

	var sum int
	if len(ops) == 2 {
		sum = tc.CalculateInts2(ops[0], ops[1])
	} else {
		sum = tc.CalculateInts3(ops[0], ops[1], ops[2])
	}

	o.Println(strconv.Itoa(sum))

	return nil
}

func execCalcFloat(a *app, o *IO, args []string) error {
	if len(args) == 3 {
		return ErrFloatOperands
	}

	if len(args) != 2 {
		return ErrWrongArgCount
	}

	var ops [2]float64

	for i, arg := range args {
		f, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("operand %q: %w", arg, ErrNotNumber)
		}

		ops[i] = f
	}

	a.log.Debug("calculate floats", zap.Float64s("operands", ops[:]))

	o.Println(formatFloat(testclass.New().CalculateFloats2(ops[0], ops[1])))

	return nil
}

// formatFloat prints f in its shortest form, always with a decimal point
// for finite values so float results stay distinguishable from ints.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if math.IsInf(f, 0) || math.IsNaN(f) || strings.ContainsAny(s, ".e") {
		return s
	}

	return s + ".0"
}
