package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/calvinalkan/testclass/internal/config"
	"github.com/calvinalkan/testclass/internal/fs"
)

const (
	minArgs = 2

	// exitInterrupted is returned when a signal cancelled the command.
	exitInterrupted = 130
)

// app carries what commands need once global flags and config are resolved.
type app struct {
	cfg   config.Config
	log   *zap.Logger
	fsys  fs.FS
	stdin io.Reader
}

// Run is the main entry point. Returns exit code.
//
// Without a command it prints "Hello World". sigCh may be nil; a value
// received on it cancels the running command.
func Run(stdin io.Reader, out io.Writer, errOut io.Writer, args []string, env map[string]string, sigCh <-chan os.Signal) int {
	if len(args) < minArgs {
		fprintln(out, helloText)

		return 0
	}

	globalFlags := newGlobalFlagSet()
	flagHelp := globalFlags.BoolP("help", "h", false, "Show help")
	flagCwd := globalFlags.StringP("cwd", "C", "", "Run as if started in `dir`")
	flagConfig := globalFlags.StringP("config", "c", "", "Use specified config `file`")
	flagVerbose := globalFlags.BoolP("verbose", "v", false, "Log debug output to stderr")

	err := globalFlags.Parse(args[1:])
	if err != nil {
		fprintln(errOut, "error:", err)
		fprintln(errOut)
		printUsage(errOut, globalFlags)

		return 1
	}

	if *flagHelp {
		printUsage(out, globalFlags)

		return 0
	}

	fsys := fs.NewReal()

	cfg, err := config.Load(fsys, config.LoadInput{
		WorkDirOverride: *flagCwd,
		ConfigPath:      *flagConfig,
		Verbose:         *flagVerbose,
		Env:             env,
	})
	if err != nil {
		fprintln(errOut, "error:", err)

		return 1
	}

	logger := newLogger(cfg, errOut)
	defer func() { _ = logger.Sync() }()

	a := &app{cfg: cfg, log: logger, fsys: fsys, stdin: stdin}

	commandArgs := globalFlags.Args()
	if len(commandArgs) == 0 {
		commandArgs = []string{"hello"}
	}

	name := commandArgs[0]

	cmd, ok := commandMap(a)[name]
	if !ok {
		fprintln(errOut, "error:", fmt.Errorf("%w: %s", ErrUnknownCommand, name))
		fprintln(errOut)
		printUsage(errOut, globalFlags)

		return 1
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var interrupted atomic.Bool

	stop := watchSignals(sigCh, func() {
		interrupted.Store(true)
		logger.Debug("interrupted", zap.String("command", name))
		cancel()
	})
	defer stop()

	logger.Debug("running command", zap.String("command", name), zap.Strings("args", commandArgs[1:]))

	o := NewIO(out, errOut)

	code := cmd.Run(ctx, o, commandArgs[1:])
	if interrupted.Load() {
		return exitInterrupted
	}

	if code != 0 {
		return code
	}

	return o.Finish()
}

// watchSignals calls onSignal once if a value arrives on sigCh.
// The returned stop func ends the watcher and waits for it to exit.
func watchSignals(sigCh <-chan os.Signal, onSignal func()) (stop func()) {
	done := make(chan struct{})

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		select {
		case <-sigCh:
			onSignal()
		case <-done:
		}
	}()

	return func() {
		close(done)
		wg.Wait()
	}
}

func newGlobalFlagSet() *flag.FlagSet {
	globalFlags := flag.NewFlagSet("testclass", flag.ContinueOnError)
	globalFlags.SetInterspersed(false)
	globalFlags.SortFlags = false
	globalFlags.SetOutput(&strings.Builder{}) // discard pflag output
	globalFlags.Usage = func() {}

	return globalFlags
}

// commands returns a fresh set of commands. Flag values live in each
// command's FlagSet, so callers that run more than one command (the REPL)
// ask for a new set every time.
func commands(a *app) []*Command {
	return []*Command{
		HelloCmd(),
		UpperCmd(a),
		ValidCmd(a),
		RepeatCmd(a),
		CalcCmd(a),
		DescribeCmd(a),
		RiskyCmd(a),
		DefaultCmd(a),
		EchoCmd(a),
		PrintConfigCmd(&a.cfg),
		ReplCmd(a),
	}
}

func commandMap(a *app) map[string]*Command {
	cmds := commands(a)
	m := make(map[string]*Command, len(cmds))

	for _, c := range cmds {
		m[c.Name()] = c
	}

	return m
}

func fprintln(w io.Writer, a ...any) {
	_, _ = fmt.Fprintln(w, a...)
}

func printUsage(w io.Writer, globalFlags *flag.FlagSet) {
	fprintln(w, `testclass - string, list and arithmetic helpers

Usage: testclass [flags] [command] [args]

Prints "Hello World" when no command is given.

Global flags:`)
	_, _ = io.WriteString(w, globalFlags.FlagUsages())
	fprintln(w)
	fprintln(w, "Commands:")

	for _, c := range commands(&app{}) {
		fprintln(w, c.HelpLine())
	}
}
