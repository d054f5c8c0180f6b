package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"go.uber.org/zap"
)

const (
	replPrompt      = "testclass> "
	historyLimit    = 1000
	historyPerms    = 0o600
	historyDirPerms = 0o755
)

// lineReader is the subset of [liner.State] the REPL uses.
type lineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
	ReadHistory(r io.Reader) (int, error)
	WriteHistory(w io.Writer) (int, error)
	Close() error
}

// ReplCmd returns the repl command.
func ReplCmd(a *app) *Command {
	return &Command{
		Flags: newFlagSet("repl"),
		Usage: "repl",
		Short: "Run commands interactively",
		Long: `Read commands line by line and run them until exit, EOF or Ctrl-C.

Every command except repl is available. Errors are printed and the loop
continues. History is saved to history_file (default .testclass_history).

Builtins:
  help, ?            List commands
  exit, quit, q      Leave the loop`,
		Exec: func(ctx context.Context, o *IO, args []string) error {
			if len(args) != 0 {
				return ErrWrongArgCount
			}

			return runREPL(ctx, a, o)
		},
	}
}

func runREPL(ctx context.Context, a *app, o *IO) error {
	lr, interactive := newLineReader(a.stdin)
	defer func() { _ = lr.Close() }()

	loadHistory(a, lr)

	if interactive {
		o.Println("testclass repl - type 'help' for commands")
	}

	for ctx.Err() == nil {
		line, err := prompt(ctx, lr)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) || errors.Is(err, ctx.Err()) {
				break
			}

			saveHistory(a, o, lr)

			return fmt.Errorf("reading input: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		lr.AppendHistory(line)

		fields := strings.Fields(line)
		name := fields[0]

		switch name {
		case "exit", "quit", "q":
			saveHistory(a, o, lr)

			return nil
		case "help", "?":
			printReplHelp(o)

			continue
		case "repl":
			o.ErrPrintln("error: already in repl")

			continue
		}

		cmd, ok := commandMap(a)[name]
		if !ok {
			o.ErrPrintln("error:", fmt.Errorf("%w: %s", ErrUnknownCommand, name))

			continue
		}

		code := cmd.Run(ctx, o, fields[1:])
		a.log.Debug("repl command finished", zap.String("command", name), zap.Int("code", code))
	}

	saveHistory(a, o, lr)

	return nil
}

type promptResult struct {
	line string
	err  error
}

// prompt reads one line from lr, returning early with ctx.Err() when ctx is
// cancelled. The abandoned read finishes in the background once its reader
// yields a line, EOF or is closed.
func prompt(ctx context.Context, lr lineReader) (string, error) {
	ch := make(chan promptResult, 1)

	go func() {
		line, err := lr.Prompt(replPrompt)
		ch <- promptResult{line: line, err: err}
	}()

	select {
	case r := <-ch:
		return r.line, r.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// newLineReader uses liner for the process's own stdin and a plain line
// scanner for anything else (pipes handed in by callers, tests).
func newLineReader(stdin io.Reader) (lineReader, bool) {
	if f, ok := stdin.(*os.File); ok && f == os.Stdin {
		state := liner.NewLiner()
		state.SetCtrlCAborts(true)
		state.SetCompleter(completeCommand)

		return state, true
	}

	return newScanReader(stdin), false
}

func loadHistory(a *app, lr lineReader) {
	path := a.cfg.HistoryFileAbs
	if path == "" {
		return
	}

	exists, err := a.fsys.Exists(path)
	if err != nil || !exists {
		return
	}

	data, err := a.fsys.ReadFile(path)
	if err != nil {
		a.log.Debug("cannot read history", zap.String("path", path), zap.Error(err))

		return
	}

	n, err := lr.ReadHistory(bytes.NewReader(data))
	a.log.Debug("history loaded", zap.String("path", path), zap.Int("entries", n), zap.Error(err))
}

func saveHistory(a *app, o *IO, lr lineReader) {
	path := a.cfg.HistoryFileAbs
	if path == "" {
		return
	}

	var buf bytes.Buffer

	_, err := lr.WriteHistory(&buf)
	if err != nil {
		o.Warn("cannot serialize history", err.Error())

		return
	}

	err = a.fsys.MkdirAll(filepath.Dir(path), historyDirPerms)
	if err == nil {
		err = a.fsys.WriteFileAtomic(path, buf.Bytes(), historyPerms)
	}

	if err != nil {
		o.Warn("cannot save history to "+path, "set history_file in config to a writable path")

		return
	}

	a.log.Debug("history saved", zap.String("path", path))
}

func printReplHelp(o *IO) {
	o.Println("Commands:")

	for _, c := range commands(&app{}) {
		if c.Name() == "repl" {
			continue
		}

		o.Println(c.HelpLine())
	}

	o.Println()
	o.Println("Builtins: help, ?, exit, quit, q")
}

func completeCommand(line string) []string {
	var out []string

	for _, c := range commands(&app{}) {
		if c.Name() != "repl" && strings.HasPrefix(c.Name(), line) {
			out = append(out, c.Name())
		}
	}

	for _, b := range []string{"help", "exit", "quit"} {
		if strings.HasPrefix(b, line) {
			out = append(out, b)
		}
	}

	return out
}

// scanReader is a lineReader over a plain io.Reader. It never prints the
// prompt, so piped sessions produce only command output.
type scanReader struct {
	scanner *bufio.Scanner
	history []string
}

func newScanReader(r io.Reader) *scanReader {
	if r == nil {
		r = strings.NewReader("")
	}

	return &scanReader{scanner: bufio.NewScanner(r)}
}

func (s *scanReader) Prompt(string) (string, error) {
	if s.scanner.Scan() {
		return s.scanner.Text(), nil
	}

	if err := s.scanner.Err(); err != nil {
		return "", err
	}

	return "", io.EOF
}

func (s *scanReader) AppendHistory(item string) {
	s.history = append(s.history, item)
	if len(s.history) > historyLimit {
		s.history = s.history[len(s.history)-historyLimit:]
	}
}

func (s *scanReader) ReadHistory(r io.Reader) (int, error) {
	n := 0
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		s.AppendHistory(scanner.Text())
		n++
	}

	return n, scanner.Err()
}

func (s *scanReader) WriteHistory(w io.Writer) (int, error) {
	for i, item := range s.history {
		if _, err := fmt.Fprintln(w, item); err != nil {
			return i, err
		}
	}

	return len(s.history), nil
}

func (s *scanReader) Close() error {
	return nil
}

// Compile-time interface checks.
var (
	_ lineReader = (*liner.State)(nil)
	_ lineReader = (*scanReader)(nil)
)
