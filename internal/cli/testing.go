package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// CLI provides a clean interface for running CLI commands in tests.
// It manages a temp directory and environment variables.
type CLI struct {
	t   *testing.T
	Dir string
	Env map[string]string
}

// NewCLI creates a new test CLI with a temp directory.
// HOME and XDG_CONFIG_HOME point into the temp directory so a developer's
// global config never leaks into tests.
func NewCLI(t *testing.T) *CLI {
	t.Helper()

	dir := t.TempDir()

	return &CLI{
		t:   t,
		Dir: dir,
		Env: map[string]string{
			"HOME":            filepath.Join(dir, "home"),
			"XDG_CONFIG_HOME": filepath.Join(dir, "xdg"),
		},
	}
}

// Run executes the CLI with the given args and returns stdout, stderr, and exit code.
// Args should not include "testclass" or "--cwd" - those are added automatically.
func (r *CLI) Run(args ...string) (string, string, int) {
	return r.run(nil, nil, args)
}

// RunWithInput executes the CLI with stdin and returns stdout, stderr, and exit code.
// stdin must be a string or io.Reader; panics otherwise.
func (r *CLI) RunWithInput(stdin any, args ...string) (string, string, int) {
	return r.run(toReader(stdin), nil, args)
}

// RunWithSignal executes the CLI with stdin and a signal channel the test
// controls.
func (r *CLI) RunWithSignal(stdin any, sigCh <-chan os.Signal, args ...string) (string, string, int) {
	return r.run(toReader(stdin), sigCh, args)
}

func (r *CLI) run(stdin io.Reader, sigCh <-chan os.Signal, args []string) (string, string, int) {
	var outBuf, errBuf bytes.Buffer

	fullArgs := append([]string{"testclass", "--cwd", r.Dir}, args...)
	code := Run(stdin, &outBuf, &errBuf, fullArgs, r.Env, sigCh)

	return outBuf.String(), errBuf.String(), code
}

func toReader(stdin any) io.Reader {
	switch v := stdin.(type) {
	case string:
		return strings.NewReader(v)
	case io.Reader:
		return v
	default:
		panic(fmt.Sprintf("stdin must be string or io.Reader, got %T", stdin))
	}
}

// MustRun executes the CLI and fails the test if the command returns non-zero.
// Returns trimmed stdout on success.
func (r *CLI) MustRun(args ...string) string {
	r.t.Helper()

	stdout, stderr, code := r.Run(args...)
	if code != 0 {
		r.t.Fatalf("command %v failed with exit code %d\nstderr: %s", args, code, stderr)
	}

	return strings.TrimSpace(stdout)
}

// MustFail executes the CLI and fails the test if the command succeeds.
// Also fails if stdout is not empty. Returns trimmed stderr.
func (r *CLI) MustFail(args ...string) string {
	r.t.Helper()

	stdout, stderr, code := r.Run(args...)
	if code == 0 {
		r.t.Fatalf("command %v should have failed but succeeded\nstdout: %s", args, stdout)
	}

	if stdout != "" {
		r.t.Fatalf("command %v failed but stdout should be empty\nstdout: %s", args, stdout)
	}

	return strings.TrimSpace(stderr)
}

// WriteFile writes content to a file relative to the CLI directory,
// creating parent directories.
func (r *CLI) WriteFile(rel, content string) string {
	r.t.Helper()

	path := filepath.Join(r.Dir, rel)

	err := os.MkdirAll(filepath.Dir(path), 0o755)
	if err != nil {
		r.t.Fatalf("failed to create dir for %s: %v", rel, err)
	}

	err = os.WriteFile(path, []byte(content), 0o600)
	if err != nil {
		r.t.Fatalf("failed to write %s: %v", rel, err)
	}

	return path
}

// ReadFile reads a file relative to the CLI directory.
func (r *CLI) ReadFile(rel string) string {
	r.t.Helper()

	content, err := os.ReadFile(filepath.Join(r.Dir, rel))
	if err != nil {
		r.t.Fatalf("failed to read %s: %v", rel, err)
	}

	return string(content)
}

// AssertContains fails the test if content doesn't contain substr.
func AssertContains(t *testing.T, content, substr string) {
	t.Helper()

	if !strings.Contains(content, substr) {
		t.Errorf("content should contain %q\ncontent:\n%s", substr, content)
	}
}

// AssertNotContains fails the test if content contains substr.
func AssertNotContains(t *testing.T, content, substr string) {
	t.Helper()

	if strings.Contains(content, substr) {
		t.Errorf("content should NOT contain %q\ncontent:\n%s", substr, content)
	}
}
