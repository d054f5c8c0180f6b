package cli_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/testclass/internal/cli"
)

func Test_Repl_Runs_Commands_Line_By_Line_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	input := "upper hi\nvalid\n\n# comment\nrepeat a 2\ncalc 2 3\ncalc --float 2.5 3.5\ndefault\nexit\nhello\n"

	stdout, stderr, exitCode := c.RunWithInput(input, "repl")

	require.Equal(t, 0, exitCode, "stderr: %s", stderr)
	assert.Equal(t, "HI\nfalse\na\na\n5\n6.0\nDefault implementation\n", stdout)
	assert.Empty(t, stderr)
}

func Test_Repl_Continues_After_Errors_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stdout, stderr, exitCode := c.RunWithInput("risky\nnope\nrepl\nrepeat -- a -1\nhello\n", "repl")

	require.Equal(t, 0, exitCode)
	assert.Equal(t, "Hello World\n", stdout)
	cli.AssertContains(t, stderr, "error: Something went wrong")
	cli.AssertContains(t, stderr, "unknown command: nope")
	cli.AssertContains(t, stderr, "already in repl")
	cli.AssertContains(t, stderr, "invalid argument")
}

func Test_Repl_Resets_Flags_Between_Lines_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stdout, stderr, _ := c.RunWithInput("upper --absent\nupper hi\ncalc --float 1 2\ncalc 1 2\n", "repl")

	assert.Equal(t, "HI\n3.0\n3\n", stdout)
	cli.AssertContains(t, stderr, "input is absent")
}

func Test_Repl_Help_Lists_Commands_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stdout, _, exitCode := c.RunWithInput("help\n", "repl")

	require.Equal(t, 0, exitCode)
	cli.AssertContains(t, stdout, "Commands:")
	cli.AssertContains(t, stdout, "upper [--absent] <text>")
	cli.AssertContains(t, stdout, "Builtins:")
	cli.AssertNotContains(t, stdout, "Run commands interactively")
}

func Test_Repl_Persists_History_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteFile(".testclass_history", "old line\n")

	_, stderr, exitCode := c.RunWithInput("hello\n  upper x  \n\n", "repl")
	require.Equal(t, 0, exitCode, "stderr: %s", stderr)

	assert.Equal(t, "old line\nhello\nupper x\n", c.ReadFile(".testclass_history"))

	info, err := os.Stat(filepath.Join(c.Dir, ".testclass_history"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func Test_Repl_Writes_History_To_Configured_Path_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteFile(".testclass.json", `{"history_file": "nested/dir/hist"}`)

	_, _, exitCode := c.RunWithInput("valid x\nquit\n", "repl")
	require.Equal(t, 0, exitCode)

	assert.Equal(t, "valid x\nquit\n", c.ReadFile(filepath.Join("nested", "dir", "hist")))
}

func Test_Repl_Warns_When_History_Not_Writable(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteFile("blocker", "regular file")
	c.WriteFile(".testclass.json", `{"history_file": "blocker/hist"}`)

	stdout, stderr, exitCode := c.RunWithInput("hello\n", "repl")

	assert.Equal(t, 1, exitCode)
	assert.Equal(t, "Hello World\n", stdout)
	cli.AssertContains(t, stderr, "warning: cannot save history")
}

func Test_Repl_Rejects_Arguments_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stderr := c.MustFail("repl", "extra")
	cli.AssertContains(t, stderr, "wrong number of arguments")
}

func Test_Repl_Returns_Nothing_When_Stdin_Missing(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stdout, stderr, exitCode := c.Run("repl")

	require.Equal(t, 0, exitCode, "stderr: %s", stderr)
	assert.Empty(t, stdout)
}

func Test_Repl_Stops_With_Exit_130_When_Interrupted(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	// The pipe never reaches EOF, so the REPL blocks waiting for the next line.
	pr, pw := io.Pipe()
	defer func() { _ = pw.Close() }()

	sigCh := make(chan os.Signal)

	go func() {
		_, _ = pw.Write([]byte("hello\n"))
		sigCh <- os.Interrupt
	}()

	done := make(chan int, 1)

	go func() {
		_, _, exitCode := c.RunWithSignal(pr, sigCh, "repl")
		done <- exitCode
	}()

	select {
	case exitCode := <-done:
		assert.Equal(t, 130, exitCode)
	case <-time.After(5 * time.Second):
		t.Fatal("repl did not stop after interrupt")
	}
}

func Test_Repl_Stops_With_Exit_130_When_Interrupted_Before_Input(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	pr, pw := io.Pipe()
	defer func() { _ = pw.Close() }()

	sigCh := make(chan os.Signal, 1)
	sigCh <- os.Interrupt

	stdout, _, exitCode := c.RunWithSignal(pr, sigCh, "repl")

	assert.Equal(t, 130, exitCode)
	assert.Empty(t, stdout)
}
