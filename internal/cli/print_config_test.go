package cli_test

import (
	"path/filepath"
	"testing"

	"github.com/calvinalkan/testclass/internal/cli"
)

func Test_Print_Config_Defaults_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stdout := c.MustRun("print-config")

	cli.AssertContains(t, stdout, "effective_cwd="+c.Dir)
	cli.AssertContains(t, stdout, "history_file="+filepath.Join(c.Dir, ".testclass_history"))
	cli.AssertContains(t, stdout, "(defaults only)")
	cli.AssertNotContains(t, stdout, "log_level=")
}

func Test_Print_Config_From_Project_File_With_Comments_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	path := c.WriteFile(".testclass.json", `{
		// quieter than the global default
		"log_level": "error",
		"history_file": "state/hist",
	}`)

	stdout := c.MustRun("print-config")
	cli.AssertContains(t, stdout, "log_level=error")
	cli.AssertContains(t, stdout, "history_file="+filepath.Join(c.Dir, "state", "hist"))
	cli.AssertContains(t, stdout, "project_config="+path)
}

func Test_Print_Config_From_Global_File_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	path := c.WriteFile(filepath.Join("xdg", "testclass", "config.json"), `{"log_level": "error"}`)

	stdout := c.MustRun("print-config")
	cli.AssertContains(t, stdout, "log_level=error")
	cli.AssertContains(t, stdout, "global_config="+path)
}

func Test_Print_Config_Explicit_Config_Flag_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteFile(".testclass.json", `{"history_file": "from-project"}`)
	c.WriteFile("custom.json", `{"history_file": "from-custom"}`)

	stdout := c.MustRun("-c", "custom.json", "print-config")
	cli.AssertContains(t, stdout, "history_file="+filepath.Join(c.Dir, "from-custom"))

	stdout = c.MustRun("--config=custom.json", "print-config")
	cli.AssertContains(t, stdout, "history_file="+filepath.Join(c.Dir, "from-custom"))
}

func Test_Print_Config_Shows_Verbose_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stdout := c.MustRun("--verbose", "print-config")
	cli.AssertContains(t, stdout, "verbose=true")
}

func Test_Config_Errors_When_Invoked(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name    string
		file    string
		content string
		args    []string
		wantErr string
	}{
		{name: "explicit not found", args: []string{"-c", "nonexistent.json"}, wantErr: "config file not found"},
		{name: "invalid json", file: ".testclass.json", content: `{invalid json}`, wantErr: "invalid config file"},
		{name: "unknown level", file: ".testclass.json", content: `{"log_level": "loud"}`, wantErr: "invalid log_level"},
		{name: "empty history file", file: ".testclass.json", content: `{"history_file": ""}`, wantErr: "history_file cannot be empty"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := cli.NewCLI(t)
			if tt.file != "" {
				c.WriteFile(tt.file, tt.content)
			}

			stderr := c.MustFail(append(tt.args, "print-config")...)
			cli.AssertContains(t, stderr, tt.wantErr)
		})
	}
}
