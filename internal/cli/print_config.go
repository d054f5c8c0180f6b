package cli

import (
	"context"

	"github.com/calvinalkan/testclass/internal/config"
)

// PrintConfigCmd returns the print-config command.
func PrintConfigCmd(cfg *config.Config) *Command {
	return &Command{
		Flags: newFlagSet("print-config"),
		Usage: "print-config",
		Short: "Show resolved configuration",
		Long:  "Display the effective configuration and which files it was loaded from.",
		Exec: func(_ context.Context, io *IO, _ []string) error {
			return execPrintConfig(io, cfg)
		},
	}
}

func execPrintConfig(io *IO, cfg *config.Config) error {
	io.Println("effective_cwd=" + cfg.EffectiveCwd)
	io.Println("history_file=" + cfg.HistoryFileAbs)

	if cfg.LogLevel != "" {
		io.Println("log_level=" + cfg.LogLevel)
	}

	if cfg.Verbose {
		io.Println("verbose=true")
	}

	io.Println("")
	io.Println("# sources")

	if cfg.Sources.Global == "" && cfg.Sources.Project == "" {
		io.Println("(defaults only)")
	} else {
		if cfg.Sources.Global != "" {
			io.Println("global_config=" + cfg.Sources.Global)
		}

		if cfg.Sources.Project != "" {
			io.Println("project_config=" + cfg.Sources.Project)
		}
	}

	return nil
}
