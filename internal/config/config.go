// Package config loads testclass configuration from JSONC files.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tailscale/hujson"
	"go.uber.org/zap/zapcore"

	"github.com/calvinalkan/testclass/internal/fs"
)

// Error variables for config loading.
var (
	ErrConfigFileNotFound = errors.New("config file not found")
	ErrConfigFileRead     = errors.New("cannot read config file")
	ErrConfigInvalid      = errors.New("invalid config file")
	ErrLogLevelInvalid    = errors.New("invalid log_level")
	ErrHistoryFileEmpty   = errors.New("history_file cannot be empty")
)

// Config holds all configuration options.
type Config struct {
	// From config files (serialized)
	LogLevel    string `json:"log_level,omitempty"`    //nolint:tagliatelle // snake_case for config file
	HistoryFile string `json:"history_file,omitempty"` //nolint:tagliatelle // snake_case for config file

	// Resolved (computed, not serialized)
	EffectiveCwd   string `json:"-"` // Absolute working directory (from -C flag or os.Getwd)
	HistoryFileAbs string `json:"-"` // Absolute path to REPL history file
	Verbose        bool   `json:"-"` // --verbose flag, forces debug logging

	// Sources tracks which config files were loaded (for diagnostics)
	Sources Sources `json:"-"`
}

// Sources tracks which config files were loaded.
type Sources struct {
	Global  string // Path to global config if loaded, empty otherwise
	Project string // Path to project config if loaded, empty otherwise
}

// FileName is the default project config file name.
const FileName = ".testclass.json"

// DefaultHistoryFile is the REPL history file used when none is configured.
const DefaultHistoryFile = ".testclass_history"

// Default returns the default configuration.
func Default() Config {
	return Config{
		HistoryFile: DefaultHistoryFile,
	}
}

// LoadInput holds the inputs for [Load].
type LoadInput struct {
	WorkDirOverride string            // -C/--cwd flag value; if empty, os.Getwd() is used
	ConfigPath      string            // -c/--config flag value
	Verbose         bool              // -v/--verbose flag value
	Env             map[string]string // environment variables
}

// Load loads configuration with the following precedence (highest wins):
// 1. Defaults
// 2. Global user config ($XDG_CONFIG_HOME/testclass/config.json or ~/.config/testclass/config.json)
// 3. Project config file at default location (.testclass.json, if exists)
// 4. Explicit config file via ConfigPath (if non-empty)
// 5. CLI overrides.
//
// All paths in the returned Config are resolved to absolute paths.
func Load(fsys fs.FS, input LoadInput) (Config, error) {
	workDir := input.WorkDirOverride
	if workDir == "" {
		var err error

		workDir, err = os.Getwd()
		if err != nil {
			return Config{}, fmt.Errorf("cannot get working directory: %w", err)
		}
	}

	if !filepath.IsAbs(workDir) {
		abs, err := filepath.Abs(workDir)
		if err != nil {
			return Config{}, fmt.Errorf("cannot resolve working directory: %w", err)
		}

		workDir = abs
	}

	cfg := Default()

	globalPath := globalConfigPath(input.Env)
	if globalPath != "" {
		globalCfg, loaded, err := loadFile(fsys, globalPath, false)
		if err != nil {
			return Config{}, err
		}

		if loaded {
			cfg.Sources.Global = globalPath
			cfg = merge(cfg, globalCfg)
		}
	}

	projectPath, mustExist := filepath.Join(workDir, FileName), false
	if input.ConfigPath != "" {
		projectPath, mustExist = input.ConfigPath, true
		if !filepath.IsAbs(projectPath) {
			projectPath = filepath.Join(workDir, projectPath)
		}
	}

	projectCfg, loaded, err := loadFile(fsys, projectPath, mustExist)
	if err != nil {
		if errors.Is(err, ErrConfigFileNotFound) {
			return Config{}, fmt.Errorf("%w: %s", ErrConfigFileNotFound, input.ConfigPath)
		}

		return Config{}, err
	}

	if loaded {
		cfg.Sources.Project = projectPath
		cfg = merge(cfg, projectCfg)
	}

	cfg.Verbose = input.Verbose

	err = validate(cfg)
	if err != nil {
		return Config{}, err
	}

	cfg.EffectiveCwd = workDir

	if filepath.IsAbs(cfg.HistoryFile) {
		cfg.HistoryFileAbs = cfg.HistoryFile
	} else {
		cfg.HistoryFileAbs = filepath.Join(workDir, cfg.HistoryFile)
	}

	return cfg, nil
}

// Level returns the zap level for cfg and whether logging is enabled at all.
// Verbose forces debug. An unset log_level disables logging.
func (c Config) Level() (zapcore.Level, bool) {
	if c.Verbose {
		return zapcore.DebugLevel, true
	}

	if c.LogLevel == "" {
		return zapcore.InfoLevel, false
	}

	// validate already rejected unparsable levels.
	lvl, _ := zapcore.ParseLevel(c.LogLevel)

	return lvl, true
}

// globalConfigPath returns the path to the global config file.
// Returns empty string if neither XDG_CONFIG_HOME nor HOME is set.
func globalConfigPath(env map[string]string) string {
	if xdgConfig := env["XDG_CONFIG_HOME"]; xdgConfig != "" {
		return filepath.Join(xdgConfig, "testclass", "config.json")
	}

	if home := env["HOME"]; home != "" {
		return filepath.Join(home, ".config", "testclass", "config.json")
	}

	return ""
}

// loadFile loads a config file. If mustExist is false, a missing file
// returns a zero config and loaded=false.
func loadFile(fsys fs.FS, path string, mustExist bool) (Config, bool, error) {
	exists, err := fsys.Exists(path)
	if err != nil {
		return Config{}, false, fmt.Errorf("%w %s: %w", ErrConfigFileRead, path, err)
	}

	if !exists {
		if mustExist {
			return Config{}, false, ErrConfigFileNotFound
		}

		return Config{}, false, nil
	}

	data, err := fsys.ReadFile(path)
	if err != nil {
		return Config{}, false, fmt.Errorf("%w %s: %w", ErrConfigFileRead, path, err)
	}

	cfg, err := parse(data)
	if err != nil {
		return Config{}, false, fmt.Errorf("%w %s: %w", ErrConfigInvalid, path, err)
	}

	return cfg, true, nil
}

func parse(data []byte) (Config, error) {
	// Standardize JSONC to JSON
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, fmt.Errorf("invalid JSONC: %w", err)
	}

	var cfg Config

	err = json.Unmarshal(standardized, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("invalid JSON: %w", err)
	}

	// An explicit "" for history_file is an error, not "unset".
	var raw map[string]any

	_ = json.Unmarshal(standardized, &raw)

	if val, exists := raw["history_file"]; exists {
		if str, ok := val.(string); ok && str == "" {
			return Config{}, ErrHistoryFileEmpty
		}
	}

	return cfg, nil
}

func merge(base, overlay Config) Config {
	if overlay.LogLevel != "" {
		base.LogLevel = overlay.LogLevel
	}

	if overlay.HistoryFile != "" {
		base.HistoryFile = overlay.HistoryFile
	}

	return base
}

func validate(cfg Config) error {
	if cfg.LogLevel != "" {
		lvl, err := zapcore.ParseLevel(cfg.LogLevel)
		if err != nil || lvl > zapcore.ErrorLevel {
			return fmt.Errorf("%w: %q (want debug, info, warn or error)", ErrLogLevelInvalid, cfg.LogLevel)
		}
	}

	if cfg.HistoryFile == "" {
		return ErrHistoryFileEmpty
	}

	return nil
}
