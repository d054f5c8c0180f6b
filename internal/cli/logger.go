package cli

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/calvinalkan/testclass/internal/config"
)

// newLogger builds a console logger writing to w at the configured level.
// Returns a no-op logger when logging is not configured.
func newLogger(cfg config.Config, w io.Writer) *zap.Logger {
	lvl, enabled := cfg.Level()
	if !enabled {
		return zap.NewNop()
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = "" // keep lines stable for diffing and tests

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), lvl)

	return zap.New(core)
}
