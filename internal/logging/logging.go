// Package logging builds the zap logger shared by all components.
package logging

import (
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Defaults used when the configuration leaves a field empty.
const (
	DefaultLevel    = "warn"
	DefaultEncoding = "console"
)

// Config selects the level and encoding of the logger.
type Config struct {
	Level    string
	Encoding string // "console" or "json"
}

// New builds a logger writing to stderr, so command output on stdout stays clean.
func New(cfg Config) *zap.Logger {
	return NewWithWriter(cfg, os.Stderr)
}

// NewWithWriter builds a logger that writes to w.
func NewWithWriter(cfg Config, w io.Writer) *zap.Logger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	level := zapcore.WarnLevel
	if cfg.Level != "" {
		if err := level.Set(strings.ToLower(cfg.Level)); err != nil {
			// fall back to warn level if parsing fails
			level = zapcore.WarnLevel
		}
	}

	var encoder zapcore.Encoder
	switch cfg.Encoding {
	case "json":
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	default:
		encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(zapcore.Lock(zapcore.AddSync(w))), level)
	return zap.New(core)
}

// ValidLevel reports whether s names a zap level.
func ValidLevel(s string) bool {
	var level zapcore.Level
	return level.Set(strings.ToLower(s)) == nil
}
