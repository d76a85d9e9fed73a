// Package logging builds the zap loggers used by the rical binaries.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func encoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "ts"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg
}

// New creates a logger writing to stderr. format is "json" or "console".
func New(format, component string) (*zap.Logger, error) {
	var enc zapcore.Encoder
	switch format {
	case "json":
		enc = zapcore.NewJSONEncoder(encoderConfig())
	case "", "console":
		enc = zapcore.NewConsoleEncoder(encoderConfig())
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
	core := zapcore.NewCore(enc, zapcore.AddSync(os.Stderr), zapcore.InfoLevel)
	return zap.New(core, zap.Fields(
		zap.String("component", component),
		zap.Int("pid", os.Getpid()),
	)), nil
}

// NewFile creates a JSON logger appending to path. The terminal page uses
// this because stderr is owned by the alternate screen. An empty path
// returns a no-op logger. The returned close func syncs the logger and
// closes the file.
func NewFile(path, component string) (*zap.Logger, func() error, error) {
	if path == "" {
		return zap.NewNop(), func() error { return nil }, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, nil, err
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return nil, nil, err
	}
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig()), zapcore.AddSync(file), zapcore.InfoLevel)
	logger := zap.New(core, zap.Fields(
		zap.String("component", component),
		zap.Int("pid", os.Getpid()),
	))
	closeFn := func() error {
		_ = logger.Sync()
		return file.Close()
	}
	return logger, closeFn, nil
}
