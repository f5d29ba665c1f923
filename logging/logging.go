package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/katalvlaran/cablenet/config"
)

// ErrInvalidLevel is returned for a level logrus cannot parse.
var ErrInvalidLevel = errors.New("logging: invalid level")

// New returns a logger configured by cfg and a closer for its output.
// Closing is a no-op when logging to stderr.
func New(cfg config.LogConfig) (*logrus.Logger, io.Closer, error) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %q", ErrInvalidLevel, cfg.Level)
	}

	l := logrus.New()
	l.SetLevel(level)
	if jsonOutput(cfg) {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	if cfg.File == "" {
		l.SetOutput(os.Stderr)
		return l, nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		return nil, nil, fmt.Errorf("logging: create log directory: %w", err)
	}
	file := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}
	if cfg.Console {
		l.SetOutput(io.MultiWriter(file, os.Stderr))
	} else {
		l.SetOutput(file)
	}

	return l, file, nil
}

// jsonOutput resolves the format; "auto" means text on an interactive
// stderr and JSON everywhere else.
func jsonOutput(cfg config.LogConfig) bool {
	switch cfg.Format {
	case "json":
		return true
	case "auto":
		return cfg.File != "" || !isatty.IsTerminal(os.Stderr.Fd())
	default:
		return false
	}
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
