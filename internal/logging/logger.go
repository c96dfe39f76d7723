package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
}

// FileConfig controls where file logs go.
type FileConfig struct {
	Enabled       bool
	LogDir        string
	Rotate        RotateOptions
	WriteToStderr bool // Also log to stderr (off while the TUI owns the screen)
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// New creates a new zerolog logger writing to stderr
func New(cfg Config) zerolog.Logger {
	return newLogger(cfg, os.Stderr)
}

func newLogger(cfg Config, out io.Writer) zerolog.Logger {
	output := out
	if cfg.Format == "console" {
		output = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: cfg.TimeFormat,
			NoColor:    out != os.Stderr,
		}
	}

	return zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// NewFromEnv creates a logger based on environment variables
// MOSAIC_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// MOSAIC_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	cfg := DefaultConfig()

	if level := os.Getenv("MOSAIC_LOG_LEVEL"); level != "" {
		cfg.Level = ParseLevel(level)
	}

	if format := os.Getenv("MOSAIC_LOG_FORMAT"); format != "" {
		switch format {
		case "json", "console":
			cfg.Format = format
		}
	}

	return New(cfg)
}

// NewWithFile creates a logger that writes to a RotatingFile in
// fileCfg.LogDir, to stderr, to both or to nowhere. The returned cleanup
// closes the log file.
func NewWithFile(cfg Config, fileCfg FileConfig) (zerolog.Logger, func(), error) {
	var sinks []io.Writer
	cleanup := func() {}

	if fileCfg.Enabled {
		file, err := openLogFile(fileCfg)
		if err != nil {
			return newLogger(cfg, io.Discard), cleanup, err
		}
		sinks = append(sinks, file)
		cleanup = func() { _ = file.Close() }
	}
	if fileCfg.WriteToStderr {
		sinks = append(sinks, os.Stderr)
	}

	switch len(sinks) {
	case 0:
		return newLogger(cfg, io.Discard), cleanup, nil
	case 1:
		return newLogger(cfg, sinks[0]), cleanup, nil
	default:
		return newLogger(cfg, io.MultiWriter(sinks...)), cleanup, nil
	}
}

func openLogFile(fileCfg FileConfig) (*RotatingFile, error) {
	if err := os.MkdirAll(fileCfg.LogDir, logDirPerm); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	return NewRotatingFile(fileCfg.LogDir, fileCfg.Rotate)
}
