// ============================================================================
// KisueerOS - Interactive Shell
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating shell loggers
// Created:     2026-10-15
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Component name
	Name string

	// Log level (debug, info, warn, error)
	Level string

	// Output format, "json" or "text" (default: text)
	Format string

	// Destination (default: os.Stderr)
	Output io.Writer
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  "info",
		Format: "text",
		Output: os.Stderr,
	}
}

// NewLogger creates a logger from cfg
func NewLogger(cfg LoggerConfig) *Logger {
	format, err := ParseFormat(cfg.Format)
	if err != nil {
		format = FormatText
	}

	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	return &Logger{
		name:      cfg.Name,
		level:     ParseLevel(cfg.Level),
		formatter: GetFormatter(format),
		output:    output,
		fields:    make(Fields),
		mu:        &sync.Mutex{},
		now:       time.Now,
	}
}

// New creates a text logger on stderr at info level
func New(name string) *Logger {
	return NewLogger(DefaultLoggerConfig(name))
}

// Nop returns a logger that discards everything
func Nop() *Logger {
	cfg := DefaultLoggerConfig("")
	cfg.Output = io.Discard
	cfg.Level = "error"
	return NewLogger(cfg).WithLevel(LevelError + 1)
}

// ParseLevel converts a string level to a Level, defaulting to info
func ParseLevel(level string) Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error", "fatal":
		return LevelError
	default:
		return LevelInfo
	}
}
