// ============================================================================
// Pascal - Rechenservice
// ============================================================================
//
// Package:     logging
// Description: Factory functions and process-wide logger defaults
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"
	"sync"

	mdwlog "github.com/msto63/pascal/foundation/core/log"
)

var (
	defaultsMu     sync.RWMutex
	defaultLevel   = "info"
	defaultFormat  = "json"
	defaultOutputs []io.Writer
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Service name
	ServiceName string

	// Log level (trace, debug, info, warn, error)
	Level string

	// Output format: "json" or "text" (default: json)
	Format string

	// Output destination, stdout if nil
	Output io.Writer

	// Additional outputs besides Output
	AdditionalOutputs []io.Writer
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(serviceName string) LoggerConfig {
	return LoggerConfig{
		ServiceName: serviceName,
		Level:       "info",
		Format:      "json",
	}
}

// Configure sets level and format used by loggers created afterwards with New.
// Loggers created before the call keep their settings.
func Configure(level, format string, outputs ...io.Writer) {
	defaultsMu.Lock()
	defer defaultsMu.Unlock()

	if level != "" {
		defaultLevel = level
	}
	if format != "" {
		defaultFormat = format
	}
	defaultOutputs = outputs
}

func defaultConfig(name string) LoggerConfig {
	defaultsMu.RLock()
	defer defaultsMu.RUnlock()

	cfg := DefaultLoggerConfig(name)
	cfg.Level = defaultLevel
	cfg.Format = defaultFormat
	if len(defaultOutputs) > 0 {
		cfg.Output = defaultOutputs[0]
		cfg.AdditionalOutputs = defaultOutputs[1:]
	}
	return cfg
}

// NewLogger creates a new Foundation logger from cfg. Caller info skips the
// key-value wrapper frame of Logger.
func NewLogger(cfg LoggerConfig) *mdwlog.Logger {
	level, err := mdwlog.ParseLevel(cfg.Level)
	if err != nil {
		level = mdwlog.LevelInfo
	}

	format, err := mdwlog.ParseFormat(cfg.Format)
	if err != nil {
		format = mdwlog.FormatJSON
	}

	var output io.Writer = os.Stdout
	if cfg.Output != nil {
		output = cfg.Output
	}
	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	return mdwlog.NewWithConfig(mdwlog.Config{
		Level:            level,
		Format:           format,
		Output:           output,
		Name:             cfg.ServiceName,
		EnableCaller:     true,
		CallerSkipFrames: 1,
	})
}
