// Package cliutil holds the CLI plumbing for the paypal-query tool: log
// level handling, error-to-exit-code mapping and output rendering.
package cliutil

import (
	"fmt"
	"strings"
)

// LogLevel orders the CLI's logging verbosity.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarning
	LevelError
)

var logLevelNames = map[string]LogLevel{
	"debug":   LevelDebug,
	"info":    LevelInfo,
	"warning": LevelWarning,
	"warn":    LevelWarning,
	"error":   LevelError,
	"err":     LevelError,
}

// LogLevelFromArg resolves a level name case-insensitively.
func LogLevelFromArg(arg string) (LogLevel, error) {
	if level, ok := logLevelNames[strings.ToLower(arg)]; ok {
		return level, nil
	}
	return 0, fmt.Errorf("unknown loglevel %q", arg)
}

// Enabled reports whether messages at the given level should be emitted.
func (l LogLevel) Enabled(at LogLevel) bool {
	return at >= l
}

// LogLevelChoices lists the primary level names for help text.
func LogLevelChoices() []string {
	return []string{"debug", "info", "warning", "error"}
}
