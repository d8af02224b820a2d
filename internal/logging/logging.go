package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/lmittmann/tint"
)

// VerbosityLevel defines the logging verbosity.
type VerbosityLevel int

const (
	Verbose VerbosityLevel = iota
	Info
	Warning
	Error
	Off
)

var levelNames = map[VerbosityLevel]string{
	Verbose: "Verbose",
	Info:    "Info",
	Warning: "Warning",
	Error:   "Error",
	Off:     "Off",
}

func (v VerbosityLevel) String() string {
	if name, ok := levelNames[v]; ok {
		return name
	}
	return fmt.Sprintf("VerbosityLevel(%d)", int(v))
}

// ParseVerbosity maps a level name (case-insensitive) to a VerbosityLevel.
func ParseVerbosity(s string) (VerbosityLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "verbose", "debug":
		return Verbose, nil
	case "info":
		return Info, nil
	case "warning", "warn":
		return Warning, nil
	case "error":
		return Error, nil
	case "off":
		return Off, nil
	}
	return Info, fmt.Errorf("invalid verbosity level '%s'. Valid levels are Verbose, Info, Warning, Error, Off", s)
}

// SlogLevel returns the minimum slog level enabled at this verbosity.
func (v VerbosityLevel) SlogLevel() slog.Level {
	switch v {
	case Verbose:
		return slog.LevelDebug
	case Info:
		return slog.LevelInfo
	case Warning:
		return slog.LevelWarn
	case Error:
		return slog.LevelError
	}
	// Off: nothing we emit reaches this level.
	return slog.LevelError + 100
}

// NewLogger builds a tint-formatted slog.Logger writing to w.
func NewLogger(w io.Writer, v VerbosityLevel) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      v.SlogLevel(),
		TimeFormat: "15:04:05",
		NoColor:    true,
	}))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(tint.NewHandler(io.Discard, &tint.Options{Level: Off.SlogLevel()}))
}
