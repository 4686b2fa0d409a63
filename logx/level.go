package logx

import (
	"fmt"
	"strings"
)

// Level represents the severity of a log record. ErrorLevel is the most
// severe, TraceLevel the most verbose; a higher ordinal means more verbose.
type Level int

const (
	ErrorLevel Level = iota
	WarnLevel
	InfoLevel
	DebugLevel
	TraceLevel
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case ErrorLevel:
		return "ERROR"
	case WarnLevel:
		return "WARN"
	case InfoLevel:
		return "INFO"
	case DebugLevel:
		return "DEBUG"
	case TraceLevel:
		return "TRACE"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel parses a string into a Level
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ERROR":
		return ErrorLevel, nil
	case "WARN", "WARNING":
		return WarnLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "DEBUG":
		return DebugLevel, nil
	case "TRACE":
		return TraceLevel, nil
	default:
		return InfoLevel, fmt.Errorf("invalid log level: %s", s)
	}
}

// LevelFilter is a dispatch threshold: FilterOff suppresses everything,
// the other values allow records up to the corresponding verbosity.
type LevelFilter int

const (
	FilterOff LevelFilter = iota
	FilterError
	FilterWarn
	FilterInfo
	FilterDebug
	FilterTrace
)

// Filter converts a level into the filter that allows records up to and
// including that level.
func (l Level) Filter() LevelFilter {
	return LevelFilter(l) + 1
}

// Allows reports whether a record at the given level passes the filter.
func (f LevelFilter) Allows(l Level) bool {
	return f != FilterOff && l <= Level(f-1)
}
