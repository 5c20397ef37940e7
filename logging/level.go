package logging

import (
	"fmt"
	"strings"
)

// Level represents the severity of a log message.
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInformation
	LevelWarning
	LevelError
	LevelCritical

	// LevelNone disables logging when used as a filter threshold. Messages
	// are never logged at this level.
	LevelNone
)

// String returns a human-readable representation of the Level.
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "trace"
	case LevelDebug:
		return "debug"
	case LevelInformation:
		return "information"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	case LevelCritical:
		return "critical"
	case LevelNone:
		return "none"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// ParseLevel converts a string to a Level. Matching is case-insensitive and
// accepts the common short forms used in config files.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "information", "info":
		return LevelInformation, nil
	case "warning", "warn":
		return LevelWarning, nil
	case "error":
		return LevelError, nil
	case "critical", "fatal":
		return LevelCritical, nil
	case "none", "off":
		return LevelNone, nil
	default:
		return LevelNone, fmt.Errorf("unknown level: %s", s)
	}
}

// Filter decides whether a category logs at a given level. Providers share
// one Filter across every Logger they create.
type Filter func(category string, level Level) bool

// Formatter renders a log call's state and error into the message text.
// The logging core never invokes it for disabled levels.
type Formatter func(state any, err error) string
