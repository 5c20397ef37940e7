package logging

import (
	"fmt"
	"strings"
	"time"

	"github.com/isabella232/dotnet-do/activity"
	"github.com/isabella232/dotnet-do/console"
	"github.com/isabella232/dotnet-do/metrics"
)

const (
	categoryWidth = 9
	statusWidth   = 4
)

// marker distinguishes scope-opening, scope-closing, and plain log lines in
// the category column.
type marker int

const (
	markNone marker = iota
	markOpen
	markClose
)

func (m marker) String() string {
	switch m {
	case markOpen:
		return ">"
	case markClose:
		return "<"
	default:
		return " "
	}
}

// Logger renders leveled messages and activity scopes for one category. It
// owns its console backend exclusively and lives for the process duration.
type Logger struct {
	category string
	filter   Filter
	console  console.Console
	offset   func() time.Duration
	recorder *metrics.Recorder
}

// Enabled reports whether the category logs at the given level. It has no
// side effects.
func (l *Logger) Enabled(level Level) bool {
	return l.filter(l.category, level)
}

// Log renders a message at the given level. Disabled levels are dropped
// before any formatting work: the formatter is never invoked. A nil
// formatter falls back to fmt.Sprint of the state. Formatter panics are not
// recovered; a failing formatter is a caller bug.
func (l *Logger) Log(level Level, state any, err error, format Formatter) {
	if !l.Enabled(level) {
		return
	}
	if format == nil {
		format = func(state any, _ error) string {
			return fmt.Sprint(state)
		}
	}
	label, categoryColor, messageColor := levelDisplay(level)
	l.writeLine(label, "", format(state, err), categoryColor, messageColor, markNone)
	l.recorder.LineWritten(l.category, level.String())
}

// Tracef logs a formatted message at trace level.
func (l *Logger) Tracef(format string, args ...any) {
	l.logf(LevelTrace, format, args...)
}

// Debugf logs a formatted message at debug level.
func (l *Logger) Debugf(format string, args ...any) {
	l.logf(LevelDebug, format, args...)
}

// Infof logs a formatted message at information level.
func (l *Logger) Infof(format string, args ...any) {
	l.logf(LevelInformation, format, args...)
}

// Warnf logs a formatted message at warning level.
func (l *Logger) Warnf(format string, args ...any) {
	l.logf(LevelWarning, format, args...)
}

// Errorf logs a formatted message at error level.
func (l *Logger) Errorf(format string, args ...any) {
	l.logf(LevelError, format, args...)
}

func (l *Logger) logf(level Level, format string, args ...any) {
	if !l.Enabled(level) {
		return
	}
	label, categoryColor, messageColor := levelDisplay(level)
	l.writeLine(label, "", fmt.Sprintf(format, args...), categoryColor, messageColor, markNone)
	l.recorder.LineWritten(l.category, level.String())
}

// BeginActivity renders the start line for act and returns a Scope whose
// Close renders the matching end line. The logger reads act once at Close
// and does not retain it; the caller sets Success and Conclusion before
// closing. Close fires exactly once however many times it is called, so it
// is safe to defer unconditionally.
func (l *Logger) BeginActivity(act *activity.Activity) *Scope {
	l.writeLine(act.Category, "", act.Name, console.Green, console.White, markOpen)
	return newScope(func() {
		status := "OK"
		categoryColor, messageColor := console.Green, console.White
		if !act.Success {
			status = "FAIL"
			categoryColor, messageColor = console.Red, console.Red
		}
		message := act.Name
		if act.Conclusion != "" {
			message += " " + act.Conclusion
		}
		l.writeLine(act.Category, status, message, categoryColor, messageColor, markClose)
		l.recorder.ActivityFinished(act.Category, act.Success)
	})
}

// BeginScope opens a generic scope around state's string representation,
// rendered with START and STOP category labels. Use BeginActivity when the
// unit of work has a category and an outcome.
func (l *Logger) BeginScope(state any) *Scope {
	message := fmt.Sprint(state)
	l.writeLine("START", "", message, console.White, console.White, markOpen)
	return newScope(func() {
		l.writeLine("STOP", "", message, console.White, console.White, markClose)
	})
}

// levelDisplay maps a level to its column label and color pair. Levels
// outside the known set fall back to a generic white LOG rendering.
func levelDisplay(level Level) (label string, categoryColor, messageColor console.Color) {
	switch level {
	case LevelTrace:
		return "TRACE", console.DarkGray, console.DarkGray
	case LevelDebug:
		return "DEBUG", console.DarkMagenta, console.DarkMagenta
	case LevelInformation:
		return "INFO", console.Green, console.White
	case LevelWarning:
		return "WARNING", console.Yellow, console.White
	case LevelError:
		return "ERROR", console.Red, console.White
	case LevelCritical:
		return "FATAL", console.Red, console.White
	default:
		return "LOG", console.White, console.White
	}
}

// writeLine renders one log event as four colored fragments per message
// line: the marked category column, the elapsed time, the centered status
// column, and the message text, flushing after each rendered line. White
// messages get the bright blue category column and yellow status column;
// any other message color paints all three text columns.
func (l *Logger) writeLine(category, status, message string, categoryColor, messageColor console.Color, mark marker) {
	columnColor := categoryColor
	statusColor := messageColor
	if messageColor == console.White {
		columnColor = console.BrightBlue
		statusColor = console.Yellow
	}
	elapsed := formatOffset(l.offset())

	for _, line := range splitLines(message) {
		l.console.Write("["+PadRight(category, categoryWidth)+mark.String()+"] ", columnColor, console.Default)
		l.console.Write("["+elapsed+"] ", console.Default, console.Default)
		l.console.Write("["+CenterPad(status, statusWidth)+"] ", statusColor, console.Default)
		l.console.WriteLine(line, messageColor, console.Default)
		l.console.Flush()
	}
}

// splitLines breaks a message on line breaks, tolerating both \n and \r\n.
func splitLines(message string) []string {
	lines := strings.Split(message, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
