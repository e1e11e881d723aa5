package logger

import (
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// LogLevel is the severity of a log message.
type LogLevel int

const (
	// Trace is for tracing messages that are only useful when diagnosing a
	// problem. Hidden from the console unless ShowTraceInConsole is set.
	Trace LogLevel = iota
	// Debug is for troubleshooting info that may be relevant to the player.
	Debug
	// Info is for info relevant to the player.
	Info
	// Warn is for an issue the player should be aware of.
	Warn
	// Error is for a message indicating something went wrong.
	Error
	// Alert is for important information the player should see.
	Alert
)

var levelNames = [...]string{
	Trace: "Trace",
	Debug: "Debug",
	Info:  "Info",
	Warn:  "Warn",
	Error: "Error",
	Alert: "Alert",
}

// MaxLevelLength is the length of the longest level name. Every label
// returned by Label is padded to this width.
var MaxLevelLength = maxLevelLength()

// labels are computed once alongside MaxLevelLength.
var labels = buildLabels()

// AllLevels returns all supported levels in ascending severity.
func AllLevels() []LogLevel {
	return []LogLevel{Trace, Debug, Info, Warn, Error, Alert}
}

func maxLevelLength() int {
	longest := 0
	for _, level := range AllLevels() {
		if n := utf8.RuneCountInString(level.String()); n > longest {
			longest = n
		}
	}
	return longest
}

func buildLabels() map[LogLevel]string {
	m := make(map[LogLevel]string, len(levelNames))
	for _, level := range AllLevels() {
		m[level] = padLabel(strings.ToUpper(level.String()))
	}
	return m
}

func padLabel(s string) string {
	if n := utf8.RuneCountInString(s); n < MaxLevelLength {
		return s + strings.Repeat(" ", MaxLevelLength-n)
	}
	return s
}

// String returns the level name, e.g. "Warn".
func (l LogLevel) String() string {
	if l.valid() {
		return levelNames[l]
	}
	return "Unknown"
}

// Label returns the uppercase level name right-padded to MaxLevelLength.
func (l LogLevel) Label() string {
	if label, ok := labels[l]; ok {
		return label
	}
	return padLabel(strings.ToUpper(l.String()))
}

func (l LogLevel) valid() bool {
	return l >= Trace && int(l) < len(levelNames)
}

// ParseLogLevel parses a case-insensitive level name.
func ParseLogLevel(s string) (LogLevel, error) {
	name := strings.TrimSpace(s)
	for _, level := range AllLevels() {
		if strings.EqualFold(name, level.String()) {
			return level, nil
		}
	}
	// "warning" is a common alias
	if strings.EqualFold(name, "warning") {
		return Warn, nil
	}
	return Debug, errors.Wrapf(ErrInvalidArgument, "unknown log level %q", s)
}
