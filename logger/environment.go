package logger

import (
	"os"
	"sync"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// Environment is the process-wide console configuration shared by every
// Logger: whether the console accepts color codes, and which color each
// level is shown in. It is immutable once built.
type Environment struct {
	supportsColor bool
	colors        map[LogLevel]ConsoleColor
}

// DefaultColors returns the standard level colors.
func DefaultColors() map[LogLevel]ConsoleColor {
	return map[LogLevel]ConsoleColor{
		Trace: DarkGray,
		Debug: DarkGray,
		Info:  White,
		Warn:  Yellow,
		Error: Red,
		Alert: Magenta,
	}
}

// NewEnvironment builds an environment with an explicit color decision.
// Levels missing from colors use DefaultColors.
func NewEnvironment(supportsColor bool, colors map[LogLevel]ConsoleColor) *Environment {
	m := DefaultColors()
	for level, c := range colors {
		m[level] = c
	}
	return &Environment{supportsColor: supportsColor, colors: m}
}

// defaultEnvironment probes the console once; the result is never
// re-evaluated for the life of the process.
var defaultEnvironment = sync.OnceValue(func() *Environment {
	return NewEnvironment(probeColorSupport(os.Stdout), nil)
})

// DefaultEnvironment returns the environment for the process console.
func DefaultEnvironment() *Environment {
	return defaultEnvironment()
}

// SupportsColor reports whether color codes may be written to the console.
func (e *Environment) SupportsColor() bool {
	return e.supportsColor
}

// Color returns the console color for level, or NoColor if none is mapped.
func (e *Environment) Color(level LogLevel) ConsoleColor {
	if c, ok := e.colors[level]; ok {
		return c
	}
	return NoColor
}

// probeColorSupport checks whether color can be set on the console without
// error. On Windows colorable reads the console mode and sets it back with
// virtual terminal processing enabled, which fails on consoles with limited
// API support.
func probeColorSupport(console *os.File) (supported bool) {
	defer func() {
		if r := recover(); r != nil {
			supported = false
		}
	}()

	if console == nil {
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	fd := console.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return false
	}

	colorable.EnableColorsStdout(&supported)
	return supported
}
