package logger

import (
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
)

// Console writes log lines to the process console.
//
// The background color is console state: once set it applies to every
// colored line written afterwards until ResetBackground is called.
type Console struct {
	mu         sync.Mutex
	out        io.Writer
	background ConsoleColor
}

var (
	stdConsole     *Console
	stdConsoleOnce sync.Once
)

// NewConsole returns a console that writes to out.
func NewConsole(out io.Writer) *Console {
	if out == nil {
		out = io.Discard
	}
	return &Console{out: out, background: NoColor}
}

// StdConsole returns the shared console for standard output. On Windows the
// writer translates ANSI sequences into console API calls.
func StdConsole() *Console {
	stdConsoleOnce.Do(func() {
		stdConsole = NewConsole(colorable.NewColorableStdout())
	})
	return stdConsole
}

// WriteLine writes text followed by a newline. When colored is set, the
// foreground and current background are applied before the text and reset
// afterwards. Colors outside the palette are skipped.
//
// The whole sequence runs under the console lock so concurrent writers
// can't leave the console in the wrong color.
func (c *Console) WriteLine(text string, fg ConsoleColor, colored bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !colored {
		_, err := io.WriteString(c.out, text+"\n")
		return err
	}

	var attrs []color.Attribute
	if attr, ok := fg.foreground(); ok {
		attrs = append(attrs, attr)
	}
	if attr, ok := c.background.background(); ok {
		attrs = append(attrs, attr)
	}
	if len(attrs) == 0 {
		_, err := io.WriteString(c.out, text+"\n")
		return err
	}

	pen := color.New(attrs...)
	// the environment has already decided color is supported; don't let
	// fatih/color second-guess it from os.Stdout
	pen.EnableColor()
	_, err := pen.Fprintln(c.out, text)
	return err
}

// SetBackground changes the background used for subsequent colored lines.
func (c *Console) SetBackground(bg ConsoleColor) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.background = bg
}

// Background returns the current background color.
func (c *Console) Background() ConsoleColor {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.background
}

// ResetBackground restores the default background.
func (c *Console) ResetBackground() {
	c.SetBackground(NoColor)
}
