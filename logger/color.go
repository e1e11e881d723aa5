package logger

import (
	"github.com/fatih/color"
)

// ConsoleColor is one of the sixteen classic console colors.
type ConsoleColor int

const (
	// NoColor leaves the console color untouched.
	NoColor ConsoleColor = iota - 1
	Black
	DarkBlue
	DarkGreen
	DarkCyan
	DarkRed
	DarkMagenta
	DarkYellow
	Gray
	DarkGray
	Blue
	Green
	Cyan
	Red
	Magenta
	Yellow
	White
)

var consoleColorNames = map[ConsoleColor]string{
	NoColor:     "NoColor",
	Black:       "Black",
	DarkBlue:    "DarkBlue",
	DarkGreen:   "DarkGreen",
	DarkCyan:    "DarkCyan",
	DarkRed:     "DarkRed",
	DarkMagenta: "DarkMagenta",
	DarkYellow:  "DarkYellow",
	Gray:        "Gray",
	DarkGray:    "DarkGray",
	Blue:        "Blue",
	Green:       "Green",
	Cyan:        "Cyan",
	Red:         "Red",
	Magenta:     "Magenta",
	Yellow:      "Yellow",
	White:       "White",
}

// dark colors use the normal SGR range, bright colors the high-intensity one.
var foregroundAttributes = map[ConsoleColor]color.Attribute{
	Black:       color.FgBlack,
	DarkBlue:    color.FgBlue,
	DarkGreen:   color.FgGreen,
	DarkCyan:    color.FgCyan,
	DarkRed:     color.FgRed,
	DarkMagenta: color.FgMagenta,
	DarkYellow:  color.FgYellow,
	Gray:        color.FgWhite,
	DarkGray:    color.FgHiBlack,
	Blue:        color.FgHiBlue,
	Green:       color.FgHiGreen,
	Cyan:        color.FgHiCyan,
	Red:         color.FgHiRed,
	Magenta:     color.FgHiMagenta,
	Yellow:      color.FgHiYellow,
	White:       color.FgHiWhite,
}

var backgroundAttributes = map[ConsoleColor]color.Attribute{
	Black:       color.BgBlack,
	DarkBlue:    color.BgBlue,
	DarkGreen:   color.BgGreen,
	DarkCyan:    color.BgCyan,
	DarkRed:     color.BgRed,
	DarkMagenta: color.BgMagenta,
	DarkYellow:  color.BgYellow,
	Gray:        color.BgWhite,
	DarkGray:    color.BgHiBlack,
	Blue:        color.BgHiBlue,
	Green:       color.BgHiGreen,
	Cyan:        color.BgHiCyan,
	Red:         color.BgHiRed,
	Magenta:     color.BgHiMagenta,
	Yellow:      color.BgHiYellow,
	White:       color.BgHiWhite,
}

func (c ConsoleColor) String() string {
	if name, ok := consoleColorNames[c]; ok {
		return name
	}
	return "Unknown"
}

// foreground returns the SGR attribute for c as a text color. ok is false
// for NoColor and for values outside the palette.
func (c ConsoleColor) foreground() (attr color.Attribute, ok bool) {
	attr, ok = foregroundAttributes[c]
	return attr, ok
}

func (c ConsoleColor) background() (attr color.Attribute, ok bool) {
	attr, ok = backgroundAttributes[c]
	return attr, ok
}
