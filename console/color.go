package console

import "github.com/fatih/color"

// Color identifies a terminal color. Default means "leave the terminal's
// current color alone" and is valid for both foreground and background.
type Color int

const (
	Default Color = iota
	Black
	DarkGray
	Red
	Green
	Yellow
	Blue
	BrightBlue
	DarkMagenta
	White
)

// String returns the color name, mostly for test failure messages.
func (c Color) String() string {
	switch c {
	case Default:
		return "default"
	case Black:
		return "black"
	case DarkGray:
		return "dark-gray"
	case Red:
		return "red"
	case Green:
		return "green"
	case Yellow:
		return "yellow"
	case Blue:
		return "blue"
	case BrightBlue:
		return "bright-blue"
	case DarkMagenta:
		return "dark-magenta"
	case White:
		return "white"
	default:
		return "unknown"
	}
}

// ansiForeground returns the SGR parameter for the foreground color, or ""
// for Default.
func (c Color) ansiForeground() string {
	switch c {
	case Black:
		return "30"
	case DarkGray:
		return "90"
	case Red:
		return "31"
	case Green:
		return "32"
	case Yellow:
		return "33"
	case Blue:
		return "34"
	case BrightBlue:
		return "94"
	case DarkMagenta:
		return "35"
	case White:
		return "37"
	default:
		return ""
	}
}

// ansiBackground returns the SGR parameter for the background color, or ""
// for Default.
func (c Color) ansiBackground() string {
	switch c {
	case Black:
		return "40"
	case DarkGray:
		return "100"
	case Red:
		return "41"
	case Green:
		return "42"
	case Yellow:
		return "43"
	case Blue:
		return "44"
	case BrightBlue:
		return "104"
	case DarkMagenta:
		return "45"
	case White:
		return "47"
	default:
		return ""
	}
}

// foregroundAttribute maps a Color to the fatih/color attribute used by the
// native backend. The bool is false for Default.
func (c Color) foregroundAttribute() (color.Attribute, bool) {
	switch c {
	case Black:
		return color.FgBlack, true
	case DarkGray:
		return color.FgHiBlack, true
	case Red:
		return color.FgRed, true
	case Green:
		return color.FgGreen, true
	case Yellow:
		return color.FgYellow, true
	case Blue:
		return color.FgBlue, true
	case BrightBlue:
		return color.FgHiBlue, true
	case DarkMagenta:
		return color.FgMagenta, true
	case White:
		return color.FgWhite, true
	default:
		return 0, false
	}
}

// backgroundAttribute maps a Color to the fatih/color background attribute.
// The bool is false for Default.
func (c Color) backgroundAttribute() (color.Attribute, bool) {
	switch c {
	case Black:
		return color.BgBlack, true
	case DarkGray:
		return color.BgHiBlack, true
	case Red:
		return color.BgRed, true
	case Green:
		return color.BgGreen, true
	case Yellow:
		return color.BgYellow, true
	case Blue:
		return color.BgBlue, true
	case BrightBlue:
		return color.BgHiBlue, true
	case DarkMagenta:
		return color.BgMagenta, true
	case White:
		return color.BgWhite, true
	default:
		return 0, false
	}
}
