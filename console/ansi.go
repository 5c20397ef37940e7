package console

// ANSIConsole renders colored fragments as SGR escape sequences on a raw
// output stream. Fragments with Default foreground and background are
// written without any escapes.
type ANSIConsole struct {
	out Writer
}

// NewANSI creates an ANSI backend writing to out.
func NewANSI(out Writer) *ANSIConsole {
	return &ANSIConsole{out: out}
}

func (c *ANSIConsole) Write(text string, foreground, background Color) {
	c.out.WriteString(wrapSGR(text, foreground, background))
}

func (c *ANSIConsole) WriteLine(text string, foreground, background Color) {
	c.out.WriteLine(wrapSGR(text, foreground, background))
}

// Flush forwards to the stream when it supports flushing.
func (c *ANSIConsole) Flush() {
	if f, ok := c.out.(interface{ Flush() }); ok {
		f.Flush()
	}
}

const sgrReset = "\x1b[0m"

// wrapSGR surrounds text with the escape sequence for the given colors and
// a trailing reset. Default/Default yields the text unchanged.
func wrapSGR(text string, foreground, background Color) string {
	fg := foreground.ansiForeground()
	bg := background.ansiBackground()
	if fg == "" && bg == "" {
		return text
	}
	seq := "\x1b["
	switch {
	case fg != "" && bg != "":
		seq += fg + ";" + bg
	case fg != "":
		seq += fg
	default:
		seq += bg
	}
	return seq + "m" + text + sgrReset
}
