package console

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// NativeConsole drives the host's console color APIs through fatih/color.
// On Windows the underlying colorable writer translates escape sequences
// into SetConsoleTextAttribute calls; colors are set around each fragment
// and restored to the terminal default afterwards.
type NativeConsole struct {
	out io.Writer
}

// NewNative creates a native backend. A nil out writes to the process
// stdout via fatih/color's platform-aware writer.
func NewNative(out io.Writer) *NativeConsole {
	if out == nil {
		out = color.Output
	}
	return &NativeConsole{out: out}
}

func (c *NativeConsole) Write(text string, foreground, background Color) {
	c.print(text, foreground, background)
}

func (c *NativeConsole) WriteLine(text string, foreground, background Color) {
	c.print(text, foreground, background)
	_, _ = io.WriteString(c.out, "\n")
}

// Flush forwards to the writer when it is buffered.
func (c *NativeConsole) Flush() {
	if f, ok := c.out.(interface{ Flush() error }); ok {
		_ = f.Flush()
	}
}

func (c *NativeConsole) print(text string, foreground, background Color) {
	attrs := make([]color.Attribute, 0, 2)
	if fg, ok := foreground.foregroundAttribute(); ok {
		attrs = append(attrs, fg)
	}
	if bg, ok := background.backgroundAttribute(); ok {
		attrs = append(attrs, bg)
	}
	if len(attrs) == 0 {
		_, _ = fmt.Fprint(c.out, text)
		return
	}
	_, _ = color.New(attrs...).Fprint(c.out, text)
}
