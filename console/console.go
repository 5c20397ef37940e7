package console

import (
	"io"
	"os"
	"runtime"
)

// Console writes colored text fragments to the terminal.
type Console interface {
	// Write emits text in the given colors without a trailing line break.
	Write(text string, foreground, background Color)

	// WriteLine emits text in the given colors followed by a line break.
	WriteLine(text string, foreground, background Color)

	// Flush pushes any buffered output to the terminal.
	Flush()
}

// New selects the backend for the host platform. Windows gets the native
// console APIs; everything else gets ANSI escapes on stdout. The probe runs
// once here and is never re-evaluated.
func New() Console {
	if nativeHost() {
		return NewNative(nil)
	}
	return NewANSI(NewStreamWriter(os.Stdout))
}

func nativeHost() bool {
	return runtime.GOOS == "windows"
}

// Writer is the raw output stream consumed by the ANSI backend. Tests swap
// in a capture double.
type Writer interface {
	WriteString(text string)
	WriteLine(text string)
}

// StreamWriter adapts an io.Writer to the Writer interface.
type StreamWriter struct {
	w io.Writer
}

// NewStreamWriter wraps w. Write errors are dropped; the terminal is a
// fire-and-forget sink here.
func NewStreamWriter(w io.Writer) *StreamWriter {
	return &StreamWriter{w: w}
}

func (s *StreamWriter) WriteString(text string) {
	_, _ = io.WriteString(s.w, text)
}

func (s *StreamWriter) WriteLine(text string) {
	_, _ = io.WriteString(s.w, text+"\n")
}

// Flush forwards to the underlying writer when it is buffered.
func (s *StreamWriter) Flush() {
	if f, ok := s.w.(interface{ Flush() error }); ok {
		_ = f.Flush()
	}
}
