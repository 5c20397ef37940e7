// Package console abstracts colored terminal output behind a small backend
// interface so the logging layer never needs to know how colors reach the
// screen.
//
// Two backends are provided:
//
//   - Native: drives the host's console color APIs through fatih/color
//     (go-colorable translates to Windows console calls where needed).
//   - ANSI: emits SGR escape sequences directly to a raw output stream,
//     which tests can swap for a capture double.
//
// The backend is chosen once, at construction, via New:
//
//	c := console.New()
//	c.Write("[BUILD    >] ", console.BrightBlue, console.Default)
//	c.WriteLine("compile", console.White, console.Default)
//	c.Flush()
package console
