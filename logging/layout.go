package logging

import "strings"

// PadRight pads s with trailing spaces to the given width. Strings already
// at or beyond the width are returned unchanged, never truncated.
func PadRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// CenterPad centers s within width, biasing the extra space to the right
// when the padding is odd. When fewer than two characters of padding are
// available the text is returned unchanged; padding is only applied when at
// least one space fits on each side.
func CenterPad(s string, width int) string {
	padding := width - len(s)
	if padding < 2 {
		return s
	}
	left := padding / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", padding-left)
}
