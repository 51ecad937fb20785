package pretty

import (
	"fmt"
	"os"

	"github.com/sodatea/berry/common"
	"golang.org/x/term"
)

// Cursor control primitives using CSI (Control Sequence Introducer) escape
// sequences. The string forms are used by the report package, which owns its
// own output stream and must keep every escape byte on that stream.

func csi(params string) string {
	return "\x1b[" + params
}

func csif(format string, details ...interface{}) string {
	return csi(fmt.Sprintf(format, details...))
}

// CursorUp returns the sequence moving the cursor up n rows (CSI {n}A).
func CursorUp(n int) string {
	if n <= 0 {
		return ""
	}
	return csif("%dA", n)
}

// EraseBelow returns the sequence clearing from the cursor to the end of the
// screen (CSI 0J).
func EraseBelow() string {
	return csi("0J")
}

// HideCursor makes the cursor invisible (CSI ?25l)
func HideCursor() {
	if !Interactive {
		return
	}
	common.Stdout("%s", csi("?25l"))
}

// ShowCursor makes the cursor visible (CSI ?25h)
func ShowCursor() {
	if !Interactive {
		return
	}
	common.Stdout("%s", csi("?25h"))
}

// TerminalHeight returns the terminal height in rows
// Uses golang.org/x/term.GetSize() with fallback to 24 rows if detection fails
func TerminalHeight() int {
	_, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || height <= 0 {
		common.Trace("Failed to get terminal height, using fallback: %v", err)
		return 24
	}
	return height
}

// TerminalWidth returns the terminal width in columns
// Uses golang.org/x/term.GetSize() with fallback to 80 columns if detection fails
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		common.Trace("Failed to get terminal width, using fallback: %v", err)
		return 80
	}
	return width
}
