package dashboard

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Fallback frame size when the output is not a terminal.
const (
	defaultWidth  = 160
	defaultHeight = 45
)

// Renderer is the display capability the dashboard drives. It accepts
// pre-built frames and paints them; it performs no data work.
type Renderer interface {
	// Start prepares the display (e.g. enters the alternate screen).
	Start()
	// Render replaces the visible frame atomically.
	Render(frame string)
	// Stop restores the display and prints a closing message.
	Stop(message string)
}

// TermRenderer paints frames to an ANSI terminal using the alternate
// screen buffer, so the shell scrollback is restored on exit.
type TermRenderer struct {
	out io.Writer
}

// NewTermRenderer creates a renderer for the given terminal writer.
func NewTermRenderer(out io.Writer) *TermRenderer {
	if out == nil {
		out = os.Stdout
	}
	return &TermRenderer{out: out}
}

// Start enters the alternate screen and hides the cursor.
func (r *TermRenderer) Start() {
	fmt.Fprint(r.out, "\x1b[?1049h\x1b[?25l")
}

// Render clears the screen and paints the frame in one write.
func (r *TermRenderer) Render(frame string) {
	fmt.Fprint(r.out, "\x1b[H\x1b[2J"+frame)
}

// Stop leaves the alternate screen, restores the cursor, and prints the
// closing message.
func (r *TermRenderer) Stop(message string) {
	fmt.Fprint(r.out, "\x1b[?25h\x1b[?1049l")
	if message != "" {
		fmt.Fprintln(r.out, message)
	}
}

// PlainRenderer writes frames sequentially with no terminal control; used
// for one-shot mode and piping.
type PlainRenderer struct {
	out io.Writer
}

// NewPlainRenderer creates a plain renderer for the given writer.
func NewPlainRenderer(out io.Writer) *PlainRenderer {
	if out == nil {
		out = os.Stdout
	}
	return &PlainRenderer{out: out}
}

// Start is a no-op for plain output.
func (r *PlainRenderer) Start() {}

// Render writes the frame followed by a newline.
func (r *PlainRenderer) Render(frame string) {
	fmt.Fprintln(r.out, frame)
}

// Stop prints the closing message.
func (r *PlainRenderer) Stop(message string) {
	if message != "" {
		fmt.Fprintln(r.out, message)
	}
}

// TerminalSize reports the current terminal dimensions, falling back to a
// fixed frame size when stdout is not a terminal.
func TerminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 && h > 0 {
		return w, h
	}
	return defaultWidth, defaultHeight
}
