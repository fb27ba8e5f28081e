package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// Progress displays a simple progress indicator for counted operations.
// On a terminal it redraws a single "(n/total)" line; elsewhere it stays
// silent so redirected output only carries the final messages.
type Progress struct {
	w       io.Writer
	tty     bool
	total   int
	current int
	message string
}

// NewProgress creates a new progress indicator writing to w.
func NewProgress(w io.Writer, message string, total int) *Progress {
	return &Progress{
		w:       w,
		tty:     isTerminal(w),
		message: message,
		total:   total,
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Current returns how many steps have completed.
func (p *Progress) Current() int {
	return p.current
}

// Increment increments the progress by one.
func (p *Progress) Increment() {
	p.current++
	if p.tty {
		fmt.Fprintf(p.w, "\r%s %s", p.message, Muted.Render(fmt.Sprintf("(%d/%d)", p.current, p.total)))
	}
}

// Clear erases the progress line so a message can be printed in its place.
func (p *Progress) Clear() {
	if p.tty {
		fmt.Fprint(p.w, "\r\033[K")
	}
}

// DoneWithMessage finishes the progress and prints a message.
func (p *Progress) DoneWithMessage(message string) {
	p.Clear()
	fmt.Fprintln(p.w, message)
}
