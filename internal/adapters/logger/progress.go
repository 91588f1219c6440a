package logger

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

var (
	startedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#667085"))
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#22A06B"))
	failedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#D93025"))
)

// Progress writes one colourised line per step transition to an
// underlying writer (normally stdout), serialised by a mutex — the
// concurrency requirement spec.md §5 places on progress output when
// multiple workers finish at once.
type Progress struct {
	mu sync.Mutex
	w  io.Writer
}

// NewProgress returns a Progress writing to w.
func NewProgress(w io.Writer) *Progress {
	return &Progress{w: w}
}

// Started reports that a step producing output has begun.
func (p *Progress) Started(output string) {
	p.println(startedStyle.Render(fmt.Sprintf("~ %s", output)))
}

// Done reports that a step producing output finished successfully.
func (p *Progress) Done(output string) {
	p.println(doneStyle.Render(fmt.Sprintf("✓ %s", output)))
}

// Failed reports that a step producing output exited non-zero.
func (p *Progress) Failed(output string) {
	p.println(failedStyle.Render(fmt.Sprintf("✗ %s", output)))
}

// Skipped reports that a step's output was already up to date.
func (p *Progress) Skipped(output string) {
	p.println(fmt.Sprintf("· %s (up to date)", output))
}

func (p *Progress) println(line string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.w, line)
}
