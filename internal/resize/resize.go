// Package resize debounces terminal size changes into settled layout
// requests using sequence-tagged ticks on the bubbletea loop.
package resize

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultQuiet is the trailing quiet period before a resize settles.
const DefaultQuiet = 500 * time.Millisecond

// Size is a terminal size in cells.
type Size struct {
	Width  int
	Height int
}

// SettledMsg is delivered once the quiet period after an observed size has
// elapsed. Only the message carrying the latest sequence is honoured.
type SettledMsg struct {
	Seq  uint64
	Size Size
}

// Coordinator collapses a burst of size events into one trailing
// regeneration. It is driven from the Update loop and holds no lock.
type Coordinator struct {
	quiet   time.Duration
	seq     uint64
	pending bool
	last    Size
}

// New returns a coordinator; a non-positive quiet uses DefaultQuiet.
func New(quiet time.Duration) *Coordinator {
	if quiet <= 0 {
		quiet = DefaultQuiet
	}
	return &Coordinator{quiet: quiet}
}

// Quiet returns the configured quiet period.
func (c *Coordinator) Quiet() time.Duration { return c.quiet }

// Observe records a new size and schedules a tagged tick. Any tick already in
// flight becomes stale.
func (c *Coordinator) Observe(s Size) tea.Cmd {
	c.seq++
	c.pending = true
	c.last = s
	seq := c.seq
	return tea.Tick(c.quiet, func(time.Time) tea.Msg {
		return SettledMsg{Seq: seq, Size: s}
	})
}

// Settle reports whether msg is the trailing tick of the current burst. It
// returns true at most once per burst.
func (c *Coordinator) Settle(msg SettledMsg) (Size, bool) {
	if !c.pending || msg.Seq != c.seq {
		return Size{}, false
	}
	c.pending = false
	return msg.Size, true
}

// Pending reports whether a burst is waiting to settle.
func (c *Coordinator) Pending() bool { return c.pending }

// Last returns the most recently observed size.
func (c *Coordinator) Last() Size { return c.last }
