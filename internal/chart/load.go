package chart

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"vizterm/internal/data"
	"vizterm/internal/logging"
)

// Loader fetches a dataset.
type Loader interface {
	Load(ctx context.Context, source string, kind data.Kind) (*data.Dataset, error)
}

// LoadedMsg carries the outcome of a fetch back to the Update loop.
type LoadedMsg struct {
	ChartID string
	Seq     uint64
	Source  string
	Dataset *data.Dataset
	Err     error
}

type loadState struct {
	seq    uint64
	cancel context.CancelFunc
}

// Load starts a fetch as a tea.Cmd. Starting a new fetch cancels the one in
// flight; only the latest fetch may be applied.
func (c *Chart) Load(l Loader, source string, kind data.Kind) tea.Cmd {
	if c.loads.cancel != nil {
		c.loads.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	c.loads.seq++
	c.loads.cancel = cancel
	seq, id := c.loads.seq, c.ID.String()
	c.log.Debug("load started", logging.String("source", source), logging.Int("seq", int(seq)))
	return func() tea.Msg {
		defer cancel()
		ds, err := l.Load(ctx, source, kind)
		return LoadedMsg{ChartID: id, Seq: seq, Source: source, Dataset: ds, Err: err}
	}
}

// Apply installs a fetch result. Stale results and results for another
// chart are dropped and report applied=false. A failed fetch leaves the
// chart untouched and returns the error.
func (c *Chart) Apply(msg LoadedMsg) (applied bool, err error) {
	if msg.ChartID != c.ID.String() || msg.Seq != c.loads.seq {
		c.log.Debug("stale load dropped", logging.Int("seq", int(msg.Seq)))
		return false, nil
	}
	c.loads.cancel = nil
	if msg.Err != nil {
		c.log.Warn("load failed", logging.String("source", msg.Source), logging.Err(msg.Err))
		return false, msg.Err
	}
	c.SetDataset(msg.Dataset)
	return true, nil
}

// Loading reports whether a fetch is in flight.
func (c *Chart) Loading() bool { return c.loads.cancel != nil }

// Close cancels any fetch in flight.
func (c *Chart) Close() {
	if c.loads.cancel != nil {
		c.loads.cancel()
		c.loads.cancel = nil
	}
}
