// Package chart owns one chart instance: its dataset, layout, geometry,
// selection and the panels observing that selection.
package chart

import (
	"github.com/google/uuid"

	"vizterm/internal/data"
	"vizterm/internal/geometry"
	"vizterm/internal/logging"
	"vizterm/internal/present"
	"vizterm/internal/scale"
	"vizterm/internal/selection"
)

// Chart is the per-instance context. Each instance has its own store, so
// two charts never share selection state.
type Chart struct {
	ID  uuid.UUID
	log logging.Logger

	ds       *data.Dataset
	frame    scale.Frame
	hasFrame bool
	scales   scale.ScaleSet
	elements []geometry.Element
	visuals  []selection.Visual
	summary  present.Summary

	store *selection.Store
	ctrl  *selection.Controller

	tooltip present.Block
	detail  present.Block
	compare []string

	loads loadState
}

// New returns an empty chart. Nothing is laid out until a dataset and a
// frame are both known.
func New(log logging.Logger) *Chart {
	if log == nil {
		log = logging.NewNop()
	}
	id := uuid.New()
	c := &Chart{
		ID:    id,
		log:   log.Named("chart").With(logging.String("chart_id", id.String())),
		store: selection.NewStore(),
	}
	c.ctrl = selection.NewController(c.store, nil, c.log)
	c.tooltip = present.Tooltip(nil, present.Context{})
	c.detail = present.Detail(nil, present.Context{})
	c.store.Subscribe(c.onSelection)
	return c
}

// Controller returns the interaction controller of this chart.
func (c *Chart) Controller() *selection.Controller { return c.ctrl }

// Subscribe attaches a tooltip and a detail panel. Both are pushed the
// current blocks immediately. The returned function detaches them.
func (c *Chart) Subscribe(tooltip, detail present.Panel) (unsubscribe func()) {
	push := func(selection.State) {
		if tooltip != nil {
			tooltip.Set(c.tooltip)
		}
		if detail != nil {
			detail.Set(c.detail)
		}
	}
	push(c.store.State())
	return c.store.Subscribe(push)
}

// SetDataset replaces the dataset, keeps the selection by record identity
// and regenerates if a frame is known.
func (c *Chart) SetDataset(ds *data.Dataset) {
	c.ds = ds
	c.summary = present.Summarize(ds)
	c.log.Info("dataset applied",
		logging.String("source", ds.Source),
		logging.String("kind", ds.Kind.String()),
		logging.Int("records", ds.Len()))
	if c.hasFrame {
		c.layout()
	}
	c.ctrl.Rebind(ds)
}

// Regenerate rebuilds scales, geometry and visuals for frame. With the same
// dataset and frame it produces identical geometry.
func (c *Chart) Regenerate(frame scale.Frame) {
	c.frame, c.hasFrame = frame, true
	if c.ds == nil {
		return
	}
	c.layout()
	c.visuals = selection.Derive(c.store.State(), c.elements)
	c.log.Debug("regenerated",
		logging.Float64("width", frame.Width),
		logging.Float64("height", frame.Height),
		logging.Int("elements", len(c.elements)))
}

func (c *Chart) layout() {
	c.elements = nil
	c.scales = scale.Build(c.ds, c.frame)
	c.elements = geometry.Bind(c.ds, c.scales)
}

func (c *Chart) onSelection(st selection.State) {
	ctx := present.ContextOf(c.ds)
	hovered := c.resolve(st.Hovered)
	pinned := c.resolve(st.Pinned)
	c.tooltip = present.Tooltip(hovered, ctx)
	c.detail = present.Detail(pinned, ctx)
	c.compare = present.Compare(pinned, hovered, ctx)
	c.visuals = selection.Derive(st, c.elements)
}

func (c *Chart) resolve(ref *selection.Ref) *data.Record {
	rec, _, ok := c.ctrl.Resolve(ref)
	if !ok {
		return nil
	}
	return &rec
}

// HoverAt hovers the element under the surface point or ends the hover.
func (c *Chart) HoverAt(px, py, tolerance float64) (int, bool) {
	i, ok := geometry.HitTest(c.elements, px, py, tolerance)
	if !ok {
		c.ctrl.OnHoverEnd()
		return -1, false
	}
	c.ctrl.OnHover(c.elements[i].Index)
	return i, true
}

// ClickAt pins the element under the surface point. Clicking empty space
// leaves the pin alone.
func (c *Chart) ClickAt(px, py, tolerance float64) (int, bool) {
	i, ok := geometry.HitTest(c.elements, px, py, tolerance)
	if !ok {
		return -1, false
	}
	c.ctrl.OnClick(c.elements[i].Index)
	return i, true
}

// Ready reports whether the chart has something to draw.
func (c *Chart) Ready() bool { return c.ds != nil && c.hasFrame }

func (c *Chart) Dataset() *data.Dataset { return c.ds }
func (c *Chart) Frame() scale.Frame { return c.frame }
func (c *Chart) Scales() scale.ScaleSet { return c.scales }
func (c *Chart) Elements() []geometry.Element { return c.elements }
func (c *Chart) Visuals() []selection.Visual { return c.visuals }
func (c *Chart) Summary() present.Summary { return c.summary }
func (c *Chart) Tooltip() present.Block { return c.tooltip }
func (c *Chart) Detail() present.Block { return c.detail }
func (c *Chart) Comparison() []string { return c.compare }
func (c *Chart) Selection() selection.State { return c.store.State() }
func (c *Chart) Logger() logging.Logger { return c.log }
