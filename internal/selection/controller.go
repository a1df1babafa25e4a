package selection

import (
	"vizterm/internal/data"
	"vizterm/internal/logging"
)

// Controller turns pointer events into state transitions.
type Controller struct {
	store *Store
	ds    *data.Dataset
	log   logging.Logger
}

// NewController binds a controller to store and ds.
func NewController(store *Store, ds *data.Dataset, log logging.Logger) *Controller {
	if log == nil {
		log = logging.NewNop()
	}
	return &Controller{store: store, ds: ds, log: log}
}

// Store exposes the underlying store.
func (c *Controller) Store() *Store { return c.store }

// Dataset returns the dataset refs resolve against.
func (c *Controller) Dataset() *data.Dataset { return c.ds }

// Rebind swaps the dataset after a reload. The state is kept; refs that no
// longer resolve read as nothing selected.
func (c *Controller) Rebind(ds *data.Dataset) {
	c.ds = ds
	c.store.publish()
}

func (c *Controller) ref(index int) (*Ref, bool) {
	if index < 0 || index >= c.ds.Len() {
		return nil, false
	}
	return &Ref{Key: c.ds.Records[index].Key(c.ds.Kind), Index: index}, true
}

// OnHover marks the record at index as hovered. Pinned is untouched.
func (c *Controller) OnHover(index int) {
	r, ok := c.ref(index)
	if !ok {
		return
	}
	cur := c.store.State().Hovered
	if cur != nil && *cur == *r {
		return
	}
	c.store.Update(func(s *State) { s.Hovered = r })
}

// OnHoverEnd clears the hovered record.
func (c *Controller) OnHoverEnd() {
	if c.store.State().Hovered == nil {
		return
	}
	c.store.Update(func(s *State) { s.Hovered = nil })
}

// OnClick pins the record at index, replacing any previous pin.
func (c *Controller) OnClick(index int) {
	r, ok := c.ref(index)
	if !ok {
		return
	}
	c.log.Debug("pin", logging.String("key", r.Key), logging.Int("index", index))
	c.store.Update(func(s *State) { s.Pinned = r })
}

// Unpin clears the pinned record.
func (c *Controller) Unpin() {
	if c.store.State().Pinned == nil {
		return
	}
	c.store.Update(func(s *State) { s.Pinned = nil })
}

// Resolve looks a ref up in the current dataset. It fails for nil refs and
// for records that disappeared in a reload.
func (c *Controller) Resolve(ref *Ref) (data.Record, int, bool) {
	if ref == nil {
		return data.Record{}, -1, false
	}
	return c.ds.Lookup(ref.Key)
}
