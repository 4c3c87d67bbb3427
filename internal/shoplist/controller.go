package shoplist

import (
	"log/slog"

	"shoplist-cli/internal/model"
)

// Controller owns one shopping list for the lifetime of a screen.
//
// Every operation is total: bad input or an unknown id degrades to a no-op (logged at
// debug level) and is never reported to the caller. Subscribers receive a fresh snapshot
// after each change.
//
// A Controller is meant to be driven from a single goroutine (the UI loop) and does
// no locking.
type Controller struct {
	state   State
	version int
	log     *slog.Logger

	subs    []subscriber
	nextSub int
}

type subscriber struct {
	id int
	fn func(model.Snapshot)
}

type Option func(*Controller)

func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// WithState seeds the controller, e.g. from a replayed script.
func WithState(s State) Option {
	return func(c *Controller) { c.state = s }
}

func NewController(opts ...Option) *Controller {
	c := &Controller{log: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) Snapshot() model.Snapshot {
	return model.Snapshot{Version: c.version, Items: c.state.Items()}
}

// Subscribe registers fn and immediately delivers the current snapshot to it.
// The returned func removes the subscription; calling it more than once is harmless.
func (c *Controller) Subscribe(fn func(model.Snapshot)) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	c.nextSub++
	id := c.nextSub
	c.subs = append(c.subs, subscriber{id: id, fn: fn})
	fn(c.Snapshot())

	return func() {
		for i := range c.subs {
			if c.subs[i].id == id {
				c.subs = append(c.subs[:i:i], c.subs[i+1:]...)
				return
			}
		}
	}
}

func (c *Controller) Add(name, quantityText string) bool {
	return c.Apply(AddIntent(name, quantityText))
}

func (c *Controller) BeginEdit(id int) bool {
	return c.Apply(BeginEditIntent(id))
}

func (c *Controller) CompleteEdit(id int, name, quantityText string) bool {
	return c.Apply(CompleteEditIntent(id, name, quantityText))
}

func (c *Controller) Delete(id int) bool {
	return c.Apply(DeleteIntent(id))
}

// Apply runs one intent and reports whether the list changed.
func (c *Controller) Apply(in Intent) bool {
	res, err := Reduce(c.state, in)
	if err != nil {
		c.log.Debug("intent degraded", "intent", in.String(), "reason", err.Error(), "changed", res.Changed)
	}
	if !res.Changed {
		return false
	}

	c.state = res.State
	c.version++
	c.log.Debug("intent applied", "intent", in.String(), "version", c.version, "items", c.state.Len())
	c.notify()
	return true
}

func (c *Controller) notify() {
	subs := append([]subscriber(nil), c.subs...)
	for _, s := range subs {
		s.fn(c.Snapshot())
	}
}
