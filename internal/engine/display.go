package engine

import "sort"

// Viewport reports the drawable size and announces changes to it.
type Viewport interface {
	Size() (width, height int)
	// OnResize registers fn and returns a function that unregisters it.
	OnResize(fn func(width, height int)) (remove func())
}

// Display is a Viewport whose size is pushed in by the host, e.g. from
// ebiten's Layout or from a fixed snapshot size. It is not safe for
// concurrent use.
type Display struct {
	width, height int
	next          int
	listeners     map[int]func(int, int)
}

var _ Viewport = (*Display)(nil)

func NewDisplay(width, height int) *Display {
	return &Display{width: width, height: height, listeners: make(map[int]func(int, int))}
}

func (d *Display) Size() (int, int) {
	return d.width, d.height
}

func (d *Display) OnResize(fn func(int, int)) func() {
	d.next++
	id := d.next
	d.listeners[id] = fn
	return func() { delete(d.listeners, id) }
}

// Listeners reports how many resize listeners are registered.
func (d *Display) Listeners() int {
	return len(d.listeners)
}

// Resize updates the size and notifies listeners in registration order.
// It returns false and notifies no one when the size is unchanged.
func (d *Display) Resize(width, height int) bool {
	if width == d.width && height == d.height {
		return false
	}
	d.width, d.height = width, height

	ids := make([]int, 0, len(d.listeners))
	for id := range d.listeners {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		if fn, ok := d.listeners[id]; ok {
			fn(width, height)
		}
	}
	return true
}
