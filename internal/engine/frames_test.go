package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrameQueueOrderAndDeferral(t *testing.T) {
	q := NewFrameQueue()
	var got []string

	q.RequestFrame(func() {
		got = append(got, "a")
		q.RequestFrame(func() { got = append(got, "c") })
	})
	q.RequestFrame(func() { got = append(got, "b") })

	assert.Equal(t, 2, q.RunFrame())
	assert.Equal(t, []string{"a", "b"}, got)
	assert.Equal(t, 1, q.Pending())

	assert.Equal(t, 1, q.RunFrame())
	assert.Equal(t, []string{"a", "b", "c"}, got)
	assert.Equal(t, 0, q.RunFrame())
}

func TestFrameQueueCancel(t *testing.T) {
	q := NewFrameQueue()
	ran := false
	var second FrameID
	q.RequestFrame(func() { q.CancelFrame(second) })
	second = q.RequestFrame(func() { ran = true })

	assert.Equal(t, 1, q.RunFrame())
	assert.False(t, ran)
	assert.Equal(t, 0, q.Pending())

	q.CancelFrame(999)
}

func TestDisplayListeners(t *testing.T) {
	d := NewDisplay(10, 10)
	var calls []int
	removeA := d.OnResize(func(w, h int) { calls = append(calls, 1) })
	d.OnResize(func(w, h int) { calls = append(calls, 2) })

	assert.False(t, d.Resize(10, 10))
	assert.True(t, d.Resize(20, 10))
	assert.Equal(t, []int{1, 2}, calls)

	removeA()
	removeA()
	assert.Equal(t, 1, d.Listeners())
	d.Resize(30, 30)
	assert.Equal(t, []int{1, 2, 2}, calls)

	w, h := d.Size()
	assert.Equal(t, 30, w)
	assert.Equal(t, 30, h)
}
