package tasks

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDrag_StartOverDropEnd(t *testing.T) {
	l := listOf("a", "b", "c")
	var d Drag

	assert.Equal(t, DragIdle, d.State())

	d.Start("a")
	assert.Equal(t, DragActive, d.State())
	assert.Equal(t, "a", d.DraggedID())
	_, attached := d.Placeholder()
	assert.False(t, attached, "placeholder starts detached")

	assert.True(t, d.Over(l, "c"))
	before, attached := d.Placeholder()
	assert.True(t, attached)
	assert.Equal(t, "c", before)
	assert.Equal(t, []string{"a", "b", "c"}, ids(l), "hovering never mutates the list")

	assert.True(t, d.Drop(l, "c"))
	assert.Equal(t, []string{"b", "c", "a"}, ids(l))

	d.End()
	assert.Equal(t, DragIdle, d.State())
	assert.Equal(t, "", d.DraggedID())
	_, attached = d.Placeholder()
	assert.False(t, attached)
}

func TestDrag_OntoSelfIsNoop(t *testing.T) {
	l := listOf("a", "b")
	var d Drag
	d.Start("a")

	assert.False(t, d.Over(l, "a"))
	_, attached := d.Placeholder()
	assert.False(t, attached)

	assert.False(t, d.Drop(l, "a"))
	assert.Equal(t, []string{"a", "b"}, ids(l))
}

func TestDrag_VanishedRowsAreIgnored(t *testing.T) {
	l := listOf("a", "b", "c")
	var d Drag
	d.Start("a")

	l.Delete("c")
	assert.False(t, d.Over(l, "c"))
	assert.False(t, d.Drop(l, "c"))

	l.Delete("a")
	assert.False(t, d.Over(l, "b"))
	assert.False(t, d.Drop(l, "b"))
	assert.Equal(t, []string{"b"}, ids(l))
}

func TestDrag_IdleIgnoresOverAndDrop(t *testing.T) {
	l := listOf("a", "b")
	var d Drag

	assert.False(t, d.Over(l, "b"))
	assert.False(t, d.Drop(l, "b"))
	assert.Equal(t, []string{"a", "b"}, ids(l))

	d.End()
	assert.Equal(t, DragIdle, d.State())
}
