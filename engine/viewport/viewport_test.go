package viewport

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDragPansByExactPointerDelta(t *testing.T) {
	c := NewController()
	c.SetScale(1.5)

	c.PointerDown(100, 50)
	c.PointerMove(130, 80)

	tr := c.Transform()
	assert.Equal(t, 30.0, tr.PanX)
	assert.Equal(t, 30.0, tr.PanY)
	assert.Equal(t, 1.5, tr.Scale, "dragging must leave scale untouched")
}

func TestDragContinuesFromExistingPan(t *testing.T) {
	c := NewController()

	c.PointerDown(0, 0)
	c.PointerMove(10, 20)
	c.PointerUp()

	// Second drag starts where the first left off; no jump.
	c.PointerDown(100, 100)
	c.PointerMove(105, 110)

	tr := c.Transform()
	assert.Equal(t, 15.0, tr.PanX)
	assert.Equal(t, 30.0, tr.PanY)
}

func TestMoveWithoutDragIsIgnored(t *testing.T) {
	c := NewController()

	c.PointerMove(500, 500)

	tr := c.Transform()
	assert.Equal(t, 0.0, tr.PanX)
	assert.Equal(t, 0.0, tr.PanY)
}

func TestPointerLeaveEndsDrag(t *testing.T) {
	c := NewController()

	c.PointerDown(10, 10)
	assert.True(t, c.Dragging())

	c.PointerLeave()
	assert.False(t, c.Dragging())

	c.PointerMove(999, 999)
	tr := c.Transform()
	assert.Equal(t, 0.0, tr.PanX)
	assert.Equal(t, 0.0, tr.PanY)
}

func TestSetScaleRejectsNonPositive(t *testing.T) {
	c := NewController()

	c.SetScale(2)
	assert.Equal(t, 2.0, c.Transform().Scale)

	c.SetScale(0)
	assert.Equal(t, 2.0, c.Transform().Scale)

	c.SetScale(-1)
	assert.Equal(t, 2.0, c.Transform().Scale)
}

func TestReset(t *testing.T) {
	c := NewController()
	c.SetScale(3)
	c.PointerDown(5, 5)
	c.PointerMove(50, 50)

	c.Reset()

	tr := c.Transform()
	assert.Equal(t, Transform{Scale: 1}, tr)
	assert.False(t, c.Dragging())
}
