// Package viewport tracks the pan/zoom transform driven by pointer
// interaction. The transform applies to the rendered scene as a whole;
// it is never baked into node coordinates, which keeps layout and
// viewport fully independent.
package viewport

// Transform is the pan and scale applied to the scene group, composed
// as translate-then-scale.
type Transform struct {
	PanX  float64 `json:"pan_x"`
	PanY  float64 `json:"pan_y"`
	Scale float64 `json:"scale"`
}

// Controller consumes pointer events and maintains the transform.
type Controller struct {
	transform Transform
	dragging  bool
	grabX     float64
	grabY     float64
}

// NewController returns a controller at the identity transform.
func NewController() *Controller {
	return &Controller{
		transform: Transform{Scale: 1},
	}
}

// PointerDown starts a drag, capturing the offset between the pointer
// and the current pan so the scene doesn't jump under the cursor.
func (c *Controller) PointerDown(x, y float64) {
	c.dragging = true
	c.grabX = x - c.transform.PanX
	c.grabY = y - c.transform.PanY
}

// PointerMove updates the pan while a drag is active. Scale is never
// touched by dragging. Moves outside a drag are ignored.
func (c *Controller) PointerMove(x, y float64) {
	if !c.dragging {
		return
	}
	c.transform.PanX = x - c.grabX
	c.transform.PanY = y - c.grabY
}

// PointerUp ends the drag.
func (c *Controller) PointerUp() {
	c.dragging = false
}

// PointerLeave ends the drag the same way PointerUp does, so a cursor
// leaving the canvas never wedges the controller in a dragging state.
func (c *Controller) PointerLeave() {
	c.dragging = false
}

// SetScale sets the zoom factor. Non-positive values are ignored; pan
// is left alone so zoom composes with the current translation.
func (c *Controller) SetScale(scale float64) {
	if scale <= 0 {
		return
	}
	c.transform.Scale = scale
}

// Transform returns the current transform.
func (c *Controller) Transform() Transform {
	return c.transform
}

// Dragging reports whether a drag is in progress.
func (c *Controller) Dragging() bool {
	return c.dragging
}

// Reset returns the controller to the identity transform and ends any
// active drag. Used when a new graph snapshot replaces the scene.
func (c *Controller) Reset() {
	c.transform = Transform{Scale: 1}
	c.dragging = false
}
