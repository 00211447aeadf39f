package game

import "image"

// Camera is the viewport into the world. It tracks the top-left corner of
// the visible region in world pixels and converts between world and screen
// space for rendering and mouse input.
type Camera struct {
	X, Y          int
	Width, Height int
}

// NewCamera creates a camera for the given viewport size.
func NewCamera(width, height int) *Camera {
	return &Camera{Width: width, Height: height}
}

// Follow centers the viewport on the rectangle's center.
func (c *Camera) Follow(r image.Rectangle) {
	c.X = (r.Min.X+r.Max.X)/2 - c.Width/2
	c.Y = (r.Min.Y+r.Max.Y)/2 - c.Height/2
}

// WorldToScreen converts world pixel coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy int) (int, int) {
	return wx - c.X, wy - c.Y
}

// ScreenToWorld converts screen coordinates (e.g. the mouse cursor) to
// world pixel coordinates.
func (c *Camera) ScreenToWorld(sx, sy int) (int, int) {
	return sx + c.X, sy + c.Y
}
