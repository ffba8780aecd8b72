package game

import "math"

// Camera is a top-down follow camera over the ground plane.
type Camera struct {
	X, Z float64 // world units, camera centre
	Zoom float64 // screen pixels per world unit
}

func NewCamera() Camera {
	return Camera{Zoom: DefaultZoom}
}

// Follow eases the camera toward the player transform. Pure consumer of the
// published transform; it never touches simulation state.
func (c *Camera) Follow(t Transform, dt float64) {
	k := clampF(dt*4.0, 0, 1)
	c.X += (t.X - c.X) * k
	c.Z += (t.Z - c.Z) * k
}

// ClampZoom keeps the zoom inside the configured range.
func (c *Camera) ClampZoom() {
	c.Zoom = clampF(c.Zoom, MinZoom, MaxZoom)
}

// ZoomBy applies an exponential zoom step (rate per second over dt).
func (c *Camera) ZoomBy(rate, dt float64) {
	c.Zoom *= math.Exp(rate * dt)
	c.ClampZoom()
}
