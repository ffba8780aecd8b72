package game

import "math"

// ResolvePlayerCollision checks the player chassis against the world border
// and every building collider, and applies the rollback-and-damp response on
// a hit: step back along the current heading and reverse-dampen the speed.
// Returns whether a collision was handled.
//
// Only the player collides with buildings; traffic agents rely on mutual
// avoidance alone. The building test is a plain O(n) sweep — the static set
// is small enough that a spatial index would not pay for itself.
func ResolvePlayerCollision(v *Vehicle, w *World) bool {
	if !collides(v, w) {
		return false
	}
	fx, fz := v.Forward()
	v.X -= fx * CollisionPushback
	v.Z -= fz * CollisionPushback
	v.Speed *= CollisionSpeedDamp
	return true
}

func collides(v *Vehicle, w *World) bool {
	limit := w.Size/2 - WorldMargin
	if math.Abs(v.X) >= limit || math.Abs(v.Z) >= limit {
		return true
	}
	box := v.ChassisBox()
	for i := range w.Buildings {
		if box.Intersects(w.Buildings[i].Box()) {
			return true
		}
	}
	return false
}
