package game

// AABB is an axis-aligned box on the ground plane.
type AABB struct {
	MinX, MinZ float64
	MaxX, MaxZ float64
}

func (b AABB) Intersects(o AABB) bool {
	return b.MinX < o.MaxX && b.MaxX > o.MinX && b.MinZ < o.MaxZ && b.MaxZ > o.MinZ
}

func (b AABB) Contains(x, z float64) bool {
	return x >= b.MinX && x <= b.MaxX && z >= b.MinZ && z <= b.MaxZ
}

// Building is a static axis-aligned box, created once by generation and never
// mutated during a session.
type Building struct {
	X, Z         float64 // footprint centre
	HalfW, HalfD float64
	Height       float64
}

// Box returns the building's footprint AABB.
func (b Building) Box() AABB {
	return AABB{
		MinX: b.X - b.HalfW, MinZ: b.Z - b.HalfD,
		MaxX: b.X + b.HalfW, MaxZ: b.Z + b.HalfD,
	}
}

// Tree is a decorative prop; it takes no part in collision.
type Tree struct {
	X, Z   float64
	Radius float64
}

// Waypoint is a fixed navigation target at a block centre.
type Waypoint struct {
	X, Z float64
}

// World holds the static city: road strips, building colliders, props, and
// the waypoint set. Immutable after GenerateAll.
type World struct {
	Size  float64
	Block float64
	Road  float64

	Bounds    AABB
	Roads     []AABB
	Buildings []Building
	Trees     []Tree
	Waypoints []Waypoint

	seed uint64
}

func NewWorld(seed uint64) *World {
	half := WorldSize / 2
	return &World{
		Size:   WorldSize,
		Block:  BlockSize,
		Road:   RoadWidth,
		Bounds: AABB{MinX: -half, MinZ: -half, MaxX: half, MaxZ: half},
		seed:   seed,
	}
}

// BlocksPerAxis returns the number of blocks along one axis.
func (w *World) BlocksPerAxis() int {
	return int(w.Size / w.Block)
}
