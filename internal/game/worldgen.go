package game

// GenerateAll builds the static city: two orthogonal road families on the
// block grid, per-block buildings and trees, and a waypoint at every block
// centre. Pure function of the world seed; safe to call once per session.
func (w *World) GenerateAll() {
	n := w.BlocksPerAxis()
	half := w.Size / 2

	w.Roads = w.Roads[:0]
	w.Buildings = w.Buildings[:0]
	w.Trees = w.Trees[:0]
	w.Waypoints = w.Waypoints[:0]

	// Road corridors: one strip per grid line, spanning the full world axis.
	for i := 0; i <= n; i++ {
		c := -half + float64(i)*w.Block
		w.Roads = append(w.Roads,
			AABB{MinX: c - w.Road/2, MinZ: -half, MaxX: c + w.Road/2, MaxZ: half}, // north-south
			AABB{MinX: -half, MinZ: c - w.Road/2, MaxX: half, MaxZ: c + w.Road/2}, // east-west
		)
	}

	for bz := 0; bz < n; bz++ {
		for bx := 0; bx < n; bx++ {
			w.generateBlock(bx, bz)
		}
	}
}

// generateBlock fills one block with buildings, corner trees, and its centre
// waypoint. Randomness is keyed on the block coordinates so content is
// independent of generation order.
func (w *World) generateBlock(bx, bz int) {
	half := w.Size / 2
	r := NewRand(hash2D(w.seed, bx, bz))

	// Block interior between the surrounding road edges.
	minX := -half + float64(bx)*w.Block + w.Road/2
	maxX := -half + float64(bx+1)*w.Block - w.Road/2
	minZ := -half + float64(bz)*w.Block + w.Road/2
	maxZ := -half + float64(bz+1)*w.Block - w.Road/2

	avail := (maxX - minX) - 2*BlockPad

	count := r.Range(BuildingsPerBlockMin, BuildingsPerBlockMax)
	for i := 0; i < count; i++ {
		halfW := avail * r.RangeF(0.06, 0.17)
		halfD := avail * r.RangeF(0.06, 0.17)

		// Nested height roll: mostly low-rise with an occasional tower, so
		// blocks get a varied skyline rather than uniform noise.
		var h float64
		if r.Float64() < 0.3 {
			h = 24 + r.RangeF(0, 40)
		} else {
			h = 8 + r.RangeF(0, 16)
		}

		w.Buildings = append(w.Buildings, Building{
			X:      r.RangeF(minX+BlockPad+halfW, maxX-BlockPad-halfW),
			Z:      r.RangeF(minZ+BlockPad+halfD, maxZ-BlockPad-halfD),
			HalfW:  halfW,
			HalfD:  halfD,
			Height: h,
		})
	}

	// A tree near each of two opposite interior corners.
	if r.Float64() < TreeChance {
		w.Trees = append(w.Trees, Tree{
			X:      minX + BlockPad + r.RangeF(0, 3),
			Z:      minZ + BlockPad + r.RangeF(0, 3),
			Radius: r.RangeF(2.0, 3.5),
		})
	}
	if r.Float64() < TreeChance {
		w.Trees = append(w.Trees, Tree{
			X:      maxX - BlockPad - r.RangeF(0, 3),
			Z:      maxZ - BlockPad - r.RangeF(0, 3),
			Radius: r.RangeF(2.0, 3.5),
		})
	}

	w.Waypoints = append(w.Waypoints, Waypoint{
		X: (minX + maxX) / 2,
		Z: (minZ + maxZ) / 2,
	})
}

// NewRoute builds a cyclic wandering route from the given start point: a
// random walk of 6..12 waypoints with per-step offsets in [-Block, Block],
// clamped to the world interior. Waypoints are not snapped to the road grid;
// agents may cut across blocks between them.
func (w *World) NewRoute(r *Rand, startX, startZ float64) []Waypoint {
	limit := w.Size/2 - RouteMargin
	n := r.Range(RouteMinLen, RouteMaxLen)
	route := make([]Waypoint, 0, n)
	x, z := startX, startZ
	for i := 0; i < n; i++ {
		x = clampF(x+r.RangeF(-w.Block, w.Block), -limit, limit)
		z = clampF(z+r.RangeF(-w.Block, w.Block), -limit, limit)
		route = append(route, Waypoint{X: x, Z: z})
	}
	return route
}
