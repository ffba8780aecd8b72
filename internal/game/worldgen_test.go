package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildingCountAndPlacementPerBlock(t *testing.T) {
	w := NewWorld(42)
	w.GenerateAll()
	n := w.BlocksPerAxis()
	half := w.Size / 2

	counts := make(map[[2]int]int)
	for _, b := range w.Buildings {
		bx := int(math.Floor((b.X + half) / w.Block))
		bz := int(math.Floor((b.Z + half) / w.Block))
		counts[[2]int{bx, bz}]++

		// Footprint must stay inside the padded block interior.
		minX := -half + float64(bx)*w.Block + w.Road/2 + BlockPad
		maxX := -half + float64(bx+1)*w.Block - w.Road/2 - BlockPad
		minZ := -half + float64(bz)*w.Block + w.Road/2 + BlockPad
		maxZ := -half + float64(bz+1)*w.Block - w.Road/2 - BlockPad
		assert.GreaterOrEqual(t, b.X-b.HalfW, minX-1e-9)
		assert.LessOrEqual(t, b.X+b.HalfW, maxX+1e-9)
		assert.GreaterOrEqual(t, b.Z-b.HalfD, minZ-1e-9)
		assert.LessOrEqual(t, b.Z+b.HalfD, maxZ+1e-9)
		assert.Positive(t, b.Height)
	}

	require.Len(t, counts, n*n)
	for block, c := range counts {
		assert.GreaterOrEqual(t, c, BuildingsPerBlockMin, "block %v", block)
		assert.LessOrEqual(t, c, BuildingsPerBlockMax, "block %v", block)
	}
}

func TestWaypointAtEveryBlockCentre(t *testing.T) {
	w := NewWorld(5)
	w.GenerateAll()
	n := w.BlocksPerAxis()
	half := w.Size / 2

	require.Len(t, w.Waypoints, n*n)
	seen := make(map[[2]int]bool)
	for _, wp := range w.Waypoints {
		bx := int(math.Floor((wp.X + half) / w.Block))
		bz := int(math.Floor((wp.Z + half) / w.Block))
		cx := -half + (float64(bx)+0.5)*w.Block
		cz := -half + (float64(bz)+0.5)*w.Block
		assert.InDelta(t, cx, wp.X, 1e-9)
		assert.InDelta(t, cz, wp.Z, 1e-9)
		seen[[2]int{bx, bz}] = true
	}
	assert.Len(t, seen, n*n)
}

func TestRoadCorridorsSpanTheWorld(t *testing.T) {
	w := NewWorld(3)
	w.GenerateAll()
	n := w.BlocksPerAxis()
	half := w.Size / 2

	require.Len(t, w.Roads, 2*(n+1))
	for _, rd := range w.Roads {
		spansX := rd.MinX == -half && rd.MaxX == half
		spansZ := rd.MinZ == -half && rd.MaxZ == half
		assert.True(t, spansX || spansZ)
		if spansX {
			assert.InDelta(t, w.Road, rd.MaxZ-rd.MinZ, 1e-9)
		} else {
			assert.InDelta(t, w.Road, rd.MaxX-rd.MinX, 1e-9)
		}
	}
}

func TestGenerationIsDeterministicForASeed(t *testing.T) {
	a := NewWorld(777)
	a.GenerateAll()
	b := NewWorld(777)
	b.GenerateAll()

	assert.Equal(t, a.Buildings, b.Buildings)
	assert.Equal(t, a.Trees, b.Trees)
	assert.Equal(t, a.Waypoints, b.Waypoints)

	c := NewWorld(778)
	c.GenerateAll()
	assert.NotEqual(t, a.Buildings, c.Buildings)
}

func TestTreesStayInsideTheirBlocks(t *testing.T) {
	w := NewWorld(11)
	w.GenerateAll()
	require.NotEmpty(t, w.Trees)
	for _, tr := range w.Trees {
		assert.True(t, w.Bounds.Contains(tr.X, tr.Z))
	}
}

func TestRouteLengthAndClamping(t *testing.T) {
	w := NewWorld(1)
	limit := w.Size/2 - RouteMargin

	for seed := uint64(1); seed <= 50; seed++ {
		r := NewRand(seed)
		route := w.NewRoute(r, 0, 0)
		require.GreaterOrEqual(t, len(route), RouteMinLen)
		require.LessOrEqual(t, len(route), RouteMaxLen)
		for _, wp := range route {
			assert.LessOrEqual(t, math.Abs(wp.X), limit)
			assert.LessOrEqual(t, math.Abs(wp.Z), limit)
		}
	}
}

func TestRouteStepsStayWithinOneBlock(t *testing.T) {
	w := NewWorld(1)
	r := NewRand(9)
	route := w.NewRoute(r, 100, -100)
	px, pz := 100.0, -100.0
	for _, wp := range route {
		assert.LessOrEqual(t, math.Abs(wp.X-px), w.Block+1e-9)
		assert.LessOrEqual(t, math.Abs(wp.Z-pz), w.Block+1e-9)
		px, pz = wp.X, wp.Z
	}
}
