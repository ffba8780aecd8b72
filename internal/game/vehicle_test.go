package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDt = 0.016

func TestSpeedConvergesToMaxAndNeverExceedsIt(t *testing.T) {
	v := NewPlayerVehicle(0, 0)
	v.Throttle = -1 // full forward
	for i := 0; i < 2000; i++ {
		v.Integrate(testDt)
		require.LessOrEqual(t, v.Speed, v.MaxSpeed)
	}
	assert.InDelta(t, v.MaxSpeed, v.Speed, 1e-9)
}

func TestReverseSpeedNeverExceedsReverseCap(t *testing.T) {
	v := NewPlayerVehicle(0, 0)
	v.Throttle = 1 // full brake/reverse
	for i := 0; i < 2000; i++ {
		v.Integrate(testDt)
		require.GreaterOrEqual(t, v.Speed, -ReverseSpeedFactor*v.MaxSpeed)
	}
	assert.InDelta(t, -ReverseSpeedFactor*v.MaxSpeed, v.Speed, 1e-9)
}

func TestFrictionDecayStopsExactlyAtZero(t *testing.T) {
	v := NewPlayerVehicle(0, 0)
	v.Speed = 0.01
	v.Integrate(testDt) // friction*dt = 0.192 > 0.01, must not cross zero
	assert.Equal(t, 0.0, v.Speed)

	v.Speed = 5.0
	prev := v.Speed
	for i := 0; i < 200 && v.Speed != 0; i++ {
		v.Integrate(testDt)
		require.Less(t, math.Abs(v.Speed), math.Abs(prev)+1e-12)
		require.GreaterOrEqual(t, v.Speed, 0.0)
		prev = v.Speed
	}
	assert.Equal(t, 0.0, v.Speed)
}

func TestNoTurningAtZeroSpeed(t *testing.T) {
	v := NewPlayerVehicle(0, 0)
	v.Steer = 1
	for i := 0; i < 100; i++ {
		v.Integrate(testDt)
	}
	assert.Equal(t, 0.0, v.Yaw)
	assert.Equal(t, 0.0, v.X)
	assert.Equal(t, 0.0, v.Z)
}

func TestTurnResponseFrameRateIndependent(t *testing.T) {
	run := func(ticks int) float64 {
		v := NewPlayerVehicle(0, 0)
		v.Friction = 0 // hold speed constant while coasting
		v.Speed = v.MaxSpeed / 2
		v.Steer = 0.5
		dt := 1.0 / float64(ticks)
		for i := 0; i < ticks; i++ {
			v.Integrate(dt)
		}
		return v.Yaw
	}
	// One second of turning at 50 Hz and 200 Hz must match.
	assert.InDelta(t, run(50), run(200), 1e-9)
}

func TestForwardIsNegativeZAtZeroYaw(t *testing.T) {
	v := NewPlayerVehicle(0, 0)
	v.Speed = 10
	v.Integrate(testDt)
	assert.Equal(t, 0.0, v.X)
	assert.Less(t, v.Z, 0.0)

	v = NewPlayerVehicle(0, 0)
	v.Yaw = math.Pi / 2
	v.Speed = 10
	v.Integrate(testDt)
	assert.Greater(t, v.X, 0.0)
	assert.InDelta(t, 0.0, v.Z, 1e-9)
}

func TestChassisBoxCoversRotatedFootprint(t *testing.T) {
	v := NewPlayerVehicle(10, -20)
	box := v.ChassisBox()
	assert.InDelta(t, 10-CarHalfWidth, box.MinX, 1e-9)
	assert.InDelta(t, 10+CarHalfWidth, box.MaxX, 1e-9)
	assert.InDelta(t, -20-CarHalfLength, box.MinZ, 1e-9)
	assert.InDelta(t, -20+CarHalfLength, box.MaxZ, 1e-9)

	// Quarter turn swaps the half extents.
	v.Yaw = math.Pi / 2
	box = v.ChassisBox()
	assert.InDelta(t, 10-CarHalfLength, box.MinX, 1e-9)
	assert.InDelta(t, -20-CarHalfWidth, box.MinZ, 1e-9)
}
