package game

import "math"

// VehicleKind tags the two vehicle variants. Update logic is dispatched on
// the tag (player integration vs. AI path following), never on type identity.
type VehicleKind int

const (
	KindPlayer VehicleKind = iota
	KindAI
)

// Vehicle is the shared kinematic state for every car in the simulation.
// Y stays at ground level for the chassis pivot; yaw is rotation about the
// vertical axis with forward along -z at yaw 0.
type Vehicle struct {
	Kind  VehicleKind
	Index int // stable spawn index; used for identity, never pointers

	X, Y, Z float64
	Yaw     float64
	Speed   float64

	// Normalized commands, set each tick by the controller.
	// Throttle sign convention: negative accelerates forward.
	Steer    float64
	Throttle float64

	MaxSpeed float64
	Accel    float64
	Brake    float64
	Friction float64
	TurnRate float64
}

// Forward returns the unit forward vector on the ground plane.
func (v *Vehicle) Forward() (fx, fz float64) {
	return math.Sin(v.Yaw), -math.Cos(v.Yaw)
}

// Integrate advances speed, yaw, and position by dt from the current
// steer/throttle commands. MaxSpeed is positive by construction, so the
// speed-ratio terms never divide by zero.
func (v *Vehicle) Integrate(dt float64) {
	t := v.Throttle
	switch {
	case t < -inputEpsilon:
		v.Speed += v.Accel * dt * (-t)
	case t > inputEpsilon:
		v.Speed -= v.Brake * dt * t
	default:
		// Coasting: friction decays speed toward zero without crossing it.
		v.Speed = approach(v.Speed, 0, v.Friction*dt)
	}
	v.Speed = clampF(v.Speed, -ReverseSpeedFactor*v.MaxSpeed, v.MaxSpeed)

	// Turn response shrinks at high speed and scales with the speed ratio:
	// a stationary car does not rotate no matter how hard it steers.
	ratio := v.Speed / v.MaxSpeed
	grip := 0.6 + 0.4*(1-math.Abs(ratio))
	v.Yaw = wrapAngle(v.Yaw + v.TurnRate*v.Steer*grip*ratio*dt*ReferenceFrameRate)

	fx, fz := v.Forward()
	v.X += fx * v.Speed * dt
	v.Z += fz * v.Speed * dt
}

// ChassisBox returns the world-space AABB of the rotated chassis footprint.
func (v *Vehicle) ChassisBox() AABB {
	c := math.Cos(v.Yaw)
	s := math.Sin(v.Yaw)
	corners := [4][2]float64{
		{-CarHalfWidth, -CarHalfLength},
		{CarHalfWidth, -CarHalfLength},
		{-CarHalfWidth, CarHalfLength},
		{CarHalfWidth, CarHalfLength},
	}
	box := AABB{MinX: math.MaxFloat64, MinZ: math.MaxFloat64,
		MaxX: -math.MaxFloat64, MaxZ: -math.MaxFloat64}
	for _, lc := range corners {
		wx := v.X + lc[0]*c - lc[1]*s
		wz := v.Z + lc[0]*s + lc[1]*c
		box.MinX = math.Min(box.MinX, wx)
		box.MaxX = math.Max(box.MaxX, wx)
		box.MinZ = math.Min(box.MinZ, wz)
		box.MaxZ = math.Max(box.MaxZ, wz)
	}
	return box
}

// NewPlayerVehicle spawns the player car at the given position.
func NewPlayerVehicle(x, z float64) *Vehicle {
	return &Vehicle{
		Kind:     KindPlayer,
		X:        x,
		Z:        z,
		MaxSpeed: PlayerMaxSpeed,
		Accel:    PlayerAccel,
		Brake:    PlayerBrake,
		Friction: PlayerFriction,
		TurnRate: PlayerTurnRate,
	}
}
