package game

// World layout (world units, ground plane is x/z).
// The world is a square centred on the origin; roads run on a BlockSize grid
// with building blocks between them.
const (
	WorldSize = 1200.0
	BlockSize = 120.0
	RoadWidth = 12.0

	// Buildings keep this much clearance from the block edge.
	BlockPad = 6.0

	// Dynamic positions must stay inside bounds minus this margin.
	WorldMargin = 4.0

	// Route waypoints are clamped to bounds minus this margin.
	RouteMargin = 16.0
)

// Window defaults.
const (
	WindowWidth  = 1024
	WindowHeight = 768
	WindowTitle  = "Drift City"
	DefaultZoom  = 4.0
	MinZoom      = 1.0
	MaxZoom      = 14.0
)

// Frame timing. Turn response is normalized against a 60 Hz baseline so it is
// identical at any frame rate; dt is capped so a frame hitch cannot tunnel a
// vehicle through the world border or a building.
const (
	ReferenceFrameRate = 60.0
	MaxFrameDelta      = 0.05
)

// Player chassis and handling.
const (
	CarHalfWidth  = 1.1
	CarHalfLength = 2.3

	PlayerMaxSpeed = 42.0
	PlayerAccel    = 26.0
	PlayerBrake    = 40.0
	PlayerFriction = 12.0
	PlayerTurnRate = 0.04

	// Reverse is capped at this fraction of maxSpeed.
	ReverseSpeedFactor = 0.4

	// Collision response: rollback step and speed multiplier.
	CollisionPushback  = 0.2
	CollisionSpeedDamp = -0.25
)

// Traffic agents.
const (
	DefaultTrafficCars = 24

	AIMaxSpeed    = 24.0
	AICruiseSpeed = 16.0
	AITurnGain    = 0.06
	AISteerGain   = 3.0
	AIAvoidGain   = 0.6
	AIAvoidSlow   = 0.4
	AIAvoidRadius = 14.0

	// A waypoint counts as reached inside this distance.
	ArriveDistance = 6.0

	RouteMinLen = 6
	RouteMaxLen = 12
)

// Building generation.
const (
	BuildingsPerBlockMin = 2
	BuildingsPerBlockMax = 5
	TreeChance           = 0.7
)

// Throttle/steer inputs below this magnitude count as released.
const inputEpsilon = 0.01
