package game

// Transform is the published per-frame output for one vehicle, consumed by
// the renderer, camera, and HUD.
type Transform struct {
	X, Y, Z float64
	Yaw     float64
	Speed   float64
	Kind    VehicleKind
}

// Simulation orchestrates one frame: player update, player collision, AI
// updates against a positions snapshot, then transform publication. Single
// threaded and frame driven; every mutation happens inside Step.
type Simulation struct {
	World   *World
	Player  *Vehicle
	Control *PlayerController
	Traffic *TrafficSystem

	// Reused each frame to avoid per-tick allocations.
	snapshot   []AgentPos
	transforms []Transform
}

// NewSimulation generates the world and spawns the player plus n traffic
// agents. The player takes index 0; agents follow at 1..n.
func NewSimulation(seed uint64, cars int) *Simulation {
	world := NewWorld(seed)
	world.GenerateAll()

	player := NewPlayerVehicle(0, 0)
	traffic := NewTrafficSystem(seed ^ 0xCAFE)
	traffic.SpawnRandom(world, cars, 1)

	return &Simulation{
		World:   world,
		Player:  player,
		Control: NewPlayerController(player),
		Traffic: traffic,
	}
}

// Step advances the whole simulation by one frame. steer/throttle are the
// normalized player inputs for this frame; dt is capped at MaxFrameDelta to
// bound integration error during frame hitches.
func (s *Simulation) Step(dt, steer, throttle float64) {
	if dt <= 0 {
		return
	}
	if dt > MaxFrameDelta {
		dt = MaxFrameDelta
	}

	s.Control.Apply(steer, throttle, dt)
	ResolvePlayerCollision(s.Player, s.World)

	// Capture the full agent set after the player has moved but before any
	// AI moves, so every agent avoids the same pre-update positions.
	s.snapshot = s.snapshot[:0]
	s.snapshot = append(s.snapshot, AgentPos{X: s.Player.X, Z: s.Player.Z})
	for i := range s.Traffic.Agents {
		a := &s.Traffic.Agents[i]
		s.snapshot = append(s.snapshot, AgentPos{X: a.X, Z: a.Z})
	}

	s.Traffic.Update(dt, s.snapshot)
}

// Transforms publishes the current frame's vehicle transforms, player first.
// The returned slice is reused across frames.
func (s *Simulation) Transforms() []Transform {
	s.transforms = s.transforms[:0]
	s.transforms = append(s.transforms, Transform{
		X: s.Player.X, Y: s.Player.Y, Z: s.Player.Z,
		Yaw: s.Player.Yaw, Speed: s.Player.Speed, Kind: KindPlayer,
	})
	for i := range s.Traffic.Agents {
		a := &s.Traffic.Agents[i]
		s.transforms = append(s.transforms, Transform{
			X: a.X, Y: a.Y, Z: a.Z,
			Yaw: a.Yaw, Speed: a.Speed, Kind: KindAI,
		})
	}
	return s.transforms
}
