package game

import "math"

// AIAgent is a traffic car: a vehicle plus an owned cyclic route and an
// avoidance radius. The route never changes after spawn; the target index
// wraps modulo the route length forever.
type AIAgent struct {
	Vehicle

	Route       []Waypoint
	Target      int
	Cruise      float64 // nominal speed when the road ahead is clear
	AvoidRadius float64
}

// AgentPos is a position sample used for the per-tick avoidance snapshot.
type AgentPos struct {
	X, Z float64
}

// TrafficSystem owns every AI agent. Agents are stored flat and identified by
// their stable spawn index into the simulation-wide agent set.
type TrafficSystem struct {
	Agents []AIAgent
	seed   uint64
}

func NewTrafficSystem(seed uint64) *TrafficSystem {
	if seed == 0 {
		seed = 1
	}
	return &TrafficSystem{
		Agents: make([]AIAgent, 0, 32),
		seed:   seed,
	}
}

// SpawnRandom places n agents on random block-centre waypoints, each with a
// freshly generated wandering route starting from its spawn point.
// firstIndex is the simulation-wide index of the first spawned agent.
func (ts *TrafficSystem) SpawnRandom(w *World, n, firstIndex int) {
	if n <= 0 || len(w.Waypoints) == 0 {
		return
	}
	r := NewRand(ts.seed ^ 0xBEEF)
	for i := 0; i < n; i++ {
		wp := w.Waypoints[r.Intn(len(w.Waypoints))]
		a := AIAgent{
			Vehicle: Vehicle{
				Kind:     KindAI,
				Index:    firstIndex + i,
				X:        wp.X,
				Z:        wp.Z,
				Yaw:      r.RangeF(-math.Pi, math.Pi),
				MaxSpeed: AIMaxSpeed,
			},
			Route:       w.NewRoute(r, wp.X, wp.Z),
			Cruise:      AICruiseSpeed * r.RangeF(0.8, 1.2),
			AvoidRadius: AIAvoidRadius,
		}
		ts.Agents = append(ts.Agents, a)
	}
}

// Update advances every agent one tick: steer toward the current waypoint,
// slow down and veer away from nearby cars, advance, and wrap the target
// index on arrival. positions is the full agent set (player included)
// captured before AI processing, indexed by spawn index, so no agent reacts
// to another agent's movement from the same tick.
func (ts *TrafficSystem) Update(dt float64, positions []AgentPos) {
	if dt <= 0 {
		return
	}
	for i := range ts.Agents {
		a := &ts.Agents[i]
		if len(a.Route) == 0 {
			// No route: hold position indefinitely. Not an error.
			a.Speed = 0
			continue
		}

		wp := a.Route[a.Target]
		dx := wp.X - a.X
		dz := wp.Z - a.Z
		desired := math.Atan2(dx, -dz)
		corrected := clampF(AISteerGain*angDiff(a.Yaw, desired), -1, 1)

		// Local avoidance: every nearby car slows us down and adds a
		// repulsion term. Multiple threats accumulate additively; this is a
		// cheap approximation, not vector averaging.
		speed := a.Cruise
		for idx, p := range positions {
			if idx == a.Index {
				continue
			}
			ox := a.X - p.X
			oz := a.Z - p.Z
			if math.Hypot(ox, oz) >= a.AvoidRadius {
				continue
			}
			speed = a.Cruise * AIAvoidSlow
			away := math.Atan2(ox, -oz)
			corrected += AIAvoidGain * angDiff(a.Yaw, away)
		}

		// AI rotation uses its own loose turn rate, decoupled from speed.
		a.Yaw = wrapAngle(a.Yaw + corrected*AITurnGain*dt*ReferenceFrameRate)
		a.Speed = speed
		fx, fz := a.Forward()
		a.X += fx * speed * dt
		a.Z += fz * speed * dt

		if math.Hypot(wp.X-a.X, wp.Z-a.Z) < ArriveDistance {
			a.Target = (a.Target + 1) % len(a.Route)
		}
	}
}
