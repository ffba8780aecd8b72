package game

// PlayerController adapts the normalized input pair onto the player vehicle.
// The input layer already clamps to [-1,1]; this is a thin per-tick bridge
// into the shared kinematic core.
type PlayerController struct {
	Car *Vehicle
}

func NewPlayerController(car *Vehicle) *PlayerController {
	return &PlayerController{Car: car}
}

// Apply sets this tick's commands and integrates the vehicle.
func (pc *PlayerController) Apply(steer, throttle, dt float64) {
	pc.Car.Steer = clampF(steer, -1, 1)
	pc.Car.Throttle = clampF(throttle, -1, 1)
	pc.Car.Integrate(dt)
}
