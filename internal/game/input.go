package game

import "github.com/go-gl/glfw/v3.3/glfw"

// ReadDriveInput maps the keyboard onto the normalized steer/throttle pair.
// Steer: A/left = -1, D/right = +1. Throttle: W/up = -1 (forward),
// S/down = +1 (brake/reverse). Opposing keys cancel.
func ReadDriveInput(window *glfw.Window) (steer, throttle float64) {
	if window.GetKey(glfw.KeyA) == glfw.Press || window.GetKey(glfw.KeyLeft) == glfw.Press {
		steer -= 1
	}
	if window.GetKey(glfw.KeyD) == glfw.Press || window.GetKey(glfw.KeyRight) == glfw.Press {
		steer += 1
	}
	if window.GetKey(glfw.KeyW) == glfw.Press || window.GetKey(glfw.KeyUp) == glfw.Press {
		throttle -= 1
	}
	if window.GetKey(glfw.KeyS) == glfw.Press || window.GetKey(glfw.KeyDown) == glfw.Press {
		throttle += 1
	}
	return steer, throttle
}
