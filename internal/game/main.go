package game

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

// RunDesktop generates the city, spawns the player and traffic, and drives
// the frame loop until the window closes.
func RunDesktop() {
	runtime.LockOSThread()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	settings, err := LoadSettings(os.Getenv("DRIFT_CONFIG"))
	if err != nil {
		logger.Warn("settings load failed, using defaults", zap.Error(err))
	}

	// Seed from environment or clock.
	seed := uint64(time.Now().UnixNano())
	if settings.Seed != 0 {
		seed = settings.Seed
	}
	if s := os.Getenv("DRIFT_SEED"); s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			seed = v
		}
	}

	window, err := initWindow(settings.Window.Width, settings.Window.Height, settings.Window.Title)
	if err != nil {
		panic(err)
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		panic(fmt.Errorf("gl init: %w", err))
	}
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.ClearColor(0.08, 0.09, 0.08, 1.0)

	audio, err := InitEngineAudio()
	if err != nil {
		logger.Warn("audio init failed, continuing without sound", zap.Error(err))
		audio = nil
	}

	sim := NewSimulation(seed, settings.Traffic.Cars)
	logger.Info("world generated",
		zap.Uint64("seed", seed),
		zap.Int("buildings", len(sim.World.Buildings)),
		zap.Int("waypoints", len(sim.World.Waypoints)),
		zap.Int("trafficCars", len(sim.Traffic.Agents)),
	)

	rend, err := NewRenderer()
	if err != nil {
		panic(fmt.Errorf("renderer: %w", err))
	}
	defer rend.Destroy()
	rend.UploadWorldMesh(sim.World)

	cam := NewCamera()
	cam.X = sim.Player.X
	cam.Z = sim.Player.Z

	var carBuf, hudBuf []float32

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > 0.1 {
			dt = 0.1
		}

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		steer, throttle := ReadDriveInput(window)
		sim.Step(dt, steer, throttle)
		transforms := sim.Transforms()

		// Camera follows the published player transform; E/R zoom.
		cam.Follow(transforms[0], dt)
		if window.GetKey(glfw.KeyE) == glfw.Press {
			cam.ZoomBy(1.4, dt)
		}
		if window.GetKey(glfw.KeyR) == glfw.Press {
			cam.ZoomBy(-1.4, dt)
		}

		audio.SetSpeedRatio(absF(sim.Player.Speed) / sim.Player.MaxSpeed)

		rend.BeginFrame(cam, fbW, fbH)
		rend.DrawWorld()
		carBuf = BuildVehicleMesh(transforms, carBuf)
		rend.DrawDynamic(carBuf)
		hudBuf = BuildHUDMesh(sim.Player.Speed, sim.Player.MaxSpeed, fbW, fbH, hudBuf)
		rend.DrawScreen(hudBuf, fbW, fbH)

		window.SwapBuffers()
	}

	logger.Info("session ended")
}
