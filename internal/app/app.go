// Package app wires the window, input, scene and renderer into the
// interactive application loop.
package app

import (
	"fmt"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/lumforge/shadowcast/internal/config"
	"github.com/lumforge/shadowcast/internal/engine/camera"
	"github.com/lumforge/shadowcast/internal/engine/capture"
	"github.com/lumforge/shadowcast/internal/engine/input"
	"github.com/lumforge/shadowcast/internal/engine/render"
	"github.com/lumforge/shadowcast/internal/engine/scene"
	"github.com/lumforge/shadowcast/internal/engine/shader"
	"github.com/lumforge/shadowcast/internal/engine/texture"
	"github.com/lumforge/shadowcast/internal/engine/window"
	"github.com/lumforge/shadowcast/internal/logger"
)

const (
	title = "Shadowcast"

	defaultFOV = 45.0
	minFOV     = 5.0
	maxFOV     = 179.0

	nearClip = 0.1
	farClip  = 1000.1

	moveSpeed  = 5.0
	turboSpeed = 50.0
)

var defaultEye = mgl32.Vec3{-3.0, 3.0, -5.0}

// App is the running application.
type App struct {
	cfg     *config.Config
	running bool

	window *window.Window
	input  *input.Input
	camera *camera.Camera

	programs  *shader.Programs
	materials *texture.Materials
	samplers  *texture.Samplers
	scene     *scene.Scene
	renderer  *render.Renderer

	screenshot *capture.Screenshot

	fov         float32
	msaaEnabled bool
	animate     bool
	animTime    float32

	settings render.Settings
}

// New creates the window, the GL resources and the scene.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		cfg:         cfg,
		fov:         defaultFOV,
		msaaEnabled: cfg.Graphics.MSAASamples > 1,
		animate:     cfg.Scene.Animate,
		screenshot:  capture.NewScreenshot("screenshots", "shadowcast"),
	}

	var err error
	a.window, err = window.New(window.Config{
		Title:      title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// The GL context exists now, load the function pointers
	if err := gl.Init(); err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	// The window surface is sRGB capable; all shading happens in linear space
	gl.Enable(gl.FRAMEBUFFER_SRGB)

	if a.programs, err = shader.NewPrograms(); err != nil {
		a.window.Close()
		return nil, err
	}

	a.samplers = texture.NewSamplers()
	a.materials = texture.LoadMaterials(cfg.Scene.MaterialDir)

	if a.scene, err = scene.New(cfg.Scene, a.programs, a.materials, a.samplers); err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to build scene: %w", err)
	}

	a.renderer, err = render.New(
		a.programs, a.scene,
		int32(cfg.Graphics.Width), int32(cfg.Graphics.Height),
		a.activeSamples(),
		cfg.Scene.Spotlight,
		int32(cfg.Scene.ShadowMapResolution),
	)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.input = input.New()

	a.camera = camera.New()
	a.resetCamera()
	a.updateProjection(cfg.Graphics.Width, cfg.Graphics.Height)

	a.settings = render.Settings{
		MSAASamples: a.activeSamples(),
		Wireframe:   cfg.Graphics.Wireframe,
		Tonemapping: cfg.Graphics.Tonemapping,
		DepthFail:   cfg.Graphics.DepthFail,
	}

	logger.Info("application initialized",
		zap.Int("cubes", a.scene.CubeCount()),
		zap.Int("lights", a.scene.Lights().Count()),
		zap.Bool("spotlight", cfg.Scene.Spotlight),
	)
	return a, nil
}

// activeSamples returns the sample count honoring the MSAA toggle.
func (a *App) activeSamples() int32 {
	if a.msaaEnabled {
		return int32(a.cfg.Graphics.MSAASamples)
	}
	return 1
}

func (a *App) resetCamera() {
	a.camera.SetTransformation(defaultEye, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})
}

func (a *App) updateProjection(width, height int) {
	if height < 1 {
		height = 1
	}
	aspect := float32(width) / float32(height)
	a.camera.SetProjection(a.fov, aspect, nearClip, farClip)
}

// Run executes the main loop until quit.
func (a *App) Run() error {
	a.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting main loop")

	for a.running {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		if a.input.Update() {
			a.running = false
			break
		}

		for _, event := range a.input.Events() {
			switch event.Type {
			case input.EventWindowResize:
				a.onResize(event.Width, event.Height)
			case input.EventKeyDown:
				a.onKeyDown(event.Key)
			}
		}

		a.updateCamera(dt)

		if a.animate {
			a.animTime += dt
			a.scene.Advance(a.animTime)
		}

		a.renderer.DrawFrame(a.camera, a.settings)
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			a.window.SetTitle(fmt.Sprintf("%s - %d fps", title, frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (a *App) onResize(width, height int) {
	a.updateProjection(width, height)
	if err := a.renderer.Resize(int32(width), int32(height), a.activeSamples()); err != nil {
		logger.Error("resize failed", zap.Error(err))
	}
}

func (a *App) onKeyDown(key sdl.Scancode) {
	switch key {
	case sdl.SCANCODE_ESCAPE:
		a.running = false

	case sdl.SCANCODE_F1:
		a.msaaEnabled = !a.msaaEnabled
		a.settings.MSAASamples = a.activeSamples()
		w, h := a.window.GetSize()
		if err := a.renderer.Resize(int32(w), int32(h), a.activeSamples()); err != nil {
			logger.Error("MSAA toggle failed", zap.Error(err))
		}
		logger.Info("MSAA toggled", zap.Bool("enabled", a.msaaEnabled))

	case sdl.SCANCODE_F2:
		a.settings.Wireframe = !a.settings.Wireframe
		logger.Info("wireframe toggled", zap.Bool("enabled", a.settings.Wireframe))

	case sdl.SCANCODE_F3:
		a.cfg.Graphics.VSync = !a.cfg.Graphics.VSync
		a.window.SetVSync(a.cfg.Graphics.VSync)
		logger.Info("vsync toggled", zap.Bool("enabled", a.cfg.Graphics.VSync))

	case sdl.SCANCODE_F4:
		a.settings.Tonemapping = !a.settings.Tonemapping
		logger.Info("tonemapping toggled", zap.Bool("enabled", a.settings.Tonemapping))

	case sdl.SCANCODE_F5:
		a.animate = !a.animate
		logger.Info("animation toggled", zap.Bool("enabled", a.animate))

	case sdl.SCANCODE_F6:
		a.settings.DepthFail = !a.settings.DepthFail
		logger.Info("shadow volume convention toggled", zap.Bool("depth_fail", a.settings.DepthFail))

	case sdl.SCANCODE_F7:
		a.cfg.Graphics.Wireframe = a.settings.Wireframe
		a.cfg.Graphics.Tonemapping = a.settings.Tonemapping
		a.cfg.Graphics.DepthFail = a.settings.DepthFail
		a.cfg.Scene.Animate = a.animate
		if err := a.cfg.Save(); err != nil {
			logger.Error("failed to save settings", zap.Error(err))
		} else {
			logger.Info("settings saved", zap.String("dir", config.ConfigDir()))
		}

	case sdl.SCANCODE_F12:
		w, h := a.window.GetSize()
		if path, err := a.screenshot.CaptureWindow(w, h); err != nil {
			logger.Error("screenshot failed", zap.Error(err))
		} else {
			logger.Info("screenshot saved", zap.String("path", path))
		}

	case sdl.SCANCODE_RETURN:
		a.resetCamera()

	case sdl.SCANCODE_EQUALS, sdl.SCANCODE_KP_PLUS:
		a.setFOV(a.fov + 1.0)
	case sdl.SCANCODE_MINUS, sdl.SCANCODE_KP_MINUS:
		a.setFOV(a.fov - 1.0)
	case sdl.SCANCODE_BACKSPACE:
		a.setFOV(defaultFOV)
	}
}

func (a *App) setFOV(fov float32) {
	if fov < minFOV {
		fov = minFOV
	}
	if fov > maxFOV {
		fov = maxFOV
	}
	a.fov = fov
	w, h := a.window.GetSize()
	a.updateProjection(w, h)
}

// updateCamera applies the continuous movement and mouse look controls.
func (a *App) updateCamera(dt float32) {
	var dir camera.Direction
	if a.input.KeyHeld(sdl.SCANCODE_W) {
		dir |= camera.Forward
	}
	if a.input.KeyHeld(sdl.SCANCODE_S) {
		dir |= camera.Backward
	}
	if a.input.KeyHeld(sdl.SCANCODE_A) {
		dir |= camera.Left
	}
	if a.input.KeyHeld(sdl.SCANCODE_D) {
		dir |= camera.Right
	}
	if a.input.KeyHeld(sdl.SCANCODE_R) {
		dir |= camera.Up
	}
	if a.input.KeyHeld(sdl.SCANCODE_F) {
		dir |= camera.Down
	}

	if a.input.KeyHeld(sdl.SCANCODE_LSHIFT) || a.input.KeyHeld(sdl.SCANCODE_RSHIFT) {
		a.camera.SetMovementSpeed(turboSpeed)
	} else {
		a.camera.SetMovementSpeed(moveSpeed)
	}

	var dx, dy float32
	if a.input.RightMouseHeld() {
		dx, dy = a.input.MouseDelta()
	}

	a.camera.Move(dir, dx, dy, dt)
}

// Close releases all resources in reverse creation order.
func (a *App) Close() {
	logger.Info("shutting down")

	if a.renderer != nil {
		a.renderer.Destroy()
	}
	if a.scene != nil {
		a.scene.Destroy()
	}
	if a.materials != nil {
		a.materials.Destroy()
	}
	if a.samplers != nil {
		a.samplers.Destroy()
	}
	if a.programs != nil {
		a.programs.Destroy()
	}
	if a.window != nil {
		a.window.Close()
	}
}
