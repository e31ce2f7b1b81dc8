// Package game implements the input viewer's main loop.
package game

import (
	"fmt"
	gomath "math"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-engine/internal/config"
	"github.com/Faultbox/midgard-engine/internal/engine/audio"
	"github.com/Faultbox/midgard-engine/internal/engine/camera"
	"github.com/Faultbox/midgard-engine/internal/engine/debug"
	"github.com/Faultbox/midgard-engine/internal/engine/input"
	"github.com/Faultbox/midgard-engine/internal/engine/input/sdlinput"
	"github.com/Faultbox/midgard-engine/internal/engine/picking"
	"github.com/Faultbox/midgard-engine/internal/engine/renderer"
	"github.com/Faultbox/midgard-engine/internal/engine/window"
	"github.com/Faultbox/midgard-engine/internal/game/controls"
	"github.com/Faultbox/midgard-engine/internal/logger"
	"github.com/Faultbox/midgard-engine/pkg/math"
)

const (
	title        = "Midgard Input Viewer"
	markerScale  = 1.5
	markerRadius = markerScale / 2
)

var (
	cursorIdle    = math.Vec4One
	cursorPressed = math.Vec4{X: 1, Y: 0.6, Z: 0.2, W: 1}
)

// Game is the main viewer instance.
type Game struct {
	config   *config.Config
	log      *zap.Logger
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	camera   *camera.FreeLook
	controls *controls.Controller
	markers  []renderer.Marker
	selected int

	audio             *audio.Manager
	screenshots       *debug.Screenshots
	pendingScreenshot bool
}

// New creates the window, renderer and input tracker.
func New(cfg *config.Config) (*Game, error) {
	g := &Game{
		config: cfg,
		log:    logger.Named("game"),
	}
	g.log.Info("initializing",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
	)

	// Create window (this also creates OpenGL context)
	var err error
	g.window, err = window.New(window.Config{
		Title:      title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	g.renderer, err = renderer.New(renderer.Config{
		Width:  cfg.Graphics.Width,
		Height: cfg.Graphics.Height,
		VSync:  cfg.Graphics.VSync,
	})
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	trackerCfg := cfg.Input.Tracker()
	trackerCfg.Logger = logger.Named("input")
	g.input = input.New(trackerCfg, g.window)
	g.input.SetMouseLocked(cfg.Input.LockMouse)
	g.input.SetMouseWrapping(cfg.Input.WrapMouse)
	g.window.SetCursorVisible(!cfg.Input.LockMouse)

	g.camera = camera.NewFreeLook(math.Vec3{Y: 1, Z: 4})
	g.camera.LookSensitivity = cfg.Input.MouseSensitivity
	g.markers = ringMarkers(8, 6)
	g.selected = 0
	if cfg.Audio.Enabled {
		g.audio = audio.New(cfg.Audio.Volume)
		if err := g.audio.Init(); err != nil {
			g.log.Warn("audio unavailable", zap.Error(err))
			g.audio = nil
		}
	}
	g.screenshots = debug.NewScreenshots("screenshots", "inputviewer")
	g.controls = controls.New(g.input, g.camera, g.markers[0].Position, g.log)

	g.log.Info("initialized")
	return g, nil
}

// ringMarkers places n triangles on a circle around the origin, each turned
// to face the center.
func ringMarkers(n int, radius float32) []renderer.Marker {
	markers := make([]renderer.Marker, n)
	for k := range markers {
		angle := 2 * gomath.Pi * float64(k) / float64(n)
		pos := math.Vec3{
			X: radius * float32(gomath.Sin(angle)),
			Y: 1,
			Z: -radius * float32(gomath.Cos(angle)),
		}
		hue := float32(k) / float32(n)
		markers[k] = renderer.Marker{
			Position: pos,
			Rotation: math.QuatFromTo(math.Vec3{Z: 1}, pos.Neg()),
			Scale:    markerScale,
			Tint:     math.Vec4{X: 1 - hue, Y: 0.5 + hue/2, Z: hue, W: 1},
		}
	}
	return markers
}

// Run starts the main loop.
func (g *Game) Run() error {
	g.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()
	budget := g.config.Graphics.FrameBudget()

	g.log.Info("starting main loop")

	for g.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		// 1. Pump window events into the input queue
		g.pumpEvents()
		g.input.ProcessEnqueuedEvents()

		// 2. Update
		g.update(float32(dt))

		// 3. Render
		g.render()
		if g.pendingScreenshot {
			g.captureScreenshot()
		}
		g.window.SwapBuffers()

		// 4. Age per-frame input state
		g.input.OnFrameFinished()

		if budget > 0 {
			if rest := budget - time.Since(now); rest > 0 {
				time.Sleep(rest)
			}
		}

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			g.log.Debug("fps", zap.Int("count", frameCount), zap.Float64("dt_ms", dt*1000))
			g.updateTitle()
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (g *Game) pumpEvents() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			g.running = false
		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				g.renderer.Resize(int(e.Data1), int(e.Data2))
			}
		default:
			sdlinput.Enqueue(g.input, event)
		}
	}
}

// Close cleans up resources.
func (g *Game) Close() {
	g.log.Info("closing")

	if g.audio != nil {
		g.audio.Close()
	}
	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}

func (g *Game) update(dt float32) {
	act := g.controls.Update(dt)
	if act.Quit {
		g.running = false
	}
	g.pendingScreenshot = g.pendingScreenshot || act.Screenshot
	if act.Volume != 0 && g.audio != nil {
		g.audio.SetVolume(g.audio.Volume() + act.Volume)
		g.log.Info("volume changed", zap.Float64("volume", g.audio.Volume()))
		g.play(audio.CueClick)
	}
	if act.CursorVisible != nil {
		g.window.SetCursorVisible(*act.CursorVisible)
		if *act.CursorVisible {
			g.play(audio.CueUnlock)
		} else {
			g.play(audio.CueLock)
		}
	}
	switch {
	case g.input.MouseButtonDoubleClick(input.MouseLeft):
		g.play(audio.CueDoubleClick)
	case g.input.MouseButtonDown(input.MouseLeft):
		g.play(audio.CueClick)
	}

	if g.input.MouseButtonDown(input.MouseLeft) && !g.input.MouseLocked() {
		g.pick()
	}
}

// pick selects the marker under the cursor. A following double click turns
// the camera towards it.
func (g *Game) pick() {
	w, h := g.window.Size()
	inv := g.viewProjection().Inverse()
	ray := picking.ScreenToRay(g.input.MouseCoords(), float32(w), float32(h), inv)

	centers := make([]math.Vec3, len(g.markers))
	for k, m := range g.markers {
		centers[k] = m.Position
	}
	idx := picking.Nearest(ray, centers, markerRadius)
	g.log.Debug("click",
		zap.Stringer("at", g.input.MouseCoords()),
		zap.Bool("double", g.input.MouseButtonDoubleClick(input.MouseLeft)),
		zap.Int("marker", idx),
	)
	if idx < 0 {
		return
	}
	g.selected = idx
	g.controls.SetFocus(g.markers[idx].Position)
}

func (g *Game) viewProjection() math.Mat4 {
	return g.camera.ProjectionMatrix(g.renderer.Aspect()).Mul(g.camera.ViewMatrix())
}

func (g *Game) updateTitle() {
	p := g.camera.PitchYawRoll().Scale(180 / gomath.Pi)
	g.window.SetTitle(fmt.Sprintf("%s  lock:%t wrap:%t  pitch %.0f yaw %.0f",
		title, g.input.MouseLocked(), g.input.MouseWrapping(), p.X, p.Y))
}

func (g *Game) play(c audio.Cue) {
	if g.audio == nil {
		return
	}
	if err := g.audio.Play(c); err != nil {
		g.log.Warn("play cue", zap.Int("cue", int(c)), zap.Error(err))
	}
}

func (g *Game) captureScreenshot() {
	g.pendingScreenshot = false
	pixels, w, h := g.renderer.ReadPixels()
	path, err := g.screenshots.SaveGLPixels(pixels, w, h)
	if err != nil {
		g.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	g.log.Info("screenshot saved", zap.String("path", path))
}

func (g *Game) render() {
	g.renderer.Begin()

	markers := append([]renderer.Marker(nil), g.markers...)
	if g.selected >= 0 {
		markers[g.selected].Tint = markers[g.selected].Tint.Lerp(math.Vec4One, 0.6)
	}
	g.renderer.DrawMarkers(g.viewProjection(), markers)

	if !g.input.MouseLocked() {
		tint := cursorIdle
		if g.input.MouseButtonPressed(input.MouseLeft) {
			tint = cursorPressed
		}
		pos := g.input.MouseCoords()
		g.renderer.DrawCursor(int(pos.X), int(pos.Y), 16, tint)
	}

	g.renderer.End()
}
