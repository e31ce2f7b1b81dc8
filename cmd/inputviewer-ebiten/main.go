// Package main is the entry point for the Ebiten input viewer.
package main

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-engine/internal/config"
	"github.com/Faultbox/midgard-engine/internal/engine/camera"
	"github.com/Faultbox/midgard-engine/internal/engine/input"
	"github.com/Faultbox/midgard-engine/internal/engine/input/ebiteninput"
	"github.com/Faultbox/midgard-engine/internal/game/controls"
	"github.com/Faultbox/midgard-engine/internal/logger"
	"github.com/Faultbox/midgard-engine/pkg/math"
)

type viewer struct {
	source   *ebiteninput.Source
	input    *input.Input
	camera   *camera.FreeLook
	controls *controls.Controller

	// status is captured before per-frame state is aged so Draw sees it.
	status  string
	cursor  math.Vec2
	pressed bool
}

func (v *viewer) Update() error {
	v.source.Poll(v.input)
	v.input.ProcessEnqueuedEvents()

	act := v.controls.Update(1.0 / float32(ebiten.TPS()))
	v.cursor = v.input.MouseCoords()
	v.pressed = v.input.MouseButtonPressed(input.MouseLeft)
	v.status = v.describe()

	v.input.OnFrameFinished()
	if act.Quit {
		return ebiten.Termination
	}
	return nil
}

func (v *viewer) describe() string {
	in := v.input
	var b strings.Builder
	fmt.Fprintf(&b, "mouse %v  delta %v  axis %v\n", in.MouseCoords(), in.MouseDelta(), in.MouseAxis())
	fmt.Fprintf(&b, "wheel %.2f  locked %t  wrapping %t\n", in.MouseWheel(), in.MouseLocked(), in.MouseWrapping())
	for _, btn := range []struct {
		name string
		b    input.MouseButton
	}{{"left", input.MouseLeft}, {"middle", input.MouseMiddle}, {"right", input.MouseRight}} {
		fmt.Fprintf(&b, "%-6s pressed %-5t down %-5t up %-5t double %t\n", btn.name,
			in.MouseButtonPressed(btn.b), in.MouseButtonDown(btn.b),
			in.MouseButtonUp(btn.b), in.MouseButtonDoubleClick(btn.b))
	}
	fmt.Fprintf(&b, "camera forward %v  fov %.2f\n", v.camera.Forward(), v.camera.FOV)
	b.WriteString("L lock  W wrap  right-drag look  wheel zoom  arrows move  Esc quit")
	return b.String()
}

func (v *viewer) Draw(screen *ebiten.Image) {
	clr := color.RGBA{0xff, 0xff, 0xff, 0xff}
	if v.pressed {
		clr = color.RGBA{0xff, 0x99, 0x33, 0xff}
	}
	vector.DrawFilledRect(screen, v.cursor.X-4, v.cursor.Y-4, 8, 8, clr, false)
	ebitenutil.DebugPrint(screen, v.status)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	v.source.SetSize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	logger.StartSession()

	logger.Info("=== Midgard Input Viewer (Ebiten) ===")

	src := ebiteninput.NewSource(cfg.Graphics.Width, cfg.Graphics.Height)
	trackerCfg := cfg.Input.Tracker()
	trackerCfg.Logger = logger.Named("input")
	in := input.New(trackerCfg, src)
	in.SetMouseLocked(cfg.Input.LockMouse)
	in.SetMouseWrapping(cfg.Input.WrapMouse)

	cam := camera.NewFreeLook(math.Vec3{})
	cam.LookSensitivity = cfg.Input.MouseSensitivity

	v := &viewer{
		source:   src,
		input:    in,
		camera:   cam,
		controls: controls.New(in, cam, math.Vec3{Z: -1}, logger.Named("controls")),
	}

	ebiten.SetWindowTitle("Midgard Input Viewer")
	ebiten.SetWindowSize(cfg.Graphics.Width, cfg.Graphics.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.Graphics.Fullscreen)
	ebiten.SetVsyncEnabled(cfg.Graphics.VSync)

	if err := ebiten.RunGame(v); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("viewer closed normally")
}
