// Package gui is the raylib window host for the demos.
package gui

import (
	"fmt"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/michaeljayl/graphicsn/internal/demo"
)

// Theme Colors (Monochrome Hyper-Minimalist)
var (
	ColBg      = rl.NewColor(10, 10, 10, 255)
	ColSelect  = rl.NewColor(255, 255, 255, 255)
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
	ColError   = rl.NewColor(255, 68, 68, 255)
)

const (
	screenWidth  = 1280
	screenHeight = 720
)

// Options configures the window.
type Options struct {
	FPS   int
	Title string
	Log   *slog.Logger
}

type App struct {
	Demo    demo.Demo
	Camera  rl.Camera3D
	Running bool
	Orbit   bool
	Status  string
	Time    float64

	log  *slog.Logger
	draw *renderer
}

func initWindow(opts Options) {
	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	rl.InitWindow(screenWidth, screenHeight, opts.Title)
	rl.SetTargetFPS(int32(opts.FPS))
	rl.SetExitKey(0)
}

// NewApp frames d with a perspective camera at its preferred distance.
func NewApp(d demo.Demo, log *slog.Logger) *App {
	dist := float32(d.CameraDistance())
	return &App{
		Demo: d,
		Camera: rl.NewCamera3D(
			rl.NewVector3(0, 0, dist),
			rl.NewVector3(0, 0, 0),
			rl.NewVector3(0, 1, 0),
			40.0,
			rl.CameraPerspective,
		),
		Running: true,
		Orbit:   true,
		log:     log,
		draw:    newRenderer(),
	}
}

// Run opens the window and blocks until it is closed.
func Run(d demo.Demo, opts Options) error {
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	if opts.Title == "" {
		opts.Title = "graphicsn :: " + d.Name()
	}
	if opts.Log == nil {
		opts.Log = slog.Default()
	}
	initWindow(opts)
	defer rl.CloseWindow()
	if !rl.IsWindowReady() {
		return fmt.Errorf("gui: window could not be opened")
	}
	app := NewApp(d, opts.Log)
	app.RunLoop()
	return nil
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		if !a.Update() {
			return
		}
		a.Draw()
	}
}

// Update handles input and advances the demo; false means quit.
func (a *App) Update() bool {
	dt := float64(rl.GetFrameTime())
	if rl.IsKeyPressed(rl.KeyQ) || rl.IsKeyPressed(rl.KeyEscape) {
		return false
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		a.Running = !a.Running
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		a.Orbit = !a.Orbit
	}

	// settings keys arrive as characters so shifted keys keep their case
	for ch := rl.GetCharPressed(); ch != 0; ch = rl.GetCharPressed() {
		if ch == ' ' || ch == 'q' {
			continue
		}
		handled, err := a.Demo.Key(string(rune(ch)))
		if !handled {
			continue
		}
		if err != nil {
			a.Status = err.Error()
			a.log.Warn("settings rejected", "key", string(rune(ch)), "err", err)
		} else {
			a.Status = ""
		}
	}

	if a.Orbit {
		rl.UpdateCamera(&a.Camera, rl.CameraOrbital)
	}
	if a.Running {
		a.Demo.Tick(dt)
		a.Time += dt
	}
	return true
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	rl.BeginMode3D(a.Camera)
	g, root := a.Demo.Scene()
	a.draw.draw(g, root)
	rl.EndMode3D()

	a.DrawHUD()
	rl.EndDrawing()
}

func (a *App) DrawHUD() {
	rl.DrawText("graphicsn", 30, 30, 24, ColSelect)
	rl.DrawText(":: "+a.Demo.Name(), 170, 34, 16, ColText)

	status, col := "RUNNING", ColSelect
	if !a.Running {
		status, col = "PAUSED", ColTextDim
	}
	w := int32(rl.GetScreenWidth())
	h := int32(rl.GetScreenHeight())
	rl.DrawText(status, w-130, 30, 16, col)
	if a.Status != "" {
		rl.DrawText(a.Status, 30, h-70, 16, ColError)
	}
	rl.DrawText("[SPACE] PAUSE  [TAB] ORBIT  [Q] QUIT", w-420, h-40, 14, ColTextDim)
	rl.DrawText(fmt.Sprintf("%d FPS  %.1fs", rl.GetFPS(), a.Time), 30, h-40, 14, ColTextDim)
}
