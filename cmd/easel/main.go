package main

import (
	"log"
	"time"

	"github.com/hubastard/easel/engine/assets"
	"github.com/hubastard/easel/engine/colors"
	"github.com/hubastard/easel/engine/core"
	glbackend "github.com/hubastard/easel/engine/gfx/gl"
	"github.com/hubastard/easel/engine/gfx/renderer2d"
	"github.com/hubastard/easel/engine/gfx/renderer3d"
	"github.com/hubastard/easel/engine/platform"
	"github.com/hubastard/easel/engine/profiler"
	"github.com/hubastard/easel/engine/text"
	"github.com/hubastard/easel/engine/ui"
)

type App struct {
	lastFrame time.Time
	tick      int

	r2d   *renderer2d.Renderer2D
	r3d   *renderer3d.Renderer3D
	font  *text.Font
	reg   *ui.TextureRegistry
	stats renderer2d.Statistics

	sceneLayer *LayerScene
	uiLayer    *LayerUI
	debugLayer *LayerDebug
}

func (a *App) OnStart(e *core.Engine) {
	profiler.Init(1 << 10) // ~1K scope samples

	a.r2d = must(newRenderer2D(e))
	a.r3d = must(newRenderer3D(e))

	// Bundled font, falling back to the built-in face when missing
	font, err := text.LoadTTF(e.Renderer, "RobotoMono.ttf", 32)
	if err != nil {
		log.Println("font fallback:", err)
		font = must(text.LoadDefault(e.Renderer, 32))
	}
	a.font = font

	a.reg = ui.NewTextureRegistry(e.Renderer)
	adapt := ui.NewRender2D(a.r2d, a.font)

	a.sceneLayer = NewLayerScene(a.r3d)
	e.PushLayer(a.sceneLayer)

	a.uiLayer = NewLayerUI(a.r2d, adapt, a.reg, a.sceneLayer)
	e.PushLayer(a.uiLayer)

	a.debugLayer = &LayerDebug{r2d: a.r2d, adapt: adapt, stats: &a.stats}
	e.PushLayer(a.debugLayer)
}

func newRenderer2D(e *core.Engine) (*renderer2d.Renderer2D, error) {
	vs, err := assets.LoadShader("renderer2d.vert")
	if err != nil {
		return nil, err
	}
	fs, err := assets.LoadShader("renderer2d.frag")
	if err != nil {
		return nil, err
	}
	return renderer2d.New(e.Renderer, vs, fs, 10000)
}

func newRenderer3D(e *core.Engine) (*renderer3d.Renderer3D, error) {
	vs, err := assets.LoadShader("scene.vert")
	if err != nil {
		return nil, err
	}
	fs, err := assets.LoadShader("scene.frag")
	if err != nil {
		return nil, err
	}
	return renderer3d.New(e.Renderer, vs, fs)
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func (a *App) OnUpdate(e *core.Engine, dt float64) {
	a.tick++

	now := time.Now()
	if a.debugLayer != nil && !a.lastFrame.IsZero() {
		a.debugLayer.frameDuration = float32(now.Sub(a.lastFrame).Seconds() * 1000.0)
		a.debugLayer.tick = a.tick
	}
	a.lastFrame = now
}

func (a *App) OnRender(e *core.Engine, alpha float64) {
	a.stats = a.r2d.Stats()
}

func (a *App) OnEvent(e *core.Engine, ev core.Event) {
	if k, ok := ev.(core.EventKey); ok && k.Down && k.Key == core.KeyEscape {
		e.Window.RequestClose()
	}
}

func (a *App) OnShutdown(e *core.Engine) {}

func main() {
	cfg := core.Config{
		Title:                "Easel",
		Width:                1280,
		Height:               720,
		VSync:                true,
		ClearColor:           [4]float32(colors.DarkGray),
		ScratchAllocCapacity: 4096, // 4 KB initial capacity
	}
	app := &App{}

	newWindow := func(cfg core.Config) (core.Window, error) {
		return platform.NewGLFWWindow(cfg, nil)
	}
	newRenderer := func(win core.Window, cfg core.Config) (core.Renderer, error) {
		return glbackend.NewRendererGL(win, cfg)
	}

	if err := core.Run(app, cfg, newWindow, newRenderer); err != nil {
		log.Fatal(err)
	}
}
