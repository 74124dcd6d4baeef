package main

import (
	"fmt"

	"github.com/hubastard/easel/engine/core"
	"github.com/hubastard/easel/engine/gfx/renderer2d"
	"github.com/hubastard/easel/engine/profiler"
	"github.com/hubastard/easel/engine/scene"
	"github.com/hubastard/easel/engine/ui"
)

// Stats overlay. P toggles it, Ctrl+P dumps a profile trace.
type LayerDebug struct {
	r2d   *renderer2d.Renderer2D
	adapt *ui.Render2D
	stats *renderer2d.Statistics

	cam *scene.OrthoCamera2D
	ctx *ui.Ctx
	in  ui.Input

	visible       bool
	frameDuration float32
	tick          int
}

var yellow = [4]float32{1, 1, 0, 1}

func (l *LayerDebug) OnAttach(e *core.Engine) {
	w, h := e.Window.FramebufferSize()
	l.cam = scene.NewOrtho2D(w, h)
	l.cam.SetPosition(float32(w/2), float32(h/2)) // origin top-left

	l.ctx = ui.New(8, 256, 64)
	l.ctx.R = l.adapt
	l.ctx.I = &l.in
}

func (l *LayerDebug) OnDetach(e *core.Engine) {}

func (l *LayerDebug) OnUpdate(e *core.Engine, dt float64) {}

func (l *LayerDebug) OnRender(e *core.Engine, alpha float64) {
	if !l.visible {
		return
	}
	defer profiler.Start("LayerDebug.OnRender")()

	l.in.FromEngine(e.Input, 1)

	l.r2d.BeginScene(l.cam.VP())
	ui.Use(l.ctx)
	ui.BeginFrame(l.ctx)

	ui.BeginView(ui.Props{
		Axis:    ui.Vertical,
		Gap:     4,
		Padding: ui.Insets(16, 16, 16, 16),
		Bg:      [4]float32{0, 0, 0, 0.5},
		BoundsX: l.cam.Width() - 280,
		BoundsY: l.cam.Height() - 320,
	})
	line := func(s string, col [4]float32) {
		ui.Label(ui.LabelProps{Text: s, FontSize: 14, Color: col})
	}
	line(fmt.Sprintf("Frame: %d", l.tick), yellow)
	line(fmt.Sprintf("%2.3f ms (%.2f FPS)", l.frameDuration, 1000.0/l.frameDuration), [4]float32{})
	line("2D Renderer", yellow)
	line(fmt.Sprintf("Draw Calls: %d", l.stats.DrawCalls), [4]float32{})
	line(fmt.Sprintf("Quads: %d", l.stats.QuadCount), [4]float32{})
	line(fmt.Sprintf("Lines: %d", l.stats.LineCount), [4]float32{})
	line(fmt.Sprintf("Vertices: %d", l.stats.TotalVertexCount()), [4]float32{})
	line(fmt.Sprintf("Textures: %d", l.stats.TextureCount), [4]float32{})
	line("Memory", yellow)
	line(fmt.Sprintf("Usage: %.3f MB", float32(profiler.MemoryUsage())/(1<<20)), [4]float32{})
	line(fmt.Sprintf("Goroutines: %d", profiler.NumGoroutine()), [4]float32{})
	line("GPU", yellow)
	line(e.Renderer.GPUVendor(), [4]float32{})
	line(e.Renderer.GPURenderer(), [4]float32{})
	ui.EndView()

	ui.Flush(l.ctx)
	l.r2d.EndScene()
}

func (l *LayerDebug) OnEvent(e *core.Engine, ev core.Event) bool {
	switch v := ev.(type) {
	case core.EventKey:
		if v.Down && v.Key == core.KeyP {
			if v.Mods&core.ModCtrl != 0 {
				if path, err := profiler.OpenProfilerGraph(); err == nil {
					fmt.Println("speedscope dump:", path)
				} else {
					fmt.Println("profiler dump error:", err)
				}
			} else {
				l.visible = !l.visible
			}
			return true
		}
	case core.EventResize:
		l.cam.SetViewportPixels(v.W, v.H)
		l.cam.SetPosition(float32(v.W/2), float32(v.H/2)) // origin top-left
	}
	return false
}
