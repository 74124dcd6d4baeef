package main

import (
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/hubastard/easel/engine/assets"
	"github.com/hubastard/easel/engine/colors"
	"github.com/hubastard/easel/engine/core"
	"github.com/hubastard/easel/engine/export"
	"github.com/hubastard/easel/engine/gfx/renderer2d"
	"github.com/hubastard/easel/engine/profiler"
	"github.com/hubastard/easel/engine/scene"
	"github.com/hubastard/easel/engine/ui"
)

// Widget ids. Stable across frames so hot/active/rect state survives.
const (
	idFileBtn = 1 + iota
	idExportBtn
	idQuitBtn
	idAddEntityBtn
	idRemoveEntityBtn
	idLabelField
	idValueSlider
	idIncrementBtn
	idLoadBtn
	idInvertBtn
	idRemoveBtn
	idWindowCheck
	idSceneImage
	idIconImage
	idStrokeSlider
	idStrokeColorBtn
	idClearBtn
	idPaintCanvas
)

const (
	topBarH    = 32
	sidePanelW = 220
	sceneViewW = 500
	sceneViewH = 500
)

var strokePalette = []colors.Color{
	colors.LightBlue, colors.Red, colors.Green, colors.Yellow, colors.White,
}

// LayerUI composits the whole overlay: top bar with a File menu, a side
// panel of widgets, and a central panel showing the off-screen scene plus
// a freehand painting canvas.
type LayerUI struct {
	r2d   *renderer2d.Renderer2D
	adapt *ui.Render2D
	reg   *ui.TextureRegistry
	scn   *LayerScene

	cam     *scene.OrthoCamera2D
	ctx     *ui.Ctx
	in      ui.Input
	uiScale float32

	painting   *ui.Painting
	spawned    []uuid.UUID
	strokeIdx  int
	label      string
	value      float32
	windowOpen bool
	inverted   bool
	menuOpen   bool

	icon    *assets.Image
	iconInv *assets.Image
	iconID  ui.TextureID
	sceneID ui.TextureID
}

func NewLayerUI(r2d *renderer2d.Renderer2D, adapt *ui.Render2D, reg *ui.TextureRegistry, scn *LayerScene) *LayerUI {
	return &LayerUI{
		r2d:        r2d,
		adapt:      adapt,
		reg:        reg,
		scn:        scn,
		uiScale:    1,
		label:      "Hello world!",
		windowOpen: true,
	}
}

func (l *LayerUI) OnAttach(e *core.Engine) {
	w, h := e.Window.FramebufferSize()
	l.resize(w, h)

	l.ctx = ui.New(16, 1024, 256)
	l.ctx.R = l.adapt
	l.ctx.I = &l.in

	l.painting = ui.NewPainting()

	icon, err := assets.LoadImage("icon.png")
	if err != nil {
		log.Println("icon fallback:", err)
		icon = assets.Placeholder("icon", 256, 256)
	}
	l.icon = icon
	if id, err := l.reg.Register(icon); err != nil {
		log.Println("register icon:", err)
	} else {
		l.iconID = id
	}

	l.sceneID = l.reg.RegisterExternal(l.scn.Target().ColorTexture())
}

func (l *LayerUI) OnDetach(e *core.Engine) {}

func (l *LayerUI) OnUpdate(e *core.Engine, dt float64) {}

func (l *LayerUI) OnRender(e *core.Engine, alpha float64) {
	defer profiler.Start("LayerUI.OnRender")()

	l.in.FromEngine(e.Input, l.uiScale)

	l.r2d.BeginScene(l.cam.VP())
	ui.Use(l.ctx)
	ui.BeginFrame(l.ctx)

	camW, camH := l.cam.Width(), l.cam.Height()

	l.topBar(camW)
	l.sidePanel(camH)
	l.centralPanel(camW, camH)
	if l.windowOpen {
		l.iconWindow(camW)
	}
	if l.menuOpen {
		l.fileMenu(e)
	}

	ui.Flush(l.ctx)
	l.r2d.EndScene()
}

func (l *LayerUI) topBar(camW float32) {
	ui.BeginView(ui.Props{
		Axis:       ui.Horizontal,
		CrossAlign: ui.Center,
		Sizing:     ui.Px(camW, topBarH),
		Gap:        8,
		Padding:    ui.Insets(8, 2, 8, 2),
		Bg:         [4]float32{0.10, 0.11, 0.13, 1},
	})
	if ui.Button(ui.ButtonProps{ID: idFileBtn, Text: "File"}) {
		l.menuOpen = !l.menuOpen
	}
	ui.EndView()
}

// fileMenu draws last so it stacks above the panels.
func (l *LayerUI) fileMenu(e *core.Engine) {
	ui.BeginView(ui.Props{
		Axis:       ui.Vertical,
		CrossAlign: ui.Stretch,
		Gap:        4,
		Padding:    ui.Insets(6, 6, 6, 6),
		Bg:         [4]float32{0.15, 0.16, 0.19, 1},
		BoundsX:    8,
		BoundsY:    topBarH + 2,
	})
	if ui.Button(ui.ButtonProps{ID: idExportBtn, Text: "Export PDF"}) {
		if err := export.PaintingPDF("painting.pdf", l.painting); err != nil {
			log.Println("export:", err)
		} else {
			log.Println("painting.pdf written")
		}
		l.menuOpen = false
	}
	if ui.Button(ui.ButtonProps{ID: idQuitBtn, Text: "Quit"}) {
		e.Window.RequestClose()
	}
	ui.EndView()
}

func (l *LayerUI) sidePanel(camH float32) {
	ui.BeginView(ui.Props{
		Axis:    ui.Vertical,
		Sizing:  ui.Px(sidePanelW, camH-topBarH),
		Gap:     8,
		Padding: ui.Insets(10, 10, 10, 10),
		Bg:      [4]float32{0.12, 0.13, 0.15, 1},
		BoundsY: topBarH,
	})

	ui.Heading(0, "Side Panel")

	ui.BeginView(ui.Props{Axis: ui.Horizontal, Gap: 6})
	if ui.Button(ui.ButtonProps{ID: idAddEntityBtn, Text: "Add Entity"}) {
		l.spawned = append(l.spawned, l.scn.SpawnRandom())
	}
	if ui.Button(ui.ButtonProps{ID: idRemoveEntityBtn, Text: "Remove Entity"}) {
		if n := len(l.spawned); n > 0 {
			l.scn.RemoveEntity(l.spawned[n-1])
			l.spawned = l.spawned[:n-1]
		}
	}
	ui.EndView()
	ui.Label(ui.LabelProps{Text: fmt.Sprintf("Entities: %d", l.scn.EntityCount())})

	ui.Spacer(0, 6)
	ui.Label(ui.LabelProps{Text: "Write something:"})
	ui.TextField(ui.TextFieldProps{ID: idLabelField, Text: &l.label, Width: 180})

	ui.Spacer(0, 6)
	ui.Slider(ui.SliderProps{ID: idValueSlider, Value: &l.value, Min: 0, Max: 10, Label: "value", Width: 120})
	if ui.Button(ui.ButtonProps{ID: idIncrementBtn, Text: "Increment"}) {
		l.value += 1
	}

	ui.Spacer(0, 6)
	ui.BeginView(ui.Props{Axis: ui.Horizontal, Gap: 6})
	if ui.Button(ui.ButtonProps{ID: idLoadBtn, Text: "Load"}) {
		l.loadIcon()
	}
	if ui.Button(ui.ButtonProps{ID: idInvertBtn, Text: "Invert"}) {
		l.invertIcon()
	}
	if ui.Button(ui.ButtonProps{ID: idRemoveBtn, Text: "Remove"}) {
		l.removeIcon()
	}
	ui.EndView()

	ui.Spacer(0, 6)
	ui.Checkbox(ui.CheckboxProps{ID: idWindowCheck, Checked: &l.windowOpen, Label: "Window is open"})

	ui.EndView()
}

func (l *LayerUI) centralPanel(camW, camH float32) {
	ui.BeginView(ui.Props{
		Axis:    ui.Vertical,
		Sizing:  ui.Px(camW-sidePanelW, camH-topBarH),
		Gap:     8,
		Padding: ui.Insets(10, 10, 10, 10),
		BoundsX: sidePanelW,
		BoundsY: topBarH,
	})

	ui.Heading(0, l.label)

	sceneTex, _ := l.reg.Resolve(l.sceneID)
	ui.Image(ui.ImageProps{ID: idSceneImage, Tex: sceneTex, W: sceneViewW, H: sceneViewH, FlipY: true})

	ui.Heading(0, "Painting")
	ui.BeginView(ui.Props{Axis: ui.Horizontal, CrossAlign: ui.Center, Gap: 8})
	w := l.painting.Stroke().Width
	if ui.Slider(ui.SliderProps{ID: idStrokeSlider, Value: &w, Min: 1, Max: 8, Label: "px", Width: 100}) {
		l.painting.SetStrokeWidth(w)
	}
	if ui.Button(ui.ButtonProps{ID: idStrokeColorBtn, Text: "Color"}) {
		l.strokeIdx = (l.strokeIdx + 1) % len(strokePalette)
		l.painting.SetStrokeColor(strokePalette[l.strokeIdx])
	}
	if ui.Button(ui.ButtonProps{ID: idClearBtn, Text: "Clear"}) {
		l.painting.Clear()
	}
	ui.EndView()
	ui.Canvas(ui.CanvasProps{ID: idPaintCanvas, Painting: l.painting, W: sceneViewW, H: 220})

	ui.EndView()
}

func (l *LayerUI) iconWindow(camW float32) {
	ui.BeginView(ui.Props{
		Axis:    ui.Vertical,
		Gap:     6,
		Padding: ui.Insets(8, 8, 8, 8),
		Bg:      [4]float32{0.14, 0.15, 0.18, 0.95},
		BoundsX: camW - 290,
		BoundsY: topBarH + 28,
	})
	ui.Heading(0, "Window")
	iconTex, _ := l.reg.Resolve(l.iconID)
	ui.Image(ui.ImageProps{ID: idIconImage, Tex: iconTex, W: 256, H: 256})
	ui.EndView()
}

// currentIcon is the handle matching the inverted flag.
func (l *LayerUI) currentIcon() *assets.Image {
	if l.inverted {
		if l.iconInv == nil {
			l.iconInv = l.icon.Inverted()
		}
		return l.iconInv
	}
	return l.icon
}

// loadIcon (re)registers the current handle. Registering twice is a no-op,
// so mashing Load never duplicates the texture.
func (l *LayerUI) loadIcon() {
	id, err := l.reg.Register(l.currentIcon())
	if err != nil {
		log.Println("load icon:", err)
		return
	}
	l.iconID = id
}

func (l *LayerUI) invertIcon() {
	l.inverted = !l.inverted
	l.loadIcon()
}

// removeIcon drops the texture. The stale id simply stops resolving and the
// image widget degrades to a placeholder.
func (l *LayerUI) removeIcon() {
	l.reg.Deregister(l.icon)
	if l.iconInv != nil {
		l.reg.Deregister(l.iconInv)
	}
}

func (l *LayerUI) OnEvent(e *core.Engine, ev core.Event) bool {
	switch v := ev.(type) {
	case core.EventKey:
		if v.Down && v.Key == core.KeySlash && l.ctx.Focused() == 0 {
			if l.uiScale == 1 {
				l.uiScale = 1.25
			} else {
				l.uiScale = 1
			}
			w, h := e.Window.FramebufferSize()
			l.resize(w, h)
			return true
		}
	case core.EventResize:
		l.resize(v.W, v.H)
	}
	return false
}

func (l *LayerUI) resize(w, h int) {
	sw := int(float32(w) / l.uiScale)
	sh := int(float32(h) / l.uiScale)
	if l.cam == nil {
		l.cam = scene.NewOrtho2D(sw, sh)
	} else {
		l.cam.SetViewportPixels(sw, sh)
	}
	l.cam.SetPosition(float32(sw/2), float32(sh/2)) // origin top-left
}
