package ui

import "github.com/hubastard/easel/engine/core"

// Renderer is the drawing surface the UI records into. Quad coordinates are
// center-based, text and textures are top-left based, matching renderer2d.
type Renderer interface {
	DrawQuad(cx, cy, w, h float32, color [4]float32, rotation float32)
	DrawTexture(x, y, w, h float32, tex core.Texture, tint [4]float32, flipY bool)
	DrawLine(x0, y0, x1, y1, width float32, color [4]float32)
	DrawText(x, y float32, text string, size float32, color [4]float32)
	Measure(text string, size float32) (w, h float32)
}

// Input is the per-frame pointer/keyboard snapshot widgets consume,
// already in UI coordinates.
type Input struct {
	MouseX, MouseY float32
	MouseDown      bool
	MousePressed   bool
	MouseReleased  bool
	Chars          []rune
	Backspace      bool
	Enter          bool
}

// FromEngine fills the snapshot from the engine input state. scale converts
// framebuffer pixels into UI units.
func (i *Input) FromEngine(in *core.Input, scale float32) {
	if scale <= 0 {
		scale = 1
	}
	mx, my := in.Mouse()
	i.MouseX = float32(mx) / scale
	i.MouseY = float32(my) / scale
	i.MouseDown = in.IsButtonDown(core.MouseButtonLeft)
	i.MousePressed = in.WasButtonPressed(core.MouseButtonLeft)
	i.MouseReleased = in.WasButtonReleased(core.MouseButtonLeft)
	i.Chars = in.TypedChars()
	i.Backspace = in.WasKeyPressed(core.KeyBackspace)
	i.Enter = in.WasKeyPressed(core.KeyEnter)
}

// ===== Immediate-UI context =====

type Ctx struct {
	R Renderer
	I *Input

	// Fixed-capacity stacks & buffers reused every frame
	viewStack []viewScope // layout scopes
	cmds      []cmd       // drawing + hit-test commands (deferred)
	items     []item      // transient per-view child list (reused)

	// Stable widget state (hot/active/rect); no per-frame inserts after bootstrap
	state map[int]widgetState

	// Focused widget id (text input), 0 = none.
	focus int

	// Limits to avoid re-alloc; tweak once if a frame ever hits the ceiling
	capViews int
	capCmds  int
	capItems int
}

func New(capViews, capCmds, capItems int) *Ctx {
	return &Ctx{
		viewStack: make([]viewScope, 0, capViews),
		cmds:      make([]cmd, 0, capCmds),
		items:     make([]item, 0, capItems),
		state:     make(map[int]widgetState, 256), // fills once, then steady
		capViews:  capViews,
		capCmds:   capCmds,
		capItems:  capItems,
	}
}

// Reset for a new frame. No heap allocations. A click outside any focusable
// widget drops focus; the widget that owns the click re-claims it.
func BeginFrame(ctx *Ctx) {
	ctx.cmds = ctx.cmds[:0]
	ctx.viewStack = ctx.viewStack[:0]
	if ctx.I.MousePressed {
		ctx.focus = 0
	}
	// items is a transient scratch reused per view, cleared per EndView
}

// Flush resolves geometry-dependent interaction state and draws every
// recorded command in order (later commands draw on top).
func Flush(ctx *Ctx) {
	for i := range ctx.cmds {
		resolveWidget(ctx, &ctx.cmds[i])
	}
}

// Focused reports the widget currently holding keyboard focus.
func (ctx *Ctx) Focused() int { return ctx.focus }
