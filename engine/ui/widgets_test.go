package ui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hubastard/easel/engine/core"
	"github.com/hubastard/easel/engine/ui"
)

// recorder captures draw calls so layout and interaction can be asserted
// without a GPU. Measure is deterministic: half the font size per rune.
type recLine struct {
	x0, y0, x1, y1, width float32
	color                 [4]float32
}

type recQuad struct {
	cx, cy, w, h float32
	color        [4]float32
}

type recText struct {
	x, y float32
	s    string
	size float32
}

type recorder struct {
	lines    []recLine
	quads    []recQuad
	texts    []recText
	texDraws int
}

func (r *recorder) DrawQuad(cx, cy, w, h float32, color [4]float32, rotation float32) {
	r.quads = append(r.quads, recQuad{cx, cy, w, h, color})
}

func (r *recorder) DrawTexture(x, y, w, h float32, tex core.Texture, tint [4]float32, flipY bool) {
	r.texDraws++
}

func (r *recorder) DrawLine(x0, y0, x1, y1, width float32, color [4]float32) {
	r.lines = append(r.lines, recLine{x0, y0, x1, y1, width, color})
}

func (r *recorder) DrawText(x, y float32, s string, size float32, color [4]float32) {
	r.texts = append(r.texts, recText{x, y, s, size})
}

func (r *recorder) Measure(s string, size float32) (w, h float32) {
	return float32(len([]rune(s))) * size * 0.5, size
}

func newTestUI() (*ui.Ctx, *recorder, *ui.Input) {
	rec := &recorder{}
	in := &ui.Input{}
	ctx := ui.New(8, 256, 64)
	ctx.R = rec
	ctx.I = in
	return ctx, rec, in
}

func runFrame(ctx *ui.Ctx, build func()) {
	ui.Use(ctx)
	ui.BeginFrame(ctx)
	build()
	ui.Flush(ctx)
}

func clearEdges(in *ui.Input) {
	in.MousePressed = false
	in.MouseReleased = false
	in.Chars = nil
	in.Backspace = false
	in.Enter = false
}

func TestButtonClickCompletesInsideRect(t *testing.T) {
	ctx, _, in := newTestUI()
	sz := ui.Px(100, 30)
	var clicked bool
	build := func() {
		clicked = false
		ui.BeginView(ui.Props{Axis: ui.Vertical})
		if ui.Button(ui.ButtonProps{ID: 1, Text: "Go", Sizing: &sz}) {
			clicked = true
		}
		ui.EndView()
	}

	// first frame resolves the rect; no input yet
	runFrame(ctx, build)
	assert.False(t, clicked)

	in.MouseX, in.MouseY = 50, 15
	in.MouseDown, in.MousePressed = true, true
	runFrame(ctx, build)
	assert.False(t, clicked)

	clearEdges(in)
	in.MouseDown = false
	in.MouseReleased = true
	runFrame(ctx, build)
	assert.True(t, clicked)

	clearEdges(in)
	runFrame(ctx, build)
	assert.False(t, clicked)
}

func TestButtonReleaseOutsideDoesNotClick(t *testing.T) {
	ctx, _, in := newTestUI()
	sz := ui.Px(100, 30)
	var clicked bool
	build := func() {
		clicked = false
		ui.BeginView(ui.Props{Axis: ui.Vertical})
		if ui.Button(ui.ButtonProps{ID: 1, Text: "Go", Sizing: &sz}) {
			clicked = true
		}
		ui.EndView()
	}

	runFrame(ctx, build)

	in.MouseX, in.MouseY = 50, 15
	in.MouseDown, in.MousePressed = true, true
	runFrame(ctx, build)

	clearEdges(in)
	in.MouseX = 400 // dragged away before letting go
	in.MouseDown = false
	in.MouseReleased = true
	runFrame(ctx, build)
	assert.False(t, clicked)
}

func TestSliderDragClampsButExternalWritesDoNot(t *testing.T) {
	ctx, _, in := newTestUI()
	v := float32(0)
	build := func() {
		ui.BeginView(ui.Props{Axis: ui.Vertical})
		ui.Slider(ui.SliderProps{ID: 7, Value: &v, Min: 0, Max: 10, Width: 100})
		ui.EndView()
	}

	runFrame(ctx, build) // track rect becomes (0,0,100,22)

	in.MouseX, in.MouseY = 50, 10
	in.MouseDown, in.MousePressed = true, true
	runFrame(ctx, build)
	assert.InDelta(t, 5, v, 1e-4)

	clearEdges(in)
	in.MouseX = 500 // far past the track end while still dragging
	runFrame(ctx, build)
	assert.InDelta(t, 10, v, 1e-4)

	in.MouseDown = false
	in.MouseReleased = true
	runFrame(ctx, build)

	// an increment-style write may leave the range; the slider keeps it
	clearEdges(in)
	v = 25
	runFrame(ctx, build)
	assert.Equal(t, float32(25), v)
}

func TestCheckboxToggles(t *testing.T) {
	ctx, _, in := newTestUI()
	checked := false
	build := func() {
		ui.BeginView(ui.Props{Axis: ui.Vertical})
		ui.Checkbox(ui.CheckboxProps{ID: 4, Checked: &checked, Label: "open"})
		ui.EndView()
	}

	runFrame(ctx, build)

	in.MouseX, in.MouseY = 9, 9
	in.MouseDown, in.MousePressed = true, true
	runFrame(ctx, build)
	assert.False(t, checked)

	clearEdges(in)
	in.MouseDown = false
	in.MouseReleased = true
	runFrame(ctx, build)
	assert.True(t, checked)

	clearEdges(in)
	in.MouseDown, in.MousePressed = true, true
	runFrame(ctx, build)
	clearEdges(in)
	in.MouseDown = false
	in.MouseReleased = true
	runFrame(ctx, build)
	assert.False(t, checked)
}

func TestTextFieldEditing(t *testing.T) {
	ctx, _, in := newTestUI()
	s := ""
	build := func() {
		ui.BeginView(ui.Props{Axis: ui.Vertical})
		ui.TextField(ui.TextFieldProps{ID: 3, Text: &s})
		ui.EndView()
	}

	runFrame(ctx, build)
	assert.Equal(t, 0, ctx.Focused())

	// click to focus
	in.MouseX, in.MouseY = 10, 10
	in.MouseDown, in.MousePressed = true, true
	runFrame(ctx, build)
	assert.Equal(t, 3, ctx.Focused())

	clearEdges(in)
	in.MouseDown = false
	in.Chars = []rune("héllo")
	runFrame(ctx, build)
	assert.Equal(t, "héllo", s)

	clearEdges(in)
	in.Backspace = true
	runFrame(ctx, build)
	assert.Equal(t, "héll", s)

	clearEdges(in)
	in.Enter = true
	runFrame(ctx, build)
	assert.Equal(t, 0, ctx.Focused())

	// unfocused: typing goes nowhere
	clearEdges(in)
	in.Chars = []rune("x")
	runFrame(ctx, build)
	assert.Equal(t, "héll", s)
}

func TestNestedViewOffsetsChildren(t *testing.T) {
	ctx, rec, _ := newTestUI()
	sz := ui.Px(40, 20)
	build := func() {
		ui.BeginView(ui.Props{Axis: ui.Vertical, BoundsX: 10, BoundsY: 20})
		ui.Label(ui.LabelProps{Text: "A"})
		ui.BeginView(ui.Props{Axis: ui.Horizontal, Gap: 4})
		ui.Button(ui.ButtonProps{ID: 11, Text: "L", Sizing: &sz})
		ui.Button(ui.ButtonProps{ID: 12, Text: "R", Sizing: &sz})
		ui.EndView()
		ui.EndView()
	}

	runFrame(ctx, build)

	// label is 16 tall, so the row starts at y=36; the second button sits
	// one button width plus the gap to the right
	centers := make([][2]float32, 0, len(rec.quads))
	for _, q := range rec.quads {
		centers = append(centers, [2]float32{q.cx, q.cy})
	}
	assert.Contains(t, centers, [2]float32{30, 46})
	assert.Contains(t, centers, [2]float32{74, 46})
}
