package ui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hubastard/easel/engine/colors"
	"github.com/hubastard/easel/engine/ui"
)

var canvasRegion = ui.Rect{X: 100, Y: 50, W: 300, H: 200}

func held(x, y float32) ui.PointerState {
	return ui.PointerState{Pos: ui.Vec2{X: x, Y: y}, Held: true}
}

func released() ui.PointerState {
	return ui.PointerState{}
}

func TestPaintingDragThenClick(t *testing.T) {
	p := ui.NewPainting()

	// drag three samples, release
	p.Update(held(100, 50), canvasRegion)
	p.Update(held(110, 50), canvasRegion)
	p.Update(held(110, 60), canvasRegion)
	p.Update(released(), canvasRegion)

	assert.Equal(t, 1, p.ClosedLines())
	assert.Equal(t, []ui.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}, p.Lines()[0])

	// a plain click leaves a single-point line that never draws
	p.Update(held(105, 55), canvasRegion)
	p.Update(released(), canvasRegion)

	assert.Equal(t, 2, p.ClosedLines())
	assert.Equal(t, []ui.Vec2{{X: 5, Y: 5}}, p.Lines()[1])
	assert.Equal(t, 2, p.SegmentCount())
}

func TestPaintingDedupStationaryPointer(t *testing.T) {
	p := ui.NewPainting()
	for i := 0; i < 5; i++ {
		p.Update(held(120, 70), canvasRegion)
	}
	assert.Len(t, p.Lines(), 1)
	assert.Len(t, p.Lines()[0], 1)
}

func TestPaintingLeavingCanvasClosesStroke(t *testing.T) {
	p := ui.NewPainting()
	p.Update(held(100, 50), canvasRegion)
	p.Update(held(120, 50), canvasRegion)
	p.Update(held(1000, 50), canvasRegion) // outside
	assert.Equal(t, 1, p.ClosedLines())

	// re-entering starts a fresh stroke
	p.Update(held(150, 60), canvasRegion)
	assert.Len(t, p.Lines(), 2)
	assert.Equal(t, []ui.Vec2{{X: 50, Y: 10}}, p.Lines()[1])
}

func TestPaintingReleaseWithoutInkIsNoOp(t *testing.T) {
	p := ui.NewPainting()
	for i := 0; i < 3; i++ {
		p.Update(released(), canvasRegion)
	}
	assert.Equal(t, 0, p.ClosedLines())
	assert.Equal(t, 0, p.SegmentCount())
}

func TestPaintingClearKeepsStroke(t *testing.T) {
	p := ui.NewPainting()
	p.SetStrokeWidth(4)
	p.SetStrokeColor(colors.Red)

	p.Update(held(100, 50), canvasRegion)
	p.Update(held(140, 50), canvasRegion)
	p.Update(released(), canvasRegion)
	p.Clear()

	assert.Equal(t, 0, p.SegmentCount())
	assert.Equal(t, ui.Stroke{Width: 4, Color: colors.Red}, p.Stroke())
}

func TestPaintingDrawUsesLiveStroke(t *testing.T) {
	p := ui.NewPainting()
	p.Update(held(100, 50), canvasRegion)
	p.Update(held(110, 50), canvasRegion)
	p.Update(held(120, 60), canvasRegion)
	p.Update(released(), canvasRegion)

	// restyle after the stroke was inked: redraw picks it up
	p.SetStrokeWidth(3)
	p.SetStrokeColor(colors.Yellow)

	rec := &recorder{}
	p.Draw(rec, canvasRegion)

	assert.Len(t, rec.lines, 2)
	for _, ln := range rec.lines {
		assert.Equal(t, float32(3), ln.width)
		assert.Equal(t, [4]float32(colors.Yellow), ln.color)
	}
	// points are region-relative on the way in and absolute on the way out
	assert.Equal(t, float32(100), rec.lines[0].x0)
	assert.Equal(t, float32(50), rec.lines[0].y0)
	assert.Equal(t, float32(110), rec.lines[0].x1)
}
