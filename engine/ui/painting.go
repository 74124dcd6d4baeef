package ui

import "github.com/hubastard/easel/engine/colors"

type Vec2 struct{ X, Y float32 }

// Rect is an axis-aligned region in UI coordinates, top-left origin.
type Rect struct{ X, Y, W, H float32 }

func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// PointerState is one per-frame pointer sample scoped to a canvas region.
type PointerState struct {
	Pos  Vec2
	Held bool // primary button down
}

// Stroke is the live drawing style: applied to every stroke on redraw, so
// changing it restyles the whole painting.
type Stroke struct {
	Width float32
	Color colors.Color
}

// Painting accumulates freehand polylines from pointer drags. Points are
// stored canvas-local (relative to the region's top-left corner) so the
// canvas can move without disturbing the drawing.
//
// Invariant: at most one polyline is open at a time and it is always the
// last element of lines.
type Painting struct {
	lines  [][]Vec2
	stroke Stroke
}

func NewPainting() *Painting {
	return &Painting{
		stroke: Stroke{Width: 1, Color: colors.LightBlue},
	}
}

// Update advances the widget state machine with one pointer sample.
func (p *Painting) Update(pointer PointerState, region Rect) {
	if len(p.lines) == 0 {
		p.lines = append(p.lines, nil)
	}

	last := len(p.lines) - 1
	if pointer.Held && region.Contains(pointer.Pos) {
		canvasPos := Vec2{pointer.Pos.X - region.X, pointer.Pos.Y - region.Y}
		line := p.lines[last]
		// skip duplicates: a stationary held pointer must not grow the line
		if len(line) == 0 || line[len(line)-1] != canvasPos {
			p.lines[last] = append(line, canvasPos)
		}
	} else if len(p.lines[last]) > 0 {
		// pointer released or left the canvas: close the stroke
		p.lines = append(p.lines, nil)
	}
}

// Draw renders every polyline in insertion order with the live stroke.
// Polylines with fewer than 2 points are invisible (a click without a drag
// leaves no mark).
func (p *Painting) Draw(r Renderer, region Rect) {
	for _, line := range p.lines {
		if len(line) < 2 {
			continue
		}
		for i := 1; i < len(line); i++ {
			r.DrawLine(
				region.X+line[i-1].X, region.Y+line[i-1].Y,
				region.X+line[i].X, region.Y+line[i].Y,
				p.stroke.Width, [4]float32(p.stroke.Color),
			)
		}
	}
}

// Clear discards every polyline. The stroke style is untouched.
func (p *Painting) Clear() { p.lines = p.lines[:0] }

func (p *Painting) Stroke() Stroke                { return p.stroke }
func (p *Painting) SetStroke(s Stroke)            { p.stroke = s }
func (p *Painting) SetStrokeWidth(w float32)      { p.stroke.Width = w }
func (p *Painting) SetStrokeColor(c colors.Color) { p.stroke.Color = c }

// Lines exposes the polylines for inspection (draw order = z-order).
func (p *Painting) Lines() [][]Vec2 { return p.lines }

// ClosedLines counts the finished strokes: every line except a trailing
// open one.
func (p *Painting) ClosedLines() int {
	if len(p.lines) == 0 {
		return 0
	}
	return len(p.lines) - 1
}

// SegmentCount reports how many visible segments a redraw produces.
func (p *Painting) SegmentCount() int {
	n := 0
	for _, line := range p.lines {
		if len(line) >= 2 {
			n += len(line) - 1
		}
	}
	return n
}

// ===== Canvas widget =====

type CanvasProps struct {
	ID       int
	Painting *Painting
	W, H     float32
	Bg       [4]float32
}

// Canvas embeds a painting surface into the current view. Input is applied
// and strokes are drawn at resolve time, when the region's rect is known.
func Canvas(p CanvasProps) {
	ctx := current
	if p.Bg == ([4]float32{}) {
		p.Bg = [4]float32{0.05, 0.06, 0.07, 1}
	}

	iCmd := emit(ctx, cmd{
		kind:   cmdCanvas,
		id:     p.ID,
		bg:     p.Bg,
		canvas: p.Painting,
	})

	addItem(ctx, item{kind: itemWidget, iCmd: iCmd, w: p.W, h: p.H})
}

func resolveCanvas(ctx *Ctx, c *cmd) {
	drawQuad(ctx, c)
	if c.canvas == nil {
		return
	}
	region := Rect{X: c.x, Y: c.y, W: c.w, H: c.h}
	c.canvas.Update(PointerState{
		Pos:  Vec2{ctx.I.MouseX, ctx.I.MouseY},
		Held: ctx.I.MouseDown,
	}, region)
	c.canvas.Draw(ctx.R, region)
}
