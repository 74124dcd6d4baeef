package ui

import (
	"github.com/hubastard/easel/engine/colors"
	"github.com/hubastard/easel/engine/core"
	"github.com/hubastard/easel/engine/gfx/renderer2d"
	"github.com/hubastard/easel/engine/text"
)

// Render2D adapts the batched quad renderer and a font atlas to the ui
// Renderer surface. Call renderer2d BeginScene/EndScene around the ui frame.
type Render2D struct {
	R2D  *renderer2d.Renderer2D
	Font *text.Font
}

func NewRender2D(r2d *renderer2d.Renderer2D, font *text.Font) *Render2D {
	return &Render2D{R2D: r2d, Font: font}
}

func (r *Render2D) DrawQuad(cx, cy, w, h float32, color [4]float32, rotation float32) {
	r.R2D.DrawQuad(cx, cy, w, h, colors.Color(color), rotation)
}

// DrawTexture takes a top-left origin; renderer2d quads are center-based.
// flipY draws with V reversed, for render-target attachments.
func (r *Render2D) DrawTexture(x, y, w, h float32, tex core.Texture, tint [4]float32, flipY bool) {
	sub := renderer2d.Full(tex)
	if flipY {
		sub = renderer2d.FlippedV(tex)
	}
	r.R2D.DrawSubTexQuad(x+w*0.5, y+h*0.5, w, h, sub, colors.Color(tint), 0)
}

func (r *Render2D) DrawLine(x0, y0, x1, y1, width float32, color [4]float32) {
	r.R2D.DrawLine(x0, y0, x1, y1, width, colors.Color(color))
}

func (r *Render2D) DrawText(x, y float32, s string, size float32, color [4]float32) {
	text.DrawText(r.R2D, r.Font, x, y, s, size, color)
}

func (r *Render2D) Measure(s string, size float32) (w, h float32) {
	return text.MeasureText(r.Font, s, size)
}
