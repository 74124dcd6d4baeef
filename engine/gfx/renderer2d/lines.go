package renderer2d

import (
	"github.com/chewxy/math32"

	"github.com/hubastard/easel/engine/colors"
)

// DrawLine draws a segment from (x0,y0) to (x1,y1) as a quad of the given
// width, rotated along the segment's direction. Zero-length segments are
// skipped.
func (rd *Renderer2D) DrawLine(x0, y0, x1, y1, width float32, color colors.Color) {
	dx := x1 - x0
	dy := y1 - y0
	length := math32.Hypot(dx, dy)
	if length == 0 {
		return
	}
	if width <= 0 {
		width = 1
	}

	cx := (x0 + x1) * 0.5
	cy := (y0 + y1) * 0.5
	angle := math32.Atan2(dy, dx)

	rd.ensureQuadCapacity()
	rd.drawQuadInternal(cx, cy, length, width, color, angle, rd.texSlot(rd.white), 0, 0, 1, 1)
	rd.stats.LineCount++
}

// DrawLineStrip connects consecutive points with segments. Points come in as
// flat x,y pairs; fewer than two points draw nothing.
func (rd *Renderer2D) DrawLineStrip(points [][2]float32, width float32, color colors.Color) {
	for i := 1; i < len(points); i++ {
		rd.DrawLine(points[i-1][0], points[i-1][1], points[i][0], points[i][1], width, color)
	}
}
