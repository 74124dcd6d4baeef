package ui

import "github.com/hubastard/easel/engine/colors"

// ===== Label =====

type LabelProps struct {
	ID       int
	Text     string
	FontSize float32
	Color    [4]float32
	Sizing   Sizing
}

func Label(p LabelProps) {
	ctx := current
	if p.FontSize == 0 {
		p.FontSize = 16
	}
	// Measure during "record" phase
	w, h := ctx.R.Measure(p.Text, p.FontSize)

	sz := p.Sizing
	if sz.WMode == SizeFixed {
		w = sz.WVal
	}
	if sz.HMode == SizeFixed {
		h = sz.HVal
	}

	if p.Color == ([4]float32{}) {
		p.Color = [4]float32(colors.White)
	}

	iCmd := emit(ctx, cmd{
		kind:     cmdLabel,
		id:       p.ID,
		text:     p.Text,
		fontSize: p.FontSize,
		color:    p.Color,
	})

	addItem(ctx, item{kind: itemWidget, iCmd: iCmd, w: w, h: h})
}

// Heading is a label at heading size.
func Heading(id int, s string) {
	Label(LabelProps{ID: id, Text: s, FontSize: 22})
}

// Spacer adds empty space along the parent view's main axis.
func Spacer(w, h float32) {
	addItem(current, item{kind: itemSpacer, iCmd: -1, w: w, h: h})
}

// ===== Button =====

type ButtonProps struct {
	ID       int
	Text     string
	FontSize float32
	TextCol  [4]float32
	Bg       [4]float32
	Padding  Insets4
	// Sizing modes: Fit (by default), Px, or Expand
	Sizing *Sizing
}

// Button returns true when a click completed on the widget. Hit-testing uses
// the rect resolved on the previous frame, the usual immediate-mode trick, so
// the result is available in the same pass that records the widget.
func Button(p ButtonProps) (clicked bool) {
	ctx := current
	if p.FontSize == 0 {
		p.FontSize = 16
	}
	if p.Padding == (Insets4{}) {
		p.Padding = Insets(10, 6, 10, 6)
	}
	tw, th := ctx.R.Measure(p.Text, p.FontSize)
	w := tw + p.Padding.L + p.Padding.R
	h := th + p.Padding.T + p.Padding.B

	sz := Fit()
	if p.Sizing != nil {
		sz = *p.Sizing
	}
	if sz.WMode == SizeFixed {
		w = sz.WVal
	}
	if sz.HMode == SizeFixed {
		h = sz.HVal
	}

	if p.TextCol == ([4]float32{}) {
		p.TextCol = [4]float32(colors.White)
	}
	if p.Bg == ([4]float32{}) {
		p.Bg = [4]float32{0.22, 0.25, 0.30, 1}
	}

	st := ctx.state[p.ID]
	hot := st.contains(ctx.I.MouseX, ctx.I.MouseY)
	if ctx.I.MousePressed && hot {
		st.active = true
	}
	if ctx.I.MouseReleased {
		if st.active && hot {
			clicked = true
		}
		st.active = false
	}
	st.hot = hot
	ctx.state[p.ID] = st

	iCmd := emit(ctx, cmd{
		kind:     cmdButton,
		id:       p.ID,
		text:     p.Text,
		fontSize: p.FontSize,
		color:    p.TextCol,
		bg:       p.Bg,
		clicked:  clicked,
	})

	addItem(ctx, item{kind: itemWidget, iCmd: iCmd, w: w, h: h})
	return clicked
}

// ===== Internal: record & resolve =====

func emit(ctx *Ctx, c cmd) int {
	if len(ctx.cmds) == cap(ctx.cmds) {
		return -1
	}
	ctx.cmds = append(ctx.cmds, c)
	return len(ctx.cmds) - 1
}

func resolveWidget(ctx *Ctx, c *cmd) {
	// remember this frame's rect for next frame's hit-testing
	if c.id != 0 {
		st := ctx.state[c.id]
		st.rect = [4]float32{c.x, c.y, c.w, c.h}
		ctx.state[c.id] = st
	}

	switch c.kind {
	case cmdBgQuad:
		drawQuad(ctx, c)
	case cmdLabel:
		drawLabel(ctx, c)
	case cmdButton:
		drawButton(ctx, c)
	case cmdSlider:
		drawSlider(ctx, c)
	case cmdCheckbox:
		drawCheckbox(ctx, c)
	case cmdTextField:
		drawTextField(ctx, c)
	case cmdImage:
		drawImage(ctx, c)
	case cmdCanvas:
		resolveCanvas(ctx, c)
	}
}

func drawQuad(ctx *Ctx, c *cmd) {
	cx := c.x + c.w*0.5
	cy := c.y + c.h*0.5
	ctx.R.DrawQuad(cx, cy, c.w, c.h, c.bg, 0)
}

func drawLabel(ctx *Ctx, c *cmd) {
	ctx.R.DrawText(c.x, c.y, c.text, c.fontSize, c.color)
}

func drawButton(ctx *Ctx, c *cmd) {
	st := ctx.state[c.id]

	// simple visual feedback
	bg := c.bg
	if st.active {
		bg[0] *= 0.85
		bg[1] *= 0.85
		bg[2] *= 0.85
	} else if st.hot {
		bg[0] *= 1.15
		bg[1] *= 1.15
		bg[2] *= 1.15
	}
	if bg[3] > 0 {
		cx := c.x + c.w*0.5
		cy := c.y + c.h*0.5
		ctx.R.DrawQuad(cx, cy, c.w, c.h, bg, 0)
	}

	// label centered inside
	tw, th := ctx.R.Measure(c.text, c.fontSize)
	tx := c.x + (c.w-tw)*0.5
	ty := c.y + (c.h-th)*0.5
	ctx.R.DrawText(tx, ty, c.text, c.fontSize, c.color)
}
