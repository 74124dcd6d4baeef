package ui

import (
	"github.com/hubastard/easel/engine/colors"
	"github.com/hubastard/easel/engine/core"
	"github.com/hubastard/easel/engine/scratch"
)

// ===== Slider =====

type SliderProps struct {
	ID       int
	Value    *float32
	Min, Max float32
	Label    string
	Width    float32 // track width; 0 = 160
	FontSize float32
}

// Slider clamps dragged values to [Min,Max]. The bound value itself is not
// clamped: external writes (e.g. an increment button) may push it out of
// range and the knob just pins to the end of the track.
func Slider(p SliderProps) (changed bool) {
	ctx := current
	if p.Width == 0 {
		p.Width = 160
	}
	if p.FontSize == 0 {
		p.FontSize = 16
	}
	const trackH = 22

	st := ctx.state[p.ID]
	hot := st.contains(ctx.I.MouseX, ctx.I.MouseY)
	if ctx.I.MousePressed && hot {
		st.active = true
	}
	if st.active && ctx.I.MouseDown && st.rect[2] > 0 {
		t := (ctx.I.MouseX - st.rect[0]) / st.rect[2]
		if t < 0 {
			t = 0
		}
		if t > 1 {
			t = 1
		}
		v := p.Min + t*(p.Max-p.Min)
		if v != *p.Value {
			*p.Value = v
			changed = true
		}
	}
	if !ctx.I.MouseDown {
		st.active = false
	}
	st.hot = hot
	ctx.state[p.ID] = st

	label := p.Label
	if label != "" {
		label = scratch.Sprintf("%.2f %s", *p.Value, label)
	} else {
		label = scratch.Sprintf("%.2f", *p.Value)
	}
	lw, _ := ctx.R.Measure(label, p.FontSize)

	iCmd := emit(ctx, cmd{
		kind:     cmdSlider,
		id:       p.ID,
		text:     label,
		fontSize: p.FontSize,
		value:    *p.Value,
		min:      p.Min,
		max:      p.Max,
		color:    [4]float32(colors.White),
	})

	addItem(ctx, item{kind: itemWidget, iCmd: iCmd, w: p.Width + 8 + lw, h: trackH})
	return changed
}

func drawSlider(ctx *Ctx, c *cmd) {
	// the track occupies the rect minus the trailing label
	lw, lh := ctx.R.Measure(c.text, c.fontSize)
	trackW := c.w - 8 - lw
	if trackW < 10 {
		trackW = 10
	}

	// hit rect is the track only
	st := ctx.state[c.id]
	st.rect = [4]float32{c.x, c.y, trackW, c.h}
	ctx.state[c.id] = st

	cy := c.y + c.h*0.5
	ctx.R.DrawQuad(c.x+trackW*0.5, cy, trackW, 4, [4]float32{0.3, 0.33, 0.38, 1}, 0)

	t := float32(0)
	if c.max > c.min {
		t = (c.value - c.min) / (c.max - c.min)
	}
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	knobX := c.x + t*trackW
	knob := [4]float32{0.55, 0.65, 0.85, 1}
	if st.active {
		knob = [4]float32{0.7, 0.8, 1, 1}
	}
	ctx.R.DrawQuad(knobX, cy, 10, c.h, knob, 0)

	ctx.R.DrawText(c.x+trackW+8, c.y+(c.h-lh)*0.5, c.text, c.fontSize, c.color)
}

// ===== Checkbox =====

type CheckboxProps struct {
	ID       int
	Checked  *bool
	Label    string
	FontSize float32
}

func Checkbox(p CheckboxProps) (toggled bool) {
	ctx := current
	if p.FontSize == 0 {
		p.FontSize = 16
	}
	const box = 18

	st := ctx.state[p.ID]
	hot := st.contains(ctx.I.MouseX, ctx.I.MouseY)
	if ctx.I.MousePressed && hot {
		st.active = true
	}
	if ctx.I.MouseReleased {
		if st.active && hot {
			*p.Checked = !*p.Checked
			toggled = true
		}
		st.active = false
	}
	st.hot = hot
	ctx.state[p.ID] = st

	lw, lh := ctx.R.Measure(p.Label, p.FontSize)

	iCmd := emit(ctx, cmd{
		kind:     cmdCheckbox,
		id:       p.ID,
		text:     p.Label,
		fontSize: p.FontSize,
		checked:  *p.Checked,
		color:    [4]float32(colors.White),
	})

	h := lh
	if h < box {
		h = box
	}
	addItem(ctx, item{kind: itemWidget, iCmd: iCmd, w: box + 8 + lw, h: h})
	return toggled
}

func drawCheckbox(ctx *Ctx, c *cmd) {
	const box = 18
	cy := c.y + c.h*0.5
	ctx.R.DrawQuad(c.x+box*0.5, cy, box, box, [4]float32{0.22, 0.25, 0.30, 1}, 0)
	if c.checked {
		ctx.R.DrawQuad(c.x+box*0.5, cy, box-8, box-8, [4]float32{0.55, 0.75, 1, 1}, 0)
	}
	_, lh := ctx.R.Measure(c.text, c.fontSize)
	ctx.R.DrawText(c.x+box+8, c.y+(c.h-lh)*0.5, c.text, c.fontSize, c.color)
}

// ===== Text field =====

type TextFieldProps struct {
	ID       int
	Text     *string
	Width    float32 // 0 = 160
	FontSize float32
}

// TextField is a free-form single-line editor: no validation, no length
// bound. Clicking it takes keyboard focus; typed runes append, backspace
// removes the final rune.
func TextField(p TextFieldProps) (changed bool) {
	ctx := current
	if p.Width == 0 {
		p.Width = 160
	}
	if p.FontSize == 0 {
		p.FontSize = 16
	}
	const fieldH = 26

	st := ctx.state[p.ID]
	hot := st.contains(ctx.I.MouseX, ctx.I.MouseY)
	if ctx.I.MousePressed && hot {
		ctx.focus = p.ID
	}
	st.hot = hot
	ctx.state[p.ID] = st

	if ctx.focus == p.ID {
		for _, r := range ctx.I.Chars {
			*p.Text += string(r)
			changed = true
		}
		if ctx.I.Backspace && len(*p.Text) > 0 {
			rs := []rune(*p.Text)
			*p.Text = string(rs[:len(rs)-1])
			changed = true
		}
		if ctx.I.Enter {
			ctx.focus = 0
		}
	}

	iCmd := emit(ctx, cmd{
		kind:     cmdTextField,
		id:       p.ID,
		text:     *p.Text,
		fontSize: p.FontSize,
		focused:  ctx.focus == p.ID,
		color:    [4]float32(colors.White),
	})

	addItem(ctx, item{kind: itemWidget, iCmd: iCmd, w: p.Width, h: fieldH})
	return changed
}

func drawTextField(ctx *Ctx, c *cmd) {
	cx := c.x + c.w*0.5
	cy := c.y + c.h*0.5
	bg := [4]float32{0.13, 0.15, 0.18, 1}
	if c.focused {
		bg = [4]float32{0.16, 0.19, 0.23, 1}
	}
	ctx.R.DrawQuad(cx, cy, c.w, c.h, bg, 0)

	tw, th := ctx.R.Measure(c.text, c.fontSize)
	tx := c.x + 6
	ty := c.y + (c.h-th)*0.5
	ctx.R.DrawText(tx, ty, c.text, c.fontSize, c.color)

	if c.focused {
		ctx.R.DrawQuad(tx+tw+2, cy, 2, c.h-8, c.color, 0)
	}
}

// ===== Image =====

type ImageProps struct {
	ID    int
	Tex   core.Texture // nil degrades to the placeholder quad
	W, H  float32
	Tint  [4]float32
	FlipY bool // set for render-target textures
}

// Image displays a texture at a fixed size. A nil texture (e.g. a stale
// registry id after Remove) draws a dim placeholder instead of failing.
func Image(p ImageProps) {
	ctx := current
	if p.Tint == ([4]float32{}) {
		p.Tint = [4]float32(colors.White)
	}

	iCmd := emit(ctx, cmd{
		kind:  cmdImage,
		id:    p.ID,
		tex:   p.Tex,
		flipY: p.FlipY,
		color: p.Tint,
	})

	addItem(ctx, item{kind: itemWidget, iCmd: iCmd, w: p.W, h: p.H})
}

func drawImage(ctx *Ctx, c *cmd) {
	if c.tex == nil {
		ctx.R.DrawQuad(c.x+c.w*0.5, c.y+c.h*0.5, c.w, c.h, [4]float32{0.18, 0.18, 0.20, 1}, 0)
		return
	}
	ctx.R.DrawTexture(c.x, c.y, c.w, c.h, c.tex, c.color, c.flipY)
}
