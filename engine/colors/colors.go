package colors

type Color [4]float32

var (
	White     = Color{1, 1, 1, 1}
	Red       = Color{1, 0, 0, 1}
	Green     = Color{0, 1, 0, 1}
	Blue      = Color{0, 0, 1, 1}
	LightBlue = Color{0.56, 0.78, 1, 1}
	Black     = Color{0, 0, 0, 1}
	Magenta   = Color{1, 0, 1, 1}
	Cyan      = Color{0, 1, 1, 1}
	Yellow    = Color{1, 1, 0, 1}
	Gray      = Color{0.5, 0.5, 0.5, 1}
	DarkGray  = Color{0.08, 0.10, 0.12, 1}
)

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

// RGB8 returns the color quantized to 8-bit channels.
func (c Color) RGB8() (r, g, b uint8) {
	return uint8(c[0]*255 + 0.5), uint8(c[1]*255 + 0.5), uint8(c[2]*255 + 0.5)
}
