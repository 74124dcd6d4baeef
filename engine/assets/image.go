package assets

// Image is a CPU-side RGBA8 pixel buffer. It doubles as the opaque handle the
// UI texture registry keys on: the same *Image always resolves to the same
// GPU texture.
type Image struct {
	Name   string
	W, H   int
	Pixels []byte // tightly packed RGBA, len == W*H*4
}

// LoadImage reads a PNG from the textures directory into an Image.
func LoadImage(relPath string) (*Image, error) {
	w, h, pix, err := LoadPNG(relPath)
	if err != nil {
		return nil, err
	}
	return &Image{Name: relPath, W: w, H: h, Pixels: pix}, nil
}

// Inverted returns a new image with the RGB channels inverted. Alpha is kept.
func (im *Image) Inverted() *Image {
	out := &Image{
		Name:   im.Name + " (inverted)",
		W:      im.W,
		H:      im.H,
		Pixels: make([]byte, len(im.Pixels)),
	}
	for i := 0; i+3 < len(im.Pixels); i += 4 {
		out.Pixels[i+0] = 255 - im.Pixels[i+0]
		out.Pixels[i+1] = 255 - im.Pixels[i+1]
		out.Pixels[i+2] = 255 - im.Pixels[i+2]
		out.Pixels[i+3] = im.Pixels[i+3]
	}
	return out
}

// Placeholder builds a procedural checker badge, used when an asset file is
// missing so the demo still runs from a bare checkout.
func Placeholder(name string, w, h int) *Image {
	const cell = 16
	im := &Image{Name: name, W: w, H: h, Pixels: make([]byte, w*h*4)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := (y*w + x) * 4
			if (x/cell+y/cell)%2 == 0 {
				im.Pixels[i+0] = 90
				im.Pixels[i+1] = 130
				im.Pixels[i+2] = 200
			} else {
				im.Pixels[i+0] = 230
				im.Pixels[i+1] = 230
				im.Pixels[i+2] = 235
			}
			im.Pixels[i+3] = 255
		}
	}
	return im
}
