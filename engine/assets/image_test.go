package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvertedFlipsRGBKeepsAlpha(t *testing.T) {
	im := &Image{
		Name:   "px",
		W:      1,
		H:      2,
		Pixels: []byte{10, 20, 30, 128, 255, 0, 255, 64},
	}
	inv := im.Inverted()

	assert.Equal(t, []byte{245, 235, 225, 128, 0, 255, 0, 64}, inv.Pixels)
	assert.Equal(t, im.W, inv.W)
	assert.Equal(t, im.H, inv.H)
	// the original buffer is untouched
	assert.Equal(t, byte(10), im.Pixels[0])
	// a new handle, so the registry treats it as a separate texture
	assert.NotSame(t, im, inv)
}

func TestInvertedTwiceRoundTrips(t *testing.T) {
	im := &Image{W: 1, H: 1, Pixels: []byte{1, 2, 3, 4}}
	assert.Equal(t, im.Pixels, im.Inverted().Inverted().Pixels)
}

func TestPlaceholderDimensions(t *testing.T) {
	im := Placeholder("fallback", 64, 32)
	assert.Equal(t, 64, im.W)
	assert.Equal(t, 32, im.H)
	assert.Len(t, im.Pixels, 64*32*4)
	for i := 3; i < len(im.Pixels); i += 4 {
		if im.Pixels[i] != 255 {
			t.Fatalf("pixel %d not opaque", i/4)
		}
	}
}
