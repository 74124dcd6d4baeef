package ui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hubastard/easel/engine/assets"
	"github.com/hubastard/easel/engine/core"
	"github.com/hubastard/easel/engine/ui"
)

type fakeTex struct{ n int }

type fakeStore struct {
	created   int
	destroyed int
}

func (s *fakeStore) CreateTexture(desc core.TextureDesc) (core.Texture, error) {
	s.created++
	return &fakeTex{n: s.created}, nil
}

func (s *fakeStore) DestroyTexture(t core.Texture) { s.destroyed++ }

func testImage() *assets.Image {
	return &assets.Image{Name: "img", W: 2, H: 2, Pixels: make([]byte, 16)}
}

func TestRegisterIsIdempotentPerHandle(t *testing.T) {
	store := &fakeStore{}
	reg := ui.NewTextureRegistry(store)
	im := testImage()

	id1, err := reg.Register(im)
	assert.NoError(t, err)
	id2, err := reg.Register(im)
	assert.NoError(t, err)

	assert.Equal(t, id1, id2)
	assert.Equal(t, 1, store.created)

	// a distinct handle with identical pixels is still a distinct texture
	other := testImage()
	id3, err := reg.Register(other)
	assert.NoError(t, err)
	assert.NotEqual(t, id1, id3)
	assert.Equal(t, 2, store.created)
}

func TestDeregisterStalenessIsGraceful(t *testing.T) {
	store := &fakeStore{}
	reg := ui.NewTextureRegistry(store)
	im := testImage()

	id, err := reg.Register(im)
	assert.NoError(t, err)
	_, ok := reg.Resolve(id)
	assert.True(t, ok)

	reg.Deregister(im)
	assert.Equal(t, 1, store.destroyed)

	tex, ok := reg.Resolve(id)
	assert.False(t, ok)
	assert.Nil(t, tex)

	// deregistering again is a no-op
	reg.Deregister(im)
	assert.Equal(t, 1, store.destroyed)

	// the handle can come back under a fresh id
	id2, err := reg.Register(im)
	assert.NoError(t, err)
	assert.NotEqual(t, id, id2)
}

func TestRegisterExternalIsNeverDestroyed(t *testing.T) {
	store := &fakeStore{}
	reg := ui.NewTextureRegistry(store)

	ext := &fakeTex{n: 99}
	id := reg.RegisterExternal(ext)

	tex, ok := reg.Resolve(id)
	assert.True(t, ok)
	assert.Same(t, ext, tex)
	assert.Equal(t, 0, store.created)
}
