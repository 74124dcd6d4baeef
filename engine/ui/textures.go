package ui

import (
	"github.com/hubastard/easel/engine/assets"
	"github.com/hubastard/easel/engine/core"
)

// TextureID identifies a registered image for UI rendering. Ids stay valid
// as lookup keys after deregistration; they just stop resolving.
type TextureID uint32

// TextureStore is the slice of core.Renderer the registry needs, split out
// so the registry is testable without a GPU.
type TextureStore interface {
	CreateTexture(desc core.TextureDesc) (core.Texture, error)
	DestroyTexture(t core.Texture)
}

// TextureRegistry maps opaque image handles (*assets.Image) to GPU textures
// and ui TextureIDs. Registration is idempotent per handle; resolving a
// deregistered id degrades to "not found" rather than failing.
type TextureRegistry struct {
	store    TextureStore
	nextID   TextureID
	byHandle map[*assets.Image]TextureID
	byID     map[TextureID]core.Texture
	owned    map[TextureID]bool // textures the registry created and may destroy
}

func NewTextureRegistry(store TextureStore) *TextureRegistry {
	return &TextureRegistry{
		store:    store,
		nextID:   1,
		byHandle: make(map[*assets.Image]TextureID),
		byID:     make(map[TextureID]core.Texture),
		owned:    make(map[TextureID]bool),
	}
}

// Register uploads the image once and returns its id. Calling it again with
// the same handle returns the existing id.
func (tr *TextureRegistry) Register(im *assets.Image) (TextureID, error) {
	if id, ok := tr.byHandle[im]; ok {
		return id, nil
	}

	tex, err := tr.store.CreateTexture(core.TextureDesc{
		Width:     im.W,
		Height:    im.H,
		Format:    core.TextureRGBA8,
		Pixels:    im.Pixels,
		MinFilter: "linear",
		MagFilter: "nearest",
		WrapU:     "clamp",
		WrapV:     "clamp",
	})
	if err != nil {
		return 0, err
	}

	id := tr.nextID
	tr.nextID++
	tr.byHandle[im] = id
	tr.byID[id] = tex
	tr.owned[id] = true
	return id, nil
}

// RegisterExternal exposes an externally owned texture (e.g. a render
// target's color attachment) under a ui id. The registry never destroys it.
func (tr *TextureRegistry) RegisterExternal(tex core.Texture) TextureID {
	id := tr.nextID
	tr.nextID++
	tr.byID[id] = tex
	return id
}

// Deregister destroys the handle's texture. Unregistered handles are a no-op.
// Previously issued ids keep working as Resolve keys; they just miss.
func (tr *TextureRegistry) Deregister(im *assets.Image) {
	id, ok := tr.byHandle[im]
	if !ok {
		return
	}
	if tex := tr.byID[id]; tex != nil && tr.owned[id] {
		tr.store.DestroyTexture(tex)
	}
	delete(tr.byHandle, im)
	delete(tr.byID, id)
	delete(tr.owned, id)
}

// Resolve returns the texture for id, or (nil, false) for stale/unknown ids.
func (tr *TextureRegistry) Resolve(id TextureID) (core.Texture, bool) {
	tex, ok := tr.byID[id]
	return tex, ok
}
