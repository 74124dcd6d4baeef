package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubastard/easel/engine/core"
	"github.com/hubastard/easel/engine/gfx/renderer2d"
	"github.com/hubastard/easel/engine/gfx/renderer3d"
	"github.com/hubastard/easel/engine/text"
	"github.com/hubastard/easel/engine/ui"
)

// headless stand-ins for the GL backend and GLFW window

type fakeTex struct{ n int }

type fakeRT struct{ color *fakeTex }

func (rt *fakeRT) ColorTexture() core.Texture { return rt.color }
func (rt *fakeRT) Size() (int, int)           { return sceneTargetSize, sceneTargetSize }

type fakeGPU struct {
	draws    int
	textures int
}

func (g *fakeGPU) Init() error                            { return nil }
func (g *fakeGPU) Shutdown()                              {}
func (g *fakeGPU) Resize(w, h int)                        {}
func (g *fakeGPU) Clear(r, gr, b, a float32)              {}
func (g *fakeGPU) BeginRenderTarget(rt core.RenderTarget) {}
func (g *fakeGPU) EndRenderTarget()                       {}
func (g *fakeGPU) DestroyTexture(t core.Texture)          {}
func (g *fakeGPU) GPUVendor() string                      { return "fake" }
func (g *fakeGPU) GPURenderer() string                    { return "fake" }
func (g *fakeGPU) GPUVersion() string                     { return "0" }
func (g *fakeGPU) Draw(cmd core.DrawCmd)                  { g.draws++ }

func (g *fakeGPU) CreatePipeline(desc core.PipelineDesc) (core.Pipeline, error) {
	return struct{}{}, nil
}

func (g *fakeGPU) CreateMesh(desc core.MeshDesc) (core.Mesh, error) {
	return struct{}{}, nil
}

func (g *fakeGPU) UpdateMesh(m core.Mesh, vertices []float32, indices []uint32) error {
	return nil
}

func (g *fakeGPU) CreateTexture(desc core.TextureDesc) (core.Texture, error) {
	g.textures++
	return &fakeTex{n: g.textures}, nil
}

func (g *fakeGPU) CreateRenderTarget(desc core.RenderTargetDesc) (core.RenderTarget, error) {
	return &fakeRT{color: &fakeTex{}}, nil
}

type fakeWindow struct{ closed bool }

func (w *fakeWindow) PollEvents()                          {}
func (w *fakeWindow) SwapBuffers()                         {}
func (w *fakeWindow) ShouldClose() bool                    { return w.closed }
func (w *fakeWindow) RequestClose()                        { w.closed = true }
func (w *fakeWindow) FramebufferSize() (int, int)          { return 1280, 720 }
func (w *fakeWindow) ContentScale() float32                { return 1 }
func (w *fakeWindow) SetTitle(title string)                {}
func (w *fakeWindow) SetEventCallback(cb func(core.Event)) {}

func newTestEngine() (*core.Engine, *fakeGPU, *fakeWindow) {
	gpu := &fakeGPU{}
	win := &fakeWindow{}
	return &core.Engine{Window: win, Renderer: gpu, Input: core.NewInput()}, gpu, win
}

func newTestStack(t *testing.T) (*core.Engine, *fakeGPU, *LayerScene, *LayerUI) {
	t.Helper()
	e, gpu, _ := newTestEngine()

	r2d, err := renderer2d.New(e.Renderer, "vs", "fs", 1000)
	require.NoError(t, err)
	r3d, err := renderer3d.New(e.Renderer, "vs", "fs")
	require.NoError(t, err)
	font, err := text.LoadDefault(e.Renderer, 32)
	require.NoError(t, err)

	reg := ui.NewTextureRegistry(e.Renderer)
	adapt := ui.NewRender2D(r2d, font)

	scn := NewLayerScene(r3d)
	scn.OnAttach(e)
	l := NewLayerUI(r2d, adapt, reg, scn)
	l.OnAttach(e)
	return e, gpu, scn, l
}

func TestSceneSpawning(t *testing.T) {
	e, _, scn, _ := newTestStack(t)

	assert.Equal(t, 1, scn.EntityCount()) // the starter cube
	assert.Equal(t, [3]float32{0, 0, 1}, scn.entities[0].tr.Position)

	id1 := scn.SpawnRandom()
	id2 := scn.SpawnRandom()
	assert.NotEqual(t, id1, id2)
	assert.Equal(t, 3, scn.EntityCount())

	for _, ent := range scn.entities[1:] {
		for axis := 0; axis < 3; axis++ {
			assert.GreaterOrEqual(t, ent.tr.Position[axis], float32(-10))
			assert.Less(t, ent.tr.Position[axis], float32(10))
		}
	}

	// cubes keep spinning at the fixed rates
	scn.OnUpdate(e, 1.0/60)
	assert.InDelta(t, 1.5/60, scn.entities[0].tr.RotationX, 1e-5)
	assert.InDelta(t, 1.3/60, scn.entities[0].tr.RotationZ, 1e-5)
}

func TestRemoveEntityByID(t *testing.T) {
	_, _, scn, _ := newTestStack(t)

	id1 := scn.SpawnRandom()
	id2 := scn.SpawnRandom()
	require.Equal(t, 3, scn.EntityCount())

	assert.True(t, scn.RemoveEntity(id1))
	assert.Equal(t, 2, scn.EntityCount())
	assert.False(t, scn.RemoveEntity(id1)) // already gone

	assert.True(t, scn.RemoveEntity(id2))
	assert.Equal(t, 1, scn.EntityCount()) // starter cube survives
}

func TestWindowOpenByDefault(t *testing.T) {
	_, _, _, l := newTestStack(t)
	assert.True(t, l.windowOpen)
}

func TestIconLifecycle(t *testing.T) {
	_, _, _, l := newTestStack(t)

	tex, ok := l.reg.Resolve(l.iconID)
	require.True(t, ok)

	l.invertIcon()
	assert.True(t, l.inverted)
	inv, ok := l.reg.Resolve(l.iconID)
	require.True(t, ok)
	assert.NotEqual(t, tex, inv)

	l.removeIcon()
	_, ok = l.reg.Resolve(l.iconID)
	assert.False(t, ok)

	// Load brings the image back under a fresh texture
	l.loadIcon()
	_, ok = l.reg.Resolve(l.iconID)
	assert.True(t, ok)
}

func TestUIScaleToggle(t *testing.T) {
	e, _, _, l := newTestStack(t)

	assert.Equal(t, float32(1), l.uiScale)
	l.OnEvent(e, core.EventKey{Key: core.KeySlash, Down: true})
	assert.Equal(t, float32(1.25), l.uiScale)
	l.OnEvent(e, core.EventKey{Key: core.KeySlash, Down: true})
	assert.Equal(t, float32(1), l.uiScale)
}

func TestRenderSmoke(t *testing.T) {
	e, gpu, scn, l := newTestStack(t)

	scn.OnRender(e, 0)
	l.OnRender(e, 0)
	first := gpu.draws
	assert.Greater(t, first, 0)

	// a second frame re-records everything from scratch
	scn.OnRender(e, 0)
	l.OnRender(e, 0)
	assert.Greater(t, gpu.draws, first)
}
