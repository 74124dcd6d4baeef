package renderer2d_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubastard/easel/engine/colors"
	"github.com/hubastard/easel/engine/core"
	"github.com/hubastard/easel/engine/gfx/renderer2d"
)

type fakeMesh struct{}
type fakeTex struct{}

type fakeGPU struct {
	draws []core.DrawCmd
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

func (g *fakeGPU) CreatePipeline(desc core.PipelineDesc) (core.Pipeline, error) {
	return struct{}{}, nil
}

func (g *fakeGPU) CreateMesh(desc core.MeshDesc) (core.Mesh, error) {
	return &fakeMesh{}, nil
}

func (g *fakeGPU) UpdateMesh(m core.Mesh, vertices []float32, indices []uint32) error {
	return nil
}

func (g *fakeGPU) CreateTexture(desc core.TextureDesc) (core.Texture, error) {
	return &fakeTex{}, nil
}

func (g *fakeGPU) CreateRenderTarget(desc core.RenderTargetDesc) (core.RenderTarget, error) {
	return nil, nil
}

func (g *fakeGPU) Draw(cmd core.DrawCmd) {
	g.draws = append(g.draws, cmd)
}

var identity = [16]float32{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
	0, 0, 0, 1,
}

func newBatcher(t *testing.T, gpu *fakeGPU, maxQuads int) *renderer2d.Renderer2D {
	t.Helper()
	rd, err := renderer2d.New(gpu, "vs", "fs", maxQuads)
	require.NoError(t, err)
	return rd
}

func TestLineStripProducesSegments(t *testing.T) {
	gpu := &fakeGPU{}
	rd := newBatcher(t, gpu, 100)

	rd.BeginScene(identity)
	rd.DrawLineStrip([][2]float32{{0, 0}, {10, 0}, {10, 10}, {20, 10}}, 2, colors.White)
	rd.EndScene()

	st := rd.Stats()
	assert.Equal(t, 3, st.LineCount)
	assert.Equal(t, 3, st.QuadCount)
	assert.Equal(t, 1, st.DrawCalls)
	require.Len(t, gpu.draws, 1)
	assert.Equal(t, 3*6, gpu.draws[0].IndexCount)
}

func TestZeroLengthLineIsSkipped(t *testing.T) {
	gpu := &fakeGPU{}
	rd := newBatcher(t, gpu, 100)

	rd.BeginScene(identity)
	rd.DrawLine(5, 5, 5, 5, 2, colors.Red)
	rd.EndScene()

	assert.Equal(t, 0, rd.Stats().LineCount)
	assert.Empty(t, gpu.draws)
}

func TestQuadsBatchIntoOneDraw(t *testing.T) {
	gpu := &fakeGPU{}
	rd := newBatcher(t, gpu, 100)

	rd.BeginScene(identity)
	for i := 0; i < 50; i++ {
		rd.DrawQuad(float32(i)*10, 0, 8, 8, colors.Green, 0)
	}
	rd.EndScene()

	assert.Equal(t, 1, rd.Stats().DrawCalls)
	assert.Equal(t, 50, rd.Stats().QuadCount)
	require.Len(t, gpu.draws, 1)
}

func TestBatchOverflowFlushesMidScene(t *testing.T) {
	gpu := &fakeGPU{}
	rd := newBatcher(t, gpu, 4)

	rd.BeginScene(identity)
	for i := 0; i < 6; i++ {
		rd.DrawQuad(float32(i), 0, 1, 1, colors.Blue, 0)
	}
	rd.EndScene()

	assert.Equal(t, 2, rd.Stats().DrawCalls)
	assert.Len(t, gpu.draws, 2)
}

func TestBeginSceneResetsStats(t *testing.T) {
	gpu := &fakeGPU{}
	rd := newBatcher(t, gpu, 100)

	rd.BeginScene(identity)
	rd.DrawQuad(0, 0, 1, 1, colors.White, 0)
	rd.EndScene()
	assert.Equal(t, 1, rd.Stats().QuadCount)

	rd.BeginScene(identity)
	rd.EndScene()
	assert.Equal(t, 0, rd.Stats().QuadCount)
	assert.Equal(t, 0, rd.Stats().DrawCalls)
}

func TestSubTextureUVs(t *testing.T) {
	tex := &fakeTex{}

	sub := renderer2d.FromPixels(tex, 16, 32, 16, 16, 64, 64)
	assert.Equal(t, float32(0.25), sub.U0)
	assert.Equal(t, float32(0.5), sub.V0)
	assert.Equal(t, float32(0.5), sub.U1)
	assert.Equal(t, float32(0.75), sub.V1)

	grid := renderer2d.FromGrid(tex, 1, 2, 16, 16, 64, 64)
	assert.Equal(t, sub, grid)

	flip := renderer2d.FlippedV(tex)
	assert.Equal(t, float32(1), flip.V0)
	assert.Equal(t, float32(0), flip.V1)
}
