package core

// Renderer abstraction implemented by the GPU backends.
type Renderer interface {
	Init() error
	Shutdown()
	Resize(w, h int)
	Clear(r, g, b, a float32)

	CreatePipeline(desc PipelineDesc) (Pipeline, error)
	CreateMesh(desc MeshDesc) (Mesh, error)
	UpdateMesh(m Mesh, vertices []float32, indices []uint32) error
	CreateTexture(desc TextureDesc) (Texture, error)
	DestroyTexture(t Texture)
	CreateRenderTarget(desc RenderTargetDesc) (RenderTarget, error)

	// BeginRenderTarget redirects draws into rt until EndRenderTarget.
	BeginRenderTarget(rt RenderTarget)
	EndRenderTarget()

	Draw(cmd DrawCmd)

	GPUVendor() string
	GPURenderer() string
	GPUVersion() string
}

// Opaque GPU resource handles. Only the backend that created one knows its
// concrete type.
type Pipeline interface{}
type Mesh interface{}
type Texture interface{}

// RenderTarget is an off-screen framebuffer whose color attachment can be
// sampled like any other texture.
type RenderTarget interface {
	ColorTexture() Texture
	Size() (int, int)
}

type PipelineDesc struct {
	VertexSource   string
	FragmentSource string
	DepthTest      bool
	Blend          bool
}

type TextureFormat int

const (
	TextureRGBA8 TextureFormat = iota
)

type TextureDesc struct {
	Width, Height int
	Format        TextureFormat
	Pixels        []byte // nil allocates uninitialized storage
	MinFilter     string // "nearest" | "linear"
	MagFilter     string
	WrapU         string // "clamp" | "repeat"
	WrapV         string
}

type RenderTargetDesc struct {
	Width, Height int
	Depth         bool // attach a depth buffer
}

type AttribType int

const (
	AttribFloat32 AttribType = iota
)

type VertexAttrib struct {
	Location int
	Size     int
	Type     AttribType
	Offset   int
}

type VertexLayout struct {
	Stride     int
	Attributes []VertexAttrib
}

type MeshDesc struct {
	Vertices []float32
	Indices  []uint32
	Layout   VertexLayout
}

// DrawCmd is one draw call: a pipeline, a mesh, uniforms by name, and named
// texture samplers. IndexCount 0 means "draw every index the mesh holds".
type DrawCmd struct {
	Pipe       Pipeline
	Mesh       Mesh
	Uniforms   map[string]any
	Samplers   map[string]Texture
	IndexCount int
}
