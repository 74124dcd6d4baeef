package glbackend

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/easel/engine/core"
)

type RendererGL struct {
	win         core.Window
	fbW, fbH    int
	boundTarget *renderTarget
}

func NewRendererGL(win core.Window, _ core.Config) (*RendererGL, error) {
	r := &RendererGL{win: win}
	if err := r.Init(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *RendererGL) Init() error {
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	return nil
}

func (r *RendererGL) Shutdown() {}

func (r *RendererGL) Resize(w, h int) {
	r.fbW, r.fbH = w, h
	gl.Viewport(0, 0, int32(w), int32(h))
}

func (r *RendererGL) Clear(rf, gf, bf, af float32) {
	gl.ClearColor(rf, gf, bf, af)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (r *RendererGL) GPUVendor() string   { return gl.GoStr(gl.GetString(gl.VENDOR)) }
func (r *RendererGL) GPURenderer() string { return gl.GoStr(gl.GetString(gl.RENDERER)) }
func (r *RendererGL) GPUVersion() string  { return gl.GoStr(gl.GetString(gl.VERSION)) }

// --- Pipelines ---

type pipeline struct {
	program   uint32
	depthTest bool
	blend     bool
	locs      map[string]int32
}

func (r *RendererGL) CreatePipeline(desc core.PipelineDesc) (core.Pipeline, error) {
	prog, err := makeProgram(nullTerminate(desc.VertexSource), nullTerminate(desc.FragmentSource))
	if err != nil {
		return nil, err
	}
	return &pipeline{
		program:   prog,
		depthTest: desc.DepthTest,
		blend:     desc.Blend,
		locs:      make(map[string]int32, 8),
	}, nil
}

func (p *pipeline) uniformLoc(name string) int32 {
	if loc, ok := p.locs[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.program, gl.Str(name+"\x00"))
	p.locs[name] = loc
	return loc
}

// --- Meshes ---

type mesh struct {
	vao, vbo, ebo uint32
	indexCount    int
	vertCap       int // floats
	indCap        int // uints
}

func (r *RendererGL) CreateMesh(desc core.MeshDesc) (core.Mesh, error) {
	if desc.Layout.Stride == 0 || len(desc.Layout.Attributes) == 0 {
		return nil, fmt.Errorf("mesh layout missing attributes")
	}

	m := &mesh{
		indexCount: len(desc.Indices),
		vertCap:    len(desc.Vertices),
		indCap:     len(desc.Indices),
	}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(desc.Vertices)*4, gl.Ptr(desc.Vertices), gl.DYNAMIC_DRAW)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(desc.Indices)*4, gl.Ptr(desc.Indices), gl.DYNAMIC_DRAW)

	for _, a := range desc.Layout.Attributes {
		gl.EnableVertexAttribArray(uint32(a.Location))
		gl.VertexAttribPointerWithOffset(uint32(a.Location), int32(a.Size), gl.FLOAT, false, int32(desc.Layout.Stride), uintptr(a.Offset))
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)
	return m, nil
}

func (r *RendererGL) UpdateMesh(cm core.Mesh, vertices []float32, indices []uint32) error {
	m, ok := cm.(*mesh)
	if !ok {
		return fmt.Errorf("mesh not created by this backend")
	}
	if len(vertices) > m.vertCap || len(indices) > m.indCap {
		return fmt.Errorf("mesh update exceeds capacity (%d/%d verts, %d/%d inds)",
			len(vertices), m.vertCap, len(indices), m.indCap)
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(vertices)*4, gl.Ptr(vertices))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferSubData(gl.ELEMENT_ARRAY_BUFFER, 0, len(indices)*4, gl.Ptr(indices))
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)

	m.indexCount = len(indices)
	return nil
}

// --- Textures ---

type texture struct {
	id   uint32
	w, h int
}

func (r *RendererGL) CreateTexture(desc core.TextureDesc) (core.Texture, error) {
	if desc.Format != core.TextureRGBA8 {
		return nil, fmt.Errorf("unsupported texture format %d", desc.Format)
	}

	t := &texture{w: desc.Width, h: desc.Height}
	gl.GenTextures(1, &t.id)
	gl.BindTexture(gl.TEXTURE_2D, t.id)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, glFilter(desc.MinFilter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, glFilter(desc.MagFilter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, glWrap(desc.WrapU))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, glWrap(desc.WrapV))

	if desc.Pixels != nil {
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(desc.Width), int32(desc.Height), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(desc.Pixels))
	} else {
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(desc.Width), int32(desc.Height), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	}

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return t, nil
}

func (r *RendererGL) DestroyTexture(ct core.Texture) {
	if t, ok := ct.(*texture); ok && t.id != 0 {
		gl.DeleteTextures(1, &t.id)
		t.id = 0
	}
}

func glFilter(s string) int32 {
	if s == "nearest" {
		return gl.NEAREST
	}
	return gl.LINEAR
}

func glWrap(s string) int32 {
	if s == "repeat" {
		return gl.REPEAT
	}
	return gl.CLAMP_TO_EDGE
}

// --- Render targets ---

type renderTarget struct {
	fbo     uint32
	color   *texture
	depthRB uint32
	w, h    int
}

func (rt *renderTarget) ColorTexture() core.Texture { return rt.color }
func (rt *renderTarget) Size() (int, int)           { return rt.w, rt.h }

func (r *RendererGL) CreateRenderTarget(desc core.RenderTargetDesc) (core.RenderTarget, error) {
	colorTex, err := r.CreateTexture(core.TextureDesc{
		Width: desc.Width, Height: desc.Height,
		Format:    core.TextureRGBA8,
		MinFilter: "linear", MagFilter: "linear",
		WrapU: "clamp", WrapV: "clamp",
	})
	if err != nil {
		return nil, err
	}

	rt := &renderTarget{color: colorTex.(*texture), w: desc.Width, h: desc.Height}
	gl.GenFramebuffers(1, &rt.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, rt.fbo)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, rt.color.id, 0)

	if desc.Depth {
		gl.GenRenderbuffers(1, &rt.depthRB)
		gl.BindRenderbuffer(gl.RENDERBUFFER, rt.depthRB)
		gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT24, int32(desc.Width), int32(desc.Height))
		gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, rt.depthRB)
		gl.BindRenderbuffer(gl.RENDERBUFFER, 0)
	}

	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	if status != gl.FRAMEBUFFER_COMPLETE {
		return nil, fmt.Errorf("framebuffer incomplete: 0x%x", status)
	}
	return rt, nil
}

func (r *RendererGL) BeginRenderTarget(crt core.RenderTarget) {
	rt, ok := crt.(*renderTarget)
	if !ok {
		return
	}
	r.boundTarget = rt
	gl.BindFramebuffer(gl.FRAMEBUFFER, rt.fbo)
	gl.Viewport(0, 0, int32(rt.w), int32(rt.h))
}

func (r *RendererGL) EndRenderTarget() {
	r.boundTarget = nil
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(0, 0, int32(r.fbW), int32(r.fbH))
}

// --- Draw ---

func (r *RendererGL) Draw(cmd core.DrawCmd) {
	p, ok := cmd.Pipe.(*pipeline)
	if !ok {
		return
	}
	m, ok := cmd.Mesh.(*mesh)
	if !ok {
		return
	}

	gl.UseProgram(p.program)
	if p.depthTest {
		gl.Enable(gl.DEPTH_TEST)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}
	if p.blend {
		gl.Enable(gl.BLEND)
	} else {
		gl.Disable(gl.BLEND)
	}

	for name, v := range cmd.Uniforms {
		setUniform(p, name, v)
	}

	unit := int32(0)
	for name, ct := range cmd.Samplers {
		t, ok := ct.(*texture)
		if !ok {
			continue
		}
		gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
		gl.BindTexture(gl.TEXTURE_2D, t.id)
		if loc := p.uniformLoc(name); loc >= 0 {
			gl.Uniform1i(loc, unit)
		}
		unit++
	}

	count := cmd.IndexCount
	if count <= 0 {
		count = m.indexCount
	}

	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, int32(count), gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

func setUniform(p *pipeline, name string, v any) {
	loc := p.uniformLoc(name)
	if loc < 0 {
		return
	}
	switch x := v.(type) {
	case float32:
		gl.Uniform1f(loc, x)
	case int:
		gl.Uniform1i(loc, int32(x))
	case int32:
		gl.Uniform1i(loc, x)
	case [2]float32:
		gl.Uniform2f(loc, x[0], x[1])
	case [3]float32:
		gl.Uniform3f(loc, x[0], x[1], x[2])
	case [4]float32:
		gl.Uniform4f(loc, x[0], x[1], x[2], x[3])
	case [16]float32:
		gl.UniformMatrix4fv(loc, 1, false, &x[0])
	}
}

// --- Shader utilities ---

func nullTerminate(src string) string {
	if strings.HasSuffix(src, "\x00") {
		return src
	}
	return src + "\x00"
}

func makeShader(src string, shaderType uint32) (uint32, error) {
	sh := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetShaderInfoLog(sh, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("shader compile error: %s", log)
	}
	return sh, nil
}

func makeProgram(vsSrc, fsSrc string) (uint32, error) {
	vs, err := makeShader(vsSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := makeShader(fsSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}
	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("program link error: %s", log)
	}
	return prog, nil
}
