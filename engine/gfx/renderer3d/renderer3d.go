package renderer3d

import (
	"github.com/hubastard/easel/engine/colors"
	"github.com/hubastard/easel/engine/core"
)

// Vertex: pos3 + normal3 => 6 floats
const vStride = 6

var meshVertexLayout = core.VertexLayout{
	Stride: vStride * 4,
	Attributes: []core.VertexAttrib{
		{Location: 0, Size: 3, Type: core.AttribFloat32, Offset: 0},     // pos
		{Location: 1, Size: 3, Type: core.AttribFloat32, Offset: 3 * 4}, // normal
	},
}

// Renderer3D draws lit meshes with a single point light. It is deliberately
// tiny: one pipeline, per-draw model matrix, no materials beyond a base color.
type Renderer3D struct {
	r        core.Renderer
	pipe     core.Pipeline
	cube     core.Mesh
	uniforms map[string]any

	vp       [16]float32
	lightPos [3]float32
	draws    int
}

// New compiles the mesh pipeline and uploads the shared unit-cube mesh.
func New(r core.Renderer, vertSrc, fragSrc string) (*Renderer3D, error) {
	pipe, err := r.CreatePipeline(core.PipelineDesc{
		VertexSource:   vertSrc,
		FragmentSource: fragSrc,
		DepthTest:      true,
		Blend:          false,
	})
	if err != nil {
		return nil, err
	}

	verts, inds := cubeMesh(1, 1, 1)
	cube, err := r.CreateMesh(core.MeshDesc{
		Vertices: verts,
		Indices:  inds,
		Layout:   meshVertexLayout,
	})
	if err != nil {
		return nil, err
	}

	return &Renderer3D{
		r:        r,
		pipe:     pipe,
		cube:     cube,
		uniforms: make(map[string]any, 4),
	}, nil
}

// BeginScene sets the view-projection and light for the draws that follow.
func (rd *Renderer3D) BeginScene(vp [16]float32, lightPos [3]float32) {
	rd.vp = vp
	rd.lightPos = lightPos
	rd.draws = 0
}

func (rd *Renderer3D) EndScene() {}

// DrawCube draws the shared unit cube under the given model matrix.
func (rd *Renderer3D) DrawCube(model [16]float32, baseColor colors.Color) {
	for k := range rd.uniforms {
		delete(rd.uniforms, k)
	}
	rd.uniforms["uVP"] = rd.vp
	rd.uniforms["uModel"] = model
	rd.uniforms["uLightPos"] = rd.lightPos
	rd.uniforms["uBaseColor"] = [4]float32(baseColor)

	rd.r.Draw(core.DrawCmd{
		Pipe:     rd.pipe,
		Mesh:     rd.cube,
		Uniforms: rd.uniforms,
	})
	rd.draws++
}

// DrawCalls reports the number of draws since BeginScene.
func (rd *Renderer3D) DrawCalls() int { return rd.draws }

// cubeMesh builds a cuboid centered at the origin with per-face normals.
func cubeMesh(sx, sy, sz float32) ([]float32, []uint32) {
	hx, hy, hz := sx*0.5, sy*0.5, sz*0.5

	faces := [6]struct {
		normal  [3]float32
		corners [4][3]float32
	}{
		{[3]float32{0, 0, 1}, [4][3]float32{{-hx, -hy, hz}, {hx, -hy, hz}, {hx, hy, hz}, {-hx, hy, hz}}},
		{[3]float32{0, 0, -1}, [4][3]float32{{hx, -hy, -hz}, {-hx, -hy, -hz}, {-hx, hy, -hz}, {hx, hy, -hz}}},
		{[3]float32{1, 0, 0}, [4][3]float32{{hx, -hy, hz}, {hx, -hy, -hz}, {hx, hy, -hz}, {hx, hy, hz}}},
		{[3]float32{-1, 0, 0}, [4][3]float32{{-hx, -hy, -hz}, {-hx, -hy, hz}, {-hx, hy, hz}, {-hx, hy, -hz}}},
		{[3]float32{0, 1, 0}, [4][3]float32{{-hx, hy, hz}, {hx, hy, hz}, {hx, hy, -hz}, {-hx, hy, -hz}}},
		{[3]float32{0, -1, 0}, [4][3]float32{{-hx, -hy, -hz}, {hx, -hy, -hz}, {hx, -hy, hz}, {-hx, -hy, hz}}},
	}

	verts := make([]float32, 0, 6*4*vStride)
	inds := make([]uint32, 0, 6*6)
	for fi, f := range faces {
		base := uint32(fi * 4)
		for _, c := range f.corners {
			verts = append(verts, c[0], c[1], c[2], f.normal[0], f.normal[1], f.normal[2])
		}
		inds = append(inds, base+0, base+1, base+2, base+0, base+2, base+3)
	}
	return verts, inds
}
