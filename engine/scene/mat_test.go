package scene

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

// column-major m * v
func mulVec(m [16]float32, v [4]float32) [4]float32 {
	var out [4]float32
	for i := 0; i < 4; i++ {
		out[i] = m[0*4+i]*v[0] + m[1*4+i]*v[1] + m[2*4+i]*v[2] + m[3*4+i]*v[3]
	}
	return out
}

func TestTransformTranslation(t *testing.T) {
	m := Transform{Position: [3]float32{1, 2, 3}}.Matrix()
	p := mulVec(m, [4]float32{0, 0, 0, 1})
	assert.InDelta(t, 1, p[0], 1e-5)
	assert.InDelta(t, 2, p[1], 1e-5)
	assert.InDelta(t, 3, p[2], 1e-5)
}

func TestTransformRotationOrderXThenZ(t *testing.T) {
	// Z first sends +X to +Y, then X sends +Y to +Z
	m := Transform{RotationX: math32.Pi / 2, RotationZ: math32.Pi / 2}.Matrix()
	p := mulVec(m, [4]float32{1, 0, 0, 1})
	assert.InDelta(t, 0, p[0], 1e-5)
	assert.InDelta(t, 0, p[1], 1e-5)
	assert.InDelta(t, 1, p[2], 1e-5)
}

func TestMulAppliesRightFactorFirst(t *testing.T) {
	// mul(T, Rz) must transform v as T * (Rz * v): rotate first, then move.
	m := mul(translate(10, 0, 0), rotateZ(math32.Pi/2))
	p := mulVec(m, [4]float32{1, 0, 0, 1})
	assert.InDelta(t, 10, p[0], 1e-5)
	assert.InDelta(t, 1, p[1], 1e-5)
	assert.InDelta(t, 0, p[2], 1e-5)
}

func TestRotatedTransformSpinsInPlace(t *testing.T) {
	// Rotation must not move the cube's own origin off its position.
	m := Transform{Position: [3]float32{4, -2, 7}, RotationX: 1.1, RotationZ: 2.3}.Matrix()
	p := mulVec(m, [4]float32{0, 0, 0, 1})
	assert.InDelta(t, 4, p[0], 1e-5)
	assert.InDelta(t, -2, p[1], 1e-5)
	assert.InDelta(t, 7, p[2], 1e-5)
}

func TestOrthoCornerMapping(t *testing.T) {
	m := ortho(0, 800, 600, 0, -1, 1)

	tl := mulVec(m, [4]float32{0, 0, 0, 1})
	assert.InDelta(t, -1, tl[0], 1e-5)
	assert.InDelta(t, 1, tl[1], 1e-5)

	br := mulVec(m, [4]float32{800, 600, 0, 1})
	assert.InDelta(t, 1, br[0], 1e-5)
	assert.InDelta(t, -1, br[1], 1e-5)
}

func TestPerspectiveCameraCentersTarget(t *testing.T) {
	cam := NewPerspective3D([3]float32{0, 0, 30}, [3]float32{0, 0, 0}, 1)
	clip := mulVec(cam.VP(), [4]float32{0, 0, 0, 1})
	assert.InDelta(t, 0, clip[0]/clip[3], 1e-5)
	assert.InDelta(t, 0, clip[1]/clip[3], 1e-5)
}

func TestOrbitPreservesDistance(t *testing.T) {
	cam := NewPerspective3D([3]float32{0, 5, 30}, [3]float32{0, 0, 0}, 1)
	oc := NewOrbitController3D(cam)
	before := cam.Distance()

	oc.orbit(0.7)
	assert.InDelta(t, before, cam.Distance(), 1e-3)
	assert.InDelta(t, 5, cam.Eye[1], 1e-5) // height unchanged
}

func TestSetDistanceFloorsAtNearPlane(t *testing.T) {
	cam := NewPerspective3D([3]float32{0, 0, 30}, [3]float32{0, 0, 0}, 1)
	cam.SetDistance(0.001)
	assert.GreaterOrEqual(t, cam.Distance(), cam.Near-1e-5)
}
