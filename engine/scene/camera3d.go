package scene

import "github.com/chewxy/math32"

// PerspectiveCamera3D looks from Eye toward Target with a vertical FOV.
type PerspectiveCamera3D struct {
	Eye     [3]float32
	Target  [3]float32
	Up      [3]float32
	FovYRad float32
	Aspect  float32
	Near    float32
	Far     float32
	vp      [16]float32
	dirty   bool
}

func NewPerspective3D(eye, target [3]float32, aspect float32) *PerspectiveCamera3D {
	c := &PerspectiveCamera3D{
		Eye:     eye,
		Target:  target,
		Up:      [3]float32{0, 1, 0},
		FovYRad: math32.Pi / 4,
		Aspect:  aspect,
		Near:    0.1,
		Far:     100,
	}
	c.Recalculate()
	return c
}

func (c *PerspectiveCamera3D) SetEye(eye [3]float32) { c.Eye = eye; c.dirty = true }

// Distance reports the eye-to-target distance.
func (c *PerspectiveCamera3D) Distance() float32 {
	d := sub(c.Eye, c.Target)
	return math32.Sqrt(dot(d, d))
}

// SetDistance moves the eye along the view direction to the given distance.
func (c *PerspectiveCamera3D) SetDistance(d float32) {
	if d < c.Near {
		d = c.Near
	}
	dir := normalize(sub(c.Eye, c.Target))
	c.Eye = [3]float32{
		c.Target[0] + dir[0]*d,
		c.Target[1] + dir[1]*d,
		c.Target[2] + dir[2]*d,
	}
	c.dirty = true
}

func (c *PerspectiveCamera3D) VP() [16]float32 {
	if c.dirty {
		c.Recalculate()
	}
	return c.vp
}

func (c *PerspectiveCamera3D) Recalculate() {
	proj := perspective(c.FovYRad, c.Aspect, c.Near, c.Far)
	view := lookAt(c.Eye, c.Target, c.Up)
	c.vp = mul(proj, view)
	c.dirty = false
}
