package scene

import (
	"github.com/chewxy/math32"
	"github.com/hubastard/easel/engine/core"
)

// OrbitController3D: A/D orbit around the target, scroll wheel zooms.
type OrbitController3D struct {
	OrbitSpeed float32 // rad/s
	ZoomSpeed  float32 // distance units per scroll notch
	MinDist    float32
	MaxDist    float32
	Camera     *PerspectiveCamera3D
}

func NewOrbitController3D(cam *PerspectiveCamera3D) *OrbitController3D {
	return &OrbitController3D{
		OrbitSpeed: 1.5,
		ZoomSpeed:  2.0,
		MinDist:    2,
		MaxDist:    80,
		Camera:     cam,
	}
}

func (oc *OrbitController3D) Update(e *core.Engine, dt float32) {
	var dir float32
	if e.Input.IsKeyDown(core.KeyA) {
		dir -= 1
	}
	if e.Input.IsKeyDown(core.KeyD) {
		dir += 1
	}
	if dir != 0 {
		oc.orbit(dir * oc.OrbitSpeed * dt)
	}
}

func (oc *OrbitController3D) HandleEvent(e *core.Engine, ev core.Event) bool {
	s, ok := ev.(core.EventScroll)
	if !ok || s.Yoff == 0 {
		return false
	}
	d := oc.Camera.Distance() - float32(s.Yoff)*oc.ZoomSpeed
	if d < oc.MinDist {
		d = oc.MinDist
	}
	if d > oc.MaxDist {
		d = oc.MaxDist
	}
	oc.Camera.SetDistance(d)
	return true
}

func (oc *OrbitController3D) orbit(dRad float32) {
	cam := oc.Camera
	rel := sub(cam.Eye, cam.Target)
	c, s := math32.Cos(dRad), math32.Sin(dRad)
	// rotate around the Y axis
	x := rel[0]*c + rel[2]*s
	z := -rel[0]*s + rel[2]*c
	cam.SetEye([3]float32{cam.Target[0] + x, cam.Target[1] + rel[1], cam.Target[2] + z})
}
