package main

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/hubastard/easel/engine/colors"
	"github.com/hubastard/easel/engine/core"
	"github.com/hubastard/easel/engine/gfx/renderer3d"
	"github.com/hubastard/easel/engine/profiler"
	"github.com/hubastard/easel/engine/scene"
)

// Off-screen 3D scene: spinning cubes rendered into a fixed-size target
// whose color texture the UI layer displays like any other image.

const (
	sceneTargetSize = 512

	// per-second spin rates applied to every cube
	spinRateX = 1.5
	spinRateZ = 1.3
)

var cubeColor = colors.Color{0.8, 0.7, 0.6, 1}

type cubeEntity struct {
	id uuid.UUID
	tr scene.Transform
}

type LayerScene struct {
	r3d      *renderer3d.Renderer3D
	target   core.RenderTarget
	cam      *scene.PerspectiveCamera3D
	orbit    *scene.OrbitController3D
	entities []cubeEntity
	clear    colors.Color
}

func NewLayerScene(r3d *renderer3d.Renderer3D) *LayerScene {
	return &LayerScene{
		r3d:   r3d,
		clear: colors.Color{0.09, 0.09, 0.11, 1},
	}
}

func (l *LayerScene) OnAttach(e *core.Engine) {
	target, err := e.Renderer.CreateRenderTarget(core.RenderTargetDesc{
		Width:  sceneTargetSize,
		Height: sceneTargetSize,
		Depth:  true,
	})
	if err != nil {
		panic(err)
	}
	l.target = target

	l.cam = scene.NewPerspective3D([3]float32{0, 0, 30}, [3]float32{0, 0, 0}, 1)
	l.orbit = scene.NewOrbitController3D(l.cam)

	l.SpawnCube([3]float32{0, 0, 1})
}

func (l *LayerScene) OnDetach(e *core.Engine) {}

func (l *LayerScene) OnUpdate(e *core.Engine, dt float64) {
	l.orbit.Update(e, float32(dt))
	for i := range l.entities {
		l.entities[i].tr.RotationX += spinRateX * float32(dt)
		l.entities[i].tr.RotationZ += spinRateZ * float32(dt)
	}
}

func (l *LayerScene) OnRender(e *core.Engine, alpha float64) {
	defer profiler.Start("LayerScene.OnRender")()

	r := e.Renderer
	r.BeginRenderTarget(l.target)
	r.Clear(l.clear[0], l.clear[1], l.clear[2], l.clear[3])

	l.r3d.BeginScene(l.cam.VP(), [3]float32{0, 0, 10})
	for i := range l.entities {
		l.r3d.DrawCube(l.entities[i].tr.Matrix(), cubeColor)
	}
	l.r3d.EndScene()

	r.EndRenderTarget()
}

func (l *LayerScene) OnEvent(e *core.Engine, ev core.Event) bool {
	return l.orbit.HandleEvent(e, ev)
}

// SpawnCube adds a cube at pos with a fresh entity id.
func (l *LayerScene) SpawnCube(pos [3]float32) uuid.UUID {
	ent := cubeEntity{id: uuid.New(), tr: scene.Transform{Position: pos}}
	l.entities = append(l.entities, ent)
	return ent.id
}

// SpawnRandom adds a cube at a uniform random position in [-10,10) per axis.
func (l *LayerScene) SpawnRandom() uuid.UUID {
	pos := [3]float32{
		rand.Float32()*20 - 10,
		rand.Float32()*20 - 10,
		rand.Float32()*20 - 10,
	}
	return l.SpawnCube(pos)
}

// RemoveEntity deletes the cube with the given id. Unknown ids are a no-op.
func (l *LayerScene) RemoveEntity(id uuid.UUID) bool {
	for i := range l.entities {
		if l.entities[i].id == id {
			l.entities = append(l.entities[:i], l.entities[i+1:]...)
			return true
		}
	}
	return false
}

func (l *LayerScene) EntityCount() int          { return len(l.entities) }
func (l *LayerScene) Target() core.RenderTarget { return l.target }
