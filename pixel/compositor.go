package pixel

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/pixelrig/ecs"
	"github.com/milk9111/pixelrig/ecs/component"
	"github.com/milk9111/pixelrig/ecs/resource"
)

const (
	sceneCameraOrder   = -1
	displayCameraOrder = 0
)

// Roles records which entities the compositor spawned for each part of the
// pipeline.
type Roles struct {
	SceneCamera   ecs.Entity
	DisplayCamera ecs.Entity
	Canvas        ecs.Entity
}

// Compositor owns the offscreen buffer and the two cameras around it: the
// scene camera renders into the buffer and the display camera shows the
// buffer on a quad, isolated on its own render layer.
type Compositor struct {
	resolution Resolution
	roles      Roles
	buffer     *ebiten.Image
	scale      float64

	SceneClear   color.Color
	DisplayClear color.Color

	// NewImage allocates the offscreen buffer. Tests replace it to run
	// without a graphics context.
	NewImage func(width, height int) *ebiten.Image
}

func NewCompositor(res Resolution) (*Compositor, error) {
	if _, err := NewResolution(res.Width, res.Height); err != nil {
		return nil, fmt.Errorf("compositor: %w", err)
	}
	return &Compositor{
		resolution:   res,
		SceneClear:   color.RGBA{R: 0x18, G: 0x18, B: 0x20, A: 0xff},
		DisplayClear: color.Black,
		NewImage: func(width, height int) *ebiten.Image {
			img := ebiten.NewImage(width, height)
			img.Clear()
			return img
		},
	}, nil
}

func (c *Compositor) Resolution() Resolution { return c.resolution }
func (c *Compositor) Roles() Roles           { return c.roles }
func (c *Compositor) Buffer() *ebiten.Image  { return c.buffer }
func (c *Compositor) Scale() float64         { return c.scale }

// Initialize allocates the buffer and spawns the scene camera, the canvas
// quad and the display camera. window must be the primary window; a nil
// window panics because the compositor is built around exactly one.
func (c *Compositor) Initialize(w *ecs.World, window *resource.Window) error {
	if window == nil {
		panic("compositor: initialize: no primary window")
	}
	if c.roles.SceneCamera.Valid() {
		return fmt.Errorf("compositor: already initialized")
	}

	c.buffer = c.NewImage(c.resolution.Width, c.resolution.Height)
	c.scale = ComputeScale(c.resolution, window.Width, window.Height)

	scene, err := c.spawnSceneCamera(w)
	if err != nil {
		return err
	}
	canvas, err := c.spawnCanvas(w)
	if err != nil {
		return err
	}
	display, err := c.spawnDisplayCamera(w)
	if err != nil {
		return err
	}

	c.roles = Roles{SceneCamera: scene, DisplayCamera: display, Canvas: canvas}
	log.Printf("Compositor: %dx%d buffer, window %dx%d, display scale %.4f",
		c.resolution.Width, c.resolution.Height, window.Width, window.Height, c.scale)
	return nil
}

// OnWindowResized recomputes the display camera's scale and applies it
// immediately. The buffer itself never changes size.
func (c *Compositor) OnWindowResized(w *ecs.World, width, height int) float64 {
	scale := ComputeScale(c.resolution, width, height)
	cam, ok := ecs.Get(w, c.roles.DisplayCamera, component.CameraComponent.Kind())
	if !ok {
		panic("compositor: resize: display camera missing")
	}
	if scale != c.scale {
		log.Printf("Compositor: window %dx%d, display scale %.4f -> %.4f", width, height, c.scale, scale)
	}
	cam.Projection.Scale = scale
	c.scale = scale
	return scale
}

func (c *Compositor) spawnSceneCamera(w *ecs.World) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.SceneCameraTagComponent.Kind(), &component.SceneCameraTag{}); err != nil {
		return 0, fmt.Errorf("compositor: scene camera: add tag: %w", err)
	}
	transform := component.NewTransform(0, 0, 0)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &transform); err != nil {
		return 0, fmt.Errorf("compositor: scene camera: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.CameraComponent.Kind(), &component.Camera{
		Order:      sceneCameraOrder,
		Target:     c.buffer,
		ClearColor: c.SceneClear,
		Projection: component.PerspectiveProjection(),
	}); err != nil {
		return 0, fmt.Errorf("compositor: scene camera: add camera: %w", err)
	}
	if err := ecs.Add(w, e, component.RenderLayersComponent.Kind(), &component.RenderLayers{Mask: component.LayerScene}); err != nil {
		return 0, fmt.Errorf("compositor: scene camera: add layers: %w", err)
	}
	return e, nil
}

func (c *Compositor) spawnCanvas(w *ecs.World) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.CanvasTagComponent.Kind(), &component.CanvasTag{}); err != nil {
		return 0, fmt.Errorf("compositor: canvas: add tag: %w", err)
	}
	transform := component.NewTransform(0, 0, 0)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &transform); err != nil {
		return 0, fmt.Errorf("compositor: canvas: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{
		Image:  c.buffer,
		Width:  float64(c.resolution.Width),
		Height: float64(c.resolution.Height),
	}); err != nil {
		return 0, fmt.Errorf("compositor: canvas: add sprite: %w", err)
	}
	if err := ecs.Add(w, e, component.RenderLayersComponent.Kind(), &component.RenderLayers{Mask: component.LayerDisplay}); err != nil {
		return 0, fmt.Errorf("compositor: canvas: add layers: %w", err)
	}
	return e, nil
}

func (c *Compositor) spawnDisplayCamera(w *ecs.World) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.DisplayCameraTagComponent.Kind(), &component.DisplayCameraTag{}); err != nil {
		return 0, fmt.Errorf("compositor: display camera: add tag: %w", err)
	}
	transform := component.NewTransform(0, 0, 0)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &transform); err != nil {
		return 0, fmt.Errorf("compositor: display camera: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.CameraComponent.Kind(), &component.Camera{
		Order:      displayCameraOrder,
		ClearColor: c.DisplayClear,
		Projection: component.OrthographicProjection(c.scale),
	}); err != nil {
		return 0, fmt.Errorf("compositor: display camera: add camera: %w", err)
	}
	if err := ecs.Add(w, e, component.RenderLayersComponent.Kind(), &component.RenderLayers{Mask: component.LayerDisplay}); err != nil {
		return 0, fmt.Errorf("compositor: display camera: add layers: %w", err)
	}
	return e, nil
}
