package pixel

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/pixelrig/ecs"
	"github.com/milk9111/pixelrig/ecs/component"
	"github.com/milk9111/pixelrig/ecs/resource"
)

type allocation struct {
	width, height int
}

func newTestCompositor(t *testing.T) (*Compositor, *[]allocation) {
	t.Helper()
	c, err := NewCompositor(Resolution{Width: DefaultWidth, Height: DefaultHeight})
	if err != nil {
		t.Fatalf("NewCompositor: %v", err)
	}
	var allocs []allocation
	c.NewImage = func(width, height int) *ebiten.Image {
		allocs = append(allocs, allocation{width, height})
		return nil
	}
	return c, &allocs
}

func TestNewCompositorRejectsBadResolution(t *testing.T) {
	if _, err := NewCompositor(Resolution{Width: 0, Height: 480}); !errors.Is(err, ErrInvalidResolution) {
		t.Fatalf("expected ErrInvalidResolution, got %v", err)
	}
}

func TestCompositorInitialize(t *testing.T) {
	w := ecs.NewWorld()
	c, allocs := newTestCompositor(t)

	if err := c.Initialize(w, &resource.Window{Width: 1708, Height: 960}); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	if len(*allocs) != 1 || (*allocs)[0] != (allocation{DefaultWidth, DefaultHeight}) {
		t.Fatalf("expected one %dx%d buffer, got %v", DefaultWidth, DefaultHeight, *allocs)
	}

	roles := c.Roles()
	scene, ok := ecs.Get(w, roles.SceneCamera, component.CameraComponent.Kind())
	if !ok {
		t.Fatalf("scene camera missing")
	}
	display, ok := ecs.Get(w, roles.DisplayCamera, component.CameraComponent.Kind())
	if !ok {
		t.Fatalf("display camera missing")
	}
	if scene.Order >= display.Order {
		t.Fatalf("scene camera must render first: scene %d display %d", scene.Order, display.Order)
	}
	if scene.Projection.Kind != component.ProjectionPerspective {
		t.Fatalf("scene camera should be perspective")
	}
	if display.Projection.Kind != component.ProjectionOrthographic {
		t.Fatalf("display camera should be orthographic")
	}
	if display.Projection.Scale != 0.4 || c.Scale() != 0.4 {
		t.Fatalf("expected startup scale 0.4, got camera %v compositor %v", display.Projection.Scale, c.Scale())
	}

	sceneLayers, _ := ecs.Get(w, roles.SceneCamera, component.RenderLayersComponent.Kind())
	displayLayers, _ := ecs.Get(w, roles.DisplayCamera, component.RenderLayersComponent.Kind())
	canvasLayers, _ := ecs.Get(w, roles.Canvas, component.RenderLayersComponent.Kind())
	if sceneLayers.Intersects(*displayLayers) {
		t.Fatalf("scene and display layers must be disjoint")
	}
	if !displayLayers.Intersects(*canvasLayers) {
		t.Fatalf("display camera must see the canvas")
	}
	if sceneLayers.Intersects(*canvasLayers) {
		t.Fatalf("scene camera must not see the canvas")
	}

	sprite, ok := ecs.Get(w, roles.Canvas, component.SpriteComponent.Kind())
	if !ok || sprite.Width != DefaultWidth || sprite.Height != DefaultHeight {
		t.Fatalf("canvas sprite should match the buffer size, got %+v", sprite)
	}
	if !ecs.Has(w, roles.SceneCamera, component.SceneCameraTagComponent.Kind()) ||
		!ecs.Has(w, roles.DisplayCamera, component.DisplayCameraTagComponent.Kind()) ||
		!ecs.Has(w, roles.Canvas, component.CanvasTagComponent.Kind()) {
		t.Fatalf("role tags missing")
	}

	if err := c.Initialize(w, &resource.Window{Width: 854, Height: 480}); err == nil {
		t.Fatalf("second Initialize should fail")
	}
}

func TestCompositorInitializeWithoutWindowPanics(t *testing.T) {
	w := ecs.NewWorld()
	c, _ := newTestCompositor(t)
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic without a window")
		}
	}()
	_ = c.Initialize(w, nil)
}

func TestCompositorOnWindowResized(t *testing.T) {
	w := ecs.NewWorld()
	c, allocs := newTestCompositor(t)
	if err := c.Initialize(w, &resource.Window{Width: 854, Height: 480}); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	tests := []struct {
		name   string
		w, h   int
		expect float64
	}{
		{"grow_to_double", 1708, 960, 0.4},
		{"same_again", 1708, 960, 0.4},
		{"shrink_below_fixed", 100, 100, 0.8},
		{"back_to_native", 854, 480, 0.8},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := c.OnWindowResized(w, tc.w, tc.h)
			cam, _ := ecs.Get(w, c.Roles().DisplayCamera, component.CameraComponent.Kind())
			if got != tc.expect || cam.Projection.Scale != tc.expect {
				t.Fatalf("scale = %v (camera %v), want %v", got, cam.Projection.Scale, tc.expect)
			}
		})
	}

	if len(*allocs) != 1 {
		t.Fatalf("resizes must not reallocate the buffer, got %d allocations", len(*allocs))
	}
}
