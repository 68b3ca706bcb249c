package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/pixelrig/ecs"
	"github.com/milk9111/pixelrig/ecs/component"
	"github.com/milk9111/pixelrig/prefabs"
)

var defaultGroundColor = color.RGBA{R: 0x80, B: 0x80, A: 0xff}

// NewGround spawns the ground slab and four invisible walls along its edges.
// It returns the ground entity followed by the walls.
func NewGround(w *ecs.World, spec prefabs.GroundSpec) ([]ecs.Entity, error) {
	size := spec.Size.Vec3()
	if size.X() <= 0 || size.Z() <= 0 {
		return nil, fmt.Errorf("ground: invalid size %v", size)
	}

	ground := ecs.CreateEntity(w)
	transform := component.NewTransform(0, spec.Y, 0)
	if err := ecs.Add(w, ground, component.TransformComponent.Kind(), &transform); err != nil {
		return nil, fmt.Errorf("ground: add transform: %w", err)
	}
	mesh := component.NewCuboidMesh(size.X(), size.Y(), size.Z(), spec.Color.RGBAOr(defaultGroundColor))
	if err := ecs.Add(w, ground, component.MeshComponent.Kind(), &mesh); err != nil {
		return nil, fmt.Errorf("ground: add mesh: %w", err)
	}

	thickness := spec.WallThickness
	if thickness <= 0 {
		thickness = 1
	}
	halfX, halfZ := size.X()/2+thickness/2, size.Z()/2+thickness/2
	walls := []struct {
		x, z, width, depth float64
	}{
		{x: -halfX, width: thickness, depth: size.Z() + 2*thickness},
		{x: halfX, width: thickness, depth: size.Z() + 2*thickness},
		{z: -halfZ, width: size.X(), depth: thickness},
		{z: halfZ, width: size.X(), depth: thickness},
	}

	out := []ecs.Entity{ground}
	for i, wall := range walls {
		e := ecs.CreateEntity(w)
		wt := component.NewTransform(wall.x, 0, wall.z)
		if err := ecs.Add(w, e, component.TransformComponent.Kind(), &wt); err != nil {
			return nil, fmt.Errorf("ground: wall %d: add transform: %w", i, err)
		}
		if err := ecs.Add(w, e, component.WallTagComponent.Kind(), &component.WallTag{}); err != nil {
			return nil, fmt.Errorf("ground: wall %d: add wall tag: %w", i, err)
		}
		if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
			Static: true,
			Width:  wall.width,
			Depth:  wall.depth,
		}); err != nil {
			return nil, fmt.Errorf("ground: wall %d: add physics body: %w", i, err)
		}
		out = append(out, e)
	}
	return out, nil
}
