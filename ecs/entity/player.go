package entity

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/pixelrig/ecs"
	"github.com/milk9111/pixelrig/ecs/component"
	"github.com/milk9111/pixelrig/prefabs"
)

var (
	defaultPlayerColor = color.RGBA{R: 0x3f, G: 0xa7, B: 0xd6, A: 0xff}
	defaultNoseColor   = color.RGBA{R: 0xf4, G: 0xf4, B: 0xf4, A: 0xff}
)

// NewPlayer spawns the player cube and its nose, a child mesh that sticks
// out of the -Z face so the facing direction is visible.
func NewPlayer(w *ecs.World, spec *prefabs.PlayerSpec) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("player: nil spec")
	}

	size := spec.Size.Vec3()
	if size.X() <= 0 || size.Y() <= 0 || size.Z() <= 0 {
		size = mgl64.Vec3{1, 1, 1}
	}

	player := ecs.CreateEntity(w)
	if err := ecs.Add(w, player, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add player tag: %w", err)
	}
	transform := component.NewTransform(spec.Transform.X, spec.Transform.Y, spec.Transform.Z)
	if err := ecs.Add(w, player, component.TransformComponent.Kind(), &transform); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}
	mesh := component.NewCuboidMesh(size.X(), size.Y(), size.Z(), spec.Color.RGBAOr(defaultPlayerColor))
	if err := ecs.Add(w, player, component.MeshComponent.Kind(), &mesh); err != nil {
		return 0, fmt.Errorf("player: add mesh: %w", err)
	}
	p := spec.Player()
	if err := ecs.Add(w, player, component.PlayerComponent.Kind(), &p); err != nil {
		return 0, fmt.Errorf("player: add player: %w", err)
	}
	if err := ecs.Add(w, player, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}
	if err := ecs.Add(w, player, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Radius:     spec.Collider.Radius,
		Mass:       spec.Collider.Mass,
		Friction:   spec.Collider.Friction,
		Elasticity: spec.Collider.Elasticity,
		Grounded:   true,
	}); err != nil {
		return 0, fmt.Errorf("player: add physics body: %w", err)
	}

	nose := ecs.CreateEntity(w)
	noseTransform := component.NewTransform(0, size.Y()*0.1, -size.Z()/2-0.15)
	if err := ecs.Add(w, nose, component.TransformComponent.Kind(), &noseTransform); err != nil {
		return 0, fmt.Errorf("player: nose: add transform: %w", err)
	}
	noseMesh := component.NewCuboidMesh(size.X()*0.3, size.Y()*0.3, 0.3, spec.NoseColor.RGBAOr(defaultNoseColor))
	if err := ecs.Add(w, nose, component.MeshComponent.Kind(), &noseMesh); err != nil {
		return 0, fmt.Errorf("player: nose: add mesh: %w", err)
	}
	if err := ecs.Add(w, nose, component.ParentComponent.Kind(), &component.Parent{Entity: uint64(player)}); err != nil {
		return 0, fmt.Errorf("player: nose: add parent: %w", err)
	}

	return player, nil
}
