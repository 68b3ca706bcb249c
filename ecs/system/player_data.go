package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/pixelrig/ecs"
	"github.com/milk9111/pixelrig/ecs/component"
	"github.com/milk9111/pixelrig/ecs/resource"
)

// PlayerDataSyncSystem publishes the post-physics player state. It must run
// after PhysicsSystem and before any camera rig system.
type PlayerDataSyncSystem struct {
	data *resource.PlayerData
}

func NewPlayerDataSyncSystem(data *resource.PlayerData) *PlayerDataSyncSystem {
	return &PlayerDataSyncSystem{data: data}
}

func (s *PlayerDataSyncSystem) Update(w *ecs.World) {
	if s.data == nil {
		return
	}
	player, ok := w.First(component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	t, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return
	}
	s.data.PlayerPosition = t.Translation

	bodyComp, ok := ecs.Get(w, player, component.PhysicsBodyComponent.Kind())
	if !ok {
		return
	}

	var horizontal mgl64.Vec3
	if bodyComp.Body != nil {
		v := bodyComp.Body.Velocity()
		horizontal = mgl64.Vec3{v.X, 0, v.Y}
	}
	s.data.PlayerVelocity = mgl64.Vec3{horizontal.X(), bodyComp.VelocityY, horizontal.Z()}
	s.data.DefactoSpeed = horizontal.Len()
	s.data.DistanceFromFloor = t.Translation.Y() - bodyComp.Radius

	if bodyComp.Grounded {
		s.data.FloorNormal = component.WorldUp
		s.data.JumpStage = 0
		s.data.KickedWall = 0
		return
	}
	s.data.FloorNormal = mgl64.Vec3{}
	if bodyComp.WallContact != 0 {
		s.data.KickedWall = ecs.Entity(bodyComp.WallContact)
	}
}
