package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/pixelrig/common"
	"github.com/milk9111/pixelrig/ecs"
	"github.com/milk9111/pixelrig/ecs/component"
	"github.com/milk9111/pixelrig/ecs/resource"
)

// baseHeight is added to the speed-interpolated height offset.
const baseHeight = 2.5

// CameraDesiredPositionSystem derives each rig's desired position from the
// player's position, the rig's yaw and its current offset.
type CameraDesiredPositionSystem struct {
	player *resource.PlayerData
}

func NewCameraDesiredPositionSystem(player *resource.PlayerData) *CameraDesiredPositionSystem {
	return &CameraDesiredPositionSystem{player: player}
}

func (s *CameraDesiredPositionSystem) Update(w *ecs.World) {
	if s.player == nil {
		return
	}
	ecs.ForEach(w, component.CameraRigComponent.Kind(), func(_ ecs.Entity, rig *component.CameraRig) {
		rig.DesiredPosition = desiredPosition(*rig, s.player.PlayerPosition)
	})
}

func desiredPosition(rig component.CameraRig, playerPosition mgl64.Vec3) mgl64.Vec3 {
	orientation := component.NewTransform(playerPosition.X(), playerPosition.Y(), playerPosition.Z())
	orientation.Rotation = component.YawRotation(rig.Angle)
	forward := orientation.Forward().Normalize()
	return playerPosition.
		Add(forward.Mul(rig.Offset.Z())).
		Add(orientation.Up().Mul(rig.Offset.Y()))
}

// CameraOffsetSystem raises or lowers the rig height with player speed. The
// speed ratio is deliberately left unclamped: sprinting past the reference
// speed keeps lowering the camera past YOffsetMin.
type CameraOffsetSystem struct {
	player *resource.PlayerData
}

func NewCameraOffsetSystem(player *resource.PlayerData) *CameraOffsetSystem {
	return &CameraOffsetSystem{player: player}
}

func (s *CameraOffsetSystem) Update(w *ecs.World) {
	if s.player == nil {
		return
	}
	ratio := speedRatio(s.player.PlayerCurrentSpeed, s.player.PlayerMaxSpeed)
	ecs.ForEach(w, component.CameraRigComponent.Kind(), func(_ ecs.Entity, rig *component.CameraRig) {
		rig.Offset[1] = verticalOffset(*rig, ratio)
	})
}

func speedRatio(current, max float64) float64 {
	if max == 0 {
		return 0
	}
	return current / max * 2
}

func verticalOffset(rig component.CameraRig, ratio float64) float64 {
	return baseHeight + common.Lerp(rig.YOffsetMax, rig.YOffsetMin, ratio)
}

// CameraPlacementSystem eases each rig's camera toward its desired position
// and aims it at the player.
//
// Fixed and Free publish the pre-easing transform to CameraObserved, ease by
// dt*easing (not clamped, so large steps overshoot) and look at the player.
// Follow is frozen: nothing moves and CameraObserved keeps its last value.
type CameraPlacementSystem struct {
	player   *resource.PlayerData
	observed *resource.CameraObserved
	time     *resource.Time
}

func NewCameraPlacementSystem(player *resource.PlayerData, observed *resource.CameraObserved, time *resource.Time) *CameraPlacementSystem {
	return &CameraPlacementSystem{player: player, observed: observed, time: time}
}

func (s *CameraPlacementSystem) Update(w *ecs.World) {
	if s.player == nil || s.observed == nil || s.time == nil {
		return
	}
	ecs.ForEach2(w, component.CameraRigComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, rig *component.CameraRig, t *component.Transform) {
		placeCamera(e, rig, t, s.player.PlayerPosition, s.time.Delta, s.observed)
	})
}

func placeCamera(e ecs.Entity, rig *component.CameraRig, t *component.Transform, target mgl64.Vec3, dt float64, observed *resource.CameraObserved) {
	if rig.Mode.Frozen() {
		return
	}
	observed.Position = t.Translation
	observed.Rotation = t.Rotation
	observed.Owner = e

	t.Translation = component.LerpVec3(t.Translation, rig.DesiredPosition, dt*rig.Easing)
	t.LookAt(target, component.WorldUp)
}
