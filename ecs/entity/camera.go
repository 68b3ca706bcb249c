package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/pixelrig/ecs"
	"github.com/milk9111/pixelrig/ecs/component"
)

// AttachCameraRig puts rig on an existing camera, normally the compositor's
// scene camera, and starts it at start looking at target.
func AttachCameraRig(w *ecs.World, camera ecs.Entity, rig component.CameraRig, start, target mgl64.Vec3) error {
	if err := rig.Validate(); err != nil {
		return fmt.Errorf("camera rig: %w", err)
	}
	transform, ok := ecs.Get(w, camera, component.TransformComponent.Kind())
	if !ok {
		return fmt.Errorf("camera rig: camera %v has no transform", camera)
	}
	transform.Translation = start
	transform.LookAt(target, component.WorldUp)

	if err := ecs.Add(w, camera, component.CameraRigComponent.Kind(), &rig); err != nil {
		return fmt.Errorf("camera rig: add rig: %w", err)
	}
	return nil
}
