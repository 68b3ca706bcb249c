package system

import (
	"log"

	"github.com/milk9111/pixelrig/ecs"
	"github.com/milk9111/pixelrig/ecs/component"
)

// CameraModeSystem applies shift requests from the player's input to every
// camera rig.
type CameraModeSystem struct{}

func NewCameraModeSystem() *CameraModeSystem {
	return &CameraModeSystem{}
}

func (s *CameraModeSystem) Update(w *ecs.World) {
	player, ok := w.First(component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	input, ok := ecs.Get(w, player, component.InputComponent.Kind())
	if !ok {
		return
	}
	switch {
	case input.ShiftUp:
		ShiftCameraMode(w, true)
	case input.ShiftDown:
		ShiftCameraMode(w, false)
	}
}

// ShiftCameraMode moves every rig one step up or down the mode lattice and
// reports a camera_mode_changed event for each rig whose mode changed.
func ShiftCameraMode(w *ecs.World, up bool) {
	ecs.ForEach(w, component.CameraRigComponent.Kind(), func(e ecs.Entity, rig *component.CameraRig) {
		next := rig.Mode.ShiftDown()
		if up {
			next = rig.Mode.ShiftUp()
		}
		if next == rig.Mode {
			return
		}
		log.Printf("CameraRig: %v mode %v -> %v", e, rig.Mode, next)
		rig.Mode = next
		w.Events().Push(ecs.Event{
			Type: ecs.EventCameraModeChanged,
			Data: ecs.CameraModeChanged{Camera: e, Mode: next.String()},
		})
	})
}
