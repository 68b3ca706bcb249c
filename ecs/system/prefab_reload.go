package system

import (
	"log"

	"github.com/milk9111/pixelrig/ecs"
	"github.com/milk9111/pixelrig/ecs/component"
	"github.com/milk9111/pixelrig/ecs/resource"
	"github.com/milk9111/pixelrig/prefabs"
)

// PrefabReloadSystem applies prefab files changed on disk. It never blocks:
// it only takes what the watcher has already delivered.
type PrefabReloadSystem struct {
	changes <-chan string
	player  *resource.PlayerData
}

func NewPrefabReloadSystem(changes <-chan string, player *resource.PlayerData) *PrefabReloadSystem {
	return &PrefabReloadSystem{changes: changes, player: player}
}

func (s *PrefabReloadSystem) Update(w *ecs.World) {
	if s == nil || s.changes == nil {
		return
	}
	pending := make(map[string]struct{})
	for drained := false; !drained; {
		select {
		case path, ok := <-s.changes:
			if !ok {
				s.changes = nil
				drained = true
				break
			}
			pending[prefabs.Name(path)] = struct{}{}
		default:
			drained = true
		}
	}

	if _, ok := pending[prefabs.CameraFile]; ok {
		ReloadCameraRig(w)
	}
	if _, ok := pending[prefabs.PlayerFile]; ok {
		s.reloadPlayer(w)
	}
}

// ReloadCameraRig re-reads camera.yaml into every rig. The live mode and
// desired position are kept; an invalid file leaves the rigs untouched.
func ReloadCameraRig(w *ecs.World) bool {
	spec, err := prefabs.LoadCameraRigSpec()
	if err != nil {
		log.Printf("Prefabs: reload %s: %v", prefabs.CameraFile, err)
		return false
	}
	next, err := spec.Rig()
	if err != nil {
		log.Printf("Prefabs: rejected %s: %v", prefabs.CameraFile, err)
		return false
	}
	ecs.ForEach(w, component.CameraRigComponent.Kind(), func(_ ecs.Entity, rig *component.CameraRig) {
		mode, desired := rig.Mode, rig.DesiredPosition
		*rig = next
		rig.Mode, rig.DesiredPosition = mode, desired
	})
	log.Printf("Prefabs: reloaded %s", prefabs.CameraFile)
	return true
}

func (s *PrefabReloadSystem) reloadPlayer(w *ecs.World) {
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		log.Printf("Prefabs: reload %s: %v", prefabs.PlayerFile, err)
		return
	}
	ecs.ForEach(w, component.PlayerComponent.Kind(), func(_ ecs.Entity, p *component.Player) {
		*p = spec.Player()
	})
	if s.player != nil {
		s.player.Speed = spec.Speed
		s.player.PlayerBaseSpeed = spec.Speed
		s.player.PlayerMaxSpeed = spec.Speed * 2
	}
	log.Printf("Prefabs: reloaded %s", prefabs.PlayerFile)
}
