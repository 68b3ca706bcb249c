package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/pixelrig/common"
	"github.com/milk9111/pixelrig/ecs"
	"github.com/milk9111/pixelrig/ecs/component"
	"github.com/milk9111/pixelrig/ecs/resource"
)

// PlayerControllerSystem turns input into body velocity. It owns the
// current-speed ramp between base and max speed.
type PlayerControllerSystem struct {
	data *resource.PlayerData
	time *resource.Time
}

func NewPlayerControllerSystem(data *resource.PlayerData, time *resource.Time) *PlayerControllerSystem {
	return &PlayerControllerSystem{data: data, time: time}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil || p.data == nil || p.time == nil {
		return
	}

	entities := w.Query(
		component.PlayerTagComponent.Kind(),
		component.PlayerComponent.Kind(),
		component.InputComponent.Kind(),
		component.PhysicsBodyComponent.Kind(),
	)
	for _, e := range entities {
		player, _ := ecs.Get(w, e, component.PlayerComponent.Kind())
		input, _ := ecs.Get(w, e, component.InputComponent.Kind())
		bodyComp, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		if bodyComp.Body == nil {
			continue
		}

		target := p.data.PlayerBaseSpeed
		if input.Sprint {
			target = p.data.PlayerMaxSpeed
		}
		p.data.PlayerCurrentSpeed = common.Approach(p.data.PlayerCurrentSpeed, target, player.SpeedRamp*p.time.Delta)

		dx, dz := input.MoveX, input.MoveZ
		if l := math.Hypot(dx, dz); l > 1 {
			dx, dz = dx/l, dz/l
		}
		bodyComp.Body.SetVelocityVector(cp.Vector{X: dx * p.data.PlayerCurrentSpeed, Y: dz * p.data.PlayerCurrentSpeed})
		bodyComp.Body.SetAngle(0)
		bodyComp.Body.SetAngularVelocity(0)

		if input.JumpPressed && p.data.JumpStage < player.MaxJumps {
			bodyComp.VelocityY = player.JumpSpeed
			bodyComp.Grounded = false
			p.data.JumpStage++
		}
	}
}
