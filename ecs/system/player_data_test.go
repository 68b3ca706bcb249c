package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/pixelrig/ecs"
	"github.com/milk9111/pixelrig/ecs/component"
	"github.com/milk9111/pixelrig/ecs/resource"
)

func TestPlayerDataSync(t *testing.T) {
	tests := []struct {
		name       string
		y          float64
		body       component.PhysicsBody
		startStage int
		wantStage  int
		wantKicked ecs.Entity
		wantNormal mgl64.Vec3
	}{
		{
			name:       "grounded_resets",
			y:          0.5,
			body:       component.PhysicsBody{Radius: 0.5, Grounded: true, WallContact: 9},
			startStage: 2,
			wantStage:  0,
			wantNormal: component.WorldUp,
		},
		{
			name:       "airborne_kicks_wall",
			y:          2,
			body:       component.PhysicsBody{Radius: 0.5, VelocityY: 3, WallContact: 9},
			startStage: 1,
			wantStage:  1,
			wantKicked: 9,
		},
		{
			name:       "airborne_no_wall",
			y:          2,
			body:       component.PhysicsBody{Radius: 0.5, VelocityY: -1},
			startStage: 1,
			wantStage:  1,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			e := spawnInputPlayer(t, w)
			transform := component.NewTransform(1, tc.y, 2)
			if err := ecs.Add(w, e, component.TransformComponent.Kind(), &transform); err != nil {
				t.Fatal(err)
			}
			body := tc.body
			if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &body); err != nil {
				t.Fatal(err)
			}

			data := resource.NewPlayerData(5)
			data.JumpStage = tc.startStage
			NewPlayerDataSyncSystem(data).Update(w)

			if data.PlayerPosition != (mgl64.Vec3{1, tc.y, 2}) {
				t.Fatalf("unexpected position %v", data.PlayerPosition)
			}
			if data.DistanceFromFloor != tc.y-0.5 {
				t.Fatalf("expected distance %v, got %v", tc.y-0.5, data.DistanceFromFloor)
			}
			if data.PlayerVelocity.Y() != tc.body.VelocityY {
				t.Fatalf("expected vertical velocity %v, got %v", tc.body.VelocityY, data.PlayerVelocity.Y())
			}
			if data.JumpStage != tc.wantStage {
				t.Fatalf("expected jump stage %d, got %d", tc.wantStage, data.JumpStage)
			}
			if data.KickedWall != tc.wantKicked {
				t.Fatalf("expected kicked wall %v, got %v", tc.wantKicked, data.KickedWall)
			}
			if data.FloorNormal != tc.wantNormal {
				t.Fatalf("expected floor normal %v, got %v", tc.wantNormal, data.FloorNormal)
			}
		})
	}
}
