package resource

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/pixelrig/ecs"
)

// PlayerData is the player movement snapshot written after the physics step.
// Speed is the configured base speed; DefactoSpeed is the measured
// horizontal speed this frame.
type PlayerData struct {
	PlayerPosition    mgl64.Vec3
	PlayerVelocity    mgl64.Vec3
	DistanceFromFloor float64
	FloorNormal       mgl64.Vec3
	Speed             float64
	DefactoSpeed      float64
	KickedWall        ecs.Entity
	JumpStage         int

	PlayerBaseSpeed    float64
	PlayerCurrentSpeed float64
	PlayerMaxSpeed     float64
}

func NewPlayerData(speed float64) *PlayerData {
	return &PlayerData{
		Speed:              speed,
		PlayerBaseSpeed:    speed,
		PlayerCurrentSpeed: speed,
		PlayerMaxSpeed:     speed * 2,
	}
}
