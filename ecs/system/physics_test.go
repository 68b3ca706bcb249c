package system

import (
	"math"
	"testing"

	"github.com/milk9111/pixelrig/ecs"
	"github.com/milk9111/pixelrig/ecs/component"
	"github.com/milk9111/pixelrig/ecs/resource"
)

type movementRig struct {
	w       *ecs.World
	player  ecs.Entity
	data    *resource.PlayerData
	clock   *resource.Time
	systems *ecs.Scheduler
}

func newMovementRig(t *testing.T) *movementRig {
	t.Helper()
	w := ecs.NewWorld()
	data := resource.NewPlayerData(5)
	clock := &resource.Time{Delta: 1.0 / 60}

	player := spawnInputPlayer(t, w)
	transform := component.NewTransform(0, 0.5, 0)
	if err := ecs.Add(w, player, component.TransformComponent.Kind(), &transform); err != nil {
		t.Fatal(err)
	}
	if err := ecs.Add(w, player, component.PlayerComponent.Kind(), &component.Player{
		BaseSpeed: 5, SpeedRamp: 100, JumpSpeed: 9, MaxJumps: 2,
	}); err != nil {
		t.Fatal(err)
	}
	if err := ecs.Add(w, player, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Radius: 0.5, Mass: 1, Grounded: true,
	}); err != nil {
		t.Fatal(err)
	}

	return &movementRig{
		w:      w,
		player: player,
		data:   data,
		clock:  clock,
		systems: ecs.NewScheduler(
			NewPlayerControllerSystem(data, clock),
			NewPhysicsSystem(clock),
			NewPlayerDataSyncSystem(data),
		),
	}
}

func (m *movementRig) input() *component.Input {
	in, _ := ecs.Get(m.w, m.player, component.InputComponent.Kind())
	return in
}

func (m *movementRig) run(frames int) {
	for i := 0; i < frames; i++ {
		m.systems.Update(m.w)
	}
}

func (m *movementRig) addWall(t *testing.T, x, z, width, depth float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(m.w)
	transform := component.NewTransform(x, 0.5, z)
	if err := ecs.Add(m.w, e, component.TransformComponent.Kind(), &transform); err != nil {
		t.Fatal(err)
	}
	if err := ecs.Add(m.w, e, component.WallTagComponent.Kind(), &component.WallTag{}); err != nil {
		t.Fatal(err)
	}
	if err := ecs.Add(m.w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Static: true, Width: width, Depth: depth,
	}); err != nil {
		t.Fatal(err)
	}
	return e
}

func TestPlayerMovesOnGround(t *testing.T) {
	m := newMovementRig(t)
	m.input().MoveX = 1

	m.run(61)

	if x := m.data.PlayerPosition.X(); x < 4.5 || x > 5.5 {
		t.Fatalf("expected about 5 units of travel in one second, got x=%v", x)
	}
	if y := m.data.PlayerPosition.Y(); math.Abs(y-0.5) > 1e-9 {
		t.Fatalf("expected player to rest on the floor, got y=%v", y)
	}
	if math.Abs(m.data.DefactoSpeed-5) > 1e-6 {
		t.Fatalf("expected measured speed 5, got %v", m.data.DefactoSpeed)
	}
	if m.data.FloorNormal != component.WorldUp || m.data.DistanceFromFloor != 0 {
		t.Fatalf("grounded player should report floor contact, got %+v", m.data)
	}
}

func TestSprintRampsToMaxSpeed(t *testing.T) {
	m := newMovementRig(t)
	m.input().Sprint = true
	m.run(10)
	if m.data.PlayerCurrentSpeed != m.data.PlayerMaxSpeed {
		t.Fatalf("expected current speed %v, got %v", m.data.PlayerMaxSpeed, m.data.PlayerCurrentSpeed)
	}
	m.input().Sprint = false
	m.run(10)
	if m.data.PlayerCurrentSpeed != m.data.PlayerBaseSpeed {
		t.Fatalf("expected current speed back at %v, got %v", m.data.PlayerBaseSpeed, m.data.PlayerCurrentSpeed)
	}
}

func TestJumpStages(t *testing.T) {
	m := newMovementRig(t)
	m.run(1)

	m.input().JumpPressed = true
	m.run(1)
	m.input().JumpPressed = false
	if m.data.JumpStage != 1 || m.data.DistanceFromFloor <= 0 {
		t.Fatalf("expected first jump airborne, got stage %d distance %v", m.data.JumpStage, m.data.DistanceFromFloor)
	}

	m.run(5)
	m.input().JumpPressed = true
	m.run(1)
	m.input().JumpPressed = true
	m.run(1)
	m.input().JumpPressed = false
	if m.data.JumpStage != 2 {
		t.Fatalf("expected jump stage capped at 2, got %d", m.data.JumpStage)
	}

	m.run(180)
	if m.data.JumpStage != 0 || m.data.DistanceFromFloor != 0 {
		t.Fatalf("expected landing to reset jump stage, got stage %d distance %v", m.data.JumpStage, m.data.DistanceFromFloor)
	}
}

func TestWallStopsPlayerAndIsKicked(t *testing.T) {
	m := newMovementRig(t)
	wall := m.addWall(t, 3, 0, 1, 10)
	m.input().MoveX = 1

	m.run(120)

	if x := m.data.PlayerPosition.X(); x > 2.25 {
		t.Fatalf("expected the wall at x=2.5 to stop the player, got x=%v", x)
	}
	body, _ := ecs.Get(m.w, m.player, component.PhysicsBodyComponent.Kind())
	if body.WallContact != uint64(wall) {
		t.Fatalf("expected wall contact %v, got %v", wall, body.WallContact)
	}
	if m.data.KickedWall != 0 {
		t.Fatalf("grounded player must not kick a wall, got %v", m.data.KickedWall)
	}

	m.input().JumpPressed = true
	m.run(1)
	if m.data.KickedWall != wall {
		t.Fatalf("expected airborne player to kick %v, got %v", wall, m.data.KickedWall)
	}
}

func TestPhysicsRemovesDestroyedBodies(t *testing.T) {
	m := newMovementRig(t)
	physics := NewPhysicsSystem(m.clock)
	physics.Update(m.w)
	if n := len(physics.entities); n != 1 {
		t.Fatalf("expected one tracked body, got %d", n)
	}

	ecs.DestroyEntity(m.w, m.player)
	physics.Update(m.w)
	if n := len(physics.entities); n != 0 {
		t.Fatalf("expected destroyed body to be removed, got %d", n)
	}
}
