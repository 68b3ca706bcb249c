package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/pixelrig/common"
	"github.com/milk9111/pixelrig/ecs"
	"github.com/milk9111/pixelrig/ecs/component"
	"github.com/milk9111/pixelrig/ecs/resource"
)

const (
	collisionTypePlayer cp.CollisionType = iota + 1
	collisionTypeWall
)

// PhysicsSystem simulates the ground plane with Chipmunk2D. The cp plane is
// world XZ; height above the floor is integrated here with common.Gravity.
type PhysicsSystem struct {
	space         *cp.Space
	time          *resource.Time
	handlersReady bool

	entities   map[ecs.Entity]*bodyInfo
	wallShapes map[*cp.Shape]ecs.Entity
	contacts   map[ecs.Entity]ecs.Entity
}

type bodyInfo struct {
	body   *cp.Body
	shape  *cp.Shape
	static bool
}

func NewPhysicsSystem(time *resource.Time) *PhysicsSystem {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{})
	return &PhysicsSystem{
		space:      space,
		time:       time,
		entities:   make(map[ecs.Entity]*bodyInfo),
		wallShapes: make(map[*cp.Shape]ecs.Entity),
		contacts:   make(map[ecs.Entity]ecs.Entity),
	}
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil || ps.time == nil {
		return
	}

	ps.ensureHandlers()
	ps.cleanupEntities(w)
	ps.syncEntities(w)

	dt := ps.time.Delta
	if dt <= 0 {
		return
	}
	for e := range ps.contacts {
		delete(ps.contacts, e)
	}
	ps.space.Step(dt)

	ps.syncTransforms(w, dt)
}

func (ps *PhysicsSystem) ensureHandlers() {
	if ps.handlersReady {
		return
	}

	wallHandler := ps.space.NewCollisionHandler(collisionTypePlayer, collisionTypeWall)
	wallHandler.UserData = ps
	wallHandler.PreSolveFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		sys, ok := userData.(*PhysicsSystem)
		if !ok || sys == nil {
			return true
		}
		shapeA, shapeB := arb.Shapes()
		wall, ok := sys.wallShapes[shapeB]
		if !ok {
			return true
		}
		if body := shapeA.Body(); body != nil {
			if player, ok := body.UserData.(ecs.Entity); ok {
				sys.contacts[player] = wall
			}
		}
		return true
	}

	ps.handlersReady = true
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if ecs.IsAlive(w, e) && ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) {
			continue
		}
		if info.shape != nil {
			ps.space.RemoveShape(info.shape)
			delete(ps.wallShapes, info.shape)
		}
		if info.body != nil && !info.static {
			ps.space.RemoveBody(info.body)
		}
		delete(ps.entities, e)
		delete(ps.contacts, e)
	}
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	entities := w.Query(component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind())
	for _, e := range entities {
		if _, ok := ps.entities[e]; ok {
			continue
		}
		bodyComp, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		transform, _ := ecs.Get(w, e, component.TransformComponent.Kind())

		info := ps.createBodyInfo(e, *transform, bodyComp, ecs.Has(w, e, component.WallTagComponent.Kind()))
		ps.entities[e] = info
		bodyComp.Body = info.body
		bodyComp.Shape = info.shape
	}
}

func (ps *PhysicsSystem) createBodyInfo(e ecs.Entity, transform component.Transform, bodyComp *component.PhysicsBody, isWall bool) *bodyInfo {
	x, z := transform.Translation.X(), transform.Translation.Z()

	if bodyComp.Static {
		halfW, halfD := bodyComp.Width/2, bodyComp.Depth/2
		bb := cp.BB{L: x - halfW, B: z - halfD, R: x + halfW, T: z + halfD}
		shape := cp.NewBox2(ps.space.StaticBody, bb, 0)
		shape.SetFriction(bodyComp.Friction)
		shape.SetElasticity(bodyComp.Elasticity)
		if isWall {
			shape.SetCollisionType(collisionTypeWall)
			ps.wallShapes[shape] = e
		}
		ps.space.AddShape(shape)
		return &bodyInfo{body: ps.space.StaticBody, shape: shape, static: true}
	}

	mass := bodyComp.Mass
	if mass <= 0 {
		mass = 1
	}
	radius := bodyComp.Radius
	if radius <= 0 {
		radius = 0.5
	}

	body := cp.NewBody(mass, cp.MomentForCircle(mass, 0, radius, cp.Vector{}))
	body.SetPosition(cp.Vector{X: x, Y: z})
	body.UserData = e
	ps.space.AddBody(body)

	shape := cp.NewCircle(body, radius, cp.Vector{})
	shape.SetFriction(bodyComp.Friction)
	shape.SetElasticity(bodyComp.Elasticity)
	shape.SetCollisionType(collisionTypePlayer)
	ps.space.AddShape(shape)

	return &bodyInfo{body: body, shape: shape}
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World, dt float64) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, bodyComp *component.PhysicsBody, t *component.Transform) {
		info := ps.entities[e]
		if info == nil || info.static {
			return
		}

		pos := info.body.Position()
		vel := info.body.Velocity()

		restY := bodyComp.Radius
		y := t.Translation.Y()
		if !bodyComp.Grounded || bodyComp.VelocityY > 0 {
			bodyComp.VelocityY -= common.Gravity * dt
			y += bodyComp.VelocityY * dt
		}
		if y <= restY {
			y = restY
			bodyComp.VelocityY = 0
			bodyComp.Grounded = true
		} else {
			bodyComp.Grounded = false
		}

		t.Translation = mgl64.Vec3{pos.X, y, pos.Y}
		if horizontal := (mgl64.Vec3{vel.X, 0, vel.Y}); horizontal.Len() > 1e-3 {
			t.Rotation = mgl64.QuatRotate(component.Yaw(horizontal), component.WorldUp)
		}

		bodyComp.WallContact = 0
		if wall, ok := ps.contacts[e]; ok {
			bodyComp.WallContact = uint64(wall)
		}
	})
}
