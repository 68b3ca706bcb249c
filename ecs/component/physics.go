package component

import "github.com/jakecoffman/cp"

// PhysicsBody stores Chipmunk2D runtime data and collider configuration. The
// Chipmunk plane is the world XZ plane (cp X = world X, cp Y = world Z);
// vertical motion is integrated separately in VelocityY. Dynamic bodies are
// circles of Radius resting with their centre Radius above the floor; static
// bodies are Width x Depth boxes. WallContact holds the raw ecs.Entity of a
// wall touched during the last step, or 0.
type PhysicsBody struct {
	Body       *cp.Body
	Shape      *cp.Shape
	Width      float64
	Depth      float64
	Radius     float64
	Mass       float64
	Friction   float64
	Elasticity float64
	Static     bool

	VelocityY   float64
	Grounded    bool
	WallContact uint64
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
