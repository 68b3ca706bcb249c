package component

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

type ProjectionKind int

const (
	ProjectionPerspective ProjectionKind = iota
	ProjectionOrthographic
)

// Projection describes how a camera maps view space to its target. For
// orthographic projections Scale is world units per target pixel, so a smaller
// scale shows a larger picture.
type Projection struct {
	Kind  ProjectionKind
	FovY  float64
	Near  float64
	Far   float64
	Scale float64
}

func PerspectiveProjection() Projection {
	return Projection{Kind: ProjectionPerspective, FovY: math.Pi / 4, Near: 0.1, Far: 1000}
}

func OrthographicProjection(scale float64) Projection {
	return Projection{Kind: ProjectionOrthographic, Near: -1000, Far: 1000, Scale: scale}
}

// Camera renders every entity on an intersecting layer into Target, or into
// the window when Target is nil. Lower Order renders first.
type Camera struct {
	Order      int
	Target     *ebiten.Image
	ClearColor color.Color
	Projection Projection
}

var CameraComponent = NewComponent[Camera]()
