package component

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// Triangle vertices are counter-clockwise when seen from the front.
type Triangle struct {
	A, B, C mgl64.Vec3
	Color   color.RGBA
}

func (t Triangle) Normal() mgl64.Vec3 {
	n := t.B.Sub(t.A).Cross(t.C.Sub(t.A))
	if n.Len() == 0 {
		return n
	}
	return n.Normalize()
}

type Mesh struct {
	Triangles []Triangle
}

var MeshComponent = NewComponent[Mesh]()

// NewCuboidMesh builds an axis-aligned box centred on the origin.
func NewCuboidMesh(width, height, depth float64, c color.RGBA) Mesh {
	x, y, z := width/2, height/2, depth/2
	corner := func(sx, sy, sz float64) mgl64.Vec3 { return mgl64.Vec3{sx * x, sy * y, sz * z} }

	faces := [6][4]mgl64.Vec3{
		{corner(-1, -1, 1), corner(1, -1, 1), corner(1, 1, 1), corner(-1, 1, 1)},     // +Z
		{corner(1, -1, -1), corner(-1, -1, -1), corner(-1, 1, -1), corner(1, 1, -1)}, // -Z
		{corner(1, -1, 1), corner(1, -1, -1), corner(1, 1, -1), corner(1, 1, 1)},     // +X
		{corner(-1, -1, -1), corner(-1, -1, 1), corner(-1, 1, 1), corner(-1, 1, -1)}, // -X
		{corner(-1, 1, 1), corner(1, 1, 1), corner(1, 1, -1), corner(-1, 1, -1)},     // +Y
		{corner(-1, -1, -1), corner(1, -1, -1), corner(1, -1, 1), corner(-1, -1, 1)}, // -Y
	}

	mesh := Mesh{Triangles: make([]Triangle, 0, 12)}
	for _, f := range faces {
		mesh.Triangles = append(mesh.Triangles,
			Triangle{A: f[0], B: f[1], C: f[2], Color: c},
			Triangle{A: f[0], B: f[2], C: f[3], Color: c},
		)
	}
	return mesh
}

var WhiteRGBA = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
