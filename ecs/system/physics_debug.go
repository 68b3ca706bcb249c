package system

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/pixelrig/ecs/resource"
)

const (
	debugCircleSegments = 24
	debugMinimapSize    = 160
	debugMinimapMargin  = 8
	debugMinimapUnits   = 60
)

// DrawPhysicsMinimap draws the Chipmunk space top-down (world X right, world
// Z down) in the screen's top-right corner, plus the observed camera as a dot.
func DrawPhysicsMinimap(space *cp.Space, observed *resource.CameraObserved, screen *ebiten.Image) {
	if space == nil || screen == nil {
		return
	}

	drawer := newMinimapDrawer(screen)
	vector.DrawFilledRect(screen, float32(drawer.left), float32(drawer.top), debugMinimapSize, debugMinimapSize, color.NRGBA{A: 160}, false)
	cp.DrawSpace(space, drawer)

	if observed != nil {
		x, y := drawer.toScreen(cp.Vector{X: observed.Position.X(), Y: observed.Position.Z()})
		vector.DrawFilledCircle(screen, float32(x), float32(y), 3, color.NRGBA{R: 0xff, G: 0xd0, B: 0x20, A: 0xff}, false)
	}
}

type minimapDrawer struct {
	screen        *ebiten.Image
	left, top     float64
	pixelsPerUnit float64
}

func newMinimapDrawer(screen *ebiten.Image) *minimapDrawer {
	return &minimapDrawer{
		screen:        screen,
		left:          float64(screen.Bounds().Dx() - debugMinimapSize - debugMinimapMargin),
		top:           debugMinimapMargin,
		pixelsPerUnit: float64(debugMinimapSize) / debugMinimapUnits,
	}
}

func (d *minimapDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	if radius <= 0 {
		return
	}
	d.drawCircle(pos, radius, outline)
	end := cp.Vector{X: pos.X + math.Cos(angle)*radius, Y: pos.Y + math.Sin(angle)*radius}
	d.drawLine(pos, end, outline)
}

func (d *minimapDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, fill)
}

func (d *minimapDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, outline)
}

func (d *minimapDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if count <= 0 {
		return
	}
	d.drawPolygon(verts[:count], outline)
}

func (d *minimapDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	x, y := d.toScreen(pos)
	vector.DrawFilledCircle(d.screen, float32(x), float32(y), 1.5, toNRGBA(fill), false)
}

func (d *minimapDrawer) Flags() uint {
	return cp.DRAW_SHAPES | cp.DRAW_COLLISION_POINTS
}

func (d *minimapDrawer) OutlineColor() cp.FColor {
	return cp.FColor{R: 0.2, G: 1, B: 0.2, A: 0.9}
}

func (d *minimapDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	if shape.Body().GetType() == cp.BODY_STATIC {
		return cp.FColor{R: 0.6, G: 0.3, B: 0.8, A: 0.8}
	}
	return cp.FColor{R: 0.3, G: 0.7, B: 1, A: 0.9}
}

func (d *minimapDrawer) ConstraintColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.5, B: 0.1, A: 0.9}
}

func (d *minimapDrawer) CollisionPointColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.2, B: 0.2, A: 0.9}
}

func (d *minimapDrawer) Data() interface{} {
	return nil
}

func (d *minimapDrawer) drawLine(a, b cp.Vector, c cp.FColor) {
	x1, y1 := d.toScreen(a)
	x2, y2 := d.toScreen(b)
	vector.StrokeLine(d.screen, float32(x1), float32(y1), float32(x2), float32(y2), 1, toNRGBA(c), false)
}

func (d *minimapDrawer) drawPolygon(verts []cp.Vector, c cp.FColor) {
	for i := range verts {
		d.drawLine(verts[i], verts[(i+1)%len(verts)], c)
	}
}

func (d *minimapDrawer) drawCircle(center cp.Vector, radius float64, c cp.FColor) {
	points := make([]cp.Vector, 0, debugCircleSegments)
	for i := 0; i < debugCircleSegments; i++ {
		t := (2 * math.Pi) * (float64(i) / float64(debugCircleSegments))
		points = append(points, cp.Vector{X: center.X + math.Cos(t)*radius, Y: center.Y + math.Sin(t)*radius})
	}
	d.drawPolygon(points, c)
}

// toScreen maps a cp point (world X, world Z) into the minimap, with the world
// origin at the minimap centre.
func (d *minimapDrawer) toScreen(v cp.Vector) (float64, float64) {
	half := float64(debugMinimapSize) / 2
	return d.left + half + v.X*d.pixelsPerUnit, d.top + half + v.Y*d.pixelsPerUnit
}

func toNRGBA(c cp.FColor) color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
