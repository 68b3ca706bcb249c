package system

import (
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/pixelrig/ecs"
	"github.com/milk9111/pixelrig/ecs/component"
	"github.com/milk9111/pixelrig/ecs/resource"
)

// maxBatchVertices keeps batch indices inside DrawTriangles' uint16 range.
const maxBatchVertices = math.MaxUint16 - 6

// RenderSystem draws every camera in order. Perspective cameras rasterize
// meshes with flat shading; orthographic cameras draw sprites.
type RenderSystem struct {
	lighting *resource.Lighting

	white    *ebiten.Image
	tris     []projectedTriangle
	vertices []ebiten.Vertex
	indices  []uint16
}

type projectedTriangle struct {
	points [][2]float64
	depth  float64
	color  color.RGBA
}

func NewRenderSystem(lighting *resource.Lighting) *RenderSystem {
	return &RenderSystem{lighting: lighting}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil {
		return
	}

	for _, camEntity := range cameraOrder(w) {
		cam, _ := ecs.Get(w, camEntity, component.CameraComponent.Kind())
		target := cam.Target
		if target == nil {
			target = screen
		}
		if target == nil {
			continue
		}
		if cam.ClearColor != nil {
			target.Fill(cam.ClearColor)
		}

		camTransform := globalTransform(w, camEntity)
		layers := renderLayersOf(w, camEntity)
		switch cam.Projection.Kind {
		case component.ProjectionPerspective:
			r.drawMeshes(w, target, camTransform, cam.Projection, layers)
		case component.ProjectionOrthographic:
			r.drawSprites(w, target, camTransform, cam.Projection, layers)
		}
	}
}

// cameraOrder returns camera entities sorted by Order, ties broken by id.
func cameraOrder(w *ecs.World) []ecs.Entity {
	cams := w.Query(component.CameraComponent.Kind())
	sort.SliceStable(cams, func(i, j int) bool {
		ci, _ := ecs.Get(w, cams[i], component.CameraComponent.Kind())
		cj, _ := ecs.Get(w, cams[j], component.CameraComponent.Kind())
		return ci.Order < cj.Order
	})
	return cams
}

func renderLayersOf(w *ecs.World, e ecs.Entity) component.RenderLayers {
	if layers, ok := ecs.Get(w, e, component.RenderLayersComponent.Kind()); ok {
		return *layers
	}
	return component.RenderLayers{Mask: component.LayerScene}
}

func globalTransform(w *ecs.World, e ecs.Entity) component.Transform {
	if g, ok := ecs.Get(w, e, component.GlobalTransformComponent.Kind()); ok {
		return g.Transform
	}
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		return *t
	}
	return component.NewTransform(0, 0, 0)
}

func (r *RenderSystem) drawMeshes(w *ecs.World, target *ebiten.Image, camTransform component.Transform, proj component.Projection, layers component.RenderLayers) {
	bounds := target.Bounds()
	width, height := float64(bounds.Dx()), float64(bounds.Dy())
	if width == 0 || height == 0 {
		return
	}

	view := camTransform.Matrix().Inv()
	projection := mgl64.Perspective(proj.FovY, width/height, proj.Near, proj.Far)
	camPos := camTransform.Translation

	r.tris = r.tris[:0]
	ecs.ForEach(w, component.MeshComponent.Kind(), func(e ecs.Entity, mesh *component.Mesh) {
		if !renderLayersOf(w, e).Intersects(layers) {
			return
		}
		model := globalTransform(w, e).Matrix()
		for _, tri := range mesh.Triangles {
			a := model.Mul4x1(tri.A.Vec4(1)).Vec3()
			b := model.Mul4x1(tri.B.Vec4(1)).Vec3()
			c := model.Mul4x1(tri.C.Vec4(1)).Vec3()

			world := component.Triangle{A: a, B: b, C: c, Color: tri.Color}
			normal := world.Normal()
			if normal.Dot(camPos.Sub(a)) <= 0 {
				continue
			}

			poly := clipNear([]mgl64.Vec3{
				view.Mul4x1(a.Vec4(1)).Vec3(),
				view.Mul4x1(b.Vec4(1)).Vec3(),
				view.Mul4x1(c.Vec4(1)).Vec3(),
			}, proj.Near)
			if len(poly) < 3 {
				continue
			}

			points := make([][2]float64, 0, len(poly))
			depth := 0.0
			for _, v := range poly {
				p, ok := projectPoint(projection, v, width, height)
				if !ok {
					points = nil
					break
				}
				points = append(points, [2]float64{p.X(), p.Y()})
				depth += -v.Z()
			}
			if points == nil {
				continue
			}
			r.tris = append(r.tris, projectedTriangle{
				points: points,
				depth:  depth / float64(len(poly)),
				color:  shadeColor(tri.Color, normal, r.lighting),
			})
		}
	})

	// painter's order: farthest first
	sort.SliceStable(r.tris, func(i, j int) bool { return r.tris[i].depth > r.tris[j].depth })

	src := r.whiteSubImage()
	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]
	for _, tri := range r.tris {
		if len(r.vertices)+len(tri.points) > maxBatchVertices {
			r.flush(target, src)
		}
		cr, cg, cb, ca := float32(tri.color.R)/0xff, float32(tri.color.G)/0xff, float32(tri.color.B)/0xff, float32(tri.color.A)/0xff
		base := uint16(len(r.vertices))
		for _, p := range tri.points {
			r.vertices = append(r.vertices, ebiten.Vertex{
				DstX: float32(p[0]), DstY: float32(p[1]),
				SrcX: 1, SrcY: 1,
				ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
			})
		}
		for i := 1; i+1 < len(tri.points); i++ {
			r.indices = append(r.indices, base, base+uint16(i), base+uint16(i+1))
		}
	}
	r.flush(target, src)
}

func (r *RenderSystem) flush(target, src *ebiten.Image) {
	if len(r.indices) == 0 {
		r.vertices = r.vertices[:0]
		return
	}
	target.DrawTriangles(r.vertices, r.indices, src, &ebiten.DrawTrianglesOptions{})
	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]
}

func (r *RenderSystem) whiteSubImage() *ebiten.Image {
	if r.white == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		r.white = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return r.white
}

func (r *RenderSystem) drawSprites(w *ecs.World, target *ebiten.Image, camTransform component.Transform, proj component.Projection, layers component.RenderLayers) {
	bounds := target.Bounds()
	halfW, halfH := float64(bounds.Dx())/2, float64(bounds.Dy())/2

	scale := proj.Scale
	if scale <= 0 {
		scale = 1
	}

	ecs.ForEach(w, component.SpriteComponent.Kind(), func(e ecs.Entity, s *component.Sprite) {
		if s.Image == nil || !renderLayersOf(w, e).Intersects(layers) {
			return
		}
		imgBounds := s.Image.Bounds()
		imgW, imgH := float64(imgBounds.Dx()), float64(imgBounds.Dy())
		if imgW == 0 || imgH == 0 {
			return
		}

		pos := globalTransform(w, e).Translation.Sub(camTransform.Translation)

		op := &ebiten.DrawImageOptions{Filter: ebiten.FilterNearest}
		op.GeoM.Translate(-imgW/2, -imgH/2)
		op.GeoM.Scale(s.Width/imgW/scale, s.Height/imgH/scale)
		op.GeoM.Translate(pos.X()/scale+halfW, -pos.Y()/scale+halfH)
		target.DrawImage(s.Image, op)
	})
}

// projectPoint maps a view-space point to target pixel coordinates, with y
// growing downward. It reports false for points at or behind the eye.
func projectPoint(projection mgl64.Mat4, p mgl64.Vec3, width, height float64) (mgl64.Vec2, bool) {
	clip := projection.Mul4x1(p.Vec4(1))
	if clip.W() <= 1e-9 {
		return mgl64.Vec2{}, false
	}
	ndcX, ndcY := clip.X()/clip.W(), clip.Y()/clip.W()
	return mgl64.Vec2{(ndcX + 1) * 0.5 * width, (1 - ndcY) * 0.5 * height}, true
}

// clipNear clips a view-space polygon against the plane z = -near, keeping
// the part in front of the camera.
func clipNear(poly []mgl64.Vec3, near float64) []mgl64.Vec3 {
	inside := func(v mgl64.Vec3) bool { return -v.Z() >= near }

	out := make([]mgl64.Vec3, 0, len(poly)+1)
	for i, cur := range poly {
		prev := poly[(i+len(poly)-1)%len(poly)]
		curIn, prevIn := inside(cur), inside(prev)
		if curIn != prevIn {
			t := (-near - prev.Z()) / (cur.Z() - prev.Z())
			out = append(out, component.LerpVec3(prev, cur, t))
		}
		if curIn {
			out = append(out, cur)
		}
	}
	return out
}

// shadeColor applies flat Lambert lighting: ambient brightness is a
// percentage, directional illuminance is scaled so 10000 lux is full
// strength.
func shadeColor(base color.RGBA, normal mgl64.Vec3, light *resource.Lighting) color.RGBA {
	if light == nil {
		return base
	}
	ambient := light.AmbientBrightness / 100
	diffuse := 0.0
	if dir := light.DirectionalDir; dir.Len() > 0 {
		diffuse = math.Max(0, normal.Dot(dir.Normalize().Mul(-1))) * light.DirectionalLux / 10000
	}

	channel := func(b, a, d uint8) uint8 {
		v := float64(b) / 0xff * (ambient*float64(a)/0xff + diffuse*float64(d)/0xff)
		return uint8(math.Round(math.Min(1, v) * 0xff))
	}
	return color.RGBA{
		R: channel(base.R, light.AmbientColor.R, light.DirectionalColor.R),
		G: channel(base.G, light.AmbientColor.G, light.DirectionalColor.G),
		B: channel(base.B, light.AmbientColor.B, light.DirectionalColor.B),
		A: base.A,
	}
}
