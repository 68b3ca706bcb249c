package component

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const eps = 1e-6

func vecNear(a, b mgl64.Vec3) bool {
	return a.Sub(b).Len() < eps
}

func TestTransformAxesIdentity(t *testing.T) {
	tr := NewTransform(0, 0, 0)
	if !vecNear(tr.Forward(), mgl64.Vec3{0, 0, -1}) {
		t.Fatalf("forward = %v", tr.Forward())
	}
	if !vecNear(tr.Right(), mgl64.Vec3{1, 0, 0}) {
		t.Fatalf("right = %v", tr.Right())
	}
	if !vecNear(tr.Up(), mgl64.Vec3{0, 1, 0}) {
		t.Fatalf("up = %v", tr.Up())
	}
}

func TestTransformLookAt(t *testing.T) {
	tests := []struct {
		name   string
		eye    mgl64.Vec3
		target mgl64.Vec3
	}{
		{"behind_and_above", mgl64.Vec3{0, 5, 10}, mgl64.Vec3{}},
		{"diagonal", mgl64.Vec3{10, 10, 10}, mgl64.Vec3{}},
		{"straight_down", mgl64.Vec3{0, 10, 0}, mgl64.Vec3{}},
		{"level", mgl64.Vec3{-3, 1, 0}, mgl64.Vec3{4, 1, 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tr := NewTransform(tc.eye.X(), tc.eye.Y(), tc.eye.Z())
			tr.LookAt(tc.target, WorldUp)

			want := tc.target.Sub(tc.eye).Normalize()
			if !vecNear(tr.Forward(), want) {
				t.Fatalf("forward = %v, want %v", tr.Forward(), want)
			}
			if math.Abs(tr.Right().Y()) > eps && tc.name != "straight_down" {
				t.Fatalf("right axis should stay level, got %v", tr.Right())
			}
		})
	}
}

func TestTransformLookAtSelfKeepsRotation(t *testing.T) {
	tr := NewTransform(1, 2, 3)
	tr.Rotation = YawRotation(45)
	before := tr.Rotation
	tr.LookAt(tr.Translation, WorldUp)
	if tr.Rotation != before {
		t.Fatalf("rotation changed when looking at own position")
	}
}

func TestTransformMul(t *testing.T) {
	parent := NewTransform(10, 0, 0)
	parent.Rotation = YawRotation(90)

	child := NewTransform(0, 0, -1)
	got := parent.Mul(child)

	// yaw 90 turns -Z into -X
	if !vecNear(got.Translation, mgl64.Vec3{9, 0, 0}) {
		t.Fatalf("translation = %v", got.Translation)
	}
	if !vecNear(got.Forward(), mgl64.Vec3{-1, 0, 0}) {
		t.Fatalf("forward = %v", got.Forward())
	}
}

func TestLerpVec3Unclamped(t *testing.T) {
	a := mgl64.Vec3{0, 0, 0}
	b := mgl64.Vec3{10, 0, 0}
	if got := LerpVec3(a, b, 0.25); !vecNear(got, mgl64.Vec3{2.5, 0, 0}) {
		t.Fatalf("lerp 0.25 = %v", got)
	}
	if got := LerpVec3(a, b, 1.5); !vecNear(got, mgl64.Vec3{15, 0, 0}) {
		t.Fatalf("lerp 1.5 should overshoot, got %v", got)
	}
}

func TestCuboidMeshFacesOutward(t *testing.T) {
	mesh := NewCuboidMesh(2, 2, 2, WhiteRGBA)
	if len(mesh.Triangles) != 12 {
		t.Fatalf("expected 12 triangles, got %d", len(mesh.Triangles))
	}
	for i, tri := range mesh.Triangles {
		centroid := tri.A.Add(tri.B).Add(tri.C).Mul(1.0 / 3)
		if tri.Normal().Dot(centroid) <= 0 {
			t.Fatalf("triangle %d faces inward", i)
		}
	}
}
