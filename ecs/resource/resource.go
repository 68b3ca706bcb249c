// Package resource holds the per-frame context objects shared between
// systems. They are owned by the game and handed to systems explicitly at
// construction; nothing here is a package-level global.
package resource

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/pixelrig/ecs"
)

// Time carries the current frame's delta in seconds.
type Time struct {
	Delta float64
}

// Window is the primary window's physical size. A nil *Window means no window
// exists yet.
type Window struct {
	Width  int
	Height int
}

// CameraObserved is the camera placement published by the rig each frame
// before easing, readable by any later system.
type CameraObserved struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
	Owner    ecs.Entity
}

// Lighting drives the scene renderer's flat shading.
type Lighting struct {
	AmbientColor      color.RGBA
	AmbientBrightness float64
	DirectionalColor  color.RGBA
	DirectionalDir    mgl64.Vec3
	DirectionalLux    float64
}
