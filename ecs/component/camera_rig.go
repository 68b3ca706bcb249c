package component

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

var ErrInvalidCameraRig = errors.New("camera rig: invalid config")

type CameraMode int

const (
	CameraModeFixed CameraMode = iota
	CameraModeFree
	// CameraModeFollow is the frozen mode: placement leaves the camera
	// transform and the observed camera state untouched. Desired position
	// and offset are still recomputed so unfreezing picks up current values.
	CameraModeFollow
)

// ShiftUp saturates on Free from every mode.
func (m CameraMode) ShiftUp() CameraMode {
	return CameraModeFree
}

// ShiftDown saturates on Follow from every mode. Nothing transitions back to
// Fixed; it is only ever the initial mode.
func (m CameraMode) ShiftDown() CameraMode {
	return CameraModeFollow
}

func (m CameraMode) Frozen() bool {
	return m == CameraModeFollow
}

func (m CameraMode) String() string {
	switch m {
	case CameraModeFixed:
		return "fixed"
	case CameraModeFree:
		return "free"
	case CameraModeFollow:
		return "follow"
	}
	return fmt.Sprintf("CameraMode(%d)", int(m))
}

func ParseCameraMode(s string) (CameraMode, error) {
	switch s {
	case "", "fixed":
		return CameraModeFixed, nil
	case "free":
		return CameraModeFree, nil
	case "follow":
		return CameraModeFollow, nil
	}
	return CameraModeFixed, fmt.Errorf("camera rig: unknown mode %q", s)
}

// CameraRig drives a scene camera around the player. Offset.Y is the height
// above the player and Offset.Z the distance along the rig's forward axis;
// Offset.X is unused. DesiredPosition is derived every tick.
type CameraRig struct {
	Offset          mgl64.Vec3
	YOffsetMax      float64
	YOffsetMin      float64
	Angle           float64
	Easing          float64
	Mode            CameraMode
	DesiredPosition mgl64.Vec3
}

var CameraRigComponent = NewComponent[CameraRig]()

func (r CameraRig) Validate() error {
	if r.YOffsetMin > r.YOffsetMax {
		return fmt.Errorf("%w: y_offset_min %.3f > y_offset_max %.3f", ErrInvalidCameraRig, r.YOffsetMin, r.YOffsetMax)
	}
	if r.Easing <= 0 {
		return fmt.Errorf("%w: easing must be positive, got %.3f", ErrInvalidCameraRig, r.Easing)
	}
	return nil
}
