package component

import (
	"errors"
	"testing"
)

var allModes = []CameraMode{CameraModeFixed, CameraModeFree, CameraModeFollow}

func TestCameraModeLattice(t *testing.T) {
	for _, m := range allModes {
		t.Run(m.String(), func(t *testing.T) {
			if got := m.ShiftUp(); got != CameraModeFree {
				t.Fatalf("ShiftUp(%v) = %v, want free", m, got)
			}
			if got := m.ShiftDown(); got != CameraModeFollow {
				t.Fatalf("ShiftDown(%v) = %v, want follow", m, got)
			}
		})
	}
}

func TestCameraModeNeverReturnsToFixed(t *testing.T) {
	m := CameraModeFixed
	for i := 0; i < 8; i++ {
		if i%3 == 0 {
			m = m.ShiftDown()
		} else {
			m = m.ShiftUp()
		}
		if m == CameraModeFixed {
			t.Fatalf("reached fixed after %d shifts", i+1)
		}
	}
}

func TestParseCameraMode(t *testing.T) {
	for _, m := range allModes {
		got, err := ParseCameraMode(m.String())
		if err != nil || got != m {
			t.Fatalf("round trip %v: got %v err %v", m, got, err)
		}
	}
	if _, err := ParseCameraMode("orbit"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}

func TestCameraRigValidate(t *testing.T) {
	tests := []struct {
		name    string
		rig     CameraRig
		wantErr bool
	}{
		{"valid", CameraRig{YOffsetMax: 4, YOffsetMin: 1, Easing: 2}, false},
		{"equal_bounds", CameraRig{YOffsetMax: 2, YOffsetMin: 2, Easing: 0.5}, false},
		{"min_above_max", CameraRig{YOffsetMax: 1, YOffsetMin: 4, Easing: 2}, true},
		{"zero_easing", CameraRig{YOffsetMax: 4, YOffsetMin: 1}, true},
		{"negative_easing", CameraRig{YOffsetMax: 4, YOffsetMin: 1, Easing: -1}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.rig.Validate()
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidCameraRig) {
					t.Fatalf("expected ErrInvalidCameraRig, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
