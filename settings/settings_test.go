package settings

import (
	"testing"

	"github.com/milk9111/pixelrig/ecs/component"
	"github.com/milk9111/pixelrig/prefabs"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

func openTestStorage(t *testing.T) *gdata.Manager {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_DATA_HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)

	m, err := gdata.Open(gdata.Config{AppName: "pixelrig_test"})
	if err != nil {
		t.Fatalf("gdata.Open: %v", err)
	}
	return m
}

func TestManagerRoundTrip(t *testing.T) {
	storage := openTestStorage(t)

	m := NewManager(storage)
	if mode, ok := m.CameraMode(); ok {
		t.Fatalf("expected no stored mode on first run, got %v", mode)
	}

	m.SetCameraMode(component.CameraModeFollow)
	m.SetWindowSize(1708, 960)
	if err := m.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	reopened := NewManager(storage)
	if mode, ok := reopened.CameraMode(); !ok || mode != component.CameraModeFollow {
		t.Fatalf("expected follow after reload, got %v ok=%v", mode, ok)
	}
	if s := reopened.Settings(); s.WindowWidth != 1708 || s.WindowHeight != 960 {
		t.Fatalf("expected 1708x960 after reload, got %dx%d", s.WindowWidth, s.WindowHeight)
	}
}

func TestManagerWithoutStorage(t *testing.T) {
	m := NewManager(nil)
	m.SetCameraMode(component.CameraModeFree)
	if err := m.Save(); err != nil {
		t.Fatalf("Save without storage should be a no-op, got %v", err)
	}
	if mode, ok := m.CameraMode(); !ok || mode != component.CameraModeFree {
		t.Fatalf("expected in-memory mode free, got %v ok=%v", mode, ok)
	}
	if err := m.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if mode, ok := m.CameraMode(); ok {
		t.Fatalf("Load without storage resets to defaults, got %v", mode)
	}
}

func TestManagerRejectsBadData(t *testing.T) {
	storage := openTestStorage(t)
	if err := storage.SaveObjectProp(settingsObject, settingsProperty, []byte("camera_mode: [oops")); err != nil {
		t.Fatal(err)
	}

	m := NewManager(storage)
	if mode, ok := m.CameraMode(); ok {
		t.Fatalf("expected defaults after bad data, got %v", mode)
	}

	if err := storage.SaveObjectProp(settingsObject, settingsProperty, []byte("camera_mode: orbit\n")); err != nil {
		t.Fatal(err)
	}
	if err := m.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Settings().CameraMode != "" {
		t.Fatalf("unknown mode should be dropped, got %q", m.Settings().CameraMode)
	}
}

func TestInitialCameraModePrefersStoredMode(t *testing.T) {
	var spec prefabs.CameraRigSpec
	if err := yaml.Unmarshal([]byte("offset: {x: 0, y: 6.5, z: 10}\ny_offset_max: 4\ny_offset_min: 1.5\neasing: 2\nmode: free\n"), &spec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	rig, err := spec.Rig()
	if err != nil {
		t.Fatalf("Rig: %v", err)
	}

	tests := []struct {
		name   string
		setup  func(m *Manager)
		expect component.CameraMode
	}{
		{"nothing_stored_keeps_yaml", func(m *Manager) {}, component.CameraModeFree},
		{"stored_follow_wins", func(m *Manager) { m.SetCameraMode(component.CameraModeFollow) }, component.CameraModeFollow},
		{"stored_fixed_wins", func(m *Manager) { m.SetCameraMode(component.CameraModeFixed) }, component.CameraModeFixed},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewManager(nil)
			tc.setup(m)
			if got := m.InitialCameraMode(rig.Mode); got != tc.expect {
				t.Fatalf("InitialCameraMode(%v) = %v, want %v", rig.Mode, got, tc.expect)
			}
		})
	}
}

func TestInitialCameraModeWithEmptyStorage(t *testing.T) {
	m := NewManager(openTestStorage(t))
	if got := m.InitialCameraMode(component.CameraModeFree); got != component.CameraModeFree {
		t.Fatalf("expected configured free with nothing stored, got %v", got)
	}
}

func TestSetWindowSizeIgnoresInvalid(t *testing.T) {
	m := NewManager(nil)
	m.SetWindowSize(800, 600)
	m.SetWindowSize(0, 600)
	if s := m.Settings(); s.WindowWidth != 800 || s.WindowHeight != 600 {
		t.Fatalf("expected 800x600 kept, got %dx%d", s.WindowWidth, s.WindowHeight)
	}
}
