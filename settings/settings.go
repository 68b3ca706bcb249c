// Package settings persists player preferences between runs.
package settings

import (
	"fmt"
	"log"

	"github.com/milk9111/pixelrig/ecs/component"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// Settings are global, not per save slot. A zero window size means "use the
// command-line default" and an empty camera mode means "use camera.yaml".
type Settings struct {
	CameraMode   string `yaml:"camera_mode"`
	WindowWidth  int    `yaml:"window_width"`
	WindowHeight int    `yaml:"window_height"`
}

func Default() *Settings {
	return &Settings{}
}

// Manager loads and saves Settings through gdata. A nil gdata manager keeps
// settings in memory only.
type Manager struct {
	gdataManager *gdata.Manager
	settings     *Settings
}

// NewManager never fails: a broken settings file is logged and replaced by
// the defaults.
func NewManager(gdataManager *gdata.Manager) *Manager {
	m := &Manager{
		gdataManager: gdataManager,
		settings:     Default(),
	}
	if err := m.Load(); err != nil {
		log.Printf("Settings: load: %v (using defaults)", err)
	}
	return m
}

func (m *Manager) Load() error {
	if m.gdataManager == nil || !m.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		m.settings = Default()
		return nil
	}

	data, err := m.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		m.settings = Default()
		return fmt.Errorf("settings: load: %w", err)
	}

	var loaded Settings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		m.settings = Default()
		return fmt.Errorf("settings: unmarshal: %w", err)
	}
	if _, err := component.ParseCameraMode(loaded.CameraMode); err != nil {
		loaded.CameraMode = ""
	}

	m.settings = &loaded
	log.Printf("Settings: loaded (camera mode %s)", loaded.CameraMode)
	return nil
}

func (m *Manager) Save() error {
	if m.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(m.settings)
	if err != nil {
		return fmt.Errorf("settings: marshal: %w", err)
	}
	if err := m.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("settings: save: %w", err)
	}

	log.Printf("Settings: saved")
	return nil
}

func (m *Manager) Settings() *Settings {
	return m.settings
}

// CameraMode returns the stored mode. ok is false when none has been stored.
func (m *Manager) CameraMode() (mode component.CameraMode, ok bool) {
	if m.settings.CameraMode == "" {
		return component.CameraModeFixed, false
	}
	mode, err := component.ParseCameraMode(m.settings.CameraMode)
	if err != nil {
		return component.CameraModeFixed, false
	}
	return mode, true
}

// InitialCameraMode picks the mode to start in: the stored one if any,
// otherwise configured.
func (m *Manager) InitialCameraMode(configured component.CameraMode) component.CameraMode {
	if mode, ok := m.CameraMode(); ok {
		return mode
	}
	return configured
}

func (m *Manager) SetCameraMode(mode component.CameraMode) {
	m.settings.CameraMode = mode.String()
}

func (m *Manager) SetWindowSize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	m.settings.WindowWidth = width
	m.settings.WindowHeight = height
}
