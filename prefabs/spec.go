package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/pixelrig/ecs/component"
	"gopkg.in/yaml.v3"
)

const (
	CameraFile  = "camera.yaml"
	PlayerFile  = "player.yaml"
	DisplayFile = "display.yaml"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type Vec3Spec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

func (v Vec3Spec) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

type CameraRigSpec struct {
	Name       string   `yaml:"name"`
	Offset     Vec3Spec `yaml:"offset"`
	YOffsetMax float64  `yaml:"y_offset_max"`
	YOffsetMin float64  `yaml:"y_offset_min"`
	Angle      float64  `yaml:"angle"`
	Easing     float64  `yaml:"easing"`
	Mode       string   `yaml:"mode"`
}

func LoadCameraRigSpec() (*CameraRigSpec, error) {
	spec, err := LoadSpec[CameraRigSpec](CameraFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// Rig converts the spec into a validated rig config.
func (s CameraRigSpec) Rig() (component.CameraRig, error) {
	mode, err := component.ParseCameraMode(s.Mode)
	if err != nil {
		return component.CameraRig{}, err
	}
	rig := component.CameraRig{
		Offset:     s.Offset.Vec3(),
		YOffsetMax: s.YOffsetMax,
		YOffsetMin: s.YOffsetMin,
		Angle:      s.Angle,
		Easing:     s.Easing,
		Mode:       mode,
	}
	if err := rig.Validate(); err != nil {
		return component.CameraRig{}, err
	}
	return rig, nil
}

type ColliderSpec struct {
	Radius     float64 `yaml:"radius"`
	Mass       float64 `yaml:"mass"`
	Friction   float64 `yaml:"friction"`
	Elasticity float64 `yaml:"elasticity"`
}

type PlayerSpec struct {
	Name      string       `yaml:"name"`
	Speed     float64      `yaml:"speed"`
	SpeedRamp float64      `yaml:"speed_ramp"`
	JumpSpeed float64      `yaml:"jump_speed"`
	MaxJumps  int          `yaml:"max_jumps"`
	Transform Vec3Spec     `yaml:"transform"`
	Size      Vec3Spec     `yaml:"size"`
	Color     *YAMLColor   `yaml:"color"`
	NoseColor *YAMLColor   `yaml:"nose_color"`
	Collider  ColliderSpec `yaml:"collider"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec](PlayerFile)
	if err != nil {
		return nil, err
	}
	if spec.Speed <= 0 {
		return nil, fmt.Errorf("prefabs: %s: speed must be positive, got %.3f", PlayerFile, spec.Speed)
	}
	return &spec, nil
}

// Player returns the movement tunables for the player component.
func (s PlayerSpec) Player() component.Player {
	return component.Player{
		BaseSpeed: s.Speed,
		SpeedRamp: s.SpeedRamp,
		JumpSpeed: s.JumpSpeed,
		MaxJumps:  s.MaxJumps,
	}
}

type ResolutionSpec struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type GroundSpec struct {
	Size          Vec3Spec   `yaml:"size"`
	Y             float64    `yaml:"y"`
	Color         *YAMLColor `yaml:"color"`
	WallThickness float64    `yaml:"wall_thickness"`
}

type LightingSpec struct {
	AmbientColor           *YAMLColor `yaml:"ambient_color"`
	AmbientBrightness      float64    `yaml:"ambient_brightness"`
	DirectionalColor       *YAMLColor `yaml:"directional_color"`
	DirectionalDirection   Vec3Spec   `yaml:"directional_direction"`
	DirectionalIlluminance float64    `yaml:"directional_illuminance"`
}

type DisplaySpec struct {
	Name         string         `yaml:"name"`
	Resolution   ResolutionSpec `yaml:"resolution"`
	SceneClear   *YAMLColor     `yaml:"scene_clear"`
	DisplayClear *YAMLColor     `yaml:"display_clear"`
	Ground       GroundSpec     `yaml:"ground"`
	Lighting     LightingSpec   `yaml:"lighting"`
}

func LoadDisplaySpec() (*DisplaySpec, error) {
	spec, err := LoadSpec[DisplaySpec](DisplayFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type YAMLColor struct {
	color.Color
}

// RGBAOr returns the color as RGBA, or fallback when c is unset.
func (c *YAMLColor) RGBAOr(fallback color.RGBA) color.RGBA {
	if c == nil || c.Color == nil {
		return fallback
	}
	return color.RGBAModel.Convert(c.Color).(color.RGBA)
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
