package camera

import (
	"fmt"
	"os"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// fileConfig is the YAML shape of Config. Angles are written in degrees.
type fileConfig struct {
	Center       [3]float32 `yaml:"center"`
	ThetaDegrees float32    `yaml:"theta_degrees"`
	PhiDegrees   float32    `yaml:"phi_degrees"`
	Distance     float32    `yaml:"distance"`
	Up           [3]float32 `yaml:"up"`
	FovyDegrees  float32    `yaml:"fovy_degrees"`
	Near         float32    `yaml:"near"`
	Far          float32    `yaml:"far"`
	FlipY        bool       `yaml:"flip_y"`
	DepthRange   string     `yaml:"depth_range"`
	Damping      float32    `yaml:"damping"`
	MinDistance  float32    `yaml:"min_distance"`
	MaxDistance  float32    `yaml:"max_distance"`
	MouseEnabled bool       `yaml:"mouse_enabled"`
	Viewport     struct {
		Width  int `yaml:"width"`
		Height int `yaml:"height"`
	} `yaml:"viewport"`
}

func toFileConfig(c Config) fileConfig {
	var fc fileConfig
	fc.Center = c.Center
	fc.ThetaDegrees = mgl32.RadToDeg(c.Theta)
	fc.PhiDegrees = mgl32.RadToDeg(c.Phi)
	fc.Distance = c.Distance
	fc.Up = c.Up
	fc.FovyDegrees = mgl32.RadToDeg(c.Fovy)
	fc.Near = c.Near
	fc.Far = c.Far
	fc.FlipY = c.FlipY
	fc.DepthRange = c.DepthRange.String()
	fc.Damping = c.Damping
	fc.MinDistance = c.MinDistance
	fc.MaxDistance = c.MaxDistance
	fc.MouseEnabled = c.MouseEnabled
	fc.Viewport.Width = c.ViewportWidth
	fc.Viewport.Height = c.ViewportHeight
	return fc
}

func (fc fileConfig) toConfig() (Config, error) {
	depth, ok := common.ParseDepthRange(fc.DepthRange)
	if !ok {
		return Config{}, fmt.Errorf("unknown depth_range %q", fc.DepthRange)
	}
	return Config{
		Center:         fc.Center,
		Theta:          mgl32.DegToRad(fc.ThetaDegrees),
		Phi:            mgl32.DegToRad(fc.PhiDegrees),
		Distance:       fc.Distance,
		Up:             fc.Up,
		Fovy:           mgl32.DegToRad(fc.FovyDegrees),
		Near:           fc.Near,
		Far:            fc.Far,
		FlipY:          fc.FlipY,
		DepthRange:     depth,
		Damping:        fc.Damping,
		MinDistance:    fc.MinDistance,
		MaxDistance:    fc.MaxDistance,
		MouseEnabled:   fc.MouseEnabled,
		ViewportWidth:  fc.Viewport.Width,
		ViewportHeight: fc.Viewport.Height,
	}, nil
}

// ParseConfig decodes a YAML camera configuration on top of DefaultConfig,
// so keys missing from data keep their default values. The result is validated.
//
// Parameters:
//   - data: YAML document
//
// Returns:
//   - Config: the decoded configuration
//   - error: decode or validation failure
func ParseConfig(data []byte) (Config, error) {
	fc := toFileConfig(DefaultConfig())
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return Config{}, fmt.Errorf("failed to decode camera config: %w", err)
	}
	cfg, err := fc.toConfig()
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid camera config: %w", err)
	}
	return cfg, nil
}

// LoadConfig reads and decodes a YAML camera configuration file.
//
// Parameters:
//   - filename: path to the YAML file
//
// Returns:
//   - Config: the decoded configuration
//   - error: read, decode or validation failure
func LoadConfig(filename string) (Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read camera config %s: %w", filename, err)
	}
	return ParseConfig(data)
}

// MustLoadConfig loads the configuration and panics on error
func MustLoadConfig(filename string) Config {
	cfg, err := LoadConfig(filename)
	if err != nil {
		panic("Failed to load camera config: " + err.Error())
	}
	return cfg
}

// MarshalConfig encodes a configuration in the same YAML shape LoadConfig reads.
//
// Parameters:
//   - cfg: the configuration to encode
//
// Returns:
//   - []byte: YAML document
//   - error: encode failure
func MarshalConfig(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(toFileConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to encode camera config: %w", err)
	}
	return data, nil
}
