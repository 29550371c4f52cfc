package camera

import (
	"errors"
	"fmt"
	"math"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Default construction values for an orbit camera.
const (
	DefaultDistance       float32 = 10
	DefaultFovy           float32 = math.Pi / 4
	DefaultNear           float32 = 0.01
	DefaultFar            float32 = 1000
	DefaultDamping        float32 = 0.9
	DefaultMinDistance    float32 = 0.1
	DefaultMaxDistance    float32 = 1000
	DefaultViewportWidth          = 1280
	DefaultViewportHeight         = 720
)

// Config is the construction-time description of an orbit camera.
// It is copied into the camera at construction and never mutated afterwards;
// live values are held in OrbitState.
type Config struct {
	// Center is the initial orbit focal point in world space.
	Center mgl32.Vec3
	// Theta is the initial azimuth in radians.
	Theta float32
	// Phi is the initial polar angle in radians, clamped to [-pi/2, pi/2].
	Phi float32
	// Distance is the initial orbit radius, clamped to [MinDistance, MaxDistance].
	Distance float32
	// Up is the world up reference. Callers are expected to pass a unit vector.
	Up mgl32.Vec3

	// Fovy is the base vertical field of view in radians before portrait adjustment.
	Fovy float32
	Near float32
	Far  float32
	// FlipY negates the Y scale term of the projection for render targets with an inverted vertical axis.
	FlipY bool
	// DepthRange selects the clip-space depth convention of the projection.
	DepthRange common.DepthRange

	// Damping is the per-frame velocity multiplier, expected in [0, 1).
	Damping     float32
	MinDistance float32
	MaxDistance float32

	// MouseEnabled is the initial state of the input gate.
	MouseEnabled bool

	// ViewportWidth and ViewportHeight are the initial viewport extents in pixels.
	ViewportWidth  int
	ViewportHeight int
}

// DefaultConfig returns the configuration every orbit camera starts from before options are applied.
//
// Returns:
//   - Config: the default configuration
func DefaultConfig() Config {
	return Config{
		Center:         mgl32.Vec3{0, 0, 0},
		Theta:          0,
		Phi:            0,
		Distance:       DefaultDistance,
		Up:             mgl32.Vec3{0, 1, 0},
		Fovy:           DefaultFovy,
		Near:           DefaultNear,
		Far:            DefaultFar,
		FlipY:          false,
		DepthRange:     common.DepthRangeNegOneToOne,
		Damping:        DefaultDamping,
		MinDistance:    DefaultMinDistance,
		MaxDistance:    DefaultMaxDistance,
		MouseEnabled:   true,
		ViewportWidth:  DefaultViewportWidth,
		ViewportHeight: DefaultViewportHeight,
	}
}

// Validate reports every field that would make the camera misbehave.
// The camera itself never rejects a config; Validate is used at I/O boundaries
// such as LoadConfig.
//
// Returns:
//   - error: a joined error listing each invalid field, or nil
func (c Config) Validate() error {
	var errs []error
	if c.Distance <= 0 {
		errs = append(errs, fmt.Errorf("distance must be > 0, got %v", c.Distance))
	}
	if c.MinDistance <= 0 {
		errs = append(errs, fmt.Errorf("min_distance must be > 0, got %v", c.MinDistance))
	}
	if c.MaxDistance < c.MinDistance {
		errs = append(errs, fmt.Errorf("max_distance (%v) must be >= min_distance (%v)", c.MaxDistance, c.MinDistance))
	}
	if c.Damping < 0 || c.Damping >= 1 {
		errs = append(errs, fmt.Errorf("damping must be in [0, 1), got %v", c.Damping))
	}
	if c.Fovy <= 0 || c.Fovy >= math.Pi {
		errs = append(errs, fmt.Errorf("fovy must be in (0, pi), got %v", c.Fovy))
	}
	if c.Near <= 0 {
		errs = append(errs, fmt.Errorf("near must be > 0, got %v", c.Near))
	}
	if c.Far <= c.Near {
		errs = append(errs, fmt.Errorf("far (%v) must be > near (%v)", c.Far, c.Near))
	}
	if c.ViewportWidth <= 0 || c.ViewportHeight <= 0 {
		errs = append(errs, fmt.Errorf("viewport must be non-zero, got %dx%d", c.ViewportWidth, c.ViewportHeight))
	}
	if c.Up.Len() == 0 {
		errs = append(errs, errors.New("up must be a non-zero vector"))
	}
	return errors.Join(errs...)
}
