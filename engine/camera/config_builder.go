package camera

import (
	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/go-gl/mathgl/mgl32"
)

// ConfigOption is a functional option for configuring an orbit camera at construction.
type ConfigOption func(*Config)

// WithConfig replaces the whole configuration. Options applied after it still take effect.
//
// Parameters:
//   - cfg: the configuration to start from
//
// Returns:
//   - ConfigOption: functional option to replace the configuration
func WithConfig(cfg Config) ConfigOption {
	return func(c *Config) {
		*c = cfg
	}
}

// WithCenter sets the initial orbit focal point.
//
// Parameters:
//   - x, y, z: world-space coordinates
//
// Returns:
//   - ConfigOption: functional option to set the center
func WithCenter(x, y, z float32) ConfigOption {
	return func(c *Config) {
		c.Center = mgl32.Vec3{x, y, z}
	}
}

// WithTheta sets the initial azimuth.
//
// Parameters:
//   - theta: azimuth in radians
//
// Returns:
//   - ConfigOption: functional option to set theta
func WithTheta(theta float32) ConfigOption {
	return func(c *Config) {
		c.Theta = theta
	}
}

// WithPhi sets the initial polar angle. Values outside [-pi/2, pi/2] are clamped at construction.
//
// Parameters:
//   - phi: polar angle in radians
//
// Returns:
//   - ConfigOption: functional option to set phi
func WithPhi(phi float32) ConfigOption {
	return func(c *Config) {
		c.Phi = phi
	}
}

// WithDistance sets the initial orbit radius.
//
// Parameters:
//   - distance: distance from the center
//
// Returns:
//   - ConfigOption: functional option to set the distance
func WithDistance(distance float32) ConfigOption {
	return func(c *Config) {
		c.Distance = distance
	}
}

// WithUp sets the world up reference.
//
// Parameters:
//   - x, y, z: up vector components (expected unit length)
//
// Returns:
//   - ConfigOption: functional option to set the up vector
func WithUp(x, y, z float32) ConfigOption {
	return func(c *Config) {
		c.Up = mgl32.Vec3{x, y, z}
	}
}

// WithFovy sets the base vertical field of view.
//
// Parameters:
//   - fovy: field of view in radians
//
// Returns:
//   - ConfigOption: functional option to set the field of view
func WithFovy(fovy float32) ConfigOption {
	return func(c *Config) {
		c.Fovy = fovy
	}
}

// WithNear sets the near clipping plane distance.
//
// Parameters:
//   - near: near plane distance
//
// Returns:
//   - ConfigOption: functional option to set the near plane
func WithNear(near float32) ConfigOption {
	return func(c *Config) {
		c.Near = near
	}
}

// WithFar sets the far clipping plane distance.
//
// Parameters:
//   - far: far plane distance
//
// Returns:
//   - ConfigOption: functional option to set the far plane
func WithFar(far float32) ConfigOption {
	return func(c *Config) {
		c.Far = far
	}
}

// WithFlipY enables or disables negating the projection's Y scale.
//
// Parameters:
//   - flip: true for render targets with an inverted vertical axis
//
// Returns:
//   - ConfigOption: functional option to set flipY
func WithFlipY(flip bool) ConfigOption {
	return func(c *Config) {
		c.FlipY = flip
	}
}

// WithDepthRange selects the projection's clip-space depth convention.
//
// Parameters:
//   - r: common.DepthRangeNegOneToOne (default) or common.DepthRangeZeroToOne
//
// Returns:
//   - ConfigOption: functional option to set the depth range
func WithDepthRange(r common.DepthRange) ConfigOption {
	return func(c *Config) {
		c.DepthRange = r
	}
}

// WithDamping sets the per-frame velocity multiplier.
//
// Parameters:
//   - damping: multiplier in [0, 1); lower values settle faster
//
// Returns:
//   - ConfigOption: functional option to set damping
func WithDamping(damping float32) ConfigOption {
	return func(c *Config) {
		c.Damping = damping
	}
}

// WithDistanceBounds sets the minimum and maximum orbit radius.
//
// Parameters:
//   - min: minimum zoom distance (must be > 0)
//   - max: maximum zoom distance
//
// Returns:
//   - ConfigOption: functional option to set distance bounds
func WithDistanceBounds(min, max float32) ConfigOption {
	return func(c *Config) {
		c.MinDistance = min
		c.MaxDistance = max
	}
}

// WithMouseEnabled sets the initial state of the input gate.
//
// Parameters:
//   - enabled: false to start with input suspended
//
// Returns:
//   - ConfigOption: functional option to set the input gate
func WithMouseEnabled(enabled bool) ConfigOption {
	return func(c *Config) {
		c.MouseEnabled = enabled
	}
}

// WithViewport sets the initial viewport extents used for portrait adjustment and input scaling.
//
// Parameters:
//   - width, height: viewport size in pixels (must be non-zero)
//
// Returns:
//   - ConfigOption: functional option to set the viewport
func WithViewport(width, height int) ConfigOption {
	return func(c *Config) {
		c.ViewportWidth = width
		c.ViewportHeight = height
	}
}
