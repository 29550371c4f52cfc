package camera

import (
	"math"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/go-gl/mathgl/mgl32"
)

// restThreshold is the absolute speed below which damped motion snaps to zero.
// It is in the units of the velocity itself (radians or log-distance per frame).
const restThreshold = 0.1

// Fixed orbit basis. The state's Up vector supplies the third axis; see orbitEye.
var (
	orbitFront = mgl32.Vec3{0, 0, 1}
	orbitRight = mgl32.Vec3{1, 0, 0}
)

const (
	minPhi = -math.Pi / 2
	maxPhi = math.Pi / 2
)

// damp decays v by damping and snaps it to zero once it falls below restThreshold.
func damp(v, damping float32) float32 {
	vd := v * damping
	if float32(math.Abs(float64(vd))) < restThreshold {
		return 0
	}
	return vd
}

// clamp bounds x to [lo, hi]. NaN is pinned to lo.
func clamp(x, lo, hi float32) float32 {
	if !(x >= lo) {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// orbitEye maps spherical orbit coordinates to a world-space eye position.
//
// The offset is expressed on the fixed front (0,0,1) and right (1,0,0) axes plus the
// caller's up vector, so with up = (0,1,0) this is the usual spherical mapping. A
// non-vertical up skews the orbit instead of rotating it.
func orbitEye(center, up mgl32.Vec3, theta, phi, logDistance float32) mgl32.Vec3 {
	r := float64(common.Exp32(logDistance))
	st, ct := math.Sincos(float64(theta))
	sp, cp := math.Sincos(float64(phi))

	vf := float32(r * st * cp)
	vr := float32(r * ct * cp)
	vu := float32(r * sp)

	var eye mgl32.Vec3
	for i := range 3 {
		eye[i] = center[i] + vf*orbitFront[i] + vr*orbitRight[i] + vu*up[i]
	}
	return eye
}

// integrate advances the state by one frame: overrides, motion, clamping, damping,
// then eye and view reconstruction. Caller must hold the mutex.
func (c *orbitCamera) integrate(o *Overrides) {
	s := &c.state
	o.apply(s, c.minLogDistance)

	s.Theta += s.DTheta
	s.Phi = clamp(s.Phi+s.DPhi, minPhi, maxPhi)
	s.LogDistance = clamp(s.LogDistance+s.DDistance, c.minLogDistance, c.maxLogDistance)

	s.DTheta = damp(s.DTheta, c.cfg.Damping)
	s.DPhi = damp(s.DPhi, c.cfg.Damping)
	s.DDistance = damp(s.DDistance, c.cfg.Damping)

	c.updateView()
}

// updateView recomputes Eye and View from the current angles, distance, center and up.
// Caller must hold the mutex.
func (c *orbitCamera) updateView() {
	s := &c.state
	s.Eye = orbitEye(s.Center, s.Up, s.Theta, s.Phi, s.LogDistance)
	s.View = common.LookAt(s.Eye, s.Center, s.Up)
}
