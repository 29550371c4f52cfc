package camera

import (
	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/go-gl/mathgl/mgl32"
)

// OrbitState is the live state of an orbit camera. It is owned by the camera and only
// mutated through input accumulation, Overrides and the per-frame update.
//
// Eye and View are derived from {Center, Theta, Phi, LogDistance, Up}; Projection is
// derived from {Fovy, Near, Far, FlipY} and the viewport aspect.
type OrbitState struct {
	Center mgl32.Vec3
	Theta  float32
	// Phi stays within [-pi/2, pi/2].
	Phi float32
	// LogDistance is the natural log of the orbit radius, kept within
	// [log(MinDistance), log(MaxDistance)].
	LogDistance float32
	Up          mgl32.Vec3
	Eye         mgl32.Vec3

	// Pending motion, decayed by damping every frame.
	DTheta    float32
	DPhi      float32
	DDistance float32

	Fovy  float32
	Near  float32
	Far   float32
	FlipY bool

	MouseEnabled bool

	View       mgl32.Mat4
	Projection mgl32.Mat4
}

// Distance returns the linear orbit radius.
func (s OrbitState) Distance() float32 {
	return common.Exp32(s.LogDistance)
}

// AtRest reports whether all pending motion has been damped to exactly zero.
func (s OrbitState) AtRest() bool {
	return s.DTheta == 0 && s.DPhi == 0 && s.DDistance == 0
}
