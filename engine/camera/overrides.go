package camera

import (
	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Overrides is a typed partial update applied at the start of a frame, before integration.
// Nil fields are left untouched. Derived fields (Eye, View, Projection) cannot be overridden.
// Out-of-range values are clamped by the integration step that follows, never rejected.
type Overrides struct {
	Center *mgl32.Vec3
	Theta  *float32
	Phi    *float32
	// Distance is a linear radius; it is stored as its natural log. Non-positive
	// values pin the camera to the minimum distance.
	Distance *float32
	Up       *mgl32.Vec3

	DTheta    *float32
	DPhi      *float32
	DDistance *float32

	Fovy         *float32
	Near         *float32
	Far          *float32
	FlipY        *bool
	MouseEnabled *bool
}

// IsZero reports whether no field is set.
func (o *Overrides) IsZero() bool {
	return o == nil || *o == Overrides{}
}

// apply copy-assigns every provided field onto s.
// Caller must hold the camera mutex.
func (o *Overrides) apply(s *OrbitState, minLogDistance float32) {
	if o == nil {
		return
	}
	if o.Center != nil {
		s.Center = *o.Center
	}
	if o.Theta != nil {
		s.Theta = *o.Theta
	}
	if o.Phi != nil {
		s.Phi = *o.Phi
	}
	if o.Distance != nil {
		if *o.Distance > 0 {
			s.LogDistance = common.Log32(*o.Distance)
		} else {
			s.LogDistance = minLogDistance
		}
	}
	if o.Up != nil {
		s.Up = *o.Up
	}
	if o.DTheta != nil {
		s.DTheta = *o.DTheta
	}
	if o.DPhi != nil {
		s.DPhi = *o.DPhi
	}
	if o.DDistance != nil {
		s.DDistance = *o.DDistance
	}
	if o.Fovy != nil {
		s.Fovy = *o.Fovy
	}
	if o.Near != nil {
		s.Near = *o.Near
	}
	if o.Far != nil {
		s.Far = *o.Far
	}
	if o.FlipY != nil {
		s.FlipY = *o.FlipY
	}
	if o.MouseEnabled != nil {
		s.MouseEnabled = *o.MouseEnabled
	}
}
