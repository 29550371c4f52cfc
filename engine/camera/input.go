package camera

import (
	"github.com/Carmen-Shannon/oxy-orbit/common"
)

// minRotationScale floors the zoom-dependent drag scale so close orbits stay responsive.
const minRotationScale = 0.5

func (c *orbitCamera) PointerMove(buttons uint32, x, y float32) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// The first sample only seeds the previous position, and a disabled gate still
	// tracks it so re-enabling does not jump.
	if c.hasPrev && c.state.MouseEnabled && buttons&common.MouseButtonPrimary != 0 {
		dx := (x - c.prevX) / float32(c.viewportWidth)
		dy := (y - c.prevY) / float32(c.viewportHeight)
		w := max(c.state.LogDistance, minRotationScale)

		c.state.DTheta += w * dx
		c.state.DPhi += w * dy
	}
	c.prevX, c.prevY = x, y
	c.hasPrev = true
}

func (c *orbitCamera) Wheel(_, dy float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.state.MouseEnabled {
		return
	}
	c.state.DDistance += dy / float32(c.viewportHeight)
}

func (c *orbitCamera) MouseEnabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.MouseEnabled
}

func (c *orbitCamera) SetMouseEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.MouseEnabled = enabled
}
