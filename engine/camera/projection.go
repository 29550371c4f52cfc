package camera

import (
	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/go-gl/mathgl/mgl32"
)

// portraitFovy widens the vertical field of view for viewports taller than they are
// wide so the horizontal extent stays visually stable. Always derived from base.
func portraitFovy(base float32, width, height int) float32 {
	ratio := float32(height) / float32(width)
	if ratio > 1 {
		return base * ratio
	}
	return base
}

// buildProjection builds the perspective matrix for one frame. With flipY the Y scale
// term (element 5) is negated after the depth-range conversion.
func buildProjection(fovy, aspect, near, far float32, flipY bool, depth common.DepthRange) mgl32.Mat4 {
	proj := common.ApplyDepthRange(mgl32.Perspective(fovy, aspect, near, far), depth)
	if flipY {
		proj[5] *= -1
	}
	return proj
}

// updateProjection rebuilds the projection from the current viewport.
// Caller must hold the mutex.
func (c *orbitCamera) updateProjection() {
	s := &c.state
	aspect := float32(c.viewportWidth) / float32(c.viewportHeight)
	s.Projection = buildProjection(s.Fovy, aspect, s.Near, s.Far, s.FlipY, c.cfg.DepthRange)
}

func (c *orbitCamera) Resize(width, height int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.viewportWidth = width
	c.viewportHeight = height
	c.state.Fovy = portraitFovy(c.cfg.Fovy, width, height)
	c.updateProjection()
}

func (c *orbitCamera) Viewport() (width, height int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewportWidth, c.viewportHeight
}
