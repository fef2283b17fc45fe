// Package shadow renders per-light depth maps for the lit pass.
package shadow

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// ErrIncomplete is returned when a depth framebuffer cannot be completed.
var ErrIncomplete = errors.New("shadow framebuffer incomplete")

// Map is a depth-only framebuffer sized to the viewport. Its texture is
// set up for sampler2DShadow comparison.
type Map struct {
	FBO          uint32
	DepthTexture uint32
	Width        int32
	Height       int32
	prevViewport [4]int32
}

// NewMap creates a depth map of the given size.
func NewMap(width, height int32) (*Map, error) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	sm := &Map{Width: width, Height: height}

	gl.GenFramebuffers(1, &sm.FBO)
	gl.BindFramebuffer(gl.FRAMEBUFFER, sm.FBO)

	gl.GenTextures(1, &sm.DepthTexture)
	gl.BindTexture(gl.TEXTURE_2D, sm.DepthTexture)
	sm.allocate()

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	// Comparison mode for sampler2DShadow
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_COMPARE_MODE, gl.COMPARE_REF_TO_TEXTURE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_COMPARE_FUNC, gl.LEQUAL)

	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.TEXTURE_2D, sm.DepthTexture, 0)

	// No color buffer for the depth pass
	gl.DrawBuffer(gl.NONE)
	gl.ReadBuffer(gl.NONE)

	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	if status != gl.FRAMEBUFFER_COMPLETE {
		sm.Destroy()
		return nil, fmt.Errorf("%w: status 0x%x at %dx%d", ErrIncomplete, status, width, height)
	}
	return sm, nil
}

func (sm *Map) allocate() {
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.DEPTH_COMPONENT32, sm.Width, sm.Height, 0,
		gl.DEPTH_COMPONENT, gl.FLOAT, nil)
}

// Bind makes the map the render target and clears it to the far plane.
func (sm *Map) Bind() {
	gl.GetIntegerv(gl.VIEWPORT, &sm.prevViewport[0])

	gl.BindFramebuffer(gl.FRAMEBUFFER, sm.FBO)
	gl.Viewport(0, 0, sm.Width, sm.Height)
	gl.ClearDepth(1.0)
	gl.Clear(gl.DEPTH_BUFFER_BIT)

	// Front-face culling to reduce shadow acne
	gl.CullFace(gl.FRONT)
}

// Unbind restores the default framebuffer, viewport and culling.
func (sm *Map) Unbind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(sm.prevViewport[0], sm.prevViewport[1], sm.prevViewport[2], sm.prevViewport[3])
	gl.CullFace(gl.BACK)
}

// Resize reallocates the depth storage and re-checks completeness.
func (sm *Map) Resize(width, height int32) error {
	if width == sm.Width && height == sm.Height {
		return nil
	}
	if width < 1 || height < 1 {
		return fmt.Errorf("%w: invalid size %dx%d", ErrIncomplete, width, height)
	}
	sm.Width, sm.Height = width, height

	gl.BindTexture(gl.TEXTURE_2D, sm.DepthTexture)
	sm.allocate()
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.BindFramebuffer(gl.FRAMEBUFFER, sm.FBO)
	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	if status != gl.FRAMEBUFFER_COMPLETE {
		return fmt.Errorf("%w: status 0x%x at %dx%d", ErrIncomplete, status, width, height)
	}
	return nil
}

// Texture returns the depth texture for sampling in the lit pass.
func (sm *Map) Texture() uint32 {
	return sm.DepthTexture
}

// Destroy releases all GPU resources associated with this map.
func (sm *Map) Destroy() {
	if sm.FBO != 0 {
		gl.DeleteFramebuffers(1, &sm.FBO)
		sm.FBO = 0
	}
	if sm.DepthTexture != 0 {
		gl.DeleteTextures(1, &sm.DepthTexture)
		sm.DepthTexture = 0
	}
}

// NewMapTarget adapts NewMap to a TargetFactory.
func NewMapTarget(width, height int32) (DepthTarget, error) {
	m, err := NewMap(width, height)
	if err != nil {
		return nil, err
	}
	return m, nil
}
