// Package framebuffer provides offscreen render targets and the frame
// accumulator used for motion blur.
package framebuffer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Attachments selects the storage of a render target.
type Attachments struct {
	Internal  int32  // color texture internal format
	PixelType uint32 // pixel type matching Internal
	Depth     bool   // attach a 24-bit depth renderbuffer
}

var (
	// SceneTarget is what the lit pass renders into.
	SceneTarget = Attachments{Internal: gl.RGBA8, PixelType: gl.UNSIGNED_BYTE, Depth: true}
	// AccumTarget holds the running weighted sum. Half floats keep small
	// weights from rounding to zero.
	AccumTarget = Attachments{Internal: gl.RGBA16F, PixelType: gl.HALF_FLOAT}
)

// Framebuffer is an offscreen render target with a sampled color texture.
type Framebuffer struct {
	fbo    uint32
	color  uint32
	depth  uint32
	width  int32
	height int32
	att    Attachments
}

// New creates a target of at least 1x1 pixels.
func New(width, height int32, att Attachments) (*Framebuffer, error) {
	fb := &Framebuffer{att: att}
	fb.width, fb.height = atLeastOne(width, height)

	gl.GenFramebuffers(1, &fb.fbo)
	gl.GenTextures(1, &fb.color)
	if att.Depth {
		gl.GenRenderbuffers(1, &fb.depth)
	}
	fb.allocate()

	gl.BindTexture(gl.TEXTURE_2D, fb.color)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.BindFramebuffer(gl.FRAMEBUFFER, fb.fbo)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, fb.color, 0)
	if att.Depth {
		gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, fb.depth)
	}
	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)

	if status != gl.FRAMEBUFFER_COMPLETE {
		fb.Destroy()
		return nil, fmt.Errorf("framebuffer incomplete: 0x%x", status)
	}
	return fb, nil
}

// allocate (re)specifies storage at the current size.
func (fb *Framebuffer) allocate() {
	gl.BindTexture(gl.TEXTURE_2D, fb.color)
	gl.TexImage2D(gl.TEXTURE_2D, 0, fb.att.Internal, fb.width, fb.height, 0, gl.RGBA, fb.att.PixelType, nil)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	if fb.depth != 0 {
		gl.BindRenderbuffer(gl.RENDERBUFFER, fb.depth)
		gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT24, fb.width, fb.height)
		gl.BindRenderbuffer(gl.RENDERBUFFER, 0)
	}
}

// Bind makes the target current and covers it with the viewport.
func (fb *Framebuffer) Bind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, fb.fbo)
	gl.Viewport(0, 0, fb.width, fb.height)
}

// ColorTexture returns the color attachment.
func (fb *Framebuffer) ColorTexture() uint32 {
	return fb.color
}

// Size returns the target size in pixels.
func (fb *Framebuffer) Size() (width, height int32) {
	return fb.width, fb.height
}

// Resize reallocates storage when the size changes. Contents are lost.
func (fb *Framebuffer) Resize(width, height int32) {
	width, height = atLeastOne(width, height)
	if width == fb.width && height == fb.height {
		return
	}
	fb.width, fb.height = width, height
	fb.allocate()
}

// Destroy releases the GL objects. It is safe to call twice.
func (fb *Framebuffer) Destroy() {
	if fb.fbo != 0 {
		gl.DeleteFramebuffers(1, &fb.fbo)
		fb.fbo = 0
	}
	if fb.color != 0 {
		gl.DeleteTextures(1, &fb.color)
		fb.color = 0
	}
	if fb.depth != 0 {
		gl.DeleteRenderbuffers(1, &fb.depth)
		fb.depth = 0
	}
}

// ReadPixels returns the color attachment as tightly packed RGBA rows,
// bottom row first.
func (fb *Framebuffer) ReadPixels() []byte {
	pixels := make([]byte, fb.width*fb.height*4)

	var prev int32
	gl.GetIntegerv(gl.READ_FRAMEBUFFER_BINDING, &prev)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, fb.fbo)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, fb.width, fb.height, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, uint32(prev))

	return pixels
}

func atLeastOne(width, height int32) (int32, int32) {
	return max(width, 1), max(height, 1)
}
