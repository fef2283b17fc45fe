// Package compositor decides when a rendered frame reaches the screen,
// blending sub-frames together while motion blur is on.
package compositor

import (
	"go.uber.org/zap"

	"github.com/Faultbox/shadowball/internal/logger"
)

// Accumulator blends rendered frames.
type Accumulator interface {
	// Load replaces the accumulation with the frame scaled by weight.
	Load(weight float32)
	// Accumulate adds the frame scaled by weight.
	Accumulate(weight float32)
	// Resolve writes the accumulation to the presentable image.
	Resolve()
	// Passthrough writes the frame to the presentable image unchanged.
	Passthrough()
}

// Presenter shows the presentable image.
type Presenter interface {
	Present()
}

// Compositor is the motion-blur state machine. curFrame is always in
// [0, framesPerFrame).
type Compositor struct {
	acc            Accumulator
	presenter      Presenter
	framesPerFrame int
	curFrame       int
	motionBlur     bool
}

// New creates a compositor blending framesPerFrame sub-frames per present.
func New(acc Accumulator, presenter Presenter, framesPerFrame int) *Compositor {
	if framesPerFrame < 1 {
		framesPerFrame = 1
	}
	return &Compositor{
		acc:            acc,
		presenter:      presenter,
		framesPerFrame: framesPerFrame,
	}
}

// Complete hands over a finished frame. With motion blur off it is shown
// at once; otherwise it is blended and only every framesPerFrame-th call
// presents. It reports whether the frame was presented.
func (c *Compositor) Complete() bool {
	if !c.motionBlur {
		c.acc.Passthrough()
		c.presenter.Present()
		return true
	}

	weight := c.FrameFraction()
	if c.curFrame == 0 {
		c.acc.Load(weight)
	} else {
		c.acc.Accumulate(weight)
	}

	c.curFrame++
	if c.curFrame < c.framesPerFrame {
		return false
	}

	c.curFrame = 0
	c.acc.Resolve()
	c.presenter.Present()
	return true
}

// SetMotionBlur switches motion blur and discards any partial accumulation.
func (c *Compositor) SetMotionBlur(on bool) {
	c.motionBlur = on
	c.curFrame = 0
	logger.Info("motion blur", zap.Bool("motion_blur", on), zap.Int("frames_per_frame", c.framesPerFrame))
}

// ToggleMotionBlur flips motion blur and returns the new state.
func (c *Compositor) ToggleMotionBlur() bool {
	c.SetMotionBlur(!c.motionBlur)
	return c.motionBlur
}

// MotionBlur reports whether motion blur is on.
func (c *Compositor) MotionBlur() bool {
	return c.motionBlur
}

// CurrentFrame returns the index of the next sub-frame.
func (c *Compositor) CurrentFrame() int {
	return c.curFrame
}

// FramesPerFrame returns the number of sub-frames per present.
func (c *Compositor) FramesPerFrame() int {
	return c.framesPerFrame
}

// FrameFraction is the share of a presented frame one simulation step
// covers: 1 with motion blur off, 1/framesPerFrame with it on.
func (c *Compositor) FrameFraction() float32 {
	if !c.motionBlur {
		return 1
	}
	return 1 / float32(c.framesPerFrame)
}
