package compositor

import (
	"fmt"
	"strings"
	"testing"

	"github.com/Faultbox/shadowball/internal/logger"
)

type fakeAcc struct {
	calls []string
}

func (f *fakeAcc) Load(w float32)       { f.calls = append(f.calls, fmt.Sprintf("load %.3f", w)) }
func (f *fakeAcc) Accumulate(w float32) { f.calls = append(f.calls, fmt.Sprintf("accum %.3f", w)) }
func (f *fakeAcc) Resolve()             { f.calls = append(f.calls, "resolve") }
func (f *fakeAcc) Passthrough()         { f.calls = append(f.calls, "pass") }

type fakePresenter struct {
	presents int
}

func (f *fakePresenter) Present() { f.presents++ }

func newCompositor(n int) (*Compositor, *fakeAcc, *fakePresenter) {
	logger.InitNop()
	acc := &fakeAcc{}
	p := &fakePresenter{}
	return New(acc, p, n), acc, p
}

func TestPresentImmediatelyWithoutBlur(t *testing.T) {
	c, acc, p := newCompositor(3)

	for i := 0; i < 5; i++ {
		if !c.Complete() {
			t.Fatalf("frame %d not presented", i)
		}
	}
	if p.presents != 5 {
		t.Errorf("presents = %d, want 5", p.presents)
	}
	if got := strings.Join(acc.calls, ","); got != "pass,pass,pass,pass,pass" {
		t.Errorf("calls = %s", got)
	}
	if c.FrameFraction() != 1 {
		t.Errorf("frame fraction = %v, want 1", c.FrameFraction())
	}
}

func TestBlurCadence(t *testing.T) {
	c, acc, p := newCompositor(3)
	c.SetMotionBlur(true)

	var seq []int
	for i := 0; i < 9; i++ {
		seq = append(seq, c.CurrentFrame())
		c.Complete()
	}

	if got := fmt.Sprint(seq); got != "[0 1 2 0 1 2 0 1 2]" {
		t.Errorf("curFrame sequence = %s", got)
	}
	if p.presents != 3 {
		t.Errorf("presents = %d, want 3", p.presents)
	}

	want := "load 0.333,accum 0.333,accum 0.333,resolve"
	if got := strings.Join(acc.calls[:4], ","); got != want {
		t.Errorf("first group = %s, want %s", got, want)
	}
	if c.CurrentFrame() != 0 {
		t.Errorf("curFrame = %d after full groups", c.CurrentFrame())
	}
}

func TestBlurPresentsOnlyOnLastSubFrame(t *testing.T) {
	c, _, _ := newCompositor(4)
	c.SetMotionBlur(true)

	for i := 1; i <= 8; i++ {
		presented := c.Complete()
		if presented != (i%4 == 0) {
			t.Errorf("frame %d presented = %v", i, presented)
		}
	}
}

func TestToggleOffResets(t *testing.T) {
	c, acc, p := newCompositor(3)
	c.ToggleMotionBlur()
	c.Complete()
	c.Complete()
	if c.CurrentFrame() != 2 || p.presents != 0 {
		t.Fatalf("curFrame = %d presents = %d", c.CurrentFrame(), p.presents)
	}

	if c.ToggleMotionBlur() {
		t.Fatal("toggle should turn blur off")
	}
	if c.CurrentFrame() != 0 {
		t.Errorf("curFrame = %d after toggle off, want 0", c.CurrentFrame())
	}

	if !c.Complete() || p.presents != 1 {
		t.Errorf("frame after toggle off should present immediately")
	}
	if last := acc.calls[len(acc.calls)-1]; last != "pass" {
		t.Errorf("last call = %s, want pass", last)
	}
}

func TestToggleOnRestartsAccumulation(t *testing.T) {
	c, acc, _ := newCompositor(3)
	c.SetMotionBlur(true)
	c.Complete()
	c.SetMotionBlur(true)
	if c.CurrentFrame() != 0 {
		t.Fatalf("curFrame = %d, want 0", c.CurrentFrame())
	}
	c.Complete()
	if got := acc.calls[len(acc.calls)-1]; !strings.HasPrefix(got, "load") {
		t.Errorf("restart should load, got %s", got)
	}
}

func TestFrameFraction(t *testing.T) {
	c, _, _ := newCompositor(4)
	c.SetMotionBlur(true)
	if c.FrameFraction() != 0.25 {
		t.Errorf("frame fraction = %v, want 0.25", c.FrameFraction())
	}
}

func TestSingleSubFrame(t *testing.T) {
	c, acc, p := newCompositor(0)
	c.SetMotionBlur(true)
	c.Complete()
	if p.presents != 1 || c.FramesPerFrame() != 1 {
		t.Errorf("presents = %d frames per frame = %d", p.presents, c.FramesPerFrame())
	}
	if got := strings.Join(acc.calls, ","); got != "load 1.000,resolve" {
		t.Errorf("calls = %s", got)
	}
}
