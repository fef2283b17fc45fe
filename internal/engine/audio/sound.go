package audio

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/wav"
)

// Bounce thud parameters.
const (
	bounceFrequency = 140.0
	bounceDuration  = 120 * time.Millisecond
	bounceDecay     = 0.025 // seconds per e-fold
	bounceAmplitude = 0.8
)

// synthesizeBounce renders a short, exponentially decaying low tone.
func synthesizeBounce(sr beep.SampleRate) (*beep.Buffer, error) {
	tone, err := generators.SineTone(sr, bounceFrequency)
	if err != nil {
		return nil, fmt.Errorf("bounce tone: %w", err)
	}

	buf := beep.NewBuffer(beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2})
	buf.Append(beep.Take(sr.N(bounceDuration), &decay{streamer: tone, sr: sr}))
	return buf, nil
}

// decay applies an exponential envelope to a streamer.
type decay struct {
	streamer beep.Streamer
	sr       beep.SampleRate
	pos      int
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		t := float64(d.pos) / float64(d.sr)
		env := bounceAmplitude * math.Exp(-t/bounceDecay)
		samples[i][0] *= env
		samples[i][1] *= env
		d.pos++
	}
	return n, ok
}

func (d *decay) Err() error {
	return d.streamer.Err()
}

// decodeWAV reads a WAV sound fully into memory at sample rate sr.
func decodeWAV(r io.Reader, sr beep.SampleRate) (*beep.Buffer, error) {
	streamer, format, err := wav.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode wav: %w", err)
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if format.SampleRate != sr {
		s = beep.Resample(4, format.SampleRate, sr, streamer)
		format.SampleRate = sr
	}

	buf := beep.NewBuffer(format)
	buf.Append(s)
	if buf.Len() == 0 {
		return nil, fmt.Errorf("decode wav: no samples")
	}
	return buf, nil
}
