// Package audio plays the game's sound effects and background music through
// the beep speaker. Sounds are synthesized unless WAV files are supplied.
package audio

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/wav"
)

const sampleRate = beep.SampleRate(44100)

// Sound identifies a one-shot sound effect.
type Sound int

const (
	SoundFlap Sound = iota
	SoundCollision
	SoundPoint
)

func (s Sound) String() string {
	switch s {
	case SoundFlap:
		return "flap"
	case SoundCollision:
		return "collision"
	case SoundPoint:
		return "point"
	default:
		return "unknown"
	}
}

// Sources holds optional WAV files replacing the synthesized sounds.
// Empty paths use the built-in sound.
type Sources struct {
	Flap      string
	Collision string
	Point     string
	Music     string
}

// tone is one note of a synthesized sound.
type tone struct {
	freq float64 // Hz, 0 = rest
	dur  time.Duration
}

var (
	flapTones      = []tone{{520, 30 * time.Millisecond}, {780, 40 * time.Millisecond}}
	pointTones     = []tone{{880, 60 * time.Millisecond}, {1320, 90 * time.Millisecond}}
	collisionTones = []tone{{140, 120 * time.Millisecond}, {90, 180 * time.Millisecond}}
	musicTones     = []tone{
		{262, 180 * time.Millisecond}, {330, 180 * time.Millisecond},
		{392, 180 * time.Millisecond}, {523, 180 * time.Millisecond},
		{392, 180 * time.Millisecond}, {330, 180 * time.Millisecond},
		{294, 180 * time.Millisecond}, {0, 180 * time.Millisecond},
	}
)

// synthesize renders tones into a buffer. Collision uses a square wave for
// a harsher sound.
func synthesize(tones []tone, square bool) (*beep.Buffer, error) {
	format := beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}
	buf := beep.NewBuffer(format)

	for _, t := range tones {
		n := sampleRate.N(t.dur)
		if t.freq == 0 {
			buf.Append(generators.Silence(n))
			continue
		}

		var (
			osc beep.Streamer
			err error
		)
		if square {
			osc, err = generators.SquareTone(sampleRate, t.freq)
		} else {
			osc, err = generators.SineTone(sampleRate, t.freq)
		}
		if err != nil {
			return nil, fmt.Errorf("audio: cannot synthesize %vHz: %w", t.freq, err)
		}
		buf.Append(withVolume(beep.Take(n, osc), 0.4))
	}

	return buf, nil
}

// loadWAV decodes a WAV file into a buffer at the engine sample rate.
func loadWAV(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audio: cannot open %s: %w", path, err)
	}

	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("audio: cannot decode %s: %w", path, err)
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if format.SampleRate != sampleRate {
		s = beep.Resample(4, format.SampleRate, sampleRate, streamer)
	}

	buf := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
	buf.Append(s)
	return buf, nil
}

// withVolume scales a streamer linearly. 0 or less silences it.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
