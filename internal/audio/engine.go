package audio

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// ErrUnknownSound is returned by Play for a sound that was never loaded.
var ErrUnknownSound = errors.New("audio: unknown sound")

// Player is the playback surface driven by Hooks.
type Player interface {
	Play(s Sound) error
	StartMusic() error
	PauseMusic() error
	ResumeMusic() error
	StopMusic() error
}

// Engine owns the speaker and the decoded sounds.
// Without an audio device it runs silent: every call succeeds and does nothing.
type Engine struct {
	mu        sync.Mutex
	sounds    map[Sound]*beep.Buffer
	music     *beep.Buffer
	musicCtrl *beep.Ctrl
	mixer     *beep.Mixer
	volume    float64
	enabled   bool
	running   bool
	logger    *log.Logger
}

var _ Player = (*Engine)(nil)

// NewEngine prepares every sound. Files in src that cannot be loaded are
// replaced by the synthesized version and logged.
func NewEngine(cfg config.AudioConfig, src Sources, logger *log.Logger) (*Engine, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	e := &Engine{
		sounds:  make(map[Sound]*beep.Buffer, 3),
		mixer:   &beep.Mixer{},
		volume:  cfg.Volume,
		enabled: cfg.Enabled,
		logger:  logger,
	}

	effectsToLoad := []struct {
		sound  Sound
		path   string
		tones  []tone
		square bool
	}{
		{SoundFlap, src.Flap, flapTones, false},
		{SoundCollision, src.Collision, collisionTones, true},
		{SoundPoint, src.Point, pointTones, false},
	}

	for _, fx := range effectsToLoad {
		buf, err := e.load(fx.path, fx.tones, fx.square)
		if err != nil {
			return nil, err
		}
		e.sounds[fx.sound] = buf
	}

	music, err := e.load(src.Music, musicTones, false)
	if err != nil {
		return nil, err
	}
	e.music = music

	return e, nil
}

// load prefers the WAV at path and falls back to synthesis.
func (e *Engine) load(path string, tones []tone, square bool) (*beep.Buffer, error) {
	if path != "" {
		buf, err := loadWAV(path)
		if err == nil && buf.Len() > 0 {
			return buf, nil
		}
		e.logger.Warn("using built-in sound", "path", path, "error", err)
	}
	return synthesize(tones, square)
}

// Start opens the speaker. On failure the engine stays silent and the error
// is returned for logging.
func (e *Engine) Start() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.enabled || e.running {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		e.enabled = false
		return fmt.Errorf("audio: no output device, running silent: %w", err)
	}

	speaker.Play(e.mixer)
	e.running = true
	return nil
}

// Silent reports whether playback is disabled.
func (e *Engine) Silent() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return !e.running
}

// Play mixes in a one-shot sound effect.
func (e *Engine) Play(s Sound) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	buf, ok := e.sounds[s]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownSound, s)
	}
	if !e.running {
		return nil
	}

	speaker.Lock()
	e.mixer.Add(withVolume(buf.Streamer(0, buf.Len()), e.volume))
	speaker.Unlock()
	return nil
}

// StartMusic plays the background loop from the beginning.
func (e *Engine) StartMusic() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.running {
		return nil
	}

	speaker.Lock()
	defer speaker.Unlock()

	if e.musicCtrl != nil {
		e.musicCtrl.Streamer = nil
	}
	loop := beep.Loop(-1, e.music.Streamer(0, e.music.Len()))
	e.musicCtrl = &beep.Ctrl{Streamer: withVolume(loop, e.volume*0.5)}
	e.mixer.Add(e.musicCtrl)
	return nil
}

// PauseMusic pauses the background loop in place.
func (e *Engine) PauseMusic() error {
	return e.setMusicPaused(true)
}

// ResumeMusic resumes a paused loop, or starts it if nothing is playing.
func (e *Engine) ResumeMusic() error {
	e.mu.Lock()
	stopped := e.musicCtrl == nil || e.musicCtrl.Streamer == nil
	e.mu.Unlock()

	if stopped {
		return e.StartMusic()
	}
	return e.setMusicPaused(false)
}

// StopMusic stops the background loop.
func (e *Engine) StopMusic() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.running || e.musicCtrl == nil {
		return nil
	}

	speaker.Lock()
	// A Ctrl without a streamer is drained from the mixer
	e.musicCtrl.Streamer = nil
	speaker.Unlock()
	e.musicCtrl = nil
	return nil
}

func (e *Engine) setMusicPaused(paused bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.running || e.musicCtrl == nil {
		return nil
	}

	speaker.Lock()
	e.musicCtrl.Paused = paused
	speaker.Unlock()
	return nil
}

// Close stops all sounds and releases the speaker.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.running {
		return nil
	}

	speaker.Clear()
	speaker.Close()
	e.running = false
	e.musicCtrl = nil
	return nil
}
