package audio

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// recordingPlayer records calls and can block inside Play.
type recordingPlayer struct {
	mu      sync.Mutex
	calls   []string
	started chan struct{}
	release chan struct{}
	closed  bool
}

func (p *recordingPlayer) record(name string) {
	p.mu.Lock()
	p.calls = append(p.calls, name)
	p.mu.Unlock()
	if p.started != nil {
		p.started <- struct{}{}
	}
	if p.release != nil {
		<-p.release
	}
}

func (p *recordingPlayer) Play(s Sound) error { p.record(s.String()); return nil }
func (p *recordingPlayer) StartMusic() error  { p.record("start"); return nil }
func (p *recordingPlayer) PauseMusic() error  { p.record("pause"); return nil }
func (p *recordingPlayer) ResumeMusic() error { p.record("resume"); return nil }
func (p *recordingPlayer) StopMusic() error   { p.record("stop"); return nil }
func (p *recordingPlayer) Close() error       { p.closed = true; return nil }

func (p *recordingPlayer) snapshot() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.calls...)
}

func waitForCalls(t *testing.T, p *recordingPlayer, n int) []string {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if calls := p.snapshot(); len(calls) >= n {
			return calls
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("expected %d calls, got %v", n, p.snapshot())
	return nil
}

func TestHooksDeliverInOrder(t *testing.T) {
	p := &recordingPlayer{}
	h := NewHooks(p, 0, nil)
	defer h.Close()

	h.OnMusicStart()
	h.OnFlap()
	h.OnPoint()
	h.OnMusicPause()
	h.OnMusicResume()
	h.OnCollision()
	h.OnMusicStop()

	calls := waitForCalls(t, p, 7)
	expected := []string{"start", "flap", "point", "pause", "resume", "collision", "stop"}
	for i, name := range expected {
		if calls[i] != name {
			t.Errorf("call %d = %q, expected %q", i, calls[i], name)
		}
	}
}

func TestHooksDropWhenFull(t *testing.T) {
	p := &recordingPlayer{
		started: make(chan struct{}, 4),
		release: make(chan struct{}),
	}
	h := NewHooks(p, 1, nil)

	h.OnFlap()
	<-p.started // Worker is now blocked inside Play

	h.OnPoint()     // Fills the queue
	h.OnCollision() // Dropped

	if got := h.Dropped(); got != 1 {
		t.Errorf("Dropped() = %d, expected 1", got)
	}

	close(p.release)
	calls := waitForCalls(t, p, 2)
	if calls[1] != "point" {
		t.Errorf("second call = %q, expected point", calls[1])
	}

	h.Close()
	if !p.closed {
		t.Error("Close() should close the player")
	}
}

func TestHooksIgnoreAfterClose(t *testing.T) {
	p := &recordingPlayer{}
	h := NewHooks(p, 4, nil)

	if err := h.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}
	h.OnFlap()
	if err := h.Close(); err != nil {
		t.Errorf("second Close() failed: %v", err)
	}

	time.Sleep(10 * time.Millisecond)
	if calls := p.snapshot(); len(calls) != 0 {
		t.Errorf("expected no calls after close, got %v", calls)
	}
}

func TestEngineSynthesizesSounds(t *testing.T) {
	e, err := NewEngine(config.AudioConfig{Enabled: false, Volume: 0.5}, Sources{}, nil)
	if err != nil {
		t.Fatalf("NewEngine() failed: %v", err)
	}

	for _, s := range []Sound{SoundFlap, SoundCollision, SoundPoint} {
		if buf := e.sounds[s]; buf == nil || buf.Len() == 0 {
			t.Errorf("sound %v was not synthesized", s)
		}
	}
	if e.music == nil || e.music.Len() != sampleRate.N(8*180*time.Millisecond) {
		t.Errorf("unexpected music length")
	}
}

func TestEngineDisabledIsSilent(t *testing.T) {
	e, err := NewEngine(config.AudioConfig{Enabled: false}, Sources{}, nil)
	if err != nil {
		t.Fatalf("NewEngine() failed: %v", err)
	}

	if err := e.Start(); err != nil {
		t.Fatalf("Start() on a muted engine failed: %v", err)
	}
	if !e.Silent() {
		t.Error("muted engine should be silent")
	}

	if err := e.Play(SoundFlap); err != nil {
		t.Errorf("Play() = %v", err)
	}
	if err := e.Play(Sound(42)); err == nil {
		t.Error("Play() of an unknown sound should fail")
	}
	for _, fn := range []func() error{e.StartMusic, e.PauseMusic, e.ResumeMusic, e.StopMusic, e.Close} {
		if err := fn(); err != nil {
			t.Errorf("silent engine call failed: %v", err)
		}
	}
}

func TestEngineLoadsWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flap.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	format := beep.Format{SampleRate: 22050, NumChannels: 2, Precision: 2}
	tone, err := generators.SineTone(format.SampleRate, 440)
	if err != nil {
		t.Fatalf("SineTone() failed: %v", err)
	}
	if err := wav.Encode(f, beep.Take(format.SampleRate.N(time.Second/2), tone), format); err != nil {
		t.Fatalf("wav.Encode() failed: %v", err)
	}
	f.Close()

	e, err := NewEngine(config.AudioConfig{}, Sources{Flap: path, Point: filepath.Join(t.TempDir(), "missing.wav")}, nil)
	if err != nil {
		t.Fatalf("NewEngine() failed: %v", err)
	}

	// Half a second resampled to the engine rate
	got := e.sounds[SoundFlap].Len()
	want := sampleRate.N(time.Second / 2)
	if got < want-100 || got > want+100 {
		t.Errorf("decoded length = %d, expected about %d", got, want)
	}

	// Missing files fall back to the synthesized sound
	if e.sounds[SoundPoint].Len() != sampleRate.N(150*time.Millisecond) {
		t.Errorf("point sound length = %d, expected synthesized fallback", e.sounds[SoundPoint].Len())
	}
}
