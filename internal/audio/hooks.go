package audio

import (
	"io"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// request is one queued playback call.
type request int

const (
	reqFlap request = iota
	reqCollision
	reqPoint
	reqMusicStart
	reqMusicPause
	reqMusicResume
	reqMusicStop
)

// DefaultQueueSize is the number of requests Hooks buffers before dropping.
const DefaultQueueSize = 32

// Hooks implements the game's audio triggers without blocking the tick.
// Requests are queued and played by a single worker goroutine; when the
// queue is full the request is dropped.
type Hooks struct {
	player  Player
	queue   chan request
	done    chan struct{}
	wg      sync.WaitGroup
	closed  atomic.Bool
	dropped atomic.Int64
	once    sync.Once
	logger  *log.Logger
}

var _ flappy.Audio = (*Hooks)(nil)

// NewHooks starts the worker. A size of 0 or less uses DefaultQueueSize.
func NewHooks(p Player, size int, logger *log.Logger) *Hooks {
	if size <= 0 {
		size = DefaultQueueSize
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := &Hooks{
		player: p,
		queue:  make(chan request, size),
		done:   make(chan struct{}),
		logger: logger,
	}

	h.wg.Add(1)
	go h.run()
	return h
}

func (h *Hooks) OnFlap()        { h.enqueue(reqFlap) }
func (h *Hooks) OnCollision()   { h.enqueue(reqCollision) }
func (h *Hooks) OnPoint()       { h.enqueue(reqPoint) }
func (h *Hooks) OnMusicStart()  { h.enqueue(reqMusicStart) }
func (h *Hooks) OnMusicPause()  { h.enqueue(reqMusicPause) }
func (h *Hooks) OnMusicResume() { h.enqueue(reqMusicResume) }
func (h *Hooks) OnMusicStop()   { h.enqueue(reqMusicStop) }

// Dropped returns how many requests were discarded because the queue was full.
func (h *Hooks) Dropped() int64 {
	return h.dropped.Load()
}

func (h *Hooks) enqueue(r request) {
	if h.closed.Load() {
		return
	}
	select {
	case h.queue <- r:
	default:
		h.dropped.Add(1)
	}
}

func (h *Hooks) run() {
	defer h.wg.Done()
	for {
		select {
		case r := <-h.queue:
			h.handle(r)
		case <-h.done:
			return
		}
	}
}

func (h *Hooks) handle(r request) {
	var err error
	switch r {
	case reqFlap:
		err = h.player.Play(SoundFlap)
	case reqCollision:
		err = h.player.Play(SoundCollision)
	case reqPoint:
		err = h.player.Play(SoundPoint)
	case reqMusicStart:
		err = h.player.StartMusic()
	case reqMusicPause:
		err = h.player.PauseMusic()
	case reqMusicResume:
		err = h.player.ResumeMusic()
	case reqMusicStop:
		err = h.player.StopMusic()
	}
	if err != nil {
		h.logger.Warn("audio request failed", "request", int(r), "error", err)
	}
}

// Close stops the worker, discarding queued requests, and closes the player
// if it implements io.Closer. It is safe to call more than once.
func (h *Hooks) Close() error {
	var err error
	h.once.Do(func() {
		h.closed.Store(true)
		close(h.done)
		h.wg.Wait()
		if c, ok := h.player.(io.Closer); ok {
			err = c.Close()
		}
	})
	return err
}
