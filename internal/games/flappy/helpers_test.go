package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// seqRandom replays a fixed sequence of values, reduced into [0, n).
type seqRandom struct {
	values []int
	next   int
	calls  int
}

func (r *seqRandom) Intn(n int) int {
	r.calls++
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[r.next%len(r.values)]
	r.next++
	return v % n
}

func testConfig() config.FlappyConfig {
	return config.DefaultFlappyConfig()
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// startedGame returns a game that has just entered play.
func startedGame(opts ...Option) *Game {
	g := New(testConfig(), opts...)
	g.Step(input(core.ActionConfirm))
	return g
}

// stepUntil steps with empty input until the phase changes or limit ticks pass.
// It returns the number of steps taken.
func stepUntil(g *Game, phase Phase, limit int) int {
	for i := 1; i <= limit; i++ {
		g.Step(core.NewInputFrame())
		if g.Phase() == phase {
			return i
		}
	}
	return -1
}
