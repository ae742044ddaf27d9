// Package flappy implements the Flappy Bird simulation and screen state machine.
// The player controls a bird that must navigate through gaps in vertical pipes.
//
// The game is advanced one fixed tick at a time with already decoded input.
// It never draws, plays sound or touches files: renderers read a Snapshot,
// and sound and persistence go through the Audio and HighScoreStore hooks.
package flappy

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Game is the state machine that owns every entity of a session.
type Game struct {
	cfg    config.FlappyConfig
	assets Assets
	audio  Audio
	store  HighScoreStore
	rng    Random
	logger *log.Logger

	avatar   *Avatar
	stream   *Stream
	parallax *Parallax
	bonus    *core.Rect // Present only during the bonus event

	phase         Phase
	score         int
	highScore     int
	newHighScore  bool // Latched when a round ends with a better score
	ticks         int64
	deathAt       time.Duration
	creditsOffset float64
	quit          bool
}

// Option configures a Game.
type Option func(*Game)

// WithAudio sets the sound hooks. Defaults to NopAudio.
func WithAudio(a Audio) Option {
	return func(g *Game) {
		if a != nil {
			g.audio = a
		}
	}
}

// WithHighScoreStore sets high score persistence. Defaults to an in-memory
// store starting at 0.
func WithHighScoreStore(s HighScoreStore) Option {
	return func(g *Game) {
		if s != nil {
			g.store = s
		}
	}
}

// WithRandom sets the obstacle random source.
func WithRandom(r Random) Option {
	return func(g *Game) {
		if r != nil {
			g.rng = r
		}
	}
}

// WithSeed seeds the default random source.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		g.rng = NewRandom(seed)
	}
}

// WithAssets sets the loaded asset dimensions.
func WithAssets(a Assets) Option {
	return func(g *Game) {
		g.assets = a
	}
}

// WithLogger sets the logger for state transitions.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// New creates a game on the start screen. The high score is loaded once here.
func New(cfg config.FlappyConfig, opts ...Option) *Game {
	g := &Game{
		cfg:    cfg,
		assets: DefaultAssets(cfg),
		audio:  NopAudio{},
		store:  nopStore{},
		rng:    NewRandom(1),
		logger: log.New(io.Discard),
		phase:  PhaseStart,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.assets = g.assets.normalized(cfg)

	g.avatar = NewAvatar(cfg.Avatar, cfg.Physics, g.assets)
	g.stream = NewStream(cfg.Obstacles, cfg.Field, g.assets.PipeWidth, g.rng)
	g.parallax = NewParallax(cfg.Parallax, g.assets)

	g.highScore = max(g.store.LoadHighScore(), 0)
	g.logger.Debug("game created", "high_score", g.highScore)
	return g
}

// Step advances the game by one tick.
// Input is handled first, then the active screen is updated, so a pause or
// resume is simulated in the same tick. Starting a round consumes the tick:
// the new round begins with every entity at its start position.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.quit {
		return core.StepResult{State: g.State(), Quit: true}
	}

	g.ticks++
	now := g.Now()

	if in.Has(core.ActionQuit) {
		g.shutdown()
		return core.StepResult{State: g.State(), Quit: true}
	}

	started := g.handleInput(in, now)
	if g.quit {
		return core.StepResult{State: g.State(), Quit: true}
	}
	if started {
		return core.StepResult{State: g.State()}
	}

	roundOver := g.update(now)
	return core.StepResult{State: g.State(), RoundOver: roundOver}
}

// handleInput applies the input-driven transitions of the current screen.
// It returns true when a new round was started.
func (g *Game) handleInput(in core.InputFrame, now time.Duration) bool {
	switch g.phase {
	case PhaseStart:
		if in.Has(core.ActionConfirm) {
			g.startRound(now)
			return true
		}

	case PhasePlaying:
		if in.Has(core.ActionPause) {
			g.setPhase(PhasePaused)
			g.audio.OnMusicPause()
			return false
		}
		if in.Has(core.ActionFlap) {
			g.avatar.Flap()
			g.audio.OnFlap()
		}

	case PhasePaused:
		if in.Has(core.ActionPause) || g.resumeClicked(in.Clicks) {
			g.setPhase(PhasePlaying)
			g.audio.OnMusicResume()
		}

	case PhaseGameOver:
		if in.Has(core.ActionConfirm) && now-g.deathAt >= g.cfg.Session.RestartCooldown() {
			g.startRound(now)
			return true
		}

	case PhaseCredits:
		// Escape leaves the credits like quit does
		if in.Has(core.ActionPause) {
			g.shutdown()
		}
	}
	return false
}

// update runs the per-tick behaviour of the current screen.
// It returns true when a round left play this tick.
func (g *Game) update(now time.Duration) bool {
	switch g.phase {
	case PhasePlaying:
		return g.updatePlaying(now)
	case PhaseBonus:
		g.updateBonus()
	case PhaseStart:
		g.parallax.Advance(g.cfg.Obstacles.BaseSpeed)
	case PhasePaused, PhaseGameOver:
		g.parallax.Advance(g.stream.Speed())
	case PhaseCredits:
		g.creditsOffset -= g.cfg.Session.CreditsScrollSpeed
	}
	return false
}

func (g *Game) updatePlaying(now time.Duration) bool {
	g.avatar.Update(now)

	delta, passed := g.stream.Advance(g.avatar.Rect(), g.score)
	g.score += delta
	for range passed {
		g.audio.OnPoint()
	}

	g.parallax.Advance(g.stream.Speed())

	if ObstacleCollision(g.avatar.Rect(), g.stream.Rects(), g.groundY()) {
		g.audio.OnCollision()
		g.latchHighScore()
		g.deathAt = now
		g.setPhase(PhaseGameOver)
		g.audio.OnMusicStop()
		return true
	}

	if g.score >= g.cfg.Bonus.TriggerScore {
		g.latchHighScore()
		g.setPhase(PhaseBonus)
		cx, _ := g.avatar.Rect().Center()
		bonus := core.NewRect(cx-g.assets.BonusW/2, -g.assets.BonusH, g.assets.BonusW, g.assets.BonusH)
		g.bonus = &bonus
		g.audio.OnMusicStop()
		return true
	}

	return false
}

func (g *Game) updateBonus() {
	if g.bonus == nil {
		return
	}
	g.bonus.Y += g.cfg.Bonus.FallSpeed

	avatar := g.avatar.Rect()
	if BonusCollision(&avatar, g.bonus) {
		g.latchHighScore()
		g.bonus = nil
		g.creditsOffset = g.cfg.Field.Height
		g.setPhase(PhaseCredits)
	}
}

// startRound resets every entity and the score and enters play.
func (g *Game) startRound(now time.Duration) {
	g.avatar.Reset(now)
	g.stream.Reset()
	g.parallax.Reset()
	g.score = 0
	g.newHighScore = false
	g.deathAt = 0
	g.bonus = nil
	g.setPhase(PhasePlaying)
	g.audio.OnMusicStart()
}

// latchHighScore records and persists the score if it beats the high score.
// The new-high-score flag stays set for the rest of the round.
func (g *Game) latchHighScore() {
	if g.score <= g.highScore {
		return
	}
	g.highScore = g.score
	g.newHighScore = true
	g.store.SaveHighScore(g.score)
	g.logger.Info("new high score", "score", g.score)
}

func (g *Game) shutdown() {
	if g.phase == PhasePlaying {
		g.audio.OnMusicStop()
	}
	g.quit = true
	g.logger.Debug("quit requested", "phase", g.phase)
}

func (g *Game) setPhase(p Phase) {
	if p == g.phase {
		return
	}
	g.logger.Debug("state change", "from", g.phase, "to", p, "score", g.score)
	g.phase = p
}

func (g *Game) resumeClicked(clicks []core.Point) bool {
	button := g.ResumeButton()
	for _, c := range clicks {
		if button.Contains(c.X, c.Y) {
			return true
		}
	}
	return false
}

func (g *Game) groundY() float64 {
	return g.cfg.Field.Height - g.cfg.Field.GroundHeight
}

// ResumeButton returns the pause overlay's resume button, centred on the field.
func (g *Game) ResumeButton() core.Rect {
	w, h := g.cfg.Session.ResumeButtonWidth, g.cfg.Session.ResumeButtonHeight
	return core.NewRect((g.cfg.Field.Width-w)/2, (g.cfg.Field.Height-h)/2, w, h)
}

// Now returns the elapsed time on the tick clock.
func (g *Game) Now() time.Duration {
	rate := g.cfg.Session.TickRate
	if rate <= 0 {
		rate = 60
	}
	return time.Duration(g.ticks) * time.Second / time.Duration(rate)
}

// FlashActive reports whether the death flash is visible.
func (g *Game) FlashActive() bool {
	return g.phase == PhaseGameOver && g.Now()-g.deathAt < g.cfg.Session.FlashDuration()
}

// Phase returns the active screen.
func (g *Game) Phase() Phase {
	return g.phase
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// HighScore returns the best known score.
func (g *Game) HighScore() int {
	return g.highScore
}

// Ticks returns the number of ticks stepped so far.
func (g *Game) Ticks() int64 {
	return g.ticks
}

// State returns the summary reported to the platform.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase:     g.phase.String(),
		Score:     g.score,
		HighScore: g.highScore,
		GameOver:  g.phase == PhaseGameOver,
		Paused:    g.phase == PhasePaused,
	}
}
