package flappy

import (
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy/mocks"
)

func TestGameStartsOnStartScreen(t *testing.T) {
	g := New(testConfig())

	if g.Phase() != PhaseStart {
		t.Fatalf("initial phase = %v, expected START_SCREEN", g.Phase())
	}

	// Flap alone does not start the game
	g.Step(input(core.ActionFlap))
	if g.Phase() != PhaseStart {
		t.Errorf("flap changed phase to %v", g.Phase())
	}

	// The background keeps moving at base speed
	before := g.parallax.Ground.Offsets[0]
	g.Step(core.NewInputFrame())
	if g.parallax.Ground.Offsets[0] != before-3 {
		t.Errorf("ground offset = %v, expected %v", g.parallax.Ground.Offsets[0], before-3)
	}
}

func TestGameConfirmStartsRound(t *testing.T) {
	g := New(testConfig())
	res := g.Step(input(core.ActionConfirm, core.ActionFlap))

	if g.Phase() != PhasePlaying || res.State.Phase != "PLAYING" {
		t.Fatalf("phase = %v, expected PLAYING", g.Phase())
	}
	if g.avatar.Y != 300 || g.avatar.Velocity != 0 {
		t.Errorf("avatar at y=%v vel=%v, expected untouched start", g.avatar.Y, g.avatar.Velocity)
	}
	if len(g.stream.Pairs()) != 2 {
		t.Errorf("expected 2 initial pairs, got %d", len(g.stream.Pairs()))
	}
}

// Falling from the start height without flapping hits the ground on tick 26:
// after n ticks y = 300 + 0.25*n*(n+1), and the bottom reaches 500 at y >= 470.
func TestGameFallsToGround(t *testing.T) {
	g := startedGame()

	var res core.StepResult
	ticks := 0
	for ticks < 100 {
		res = g.Step(core.NewInputFrame())
		ticks++
		if g.Phase() != PhasePlaying {
			break
		}
	}

	if g.Phase() != PhaseGameOver {
		t.Fatalf("phase = %v, expected GAME_OVER", g.Phase())
	}
	if ticks != 26 {
		t.Errorf("hit the ground after %d ticks, expected 26", ticks)
	}
	if !res.RoundOver || !res.State.GameOver {
		t.Errorf("collision tick result = %+v, expected RoundOver and GameOver", res)
	}
}

func TestGameCollisionTransitionsOnce(t *testing.T) {
	g := startedGame()
	stepUntil(g, PhaseGameOver, 100)

	for i := 0; i < 20; i++ {
		res := g.Step(core.NewInputFrame())
		if res.RoundOver {
			t.Fatalf("RoundOver reported again on tick %d after death", i)
		}
		if g.Phase() != PhaseGameOver {
			t.Fatalf("phase left GAME_OVER without input: %v", g.Phase())
		}
	}
}

func TestGameFlapKeepsBirdAlive(t *testing.T) {
	g := startedGame()

	for i := 0; i < 120; i++ {
		in := core.NewInputFrame()
		if g.avatar.Y > 320 {
			in.Set(core.ActionFlap)
		}
		g.Step(in)
	}

	// Pipes are still far away after 2 seconds; only the ground could kill
	if g.Phase() != PhasePlaying {
		t.Errorf("phase = %v, expected flapping to keep the bird in the air", g.Phase())
	}
}

func TestGameHighScorePersisted(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockHighScoreStore(ctrl)
	store.EXPECT().LoadHighScore().Return(3)
	store.EXPECT().SaveHighScore(5).Times(1)

	g := startedGame(WithHighScoreStore(store))
	g.score = 5
	stepUntil(g, PhaseGameOver, 100)

	snap := g.Snapshot()
	if !snap.NewHighScore {
		t.Error("expected new high score flag")
	}
	if snap.HighScore != 5 || g.HighScore() != 5 {
		t.Errorf("HighScore = %d, expected 5", snap.HighScore)
	}
}

func TestGameLowerScoreNotPersisted(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockHighScoreStore(ctrl)
	store.EXPECT().LoadHighScore().Return(10)
	store.EXPECT().SaveHighScore(gomock.Any()).Times(0)

	g := startedGame(WithHighScoreStore(store))
	g.score = 4
	stepUntil(g, PhaseGameOver, 100)

	if g.Snapshot().NewHighScore {
		t.Error("new high score flag set for a lower score")
	}
	if g.HighScore() != 10 {
		t.Errorf("HighScore = %d, expected 10", g.HighScore())
	}
}

func TestGameNegativeLoadedHighScore(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockHighScoreStore(ctrl)
	store.EXPECT().LoadHighScore().Return(-7)

	if g := New(testConfig(), WithHighScoreStore(store)); g.HighScore() != 0 {
		t.Errorf("HighScore = %d, expected 0", g.HighScore())
	}
}

func TestGameRestartCooldown(t *testing.T) {
	g := startedGame()
	stepUntil(g, PhaseGameOver, 100)

	// 500ms at 60 ticks per second is 30 ticks
	for i := 1; i < 30; i++ {
		g.Step(input(core.ActionConfirm))
		if g.Phase() != PhaseGameOver {
			t.Fatalf("restart accepted %d ticks after death", i)
		}
	}

	g.Step(input(core.ActionConfirm))
	if g.Phase() != PhasePlaying {
		t.Fatalf("phase = %v, expected restart once the cooldown elapsed", g.Phase())
	}
	if g.Score() != 0 {
		t.Errorf("Score = %d, expected 0", g.Score())
	}
	if r := g.avatar.Rect(); r.X != 50 || r.Y != 300 {
		t.Errorf("avatar at (%v, %v), expected start (50, 300)", r.X, r.Y)
	}
	if g.Snapshot().NewHighScore {
		t.Error("new high score flag survived the restart")
	}
}

func TestGameDeathFlash(t *testing.T) {
	g := startedGame()
	stepUntil(g, PhaseGameOver, 100)

	if !g.FlashActive() || !g.Snapshot().Flash {
		t.Fatal("flash should be visible on the death tick")
	}

	// 150ms is 9 ticks
	for i := 0; i < 9; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.FlashActive() {
		t.Error("flash still visible after its duration")
	}
}

func TestGamePauseAndResume(t *testing.T) {
	g := startedGame()
	g.Step(core.NewInputFrame())

	g.Step(input(core.ActionPause))
	if g.Phase() != PhasePaused {
		t.Fatalf("phase = %v, expected PAUSED", g.Phase())
	}

	y := g.avatar.Y
	pipeX := g.stream.Pairs()[0].X
	ground := g.parallax.Ground.Offsets[0]
	for i := 0; i < 10; i++ {
		g.Step(input(core.ActionFlap))
	}
	if g.avatar.Y != y || g.stream.Pairs()[0].X != pipeX {
		t.Error("simulation advanced while paused")
	}
	if g.parallax.Ground.Offsets[0] == ground {
		t.Error("background should keep scrolling while paused")
	}

	g.Step(input(core.ActionPause))
	if g.Phase() != PhasePlaying {
		t.Fatalf("phase = %v, expected PLAYING after second pause", g.Phase())
	}
	if g.avatar.Y == y {
		t.Error("resume tick should advance the simulation")
	}
}

func TestGameResumeButtonClick(t *testing.T) {
	g := startedGame()
	g.Step(input(core.ActionPause))

	button := g.ResumeButton()
	if button != core.NewRect(125, 275, 150, 50) {
		t.Fatalf("ResumeButton() = %+v", button)
	}

	miss := core.NewInputFrame()
	miss.Click(10, 10)
	g.Step(miss)
	if g.Phase() != PhasePaused {
		t.Fatal("click outside the button resumed the game")
	}

	hit := core.NewInputFrame()
	hit.Click(200, 300)
	g.Step(hit)
	if g.Phase() != PhasePlaying {
		t.Errorf("phase = %v, expected click on button to resume", g.Phase())
	}
}

func TestGameQuit(t *testing.T) {
	phases := []func(*Game){
		func(g *Game) {},
		func(g *Game) { g.Step(input(core.ActionConfirm)) },
		func(g *Game) { g.Step(input(core.ActionConfirm)); g.Step(input(core.ActionPause)) },
	}

	for i, setup := range phases {
		g := New(testConfig())
		setup(g)

		res := g.Step(input(core.ActionQuit))
		if !res.Quit {
			t.Errorf("case %d: quit not reported from %v", i, g.Phase())
		}

		ticks := g.Ticks()
		if res := g.Step(core.NewInputFrame()); !res.Quit || g.Ticks() != ticks {
			t.Errorf("case %d: game kept running after quit", i)
		}
	}
}

func TestGameAudioHooks(t *testing.T) {
	ctrl := gomock.NewController(t)
	audio := mocks.NewMockAudio(ctrl)

	gomock.InOrder(
		audio.EXPECT().OnMusicStart(),
		audio.EXPECT().OnFlap(),
		audio.EXPECT().OnMusicPause(),
		audio.EXPECT().OnMusicResume(),
		audio.EXPECT().OnCollision(),
		audio.EXPECT().OnMusicStop(),
	)

	g := New(testConfig(), WithAudio(audio))
	g.Step(input(core.ActionConfirm))
	g.Step(input(core.ActionFlap))
	g.Step(input(core.ActionPause))
	g.Step(input(core.ActionPause))
	stepUntil(g, PhaseGameOver, 200)
}

func TestGamePointSound(t *testing.T) {
	ctrl := gomock.NewController(t)
	audio := mocks.NewMockAudio(ctrl)
	audio.EXPECT().OnMusicStart()
	audio.EXPECT().OnPoint().Times(1)

	g := New(testConfig(), WithAudio(audio))
	g.Step(input(core.ActionConfirm))

	// A single pair right behind the bird and nothing else in the way
	g.stream.pairs = []PipePair{{X: 0, Width: 50, UpperHeight: 10, Gap: 480, LowerY: 490, LowerHeight: 10}}
	g.Step(core.NewInputFrame())

	if g.Score() != 1 {
		t.Errorf("Score = %d, expected 1", g.Score())
	}
}

func TestGameBonusEventToCredits(t *testing.T) {
	cfg := testConfig()
	cfg.Bonus.TriggerScore = 1

	ctrl := gomock.NewController(t)
	store := mocks.NewMockHighScoreStore(ctrl)
	store.EXPECT().LoadHighScore().Return(0)
	store.EXPECT().SaveHighScore(1).Times(1)

	g := New(cfg, WithHighScoreStore(store))
	g.Step(input(core.ActionConfirm))
	g.stream.pairs = []PipePair{{X: 0, Width: 50, UpperHeight: 10, Gap: 480, LowerY: 490, LowerHeight: 10}}

	res := g.Step(core.NewInputFrame())
	if g.Phase() != PhaseBonus || !res.RoundOver {
		t.Fatalf("phase = %v roundOver = %v, expected BONUS_EVENT", g.Phase(), res.RoundOver)
	}

	snap := g.Snapshot()
	if snap.Bonus == nil {
		t.Fatal("bonus faller missing during the event")
	}
	cx, _ := snap.Avatar.Center()
	if bx, _ := snap.Bonus.Center(); bx != cx || snap.Bonus.Y != -50 {
		t.Errorf("bonus at %+v, expected centred above the bird at y=-50", *snap.Bonus)
	}

	if stepUntil(g, PhaseCredits, 200) < 0 {
		t.Fatalf("bonus never caught the bird, phase %v", g.Phase())
	}
	if g.Snapshot().Bonus != nil {
		t.Error("bonus faller should be gone in the credits")
	}
	if g.creditsOffset != cfg.Field.Height {
		t.Errorf("credits start at %v, expected field height", g.creditsOffset)
	}

	g.Step(core.NewInputFrame())
	if g.creditsOffset != cfg.Field.Height-1 {
		t.Errorf("credits offset = %v, expected scroll by 1", g.creditsOffset)
	}

	if res := g.Step(input(core.ActionQuit)); !res.Quit {
		t.Error("quit from credits not reported")
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() (int, int64, []PipePair) {
		g := New(testConfig(), WithSeed(12345))
		g.Step(input(core.ActionConfirm))
		for i := 0; i < 600 && g.Phase() == PhasePlaying; i++ {
			in := core.NewInputFrame()
			if i%15 == 0 {
				in.Set(core.ActionFlap)
			}
			g.Step(in)
		}
		return g.Score(), g.Ticks(), g.Snapshot().Pipes
	}

	s1, t1, p1 := run()
	s2, t2, p2 := run()

	if s1 != s2 || t1 != t2 {
		t.Errorf("runs differ: score %d/%d ticks %d/%d", s1, s2, t1, t2)
	}
	if len(p1) != len(p2) {
		t.Fatalf("pipe counts differ: %d vs %d", len(p1), len(p2))
	}
	for i := range p1 {
		if p1[i] != p2[i] {
			t.Errorf("pipe %d differs", i)
		}
	}
}

func TestGameTickClock(t *testing.T) {
	g := New(testConfig())
	for i := 0; i < 60; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.Now() != time.Second {
		t.Errorf("Now() = %v after 60 ticks, expected 1s", g.Now())
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	g := startedGame()
	snap := g.Snapshot()
	snap.Pipes[0].X = -1000

	if g.stream.Pairs()[0].X == -1000 {
		t.Error("snapshot shares pipe storage with the game")
	}
	if snap.GroundY != 500 || snap.FieldW != 400 || len(snap.CreditsLines) == 0 {
		t.Errorf("unexpected snapshot geometry: %+v", snap)
	}
}
