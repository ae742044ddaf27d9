package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagBonusScore int
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a session",
	Long: `Start playing.

Controls:
  Space/Up/W - Flap
  Space/Enter - Start or restart
  P/Esc      - Pause (click Resume or press again to continue)
  Ctrl+S     - Screenshot
  Q/Ctrl+C   - Quit

Examples:
  flappy play
  flappy play --seed 42
  flappy play --bonus-score 100 --mute`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&flagBonusScore, "bonus-score", 0, "Score that triggers the bonus event (0 = config value)")
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

// loadConfig loads the configuration and applies command line overrides.
func loadConfig(cmd *cobra.Command) (config.FlappyConfig, error) {
	cfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return cfg, err
	}

	if cmd.Flags().Changed("fps") {
		cfg.Session.TickRate = flagFPS
	}
	if flagBonusScore > 0 {
		cfg.Bonus.TriggerScore = flagBonusScore
	}
	if flagMute {
		cfg.Audio.Enabled = false
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func runPlay(cmd *cobra.Command, args []string) {
	logger, closeLog := newLogger()
	defer closeLog()

	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	bundle := assets.Load(cfg)
	logger.Debug("assets loaded", "sound_files", bundle.Found())

	sound, closer := startAudio(cfg, bundle, logger)

	// Scores are best effort; the game runs with an in-memory store.
	backend := storage.OpenOrMemory(flagDBPath, logger)
	defer backend.Close()

	game := flappy.New(cfg,
		flappy.WithAudio(sound),
		flappy.WithHighScoreStore(storage.NewHighScores(backend, logger)),
		flappy.WithSeed(seed),
		flappy.WithAssets(bundle.Game),
		flappy.WithLogger(logger),
	)

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Session.TickRate,
		Seed:     seed,
	}

	logger.Info("session started", "seed", seed, "tick_rate", rc.TickRate, "high_score", game.HighScore())

	opts := []tui.ModelOption{tui.WithModelLogger(logger)}
	if closer != nil {
		opts = append(opts, tui.WithCloser(closer))
	}

	if err := tui.Run(game, backend, rc, opts...); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
	logger.Info("session ended", "ticks", game.Ticks(), "high_score", game.HighScore())
}

// startAudio builds the sound engine and its hooks. Any failure leaves the
// game silent.
func startAudio(cfg config.FlappyConfig, bundle assets.Bundle, logger *log.Logger) (flappy.Audio, io.Closer) {
	engine, err := audio.NewEngine(cfg.Audio, bundle.Sounds, logger)
	if err != nil {
		logger.Warn("audio disabled", "error", err)
		return flappy.NopAudio{}, nil
	}
	if err := engine.Start(); err != nil {
		logger.Warn("audio output unavailable", "error", err)
	}

	hooks := audio.NewHooks(engine, audio.DefaultQueueSize, logger)
	return hooks, hooks
}
