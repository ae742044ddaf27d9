// Package assets assembles the typed asset bundle handed to the game and the
// audio engine. Missing files are never an error: every asset has a built-in
// fallback.
package assets

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// Sound file base names looked up in the sound directory.
const (
	FlapSound      = "flap"
	CollisionSound = "collision"
	PointSound     = "point"
	MusicSound     = "background_music"
)

// soundExtensions lists the accepted file extensions in lookup order.
var soundExtensions = []string{".wav", ".WAV"}

// Bundle is everything loaded before the game starts.
type Bundle struct {
	Game   flappy.Assets
	Sounds audio.Sources
}

// Load builds the bundle from the configuration.
func Load(cfg config.FlappyConfig) Bundle {
	return Bundle{
		Game:   flappy.DefaultAssets(cfg),
		Sounds: DiscoverSounds(cfg.Audio.SoundDir),
	}
}

// DiscoverSounds returns the sound files present in dir. Sounds without a
// file are left empty so the audio engine synthesizes them.
func DiscoverSounds(dir string) audio.Sources {
	dir = expandHome(dir)
	if dir == "" {
		return audio.Sources{}
	}
	return audio.Sources{
		Flap:      findFile(dir, FlapSound),
		Collision: findFile(dir, CollisionSound),
		Point:     findFile(dir, PointSound),
		Music:     findFile(dir, MusicSound),
	}
}

// Found returns the number of sounds backed by a file.
func (b Bundle) Found() int {
	n := 0
	for _, p := range []string{b.Sounds.Flap, b.Sounds.Collision, b.Sounds.Point, b.Sounds.Music} {
		if p != "" {
			n++
		}
	}
	return n
}

func findFile(dir, base string) string {
	for _, ext := range soundExtensions {
		path := filepath.Join(dir, base+ext)
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path
		}
	}
	return ""
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, path[1:])
}
