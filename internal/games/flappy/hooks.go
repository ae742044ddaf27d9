package flappy

//go:generate go tool mockgen -destination=./mocks/hooks_mock.go -package=mocks . Audio,HighScoreStore

// Audio receives sound and music triggers from the game.
// Implementations must return quickly and never fail; the game does not
// wait for playback.
type Audio interface {
	OnFlap()
	OnCollision()
	OnPoint()
	OnMusicStart()
	OnMusicPause()
	OnMusicResume()
	OnMusicStop()
}

// HighScoreStore persists the best score between sessions.
// LoadHighScore returns 0 when nothing can be read. SaveHighScore is best
// effort; failures are handled by the implementation.
type HighScoreStore interface {
	LoadHighScore() int
	SaveHighScore(score int)
}

// NopAudio is a silent Audio.
type NopAudio struct{}

func (NopAudio) OnFlap()        {}
func (NopAudio) OnCollision()   {}
func (NopAudio) OnPoint()       {}
func (NopAudio) OnMusicStart()  {}
func (NopAudio) OnMusicPause()  {}
func (NopAudio) OnMusicResume() {}
func (NopAudio) OnMusicStop()   {}

// nopStore keeps the high score for the lifetime of the process only.
type nopStore struct{}

func (nopStore) LoadHighScore() int  { return 0 }
func (nopStore) SaveHighScore(_ int) {}
