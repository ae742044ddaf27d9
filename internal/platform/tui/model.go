package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// helpRows is the number of terminal rows reserved below the field.
const helpRows = 1

// RunRecorder stores the score of every finished round.
type RunRecorder interface {
	RecordRun(score int) (uuid.UUID, error)
}

// Model is the Bubble Tea model for a flappy session.
type Model struct {
	game       *flappy.Game
	screen     *core.Screen
	runs       RunRecorder
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	closer     io.Closer
	logger     *log.Logger
	shotDir    string
	quitting   bool
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithCloser sets a resource closed once the game quits, such as the audio
// hooks. Close may be called more than once.
func WithCloser(c io.Closer) ModelOption {
	return func(m *Model) {
		m.closer = c
	}
}

// WithModelLogger sets the logger for session events.
func WithModelLogger(l *log.Logger) ModelOption {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithScreenshotDir sets where ctrl+s screenshots are written.
func WithScreenshotDir(dir string) ModelOption {
	return func(m *Model) {
		m.shotDir = dir
	}
}

// NewModel creates a Bubble Tea model driving game.
// runs may be nil, in which case finished rounds are not recorded.
func NewModel(game *flappy.Game, runs RunRecorder, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	h := help.New()
	h.ShowAll = false

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpRows, 1)),
		runs:       runs,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       h,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		logger:     log.New(io.Discard),
		shotDir:    filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots"),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the actions bound to a key for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		}
		return m, nil
	}

	m.keys.MapKeyToFrame(msg, &m.inputFrame)
	return m, nil
}

// handleMouse turns left clicks on the field into world-space clicks.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	vp := m.viewport()
	if !vp.Contains(msg.X, msg.Y) {
		return m, nil
	}
	p := vp.ToWorld(msg.X, msg.Y)
	m.inputFrame.Click(p.X, p.Y)
	return m, nil
}

// handleResize processes window resize events.
// The field is in world units, so only the screen buffer changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-helpRows, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick steps the game once with the input gathered since the last tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if result.RoundOver {
		m.recordRun(result.State)
	}

	if result.Quit {
		m.quitting = true
		m.close()
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// recordRun stores a finished round. Failures are logged, play continues.
func (m Model) recordRun(state core.GameState) {
	m.logger.Info("round over", "phase", state.Phase, "score", state.Score, "high_score", state.HighScore)
	if m.runs == nil {
		return
	}
	id, err := m.runs.RecordRun(state.Score)
	if err != nil {
		m.logger.Warn("could not record run", "score", state.Score, "error", err)
		return
	}
	m.logger.Debug("run recorded", "id", id)
}

func (m Model) close() {
	if m.closer == nil {
		return
	}
	if err := m.closer.Close(); err != nil {
		m.logger.Warn("close failed", "error", err)
	}
}

// viewport returns the mapping from the field to the current screen.
func (m Model) viewport() Viewport {
	snap := m.game.Snapshot()
	return NewViewport(snap.FieldW, snap.FieldH, m.screen.Width(), m.screen.Height())
}

// saveScreenshot writes the current frame as plain text.
func (m Model) saveScreenshot() error {
	Draw(m.screen, m.game.Snapshot(), m.viewport())

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		return fmt.Errorf("create screenshot dir: %w", err)
	}

	filename := fmt.Sprintf("flappy_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(m.shotDir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return fmt.Errorf("write screenshot: %w", err)
	}
	m.logger.Info("screenshot saved", "path", path)
	return nil
}

// State returns the game summary as of the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	Draw(m.screen, m.game.Snapshot(), m.viewport())

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program and blocks until the game quits.
func Run(game *flappy.Game, runs RunRecorder, cfg core.RuntimeConfig, opts ...ModelOption) error {
	model := NewModel(game, runs, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if m, ok := final.(Model); ok {
		// Interrupted programs never see the quit tick.
		m.close()
	}
	return err
}
