package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snaky/internal/core"
)

// Game is what the terminal loop drives: one frame of input in, one
// screen buffer out.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Step(input core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

// helpHeight is the number of terminal rows taken by the key help footer.
const helpHeight = 1

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       Game
	screen     *core.Screen
	keys       *KeyMapper
	help       help.Model
	logger     *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// cfg.ScreenH is the whole terminal height; the help footer is carved out of it.
func NewModel(game Game, logger *log.Logger, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg.ScreenH = max(cfg.ScreenH-helpHeight, 0)
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keys:       NewKeyMapper(),
		help:       h,
		logger:     logger,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.logger.Info("quit", "score", m.gameState.Score)
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = max(msg.Height-helpHeight, 0)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width

	// The board is sized from the screen, so a running game starts over
	if !m.gameState.GameOver {
		m.logger.Debug("resized, restarting game", "w", m.config.ScreenW, "h", m.config.ScreenH)
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick runs one game frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Restart with the current screen size, which a finished game never saw
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.logger.Debug("restarting game", "w", m.config.ScreenW, "h", m.config.ScreenH)
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	wasOver := m.gameState.GameOver

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver && !wasOver {
		m.logger.Info("game finished", "game", m.game.ID(), "score", m.gameState.Score, "won", m.gameState.Won)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".snaky", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys.Keys())
}

// Run starts the Bubble Tea program with the given game.
func Run(game Game, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(game, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
