package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/goat-climb/internal/climb"
	"github.com/vovakirdan/goat-climb/internal/config"
	"github.com/vovakirdan/goat-climb/internal/core"
	"github.com/vovakirdan/goat-climb/internal/storage"
)

// Options carries the optional collaborators of the game model.
type Options struct {
	Store   *storage.Store  // Run history, nil to skip recording
	Logger  *log.Logger     // Nil discards logs
	Watcher *config.Watcher // Config hot reload, nil to disable
}

// Model is the Bubble Tea model for playing Goat Climb.
type Model struct {
	game       *climb.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	watcher    *config.Watcher
	config     core.RuntimeConfig
	keys       *KeyMapper
	help       help.Model
	held       *core.HeldKeys
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *climb.Game, cfg core.RuntimeConfig, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, playfieldRows(cfg.ScreenH)),
		store:      opts.Store,
		logger:     logger,
		watcher:    opts.Watcher,
		config:     cfg,
		keys:       NewKeyMapper(),
		help:       help.New(),
		held:       core.NewHeldKeys(game.Config().Input.HoldTicks(cfg.TickRate)),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
	}
}

// Init starts the tick loop and the config watcher.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.config.TickRate), watchCmd(m.watcher))
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

	case ConfigChangedMsg:
		m.reloadConfig(msg.Path)
		return m, watchCmd(m.watcher)

	case ConfigErrorMsg:
		m.logger.Warn("config watcher error", "error", msg.Err)
		return m, watchCmd(m.watcher)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.IsScreenshot(msg) {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionLeft, core.ActionRight:
		m.held.Press(action)
	case core.ActionConfirm:
		if m.game.Mode() == core.ModeNotStarted {
			m.startRun()
		}
	case core.ActionPause:
		m.inputFrame.Set(core.ActionPause)
	case core.ActionRestart:
		if m.game.Mode() == core.ModeEnded {
			m.startRun()
		}
	}

	return m, nil
}

// startRun begins a new run. A fixed seed replays the same world each run.
func (m *Model) startRun() {
	if m.config.Seed != 0 {
		m.game.Reset(m.config)
	} else {
		m.game.Restart()
	}
	m.held.Release()
	m.inputFrame.Clear()
	m.gameState = m.game.State()
	m.logger.Info("run started", "best", m.game.Best())
}

// handleResize processes window resize events. The world is scaled to the
// screen, so a resize never resets the run.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playfieldRows(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// playfieldRows is the screen height left after the help line.
func playfieldRows(height int) int {
	return max(0, height-1)
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.held.Apply(&m.inputFrame)
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	for _, e := range result.Events {
		m.handleEvent(e)
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// handleEvent logs a game event and records finished runs.
func (m *Model) handleEvent(e core.Event) {
	switch e.Kind {
	case core.EventGameOver:
		ticks := 0
		if w := m.game.World(); w != nil {
			ticks = w.Ticks
		}
		m.logger.Info("game over", "reason", e.Detail, "score", e.Value, "best", m.game.Best(), "ticks", ticks)
		m.recordRun(e.Value, e.Detail, ticks)
	case core.EventNewBest:
		m.logger.Info("new best score", "score", e.Value)
	case core.EventPersistFailed:
		m.logger.Warn("could not persist best score", "error", e.Err)
	case core.EventPowerUp:
		m.logger.Debug("power-up collected", "kind", e.Detail)
	case core.EventPlatformBroken:
		m.logger.Debug("platform broken")
	}
}

// recordRun stores a finished run in the history. Runs without progress are
// not recorded.
func (m *Model) recordRun(score int, reason string, ticks int) {
	if m.store == nil || score <= 0 {
		return
	}
	_, err := m.store.SaveScore(storage.ScoreEntry{
		GameID:   m.game.ID(),
		Score:    score,
		Reason:   reason,
		Ticks:    ticks,
		TickRate: m.config.TickRate,
	})
	if err != nil {
		m.logger.Warn("could not record run", "error", err)
	}
}

// reloadConfig loads the changed file and hands it to the game. It takes
// effect on the next run.
func (m *Model) reloadConfig(path string) {
	cfg, err := config.LoadClimb(path)
	if err != nil {
		m.logger.Error("config reload failed", "path", path, "error", err)
		return
	}
	m.game.Configure(cfg)
	m.held = core.NewHeldKeys(cfg.Input.HoldTicks(m.config.TickRate))
	m.logger.Info("config reloaded", "path", path)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".goatclimb", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
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

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys.Keys()))
}

// Run starts the Bubble Tea program with the given game.
func Run(game *climb.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
