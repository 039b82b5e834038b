package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
	"github.com/vovakirdan/tui-shooter/internal/registry"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

// helpHeight is the number of rows reserved below the game for the help bar.
const helpHeight = 1

// eventSource is implemented by games that report what happened each tick.
type eventSource interface {
	Events() []shooter.Event
}

// runTotals is implemented by games that expose run totals worth storing.
type runTotals interface {
	Coins() int
	RunTicks() int
}

// Options configures a Model beyond the game itself.
type Options struct {
	Store  *storage.Store // nil disables the scoreboard
	Logger *log.Logger    // nil discards log output
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	holds      *HoldTracker
	inputFrame core.InputFrame
	gameState  core.GameState
	runID      uuid.UUID
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpHeight, 1)),
		store:      opts.Store,
		logger:     logger.With("game", game.ID()),
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       h,
		holds:      NewHoldTracker(),
		inputFrame: core.NewInputFrame(),
		runID:      uuid.New(),
	}
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("session started", "seed", m.config.Seed, "fps", m.config.TickRate)
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
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		// Full help hides the field; drop input so nothing fires on return.
		m.holds.Release()
		m.inputFrame.Clear()
		return m, nil
	}

	action := m.keys.MapKey(msg)
	switch {
	case action == core.ActionNone:
		return m, nil
	case m.help.ShowAll && action != core.ActionQuit:
		return m, nil
	}

	switch action {
	case core.ActionQuit:
		// Let the game shut down its own resources before leaving.
		frame := core.NewInputFrame()
		frame.Set(core.ActionQuit)
		m.step(frame)
		m.quitting = true
		return m, tea.Quit
	case core.ActionLeft, core.ActionRight:
		m.holds.Press(action)
	}

	m.inputFrame.Set(action)
	return m, nil
}

// handleResize adapts the screen buffer without resetting the run.
// Games work in their own coordinates and project onto whatever screen they get.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-helpHeight, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	// The simulation is suspended while full help covers the field.
	if m.help.ShowAll {
		return m, tickCmd(m.config.TickRate)
	}

	m.holds.Apply(&m.inputFrame)
	m.step(m.inputFrame)

	// Clear input for next frame
	m.inputFrame.Clear()

	if m.gameState.Exit {
		m.quitting = true
		return m, tea.Quit
	}

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// step runs one simulation tick and reacts to the resulting state.
func (m *Model) step(frame core.InputFrame) {
	prev := m.gameState
	result := m.game.Step(frame)
	m.gameState = result.State

	m.logEvents()

	// Movement held into a modal screen must not carry over when play resumes.
	if m.gameState.Paused {
		m.holds.Release()
	}

	switch {
	case m.gameState.GameOver && !m.scoreSaved:
		m.saveRun()
		m.scoreSaved = true
		m.holds.Release()
	case prev.GameOver && !m.gameState.GameOver:
		// New run after a restart.
		m.runID = uuid.New()
		m.scoreSaved = false
	}
}

func (m *Model) logEvents() {
	src, ok := m.game.(eventSource)
	if !ok {
		return
	}
	for _, e := range src.Events() {
		switch e.Kind {
		case shooter.EventPurchase, shooter.EventPurchaseRejected:
			m.logger.Info(e.Kind.String(), "item", e.Item, "amount", e.Amount, "tick", e.Tick)
		case shooter.EventGameOver:
			m.logger.Info(e.Kind.String(), "score", e.Amount, "tick", e.Tick)
		case shooter.EventGameStarted, shooter.EventRestart, shooter.EventExit:
			m.logger.Info(e.Kind.String(), "tick", e.Tick)
		case shooter.EventEnemySpawned, shooter.EventEnemyEscaped,
			shooter.EventEnemyDestroyed, shooter.EventEnemyRammed:
			m.logger.Debug(e.Kind.String(), "enemy", e.Enemy, "amount", e.Amount, "tick", e.Tick)
		default:
			m.logger.Debug(e.Kind.String(), "amount", e.Amount, "tick", e.Tick)
		}
	}
}

// saveRun records the finished run. Failures are logged; the game continues.
func (m *Model) saveRun() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}

	run := storage.RunResult{
		RunID:  m.runID,
		GameID: m.game.ID(),
		Score:  m.gameState.Score,
	}
	if totals, ok := m.game.(runTotals); ok {
		run.Coins = totals.Coins()
		run.Ticks = totals.RunTicks()
	}

	if _, err := m.store.SaveRun(run); err != nil {
		m.logger.Warn("could not save run", "run", m.runID, "error", err)
		return
	}
	m.logger.Info("run saved", "run", m.runID, "score", run.Score)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".shooter", "screenshots")
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

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	if m.help.ShowAll {
		// Full help replaces the playfield until toggled off.
		return lipgloss.Place(m.config.ScreenW, m.config.ScreenH,
			lipgloss.Center, lipgloss.Center, m.help.View(m.keys))
	}

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
