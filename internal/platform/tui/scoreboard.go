package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-shooter/internal/storage"
)

const maxScores = 100 // Max runs to load

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the high score screen of one game.
type ScoreboardModel struct {
	gameID   string
	title    string
	scores   []storage.ScoreEntry
	stats    *storage.GameStats
	tickRate int
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	width    int
	height   int
	quitting bool
}

// NewScoreboardModel creates a scoreboard for gameID and loads its runs.
// tickRate converts stored tick counts to durations.
func NewScoreboardModel(store *storage.Store, gameID, title string, tickRate, width, height int) (ScoreboardModel, error) {
	m := ScoreboardModel{
		gameID:   gameID,
		title:    title,
		tickRate: max(tickRate, 1),
		help:     help.New(),
		keys:     DefaultScoreboardKeyMap(),
		width:    width,
		height:   height,
	}

	if store != nil {
		scores, err := store.TopScores(gameID, maxScores)
		if err != nil {
			return m, err
		}
		stats, err := store.GetGameStats(gameID)
		if err != nil {
			return m, err
		}
		m.scores, m.stats = scores, stats
	}

	m.table = m.createTable()
	return m, nil
}

// createTable builds the run table sized to the current window.
func (m ScoreboardModel) createTable() table.Model {
	dateWidth := min(max(m.width-4-6-10-8-10, 12), 20)
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Coins", Width: 8},
		{Title: "Time", Width: 10},
		{Title: "Date", Width: dateWidth},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(m.rows()),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)), // header, stats, help, margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

func (m ScoreboardModel) rows() []table.Row {
	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Score),
			fmt.Sprintf("%d", s.Coins),
			formatTicks(s.Ticks, m.tickRate),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

// formatTicks renders a tick count as m:ss at the given rate.
func formatTicks(ticks, tickRate int) string {
	d := time.Duration(ticks) * time.Second / time.Duration(tickRate)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

var titleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("229"))

var statsStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

var boxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240")).
	Padding(0, 1)

var emptyStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("241")).
	Italic(true).
	Padding(2, 4)

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(centerText(titleStyle.Render("HIGH SCORES - "+m.title), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(statsStyle.Render(m.statsLine()), m.width))
	b.WriteString("\n\n")

	content := m.table.View()
	if len(m.scores) == 0 {
		content = emptyStyle.Render("No runs recorded yet.\nPlay a game to set a high score!")
	}
	b.WriteString(centerText(boxStyle.Render(content), m.width))

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return "Runs: 0"
	}
	return fmt.Sprintf("Runs: %d  Best: %d  Avg: %.0f  Last: %s",
		m.stats.GamesCount, m.stats.HighScore, m.stats.AvgScore,
		m.stats.LastPlayed.Format("2006-01-02"))
}

// centerText centers every line of s within width.
func centerText(s string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}

// RunScoreboard shows the scoreboard for one game until the user quits.
func RunScoreboard(store *storage.Store, gameID, title string, tickRate, width, height int) error {
	model, err := NewScoreboardModel(store, gameID, title, tickRate, width, height)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
