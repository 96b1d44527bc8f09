package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/shift48/internal/storage"
)

// maxScoreboardRows caps how many entries the scoreboard loads.
const maxScoreboardRows = 100

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
	return [][]key.Binding{{k.Up, k.Down, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the high score screen.
type ScoreboardModel struct {
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	stats    *storage.Stats
	quitting bool
}

// NewScoreboardModel loads scores from the store and builds the model.
func NewScoreboardModel(store *storage.Store) (ScoreboardModel, error) {
	entries, err := store.TopScores(maxScoreboardRows)
	if err != nil {
		return ScoreboardModel{}, err
	}
	stats, err := store.GetStats()
	if err != nil {
		return ScoreboardModel{}, err
	}

	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Best tile", Width: 10},
		{Title: "Result", Width: 8},
		{Title: "Date", Width: 17},
	}

	rows := make([]table.Row, 0, len(entries))
	for i, e := range entries {
		result := "lost"
		if e.Won {
			result = "won"
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", e.Score),
			fmt.Sprintf("%d", e.MaxTile),
			result,
			e.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).BorderStyle(lipgloss.NormalBorder()).BorderBottom(true)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	t.SetStyles(styles)

	h := help.New()
	return ScoreboardModel{
		table: t,
		help:  h,
		keys:  DefaultScoreboardKeyMap(),
		stats: stats,
	}, nil
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles key presses and table navigation.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	header := titleStyle.Render("shift48 high scores")
	summary := hudStyle.Render(fmt.Sprintf(
		"games %d  wins %d  best %d  avg %.0f",
		m.stats.GamesCount, m.stats.Wins, m.stats.HighScore, m.stats.AvgScore,
	))

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		summary,
		"",
		m.table.View(),
		"",
		m.help.View(m.keys),
	)
}

// RunScoreboard shows the interactive high score table.
func RunScoreboard(store *storage.Store) error {
	model, err := NewScoreboardModel(store)
	if err != nil {
		return err
	}
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: scoreboard failed: %w", err)
	}
	return nil
}
