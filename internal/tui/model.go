package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/shift48/internal/core"
	"github.com/vovakirdan/shift48/internal/game"
	"github.com/vovakirdan/shift48/internal/storage"
)

// GameModel is the Bubble Tea model for one game session.
type GameModel struct {
	game   *game.Game
	buffer *eventBuffer
	store  *storage.Store
	logger *log.Logger

	keys KeyMap
	help help.Model

	score int
	best  int

	backlog     []boardEvent
	anims       []tileAnim
	pendingPops []popTile
	phase       animPhase
	animTicks   int

	width      int
	height     int
	quitting   bool
	scoreSaved bool
}

// NewGameModel creates a model around an existing session and its event
// buffer. store and logger may be nil.
func NewGameModel(g *game.Game, buffer *eventBuffer, store *storage.Store, logger *log.Logger) *GameModel {
	best := 0
	if store != nil {
		if high, err := store.HighScore(); err == nil {
			best = high
		} else if logger != nil {
			logger.Warn("could not load high score", "error", err)
		}
	}

	h := help.New()
	h.ShowAll = false

	return &GameModel{
		game:   g,
		buffer: buffer,
		store:  store,
		logger: logger,
		keys:   DefaultKeyMap(),
		help:   h,
		best:   best,
	}
}

// Init starts the render loop.
func (m *GameModel) Init() tea.Cmd {
	return tickCmd()
}

// Update handles messages and updates the model state.
func (m *GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey maps key presses to game actions.
func (m *GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.saveScoreOnce()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Restart):
		if m.game.Status() != game.StatusPlaying {
			m.saveScoreOnce()
			m.game.Reset()
			m.scoreSaved = false
		}
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.submit(core.DirUp)
	case key.Matches(msg, m.keys.Down):
		m.submit(core.DirDown)
	case key.Matches(msg, m.keys.Left):
		m.submit(core.DirLeft)
	case key.Matches(msg, m.keys.Right):
		m.submit(core.DirRight)
	}
	return m, nil
}

// submit queues a move. Completion is observed through the event buffer;
// a dropped or ineffective request simply produces no events.
func (m *GameModel) submit(dir core.Direction) {
	m.game.SubmitMove(dir, nil)
}

// handleTick drains buffered board events and advances animations.
func (m *GameModel) handleTick() (tea.Model, tea.Cmd) {
	for _, e := range m.buffer.Drain() {
		if e.kind == evScore {
			m.score = e.score
			if m.score > m.best {
				m.best = m.score
			}
			continue
		}
		m.backlog = append(m.backlog, e)
	}

	if !m.animating() && len(m.backlog) > 0 {
		m.startSlide(m.backlog)
		m.backlog = m.backlog[:0]
	}

	m.advanceAnimation()

	if m.game.Status() != game.StatusPlaying {
		m.saveScoreOnce()
	}

	if m.quitting {
		return m, nil
	}
	return m, tickCmd()
}

// saveScoreOnce persists the finished game, at most once per session.
func (m *GameModel) saveScoreOnce() {
	if m.scoreSaved || m.store == nil {
		return
	}
	snap := m.game.Snapshot()
	if snap.Status == game.StatusPlaying {
		return
	}
	if _, err := m.store.SaveScore(snap.Score, snap.MaxTile, snap.Status == game.StatusWon); err != nil {
		if m.logger != nil {
			m.logger.Warn("could not save score", "error", err)
		}
		return
	}
	m.scoreSaved = true
}
