package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/shift48/internal/core"
	"github.com/vovakirdan/shift48/internal/game"
)

const (
	cellWidth  = 7
	cellHeight = 3
)

var (
	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("245"))

	emptyCellStyle = lipgloss.NewStyle().
			Width(cellWidth).
			Height(cellHeight).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(lipgloss.Color("240"))

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	hudStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	wonStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	lostStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	popStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))

	// tileColors maps tile values to background colors, roughly following
	// the classic palette from dim to bright.
	tileColors = map[int]lipgloss.Color{
		2:    lipgloss.Color("252"),
		4:    lipgloss.Color("223"),
		8:    lipgloss.Color("215"),
		16:   lipgloss.Color("209"),
		32:   lipgloss.Color("203"),
		64:   lipgloss.Color("196"),
		128:  lipgloss.Color("227"),
		256:  lipgloss.Color("221"),
		512:  lipgloss.Color("220"),
		1024: lipgloss.Color("214"),
		2048: lipgloss.Color("208"),
	}
)

// tileStyle returns the style for a tile of the given value.
func tileStyle(value int, highlight bool) lipgloss.Style {
	color, ok := tileColors[value]
	if !ok {
		color = lipgloss.Color("129") // beyond 2048
	}
	style := lipgloss.NewStyle().
		Width(cellWidth).
		Height(cellHeight).
		Align(lipgloss.Center, lipgloss.Center).
		Background(color).
		Foreground(lipgloss.Color("235"))
	if highlight {
		style = style.Bold(true)
	}
	return style
}

// renderBoard draws the grid, overlaying in-flight animations on top of the
// settled snapshot: slide-phase tiles are hidden at their destinations and
// drawn at their interpolated cells, pending pops stay hidden until the
// pop phase shows them highlighted.
func (m *GameModel) renderBoard(snap game.Snapshot) string {
	dim := len(snap.Board)

	// Cells hidden from the snapshot while animating.
	hidden := make(map[core.Coord]bool)
	// Animated overlay: cell -> value.
	overlay := make(map[core.Coord]tileAnim)

	if m.phase == phaseSlide {
		for _, a := range m.anims {
			hidden[a.to] = true
		}
		for _, p := range m.pendingPops {
			hidden[p.at] = true
		}
		for _, a := range m.anims {
			overlay[a.cell()] = a
		}
	}

	popping := make(map[core.Coord]bool)
	if m.phase == phasePop {
		for _, p := range m.pendingPops {
			popping[p.at] = true
		}
	}

	rows := make([]string, 0, dim)
	for r := 0; r < dim; r++ {
		cells := make([]string, 0, dim)
		for c := 0; c < dim; c++ {
			coord := core.Coord{Row: r, Col: c}

			if a, ok := overlay[coord]; ok {
				cells = append(cells, tileStyle(a.value, a.merged).Render(fmt.Sprintf("%d", a.value)))
				continue
			}

			tile := snap.Board[r][c]
			if tile.Empty() || hidden[coord] {
				cells = append(cells, emptyCellStyle.Render("·"))
				continue
			}

			if popping[coord] {
				cells = append(cells, tileStyle(tile.Value(), true).Render(popStyle.Render(fmt.Sprintf("%d", tile.Value()))))
				continue
			}
			cells = append(cells, tileStyle(tile.Value(), false).Render(fmt.Sprintf("%d", tile.Value())))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return boardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// renderHUD draws the title and score line.
func (m *GameModel) renderHUD(snap game.Snapshot) string {
	score := m.score
	if snap.Score > score {
		score = snap.Score
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render("shift48"),
		hudStyle.Render(fmt.Sprintf("  score %d  best %d", score, m.best)),
	)
}

// renderStatus draws the win/loss banner, or an empty line while playing.
func (m *GameModel) renderStatus(snap game.Snapshot) string {
	switch snap.Status {
	case game.StatusWon:
		return wonStyle.Render("You win!") + hintStyle.Render("  press r to play again")
	case game.StatusLost:
		return lostStyle.Render("Game over") + hintStyle.Render("  press r to restart")
	default:
		return ""
	}
}

// View renders the full screen.
func (m *GameModel) View() string {
	if m.quitting {
		return ""
	}

	snap := m.game.Snapshot()

	var sb strings.Builder
	sb.WriteString(m.renderHUD(snap))
	sb.WriteString("\n\n")
	sb.WriteString(m.renderBoard(snap))
	sb.WriteString("\n")
	sb.WriteString(m.renderStatus(snap))
	sb.WriteString("\n")
	sb.WriteString(m.help.View(m.keys))

	content := sb.String()
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}
