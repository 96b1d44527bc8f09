package tui

import "github.com/vovakirdan/shift48/internal/core"

// Animation constants
const (
	slideAnimationTicks = 8 // ~133ms at 60fps
	popAnimationTicks   = 6 // ~100ms at 60fps
)

// animPhase represents the current phase of animation.
type animPhase uint8

const (
	phaseNone animPhase = iota
	phaseSlide
	phasePop
)

// tileAnim is one tile sliding from one cell to another.
type tileAnim struct {
	value    int
	from     core.Coord
	to       core.Coord
	progress float64 // 0.0 → 1.0
	merged   bool
}

// popTile is a freshly inserted tile waiting to pop in after the slide.
type popTile struct {
	at    core.Coord
	value int
}

// easeOutQuad provides smooth deceleration.
func easeOutQuad(t float64) float64 {
	return t * (2 - t)
}

// cell returns the board cell the animated tile currently occupies,
// interpolated at cell resolution.
func (a tileAnim) cell() core.Coord {
	t := easeOutQuad(a.progress)
	row := float64(a.from.Row) + (float64(a.to.Row)-float64(a.from.Row))*t
	col := float64(a.from.Col) + (float64(a.to.Col)-float64(a.from.Col))*t
	return core.Coord{Row: int(row + 0.5), Col: int(col + 0.5)}
}

// startSlide begins the slide phase from a batch of move and merge events.
// Insert events are stashed and popped in once the slide lands.
func (m *GameModel) startSlide(events []boardEvent) {
	m.anims = m.anims[:0]
	m.pendingPops = m.pendingPops[:0]

	for _, e := range events {
		switch e.kind {
		case evMove:
			m.anims = append(m.anims, tileAnim{value: e.value, from: e.from, to: e.to})
		case evMerge:
			m.anims = append(m.anims,
				tileAnim{value: e.value, from: e.from, to: e.to, merged: true},
				tileAnim{value: e.value, from: e.from2, to: e.to, merged: true},
			)
		case evInsert:
			m.pendingPops = append(m.pendingPops, popTile{at: e.to, value: e.value})
		}
	}

	if len(m.anims) == 0 {
		// Nothing slid; pop immediately if there is anything to pop.
		m.startPop()
		return
	}
	m.phase = phaseSlide
	m.animTicks = 0
}

// startPop begins the pop phase for pending inserted tiles.
func (m *GameModel) startPop() {
	if len(m.pendingPops) == 0 {
		m.phase = phaseNone
		return
	}
	m.phase = phasePop
	m.animTicks = 0
}

// advanceAnimation moves the animation state machine one tick forward.
func (m *GameModel) advanceAnimation() {
	switch m.phase {
	case phaseSlide:
		m.animTicks++
		progress := float64(m.animTicks) / float64(slideAnimationTicks)
		if progress > 1.0 {
			progress = 1.0
		}
		for i := range m.anims {
			m.anims[i].progress = progress
		}
		if m.animTicks >= slideAnimationTicks {
			m.anims = m.anims[:0]
			m.startPop()
		}
	case phasePop:
		m.animTicks++
		if m.animTicks >= popAnimationTicks {
			m.pendingPops = m.pendingPops[:0]
			m.phase = phaseNone
		}
	}
}

// animating reports whether an animation phase is in progress.
func (m *GameModel) animating() bool {
	return m.phase != phaseNone
}
