package tui

import (
	"sync"

	"github.com/vovakirdan/shift48/internal/core"
	"github.com/vovakirdan/shift48/internal/game"
)

// eventKind discriminates the buffered board events.
type eventKind uint8

const (
	evMove eventKind = iota
	evMerge
	evInsert
	evScore
)

// boardEvent is one listener callback, buffered for the render loop.
type boardEvent struct {
	kind  eventKind
	from  core.Coord
	from2 core.Coord
	to    core.Coord
	value int
	score int
}

// eventBuffer implements game.Listener. Callbacks arrive on the move
// queue's goroutine; the render loop drains them once per tick.
type eventBuffer struct {
	mu     sync.Mutex
	events []boardEvent
}

func newEventBuffer() *eventBuffer {
	return &eventBuffer{}
}

func (b *eventBuffer) ScoreChanged(score int) {
	b.push(boardEvent{kind: evScore, score: score})
}

func (b *eventBuffer) TileMoved(from, to core.Coord, value int) {
	b.push(boardEvent{kind: evMove, from: from, to: to, value: value})
}

func (b *eventBuffer) TilesMerged(from1, from2, to core.Coord, value int) {
	b.push(boardEvent{kind: evMerge, from: from1, from2: from2, to: to, value: value})
}

func (b *eventBuffer) TileInserted(at core.Coord, value int) {
	b.push(boardEvent{kind: evInsert, to: at, value: value})
}

func (b *eventBuffer) push(e boardEvent) {
	b.mu.Lock()
	b.events = append(b.events, e)
	b.mu.Unlock()
}

// Drain returns and clears the buffered events.
func (b *eventBuffer) Drain() []boardEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	events := b.events
	b.events = nil
	return events
}

var _ game.Listener = (*eventBuffer)(nil)
