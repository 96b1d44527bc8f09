package game

import (
	"math/rand"
	"sync"
	"time"

	"github.com/vovakirdan/shift48/internal/core"
)

// Status is the session state.
type Status uint8

const (
	StatusPlaying Status = iota
	StatusWon
	StatusLost
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// CellPicker chooses the cell for a freshly spawned tile. It returns false
// when no empty cell is available. The default picker samples uniformly
// over all empty cells.
type CellPicker func(b *Board) (core.Coord, bool)

// Options configures a game session. All fields are fixed at construction.
// Zero fields take defaults.
type Options struct {
	Dimension     int           // board size N, default 4
	WinTile       int           // tile value that wins the game, default 2048
	QueueCapacity int           // pending move bound, default 4
	MoveDelay     time.Duration // pacing delay after an effective move, default 250ms
	Spawn4Prob    float64       // probability a spawned tile is a 4, default 0.10
	StartTiles    int           // tiles spawned on reset, default 2
	Seed          int64         // RNG seed, 0 means current time
	Listener      Listener      // mutation listener, default NopListener
	Scheduler     Scheduler     // pacing scheduler, default timer-backed
	Picker        CellPicker    // spawn cell policy, default uniform
}

func (o *Options) applyDefaults() {
	if o.Dimension <= 0 {
		o.Dimension = 4
	}
	if o.WinTile <= 0 {
		o.WinTile = 2048
	}
	if o.QueueCapacity <= 0 {
		o.QueueCapacity = 4
	}
	if o.MoveDelay <= 0 {
		o.MoveDelay = 250 * time.Millisecond
	}
	if o.Spawn4Prob <= 0 {
		o.Spawn4Prob = 0.10
	}
	if o.StartTiles <= 0 {
		o.StartTiles = 2
	}
	if o.Seed == 0 {
		o.Seed = time.Now().UnixNano()
	}
	if o.Listener == nil {
		o.Listener = NopListener{}
	}
}

// Game is a 2048 session: the board and score, the move queue that paces
// mutations, and the listener that observes them. Board and score are
// mutated only from within a queue processing cycle; all public accessors
// take consistent snapshots.
type Game struct {
	mu       sync.Mutex
	board    *Board
	score    int
	status   Status
	winTile  int
	spawn4   float64
	starts   int
	rng      *rand.Rand
	listener Listener
	picker   CellPicker
	queue    *MoveQueue
}

// New creates a session and spawns the initial tiles.
func New(opts Options) *Game {
	opts.applyDefaults()

	g := &Game{
		board:    NewBoard(opts.Dimension),
		winTile:  opts.WinTile,
		spawn4:   opts.Spawn4Prob,
		starts:   opts.StartTiles,
		rng:      rand.New(rand.NewSource(opts.Seed)),
		listener: opts.Listener,
		picker:   opts.Picker,
	}
	if g.picker == nil {
		g.picker = g.uniformPick
	}
	g.queue = NewMoveQueue(opts.QueueCapacity, opts.MoveDelay, opts.Scheduler, g.step)

	g.Reset()
	return g
}

// SubmitMove queues a move. done, if non-nil, is called exactly once with
// whether the move changed the board, unless the queue was full and the
// request dropped. Effective moves are paced by the configured delay;
// ineffective ones complete back to back.
func (g *Game) SubmitMove(dir core.Direction, done func(changed bool)) {
	g.queue.Enqueue(dir, done)
}

// Reset clears the board and score and spawns the starting tiles.
func (g *Game) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.board.Clear()
	g.score = 0
	g.status = StatusPlaying
	g.listener.ScoreChanged(0)

	for i := 0; i < g.starts; i++ {
		g.spawnLocked()
	}
}

// Score returns the cumulative score.
func (g *Game) Score() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.score
}

// Status returns the session state.
func (g *Game) Status() Status {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.status
}

// Dim returns the board dimension.
func (g *Game) Dim() int {
	return g.board.Dim()
}

// Snapshot captures the board, score and status in one consistent view.
type Snapshot struct {
	Board   [][]core.Tile
	Score   int
	MaxTile int
	Status  Status
}

// Snapshot returns a consistent copy of the full session state.
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return Snapshot{
		Board:   g.board.Snapshot(),
		Score:   g.score,
		MaxTile: g.board.MaxTile(),
		Status:  g.status,
	}
}

// step is one full board mutation, invoked only by the move queue: apply
// the direction to every line, then on change spawn a tile and re-evaluate
// win and loss.
func (g *Game) step(dir core.Direction) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.status != StatusPlaying {
		return false
	}

	changed := g.applyDirectionLocked(dir)
	if !changed {
		return false
	}

	if g.board.MaxTile() >= g.winTile {
		g.status = StatusWon
		return true
	}

	g.spawnLocked()

	if !g.board.CanMove() {
		g.status = StatusLost
	}
	return true
}

// applyDirectionLocked resolves and applies every line of the board for one
// direction. This is the only place board cells and score change. Returns
// whether any line produced at least one order.
func (g *Game) applyDirectionLocked(dir core.Direction) bool {
	dim := g.board.Dim()
	changed := false

	line := make([]core.Tile, dim)
	for i := 0; i < dim; i++ {
		coords := dir.LineCoords(dim, i)
		for j, c := range coords {
			line[j] = g.board.At(c)
		}

		orders := core.Resolve(line)
		if len(orders) > 0 {
			changed = true
		}

		for _, o := range orders {
			dst := coords[o.Dst]
			switch o.Kind {
			case core.OrderMove:
				g.board.set(coords[o.Src], core.EmptyTile())
				g.board.set(dst, core.NewTile(o.Value))
				g.listener.TileMoved(coords[o.Src], dst, o.Value)
			case core.OrderMergePair:
				g.board.set(coords[o.Src], core.EmptyTile())
				g.board.set(coords[o.Src2], core.EmptyTile())
				g.board.set(dst, core.NewTile(o.Value))
				g.listener.TilesMerged(coords[o.Src], coords[o.Src2], dst, o.Value)
			}
			if o.IsMerge() {
				g.score += o.Value
				g.listener.ScoreChanged(g.score)
			}
		}
	}
	return changed
}

// spawnLocked inserts a new tile into an empty cell chosen by the picker.
// Writing into an occupied cell is refused rather than treated as an error.
func (g *Game) spawnLocked() {
	cell, ok := g.picker(g.board)
	if !ok {
		return
	}
	if !g.board.At(cell).Empty() {
		return
	}

	value := 2
	if g.rng.Float64() < g.spawn4 {
		value = 4
	}
	g.board.set(cell, core.NewTile(value))
	g.listener.TileInserted(cell, value)
}

// uniformPick chooses uniformly over every empty cell.
func (g *Game) uniformPick(b *Board) (core.Coord, bool) {
	empty := b.EmptyCells()
	if len(empty) == 0 {
		return core.Coord{}, false
	}
	return empty[g.rng.Intn(len(empty))], true
}
