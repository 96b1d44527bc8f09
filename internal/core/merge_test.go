package core

import (
	"math/rand"
	"testing"
)

// line builds a tile line from values, with 0 meaning an empty cell.
func line(values ...int) []Tile {
	tiles := make([]Tile, len(values))
	for i, v := range values {
		if v != 0 {
			tiles[i] = NewTile(v)
		}
	}
	return tiles
}

// applyOrders replays move orders onto a copy of the line. Sources are
// always strictly greater than destinations, so clear-then-write is safe.
func applyOrders(tiles []Tile, orders []MoveOrder) []Tile {
	out := make([]Tile, len(tiles))
	copy(out, tiles)
	for _, o := range orders {
		out[o.Src] = EmptyTile()
		if o.Kind == OrderMergePair {
			out[o.Src2] = EmptyTile()
		}
		out[o.Dst] = NewTile(o.Value)
	}
	return out
}

func valuesOf(tiles []Tile) []int {
	values := make([]int, len(tiles))
	for i, t := range tiles {
		values[i] = t.Value()
	}
	return values
}

func equalValues(a []Tile, want []int) bool {
	if len(a) != len(want) {
		return false
	}
	for i := range a {
		if a[i].Value() != want[i] {
			return false
		}
	}
	return true
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name   string
		input  []int
		orders []MoveOrder
		final  []int
		score  int
	}{
		{
			name:  "merge pair ahead of stationary tile",
			input: []int{2, 2, 4, 0},
			orders: []MoveOrder{
				{Kind: OrderMove, Src: 1, Dst: 0, Value: 4, Merged: true},
				{Kind: OrderMove, Src: 2, Dst: 1, Value: 4},
			},
			final: []int{4, 4, 0, 0},
			score: 4,
		},
		{
			name:  "single tile slides to the edge",
			input: []int{0, 0, 0, 2},
			orders: []MoveOrder{
				{Kind: OrderMove, Src: 3, Dst: 0, Value: 2},
			},
			final: []int{2, 0, 0, 0},
			score: 0,
		},
		{
			name:  "four equal tiles merge pairwise",
			input: []int{4, 4, 4, 4},
			orders: []MoveOrder{
				{Kind: OrderMove, Src: 1, Dst: 0, Value: 8, Merged: true},
				{Kind: OrderMergePair, Src: 2, Src2: 3, Dst: 1, Value: 8},
			},
			final: []int{8, 8, 0, 0},
			score: 16,
		},
		{
			name:  "merge across a gap",
			input: []int{2, 0, 2, 0},
			orders: []MoveOrder{
				{Kind: OrderMove, Src: 2, Dst: 0, Value: 4, Merged: true},
			},
			final: []int{4, 0, 0, 0},
			score: 4,
		},
		{
			name:  "three equal tiles leave a leftover",
			input: []int{2, 2, 2, 0},
			orders: []MoveOrder{
				{Kind: OrderMove, Src: 1, Dst: 0, Value: 4, Merged: true},
				{Kind: OrderMove, Src: 2, Dst: 1, Value: 2},
			},
			final: []int{4, 2, 0, 0},
			score: 4,
		},
		{
			name:  "moving pair fuses behind a slide",
			input: []int{0, 4, 2, 2},
			orders: []MoveOrder{
				{Kind: OrderMove, Src: 1, Dst: 0, Value: 4},
				{Kind: OrderMergePair, Src: 2, Src2: 3, Dst: 1, Value: 4},
			},
			final: []int{4, 4, 0, 0},
			score: 4,
		},
		{
			name:   "settled line yields no orders",
			input:  []int{4, 2, 0, 0},
			orders: []MoveOrder{},
			final:  []int{4, 2, 0, 0},
			score:  0,
		},
		{
			name:   "no adjacent equal values yields no orders",
			input:  []int{2, 4, 8, 16},
			orders: []MoveOrder{},
			final:  []int{2, 4, 8, 16},
			score:  0,
		},
		{
			name:   "empty line yields no orders",
			input:  []int{0, 0, 0, 0},
			orders: []MoveOrder{},
			final:  []int{0, 0, 0, 0},
			score:  0,
		},
		{
			name:  "stationary run shifts after a leading merge",
			input: []int{2, 2, 4, 8},
			orders: []MoveOrder{
				{Kind: OrderMove, Src: 1, Dst: 0, Value: 4, Merged: true},
				{Kind: OrderMove, Src: 2, Dst: 1, Value: 4},
				{Kind: OrderMove, Src: 3, Dst: 2, Value: 8},
			},
			final: []int{4, 4, 8, 0},
			score: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := line(tt.input...)
			orders := Resolve(input)

			if len(orders) != len(tt.orders) {
				t.Fatalf("Resolve(%v) = %v, want %v", tt.input, orders, tt.orders)
			}
			for i := range orders {
				if orders[i] != tt.orders[i] {
					t.Errorf("order %d = %v, want %v", i, orders[i], tt.orders[i])
				}
			}

			final := applyOrders(input, orders)
			if !equalValues(final, tt.final) {
				t.Errorf("final line = %v, want %v", valuesOf(final), tt.final)
			}

			score := 0
			for _, o := range orders {
				if o.IsMerge() {
					score += o.Value
				}
			}
			if score != tt.score {
				t.Errorf("score delta = %d, want %d", score, tt.score)
			}
		})
	}
}

func TestResolveLongerLine(t *testing.T) {
	// Merge semantics are independent of the line length.
	input := line(2, 2, 2, 2, 2, 0)
	orders := Resolve(input)

	final := applyOrders(input, orders)
	want := []int{4, 4, 2, 0, 0, 0}
	if !equalValues(final, want) {
		t.Errorf("final line = %v, want %v", valuesOf(final), want)
	}
}

// TestResolveInvariants replays randomly generated lines and checks the
// structural guarantees every resolution must satisfy: total value is
// conserved, destinations strictly increase, and no source tile feeds more
// than one order.
func TestResolveInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	values := []int{0, 0, 2, 2, 4, 8, 16}

	for trial := 0; trial < 500; trial++ {
		input := make([]Tile, 4)
		sum := 0
		for i := range input {
			v := values[rng.Intn(len(values))]
			if v != 0 {
				input[i] = NewTile(v)
				sum += v
			}
		}

		orders := Resolve(input)
		final := applyOrders(input, orders)

		finalSum := 0
		for _, tile := range final {
			finalSum += tile.Value()
		}
		if finalSum != sum {
			t.Fatalf("line %v: value not conserved: got %d, want %d", valuesOf(input), finalSum, sum)
		}

		lastDst := -1
		seenSrc := make(map[int]bool)
		for _, o := range orders {
			if o.Dst <= lastDst {
				t.Fatalf("line %v: destinations not strictly increasing: %v", valuesOf(input), orders)
			}
			lastDst = o.Dst

			if seenSrc[o.Src] {
				t.Fatalf("line %v: source %d used twice: %v", valuesOf(input), o.Src, orders)
			}
			seenSrc[o.Src] = true
			if o.Kind == OrderMergePair {
				if seenSrc[o.Src2] {
					t.Fatalf("line %v: source %d used twice: %v", valuesOf(input), o.Src2, orders)
				}
				seenSrc[o.Src2] = true
			}

			if o.Src <= o.Dst {
				t.Fatalf("line %v: order %v does not move towards the edge", valuesOf(input), o)
			}
		}

		// No orders means nothing observable changed.
		if len(orders) == 0 && !equalValues(final, valuesOf(input)) {
			t.Fatalf("line %v: no orders but line changed to %v", valuesOf(input), valuesOf(final))
		}
	}
}
