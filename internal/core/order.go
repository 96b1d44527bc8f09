package core

import "fmt"

// OrderKind discriminates the MoveOrder variants.
type OrderKind uint8

const (
	// OrderMove relocates a single tile. If Merged is set, the tile landed
	// on a stationary tile of equal value and Value is the merged sum.
	OrderMove OrderKind = iota
	// OrderMergePair moves two tiles into the same destination cell,
	// producing one tile holding their sum.
	OrderMergePair
)

// MoveOrder is one step of a resolved line: a tile relocation or a two-tile
// merge. Src, Src2 and Dst index into the line that was resolved, with
// index 0 at the leading edge of the move. For a given line the orders are
// returned with strictly increasing Dst, and every source index appears in
// at most one order.
type MoveOrder struct {
	Kind   OrderKind
	Src    int
	Src2   int // second source, OrderMergePair only
	Dst    int
	Value  int  // value written at Dst
	Merged bool // OrderMove only: destination already held an equal tile
}

// IsMerge reports whether applying the order combines two tiles, and thus
// scores the merged value.
func (o MoveOrder) IsMerge() bool {
	return o.Kind == OrderMergePair || o.Merged
}

// String returns a compact debug representation.
func (o MoveOrder) String() string {
	if o.Kind == OrderMergePair {
		return fmt.Sprintf("merge(%d+%d->%d)=%d", o.Src, o.Src2, o.Dst, o.Value)
	}
	if o.Merged {
		return fmt.Sprintf("merge(%d->%d)=%d", o.Src, o.Dst, o.Value)
	}
	return fmt.Sprintf("move(%d->%d)=%d", o.Src, o.Dst, o.Value)
}
