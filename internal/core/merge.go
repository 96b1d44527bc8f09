package core

// Resolve transforms one line of tiles into the ordered sequence of move
// orders that slides every tile towards index 0 and merges equal neighbours.
// A tile merges at most once per resolution: three equal tiles in a row
// produce one merged pair and one leftover, never a triple merge. An already
// settled line resolves to no orders at all.
//
// Resolution runs in three pure stages: condense drops the gaps, collapse
// pairs up equal neighbours, convert turns the surviving tokens into orders.
func Resolve(line []Tile) []MoveOrder {
	return convert(collapse(condense(line)))
}

// condense walks the line in order, keeps only occupied tiles and re-indexes
// them contiguously from 0. A tile emitted at the position it already
// occupied becomes a hold token; one that had to close a gap becomes a
// shift token.
func condense(line []Tile) []token {
	out := make([]token, 0, len(line))
	for i, t := range line {
		if t.Empty() {
			continue
		}
		kind := tokenShift
		if len(out) == i {
			kind = tokenHold
		}
		out = append(out, token{kind: kind, value: t.Value(), src: i})
	}
	return out
}

// collapse pairs adjacent tokens of equal value into one merged token,
// consuming each token by at most one merge. A hold token is quiescent when
// neither it nor anything before it has been displaced yet: the output is
// still as long as the tokens walked, and its source cell matches its
// position. A quiescent hold absorbing its neighbour keeps its cell, so the
// merged token carries only the incoming tile's index. Any other pairing is
// a fuse of two moving tiles.
//
// A hold token that is no longer quiescent never changed value, but an
// earlier merge shrank the line underneath it; it must be reclassified as a
// shift so the board and the renderer see the relocation.
func collapse(in []token) []token {
	out := make([]token, 0, len(in))
	for i := 0; i < len(in); i++ {
		cur := in[i]
		quiescent := cur.kind == tokenHold && len(out) == i && cur.src == i

		if i+1 < len(in) && in[i+1].value == cur.value {
			next := in[i+1]
			if quiescent {
				out = append(out, token{kind: tokenAbsorb, value: cur.value + next.value, src: next.src})
			} else {
				out = append(out, token{kind: tokenFuse, value: cur.value + next.value, src: cur.src, src2: next.src})
			}
			i++
			continue
		}

		if cur.kind == tokenHold && !quiescent {
			cur.kind = tokenShift
		}
		out = append(out, cur)
	}
	return out
}

// convert maps each surviving token, at its final position, to a move order.
// Hold tokens vanish: nothing observably changed for them.
func convert(tokens []token) []MoveOrder {
	orders := make([]MoveOrder, 0, len(tokens))
	for dst, tk := range tokens {
		switch tk.kind {
		case tokenHold:
			// Stationary and unmerged; no order.
		case tokenShift:
			orders = append(orders, MoveOrder{Kind: OrderMove, Src: tk.src, Dst: dst, Value: tk.value})
		case tokenAbsorb:
			orders = append(orders, MoveOrder{Kind: OrderMove, Src: tk.src, Dst: dst, Value: tk.value, Merged: true})
		case tokenFuse:
			orders = append(orders, MoveOrder{Kind: OrderMergePair, Src: tk.src, Src2: tk.src2, Dst: dst, Value: tk.value})
		}
	}
	return orders
}
