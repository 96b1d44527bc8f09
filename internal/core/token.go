package core

// tokenKind discriminates the intermediate token variants produced while a
// line is resolved. Hold and shift tokens are the only kinds the collapse
// stage accepts as input; absorb and fuse tokens only ever appear in its
// output.
type tokenKind uint8

const (
	// tokenHold is an occupied tile that has neither moved nor merged.
	tokenHold tokenKind = iota
	// tokenShift is an occupied tile that changed cells without merging.
	tokenShift
	// tokenAbsorb is a stationary tile that swallowed one incoming tile of
	// equal value. It carries the incoming tile's index: that is the tile
	// the renderer animates.
	tokenAbsorb
	// tokenFuse is the fusion of two tiles that both moved into the same
	// cell.
	tokenFuse
)

// token is one tile of a line mid-resolution. src is the tile's index in
// the original line (for tokenAbsorb, the incoming tile's index); src2 is
// the second source and is meaningful only for tokenFuse.
type token struct {
	kind  tokenKind
	value int
	src   int
	src2  int
}
