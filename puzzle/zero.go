package puzzle

// SyncZero recomputes the cached zero-tile position from Tiles[ZeroTile].
// Callers that build a Puzzle by writing Tiles/Grid directly (package
// index reconstructs configurations this way) must call SyncZero once
// before using ZeroPos, IsSolved or Move.
func (p *Puzzle) SyncZero() {
	p.zero = p.Tiles[ZeroTile]
}

// SetZeroPos relocates the zero tile to grid position pos by swapping it
// with whatever tile currently occupies pos. Unlike Move, this is not a
// legal slide: pos need not be adjacent to the zero tile's current
// position. It exists for package index, which must place the zero tile
// at the canonical representative of its equivalence class after
// reconstructing an otherwise arbitrary configuration.
func (p *Puzzle) SetZeroPos(pos int) {
	if int(p.zero) == pos {
		return
	}
	t := p.Grid[pos]
	p.Grid[p.zero] = t
	p.Tiles[t] = p.zero
	p.Grid[pos] = ZeroTile
	p.Tiles[ZeroTile] = uint8(pos)
	p.zero = uint8(pos)
}
