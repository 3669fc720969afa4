package engine

type direction struct {
	dr, df int
}

var (
	rookDirs   = []direction{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	bishopDirs = []direction{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	knightDirs = []direction{{2, 1}, {2, -1}, {-2, 1}, {-2, -1}, {1, 2}, {1, -2}, {-1, 2}, {-1, -2}}
	kingDirs   = []direction{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
)

// pseudoMoves returns the destinations the piece on from can reach by its geometry,
// ignoring whether the move exposes its own king. shallow leaves out castling.
func (b *Board) pseudoMoves(from *Square, shallow bool) []*Square {
	p := from.piece
	if p == nil {
		return nil
	}
	switch p.Kind {
	case Pawn:
		return b.pawnMoves(from, p)
	case Knight:
		return b.stepMoves(from, p, knightDirs)
	case Bishop:
		return b.rayMoves(from, p, bishopDirs)
	case Rook:
		return b.rayMoves(from, p, rookDirs)
	case Queen:
		return append(b.rayMoves(from, p, bishopDirs), b.rayMoves(from, p, rookDirs)...)
	case King:
		moves := b.stepMoves(from, p, kingDirs)
		if !shallow {
			moves = append(moves, b.castlingMoves(from, p)...)
		}
		return moves
	}
	return nil
}

// pawnStartFile is the file a pawn of color c starts on and may double step from.
func pawnStartFile(c Color) File {
	if c == White {
		return 2
	}
	return 7
}

func (b *Board) pawnMoves(from *Square, p *Piece) []*Square {
	var moves []*Square
	dir := p.Color.Direction()

	// forward one, then two from the start file
	if one := b.offset(from, 0, dir); one != nil && one.piece == nil {
		moves = append(moves, one)
		if p.hasNotMoved && from.file == pawnStartFile(p.Color) {
			if two := b.offset(from, 0, 2*dir); two != nil && two.piece == nil {
				moves = append(moves, two)
			}
		}
	}

	for _, side := range []int{-1, 1} {
		target := b.offset(from, side, dir)
		if target == nil {
			continue
		}
		if target.piece != nil {
			if target.piece.Color != p.Color {
				moves = append(moves, target)
			}
			continue
		}
		// en passant
		beside := b.offset(from, side, 0)
		if victim := beside.piece; victim != nil && victim.Color != p.Color && victim.justDoubleStepped(b.moveCount) {
			moves = append(moves, target)
		}
	}
	return moves
}

// stepMoves handles the single-step kinds: knight and king.
func (b *Board) stepMoves(from *Square, p *Piece, dirs []direction) []*Square {
	var moves []*Square
	for _, d := range dirs {
		target := b.offset(from, d.dr, d.df)
		if target != nil && (target.piece == nil || target.piece.Color != p.Color) {
			moves = append(moves, target)
		}
	}
	return moves
}

// rayMoves casts each direction until the edge, stopping before a friendly piece and on
// an enemy one.
func (b *Board) rayMoves(from *Square, p *Piece, dirs []direction) []*Square {
	var moves []*Square
	for _, d := range dirs {
		for target := b.offset(from, d.dr, d.df); target != nil; target = b.offset(target, d.dr, d.df) {
			if target.piece == nil {
				moves = append(moves, target)
				continue
			}
			if target.piece.Color != p.Color {
				moves = append(moves, target)
			}
			break
		}
	}
	return moves
}

func (b *Board) castlingMoves(from *Square, king *Piece) []*Square {
	if !king.hasNotMoved {
		return nil
	}
	var moves []*Square
	for _, side := range []int{1, -1} {
		if to := b.castleTarget(from, king, side); to != nil {
			moves = append(moves, to)
		}
	}
	return moves
}

// cornerRank is the rank of the rook a king castles with on the given side.
func cornerRank(side int) Rank {
	if side > 0 {
		return MaxRank
	}
	return MinRank
}

// castleTarget returns the king's destination when castling toward side (+1 kingside,
// -1 queenside) is allowed, otherwise nil.
func (b *Board) castleTarget(from *Square, king *Piece, side int) *Square {
	corner := b.at(cornerRank(side), from.file)
	if abs(int(corner.rank)-int(from.rank)) < 3 {
		return nil
	}
	rook := corner.piece
	if rook == nil || rook.Kind != Rook || rook.Color != king.Color || !rook.hasNotMoved {
		return nil
	}
	for sq := b.offset(from, side, 0); sq != corner; sq = b.offset(sq, side, 0) {
		if sq.piece != nil {
			return nil
		}
	}
	pass := b.offset(from, side, 0)
	to := b.offset(from, 2*side, 0)
	for _, sq := range []*Square{from, pass, to} {
		if b.SquareAttacked(sq, king.Color) {
			return nil
		}
	}
	return to
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
