package engine

// LegalMoves returns the destinations the piece on from may move to without leaving its
// own king in check. An empty square has no moves.
func (b *Board) LegalMoves(from *Square) []*Square {
	if from == nil || from.piece == nil {
		return nil
	}
	var legal []*Square
	for _, to := range b.pseudoMoves(from, false) {
		if b.leavesKingSafe(from, to) {
			legal = append(legal, to)
		}
	}
	return legal
}

func (b *Board) LegalMovesAt(r Rank, f File) ([]*Square, error) {
	sq, err := b.SquareAt(r, f)
	if err != nil {
		return nil, err
	}
	if sq.piece == nil {
		return nil, &MoveError{From: sq.String(), Err: ErrEmptySquare}
	}
	return b.LegalMoves(sq), nil
}

// leavesKingSafe plays from-to, tests the mover's king and takes the move back.
func (b *Board) leavesKingSafe(from, to *Square) bool {
	mover := from.piece.Color
	m := b.apply(from, to)
	defer b.undo(m)
	return !b.InCheck(mover)
}

// InCheck reports whether the king of color c is attacked. A side without a king is
// never in check.
func (b *Board) InCheck(c Color) bool {
	king := b.kingSquare(c)
	if king == nil {
		return false
	}
	return b.SquareAttacked(king, c)
}

// SquareAttacked reports whether any piece of defending's opponent attacks sq.
func (b *Board) SquareAttacked(sq *Square, defending Color) bool {
	attacker := defending.Opponent()
	for i := range b.squares {
		from := &b.squares[i]
		if from.piece == nil || from.piece.Color != attacker {
			continue
		}
		for _, target := range b.attacks(from) {
			if target == sq {
				return true
			}
		}
	}
	return false
}

// attacks is the set of squares the piece on from threatens. Pawns threaten their two
// forward diagonals whether or not anything stands there; every other kind threatens its
// shallow pseudo-legal destinations.
func (b *Board) attacks(from *Square) []*Square {
	p := from.piece
	if p.Kind != Pawn {
		return b.pseudoMoves(from, true)
	}
	var out []*Square
	for _, side := range []int{-1, 1} {
		if target := b.offset(from, side, p.Color.Direction()); target != nil {
			out = append(out, target)
		}
	}
	return out
}
