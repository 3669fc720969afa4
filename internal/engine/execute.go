package engine

import "slices"

// Move records one executed move with everything needed to take it back.
type Move struct {
	Piece *Piece
	From  *Square
	To    *Square

	// Captured stood on CapturedOn, which differs from To only for en passant.
	Captured   *Piece
	CapturedOn *Square

	// RookFrom and RookTo are set when the move castled.
	RookFrom *Square
	RookTo   *Square

	moverFlags pieceFlags
	rookFlags  pieceFlags
	moveCount  int
}

func (m Move) EnPassant() bool {
	return m.Captured != nil && m.CapturedOn != m.To
}

func (m Move) Castled() bool {
	return m.RookFrom != nil
}

// MovePiece plays from-to when it is among LegalMoves(from). On error the board is left
// untouched. The side to move is not checked and the turn is not changed; callers pair
// it with ChangeTurn.
func (b *Board) MovePiece(from, to *Square) (Move, error) {
	if from == nil || to == nil {
		return Move{}, ErrInvalidCoordinate
	}
	if from.piece == nil {
		return Move{}, &MoveError{From: from.String(), To: to.String(), Err: ErrEmptySquare}
	}
	if !slices.Contains(b.LegalMoves(from), to) {
		return Move{}, &MoveError{From: from.String(), To: to.String(), Err: ErrIllegalMove}
	}
	return b.apply(from, to), nil
}

// apply performs from-to without validation.
func (b *Board) apply(from, to *Square) Move {
	p := from.piece
	m := Move{
		Piece:      p,
		From:       from,
		To:         to,
		moverFlags: p.flags(),
		moveCount:  b.moveCount,
	}
	if to.piece != nil {
		m.Captured = to.piece
		m.CapturedOn = to
	}
	dr := int(to.rank) - int(from.rank)

	switch p.Kind {
	case Pawn:
		if dr != 0 && to.piece == nil {
			victim := b.at(to.rank, from.file)
			m.Captured = victim.piece
			m.CapturedOn = victim
			victim.piece = nil
		}
	case King:
		if dr == 2 || dr == -2 {
			side := dr / 2
			m.RookFrom = b.at(cornerRank(side), from.file)
			m.RookTo = b.offset(to, -side, 0)
			rook := m.RookFrom.piece
			m.rookFlags = rook.flags()
			rook.markMoved(b.moveCount, 0)
			m.RookFrom.piece = nil
			m.RookTo.piece = rook
		}
	}

	p.markMoved(b.moveCount, abs(int(to.file)-int(from.file)))
	from.piece = nil
	to.piece = p
	b.moveCount++
	return m
}

// undo reverses a move made by apply. Moves must be undone in reverse order.
func (b *Board) undo(m Move) {
	m.To.piece = nil
	m.From.piece = m.Piece
	m.Piece.restore(m.moverFlags)
	if m.Captured != nil {
		m.CapturedOn.piece = m.Captured
	}
	if m.RookFrom != nil {
		rook := m.RookTo.piece
		m.RookTo.piece = nil
		m.RookFrom.piece = rook
		rook.restore(m.rookFlags)
	}
	b.moveCount = m.moveCount
}
