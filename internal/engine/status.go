package engine

import "fmt"

type GameStatus uint8

const (
	InProgress GameStatus = iota
	Checkmate
	Stalemate
)

func (s GameStatus) String() string {
	switch s {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return "in_progress"
	}
}

func (s GameStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *GameStatus) UnmarshalText(text []byte) error {
	switch string(text) {
	case "in_progress":
		*s = InProgress
	case "checkmate":
		*s = Checkmate
	case "stalemate":
		*s = Stalemate
	default:
		return fmt.Errorf("%q: %w", text, ErrInvalidStatus)
	}
	return nil
}

// Status evaluates the position for the side to move. It is recomputed on every call.
func (b *Board) Status() GameStatus {
	side := b.turn
	for i := range b.squares {
		sq := &b.squares[i]
		if sq.piece != nil && sq.piece.Color == side && len(b.LegalMoves(sq)) > 0 {
			return InProgress
		}
	}
	if b.InCheck(side) {
		return Checkmate
	}
	return Stalemate
}
