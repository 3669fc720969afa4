package model

import "github.com/benbeisheim/chessbee-backend/internal/engine"

type PieceType string

const (
	King   PieceType = "king"
	Queen  PieceType = "queen"
	Rook   PieceType = "rook"
	Bishop PieceType = "bishop"
	Knight PieceType = "knight"
	Pawn   PieceType = "pawn"
)

func pieceType(k engine.Kind) PieceType {
	switch k {
	case engine.King:
		return King
	case engine.Queen:
		return Queen
	case engine.Rook:
		return Rook
	case engine.Bishop:
		return Bishop
	case engine.Knight:
		return Knight
	default:
		return Pawn
	}
}

// BoardState is the render view of the board. Board rows run from file 8 down to
// file 1, columns from rank a to rank h.
type BoardState struct {
	Board             [][]*Piece `json:"board"`
	WhiteKingPosition string     `json:"whiteKingPosition"`
	BlackKingPosition string     `json:"blackKingPosition"`
}

type Piece struct {
	Type     PieceType    `json:"type"`
	Color    engine.Color `json:"color"`
	Position string       `json:"position"`
	HasMoved bool         `json:"hasMoved"`
	Value    int          `json:"value"`
}

func newPiece(p *engine.Piece, sq *engine.Square) Piece {
	return Piece{
		Type:     pieceType(p.Kind),
		Color:    p.Color,
		Position: sq.String(),
		HasMoved: p.HasMoved(),
		Value:    p.Kind.Value(),
	}
}

func newBoardState(b *engine.Board) *BoardState {
	state := &BoardState{Board: make([][]*Piece, 8)}
	for i := range state.Board {
		state.Board[i] = make([]*Piece, 8)
	}
	for _, sq := range b.Squares() {
		p := sq.Piece()
		if p == nil {
			continue
		}
		view := newPiece(p, sq)
		state.Board[int(engine.MaxFile-sq.File())][int(sq.Rank()-engine.MinRank)] = &view
		if p.Kind == engine.King {
			switch p.Color {
			case engine.White:
				state.WhiteKingPosition = sq.String()
			case engine.Black:
				state.BlackKingPosition = sq.String()
			}
		}
	}
	return state
}
