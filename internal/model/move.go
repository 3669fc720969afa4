package model

import "github.com/benbeisheim/chessbee-backend/internal/engine"

// WSMove is a move request from the board client, in square names such as "e2".
type WSMove struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type CastleRookMove struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type Ply struct {
	Piece          Piece           `json:"piece"`
	From           string          `json:"from"`
	To             string          `json:"to"`
	CapturedPiece  *Piece          `json:"capturedPiece"`
	CastleRookMove *CastleRookMove `json:"castleRookMove"`
	EnPassant      bool            `json:"enPassant"`
	MoveIndex      int             `json:"moveIndex"`
}

// Move pairs White's ply with Black's reply. BlackPly is nil until Black has moved.
type Move struct {
	WhitePly *Ply `json:"whitePly"`
	BlackPly *Ply `json:"blackPly"`
}

type SimpleMove struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// makePly describes an executed move. mover is the piece as it stood before moving.
func makePly(m engine.Move, mover Piece) Ply {
	ply := Ply{
		Piece:     mover,
		From:      m.From.String(),
		To:        m.To.String(),
		EnPassant: m.EnPassant(),
		MoveIndex: m.Piece.LastMoved(),
	}
	if m.Captured != nil {
		captured := newPiece(m.Captured, m.CapturedOn)
		ply.CapturedPiece = &captured
	}
	if m.Castled() {
		ply.CastleRookMove = &CastleRookMove{
			From: m.RookFrom.String(),
			To:   m.RookTo.String(),
		}
	}
	return ply
}
