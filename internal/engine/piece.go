package engine

import "strings"

type Color uint8

const (
	White Color = iota
	Black
)

func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

// Direction is the file step a pawn of this color advances by.
func (c Color) Direction() int {
	if c == White {
		return 1
	}
	return -1
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "white":
		*c = White
	case "black":
		*c = Black
	default:
		return ErrInvalidColor
	}
	return nil
}

type Kind uint8

const (
	Pawn Kind = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

var kindNames = [...]string{"pawn", "knight", "bishop", "rook", "queen", "king"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Value is the material worth of the kind. The king is never captured and counts zero.
func (k Kind) Value() int {
	switch k {
	case Pawn:
		return 1
	case Knight, Bishop:
		return 3
	case Rook:
		return 5
	case Queen:
		return 9
	case King:
		return 0
	}
	return 0
}

// Tag is the single letter used to display the kind.
func (k Kind) Tag() string {
	switch k {
	case Pawn:
		return "P"
	case Knight:
		return "N"
	case Bishop:
		return "B"
	case Rook:
		return "R"
	case Queen:
		return "Q"
	case King:
		return "K"
	}
	return "?"
}

// Piece is one chess piece. The mutable flags only carry meaning for the kinds that
// consult them: pawns (double step, en passant), rooks and kings (castling).
type Piece struct {
	Kind  Kind
	Color Color

	hasNotMoved bool
	lastMoved   int
	lastStride  int
}

func NewPiece(kind Kind, color Color) *Piece {
	return &Piece{
		Kind:        kind,
		Color:       color,
		hasNotMoved: true,
		lastMoved:   -1,
	}
}

func (p *Piece) HasMoved() bool {
	return !p.hasNotMoved
}

// LastMoved returns the move counter stamped on the piece's most recent move, or -1.
func (p *Piece) LastMoved() int {
	return p.lastMoved
}

// Tag is the FEN-style letter: upper case for White, lower case for Black.
func (p *Piece) Tag() string {
	if p.Color == Black {
		return strings.ToLower(p.Kind.Tag())
	}
	return p.Kind.Tag()
}

func (p *Piece) String() string {
	return p.Color.String() + " " + p.Kind.String()
}

// justDoubleStepped reports whether p is a pawn whose last move was a two-file advance
// made on ply moveCount-1.
func (p *Piece) justDoubleStepped(moveCount int) bool {
	return p.Kind == Pawn && p.lastStride == 2 && p.lastMoved == moveCount-1
}

// pieceFlags is the mutable part of a piece, saved and restored around a move.
type pieceFlags struct {
	hasNotMoved bool
	lastMoved   int
	lastStride  int
}

func (p *Piece) flags() pieceFlags {
	return pieceFlags{hasNotMoved: p.hasNotMoved, lastMoved: p.lastMoved, lastStride: p.lastStride}
}

func (p *Piece) restore(f pieceFlags) {
	p.hasNotMoved = f.hasNotMoved
	p.lastMoved = f.lastMoved
	p.lastStride = f.lastStride
}

// markMoved updates the flags after the piece travelled stride files on ply moveCount.
func (p *Piece) markMoved(moveCount, stride int) {
	p.hasNotMoved = false
	p.lastMoved = moveCount
	p.lastStride = stride
}
