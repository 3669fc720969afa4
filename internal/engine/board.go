// Package engine holds the authoritative state of a chess game: the board, the pieces on
// it, legal move generation, move execution and game status.
//
// Squares are addressed by (rank, file) where rank is the column letter a-h and file is
// the row number 1-8. A Board is not safe for concurrent use.
package engine

import "fmt"

type Rank byte

type File int

const (
	MinRank Rank = 'a'
	MaxRank Rank = 'h'
	MinFile File = 1
	MaxFile File = 8
)

func inBounds(r Rank, f File) bool {
	return r >= MinRank && r <= MaxRank && f >= MinFile && f <= MaxFile
}

// ParseSquare reads a coordinate such as "e4".
func ParseSquare(s string) (Rank, File, error) {
	if len(s) != 2 {
		return 0, 0, fmt.Errorf("%q: %w", s, ErrInvalidCoordinate)
	}
	r := Rank(s[0])
	f := File(s[1] - '0')
	if !inBounds(r, f) {
		return 0, 0, fmt.Errorf("%q: %w", s, ErrInvalidCoordinate)
	}
	return r, f, nil
}

// Square is one of the 64 fixed cells of a board. Only its occupant changes.
type Square struct {
	rank  Rank
	file  File
	piece *Piece
}

func (s *Square) Rank() Rank { return s.rank }
func (s *Square) File() File { return s.file }
func (s *Square) Piece() *Piece { return s.piece }
func (s *Square) Occupied() bool { return s.piece != nil }

func (s *Square) String() string {
	return fmt.Sprintf("%c%d", s.rank, s.file)
}

type Board struct {
	squares   [64]Square
	turn      Color
	moveCount int
}

// NewBoard returns a board set up in the standard starting position.
func NewBoard() *Board {
	b := NewEmptyBoard()
	b.Reset()
	return b
}

// NewEmptyBoard returns a board with no pieces, White to move.
func NewEmptyBoard() *Board {
	b := &Board{}
	for f := MinFile; f <= MaxFile; f++ {
		for r := MinRank; r <= MaxRank; r++ {
			sq := &b.squares[index(r, f)]
			sq.rank = r
			sq.file = f
		}
	}
	return b
}

func index(r Rank, f File) int {
	return int(f-MinFile)*8 + int(r-MinRank)
}

// at is the unchecked lookup. Callers bounds-check first.
func (b *Board) at(r Rank, f File) *Square {
	return &b.squares[index(r, f)]
}

// offset returns the square dr ranks and df files away from sq, or nil off the board.
func (b *Board) offset(sq *Square, dr, df int) *Square {
	r := Rank(int(sq.rank) + dr)
	f := File(int(sq.file) + df)
	if !inBounds(r, f) {
		return nil
	}
	return b.at(r, f)
}

func (b *Board) SquareAt(r Rank, f File) (*Square, error) {
	if !inBounds(r, f) {
		return nil, fmt.Errorf("%c%d: %w", r, f, ErrInvalidCoordinate)
	}
	return b.at(r, f), nil
}

// Lookup resolves a coordinate such as "e4" to its square.
func (b *Board) Lookup(name string) (*Square, error) {
	r, f, err := ParseSquare(name)
	if err != nil {
		return nil, err
	}
	return b.at(r, f), nil
}

// Squares returns all 64 squares from a1 to h8, file by file.
func (b *Board) Squares() []*Square {
	out := make([]*Square, 0, len(b.squares))
	for i := range b.squares {
		out = append(out, &b.squares[i])
	}
	return out
}

func (b *Board) Turn() Color { return b.turn }
func (b *Board) SetTurn(c Color) { b.turn = c }
func (b *Board) MoveCount() int { return b.moveCount }

func (b *Board) ChangeTurn() {
	b.turn = b.turn.Opponent()
}

// Clear removes every piece and resets the turn and move counter.
func (b *Board) Clear() {
	for i := range b.squares {
		b.squares[i].piece = nil
	}
	b.turn = White
	b.moveCount = 0
}

var backRank = [8]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// Reset clears the board and places the standard 32-piece starting position.
func (b *Board) Reset() {
	b.Clear()
	for i, kind := range backRank {
		r := MinRank + Rank(i)
		b.at(r, 1).piece = NewPiece(kind, White)
		b.at(r, 2).piece = NewPiece(Pawn, White)
		b.at(r, 7).piece = NewPiece(Pawn, Black)
		b.at(r, 8).piece = NewPiece(kind, Black)
	}
}

// Place puts p on an empty square. It is used to set up positions other than the
// starting one.
func (b *Board) Place(p *Piece, r Rank, f File) error {
	sq, err := b.SquareAt(r, f)
	if err != nil {
		return err
	}
	if sq.piece != nil {
		return fmt.Errorf("%s: %w", sq, ErrSquareOccupied)
	}
	sq.piece = p
	return nil
}

// kingSquare finds the king of color c, or nil when it is not on the board.
func (b *Board) kingSquare(c Color) *Square {
	for i := range b.squares {
		p := b.squares[i].piece
		if p != nil && p.Kind == King && p.Color == c {
			return &b.squares[i]
		}
	}
	return nil
}

// Material sums the piece values of color c.
func (b *Board) Material(c Color) int {
	total := 0
	for i := range b.squares {
		if p := b.squares[i].piece; p != nil && p.Color == c {
			total += p.Kind.Value()
		}
	}
	return total
}
