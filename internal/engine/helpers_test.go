package engine

import (
	"sort"
	"testing"
	"unicode"
)

func mustSquare(t *testing.T, b *Board, name string) *Square {
	t.Helper()
	sq, err := b.Lookup(name)
	if err != nil {
		t.Fatalf("lookup %s: %v", name, err)
	}
	return sq
}

func put(t *testing.T, b *Board, name string, kind Kind, c Color) *Piece {
	t.Helper()
	r, f, err := ParseSquare(name)
	if err != nil {
		t.Fatalf("parse %s: %v", name, err)
	}
	p := NewPiece(kind, c)
	if err := b.Place(p, r, f); err != nil {
		t.Fatalf("place %s on %s: %v", p, name, err)
	}
	return p
}

var tagKinds = map[rune]Kind{'P': Pawn, 'N': Knight, 'B': Bishop, 'R': Rook, 'Q': Queen, 'K': King}

// setup builds a board from the piece-placement field of a FEN record. Every piece
// starts unmoved, so kings and rooks on their home squares may castle.
func setup(t *testing.T, placement string) *Board {
	t.Helper()
	b := NewEmptyBoard()
	r, f := MinRank, MaxFile
	for _, ch := range placement {
		switch {
		case ch == '/':
			f--
			r = MinRank
		case ch >= '1' && ch <= '8':
			r += Rank(ch - '0')
		default:
			kind, ok := tagKinds[unicode.ToUpper(ch)]
			if !ok {
				t.Fatalf("bad placement character %q", ch)
			}
			c := White
			if unicode.IsLower(ch) {
				c = Black
			}
			if err := b.Place(NewPiece(kind, c), r, f); err != nil {
				t.Fatalf("place %c: %v", ch, err)
			}
			r++
		}
	}
	return b
}

func names(squares []*Square) []string {
	out := make([]string, 0, len(squares))
	for _, sq := range squares {
		out = append(out, sq.String())
	}
	sort.Strings(out)
	return out
}

func legalFrom(t *testing.T, b *Board, name string) []string {
	t.Helper()
	return names(b.LegalMoves(mustSquare(t, b, name)))
}

// play executes one ply and hands the turn over.
func play(t *testing.T, b *Board, from, to string) Move {
	t.Helper()
	m, err := b.MovePiece(mustSquare(t, b, from), mustSquare(t, b, to))
	if err != nil {
		t.Fatalf("move %s-%s: %v", from, to, err)
	}
	b.ChangeTurn()
	return m
}

// allLegal lists every legal move of the side to move as "e2e4" strings.
func allLegal(b *Board) []string {
	var out []string
	for _, from := range b.Squares() {
		if from.Piece() == nil || from.Piece().Color != b.Turn() {
			continue
		}
		for _, to := range b.LegalMoves(from) {
			out = append(out, from.String()+to.String())
		}
	}
	sort.Strings(out)
	return out
}
