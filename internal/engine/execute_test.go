package engine

import (
	"errors"
	"testing"

	"github.com/benbeisheim/chessbee-backend/internal/testutil"
)

func TestMovePiece_Rejections(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want error
	}{
		{"empty square", "e4", "e5", ErrEmptySquare},
		{"pawn triple step", "e2", "e5", ErrIllegalMove},
		{"onto own piece", "d1", "d2", ErrIllegalMove},
		{"bishop through pawn", "c1", "e3", ErrIllegalMove},
		{"black piece out of geometry", "b8", "b6", ErrIllegalMove},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard()
			before := b.String()

			_, err := b.MovePiece(mustSquare(t, b, tt.from), mustSquare(t, b, tt.to))
			testutil.AssertErrorIs(t, err, tt.want)

			var moveErr *MoveError
			testutil.AssertTrue(t, errors.As(err, &moveErr))
			testutil.AssertEqual(t, moveErr.From, tt.from)
			testutil.AssertEqual(t, b.String(), before)
			testutil.AssertEqual(t, b.MoveCount(), 0)
		})
	}
}

func TestMovePiece_SquareFromAnotherBoard(t *testing.T) {
	b := NewBoard()
	other := NewBoard()

	_, err := b.MovePiece(mustSquare(t, b, "e2"), mustSquare(t, other, "e4"))
	testutil.AssertErrorIs(t, err, ErrIllegalMove)

	_, err = b.MovePiece(nil, mustSquare(t, b, "e4"))
	testutil.AssertErrorIs(t, err, ErrInvalidCoordinate)
}

func TestMovePiece_UpdatesState(t *testing.T) {
	b := NewBoard()
	pawn := mustSquare(t, b, "e2").Piece()

	m, err := b.MovePiece(mustSquare(t, b, "e2"), mustSquare(t, b, "e4"))
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, b.MoveCount(), 1)
	testutil.AssertEqual(t, b.Turn(), White, "MovePiece leaves the turn alone")
	testutil.AssertTrue(t, mustSquare(t, b, "e4").Piece() == pawn)
	testutil.AssertFalse(t, mustSquare(t, b, "e2").Occupied())
	testutil.AssertTrue(t, pawn.HasMoved())
	testutil.AssertEqual(t, pawn.LastMoved(), 0)
	testutil.AssertTrue(t, m.Captured == nil)
	testutil.AssertFalse(t, m.Castled())

	b.ChangeTurn()
	testutil.AssertEqual(t, b.Turn(), Black)
}

func TestMovePiece_Capture(t *testing.T) {
	b := NewBoard()
	play(t, b, "e2", "e4")
	play(t, b, "d7", "d5")
	victim := mustSquare(t, b, "d5").Piece()

	m := play(t, b, "e4", "d5")

	testutil.AssertTrue(t, m.Captured == victim)
	testutil.AssertEqual(t, m.CapturedOn.String(), "d5")
	testutil.AssertFalse(t, m.EnPassant())
	testutil.AssertEqual(t, b.Material(Black), 38)
}

func TestMovePiece_EnPassant(t *testing.T) {
	b := NewBoard()
	play(t, b, "e2", "e4")
	play(t, b, "a7", "a6")
	play(t, b, "e4", "e5")
	play(t, b, "f7", "f5")
	victim := mustSquare(t, b, "f5").Piece()

	m := play(t, b, "e5", "f6")

	testutil.AssertTrue(t, m.EnPassant())
	testutil.AssertTrue(t, m.Captured == victim)
	testutil.AssertEqual(t, m.CapturedOn.String(), "f5")
	testutil.AssertFalse(t, mustSquare(t, b, "f5").Occupied())
	testutil.AssertEqual(t, mustSquare(t, b, "f6").Piece().Kind, Pawn)
	testutil.AssertEqual(t, b.Material(Black), 38)
}

func TestMovePiece_CastlingQueenside(t *testing.T) {
	b := setup(t, "4k3/8/8/8/8/8/8/R3K2R")

	m := play(t, b, "e1", "c1")

	testutil.AssertTrue(t, m.Castled())
	testutil.AssertEqual(t, m.RookFrom.String(), "a1")
	testutil.AssertEqual(t, m.RookTo.String(), "d1")
	testutil.AssertEqual(t, mustSquare(t, b, "d1").Piece().Kind, Rook)
	testutil.AssertFalse(t, mustSquare(t, b, "a1").Occupied())
	testutil.AssertEqual(t, mustSquare(t, b, "h1").Piece().Kind, Rook)
}

func TestApplyUndo_RoundTrip(t *testing.T) {
	positions := []string{
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8",
	}
	for _, placement := range positions {
		t.Run(placement, func(t *testing.T) {
			b := setup(t, placement)
			before := b.String()
			for _, from := range b.Squares() {
				if from.Piece() == nil {
					continue
				}
				for _, to := range b.pseudoMoves(from, false) {
					m := b.apply(from, to)
					b.undo(m)
					if got := b.String(); got != before {
						t.Fatalf("%s-%s not undone:\n%s", from, to, got)
					}
					testutil.AssertEqual(t, b.MoveCount(), 0)
				}
			}
		})
	}
}
