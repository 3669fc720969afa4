package service

import (
	"strings"
	"testing"

	"github.com/benbeisheim/chessbee-backend/internal/engine"
	"github.com/benbeisheim/chessbee-backend/internal/model"
	"github.com/benbeisheim/chessbee-backend/internal/testutil"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

func newTestService() *GameService {
	return NewGameService(NewGameManager(zerolog.Nop()))
}

func TestGameManager_CreateAndDelete(t *testing.T) {
	gm := NewGameManager(zerolog.Nop())

	testutil.AssertNoError(t, gm.CreateGame("g1"))
	testutil.AssertErrorIs(t, gm.CreateGame("g1"), ErrGameExists)

	game, err := gm.GetGame("g1")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, game.ID, "g1")
	testutil.AssertTrue(t, strings.Count(game.Name, "-") == 1, "two word name %q", game.Name)

	testutil.AssertNoError(t, gm.DeleteGame("g1"))
	testutil.AssertErrorIs(t, gm.DeleteGame("g1"), ErrGameNotFound)
	_, err = gm.GetGame("g1")
	testutil.AssertErrorIs(t, err, ErrGameNotFound)
}

func TestGameManager_UnknownGame(t *testing.T) {
	gm := NewGameManager(zerolog.Nop())

	_, err := gm.GetGameState("missing")
	testutil.AssertErrorIs(t, err, ErrGameNotFound)
	_, err = gm.LegalMoves("missing", "e2")
	testutil.AssertErrorIs(t, err, ErrGameNotFound)
	testutil.AssertErrorIs(t, gm.MakeMove("missing", model.WSMove{From: "e2", To: "e4"}), ErrGameNotFound)
	testutil.AssertErrorIs(t, gm.ResetGame("missing"), ErrGameNotFound)
	testutil.AssertErrorIs(t, gm.RegisterConnection("missing", "c", nil), ErrGameNotFound)
	gm.UnregisterConnection("missing", "c", nil)
}

func TestGameService_Lifecycle(t *testing.T) {
	gs := newTestService()

	gameID, err := gs.CreateGame()
	testutil.AssertNoError(t, err)
	_, err = uuid.Parse(gameID)
	testutil.AssertNoError(t, err, "game id is a uuid")

	moves, err := gs.LegalMoves(gameID, "e2")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, moves, []string{"e3", "e4"})

	state, err := gs.HandleMove(gameID, model.WSMove{From: "e2", To: "e4"})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, state.ToMove, engine.Black)
	testutil.AssertEqual(t, state.MoveCount, 1)

	_, err = gs.HandleMove(gameID, model.WSMove{From: "e4", To: "e5"})
	testutil.AssertErrorIs(t, err, model.ErrNotYourTurn)

	state, err = gs.ResetGame(gameID)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, state.MoveCount, 0)

	testutil.AssertNoError(t, gs.DeleteGame(gameID))
	_, err = gs.GetGameState(gameID)
	testutil.AssertErrorIs(t, err, ErrGameNotFound)
}

func TestGameService_GamesAreIndependent(t *testing.T) {
	gs := newTestService()
	a, err := gs.CreateGame()
	testutil.AssertNoError(t, err)
	b, err := gs.CreateGame()
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, a != b)

	_, err = gs.HandleMove(a, model.WSMove{From: "g1", To: "f3"})
	testutil.AssertNoError(t, err)

	state, err := gs.GetGameState(b)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, state.MoveCount, 0)
	testutil.AssertEqual(t, state.Board.Board[7][6].Position, "g1")
}
