package service

import (
	"fmt"

	"github.com/benbeisheim/chessbee-backend/internal/model"
)

type GameService struct {
	gameManager *GameManager
}

func NewGameService(gameManager *GameManager) *GameService {
	return &GameService{
		gameManager: gameManager,
	}
}

func (gs *GameService) CreateGame() (string, error) {
	gameID := newGameID()

	if err := gs.gameManager.CreateGame(gameID); err != nil {
		return "", fmt.Errorf("failed to create game: %w", err)
	}

	return gameID, nil
}

func (gs *GameService) DeleteGame(gameID string) error {
	return gs.gameManager.DeleteGame(gameID)
}

func (gs *GameService) GetGameState(gameID string) (model.GameState, error) {
	return gs.gameManager.GetGameState(gameID)
}

func (gs *GameService) LegalMoves(gameID string, square string) ([]string, error) {
	return gs.gameManager.LegalMoves(gameID, square)
}

// HandleMove plays move and returns the resulting state.
func (gs *GameService) HandleMove(gameID string, move model.WSMove) (model.GameState, error) {
	if err := gs.gameManager.MakeMove(gameID, move); err != nil {
		return model.GameState{}, err
	}
	return gs.gameManager.GetGameState(gameID)
}

func (gs *GameService) ResetGame(gameID string) (model.GameState, error) {
	if err := gs.gameManager.ResetGame(gameID); err != nil {
		return model.GameState{}, err
	}
	return gs.gameManager.GetGameState(gameID)
}

func (gs *GameService) RegisterConnection(gameID string, clientID string, conn model.Conn) error {
	return gs.gameManager.RegisterConnection(gameID, clientID, conn)
}

func (gs *GameService) UnregisterConnection(gameID string, clientID string, conn model.Conn) {
	gs.gameManager.UnregisterConnection(gameID, clientID, conn)
}
