// service/game_manager.go
package service

import (
	"errors"
	"sync"

	"github.com/benbeisheim/chessbee-backend/internal/model"
	petname "github.com/dustinkirkland/golang-petname"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrGameExists   = errors.New("game already exists")
)

// GameManager keeps the hosted games. Each game guards its own board; mu only
// protects the registry.
type GameManager struct {
	games map[string]*model.Game
	mu    sync.RWMutex
	log   zerolog.Logger
}

func NewGameManager(log zerolog.Logger) *GameManager {
	return &GameManager{
		games: make(map[string]*model.Game),
		log:   log,
	}
}

func (gm *GameManager) CreateGame(gameID string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[gameID]; exists {
		return ErrGameExists
	}

	game := model.NewGame(gameID, gm.log)
	game.Name = petname.Generate(2, "-")
	gm.games[gameID] = game
	gm.log.Info().Str("game", gameID).Str("name", game.Name).Int("games", len(gm.games)).Msg("game created")
	return nil
}

func (gm *GameManager) DeleteGame(gameID string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	game, exists := gm.games[gameID]
	if !exists {
		return ErrGameNotFound
	}
	game.Close()
	delete(gm.games, gameID)
	gm.log.Info().Str("game", gameID).Msg("game deleted")
	return nil
}

func (gm *GameManager) GetGame(gameID string) (*model.Game, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	game, exists := gm.games[gameID]
	if !exists {
		return nil, ErrGameNotFound
	}

	return game, nil
}

func (gm *GameManager) GetGameState(gameID string) (model.GameState, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return model.GameState{}, err
	}
	return game.GetState(), nil
}

func (gm *GameManager) LegalMoves(gameID string, square string) ([]string, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return nil, err
	}
	return game.LegalMoves(square)
}

func (gm *GameManager) MakeMove(gameID string, move model.WSMove) error {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}
	return game.MakeMove(move)
}

func (gm *GameManager) ResetGame(gameID string) error {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}
	game.Reset()
	return nil
}

func (gm *GameManager) RegisterConnection(gameID string, clientID string, conn model.Conn) error {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}
	return game.RegisterConnection(clientID, conn)
}

func (gm *GameManager) UnregisterConnection(gameID string, clientID string, conn model.Conn) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return
	}
	game.UnregisterConnection(clientID, conn)
}

// newGameID returns a fresh random identifier.
func newGameID() string {
	return uuid.New().String()
}
