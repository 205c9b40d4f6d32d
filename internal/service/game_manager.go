package service

import (
	"errors"
	"sync"

	"github.com/castlegate/chess-backend/internal/model"
)

var ErrGameNotFound = errors.New("game not found")

// GameManager owns the live board sessions, keyed by id.
type GameManager struct {
	games map[string]*model.Game
	mu    sync.RWMutex
}

func NewGameManager() *GameManager {
	return &GameManager{
		games: make(map[string]*model.Game),
	}
}

// CreateGame registers a new session, starting from fen when given or the
// standard position otherwise.
func (gm *GameManager) CreateGame(gameID, fen string) error {
	var game *model.Game
	if fen == "" {
		game = model.NewGame(gameID)
	} else {
		var err error
		game, err = model.NewGameFromFEN(gameID, fen)
		if err != nil {
			return err
		}
	}

	gm.mu.Lock()
	defer gm.mu.Unlock()
	gm.games[gameID] = game
	return nil
}

func (gm *GameManager) GetGame(gameID string) (*model.Game, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	game, ok := gm.games[gameID]
	if !ok {
		return nil, ErrGameNotFound
	}
	return game, nil
}
