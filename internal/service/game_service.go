package service

import (
	"fmt"

	"github.com/castlegate/chess-backend/internal/model"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// GameService is the facade the controllers talk to.
type GameService struct {
	gameManager *GameManager
}

func NewGameService(gameManager *GameManager) *GameService {
	return &GameService{
		gameManager: gameManager,
	}
}

// CreateGame mints a session id and registers a new board, optionally
// initialized from a FEN string.
func (gs *GameService) CreateGame(fen string) (string, error) {
	gameID := uuid.New().String()

	if err := gs.gameManager.CreateGame(gameID, fen); err != nil {
		return "", fmt.Errorf("failed to create game: %w", err)
	}
	return gameID, nil
}

func (gs *GameService) GetGameState(gameID string) (model.GameState, error) {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return model.GameState{}, err
	}
	return game.GetState(), nil
}

func (gs *GameService) LegalMoves(gameID string, square model.Position) ([]model.Position, error) {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return nil, err
	}
	return game.LegalMoves(square)
}

func (gs *GameService) MakeMove(gameID string, move model.MoveRequest) (model.MoveOutcome, error) {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return model.MoveOutcome{}, err
	}
	return game.MakeMove(move.From, move.To, move.Promotion)
}

func (gs *GameService) Promote(gameID string, piece model.PieceType) (model.MoveOutcome, error) {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return model.MoveOutcome{}, err
	}
	return game.Promote(piece)
}

func (gs *GameService) GetFEN(gameID string) (string, error) {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return "", err
	}
	return game.FEN(), nil
}

func (gs *GameService) LoadFEN(gameID, fen string) error {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return err
	}
	return game.LoadFEN(fen)
}

func (gs *GameService) PlacePiece(gameID string, req model.PlaceRequest) error {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return err
	}
	return game.PlacePiece(req.Piece, req.Color, req.Square)
}

// ClearSquare clears one square, or the whole board when square is nil.
func (gs *GameService) ClearSquare(gameID string, square *model.Position) error {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return err
	}
	if square == nil {
		game.ClearBoard()
		return nil
	}
	return game.ClearSquare(*square)
}

func (gs *GameService) RegisterConnection(gameID, clientID string, conn *websocket.Conn) error {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return err
	}
	return game.RegisterConnection(clientID, conn)
}

func (gs *GameService) UnregisterConnection(gameID, clientID string) {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return
	}
	game.UnregisterConnection(clientID)
}
