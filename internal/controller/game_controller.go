package controller

import (
	"errors"

	"github.com/castlegate/chess-backend/internal/model"
	"github.com/castlegate/chess-backend/internal/service"
	"github.com/gofiber/fiber/v2"
)

type GameController struct {
	gameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

// statusFor maps engine errors onto HTTP statuses: caller misuse and
// malformed input are 400s, a missing game is a 404.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, model.ErrMalformedFEN),
		errors.Is(err, model.ErrOutOfBounds),
		errors.Is(err, model.ErrNoPiece),
		errors.Is(err, model.ErrNotYourTurn),
		errors.Is(err, model.ErrIllegalMove),
		errors.Is(err, model.ErrPromotionPending),
		errors.Is(err, model.ErrNoPendingPromotion),
		errors.Is(err, model.ErrBadPromotion),
		errors.Is(err, model.ErrBadColor):
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}

func errorJSON(c *fiber.Ctx, err error) error {
	return c.Status(statusFor(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	var req model.FENRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body",
			})
		}
	}

	gameID, err := gc.gameService.CreateGame(req.FEN)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Game created",
		"game_id": gameID,
	})
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	gameState, err := gc.gameService.GetGameState(gameID)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(gameState)
}

func (gc *GameController) LegalMoves(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	square := model.Position{
		X: c.QueryInt("x", -1),
		Y: c.QueryInt("y", -1),
	}

	moves, err := gc.gameService.LegalMoves(gameID, square)
	if err != nil {
		return errorJSON(c, err)
	}
	if moves == nil {
		moves = []model.Position{}
	}
	return c.JSON(fiber.Map{
		"legalMoves": moves,
	})
}

func (gc *GameController) MakeMove(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	var move model.MoveRequest
	if err := c.BodyParser(&move); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	outcome, err := gc.gameService.MakeMove(gameID, move)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(outcome)
}

func (gc *GameController) Promote(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	var req model.PromoteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	outcome, err := gc.gameService.Promote(gameID, req.Piece)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(outcome)
}

func (gc *GameController) GetFEN(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	fen, err := gc.gameService.GetFEN(gameID)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{
		"fen": fen,
	})
}

func (gc *GameController) LoadFEN(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	var req model.FENRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if err := gc.gameService.LoadFEN(gameID, req.FEN); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Position loaded",
	})
}

func (gc *GameController) PlacePiece(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	var req model.PlaceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if err := gc.gameService.PlacePiece(gameID, req); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Piece placed",
	})
}

func (gc *GameController) ClearSquare(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	var req model.ClearRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body",
			})
		}
	}

	if err := gc.gameService.ClearSquare(gameID, req.Square); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Cleared",
	})
}
