package server

import (
	stderrors "errors"

	"github.com/gofiber/fiber/v2"

	"github.com/lgbarn/chess-puzzle-go/internal/errors"
)

// GameController serves the REST routes.
type GameController struct {
	manager *GameManager
}

// NewGameController creates a controller over the manager.
func NewGameController(manager *GameManager) *GameController {
	return &GameController{manager: manager}
}

// CreateGame handles POST /api/games.
func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	var req CreateRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid request body",
			})
		}
	}
	vsComputer := gc.manager.cfg.Game.PlayAgainstComputer
	if req.VsComputer != nil {
		vsComputer = *req.VsComputer
	}

	g, err := gc.manager.Create(req.Board, vsComputer, req.Seed)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(g.State())
}

// GetGame handles GET /api/games/:id.
func (gc *GameController) GetGame(c *fiber.Ctx) error {
	g, err := gc.manager.Get(c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(g.State())
}

// MakeMove handles POST /api/games/:id/moves.
func (gc *GameController) MakeMove(c *fiber.Ctx) error {
	var req MoveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	st, err := gc.manager.Move(c.Params("id"), req.Move)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(st)
}

// LegalMoves handles GET /api/games/:id/moves.
func (gc *GameController) LegalMoves(c *fiber.Ctx) error {
	g, err := gc.manager.Get(c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"moves": g.LegalMoves()})
}

// statusFor maps an error to its HTTP status code.
func statusFor(err error) int {
	switch {
	case stderrors.Is(err, errors.ErrGameNotFound):
		return fiber.StatusNotFound
	case stderrors.Is(err, errors.ErrBoardFormat):
		// Checked first: a bad square in a board file wraps both.
		return fiber.StatusUnprocessableEntity
	case stderrors.Is(err, errors.ErrIllegalMove), stderrors.Is(err, errors.ErrInvalidLocation):
		return fiber.StatusBadRequest
	case stderrors.Is(err, errors.ErrGameOver), stderrors.Is(err, errors.ErrNotYourTurn):
		return fiber.StatusConflict
	case stderrors.Is(err, errors.ErrTooManyGames):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

func errorResponse(c *fiber.Ctx, err error) error {
	return c.Status(statusFor(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}
