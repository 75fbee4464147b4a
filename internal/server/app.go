// Package server serves puzzle games over HTTP and websockets.
package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"

	"github.com/lgbarn/chess-puzzle-go/internal/config"
)

// NewApp builds the fiber app with every route registered.
func NewApp(cfg *config.Config, manager *GameManager) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "chess-puzzle",
		DisableStartupMessage: cfg.Verbosity < 1,
	})

	app.Use(recover.New())
	if cfg.Verbosity >= 2 {
		app.Use(logger.New(logger.Config{Output: cfg.LogFile}))
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, OPTIONS",
	}))

	gameController := NewGameController(manager)
	wsController := NewWebSocketController(manager)

	app.Get("/ws/games/:id", WebSocketUpgrade(manager), websocket.New(wsController.HandleConnection, websocket.Config{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}))

	api := app.Group("/api")
	games := api.Group("/games")
	games.Post("/", gameController.CreateGame)
	games.Get("/:id", gameController.GetGame)
	games.Post("/:id/moves", gameController.MakeMove)
	games.Get("/:id/moves", gameController.LegalMoves)

	return app
}
