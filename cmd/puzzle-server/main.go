// puzzle-server serves King, Rook and Bishop puzzle games over HTTP and
// websockets.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/lgbarn/chess-puzzle-go/internal/config"
	"github.com/lgbarn/chess-puzzle-go/internal/server"
)

var (
	addr         = flag.String("addr", ":8080", "Listen address")
	allowOrigins = flag.String("origins", "*", "Comma-separated CORS origins")
	maxGames     = flag.Int("maxgames", 1000, "Maximum games held in memory (0 = unlimited)")
	computerSide = flag.String("computer", "black", "Side the computer plays: white or black")
	playSelf     = flag.Bool("playself", false, "New games default to two human players")
	verbosity    = flag.Int("v", 1, "Diagnostic level: 0 quiet, 1 games, 2 requests")
)

func main() {
	flag.Parse()

	cfg := config.NewConfig()
	cfg.Verbosity = *verbosity
	cfg.Server.Addr = *addr
	cfg.Server.AllowOrigins = *allowOrigins
	cfg.Server.MaxGames = *maxGames
	cfg.Game.PlayAgainstComputer = !*playSelf
	side, err := config.ParseSide(*computerSide)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: -computer: %v\n", err)
		os.Exit(2)
	}
	cfg.Game.ComputerSide = side
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	app := server.NewApp(cfg, server.NewGameManager(cfg))

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt)
		<-quit
		cfg.Logf(1, "shutting down\n")
		if err := app.Shutdown(); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	if err := app.Listen(cfg.Server.Addr); err != nil {
		log.Fatal(err)
	}
}
