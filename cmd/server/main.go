package main

import (
	"os"
	"strings"
	"time"

	"github.com/benbeisheim/chessbee-backend/internal/config"
	"github.com/benbeisheim/chessbee-backend/internal/controller"
	"github.com/benbeisheim/chessbee-backend/internal/middleware"
	"github.com/benbeisheim/chessbee-backend/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"
	"github.com/rs/zerolog"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		bootLog := zerolog.New(os.Stderr).With().Timestamp().Logger()
		bootLog.Fatal().Err(err).Msg("failed to load config")
	}

	log := newLogger(cfg)

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(cfg.OriginList(), ", "),
		AllowHeaders:     "Origin, Content-Type, Accept, " + middleware.ClientIDHeader,
		ExposeHeaders:    middleware.ClientIDHeader,
		AllowMethods:     "GET, POST, DELETE, OPTIONS",
		AllowCredentials: true,
	}))
	app.Use(middleware.RequestLogger(log))

	// Initialize services
	gameManager := service.NewGameManager(log)
	gameService := service.NewGameService(gameManager)

	// Initialize controllers
	gameController := controller.NewGameController(gameService, log)
	wsController := controller.NewWebSocketController(gameService, log)

	controller.RegisterRoutes(app, gameController, wsController, websocket.Config{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		Origins:         cfg.OriginList(),
	})

	log.Info().Str("addr", cfg.Addr).Strs("origins", cfg.OriginList()).Msg("starting server")
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func newLogger(cfg config.Config) zerolog.Logger {
	zerolog.SetGlobalLevel(cfg.LogLevel)
	if cfg.LogPretty {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
			With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}
