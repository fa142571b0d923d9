package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"rsvphub_backend/internals/configs"
	database "rsvphub_backend/internals/databases"
	middlewares "rsvphub_backend/internals/middlewares"
	"rsvphub_backend/internals/persistence/bindings"
	"rsvphub_backend/internals/persistence/repository"
	routes "rsvphub_backend/internals/route"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := configs.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	// record/model pairs must be registered before any executor is built
	bindings.RegisterAll()

	db, err := database.Connect(cfg.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("database connect failed")
	}

	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
	})

	middlewares.SetupMiddlewares(app)

	// per-request deadline, aligned with the DB statement timeout
	app.Use(func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	if err := routes.SetupRoutes(app, db, repository.SystemClock()); err != nil {
		log.Fatal().Err(err).Msg("route setup failed")
	}

	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	go func() {
		log.Info().Str("port", cfg.Port).Msg("listening")
		if err := app.Listen("0.0.0.0:" + cfg.Port); err != nil {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
