package main

import (
	"context"
	"fmt"

	"projectflow/internal/oapi"
	"projectflow/internal/repository"
	"projectflow/internal/session"
	"projectflow/internal/telemetry"
	"projectflow/internal/transport/http/middleware"
	"projectflow/internal/transport/http/server/handlers-fiber"
	"projectflow/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	shutdownTracing, err := telemetry.Setup(ctx, log, cfg.Telemetry)
	if err != nil {
		log.Errorw("telemetry initialization error", "error", err)
		return err
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Warnw("telemetry shutdown error", "error", err)
		}
	}()

	repo, err := repository.New(ctx, cfg.Storage.Backend, log, cfg)
	if err != nil {
		log.Errorw("repository initialization error", "error", err)
		return err
	}
	if err := repo.OnStart(ctx); err != nil {
		log.Errorw("repository start error", "error", err)
		return err
	}
	defer func() {
		_ = repo.OnStop(context.Background())
	}()

	roster, err := repo.ListUsers(ctx)
	if err != nil {
		log.Errorw("load user roster", "error", err)
		return err
	}
	sessions := session.New(log, roster, cfg.Session.DefaultUserID)

	timeout := cfg.HTTP.RequestTimeout
	uc := usecase.New(log, ctx, repo, sessions, timeout)

	serv := fiber.New(fiber.Config{
		ReadTimeout:           cfg.HTTP.RequestTimeout,
		WriteTimeout:          cfg.HTTP.RequestTimeout,
		DisableStartupMessage: true,
	})
	serv.Use(recover.New())
	serv.Use(requestid.New())
	serv.Use(middleware.RequestLogger(log))

	serv.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	h := handlers_fiber.NewHandler(log, uc)
	oapi.RegisterHandlers(serv.Group("/api"), h)

	listenErr := make(chan error, 1)
	go func() {
		log.Infow("http server listening", "addr", cfg.ServerAddr(), "storage", cfg.Storage.Backend)
		listenErr <- serv.Listen(cfg.ServerAddr())
	}()

	select {
	case err := <-listenErr:
		log.Errorw("failed to start server", "error", err)
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	done := make(chan struct{})
	go func() {
		_ = serv.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-shutdownCtx.Done():
		log.Warnw("server shutdown timeout", "timeout", cfg.Server.ShutdownTimeout)
	}
	return nil
}
