package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Team-useMemo/Jugger-AI/internal/config"
	"github.com/Team-useMemo/Jugger-AI/internal/initialization"
	"github.com/Team-useMemo/Jugger-AI/internal/server"
)

func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the classification HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

func runServe() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	deps, err := initialization.BuildDependencies(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build service dependencies")
	}

	app := server.NewHTTPServer(server.HTTPServerDependencies{
		ClassifyController: deps.ClassifyController,
	})

	log.Info().Str("address", cfg.HTTPAddress).Msg("Starting classification service")

	if err := app.Listen(cfg.HTTPAddress, fiber.ListenConfig{
		GracefulContext:       ctx,
		DisableStartupMessage: true,
	}); err != nil {
		log.Error().Err(err).Msg("HTTP server failed")
		return err
	}

	log.Info().Msg("Classification service stopped")
	return nil
}
