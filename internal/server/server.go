package server

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/logger"

	"github.com/Team-useMemo/Jugger-AI/internal/controllers"
	"github.com/Team-useMemo/Jugger-AI/internal/middlewares"
	"github.com/Team-useMemo/Jugger-AI/internal/version"
)

type HTTPServerDependencies struct {
	ClassifyController *controllers.ClassifyController
}

func NewHTTPServer(deps HTTPServerDependencies) *fiber.App {
	router := fiber.New(fiber.Config{
		AppName: "jugger-ai",
	})

	router.Use(cors.New())
	router.Use(logger.New())
	router.Use(middlewares.RequestID())

	router.Get("/health", func(c fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":    "healthy",
			"service":   "jugger-ai",
			"version":   version.GetVersion(),
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	v1 := router.Group("/v1")
	v1.Post("/classify", deps.ClassifyController.ClassifyParagraph)

	return router
}
