package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"

	"github.com/Team-useMemo/Jugger-AI/internal/classify"
	"github.com/Team-useMemo/Jugger-AI/pkg/domain"
)

// ClassifyController handles paragraph decomposition requests.
type ClassifyController struct {
	classifyService *classify.Service
}

type ClassifyControllerDependencies struct {
	ClassifyService *classify.Service
}

func NewClassifyController(deps ClassifyControllerDependencies) *ClassifyController {
	return &ClassifyController{
		classifyService: deps.ClassifyService,
	}
}

type ClassifyParagraphRequest struct {
	UserID    string `json:"user_id"`
	Paragraph string `json:"paragraph"`
}

// ClassifyParagraph decomposes one paragraph for one user. An unknown user
// maps to 404, collaborator failures to 500.
func (c *ClassifyController) ClassifyParagraph(ctx fiber.Ctx) error {
	var req ClassifyParagraphRequest

	if err := ctx.Bind().Body(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if req.UserID == "" || req.Paragraph == "" {
		return fiber.NewError(fiber.StatusBadRequest, "user_id and paragraph are required")
	}

	result, err := c.classifyService.ClassifyParagraph(ctx.RequestCtx(), req.UserID, req.Paragraph)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		log.Error().Err(err).Str("user_id", req.UserID).Msg("Failed to classify paragraph")
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to classify paragraph")
	}

	return ctx.JSON(result)
}
