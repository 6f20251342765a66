package controller

import (
	"errors"

	"oda-chatbot-be/internal/dto"
	"oda-chatbot-be/internal/pkg/serverutils"
	"oda-chatbot-be/internal/repository/implementation"
	"oda-chatbot-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPromptController interface {
	RegisterRoutes(r fiber.Router)
	Process(ctx *fiber.Ctx) error
	QueryPlan(ctx *fiber.Ctx) error
}

type promptController struct {
	promptService service.IPromptService
}

func NewPromptController(promptService service.IPromptService) IPromptController {
	return &promptController{
		promptService: promptService,
	}
}

func (c *promptController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/prompt/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Process)
	h.Get("query-plan", c.QueryPlan)
}

func (c *promptController) Process(ctx *fiber.Ctx) error {
	userEmail := ctx.Locals("user_email").(string)

	var req dto.PromptRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.promptService.ProcessPrompt(ctx.Context(), userEmail, &req)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Chat session not found"))
		}
		if errors.Is(err, implementation.ErrStaleSession) {
			return ctx.Status(fiber.StatusConflict).JSON(serverutils.ErrorResponse(409, "Session was modified by another request, retry"))
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success process prompt", res))
}

// QueryPlan exposes the extraction step on its own, for inspecting what a
// prompt turns into before it hits the search engine.
func (c *promptController) QueryPlan(ctx *fiber.Ctx) error {
	q := ctx.Query("q", "")
	if q == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "query parameter 'q' is required"))
	}

	res := c.promptService.CreateQueryPlan(q)
	return ctx.JSON(serverutils.SuccessResponse("Success create query plan", res))
}
