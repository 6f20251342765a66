package controller

import (
	"errors"

	"oda-chatbot-be/internal/pkg/serverutils"
	"oda-chatbot-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	History(ctx *fiber.Ctx) error
	Sessions(ctx *fiber.Ctx) error
	DeleteSession(ctx *fiber.Ctx) error
}

type chatController struct {
	promptService service.IPromptService
}

func NewChatController(promptService service.IPromptService) IChatController {
	return &chatController{
		promptService: promptService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("history", c.History)
	h.Get("sessions", c.Sessions)
	h.Delete("sessions/:id", c.DeleteSession)
}

func (c *chatController) History(ctx *fiber.Ctx) error {
	userEmail := ctx.Locals("user_email").(string)

	res, err := c.promptService.GetChatHistory(ctx.Context(), userEmail)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get chat history", res))
}

func (c *chatController) Sessions(ctx *fiber.Ctx) error {
	userEmail := ctx.Locals("user_email").(string)

	res, err := c.promptService.GetSessions(ctx.Context(), userEmail)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get chat sessions", res))
}

func (c *chatController) DeleteSession(ctx *fiber.Ctx) error {
	userEmail := ctx.Locals("user_email").(string)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid session id"))
	}

	if err := c.promptService.DeleteSession(ctx.Context(), userEmail, id); err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Chat session not found"))
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete chat session", nil))
}
