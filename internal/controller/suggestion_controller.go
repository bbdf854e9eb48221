package controller

import (
	"metory-be/internal/pkg/serverutils"
	"metory-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISuggestionController interface {
	RegisterRoutes(r fiber.Router)
	Topics(ctx *fiber.Ctx) error
	Questions(ctx *fiber.Ctx) error
}

type suggestionController struct {
	suggestionService service.ISuggestionService
}

func NewSuggestionController(suggestionService service.ISuggestionService) ISuggestionController {
	return &suggestionController{
		suggestionService: suggestionService,
	}
}

func (c *suggestionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/suggestion/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("topics", c.Topics)
	h.Get("questions", c.Questions)
}

func (c *suggestionController) Topics(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success show topics", c.suggestionService.Topics()))
}

func (c *suggestionController) Questions(ctx *fiber.Ctx) error {
	topic := ctx.Query("topic")
	res := c.suggestionService.QuestionsForTopic(topic)
	return ctx.JSON(serverutils.SuccessResponse("Success show suggested questions", res))
}
