package controller

import (
	"errors"

	"metory-be/internal/dto"
	"metory-be/internal/pkg/serverutils"
	"metory-be/internal/service"
	"metory-be/pkg/interaction"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IInteractionController interface {
	RegisterRoutes(r fiber.Router)
	Open(ctx *fiber.Ctx) error
	Ask(ctx *fiber.Ctx) error
	SelectClip(ctx *fiber.Ctx) error
	Transcript(ctx *fiber.Ctx) error
	Close(ctx *fiber.Ctx) error
}

type interactionController struct {
	interactionService service.IInteractionService
}

func NewInteractionController(interactionService service.IInteractionService) IInteractionController {
	return &interactionController{
		interactionService: interactionService,
	}
}

func (c *interactionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/interaction/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("sessions", c.Open)
	h.Post("sessions/:id/ask", c.Ask)
	h.Post("sessions/:id/select", c.SelectClip)
	h.Get("sessions/:id/transcript", c.Transcript)
	h.Delete("sessions/:id", c.Close)
}

func (c *interactionController) Open(ctx *fiber.Ctx) error {
	viewerId := currentUserId(ctx)

	var req dto.OpenSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.interactionService.Open(ctx.Context(), viewerId, &req)
	if err != nil {
		return mapInteractionError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Session opened", res))
}

func (c *interactionController) Ask(ctx *fiber.Ctx) error {
	viewerId := currentUserId(ctx)

	sessionId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid session id")
	}

	var req dto.AskRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.interactionService.Ask(ctx.Context(), viewerId, sessionId, &req)
	if err != nil {
		return mapInteractionError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Question resolved", res))
}

func (c *interactionController) SelectClip(ctx *fiber.Ctx) error {
	viewerId := currentUserId(ctx)

	sessionId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid session id")
	}

	var req dto.SelectClipRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.interactionService.SelectClip(ctx.Context(), viewerId, sessionId, &req)
	if err != nil {
		return mapInteractionError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Clip selected", res))
}

func (c *interactionController) Transcript(ctx *fiber.Ctx) error {
	viewerId := currentUserId(ctx)

	sessionId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid session id")
	}

	res, err := c.interactionService.Transcript(ctx.Context(), viewerId, sessionId)
	if err != nil {
		return mapInteractionError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show transcript", res))
}

func (c *interactionController) Close(ctx *fiber.Ctx) error {
	viewerId := currentUserId(ctx)

	sessionId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid session id")
	}

	if err := c.interactionService.Close(ctx.Context(), viewerId, sessionId); err != nil {
		return mapInteractionError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Session closed", nil))
}

func mapInteractionError(err error) error {
	switch {
	case errors.Is(err, service.ErrSessionNotFound),
		errors.Is(err, service.ErrStoryNotFound),
		errors.Is(err, interaction.ErrSessionClosed):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrNotSessionOwner), errors.Is(err, service.ErrStoryIsPrivate):
		return fiber.NewError(fiber.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrSessionBusy):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	case errors.Is(err, service.ErrNoPlayableClips),
		errors.Is(err, service.ErrQueryNotAccepted),
		errors.Is(err, interaction.ErrClipNotInStory):
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	default:
		return err
	}
}
