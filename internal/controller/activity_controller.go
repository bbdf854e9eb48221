package controller

import (
	"metory-be/internal/pkg/serverutils"
	"metory-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IActivityController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	MarkRead(ctx *fiber.Ctx) error
	MarkAllRead(ctx *fiber.Ctx) error
}

type activityController struct {
	activityService service.IActivityService
}

func NewActivityController(activityService service.IActivityService) IActivityController {
	return &activityController{
		activityService: activityService,
	}
}

func (c *activityController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/activity/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.List)
	h.Put(":id/read", c.MarkRead)
	h.Put("read-all", c.MarkAllRead)
}

func (c *activityController) List(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	page := ctx.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := ctx.QueryInt("limit", 20)
	if limit < 1 || limit > 50 {
		limit = 20
	}

	res, err := c.activityService.List(ctx.Context(), userId, limit, (page-1)*limit)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show activities", res))
}

func (c *activityController) MarkRead(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	activityId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid activity id")
	}

	if err := c.activityService.MarkRead(ctx.Context(), userId, activityId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Activity marked as read", nil))
}

func (c *activityController) MarkAllRead(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	if err := c.activityService.MarkAllRead(ctx.Context(), userId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("All activities marked as read", nil))
}
