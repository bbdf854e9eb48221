package controller

import (
	"errors"

	"metory-be/internal/dto"
	"metory-be/internal/pkg/serverutils"
	"metory-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IStoryController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Feed(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Mine(ctx *fiber.Ctx) error
	UploadURL(ctx *fiber.Ctx) error
	VideoUploaded(ctx *fiber.Ctx) error
	Reorder(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Like(ctx *fiber.Ctx) error
	Unlike(ctx *fiber.Ctx) error
	Save(ctx *fiber.Ctx) error
	Unsave(ctx *fiber.Ctx) error
	Saved(ctx *fiber.Ctx) error
	Comment(ctx *fiber.Ctx) error
	Comments(ctx *fiber.Ctx) error
}

type storyController struct {
	storyService service.IStoryService
}

func NewStoryController(storyService service.IStoryService) IStoryController {
	return &storyController{
		storyService: storyService,
	}
}

func (c *storyController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/story/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Create)
	h.Get("feed", c.Feed)
	h.Get("mine", c.Mine)
	h.Get("saved", c.Saved)
	h.Post("video-uploaded", c.VideoUploaded)
	h.Get(":id", c.Show)
	h.Post(":id/upload-url", c.UploadURL)
	h.Put(":id/reorder", c.Reorder)
	h.Delete(":id", c.Delete)
	h.Post(":id/like", c.Like)
	h.Delete(":id/like", c.Unlike)
	h.Post(":id/save", c.Save)
	h.Delete(":id/save", c.Unsave)
	h.Post(":id/comment", c.Comment)
	h.Get(":id/comments", c.Comments)
}

func (c *storyController) Create(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	var req dto.CreateStoryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.storyService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return mapStoryError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create story", res))
}

func (c *storyController) Feed(ctx *fiber.Ctx) error {
	topic := ctx.Query("topic")
	page := ctx.QueryInt("page", 1)
	limit := ctx.QueryInt("limit", 10)

	res, err := c.storyService.Feed(ctx.Context(), topic, page, limit)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show feed", res))
}

func (c *storyController) Mine(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)
	page := ctx.QueryInt("page", 1)
	limit := ctx.QueryInt("limit", 10)

	res, err := c.storyService.ListByUser(ctx.Context(), userId, true, page, limit)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show stories", res))
}

func (c *storyController) Show(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	storyId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid story id")
	}

	res, err := c.storyService.GetById(ctx.Context(), userId, storyId)
	if err != nil {
		return mapStoryError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show story", res))
}

func (c *storyController) UploadURL(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	storyId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid story id")
	}

	var req dto.UploadURLRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.storyService.UploadURL(ctx.Context(), userId, storyId, &req)
	if err != nil {
		return mapStoryError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create upload ticket", res))
}

func (c *storyController) VideoUploaded(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	var req dto.VideoUploadedRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.storyService.VideoUploaded(ctx.Context(), userId, &req); err != nil {
		return mapStoryError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Clip marked ready", nil))
}

func (c *storyController) Reorder(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	storyId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid story id")
	}

	var req dto.ReorderClipsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.storyService.ReorderClips(ctx.Context(), userId, storyId, &req); err != nil {
		return mapStoryError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success reorder clips", nil))
}

func (c *storyController) Delete(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	storyId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid story id")
	}

	if err := c.storyService.Delete(ctx.Context(), userId, storyId); err != nil {
		return mapStoryError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success delete story", nil))
}

func (c *storyController) Like(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	storyId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid story id")
	}

	if err := c.storyService.Like(ctx.Context(), userId, storyId); err != nil {
		return mapStoryError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success like story", nil))
}

func (c *storyController) Unlike(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	storyId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid story id")
	}

	if err := c.storyService.Unlike(ctx.Context(), userId, storyId); err != nil {
		return mapStoryError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success unlike story", nil))
}

func (c *storyController) Save(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	storyId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid story id")
	}

	if err := c.storyService.Save(ctx.Context(), userId, storyId); err != nil {
		return mapStoryError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success save story", nil))
}

func (c *storyController) Unsave(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	storyId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid story id")
	}

	if err := c.storyService.Unsave(ctx.Context(), userId, storyId); err != nil {
		return mapStoryError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success unsave story", nil))
}

func (c *storyController) Saved(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)
	page := ctx.QueryInt("page", 1)
	limit := ctx.QueryInt("limit", 10)

	res, err := c.storyService.Saved(ctx.Context(), userId, page, limit)
	if err != nil {
		return mapStoryError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show saved stories", res))
}

func (c *storyController) Comment(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	storyId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid story id")
	}

	var req dto.CommentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.storyService.Comment(ctx.Context(), userId, storyId, &req); err != nil {
		return mapStoryError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success comment story", nil))
}

func (c *storyController) Comments(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	storyId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid story id")
	}

	page := ctx.QueryInt("page", 1)
	limit := ctx.QueryInt("limit", 20)

	res, err := c.storyService.Comments(ctx.Context(), userId, storyId, page, limit)
	if err != nil {
		return mapStoryError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show comments", res))
}

func mapStoryError(err error) error {
	switch {
	case errors.Is(err, service.ErrStoryNotFound), errors.Is(err, service.ErrClipNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrNotStoryOwner), errors.Is(err, service.ErrStoryIsPrivate):
		return fiber.NewError(fiber.StatusForbidden, err.Error())
	default:
		return err
	}
}
