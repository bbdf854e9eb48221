package controller

import (
	"errors"

	"metory-be/internal/dto"
	"metory-be/internal/pkg/serverutils"
	"metory-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IUserController interface {
	RegisterRoutes(r fiber.Router)
	Me(ctx *fiber.Ctx) error
	UpdateMe(ctx *fiber.Ctx) error
	Profile(ctx *fiber.Ctx) error
	Follow(ctx *fiber.Ctx) error
	Unfollow(ctx *fiber.Ctx) error
}

type userController struct {
	userService service.IUserService
}

func NewUserController(userService service.IUserService) IUserController {
	return &userController{
		userService: userService,
	}
}

func (c *userController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/user/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("me", c.Me)
	h.Put("me", c.UpdateMe)
	h.Get(":id", c.Profile)
	h.Post(":id/follow", c.Follow)
	h.Delete(":id/follow", c.Unfollow)
}

func currentUserId(ctx *fiber.Ctx) uuid.UUID {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	return userId
}

func (c *userController) Me(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	res, err := c.userService.GetProfile(ctx.Context(), userId)
	if err != nil {
		return mapUserError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show profile", res))
}

func (c *userController) UpdateMe(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	var req dto.UpdateProfileRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.userService.UpdateProfile(ctx.Context(), userId, &req)
	if err != nil {
		return mapUserError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update profile", res))
}

func (c *userController) Profile(ctx *fiber.Ctx) error {
	viewerId := currentUserId(ctx)

	targetId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid user id")
	}

	res, err := c.userService.GetPublicProfile(ctx.Context(), viewerId, targetId)
	if err != nil {
		return mapUserError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show profile", res))
}

func (c *userController) Follow(ctx *fiber.Ctx) error {
	followerId := currentUserId(ctx)

	followeeId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid user id")
	}

	if err := c.userService.Follow(ctx.Context(), followerId, followeeId); err != nil {
		return mapUserError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success follow user", nil))
}

func (c *userController) Unfollow(ctx *fiber.Ctx) error {
	followerId := currentUserId(ctx)

	followeeId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid user id")
	}

	if err := c.userService.Unfollow(ctx.Context(), followerId, followeeId); err != nil {
		return mapUserError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success unfollow user", nil))
}

func mapUserError(err error) error {
	if errors.Is(err, service.ErrUserNotFound) {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}
	return err
}
