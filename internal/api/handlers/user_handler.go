package handlers

import (
	"github.com/bogdanpracticum/foodgram-project-react/domain"
	"github.com/bogdanpracticum/foodgram-project-react/internal/api/presenters"
	"github.com/bogdanpracticum/foodgram-project-react/internal/middleware"
	"github.com/bogdanpracticum/foodgram-project-react/pkg/user"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	UserHandler interface {
		Register(c *fiber.Ctx) error
		Login(c *fiber.Ctx) error
		Logout(c *fiber.Ctx) error
		GetUsers(c *fiber.Ctx) error
		GetUser(c *fiber.Ctx) error
		Me(c *fiber.Ctx) error
		SetPassword(c *fiber.Ctx) error
		ResetPassword(c *fiber.Ctx) error
		ResetPasswordConfirm(c *fiber.Ctx) error
		GetSubscriptions(c *fiber.Ctx) error
		Subscribe(c *fiber.Ctx) error
		Unsubscribe(c *fiber.Ctx) error
	}

	userHandler struct {
		userService user.UserService
		validator   *validator.Validate
	}
)

func NewUserHandler(userService user.UserService, validator *validator.Validate) UserHandler {
	return &userHandler{
		userService: userService,
		validator:   validator,
	}
}

func (h *userHandler) Register(c *fiber.Ctx) error {
	req := new(domain.RegisterRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRegister, err)
	}

	res, err := h.userService.Register(c.Context(), *req)
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedRegister, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessRegister)
}

func (h *userHandler) Login(c *fiber.Ctx) error {
	req := new(domain.LoginRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogin, err)
	}

	res, err := h.userService.Login(c.Context(), *req)
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedLogin, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessLogin)
}

// Logout only acknowledges the call; tokens are stateless and expire on
// their own.
func (h *userHandler) Logout(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, nil, fiber.StatusNoContent, domain.MessageSuccessLogout)
}

func (h *userHandler) GetUsers(c *fiber.Ctx) error {
	page := paginationFromQuery(c)

	res, count, err := h.userService.GetUsers(c.Context(), page, middleware.GetViewer(c))
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedGetUsers, err)
	}
	return presenters.SuccessResponse(c, domain.NewPaginationResponse(page, count, res), fiber.StatusOK, domain.MessageSuccessGetUsers)
}

func (h *userHandler) GetUser(c *fiber.Ctx) error {
	res, err := h.userService.GetUser(c.Context(), c.Params("id"), middleware.GetViewer(c))
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedGetUser, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetUser)
}

func (h *userHandler) Me(c *fiber.Ctx) error {
	res, err := h.userService.Me(c.Context(), middleware.GetViewer(c))
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedGetUser, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetUser)
}

func (h *userHandler) SetPassword(c *fiber.Ctx) error {
	req := new(domain.SetPasswordRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSetPassword, err)
	}

	if err := h.userService.SetPassword(c.Context(), *req, middleware.GetViewer(c)); err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedSetPassword, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusNoContent, domain.MessageSuccessSetPassword)
}

func (h *userHandler) ResetPassword(c *fiber.Ctx) error {
	req := new(domain.ResetPasswordRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedResetPassword, err)
	}

	if err := h.userService.ResetPassword(c.Context(), *req); err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedResetPassword, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusNoContent, domain.MessageSuccessResetPassword)
}

func (h *userHandler) ResetPasswordConfirm(c *fiber.Ctx) error {
	req := new(domain.ResetPasswordConfirmRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedResetPassword, err)
	}

	if err := h.userService.ResetPasswordConfirm(c.Context(), *req); err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedResetPassword, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusNoContent, domain.MessageSuccessConfirmReset)
}

func (h *userHandler) GetSubscriptions(c *fiber.Ctx) error {
	page := paginationFromQuery(c)

	res, count, err := h.userService.GetSubscriptions(c.Context(), page, c.QueryInt("recipes_limit"), middleware.GetViewer(c))
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedGetSubscribed, err)
	}
	return presenters.SuccessResponse(c, domain.NewPaginationResponse(page, count, res), fiber.StatusOK, domain.MessageSuccessGetSubscribed)
}

func (h *userHandler) Subscribe(c *fiber.Ctx) error {
	res, err := h.userService.Subscribe(c.Context(), c.Params("id"), c.QueryInt("recipes_limit"), middleware.GetViewer(c))
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedSubscribe, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSubscribe)
}

func (h *userHandler) Unsubscribe(c *fiber.Ctx) error {
	if err := h.userService.Unsubscribe(c.Context(), c.Params("id"), middleware.GetViewer(c)); err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedUnsubscribe, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusNoContent, domain.MessageSuccessUnsubscribe)
}
