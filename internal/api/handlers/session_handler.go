package handlers

import (
	"Food-Wastage-Management/domain"
	"Food-Wastage-Management/internal/api/presenters"
	"Food-Wastage-Management/pkg/admin"
	"Food-Wastage-Management/pkg/snapshot"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	SessionHandler interface {
		CreateSession(c *fiber.Ctx) error
		DeleteSession(c *fiber.Ctx) error
		Login(c *fiber.Ctx) error
	}

	sessionHandler struct {
		registry     *snapshot.Registry
		adminService admin.AdminService
		validator    *validator.Validate
	}
)

func NewSessionHandler(registry *snapshot.Registry, adminService admin.AdminService, validator *validator.Validate) SessionHandler {
	return &sessionHandler{
		registry:     registry,
		adminService: adminService,
		validator:    validator,
	}
}

func (h *sessionHandler) CreateSession(c *fiber.Ctx) error {
	id := h.registry.NewSession()
	c.Set(domain.SessionHeader, id.String())
	return presenters.SuccessResponse(c, domain.SessionResponse{SessionID: id.String()}, fiber.StatusCreated, domain.MessageSuccessCreateSession)
}

func (h *sessionHandler) DeleteSession(c *fiber.Ctx) error {
	id, err := snapshot.ParseSessionID(c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteSession, err)
	}

	if err := h.registry.Close(id); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedDeleteSession, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteSession)
}

func (h *sessionHandler) Login(c *fiber.Ctx) error {
	req := new(domain.LoginRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogin, fmt.Errorf("%w: %v", domain.ErrValidation, err))
	}

	res, err := h.adminService.Login(c.Context(), *req)
	if err != nil {
		status := fiber.StatusInternalServerError
		if errors.Is(err, domain.ErrInvalidCredentials) || errors.Is(err, domain.ErrUserNotAllowed) {
			status = fiber.StatusUnauthorized
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedLogin, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessLogin)
}
