package handlers

import (
	"Food-Wastage-Management/domain"
	"Food-Wastage-Management/internal/api/presenters"
	"Food-Wastage-Management/pkg/directory"

	"github.com/gofiber/fiber/v2"
)

type (
	DirectoryHandler interface {
		GetProviders(c *fiber.Ctx) error
		GetReceivers(c *fiber.Ctx) error
	}

	directoryHandler struct {
		directoryService directory.DirectoryService
	}
)

func NewDirectoryHandler(directoryService directory.DirectoryService) DirectoryHandler {
	return &directoryHandler{
		directoryService: directoryService,
	}
}

func (h *directoryHandler) GetProviders(c *fiber.Ctx) error {
	res, err := h.directoryService.GetProviderContacts(c.Context(), sessionCache(c))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedGetDirectory, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDirectory)
}

func (h *directoryHandler) GetReceivers(c *fiber.Ctx) error {
	res, err := h.directoryService.GetReceiverContacts(c.Context(), sessionCache(c))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedGetDirectory, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDirectory)
}
