package handlers

import (
	"Food-Wastage-Management/domain"
	"Food-Wastage-Management/internal/api/presenters"
	"Food-Wastage-Management/pkg/food"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FoodHandler interface {
		AddFoodListing(c *fiber.Ctx) error
		UpdateFoodListing(c *fiber.Ctx) error
		DeleteFoodListing(c *fiber.Ctx) error
		GetFoodListings(c *fiber.Ctx) error
		GetFoodListingDetails(c *fiber.Ctx) error
		GetFilterOptions(c *fiber.Ctx) error
		GetOrphanedClaims(c *fiber.Ctx) error
	}

	foodHandler struct {
		foodService food.FoodService
		validator   *validator.Validate
	}
)

func NewFoodHandler(foodService food.FoodService, validator *validator.Validate) FoodHandler {
	return &foodHandler{
		foodService: foodService,
		validator:   validator,
	}
}

func (h *foodHandler) AddFoodListing(c *fiber.Ctx) error {
	req := new(domain.AddFoodListingRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFoodListing, fmt.Errorf("%w: %v", domain.ErrValidation, err))
	}

	res, err := h.foodService.AddFoodListing(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedAddFoodListing, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddFoodListing)
}

func (h *foodHandler) UpdateFoodListing(c *fiber.Ctx) error {
	id, err := foodIDParam(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInvalidFoodListing, err)
	}
	req := new(domain.UpdateFoodListingRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateFoodListing, fmt.Errorf("%w: %v", domain.ErrValidation, err))
	}

	res, err := h.foodService.UpdateFoodListing(c.Context(), id, *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedUpdateFoodListing, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateFoodListing)
}

func (h *foodHandler) DeleteFoodListing(c *fiber.Ctx) error {
	id, err := foodIDParam(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInvalidFoodListing, err)
	}

	if err := h.foodService.DeleteFoodListing(c.Context(), id); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedDeleteFoodListing, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteFoodListing)
}

func (h *foodHandler) GetFoodListings(c *fiber.Ctx) error {
	filter := domain.ListingFilter{
		Cities:        queryValues(c, "city"),
		ProviderTypes: queryValues(c, "provider_type"),
		FoodTypes:     queryValues(c, "food_type"),
		MealTypes:     queryValues(c, "meal_type"),
	}

	res, err := h.foodService.BrowseFoodListings(c.Context(), sessionCache(c), filter)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedGetFoodListings, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFoodListings)
}

func (h *foodHandler) GetFoodListingDetails(c *fiber.Ctx) error {
	id, err := foodIDParam(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInvalidFoodListing, err)
	}

	res, err := h.foodService.GetFoodListingByID(c.Context(), id)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedGetFoodListings, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFoodListings)
}

func (h *foodHandler) GetFilterOptions(c *fiber.Ctx) error {
	res, err := h.foodService.GetFilterOptions(c.Context(), sessionCache(c))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedGetFilterOptions, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFilterOptions)
}

func (h *foodHandler) GetOrphanedClaims(c *fiber.Ctx) error {
	res, err := h.foodService.GetOrphanedClaims(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedGetOrphanClaim, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetOrphanClaim)
}
