package domain

import (
	"fmt"
	"time"
)

const ExpiryDateLayout = "2006-01-02"

var (
	MessageSuccessAddFoodListing    = "food listing added successfully"
	MessageSuccessUpdateFoodListing = "food listing updated successfully"
	MessageSuccessDeleteFoodListing = "food listing deleted successfully"
	MessageSuccessGetFoodListings   = "food listings retrieved successfully"
	MessageSuccessGetFilterOptions  = "filter options retrieved successfully"
	MessageFailedAddFoodListing     = "failed to add food listing"
	MessageFailedUpdateFoodListing  = "failed to update food listing"
	MessageFailedDeleteFoodListing  = "failed to delete food listing"
	MessageFailedGetFoodListings    = "failed to retrieve food listings"
	MessageFailedGetFilterOptions   = "failed to retrieve filter options"
	MessageFailedInvalidFoodListing = "invalid food listing id"

	ErrFoodListingNotFound = fmt.Errorf("food listing %w", ErrNotFound)
	ErrProviderNotFound    = fmt.Errorf("%w: provider does not exist", ErrForeignKey)
	ErrInvalidQuantity     = fmt.Errorf("%w: quantity must be at least 1", ErrValidation)
	ErrInvalidExpiryDate   = fmt.Errorf("%w: expiry date must be YYYY-MM-DD", ErrValidation)
	ErrInvalidFoodID       = fmt.Errorf("%w: invalid food id", ErrValidation)
)

type (
	AddFoodListingRequest struct {
		FoodName     string `json:"food_name" validate:"required"`
		Quantity     int    `json:"quantity" validate:"required,min=1"`
		ExpiryDate   string `json:"expiry_date" validate:"required"`
		ProviderID   uint   `json:"provider_id" validate:"required"`
		ProviderType string `json:"provider_type" validate:"required"`
		City         string `json:"city" validate:"required"`
		FoodType     string `json:"food_type" validate:"required"`
		MealType     string `json:"meal_type" validate:"required"`
	}

	// UpdateFoodListingRequest replaces every mutable field. The provider of a
	// listing cannot change.
	UpdateFoodListingRequest struct {
		FoodName     string `json:"food_name" validate:"required"`
		Quantity     int    `json:"quantity" validate:"required,min=1"`
		ExpiryDate   string `json:"expiry_date" validate:"required"`
		ProviderType string `json:"provider_type" validate:"required"`
		City         string `json:"city" validate:"required"`
		FoodType     string `json:"food_type" validate:"required"`
		MealType     string `json:"meal_type" validate:"required"`
	}

	FoodListingResponse struct {
		FoodID       uint       `json:"food_id"`
		FoodName     string     `json:"food_name"`
		Quantity     int        `json:"quantity"`
		ExpiryDate   *time.Time `json:"expiry_date,omitempty"`
		ProviderID   uint       `json:"provider_id"`
		ProviderType string     `json:"provider_type"`
		City         string     `json:"city"`
		FoodType     string     `json:"food_type"`
		MealType     string     `json:"meal_type"`
	}

	// ListingFilter holds the allowed values per dimension. An empty dimension
	// does not restrict.
	ListingFilter struct {
		Cities        []string `json:"city"`
		ProviderTypes []string `json:"provider_type"`
		FoodTypes     []string `json:"food_type"`
		MealTypes     []string `json:"meal_type"`
	}

	FilterOptionsResponse struct {
		Cities        []string `json:"city"`
		ProviderTypes []string `json:"provider_type"`
		FoodTypes     []string `json:"food_type"`
		MealTypes     []string `json:"meal_type"`
	}

	BrowseFoodListingsResponse struct {
		Items           []FoodListingResponse `json:"items"`
		Total           int                   `json:"total"`
		SnapshotVersion uint64                `json:"snapshot_version"`
	}
)
