package food

import (
	"Food-Wastage-Management/domain"
	"Food-Wastage-Management/entities"
	"Food-Wastage-Management/internal/utils"
	"Food-Wastage-Management/pkg/snapshot"
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type (
	FoodService interface {
		AddFoodListing(ctx context.Context, req domain.AddFoodListingRequest) (domain.FoodListingResponse, error)
		UpdateFoodListing(ctx context.Context, id uint, req domain.UpdateFoodListingRequest) (domain.FoodListingResponse, error)
		DeleteFoodListing(ctx context.Context, id uint) error
		GetFoodListingByID(ctx context.Context, id uint) (domain.FoodListingResponse, error)
		BrowseFoodListings(ctx context.Context, cache *snapshot.Cache, filter domain.ListingFilter) (domain.BrowseFoodListingsResponse, error)
		GetFilterOptions(ctx context.Context, cache *snapshot.Cache) (domain.FilterOptionsResponse, error)
		GetOrphanedClaims(ctx context.Context) ([]domain.OrphanedClaimResponse, error)
	}

	foodService struct {
		foodRepository FoodRepository
		invalidator    snapshot.Invalidator
		logger         *logrus.Logger
	}
)

func NewFoodService(foodRepository FoodRepository, invalidator snapshot.Invalidator) FoodService {
	return &foodService{
		foodRepository: foodRepository,
		invalidator:    invalidator,
		logger:         utils.GetLogger(),
	}
}

func (s *foodService) AddFoodListing(ctx context.Context, req domain.AddFoodListingRequest) (domain.FoodListingResponse, error) {
	if req.Quantity < 1 {
		return domain.FoodListingResponse{}, domain.ErrInvalidQuantity
	}

	expiryDate, err := parseExpiryDate(req.ExpiryDate)
	if err != nil {
		return domain.FoodListingResponse{}, err
	}

	exists, err := s.foodRepository.ProviderExists(ctx, req.ProviderID)
	if err != nil {
		return domain.FoodListingResponse{}, domain.StoreError(err)
	}
	if !exists {
		return domain.FoodListingResponse{}, domain.ErrProviderNotFound
	}

	listing := &entities.FoodListing{
		FoodName:     strings.TrimSpace(req.FoodName),
		Quantity:     req.Quantity,
		ExpiryDate:   &expiryDate,
		ProviderID:   req.ProviderID,
		ProviderType: req.ProviderType,
		City:         req.City,
		FoodType:     req.FoodType,
		MealType:     req.MealType,
	}

	if err := s.foodRepository.AddFoodListing(ctx, listing); err != nil {
		utils.LogError(s.logger, "food", "AddFoodListing", "insert food listing", req, err)
		return domain.FoodListingResponse{}, translateError(err)
	}

	s.invalidator.InvalidateAll()
	return toFoodListingResponse(listing), nil
}

func (s *foodService) UpdateFoodListing(ctx context.Context, id uint, req domain.UpdateFoodListingRequest) (domain.FoodListingResponse, error) {
	if req.Quantity < 1 {
		return domain.FoodListingResponse{}, domain.ErrInvalidQuantity
	}

	expiryDate, err := parseExpiryDate(req.ExpiryDate)
	if err != nil {
		return domain.FoodListingResponse{}, err
	}

	listing, err := s.foodRepository.GetFoodListingByID(ctx, id)
	if err != nil {
		return domain.FoodListingResponse{}, translateError(err)
	}

	listing.FoodName = strings.TrimSpace(req.FoodName)
	listing.Quantity = req.Quantity
	listing.ExpiryDate = &expiryDate
	listing.ProviderType = req.ProviderType
	listing.City = req.City
	listing.FoodType = req.FoodType
	listing.MealType = req.MealType

	fields := map[string]interface{}{
		"food_name":     listing.FoodName,
		"quantity":      listing.Quantity,
		"expiry_date":   listing.ExpiryDate,
		"provider_type": listing.ProviderType,
		"city":          listing.City,
		"food_type":     listing.FoodType,
		"meal_type":     listing.MealType,
	}

	if err := s.foodRepository.UpdateFoodListing(ctx, id, fields); err != nil {
		utils.LogError(s.logger, "food", "UpdateFoodListing", "update food listing", id, err)
		return domain.FoodListingResponse{}, translateError(err)
	}

	s.invalidator.InvalidateAll()
	return toFoodListingResponse(listing), nil
}

// DeleteFoodListing removes the listing only. Claims that point at it stay
// and show up in GetOrphanedClaims.
func (s *foodService) DeleteFoodListing(ctx context.Context, id uint) error {
	if _, err := s.foodRepository.GetFoodListingByID(ctx, id); err != nil {
		return translateError(err)
	}

	affected, err := s.foodRepository.DeleteFoodListing(ctx, id)
	if err != nil {
		utils.LogError(s.logger, "food", "DeleteFoodListing", "delete food listing", id, err)
		return translateError(err)
	}
	if affected == 0 {
		return domain.ErrFoodListingNotFound
	}

	s.invalidator.InvalidateAll()
	return nil
}

func (s *foodService) GetFoodListingByID(ctx context.Context, id uint) (domain.FoodListingResponse, error) {
	listing, err := s.foodRepository.GetFoodListingByID(ctx, id)
	if err != nil {
		return domain.FoodListingResponse{}, translateError(err)
	}
	return toFoodListingResponse(listing), nil
}

func (s *foodService) BrowseFoodListings(ctx context.Context, cache *snapshot.Cache, filter domain.ListingFilter) (domain.BrowseFoodListingsResponse, error) {
	snap, err := cache.Get(ctx)
	if err != nil {
		return domain.BrowseFoodListingsResponse{}, err
	}

	filtered := FilterListings(snap.FoodListings, filter)
	items := make([]domain.FoodListingResponse, 0, len(filtered))
	for i := range filtered {
		items = append(items, toFoodListingResponse(&filtered[i]))
	}

	return domain.BrowseFoodListingsResponse{
		Items:           items,
		Total:           len(items),
		SnapshotVersion: snap.Version,
	}, nil
}

func (s *foodService) GetFilterOptions(ctx context.Context, cache *snapshot.Cache) (domain.FilterOptionsResponse, error) {
	snap, err := cache.Get(ctx)
	if err != nil {
		return domain.FilterOptionsResponse{}, err
	}
	return FilterOptions(snap.FoodListings), nil
}

func (s *foodService) GetOrphanedClaims(ctx context.Context) ([]domain.OrphanedClaimResponse, error) {
	claims, err := s.foodRepository.GetOrphanedClaims(ctx)
	if err != nil {
		return nil, domain.StoreError(err)
	}

	response := make([]domain.OrphanedClaimResponse, 0, len(claims))
	for _, c := range claims {
		response = append(response, domain.OrphanedClaimResponse{
			ClaimID:    c.ClaimID,
			FoodID:     c.FoodID,
			ReceiverID: c.ReceiverID,
			Status:     c.Status,
			Timestamp:  c.Timestamp,
		})
	}
	return response, nil
}

func parseExpiryDate(raw string) (time.Time, error) {
	expiryDate, err := time.Parse(domain.ExpiryDateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, domain.ErrInvalidExpiryDate
	}
	return expiryDate, nil
}

func translateError(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.ErrFoodListingNotFound
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return domain.ErrProviderNotFound
	default:
		return domain.StoreError(err)
	}
}

func toFoodListingResponse(l *entities.FoodListing) domain.FoodListingResponse {
	return domain.FoodListingResponse{
		FoodID:       l.FoodID,
		FoodName:     l.FoodName,
		Quantity:     l.Quantity,
		ExpiryDate:   l.ExpiryDate,
		ProviderID:   l.ProviderID,
		ProviderType: l.ProviderType,
		City:         l.City,
		FoodType:     l.FoodType,
		MealType:     l.MealType,
	}
}
