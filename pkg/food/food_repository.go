package food

import (
	"Food-Wastage-Management/entities"
	"context"

	"gorm.io/gorm"
)

type (
	FoodRepository interface {
		AddFoodListing(ctx context.Context, listing *entities.FoodListing) error
		GetFoodListingByID(ctx context.Context, id uint) (*entities.FoodListing, error)
		UpdateFoodListing(ctx context.Context, id uint, fields map[string]interface{}) error
		DeleteFoodListing(ctx context.Context, id uint) (int64, error)
		ProviderExists(ctx context.Context, providerID uint) (bool, error)
		GetOrphanedClaims(ctx context.Context) ([]*entities.Claim, error)
	}

	foodRepository struct {
		db *gorm.DB
	}
)

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

func (r *foodRepository) AddFoodListing(ctx context.Context, listing *entities.FoodListing) error {
	return r.db.WithContext(ctx).Omit("Provider").Create(listing).Error
}

func (r *foodRepository) GetFoodListingByID(ctx context.Context, id uint) (*entities.FoodListing, error) {
	var listing entities.FoodListing
	if err := r.db.WithContext(ctx).Where("food_id = ?", id).First(&listing).Error; err != nil {
		return nil, err
	}
	return &listing, nil
}

// UpdateFoodListing writes every key of fields in one UPDATE, zero values included.
func (r *foodRepository) UpdateFoodListing(ctx context.Context, id uint, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&entities.FoodListing{}).
		Where("food_id = ?", id).
		Updates(fields).Error
}

func (r *foodRepository) DeleteFoodListing(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("food_id = ?", id).Delete(&entities.FoodListing{})
	return res.RowsAffected, res.Error
}

func (r *foodRepository) ProviderExists(ctx context.Context, providerID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Provider{}).
		Where("provider_id = ?", providerID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *foodRepository) GetOrphanedClaims(ctx context.Context) ([]*entities.Claim, error) {
	var claims []*entities.Claim
	if err := r.db.WithContext(ctx).
		Where("NOT EXISTS (SELECT 1 FROM food_listings f WHERE f.food_id = claims.food_id)").
		Order("claim_id asc").
		Find(&claims).Error; err != nil {
		return nil, err
	}
	return claims, nil
}
