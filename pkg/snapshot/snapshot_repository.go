package snapshot

import (
	"Food-Wastage-Management/domain"
	"Food-Wastage-Management/entities"
	"context"

	"gorm.io/gorm"
)

type (
	// Snapshot is one consistent in-memory copy of the four base tables.
	Snapshot struct {
		Providers    []entities.Provider
		Receivers    []entities.Receiver
		FoodListings []entities.FoodListing
		Claims       []entities.Claim
		Version      uint64
	}

	SnapshotRepository interface {
		LoadSnapshot(ctx context.Context) (*Snapshot, error)
	}

	snapshotRepository struct {
		db *gorm.DB
	}
)

func NewSnapshotRepository(db *gorm.DB) SnapshotRepository {
	return &snapshotRepository{db: db}
}

func (r *snapshotRepository) LoadSnapshot(ctx context.Context) (*Snapshot, error) {
	snap := &Snapshot{}
	db := r.db.WithContext(ctx)

	if err := db.Order("provider_id asc").Find(&snap.Providers).Error; err != nil {
		return nil, domain.StoreError(err)
	}
	if err := db.Order("receiver_id asc").Find(&snap.Receivers).Error; err != nil {
		return nil, domain.StoreError(err)
	}
	if err := db.Order("food_id asc").Find(&snap.FoodListings).Error; err != nil {
		return nil, domain.StoreError(err)
	}
	if err := db.Order("claim_id asc").Find(&snap.Claims).Error; err != nil {
		return nil, domain.StoreError(err)
	}

	return snap, nil
}
