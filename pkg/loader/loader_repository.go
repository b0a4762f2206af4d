package loader

import (
	"Food-Wastage-Management/entities"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const batchSize = 500

type (
	LoaderRepository interface {
		InsertProviders(ctx context.Context, rows []entities.Provider) (int64, error)
		InsertReceivers(ctx context.Context, rows []entities.Receiver) (int64, error)
		InsertFoodListings(ctx context.Context, rows []entities.FoodListing) (int64, error)
		InsertClaims(ctx context.Context, rows []entities.Claim) (int64, error)
	}

	loaderRepository struct {
		db *gorm.DB
	}
)

func NewLoaderRepository(db *gorm.DB) LoaderRepository {
	return &loaderRepository{db: db}
}

// insert writes rows in batches inside one transaction. Rows whose primary
// key already exists are skipped, so a load can be repeated.
func insert[T any](ctx context.Context, db *gorm.DB, rows []T) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	var inserted int64
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Omit(clause.Associations).
			CreateInBatches(rows, batchSize)
		if res.Error != nil {
			return res.Error
		}
		inserted = res.RowsAffected
		return nil
	})
	return inserted, err
}

func (r *loaderRepository) InsertProviders(ctx context.Context, rows []entities.Provider) (int64, error) {
	return insert(ctx, r.db, rows)
}

func (r *loaderRepository) InsertReceivers(ctx context.Context, rows []entities.Receiver) (int64, error) {
	return insert(ctx, r.db, rows)
}

func (r *loaderRepository) InsertFoodListings(ctx context.Context, rows []entities.FoodListing) (int64, error) {
	inserted, err := insert(ctx, r.db, rows)
	if err != nil {
		return inserted, err
	}
	// explicit ids do not advance a postgres serial; realign it so later
	// inserts get fresh ids
	if r.db.Dialector.Name() == "postgres" {
		err = r.db.WithContext(ctx).Exec(
			`SELECT setval(pg_get_serial_sequence('food_listings', 'food_id'), COALESCE(MAX(food_id), 1)) FROM food_listings`,
		).Error
	}
	return inserted, err
}

func (r *loaderRepository) InsertClaims(ctx context.Context, rows []entities.Claim) (int64, error) {
	return insert(ctx, r.db, rows)
}
