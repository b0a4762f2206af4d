// Package testdb opens throwaway SQLite stores with the production schema.
package testdb

import (
	migration "Food-Wastage-Management/cmd/database/migrate"
	"Food-Wastage-Management/entities"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// New returns an empty, migrated in-memory store private to t.
func New(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, migration.Migrate(db))
	return db
}

func Date(s string) *time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &d
}

// Fixture is a small dataset covering two cities, every claim status and a
// receiver without claims.
type Fixture struct {
	Providers    []entities.Provider
	Receivers    []entities.Receiver
	FoodListings []entities.FoodListing
	Claims       []entities.Claim
}

func DefaultFixture() Fixture {
	return Fixture{
		Providers: []entities.Provider{
			{ProviderID: 1, Name: "Annapurna Kitchen", Type: "Restaurant", City: "Bengaluru", Contact: "080-1111"},
			{ProviderID: 2, Name: "Fresh Mart", Type: "Grocery Store", City: "Chennai", Contact: "044-2222"},
			{ProviderID: 3, Name: "Green Bowl", Type: "Restaurant", City: "Chennai", Contact: "044-3333"},
		},
		Receivers: []entities.Receiver{
			{ReceiverID: 1, Name: "Hope Shelter", Type: "Shelter", City: "Bengaluru", Contact: "080-9001"},
			{ReceiverID: 2, Name: "City Food Bank", Type: "NGO", City: "Chennai", Contact: "044-9002"},
			{ReceiverID: 3, Name: "Quiet Hands", Type: "Charity", City: "Chennai", Contact: "Not Provided"},
		},
		FoodListings: []entities.FoodListing{
			{FoodID: 1, FoodName: "Rice", Quantity: 10, ExpiryDate: Date("2025-03-20"), ProviderID: 1, ProviderType: "Restaurant", City: "Bengaluru", FoodType: "Vegetarian", MealType: "Lunch"},
			{FoodID: 2, FoodName: "Bread", Quantity: 5, ExpiryDate: Date("2025-03-18"), ProviderID: 2, ProviderType: "Grocery Store", City: "Chennai", FoodType: "Vegan", MealType: "Breakfast"},
			{FoodID: 3, FoodName: "Chicken Curry", Quantity: 8, ExpiryDate: Date("2025-03-19"), ProviderID: 3, ProviderType: "Restaurant", City: "Chennai", FoodType: "Non-Vegetarian", MealType: "Dinner"},
		},
		Claims: []entities.Claim{
			{ClaimID: 1, FoodID: 1, ReceiverID: 1, Status: entities.ClaimStatusCompleted},
			{ClaimID: 2, FoodID: 1, ReceiverID: 2, Status: entities.ClaimStatusCompleted},
			{ClaimID: 3, FoodID: 3, ReceiverID: 2, Status: entities.ClaimStatusCompleted},
			{ClaimID: 4, FoodID: 2, ReceiverID: 1, Status: entities.ClaimStatusPending},
		},
	}
}

// Seed inserts f parents first.
func Seed(t *testing.T, db *gorm.DB, f Fixture) {
	t.Helper()
	if len(f.Providers) > 0 {
		require.NoError(t, db.Create(&f.Providers).Error)
	}
	if len(f.Receivers) > 0 {
		require.NoError(t, db.Omit("Claims").Create(&f.Receivers).Error)
	}
	if len(f.FoodListings) > 0 {
		require.NoError(t, db.Omit("Provider").Create(&f.FoodListings).Error)
	}
	if len(f.Claims) > 0 {
		require.NoError(t, db.Create(&f.Claims).Error)
	}
}
