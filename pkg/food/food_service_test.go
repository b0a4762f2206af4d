package food

import (
	"Food-Wastage-Management/domain"
	"Food-Wastage-Management/entities"
	"Food-Wastage-Management/internal/utils/testdb"
	"Food-Wastage-Management/pkg/report"
	"Food-Wastage-Management/pkg/snapshot"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type countingInvalidator struct {
	calls int
}

func (c *countingInvalidator) InvalidateAll() {
	c.calls++
}

func newTestService(t *testing.T) (FoodService, *gorm.DB, *countingInvalidator) {
	t.Helper()
	db := testdb.New(t)
	testdb.Seed(t, db, testdb.DefaultFixture())
	inv := &countingInvalidator{}
	return NewFoodService(NewFoodRepository(db), inv), db, inv
}

func validAddRequest() domain.AddFoodListingRequest {
	return domain.AddFoodListingRequest{
		FoodName:     "Dal",
		Quantity:     12,
		ExpiryDate:   "2025-04-01",
		ProviderID:   1,
		ProviderType: "Restaurant",
		City:         "Bengaluru",
		FoodType:     "Vegetarian",
		MealType:     "Dinner",
	}
}

func countListings(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&entities.FoodListing{}).Count(&n).Error)
	return n
}

func totalQuantity(t *testing.T, reports report.ReportService) int64 {
	t.Helper()
	table, err := reports.RunReport(context.Background(), "Total Food Quantity Available")
	require.NoError(t, err)
	return table.Rows[0][0].(int64)
}

func TestAddEditDeleteRoundTrip(t *testing.T) {
	svc, db, inv := newTestService(t)
	reports := report.NewReportService(report.NewReportRepository(db), nil)
	ctx := context.Background()

	require.Equal(t, int64(23), totalQuantity(t, reports))

	added, err := svc.AddFoodListing(ctx, validAddRequest())
	require.NoError(t, err)
	assert.Equal(t, uint(4), added.FoodID)
	assert.Equal(t, int64(35), totalQuantity(t, reports))

	edited, err := svc.UpdateFoodListing(ctx, added.FoodID, domain.UpdateFoodListingRequest{
		FoodName:     "Dal Tadka",
		Quantity:     20,
		ExpiryDate:   "2025-04-02",
		ProviderType: "Restaurant",
		City:         "Bengaluru",
		FoodType:     "Vegetarian",
		MealType:     "Lunch",
	})
	require.NoError(t, err)
	assert.Equal(t, "Dal Tadka", edited.FoodName)
	assert.Equal(t, uint(1), edited.ProviderID)
	assert.Equal(t, int64(43), totalQuantity(t, reports))

	stored, err := svc.GetFoodListingByID(ctx, added.FoodID)
	require.NoError(t, err)
	assert.Equal(t, 20, stored.Quantity)
	assert.Equal(t, "Lunch", stored.MealType)
	require.NotNil(t, stored.ExpiryDate)
	assert.Equal(t, "2025-04-02", stored.ExpiryDate.Format(domain.ExpiryDateLayout))

	require.NoError(t, svc.DeleteFoodListing(ctx, added.FoodID))
	assert.Equal(t, int64(23), totalQuantity(t, reports))

	_, err = svc.GetFoodListingByID(ctx, added.FoodID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 3, inv.calls)
}

func TestAddFoodListingValidation(t *testing.T) {
	svc, db, inv := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*domain.AddFoodListingRequest)
		wantErr error
	}{
		{"zero quantity", func(r *domain.AddFoodListingRequest) { r.Quantity = 0 }, domain.ErrValidation},
		{"negative quantity", func(r *domain.AddFoodListingRequest) { r.Quantity = -3 }, domain.ErrValidation},
		{"bad expiry date", func(r *domain.AddFoodListingRequest) { r.ExpiryDate = "01/04/2025" }, domain.ErrValidation},
		{"unknown provider", func(r *domain.AddFoodListingRequest) { r.ProviderID = 99 }, domain.ErrForeignKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validAddRequest()
			tt.mutate(&req)
			_, err := svc.AddFoodListing(ctx, req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	assert.Equal(t, int64(3), countListings(t, db))
	assert.Zero(t, inv.calls)
}

func TestUpdateFoodListingMissing(t *testing.T) {
	svc, _, inv := newTestService(t)

	_, err := svc.UpdateFoodListing(context.Background(), 42, domain.UpdateFoodListingRequest{
		FoodName:     "Ghost",
		Quantity:     1,
		ExpiryDate:   "2025-04-01",
		ProviderType: "Restaurant",
		City:         "Chennai",
		FoodType:     "Vegan",
		MealType:     "Lunch",
	})
	assert.ErrorIs(t, err, domain.ErrFoodListingNotFound)
	assert.Zero(t, inv.calls)
}

func TestUpdateFoodListingRejectsZeroQuantity(t *testing.T) {
	svc, _, inv := newTestService(t)

	_, err := svc.UpdateFoodListing(context.Background(), 1, domain.UpdateFoodListingRequest{
		FoodName:   "Rice",
		Quantity:   0,
		ExpiryDate: "2025-03-20",
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Zero(t, inv.calls)
}

func TestDeleteFoodListingMissingLeavesStoreUnchanged(t *testing.T) {
	svc, db, inv := newTestService(t)

	err := svc.DeleteFoodListing(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrFoodListingNotFound)
	assert.Equal(t, int64(3), countListings(t, db))
	assert.Zero(t, inv.calls)
}

func TestDeleteLeavesClaimsOrphaned(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	orphans, err := svc.GetOrphanedClaims(ctx)
	require.NoError(t, err)
	assert.Empty(t, orphans)

	require.NoError(t, svc.DeleteFoodListing(ctx, 1))

	orphans, err = svc.GetOrphanedClaims(ctx)
	require.NoError(t, err)
	require.Len(t, orphans, 2)
	assert.Equal(t, uint(1), orphans[0].ClaimID)
	assert.Equal(t, uint(2), orphans[1].ClaimID)
}

func TestBrowseRefreshesAfterWrite(t *testing.T) {
	db := testdb.New(t)
	testdb.Seed(t, db, testdb.DefaultFixture())
	registry := snapshot.NewRegistry(snapshot.NewSnapshotRepository(db))
	svc := NewFoodService(NewFoodRepository(db), registry)
	ctx := context.Background()

	cache, err := registry.Session(registry.NewSession())
	require.NoError(t, err)
	filter := domain.ListingFilter{Cities: []string{"Bengaluru"}}

	before, err := svc.BrowseFoodListings(ctx, cache, filter)
	require.NoError(t, err)
	assert.Equal(t, 1, before.Total)
	assert.Equal(t, uint64(1), before.SnapshotVersion)

	_, err = svc.AddFoodListing(ctx, validAddRequest())
	require.NoError(t, err)
	assert.True(t, cache.Dirty())

	after, err := svc.BrowseFoodListings(ctx, cache, filter)
	require.NoError(t, err)
	assert.Equal(t, 2, after.Total)
	assert.Equal(t, uint64(2), after.SnapshotVersion)

	opts, err := svc.GetFilterOptions(ctx, cache)
	require.NoError(t, err)
	assert.Equal(t, []string{"Bengaluru", "Chennai"}, opts.Cities)
	assert.Equal(t, []string{"Lunch", "Breakfast", "Dinner"}, opts.MealTypes)
}
