package food

import (
	"Food-Wastage-Management/domain"
	"Food-Wastage-Management/entities"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleListings() []entities.FoodListing {
	return []entities.FoodListing{
		{FoodID: 1, FoodName: "Rice", City: "Bengaluru", ProviderType: "Restaurant", FoodType: "Vegetarian", MealType: "Lunch"},
		{FoodID: 2, FoodName: "Bread", City: "Chennai", ProviderType: "Grocery Store", FoodType: "Vegan", MealType: "Breakfast"},
		{FoodID: 3, FoodName: "Chicken Curry", City: "Chennai", ProviderType: "Restaurant", FoodType: "Non-Vegetarian", MealType: "Dinner"},
		{FoodID: 4, FoodName: "Idli", City: "Bengaluru", ProviderType: "Restaurant", FoodType: "Vegetarian", MealType: "Breakfast"},
	}
}

func ids(listings []entities.FoodListing) []uint {
	out := make([]uint, 0, len(listings))
	for _, l := range listings {
		out = append(out, l.FoodID)
	}
	return out
}

func TestFilterListings(t *testing.T) {
	tests := []struct {
		name   string
		filter domain.ListingFilter
		want   []uint
	}{
		{"empty filter keeps everything", domain.ListingFilter{}, []uint{1, 2, 3, 4}},
		{"single city", domain.ListingFilter{Cities: []string{"Chennai"}}, []uint{2, 3}},
		{"values within a dimension are ORed", domain.ListingFilter{MealTypes: []string{"Lunch", "Dinner"}}, []uint{1, 3}},
		{"dimensions are ANDed", domain.ListingFilter{Cities: []string{"Bengaluru"}, MealTypes: []string{"Breakfast"}}, []uint{4}},
		{"all four dimensions", domain.ListingFilter{
			Cities:        []string{"Chennai"},
			ProviderTypes: []string{"Restaurant"},
			FoodTypes:     []string{"Non-Vegetarian"},
			MealTypes:     []string{"Dinner"},
		}, []uint{3}},
		{"no match", domain.ListingFilter{Cities: []string{"Mumbai"}}, []uint{}},
		{"match is exact", domain.ListingFilter{Cities: []string{"chennai"}}, []uint{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterListings(sampleListings(), tt.filter)
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilterListingsEmptyInput(t *testing.T) {
	got := FilterListings(nil, domain.ListingFilter{Cities: []string{"Chennai"}})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilterListingsDoesNotModifyInput(t *testing.T) {
	listings := sampleListings()
	_ = FilterListings(listings, domain.ListingFilter{Cities: []string{"Chennai"}})
	assert.Equal(t, sampleListings(), listings)
}

func TestFilterOptions(t *testing.T) {
	opts := FilterOptions(sampleListings())

	assert.Equal(t, []string{"Bengaluru", "Chennai"}, opts.Cities)
	assert.Equal(t, []string{"Restaurant", "Grocery Store"}, opts.ProviderTypes)
	assert.Equal(t, []string{"Vegetarian", "Vegan", "Non-Vegetarian"}, opts.FoodTypes)
	assert.Equal(t, []string{"Lunch", "Breakfast", "Dinner"}, opts.MealTypes)

	empty := FilterOptions(nil)
	assert.NotNil(t, empty.Cities)
	assert.Empty(t, empty.Cities)
}
