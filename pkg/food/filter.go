package food

import (
	"Food-Wastage-Management/domain"
	"Food-Wastage-Management/entities"
)

type valueSet map[string]struct{}

func newValueSet(values []string) valueSet {
	if len(values) == 0 {
		return nil
	}
	set := make(valueSet, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// allows reports whether v passes; a nil set allows everything.
func (s valueSet) allows(v string) bool {
	if s == nil {
		return true
	}
	_, ok := s[v]
	return ok
}

// FilterListings keeps the listings that match every non-empty dimension of f.
// Input order is preserved and the input slice is not modified.
func FilterListings(listings []entities.FoodListing, f domain.ListingFilter) []entities.FoodListing {
	cities := newValueSet(f.Cities)
	providerTypes := newValueSet(f.ProviderTypes)
	foodTypes := newValueSet(f.FoodTypes)
	mealTypes := newValueSet(f.MealTypes)

	result := make([]entities.FoodListing, 0, len(listings))
	for _, l := range listings {
		if cities.allows(l.City) &&
			providerTypes.allows(l.ProviderType) &&
			foodTypes.allows(l.FoodType) &&
			mealTypes.allows(l.MealType) {
			result = append(result, l)
		}
	}
	return result
}

// FilterOptions lists the distinct values of each filter dimension in
// first-seen order.
func FilterOptions(listings []entities.FoodListing) domain.FilterOptionsResponse {
	opts := domain.FilterOptionsResponse{
		Cities:        []string{},
		ProviderTypes: []string{},
		FoodTypes:     []string{},
		MealTypes:     []string{},
	}
	cities, providerTypes, foodTypes, meals := valueSet{}, valueSet{}, valueSet{}, valueSet{}

	for _, l := range listings {
		opts.Cities = appendDistinct(opts.Cities, cities, l.City)
		opts.ProviderTypes = appendDistinct(opts.ProviderTypes, providerTypes, l.ProviderType)
		opts.FoodTypes = appendDistinct(opts.FoodTypes, foodTypes, l.FoodType)
		opts.MealTypes = appendDistinct(opts.MealTypes, meals, l.MealType)
	}
	return opts
}

func appendDistinct(dst []string, seen valueSet, v string) []string {
	if _, ok := seen[v]; ok {
		return dst
	}
	seen[v] = struct{}{}
	return append(dst, v)
}
