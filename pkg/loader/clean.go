package loader

import (
	"Food-Wastage-Management/domain"
	"Food-Wastage-Management/entities"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	TableProviders    = "providers"
	TableReceivers    = "receivers"
	TableFoodListings = "food_listings"
	TableClaims       = "claims"
)

// Tables in load order: parents before the rows that reference them.
var Tables = []string{TableProviders, TableReceivers, TableFoodListings, TableClaims}

var requiredColumns = map[string][]string{
	TableProviders:    {"Provider_ID", "Name", "Type", "City", "Contact"},
	TableReceivers:    {"Receiver_ID", "Name", "Type", "City", "Contact"},
	TableFoodListings: {"Food_ID", "Food_Name", "Quantity", "Expiry_Date", "Provider_ID", "Provider_Type", "City", "Food_Type", "Meal_Type"},
	TableClaims:       {"Claim_ID", "Food_ID", "Receiver_ID", "Status", "Timestamp"},
}

// CleanStats reports what cleaning changed in one table.
type CleanStats struct {
	Table             string `json:"table"`
	Rows              int    `json:"rows"`
	DuplicatesDropped int    `json:"duplicates_dropped"`
}

// cleanTable applies the one-time cleaning rules in place: exact duplicates
// first, then dates, city names and missing contacts.
func cleanTable(t *rawTable) (CleanStats, error) {
	if err := t.require(requiredColumns[t.name]...); err != nil {
		return CleanStats{}, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	stats := CleanStats{Table: t.name}
	stats.DuplicatesDropped = t.dedupe()

	switch t.name {
	case TableProviders, TableReceivers:
		t.titleCase("City")
		t.fillMissing("Contact", NotProvided)
	case TableFoodListings:
		t.normalizeDates("Expiry_Date", expiryDateLayout)
		t.titleCase("City")
	case TableClaims:
		t.normalizeDates("Timestamp", timestampLayout)
	}

	stats.Rows = len(t.records)
	return stats, nil
}

type rowError struct {
	table string
	row   int
	err   error
}

func (e *rowError) Error() string {
	return fmt.Sprintf("%s row %d: %v", e.table, e.row, e.err)
}

func (e *rowError) Unwrap() error {
	return e.err
}

func parseID(raw string) (uint, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	// pandas writes integer columns holding NaN as floats, e.g. "12.0"
	raw = strings.TrimSuffix(raw, ".0")
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad id %q", domain.ErrValidation, raw)
	}
	return uint(n), nil
}

func parseQuantity(raw string) (int, error) {
	raw = strings.TrimSuffix(strings.TrimSpace(raw), ".0")
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: bad quantity %q", domain.ErrValidation, raw)
	}
	return n, nil
}

func parseOptionalTime(raw, layout string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	ts, err := time.Parse(layout, raw)
	if err != nil {
		return nil
	}
	return &ts
}

func toProviders(t *rawTable) ([]entities.Provider, error) {
	out := make([]entities.Provider, 0, len(t.records))
	for i, rec := range t.records {
		id, err := parseID(t.get(rec, "Provider_ID"))
		if err != nil {
			return nil, &rowError{t.name, t.line(i), err}
		}
		out = append(out, entities.Provider{
			ProviderID: id,
			Name:       strings.TrimSpace(t.get(rec, "Name")),
			Type:       strings.TrimSpace(t.get(rec, "Type")),
			Address:    strings.TrimSpace(t.get(rec, "Address")),
			City:       t.get(rec, "City"),
			Contact:    strings.TrimSpace(t.get(rec, "Contact")),
		})
	}
	return out, nil
}

func toReceivers(t *rawTable) ([]entities.Receiver, error) {
	out := make([]entities.Receiver, 0, len(t.records))
	for i, rec := range t.records {
		id, err := parseID(t.get(rec, "Receiver_ID"))
		if err != nil {
			return nil, &rowError{t.name, t.line(i), err}
		}
		out = append(out, entities.Receiver{
			ReceiverID: id,
			Name:       strings.TrimSpace(t.get(rec, "Name")),
			Type:       strings.TrimSpace(t.get(rec, "Type")),
			City:       t.get(rec, "City"),
			Contact:    strings.TrimSpace(t.get(rec, "Contact")),
		})
	}
	return out, nil
}

func toFoodListings(t *rawTable) ([]entities.FoodListing, error) {
	out := make([]entities.FoodListing, 0, len(t.records))
	for i, rec := range t.records {
		id, err := parseID(t.get(rec, "Food_ID"))
		if err != nil {
			return nil, &rowError{t.name, t.line(i), err}
		}
		providerID, err := parseID(t.get(rec, "Provider_ID"))
		if err != nil {
			return nil, &rowError{t.name, t.line(i), err}
		}
		quantity, err := parseQuantity(t.get(rec, "Quantity"))
		if err != nil {
			return nil, &rowError{t.name, t.line(i), err}
		}
		out = append(out, entities.FoodListing{
			FoodID:       id,
			FoodName:     strings.TrimSpace(t.get(rec, "Food_Name")),
			Quantity:     quantity,
			ExpiryDate:   parseOptionalTime(t.get(rec, "Expiry_Date"), expiryDateLayout),
			ProviderID:   providerID,
			ProviderType: strings.TrimSpace(t.get(rec, "Provider_Type")),
			City:         t.get(rec, "City"),
			FoodType:     strings.TrimSpace(t.get(rec, "Food_Type")),
			MealType:     strings.TrimSpace(t.get(rec, "Meal_Type")),
		})
	}
	return out, nil
}

func toClaims(t *rawTable) ([]entities.Claim, error) {
	out := make([]entities.Claim, 0, len(t.records))
	for i, rec := range t.records {
		id, err := parseID(t.get(rec, "Claim_ID"))
		if err != nil {
			return nil, &rowError{t.name, t.line(i), err}
		}
		foodID, err := parseID(t.get(rec, "Food_ID"))
		if err != nil {
			return nil, &rowError{t.name, t.line(i), err}
		}
		receiverID, err := parseID(t.get(rec, "Receiver_ID"))
		if err != nil {
			return nil, &rowError{t.name, t.line(i), err}
		}
		out = append(out, entities.Claim{
			ClaimID:    id,
			FoodID:     foodID,
			ReceiverID: receiverID,
			Status:     strings.TrimSpace(t.get(rec, "Status")),
			Timestamp:  parseOptionalTime(t.get(rec, "Timestamp"), timestampLayout),
		})
	}
	return out, nil
}
