package report

import (
	"Food-Wastage-Management/domain"
	"Food-Wastage-Management/entities"
	"context"

	"github.com/shopspring/decimal"
)

// ContactCity is the city whose provider contacts are listed.
const ContactCity = "Bengaluru"

type (
	runner func(ctx context.Context, repo ReportRepository) ([][]any, error)

	// query is a prepared report: SQL and bound arguments are fixed when the
	// catalog is built, rows are scanned into T and projected to table cells.
	query[T any] struct {
		sql     string
		args    []any
		project func(T) []any
	}

	definition struct {
		key     string
		name    string
		columns []domain.ReportColumn
		run     runner
	}

	cityCountRow struct {
		City  string
		Total int64
	}

	typeCountRow struct {
		Type  string
		Total int64
	}

	contactRow struct {
		Name    string
		Contact string
	}

	nameCountRow struct {
		Name  string
		Total int64
	}

	totalRow struct {
		Total int64
	}

	foodTypeCountRow struct {
		FoodType string
		Total    int64
	}

	foodNameCountRow struct {
		FoodName string
		Total    int64
	}

	statusShareRow struct {
		Status      string
		CountStatus int64
		Percentage  decimal.Decimal
	}

	nameAverageRow struct {
		Name        string
		AvgQuantity decimal.Decimal
	}

	mealTypeCountRow struct {
		MealType string
		Total    int64
	}
)

func (q query[T]) runner() runner {
	return func(ctx context.Context, repo ReportRepository) ([][]any, error) {
		var rows []T
		if err := repo.Scan(ctx, &rows, q.sql, q.args...); err != nil {
			return nil, err
		}
		out := make([][]any, 0, len(rows))
		for _, row := range rows {
			out = append(out, q.project(row))
		}
		return out, nil
	}
}

func text(name string) domain.ReportColumn {
	return domain.ReportColumn{Name: name}
}

func number(name string) domain.ReportColumn {
	return domain.ReportColumn{Name: name, Numeric: true}
}

// Ordered reports break ties on the grouping key, ascending, so single-row
// "top" reports are deterministic across stores.
func newCatalog() []definition {
	return []definition{
		{
			key:     "providers-per-city",
			name:    "Providers per City",
			columns: []domain.ReportColumn{text("City"), number("Provider_Count")},
			run: query[cityCountRow]{
				sql: `SELECT city, COUNT(*) AS total FROM providers GROUP BY city ORDER BY city ASC`,
				project: func(r cityCountRow) []any {
					return []any{r.City, r.Total}
				},
			}.runner(),
		},
		{
			key:     "receivers-per-city",
			name:    "Receivers per City",
			columns: []domain.ReportColumn{text("City"), number("Receiver_Count")},
			run: query[cityCountRow]{
				sql: `SELECT city, COUNT(*) AS total FROM receivers GROUP BY city ORDER BY city ASC`,
				project: func(r cityCountRow) []any {
					return []any{r.City, r.Total}
				},
			}.runner(),
		},
		{
			key:     "top-provider-type",
			name:    "Most Contributing Provider Type",
			columns: []domain.ReportColumn{text("Type"), number("Total_Providers")},
			run: query[typeCountRow]{
				sql: `SELECT type, COUNT(*) AS total FROM providers
					GROUP BY type
					ORDER BY total DESC, type ASC
					LIMIT 1`,
				project: func(r typeCountRow) []any {
					return []any{r.Type, r.Total}
				},
			}.runner(),
		},
		{
			key:     "bengaluru-provider-contacts",
			name:    "Provider Contact Info (Bengaluru)",
			columns: []domain.ReportColumn{text("Name"), text("Contact")},
			run: query[contactRow]{
				sql:  `SELECT name, contact FROM providers WHERE city = ? ORDER BY provider_id ASC`,
				args: []any{ContactCity},
				project: func(r contactRow) []any {
					return []any{r.Name, r.Contact}
				},
			}.runner(),
		},
		{
			key:     "receiver-claims",
			name:    "Receivers with Most Claims",
			columns: []domain.ReportColumn{text("Name"), number("Total_Claims")},
			run: query[nameCountRow]{
				sql: `SELECT r.name, COUNT(c.claim_id) AS total
					FROM receivers r
					LEFT JOIN claims c ON c.receiver_id = r.receiver_id
					GROUP BY r.name
					ORDER BY total DESC, r.name ASC`,
				project: func(r nameCountRow) []any {
					return []any{r.Name, r.Total}
				},
			}.runner(),
		},
		{
			key:     "total-quantity",
			name:    "Total Food Quantity Available",
			columns: []domain.ReportColumn{number("Total_Quantity_Available")},
			run: query[totalRow]{
				sql: `SELECT COALESCE(SUM(quantity), 0) AS total FROM food_listings`,
				project: func(r totalRow) []any {
					return []any{r.Total}
				},
			}.runner(),
		},
		{
			key:     "top-listing-city",
			name:    "City with Highest Food Listings",
			columns: []domain.ReportColumn{text("City"), number("Total_Listings")},
			run: query[cityCountRow]{
				sql: `SELECT city, COUNT(*) AS total FROM food_listings
					GROUP BY city
					ORDER BY total DESC, city ASC
					LIMIT 1`,
				project: func(r cityCountRow) []any {
					return []any{r.City, r.Total}
				},
			}.runner(),
		},
		{
			key:     "food-type-availability",
			name:    "Most Common Food Types",
			columns: []domain.ReportColumn{text("Food_Type"), number("Total_Availability")},
			run: query[foodTypeCountRow]{
				sql: `SELECT food_type, COUNT(*) AS total FROM food_listings
					GROUP BY food_type
					ORDER BY total DESC, food_type ASC`,
				project: func(r foodTypeCountRow) []any {
					return []any{r.FoodType, r.Total}
				},
			}.runner(),
		},
		{
			key:     "claims-per-food",
			name:    "Claims Count per Food Item",
			columns: []domain.ReportColumn{text("Food_Name"), number("Claims_Count")},
			run: query[foodNameCountRow]{
				sql: `SELECT f.food_name, COUNT(c.claim_id) AS total
					FROM claims c
					JOIN food_listings f ON c.food_id = f.food_id
					GROUP BY f.food_name
					ORDER BY total DESC, f.food_name ASC`,
				project: func(r foodNameCountRow) []any {
					return []any{r.FoodName, r.Total}
				},
			}.runner(),
		},
		{
			key:     "top-completed-provider",
			name:    "Provider with Most Completed Claims",
			columns: []domain.ReportColumn{text("Name"), number("Successful_Claims")},
			run: query[nameCountRow]{
				sql: `SELECT p.name, COUNT(c.claim_id) AS total
					FROM claims c
					JOIN food_listings f ON c.food_id = f.food_id
					JOIN providers p ON f.provider_id = p.provider_id
					WHERE c.status = ?
					GROUP BY p.name
					ORDER BY total DESC, p.name ASC
					LIMIT 1`,
				args: []any{entities.ClaimStatusCompleted},
				project: func(r nameCountRow) []any {
					return []any{r.Name, r.Total}
				},
			}.runner(),
		},
		{
			key:     "quantity-per-provider",
			name:    "Total Quantity Donated per Provider",
			columns: []domain.ReportColumn{text("Name"), number("Total_Donated")},
			run: query[nameCountRow]{
				sql: `SELECT p.name, SUM(f.quantity) AS total
					FROM food_listings f
					JOIN providers p ON f.provider_id = p.provider_id
					GROUP BY p.name
					ORDER BY total DESC, p.name ASC`,
				project: func(r nameCountRow) []any {
					return []any{r.Name, r.Total}
				},
			}.runner(),
		},
		{
			key:     "claims-per-food-type",
			name:    "Claims per Food Type",
			columns: []domain.ReportColumn{text("Food_Type"), number("Total_Claims")},
			run: query[foodTypeCountRow]{
				sql: `SELECT f.food_type, COUNT(c.claim_id) AS total
					FROM claims c
					JOIN food_listings f ON c.food_id = f.food_id
					GROUP BY f.food_type
					ORDER BY total DESC, f.food_type ASC`,
				project: func(r foodTypeCountRow) []any {
					return []any{r.FoodType, r.Total}
				},
			}.runner(),
		},
		{
			key:     "claim-status-percentage",
			name:    "Claim Status Percentage",
			columns: []domain.ReportColumn{text("Status"), number("Count_Status"), number("Percentage")},
			run: query[statusShareRow]{
				// 100.0 keeps the division in floating point on every store
				sql: `SELECT status,
						COUNT(*) AS count_status,
						ROUND(COUNT(*) * 100.0 / (SELECT COUNT(*) FROM claims), 2) AS percentage
					FROM claims
					GROUP BY status
					ORDER BY status ASC`,
				project: func(r statusShareRow) []any {
					return []any{r.Status, r.CountStatus, r.Percentage.Round(2)}
				},
			}.runner(),
		},
		{
			key:     "avg-quantity-per-receiver",
			name:    "Average Quantity Claimed per Receiver",
			columns: []domain.ReportColumn{text("Name"), number("Avg_Quantity_Claimed")},
			run: query[nameAverageRow]{
				sql: `SELECT r.name, ROUND(AVG(f.quantity), 2) AS avg_quantity
					FROM claims c
					JOIN receivers r ON c.receiver_id = r.receiver_id
					JOIN food_listings f ON c.food_id = f.food_id
					GROUP BY r.name
					ORDER BY r.name ASC`,
				project: func(r nameAverageRow) []any {
					return []any{r.Name, r.AvgQuantity.Round(2)}
				},
			}.runner(),
		},
		{
			key:     "claims-per-meal-type",
			name:    "Most Claimed Meal Type",
			columns: []domain.ReportColumn{text("Meal_Type"), number("Claim_Count")},
			run: query[mealTypeCountRow]{
				sql: `SELECT f.meal_type, COUNT(*) AS total
					FROM claims c
					JOIN food_listings f ON c.food_id = f.food_id
					GROUP BY f.meal_type
					ORDER BY total DESC, f.meal_type ASC`,
				project: func(r mealTypeCountRow) []any {
					return []any{r.MealType, r.Total}
				},
			}.runner(),
		},
	}
}
