package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChartFor(t *testing.T) {
	tests := []struct {
		name    string
		columns []ReportColumn
		want    ChartKind
	}{
		{"no columns", nil, ChartTable},
		{"single numeric column", []ReportColumn{{Name: "Total_Quantity_Available", Numeric: true}}, ChartTable},
		{"text second column", []ReportColumn{{Name: "Name"}, {Name: "Contact"}}, ChartTable},
		{"numeric count", []ReportColumn{{Name: "City"}, {Name: "Provider_Count", Numeric: true}}, ChartBar},
		{"percent name", []ReportColumn{{Name: "Status"}, {Name: "Percentage", Numeric: true}}, ChartPie},
		{"percent only in third column", []ReportColumn{{Name: "Status"}, {Name: "Count_Status", Numeric: true}, {Name: "Percentage", Numeric: true}}, ChartBar},
		{"percent but not numeric", []ReportColumn{{Name: "Status"}, {Name: "Percent_Label"}}, ChartTable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ChartFor(tt.columns))
		})
	}
}

func TestStoreErrorKeepsChain(t *testing.T) {
	assert.Nil(t, StoreError(nil))

	err := StoreError(ErrTokenInvalid)
	assert.ErrorIs(t, err, ErrStore)
	assert.ErrorIs(t, err, ErrTokenInvalid)
	assert.Same(t, err, StoreError(err))
}
