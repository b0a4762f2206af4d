package domain

import (
	"fmt"
	"strings"
)

type ChartKind string

const (
	ChartTable ChartKind = "table"
	ChartBar   ChartKind = "bar"
	ChartPie   ChartKind = "pie"
)

var (
	MessageSuccessGetReports    = "reports retrieved successfully"
	MessageSuccessRunReport     = "report generated successfully"
	MessageSuccessPublishReport = "report published successfully"
	MessageSuccessDeleteReport  = "published report deleted successfully"
	MessageFailedDeleteReport   = "failed to delete published report"
	MessageFailedRunReport      = "failed to generate report"
	MessageFailedExportReport   = "failed to export report"
	MessageFailedPublishReport  = "failed to publish report"

	ErrReportNotFound    = fmt.Errorf("report %w", ErrNotFound)
	ErrInvalidReportLink = fmt.Errorf("%w: link does not point at a published report", ErrValidation)
)

type (
	ReportColumn struct {
		Name    string `json:"name"`
		Numeric bool   `json:"numeric"`
	}

	ReportTable struct {
		Key     string         `json:"key"`
		Name    string         `json:"name"`
		Columns []ReportColumn `json:"columns"`
		Rows    [][]any        `json:"rows"`
		Chart   ChartKind      `json:"chart"`
	}

	ReportInfo struct {
		Position int    `json:"position"`
		Key      string `json:"key"`
		Name     string `json:"name"`
	}

	PublishReportResponse struct {
		Key string `json:"key"`
		URL string `json:"url"`
	}

	UnpublishReportRequest struct {
		URL string `json:"url" validate:"required,url"`
	}
)

// ChartFor picks how a result is drawn: pie when the second column is a
// numeric percentage, bar for any other numeric second column, plain table
// otherwise.
func ChartFor(columns []ReportColumn) ChartKind {
	if len(columns) < 2 || !columns[1].Numeric {
		return ChartTable
	}
	if strings.Contains(columns[1].Name, "Percent") {
		return ChartPie
	}
	return ChartBar
}
