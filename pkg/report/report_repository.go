package report

import (
	"context"

	"gorm.io/gorm"
)

type (
	ReportRepository interface {
		// Scan runs one read-only query and scans every row into dest, a pointer
		// to a slice of row structs.
		Scan(ctx context.Context, dest any, sql string, args ...any) error
	}

	reportRepository struct {
		db *gorm.DB
	}
)

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) Scan(ctx context.Context, dest any, sql string, args ...any) error {
	return r.db.WithContext(ctx).Raw(sql, args...).Scan(dest).Error
}
