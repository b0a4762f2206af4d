package report

import (
	"Food-Wastage-Management/domain"
	"Food-Wastage-Management/internal/utils"
	"Food-Wastage-Management/internal/utils/storage"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const publishPrefix = "reports/"

var ErrStorageUnavailable = errors.New("report storage is not configured")

type (
	ReportService interface {
		ListReports() []domain.ReportInfo
		RunReport(ctx context.Context, name string) (domain.ReportTable, error)
		ExportReport(ctx context.Context, name string) (string, []byte, error)
		PublishReport(ctx context.Context, name string) (domain.PublishReportResponse, error)
		UnpublishReport(ctx context.Context, link string) error
	}

	reportService struct {
		reportRepository ReportRepository
		catalog          []definition
		s3               storage.AwsS3
		logger           *logrus.Logger
		now              func() time.Time
	}
)

// NewReportService builds the catalog once. s3 may be nil, in which case
// PublishReport fails with ErrStorageUnavailable.
func NewReportService(reportRepository ReportRepository, s3 storage.AwsS3) ReportService {
	return &reportService{
		reportRepository: reportRepository,
		catalog:          newCatalog(),
		s3:               s3,
		logger:           utils.GetLogger(),
		now:              time.Now,
	}
}

func (s *reportService) ListReports() []domain.ReportInfo {
	infos := make([]domain.ReportInfo, 0, len(s.catalog))
	for i, def := range s.catalog {
		infos = append(infos, domain.ReportInfo{
			Position: i + 1,
			Key:      def.key,
			Name:     def.name,
		})
	}
	return infos
}

func (s *reportService) RunReport(ctx context.Context, name string) (domain.ReportTable, error) {
	def, err := s.lookup(name)
	if err != nil {
		return domain.ReportTable{}, err
	}

	rows, err := def.run(ctx, s.reportRepository)
	if err != nil {
		utils.LogError(s.logger, "report", "RunReport", "run report query", def.key, err)
		return domain.ReportTable{}, domain.StoreError(err)
	}

	return domain.ReportTable{
		Key:     def.key,
		Name:    def.name,
		Columns: def.columns,
		Rows:    rows,
		Chart:   domain.ChartFor(def.columns),
	}, nil
}

// ExportReport runs the report and renders it as an xlsx workbook. The
// returned name is a suggested file name.
func (s *reportService) ExportReport(ctx context.Context, name string) (string, []byte, error) {
	table, err := s.RunReport(ctx, name)
	if err != nil {
		return "", nil, err
	}

	data, err := renderWorkbook(table)
	if err != nil {
		utils.LogError(s.logger, "report", "ExportReport", "render workbook", table.Key, err)
		return "", nil, err
	}
	return table.Key + ".xlsx", data, nil
}

func (s *reportService) PublishReport(ctx context.Context, name string) (domain.PublishReportResponse, error) {
	if s.s3 == nil {
		return domain.PublishReportResponse{}, ErrStorageUnavailable
	}

	fileName, data, err := s.ExportReport(ctx, name)
	if err != nil {
		return domain.PublishReportResponse{}, err
	}

	objectKey := fmt.Sprintf("%s%s/%s", publishPrefix, s.now().UTC().Format("20060102T150405Z"), fileName)
	uploadedKey, err := s.s3.UploadFile(ctx, objectKey, data, storage.ContentTypeXLSX)
	if err != nil {
		utils.LogError(s.logger, "report", "PublishReport", "upload workbook", objectKey, err)
		return domain.PublishReportResponse{}, err
	}

	return domain.PublishReportResponse{
		Key: uploadedKey,
		URL: s.s3.GetPublicLinkKey(uploadedKey),
	}, nil
}

// UnpublishReport removes an export previously uploaded by PublishReport.
func (s *reportService) UnpublishReport(ctx context.Context, link string) error {
	if s.s3 == nil {
		return ErrStorageUnavailable
	}

	objectKey := s.s3.GetObjectKeyFromLink(link)
	if !strings.HasPrefix(objectKey, publishPrefix) {
		return domain.ErrInvalidReportLink
	}

	if err := s.s3.DeleteFile(ctx, objectKey); err != nil {
		utils.LogError(s.logger, "report", "UnpublishReport", "delete workbook", objectKey, err)
		return err
	}
	return nil
}

// lookup accepts a report's display name, its key, or its 1-based position.
func (s *reportService) lookup(name string) (definition, error) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return definition{}, domain.ErrReportNotFound
	}
	if pos, err := strconv.Atoi(needle); err == nil {
		if pos >= 1 && pos <= len(s.catalog) {
			return s.catalog[pos-1], nil
		}
		return definition{}, domain.ErrReportNotFound
	}
	for _, def := range s.catalog {
		if needle == def.key || needle == strings.ToLower(def.name) {
			return def, nil
		}
	}
	return definition{}, domain.ErrReportNotFound
}
