package handlers

import (
	"Food-Wastage-Management/domain"
	"Food-Wastage-Management/internal/api/presenters"
	"Food-Wastage-Management/internal/utils/storage"
	"Food-Wastage-Management/pkg/report"
	"errors"
	"fmt"
	"net/url"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ReportHandler interface {
		GetReports(c *fiber.Ctx) error
		RunReport(c *fiber.Ctx) error
		ExportReport(c *fiber.Ctx) error
		PublishReport(c *fiber.Ctx) error
		UnpublishReport(c *fiber.Ctx) error
	}

	reportHandler struct {
		reportService report.ReportService
		validator     *validator.Validate
	}
)

func NewReportHandler(reportService report.ReportService, validator *validator.Validate) ReportHandler {
	return &reportHandler{
		reportService: reportService,
		validator:     validator,
	}
}

func reportName(c *fiber.Ctx) string {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		return c.Params("name")
	}
	return name
}

func (h *reportHandler) GetReports(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, h.reportService.ListReports(), fiber.StatusOK, domain.MessageSuccessGetReports)
}

func (h *reportHandler) RunReport(c *fiber.Ctx) error {
	res, err := h.reportService.RunReport(c.Context(), reportName(c))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedRunReport, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRunReport)
}

func (h *reportHandler) ExportReport(c *fiber.Ctx) error {
	fileName, data, err := h.reportService.ExportReport(c.Context(), reportName(c))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedExportReport, err)
	}

	c.Set(fiber.HeaderContentType, storage.ContentTypeXLSX)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", fileName))
	return c.Status(fiber.StatusOK).Send(data)
}

func (h *reportHandler) PublishReport(c *fiber.Ctx) error {
	res, err := h.reportService.PublishReport(c.Context(), reportName(c))
	if err != nil {
		status := presenters.StatusFor(err)
		if errors.Is(err, report.ErrStorageUnavailable) {
			status = fiber.StatusServiceUnavailable
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedPublishReport, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessPublishReport)
}

func (h *reportHandler) UnpublishReport(c *fiber.Ctx) error {
	req := new(domain.UnpublishReportRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteReport, fmt.Errorf("%w: %v", domain.ErrValidation, err))
	}

	if err := h.reportService.UnpublishReport(c.Context(), req.URL); err != nil {
		status := presenters.StatusFor(err)
		if errors.Is(err, report.ErrStorageUnavailable) {
			status = fiber.StatusServiceUnavailable
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedDeleteReport, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteReport)
}
