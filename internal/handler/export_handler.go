package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/synchomes/synchomes-api/internal/response"
	"github.com/synchomes/synchomes-api/internal/service"
	"github.com/xuri/excelize/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler serves spreadsheet downloads of collected leads.
type ExportHandler struct {
	exportService *service.ExportService
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(exportService *service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// ExportContacts godoc
// GET /api/admin/exports/contacts.xlsx
func (h *ExportHandler) ExportContacts(c *gin.Context) {
	h.serve(c, "contacts", h.exportService.ContactsWorkbook)
}

// ExportSubscribers godoc
// GET /api/admin/exports/subscribers.xlsx
func (h *ExportHandler) ExportSubscribers(c *gin.Context) {
	h.serve(c, "subscribers", h.exportService.SubscribersWorkbook)
}

// serve renders the workbook into memory first so a failure can still be
// reported as JSON.
func (h *ExportHandler) serve(c *gin.Context, name string, build func(context.Context) (*excelize.File, error)) {
	f, err := build(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		response.InternalError(c, fmt.Errorf("render %s workbook: %w", name, err))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s_%s.xlsx\"",
		name, time.Now().Format("20060102")))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
