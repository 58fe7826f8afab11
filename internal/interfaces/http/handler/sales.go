package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"

	salesapp "github.com/lmsales/backend/internal/application/sales"
)

// SalesHandler handles daily figure entry, reports, and CSV transfer.
type SalesHandler struct {
	BaseHandler
	entryService  *salesapp.EntryService
	reportService *salesapp.ReportService
	csvService    *salesapp.CSVService
}

// NewSalesHandler creates a new sales handler
func NewSalesHandler(
	entryService *salesapp.EntryService,
	reportService *salesapp.ReportService,
	csvService *salesapp.CSVService,
) *SalesHandler {
	return &SalesHandler{
		entryService:  entryService,
		reportService: reportService,
		csvService:    csvService,
	}
}

// RegisterRoutes registers sales routes
func (h *SalesHandler) RegisterRoutes(rg *gin.RouterGroup) {
	sales := rg.Group("/sales")
	{
		sales.POST("", h.UpsertEntry)
		sales.GET("", h.ListMonth)
		sales.DELETE("", h.DeleteEntry)
		sales.PUT("/monthly", h.ApplyMonthlyChanges)
		sales.GET("/summary", h.YearSummary)
		sales.GET("/progress", h.Progress)
		sales.POST("/import", h.ImportCSV)
		sales.GET("/export", h.ExportCSV)
	}
}

// UpsertEntryRequest is a single day's figures.
type UpsertEntryRequest struct {
	StoreID       string `json:"store_id" binding:"omitempty,uuid"`
	Date          string `json:"date" binding:"required,datetime=2006-01-02"`
	SalesAmount   int64  `json:"sales_amount" binding:"min=0"`
	CustomerCount int64  `json:"customer_count" binding:"min=0"`
}

// UpsertEntry writes one day's figures, replacing any previous entry for
// the date.
func (h *SalesHandler) UpsertEntry(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req UpsertEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}
	storeID, err := optionalUUID(req.StoreID)
	if err != nil {
		h.BadRequest(c, "Invalid store ID")
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		h.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return
	}

	view, err := h.entryService.Upsert(c.Request.Context(), actor, salesapp.UpsertEntryInput{
		StoreID:       storeID,
		Date:          date,
		SalesAmount:   req.SalesAmount,
		CustomerCount: req.CustomerCount,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, view)
}

// DeleteEntry removes one day's figures. Deleting a date with no entry
// is a no-op success.
func (h *SalesHandler) DeleteEntry(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	storeID, err := optionalUUID(c.Query("store_id"))
	if err != nil {
		h.BadRequest(c, "Invalid store ID")
		return
	}
	date, err := parseDate(c.Query("date"))
	if err != nil {
		h.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return
	}

	if err := h.entryService.Delete(c.Request.Context(), actor, storeID, date); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ListMonth returns the month's daily records together with the derived
// aggregate and target.
func (h *SalesHandler) ListMonth(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var q monthQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.BadRequest(c, "year and month query parameters are required")
		return
	}
	storeID, err := optionalUUID(q.StoreID)
	if err != nil {
		h.BadRequest(c, "Invalid store ID")
		return
	}

	report, err := h.reportService.Monthly(c.Request.Context(), actor, storeID, q.Year, q.Month)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, report)
}

// BatchChangeRequest is one entry of the monthly batch update.
type BatchChangeRequest struct {
	Date          string `json:"date" binding:"required,datetime=2006-01-02"`
	Delete        bool   `json:"delete"`
	SalesAmount   int64  `json:"sales_amount"`
	CustomerCount int64  `json:"customer_count"`
}

// MonthlyChangesRequest is the monthly batch update body.
type MonthlyChangesRequest struct {
	StoreID string               `json:"store_id" binding:"omitempty,uuid"`
	Changes []BatchChangeRequest `json:"changes" binding:"required,dive"`
}

// ApplyMonthlyChanges applies a batch of upserts and deletes, reporting
// per-item outcomes. A failed item never aborts the rest.
func (h *SalesHandler) ApplyMonthlyChanges(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req MonthlyChangesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}
	storeID, err := optionalUUID(req.StoreID)
	if err != nil {
		h.BadRequest(c, "Invalid store ID")
		return
	}

	changes := make([]salesapp.BatchChange, 0, len(req.Changes))
	for _, change := range req.Changes {
		date, err := parseDate(change.Date)
		if err != nil {
			h.BadRequest(c, "Invalid date in change set, expected YYYY-MM-DD")
			return
		}
		changes = append(changes, salesapp.BatchChange{
			Date:          date,
			Delete:        change.Delete,
			SalesAmount:   change.SalesAmount,
			CustomerCount: change.CustomerCount,
		})
	}

	result, err := h.entryService.ApplyMonthlyChanges(c.Request.Context(), actor, storeID, changes)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// YearSummary returns the twelve-month table with the annual roll-up.
func (h *SalesHandler) YearSummary(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var q yearQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.BadRequest(c, "year query parameter is required")
		return
	}
	storeID, err := optionalUUID(q.StoreID)
	if err != nil {
		h.BadRequest(c, "Invalid store ID")
		return
	}

	report, err := h.reportService.YearSummary(c.Request.Context(), actor, storeID, q.Year)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, report)
}

// Progress returns the pacing snapshot for a month.
func (h *SalesHandler) Progress(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var q monthQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.BadRequest(c, "year and month query parameters are required")
		return
	}
	storeID, err := optionalUUID(q.StoreID)
	if err != nil {
		h.BadRequest(c, "Invalid store ID")
		return
	}

	snap, err := h.reportService.Progress(c.Request.Context(), actor, storeID, q.Year, q.Month)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, snap)
}

// ImportCSV ingests a daily-sales CSV uploaded as multipart form data
// under the "file" field.
func (h *SalesHandler) ImportCSV(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	storeID, err := optionalUUID(c.Query("store_id"))
	if err != nil {
		h.BadRequest(c, "Invalid store ID")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.BadRequest(c, "A CSV file is required in the 'file' field")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		h.BadRequest(c, "Failed to read the uploaded file")
		return
	}
	defer file.Close()

	result, err := h.csvService.Import(c.Request.Context(), actor, storeID, file)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// ExportCSV downloads one store-month as a CSV attachment.
func (h *SalesHandler) ExportCSV(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var q monthQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.BadRequest(c, "year and month query parameters are required")
		return
	}
	storeID, err := optionalUUID(q.StoreID)
	if err != nil {
		h.BadRequest(c, "Invalid store ID")
		return
	}

	data, err := h.csvService.Export(c.Request.Context(), actor, storeID, q.Year, q.Month)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.CSVDownload(c, fmt.Sprintf("sales_%04d%02d.csv", q.Year, q.Month), data)
}
