package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"

	salesapp "github.com/lmsales/backend/internal/application/sales"
)

// ReportHandler handles the admin cross-store views.
type ReportHandler struct {
	BaseHandler
	reportService *salesapp.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *salesapp.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// RegisterRoutes registers report routes
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/reports")
	{
		reports.GET("/ranking", h.Ranking)
		reports.GET("/ranking/export", h.ExportRanking)
		reports.GET("/statistics", h.Statistics)
	}
}

// rankingQuery has no store parameter: the ranking always spans all stores.
type rankingQuery struct {
	Year  int `form:"year" binding:"required,min=2000,max=2100"`
	Month int `form:"month" binding:"required,month"`
}

// Ranking returns the month's store leaderboard.
func (h *ReportHandler) Ranking(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var q rankingQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.BadRequest(c, "year and month query parameters are required")
		return
	}

	entries, err := h.reportService.Ranking(c.Request.Context(), actor, q.Year, q.Month)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, entries)
}

// ExportRanking downloads the leaderboard as a CSV attachment.
func (h *ReportHandler) ExportRanking(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var q rankingQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.BadRequest(c, "year and month query parameters are required")
		return
	}

	data, err := h.reportService.ExportRanking(c.Request.Context(), actor, q.Year, q.Month)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.CSVDownload(c, fmt.Sprintf("ranking_%04d%02d.csv", q.Year, q.Month), data)
}

// Statistics returns the month's totals and per-store averages.
func (h *ReportHandler) Statistics(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var q rankingQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.BadRequest(c, "year and month query parameters are required")
		return
	}

	stats, err := h.reportService.Statistics(c.Request.Context(), actor, q.Year, q.Month)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, stats)
}
