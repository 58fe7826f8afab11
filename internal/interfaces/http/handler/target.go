package handler

import (
	"github.com/gin-gonic/gin"

	salesapp "github.com/lmsales/backend/internal/application/sales"
)

// TargetHandler handles monthly target reads and writes.
type TargetHandler struct {
	BaseHandler
	entryService *salesapp.EntryService
}

// NewTargetHandler creates a new target handler
func NewTargetHandler(entryService *salesapp.EntryService) *TargetHandler {
	return &TargetHandler{entryService: entryService}
}

// RegisterRoutes registers target routes
func (h *TargetHandler) RegisterRoutes(rg *gin.RouterGroup) {
	targets := rg.Group("/targets")
	{
		targets.GET("", h.Get)
		targets.POST("", h.Set)
	}
}

// SetTargetRequest is the target upsert body.
type SetTargetRequest struct {
	StoreID      string `json:"store_id" binding:"omitempty,uuid"`
	Year         int    `json:"year" binding:"required,min=2000,max=2100"`
	Month        int    `json:"month" binding:"required,month"`
	TargetAmount int64  `json:"target_amount" binding:"min=0"`
}

// Get returns the month's target, zero when none was ever set.
func (h *TargetHandler) Get(c *gin.Context) {
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

	view, err := h.entryService.GetTarget(c.Request.Context(), actor, storeID, q.Year, q.Month)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, view)
}

// Set upserts the month's target; the latest write wins.
func (h *TargetHandler) Set(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req SetTargetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}
	storeID, err := optionalUUID(req.StoreID)
	if err != nil {
		h.BadRequest(c, "Invalid store ID")
		return
	}

	view, err := h.entryService.SetTarget(c.Request.Context(), actor, storeID, req.Year, req.Month, req.TargetAmount)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, view)
}
