package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	storeapp "github.com/lmsales/backend/internal/application/store"
)

// StoreHandler handles admin store provisioning requests.
type StoreHandler struct {
	BaseHandler
	storeService *storeapp.StoreService
}

// NewStoreHandler creates a new store handler
func NewStoreHandler(storeService *storeapp.StoreService) *StoreHandler {
	return &StoreHandler{storeService: storeService}
}

// RegisterRoutes registers store routes
func (h *StoreHandler) RegisterRoutes(rg *gin.RouterGroup) {
	stores := rg.Group("/stores")
	{
		stores.GET("", h.List)
		stores.POST("", h.Create)
		stores.GET("/:id", h.Get)
		stores.PUT("/:id", h.Update)
		stores.DELETE("/:id", h.Delete)
		stores.POST("/import", h.Import)
		stores.GET("/export", h.Export)
	}
}

// CreateStoreRequest provisions a store plus its login account.
type CreateStoreRequest struct {
	Name     string `json:"name" binding:"required,max=200"`
	Code     string `json:"code" binding:"required,max=50"`
	Username string `json:"username" binding:"required,min=3,max=100"`
	Password string `json:"password" binding:"required,min=4"`
	TaxRate  string `json:"tax_rate" binding:"omitempty"`
}

// UpdateStoreRequest carries the fields to change; omitted fields stay.
type UpdateStoreRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=200"`
	TaxRate  *string `json:"tax_rate"`
	Username *string `json:"username" binding:"omitempty,min=3,max=100"`
	Password *string `json:"password" binding:"omitempty,min=4"`
}

// List returns every store with its login account.
func (h *StoreHandler) List(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	views, err := h.storeService.List(c.Request.Context(), actor)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, views)
}

// Get returns one store.
func (h *StoreHandler) Get(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid store ID")
		return
	}

	view, err := h.storeService.Get(c.Request.Context(), actor, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, view)
}

// Create provisions a new store and its login account.
func (h *StoreHandler) Create(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req CreateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	input := storeapp.CreateStoreInput{
		Name:     req.Name,
		Code:     req.Code,
		Username: req.Username,
		Password: req.Password,
	}
	if req.TaxRate != "" {
		rate, err := decimal.NewFromString(req.TaxRate)
		if err != nil {
			h.BadRequest(c, "Invalid tax rate")
			return
		}
		input.TaxRate = &rate
	}

	view, err := h.storeService.Create(c.Request.Context(), actor, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, view)
}

// Update changes a store's name, tax rate, or credentials.
func (h *StoreHandler) Update(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid store ID")
		return
	}

	var req UpdateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	input := storeapp.UpdateStoreInput{
		Name:     req.Name,
		Username: req.Username,
		Password: req.Password,
	}
	if req.TaxRate != nil {
		rate, err := decimal.NewFromString(*req.TaxRate)
		if err != nil {
			h.BadRequest(c, "Invalid tax rate")
			return
		}
		input.TaxRate = &rate
	}

	view, err := h.storeService.Update(c.Request.Context(), actor, id, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, view)
}

// Delete removes a store, its login account, and its data.
func (h *StoreHandler) Delete(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid store ID")
		return
	}

	if err := h.storeService.Delete(c.Request.Context(), actor, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Import applies a provisioning CSV uploaded under the "file" field.
func (h *StoreHandler) Import(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
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

	result, err := h.storeService.ImportProvisioning(c.Request.Context(), actor, file)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Export downloads the store list as a provisioning CSV.
func (h *StoreHandler) Export(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	data, err := h.storeService.ExportProvisioning(c.Request.Context(), actor)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.CSVDownload(c, "stores.csv", data)
}
