package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lmsales/backend/internal/infrastructure/csvio"
)

// CreateStoreInput provisions a store together with its login account.
type CreateStoreInput struct {
	Name     string
	Code     string
	Username string
	Password string
	TaxRate  *decimal.Decimal // nil keeps the default rate
}

// UpdateStoreInput carries the fields an admin may change; nil fields are
// left untouched.
type UpdateStoreInput struct {
	Name     *string
	TaxRate  *decimal.Decimal
	Username *string
	Password *string
}

// StoreView is one store with its bound login, as shown in the admin list.
type StoreView struct {
	ID        uuid.UUID       `json:"id"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	TaxRate   decimal.Decimal `json:"tax_rate"`
	Username  string          `json:"username"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ProvisionResult reports the outcome of a provisioning CSV import. Rows
// succeed or fail independently; ErrorDetails holds at most the first few
// failures while TotalErrors always carries the full count.
type ProvisionResult struct {
	SuccessCount int              `json:"success_count"`
	CreatedCount int              `json:"created_count"`
	UpdatedCount int              `json:"updated_count"`
	ErrorCount   int              `json:"error_count"`
	ErrorDetails []csvio.RowError `json:"error_details,omitempty"`
	IsTruncated  bool             `json:"is_truncated,omitempty"`
}
