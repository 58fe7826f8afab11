package sales

import (
	"time"

	"github.com/google/uuid"

	"github.com/lmsales/backend/internal/domain/shared"
)

// MonthlyTarget is a store's declared revenue goal for one year-month.
// Unique per (store, year, month); writes are upserts and no history is kept.
type MonthlyTarget struct {
	StoreID      uuid.UUID
	Year         int
	Month        int // 1-12
	TargetAmount int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewMonthlyTarget creates a target after validating its fields.
func NewMonthlyTarget(storeID uuid.UUID, year, month int, targetAmount int64) (*MonthlyTarget, error) {
	if storeID == uuid.Nil {
		return nil, shared.ErrStoreRequired
	}
	if month < 1 || month > 12 {
		return nil, shared.NewDomainError("INVALID_MONTH", "Month must be between 1 and 12")
	}
	if year < 2000 || year > 2100 {
		return nil, shared.NewDomainError("INVALID_YEAR", "Year is out of range")
	}
	if targetAmount < 0 {
		return nil, shared.NewDomainError("NEGATIVE_TARGET", "Target amount must be >= 0")
	}
	now := time.Now()
	return &MonthlyTarget{
		StoreID:      storeID,
		Year:         year,
		Month:        month,
		TargetAmount: targetAmount,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}
