package sales

import (
	"time"

	"github.com/google/uuid"

	"github.com/lmsales/backend/internal/domain/sales"
	"github.com/lmsales/backend/internal/infrastructure/csvio"
)

// UpsertEntryInput is a single daily-figures submission. StoreID is only
// honored for admins; store users always write to their own store.
type UpsertEntryInput struct {
	StoreID       *uuid.UUID
	Date          time.Time
	SalesAmount   int64
	CustomerCount int64
}

// DailyRecordView is one stored day as returned to callers.
type DailyRecordView struct {
	Date          string `json:"date"` // YYYY-MM-DD
	SalesAmount   int64  `json:"sales_amount"`
	CustomerCount int64  `json:"customer_count"`
}

// BatchChange is one entry of a monthly batch update: an upsert carrying
// figures, or an explicit delete of the date.
type BatchChange struct {
	Date          time.Time
	Delete        bool
	SalesAmount   int64
	CustomerCount int64
}

// BatchItemError describes why one batch entry failed.
type BatchItemError struct {
	Index   int    `json:"index"`
	Date    string `json:"date"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// BatchResult reports per-item outcomes of a batch update. Items are
// applied independently; failures never abort the remainder.
type BatchResult struct {
	SuccessCount int              `json:"success_count"`
	ErrorCount   int              `json:"error_count"`
	Errors       []BatchItemError `json:"errors,omitempty"`
}

// MonthlyReport is one store-month: the raw records plus the derived
// aggregate and the target the month was measured against.
type MonthlyReport struct {
	StoreID      uuid.UUID              `json:"store_id"`
	Year         int                    `json:"year"`
	Month        int                    `json:"month"`
	Records      []DailyRecordView      `json:"records"`
	Aggregate    sales.MonthlyAggregate `json:"aggregate"`
	TargetAmount int64                  `json:"target_amount"`
}

// YearReport is the twelve-month summary table with its annual roll-up.
type YearReport struct {
	StoreID uuid.UUID         `json:"store_id"`
	Year    int               `json:"year"`
	Months  []sales.MonthRow  `json:"months"`
	Summary sales.YearSummary `json:"summary"`
}

// TargetView is a monthly target as returned to callers.
type TargetView struct {
	StoreID      uuid.UUID `json:"store_id"`
	Year         int       `json:"year"`
	Month        int       `json:"month"`
	TargetAmount int64     `json:"target_amount"`
}

// ImportResult reports the outcome of a daily-sales CSV import. Parse
// failures and persistence failures are collected together; detail is
// capped while the total count is always exact.
type ImportResult struct {
	SuccessCount int              `json:"success_count"`
	ErrorCount   int              `json:"error_count"`
	ErrorDetails []csvio.RowError `json:"error_details,omitempty"`
	IsTruncated  bool             `json:"is_truncated,omitempty"`
}

// Statistics is the admin cross-store roll-up for one month. Averages are
// taken over active stores only, where active means at least one record.
type Statistics struct {
	Year                 int   `json:"year"`
	Month                int   `json:"month"`
	StoreCount           int   `json:"store_count"`
	ActiveStoreCount     int   `json:"active_store_count"`
	TotalSales           int64 `json:"total_sales"`
	TotalCustomers       int64 `json:"total_customers"`
	AvgCustomerPrice     int64 `json:"avg_customer_price"`
	AvgSalesPerStore     int64 `json:"avg_sales_per_store"`
	AvgCustomersPerStore int64 `json:"avg_customers_per_store"`
	RecordCount          int   `json:"record_count"`
}
