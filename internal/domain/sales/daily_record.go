package sales

import (
	"time"

	"github.com/google/uuid"

	"github.com/lmsales/backend/internal/domain/shared"
)

// DailyRecord holds one store's figures for one calendar date.
// At most one record exists per (store, date) pair; a day the store never
// reported simply has no record, which is different from a zero record.
type DailyRecord struct {
	StoreID       uuid.UUID
	Date          time.Time // normalized to midnight UTC, no time component
	SalesAmount   int64     // tax-inclusive, in the smallest currency unit
	CustomerCount int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewDailyRecord creates a daily record after validating the figures.
func NewDailyRecord(storeID uuid.UUID, date time.Time, salesAmount, customerCount int64) (*DailyRecord, error) {
	if storeID == uuid.Nil {
		return nil, shared.ErrStoreRequired
	}
	if salesAmount < 0 {
		return nil, shared.NewDomainError("NEGATIVE_AMOUNT", "Sales amount must be >= 0")
	}
	if customerCount < 0 {
		return nil, shared.NewDomainError("NEGATIVE_COUNT", "Customer count must be >= 0")
	}
	now := time.Now()
	return &DailyRecord{
		StoreID:       storeID,
		Date:          DateOnly(date),
		SalesAmount:   salesAmount,
		CustomerCount: customerCount,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// Day returns the day-of-month of the record's date.
func (r *DailyRecord) Day() int {
	return r.Date.Day()
}

// DateOnly strips the time component, keeping year/month/day in UTC.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// MonthRange returns the inclusive [first, last] day range of a month.
func MonthRange(year, month int) (time.Time, time.Time) {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first, last
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year, month int) int {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return first.AddDate(0, 1, -1).Day()
}

// ChangeKind distinguishes the operations in a batch change set.
type ChangeKind string

const (
	ChangeUpsert ChangeKind = "upsert"
	ChangeDelete ChangeKind = "delete"
)

// Change is one entry in a monthly batch update: either an upsert carrying
// a full record, or an explicit delete of a (store, date) key. The delete
// variant replaces the old convention of submitting blank fields.
type Change struct {
	Kind    ChangeKind
	Record  *DailyRecord // set for upserts
	StoreID uuid.UUID
	Date    time.Time
}

// NewUpsertChange wraps a record in an upsert change.
func NewUpsertChange(record *DailyRecord) Change {
	return Change{
		Kind:    ChangeUpsert,
		Record:  record,
		StoreID: record.StoreID,
		Date:    record.Date,
	}
}

// NewDeleteChange creates an explicit delete for one day.
func NewDeleteChange(storeID uuid.UUID, date time.Time) Change {
	return Change{
		Kind:    ChangeDelete,
		StoreID: storeID,
		Date:    DateOnly(date),
	}
}
