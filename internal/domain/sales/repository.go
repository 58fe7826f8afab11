package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DailyRecordRepository is the persistence contract for daily records.
type DailyRecordRepository interface {
	// FindByStoreAndRange returns one store's records with dates in the
	// inclusive range [from, to], ordered by date.
	FindByStoreAndRange(ctx context.Context, storeID uuid.UUID, from, to time.Time) ([]DailyRecord, error)
	// FindByRange returns all stores' records in the inclusive range,
	// for cross-store views.
	FindByRange(ctx context.Context, from, to time.Time) ([]DailyRecord, error)
	// Upsert inserts or replaces the record for its (store, date) key.
	Upsert(ctx context.Context, record *DailyRecord) error
	// Delete removes the record for the key; deleting a missing record
	// is not an error.
	Delete(ctx context.Context, storeID uuid.UUID, date time.Time) error
}

// TargetRepository is the persistence contract for monthly targets.
type TargetRepository interface {
	// FindByStoreAndMonth returns the target for the key, or
	// shared.ErrNotFound when none is set.
	FindByStoreAndMonth(ctx context.Context, storeID uuid.UUID, year, month int) (*MonthlyTarget, error)
	// FindByStoreAndYear returns all targets a store has set for a year.
	FindByStoreAndYear(ctx context.Context, storeID uuid.UUID, year int) ([]MonthlyTarget, error)
	// Upsert inserts or replaces the target for its (store, year, month)
	// key; the latest write wins and no history is kept.
	Upsert(ctx context.Context, target *MonthlyTarget) error
}
