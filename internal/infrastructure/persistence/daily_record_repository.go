package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lmsales/backend/internal/domain/sales"
	"github.com/lmsales/backend/internal/infrastructure/persistence/models"
)

// GormDailyRecordRepository implements sales.DailyRecordRepository using GORM
type GormDailyRecordRepository struct {
	db *gorm.DB
}

// NewGormDailyRecordRepository creates a new GormDailyRecordRepository
func NewGormDailyRecordRepository(db *gorm.DB) *GormDailyRecordRepository {
	return &GormDailyRecordRepository{db: db}
}

// FindByStoreAndRange returns one store's records in [from, to], ordered by date
func (r *GormDailyRecordRepository) FindByStoreAndRange(ctx context.Context, storeID uuid.UUID, from, to time.Time) ([]sales.DailyRecord, error) {
	var rows []models.DailyRecordModel
	if err := r.db.WithContext(ctx).
		Where("store_id = ? AND date >= ? AND date <= ?", storeID, sales.DateOnly(from), sales.DateOnly(to)).
		Order("date ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return toDomainRecords(rows), nil
}

// FindByRange returns every store's records in [from, to], ordered by store then date
func (r *GormDailyRecordRepository) FindByRange(ctx context.Context, from, to time.Time) ([]sales.DailyRecord, error) {
	var rows []models.DailyRecordModel
	if err := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", sales.DateOnly(from), sales.DateOnly(to)).
		Order("store_id ASC, date ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return toDomainRecords(rows), nil
}

// Upsert writes a record, replacing any existing row for the same store and
// date. Last write wins; there is no version check on this table.
func (r *GormDailyRecordRepository) Upsert(ctx context.Context, record *sales.DailyRecord) error {
	var row models.DailyRecordModel
	row.FromDomain(record)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "store_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"sales_amount", "customer_count", "updated_at",
			}),
		}).
		Create(&row).Error
}

// Delete removes the record for one store-day. Deleting a day that has no
// record is a no-op, matching upsert symmetry in batch updates.
func (r *GormDailyRecordRepository) Delete(ctx context.Context, storeID uuid.UUID, date time.Time) error {
	return r.db.WithContext(ctx).
		Delete(&models.DailyRecordModel{}, "store_id = ? AND date = ?", storeID, sales.DateOnly(date)).Error
}

func toDomainRecords(rows []models.DailyRecordModel) []sales.DailyRecord {
	records := make([]sales.DailyRecord, 0, len(rows))
	for i := range rows {
		records = append(records, rows[i].ToDomain())
	}
	return records
}
