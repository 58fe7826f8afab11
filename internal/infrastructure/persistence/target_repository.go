package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lmsales/backend/internal/domain/sales"
	"github.com/lmsales/backend/internal/domain/shared"
	"github.com/lmsales/backend/internal/infrastructure/persistence/models"
)

// GormTargetRepository implements sales.TargetRepository using GORM
type GormTargetRepository struct {
	db *gorm.DB
}

// NewGormTargetRepository creates a new GormTargetRepository
func NewGormTargetRepository(db *gorm.DB) *GormTargetRepository {
	return &GormTargetRepository{db: db}
}

// FindByStoreAndMonth returns the target for one store-month, or
// shared.ErrNotFound when none was ever set. Callers treat a missing
// target as zero.
func (r *GormTargetRepository) FindByStoreAndMonth(ctx context.Context, storeID uuid.UUID, year, month int) (*sales.MonthlyTarget, error) {
	var row models.MonthlyTargetModel
	if err := r.db.WithContext(ctx).
		Where("store_id = ? AND year = ? AND month = ?", storeID, year, month).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	target := row.ToDomain()
	return &target, nil
}

// FindByStoreAndYear returns all targets one store set for a year
func (r *GormTargetRepository) FindByStoreAndYear(ctx context.Context, storeID uuid.UUID, year int) ([]sales.MonthlyTarget, error) {
	var rows []models.MonthlyTargetModel
	if err := r.db.WithContext(ctx).
		Where("store_id = ? AND year = ?", storeID, year).
		Order("month ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	targets := make([]sales.MonthlyTarget, 0, len(rows))
	for i := range rows {
		targets = append(targets, rows[i].ToDomain())
	}
	return targets, nil
}

// Upsert writes a target, replacing any existing one for the same
// store-month. No history is kept.
func (r *GormTargetRepository) Upsert(ctx context.Context, target *sales.MonthlyTarget) error {
	var row models.MonthlyTargetModel
	row.FromDomain(target)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "store_id"}, {Name: "year"}, {Name: "month"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"target_amount", "updated_at",
			}),
		}).
		Create(&row).Error
}
