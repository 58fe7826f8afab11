package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lmsales/backend/internal/domain/identity"
	"github.com/lmsales/backend/internal/domain/shared"
	"github.com/lmsales/backend/internal/infrastructure/persistence/models"
)

// GormUserRepository implements identity.UserRepository using GORM
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GormUserRepository
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	var row models.UserModel
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return row.ToDomain(), nil
}

// FindByUsername finds a user by login name
func (r *GormUserRepository) FindByUsername(ctx context.Context, username string) (*identity.User, error) {
	var row models.UserModel
	if err := r.db.WithContext(ctx).
		Where("username = ?", strings.ToLower(strings.TrimSpace(username))).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return row.ToDomain(), nil
}

// FindByStoreID finds the account bound to a store
func (r *GormUserRepository) FindByStoreID(ctx context.Context, storeID uuid.UUID) (*identity.User, error) {
	var row models.UserModel
	if err := r.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return row.ToDomain(), nil
}

// Save inserts or updates a user
func (r *GormUserRepository) Save(ctx context.Context, u *identity.User) error {
	var row models.UserModel
	row.FromDomain(u)
	return r.db.WithContext(ctx).Save(&row).Error
}

// DeleteByStoreID removes the account bound to a store, if any
func (r *GormUserRepository) DeleteByStoreID(ctx context.Context, storeID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&models.UserModel{}, "store_id = ?", storeID).Error
}
