package store

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lmsales/backend/internal/domain/sales"
	"github.com/lmsales/backend/internal/domain/shared"
)

// Store is a franchise location that reports daily sales figures.
type Store struct {
	shared.BaseEntity
	Code    string // unique provisioning key, e.g. "LM-001"
	Name    string
	TaxRate decimal.Decimal // consumption tax rate, defaults to sales.DefaultTaxRate
}

// NewStore creates a store with the default tax rate.
func NewStore(code, name string) (*Store, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	name = strings.TrimSpace(name)
	if code == "" {
		return nil, shared.NewDomainError("STORE_CODE_REQUIRED", "Store code is required")
	}
	if len(code) > 50 {
		return nil, shared.NewDomainError("STORE_CODE_TOO_LONG", "Store code must be at most 50 characters")
	}
	if name == "" {
		return nil, shared.NewDomainError("STORE_NAME_REQUIRED", "Store name is required")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("STORE_NAME_TOO_LONG", "Store name must be at most 200 characters")
	}
	return &Store{
		BaseEntity: shared.NewBaseEntity(),
		Code:       code,
		Name:       name,
		TaxRate:    sales.DefaultTaxRate,
	}, nil
}

// Rename changes the store's display name.
func (s *Store) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("STORE_NAME_REQUIRED", "Store name is required")
	}
	if len(name) > 200 {
		return shared.NewDomainError("STORE_NAME_TOO_LONG", "Store name must be at most 200 characters")
	}
	s.Name = name
	s.Touch()
	return nil
}

// SetTaxRate overrides the store's consumption tax rate.
func (s *Store) SetTaxRate(rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return shared.NewDomainError("INVALID_TAX_RATE", "Tax rate must be in [0, 1)")
	}
	s.TaxRate = rate
	s.Touch()
	return nil
}

// Repository is the persistence contract for stores.
type Repository interface {
	FindAll(ctx context.Context) ([]*Store, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Store, error)
	FindByCode(ctx context.Context, code string) (*Store, error)
	Save(ctx context.Context, s *Store) error
	Delete(ctx context.Context, id uuid.UUID) error
}
