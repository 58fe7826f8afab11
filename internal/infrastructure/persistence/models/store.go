package models

import (
	"github.com/shopspring/decimal"

	"github.com/lmsales/backend/internal/domain/store"
)

// StoreModel is the persistence model for the Store domain entity.
type StoreModel struct {
	BaseModel
	Code    string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name    string          `gorm:"type:varchar(200);not null"`
	TaxRate decimal.Decimal `gorm:"type:numeric(6,4);not null"`
}

// TableName returns the table name for GORM
func (StoreModel) TableName() string {
	return "stores"
}

// ToDomain converts the persistence model to a domain Store entity.
func (m *StoreModel) ToDomain() *store.Store {
	return &store.Store{
		BaseEntity: m.BaseModel.ToDomain(),
		Code:       m.Code,
		Name:       m.Name,
		TaxRate:    m.TaxRate,
	}
}

// FromDomain populates the persistence model from a domain Store entity.
func (m *StoreModel) FromDomain(s *store.Store) {
	m.FromDomainBaseEntity(s.BaseEntity)
	m.Code = s.Code
	m.Name = s.Name
	m.TaxRate = s.TaxRate
}
