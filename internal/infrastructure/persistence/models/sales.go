package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/lmsales/backend/internal/domain/sales"
)

// DailyRecordModel is the persistence model for one store-day of figures.
// The (store_id, date) pair is unique; batch imports upsert on it.
type DailyRecordModel struct {
	StoreID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Date          time.Time `gorm:"type:date;primaryKey"`
	SalesAmount   int64     `gorm:"not null"`
	CustomerCount int64     `gorm:"not null"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (DailyRecordModel) TableName() string {
	return "daily_records"
}

// ToDomain converts the persistence model to a domain DailyRecord.
func (m *DailyRecordModel) ToDomain() sales.DailyRecord {
	return sales.DailyRecord{
		StoreID:       m.StoreID,
		Date:          sales.DateOnly(m.Date),
		SalesAmount:   m.SalesAmount,
		CustomerCount: m.CustomerCount,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// FromDomain populates the persistence model from a domain DailyRecord.
func (m *DailyRecordModel) FromDomain(r *sales.DailyRecord) {
	m.StoreID = r.StoreID
	m.Date = r.Date
	m.SalesAmount = r.SalesAmount
	m.CustomerCount = r.CustomerCount
	m.CreatedAt = r.CreatedAt
	m.UpdatedAt = r.UpdatedAt
}

// MonthlyTargetModel is the persistence model for a store's monthly goal.
// One row per (store_id, year, month); writes are upserts.
type MonthlyTargetModel struct {
	StoreID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Year         int       `gorm:"primaryKey"`
	Month        int       `gorm:"primaryKey"`
	TargetAmount int64     `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (MonthlyTargetModel) TableName() string {
	return "monthly_targets"
}

// ToDomain converts the persistence model to a domain MonthlyTarget.
func (m *MonthlyTargetModel) ToDomain() sales.MonthlyTarget {
	return sales.MonthlyTarget{
		StoreID:      m.StoreID,
		Year:         m.Year,
		Month:        m.Month,
		TargetAmount: m.TargetAmount,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// FromDomain populates the persistence model from a domain MonthlyTarget.
func (m *MonthlyTargetModel) FromDomain(t *sales.MonthlyTarget) {
	m.StoreID = t.StoreID
	m.Year = t.Year
	m.Month = t.Month
	m.TargetAmount = t.TargetAmount
	m.CreatedAt = t.CreatedAt
	m.UpdatedAt = t.UpdatedAt
}
