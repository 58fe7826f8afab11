package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/lmsales/backend/internal/domain/identity"
	"github.com/lmsales/backend/internal/domain/sales"
	"github.com/lmsales/backend/internal/domain/store"
)

// MockDailyRecordRepository is a mock implementation of sales.DailyRecordRepository
type MockDailyRecordRepository struct {
	mock.Mock
}

func (m *MockDailyRecordRepository) FindByStoreAndRange(ctx context.Context, storeID uuid.UUID, from, to time.Time) ([]sales.DailyRecord, error) {
	args := m.Called(ctx, storeID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]sales.DailyRecord), args.Error(1)
}

func (m *MockDailyRecordRepository) FindByRange(ctx context.Context, from, to time.Time) ([]sales.DailyRecord, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]sales.DailyRecord), args.Error(1)
}

func (m *MockDailyRecordRepository) Upsert(ctx context.Context, record *sales.DailyRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockDailyRecordRepository) Delete(ctx context.Context, storeID uuid.UUID, date time.Time) error {
	args := m.Called(ctx, storeID, date)
	return args.Error(0)
}

// MockTargetRepository is a mock implementation of sales.TargetRepository
type MockTargetRepository struct {
	mock.Mock
}

func (m *MockTargetRepository) FindByStoreAndMonth(ctx context.Context, storeID uuid.UUID, year, month int) (*sales.MonthlyTarget, error) {
	args := m.Called(ctx, storeID, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sales.MonthlyTarget), args.Error(1)
}

func (m *MockTargetRepository) FindByStoreAndYear(ctx context.Context, storeID uuid.UUID, year int) ([]sales.MonthlyTarget, error) {
	args := m.Called(ctx, storeID, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]sales.MonthlyTarget), args.Error(1)
}

func (m *MockTargetRepository) Upsert(ctx context.Context, target *sales.MonthlyTarget) error {
	args := m.Called(ctx, target)
	return args.Error(0)
}

// MockStoreRepository is a mock implementation of store.Repository
type MockStoreRepository struct {
	mock.Mock
}

func (m *MockStoreRepository) FindAll(ctx context.Context) ([]*store.Store, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*store.Store), args.Error(1)
}

func (m *MockStoreRepository) FindByID(ctx context.Context, id uuid.UUID) (*store.Store, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Store), args.Error(1)
}

func (m *MockStoreRepository) FindByCode(ctx context.Context, code string) (*store.Store, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Store), args.Error(1)
}

func (m *MockStoreRepository) Save(ctx context.Context, s *store.Store) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockStoreRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func adminActor() identity.Actor {
	return identity.Actor{UserID: uuid.New(), Username: "hq", Role: identity.RoleAdmin}
}

func storeActor(storeID uuid.UUID) identity.Actor {
	return identity.Actor{UserID: uuid.New(), Username: "shop", Role: identity.RoleStore, StoreID: &storeID}
}

func record(storeID uuid.UUID, date time.Time, amount, count int64) sales.DailyRecord {
	return sales.DailyRecord{
		StoreID:       storeID,
		Date:          sales.DateOnly(date),
		SalesAmount:   amount,
		CustomerCount: count,
	}
}

func day(year, month, d int) time.Time {
	return time.Date(year, time.Month(month), d, 0, 0, 0, 0, time.UTC)
}
