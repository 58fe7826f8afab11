package sales

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lmsales/backend/internal/domain/sales"
	"github.com/lmsales/backend/internal/domain/shared"
)

func TestEntryService_Upsert(t *testing.T) {
	ctx := context.Background()

	t.Run("store user writes to own store", func(t *testing.T) {
		storeID := uuid.New()
		recordRepo := new(MockDailyRecordRepository)
		recordRepo.On("Upsert", ctx, mock.MatchedBy(func(r *sales.DailyRecord) bool {
			return r.StoreID == storeID && r.SalesAmount == 100000
		})).Return(nil)

		svc := NewEntryService(recordRepo, new(MockTargetRepository), zap.NewNop())
		view, err := svc.Upsert(ctx, storeActor(storeID), UpsertEntryInput{
			Date:          day(2024, 1, 15),
			SalesAmount:   100000,
			CustomerCount: 20,
		})

		require.NoError(t, err)
		assert.Equal(t, "2024-01-15", view.Date)
		assert.Equal(t, int64(100000), view.SalesAmount)
		recordRepo.AssertExpectations(t)
	})

	t.Run("store user cannot write to another store", func(t *testing.T) {
		other := uuid.New()
		svc := NewEntryService(new(MockDailyRecordRepository), new(MockTargetRepository), zap.NewNop())

		_, err := svc.Upsert(ctx, storeActor(uuid.New()), UpsertEntryInput{
			StoreID:     &other,
			Date:        day(2024, 1, 15),
			SalesAmount: 1,
		})

		assert.ErrorIs(t, err, shared.ErrForbidden)
	})

	t.Run("admin must name a store", func(t *testing.T) {
		svc := NewEntryService(new(MockDailyRecordRepository), new(MockTargetRepository), zap.NewNop())

		_, err := svc.Upsert(ctx, adminActor(), UpsertEntryInput{
			Date:        day(2024, 1, 15),
			SalesAmount: 1,
		})

		assert.ErrorIs(t, err, shared.ErrStoreRequired)
	})

	t.Run("negative figures are rejected", func(t *testing.T) {
		svc := NewEntryService(new(MockDailyRecordRepository), new(MockTargetRepository), zap.NewNop())

		_, err := svc.Upsert(ctx, storeActor(uuid.New()), UpsertEntryInput{
			Date:        day(2024, 1, 15),
			SalesAmount: -1,
		})

		require.Error(t, err)
	})
}

func TestEntryService_ApplyMonthlyChanges(t *testing.T) {
	ctx := context.Background()
	storeID := uuid.New()

	t.Run("upserts and deletes apply independently", func(t *testing.T) {
		recordRepo := new(MockDailyRecordRepository)
		recordRepo.On("Upsert", ctx, mock.Anything).Return(nil)
		recordRepo.On("Delete", ctx, storeID, day(2024, 1, 2)).Return(nil)

		svc := NewEntryService(recordRepo, new(MockTargetRepository), zap.NewNop())
		result, err := svc.ApplyMonthlyChanges(ctx, storeActor(storeID), nil, []BatchChange{
			{Date: day(2024, 1, 1), SalesAmount: 50000, CustomerCount: 10},
			{Date: day(2024, 1, 2), Delete: true},
			{Date: day(2024, 1, 3), SalesAmount: 60000, CustomerCount: 12},
		})

		require.NoError(t, err)
		assert.Equal(t, 3, result.SuccessCount)
		assert.Equal(t, 0, result.ErrorCount)
		recordRepo.AssertNumberOfCalls(t, "Upsert", 2)
		recordRepo.AssertNumberOfCalls(t, "Delete", 1)
	})

	t.Run("a failing item is reported at its index and the rest proceed", func(t *testing.T) {
		recordRepo := new(MockDailyRecordRepository)
		recordRepo.On("Upsert", ctx, mock.MatchedBy(func(r *sales.DailyRecord) bool {
			return r.Day() == 1
		})).Return(assert.AnError)
		recordRepo.On("Upsert", ctx, mock.MatchedBy(func(r *sales.DailyRecord) bool {
			return r.Day() == 3
		})).Return(nil)

		svc := NewEntryService(recordRepo, new(MockTargetRepository), zap.NewNop())
		result, err := svc.ApplyMonthlyChanges(ctx, storeActor(storeID), nil, []BatchChange{
			{Date: day(2024, 1, 1), SalesAmount: 100},
			{Date: day(2024, 1, 2), SalesAmount: -5},
			{Date: day(2024, 1, 3), SalesAmount: 100},
		})

		require.NoError(t, err)
		assert.Equal(t, 1, result.SuccessCount)
		assert.Equal(t, 2, result.ErrorCount)
		require.Len(t, result.Errors, 2)
		assert.Equal(t, 0, result.Errors[0].Index)
		assert.Equal(t, 1, result.Errors[1].Index)
		assert.Equal(t, "NEGATIVE_AMOUNT", result.Errors[1].Code)
	})
}

func TestEntryService_Targets(t *testing.T) {
	ctx := context.Background()
	storeID := uuid.New()

	t.Run("missing target reads as zero", func(t *testing.T) {
		targetRepo := new(MockTargetRepository)
		targetRepo.On("FindByStoreAndMonth", ctx, storeID, 2024, 1).Return(nil, shared.ErrNotFound)

		svc := NewEntryService(new(MockDailyRecordRepository), targetRepo, zap.NewNop())
		view, err := svc.GetTarget(ctx, storeActor(storeID), nil, 2024, 1)

		require.NoError(t, err)
		assert.Equal(t, int64(0), view.TargetAmount)
	})

	t.Run("set target upserts and latest write wins", func(t *testing.T) {
		targetRepo := new(MockTargetRepository)
		targetRepo.On("Upsert", ctx, mock.MatchedBy(func(tg *sales.MonthlyTarget) bool {
			return tg.StoreID == storeID && tg.Year == 2024 && tg.Month == 1 && tg.TargetAmount == 3000000
		})).Return(nil)

		svc := NewEntryService(new(MockDailyRecordRepository), targetRepo, zap.NewNop())
		view, err := svc.SetTarget(ctx, storeActor(storeID), nil, 2024, 1, 3000000)

		require.NoError(t, err)
		assert.Equal(t, int64(3000000), view.TargetAmount)
		targetRepo.AssertExpectations(t)
	})

	t.Run("invalid month is rejected", func(t *testing.T) {
		svc := NewEntryService(new(MockDailyRecordRepository), new(MockTargetRepository), zap.NewNop())
		_, err := svc.SetTarget(ctx, storeActor(storeID), nil, 2024, 13, 100)
		require.Error(t, err)
	})
}
