package sales

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lmsales/backend/internal/domain/identity"
	"github.com/lmsales/backend/internal/domain/sales"
	"github.com/lmsales/backend/internal/domain/shared"
)

// EntryService handles daily figure submission: single upserts, deletes,
// and the monthly batch change set.
type EntryService struct {
	recordRepo sales.DailyRecordRepository
	targetRepo sales.TargetRepository
	logger     *zap.Logger
}

// NewEntryService creates a new entry service
func NewEntryService(recordRepo sales.DailyRecordRepository, targetRepo sales.TargetRepository, logger *zap.Logger) *EntryService {
	return &EntryService{
		recordRepo: recordRepo,
		targetRepo: targetRepo,
		logger:     logger,
	}
}

// Upsert writes one day's figures. Re-submitting a date replaces the
// previous figures for that date.
func (s *EntryService) Upsert(ctx context.Context, actor identity.Actor, input UpsertEntryInput) (*DailyRecordView, error) {
	storeID, err := actor.ResolveStore(input.StoreID)
	if err != nil {
		return nil, err
	}

	record, err := sales.NewDailyRecord(storeID, input.Date, input.SalesAmount, input.CustomerCount)
	if err != nil {
		return nil, err
	}
	if err := s.recordRepo.Upsert(ctx, record); err != nil {
		return nil, err
	}

	s.logger.Info("Daily record saved",
		zap.String("store_id", storeID.String()),
		zap.String("date", record.Date.Format("2006-01-02")),
		zap.Int64("sales", record.SalesAmount))

	view := toRecordView(*record)
	return &view, nil
}

// Delete removes one day's record. Deleting a day that was never entered
// is not an error.
func (s *EntryService) Delete(ctx context.Context, actor identity.Actor, requestedStore *uuid.UUID, date time.Time) error {
	storeID, err := actor.ResolveStore(requestedStore)
	if err != nil {
		return err
	}
	return s.recordRepo.Delete(ctx, storeID, sales.DateOnly(date))
}

// ListMonth returns a store's records for one month, ordered by date.
func (s *EntryService) ListMonth(ctx context.Context, actor identity.Actor, requestedStore *uuid.UUID, year, month int) ([]DailyRecordView, error) {
	storeID, err := actor.ResolveStore(requestedStore)
	if err != nil {
		return nil, err
	}

	from, to := sales.MonthRange(year, month)
	records, err := s.recordRepo.FindByStoreAndRange(ctx, storeID, from, to)
	if err != nil {
		return nil, err
	}

	views := make([]DailyRecordView, 0, len(records))
	for _, r := range records {
		views = append(views, toRecordView(r))
	}
	return views, nil
}

// ApplyMonthlyChanges applies a batch of upserts and deletes. Every item
// is processed regardless of earlier failures, and each failure is
// reported against its position in the submitted set.
func (s *EntryService) ApplyMonthlyChanges(ctx context.Context, actor identity.Actor, requestedStore *uuid.UUID, changes []BatchChange) (*BatchResult, error) {
	storeID, err := actor.ResolveStore(requestedStore)
	if err != nil {
		return nil, err
	}

	result := &BatchResult{}
	for i, change := range changes {
		if err := s.applyChange(ctx, storeID, change); err != nil {
			result.ErrorCount++
			result.Errors = append(result.Errors, BatchItemError{
				Index:   i,
				Date:    sales.DateOnly(change.Date).Format("2006-01-02"),
				Code:    errorCode(err),
				Message: err.Error(),
			})
			continue
		}
		result.SuccessCount++
	}

	s.logger.Info("Monthly batch applied",
		zap.String("store_id", storeID.String()),
		zap.Int("success", result.SuccessCount),
		zap.Int("errors", result.ErrorCount))

	return result, nil
}

func (s *EntryService) applyChange(ctx context.Context, storeID uuid.UUID, change BatchChange) error {
	if change.Delete {
		return s.recordRepo.Delete(ctx, storeID, sales.DateOnly(change.Date))
	}
	record, err := sales.NewDailyRecord(storeID, change.Date, change.SalesAmount, change.CustomerCount)
	if err != nil {
		return err
	}
	return s.recordRepo.Upsert(ctx, record)
}

// GetTarget returns the target for a store-month, zero when none is set.
func (s *EntryService) GetTarget(ctx context.Context, actor identity.Actor, requestedStore *uuid.UUID, year, month int) (*TargetView, error) {
	storeID, err := actor.ResolveStore(requestedStore)
	if err != nil {
		return nil, err
	}

	target, err := s.targetRepo.FindByStoreAndMonth(ctx, storeID, year, month)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return &TargetView{StoreID: storeID, Year: year, Month: month}, nil
		}
		return nil, err
	}
	return &TargetView{
		StoreID:      target.StoreID,
		Year:         target.Year,
		Month:        target.Month,
		TargetAmount: target.TargetAmount,
	}, nil
}

// SetTarget upserts the target for a store-month. The latest write wins;
// no history is kept.
func (s *EntryService) SetTarget(ctx context.Context, actor identity.Actor, requestedStore *uuid.UUID, year, month int, amount int64) (*TargetView, error) {
	storeID, err := actor.ResolveStore(requestedStore)
	if err != nil {
		return nil, err
	}

	target, err := sales.NewMonthlyTarget(storeID, year, month, amount)
	if err != nil {
		return nil, err
	}
	if err := s.targetRepo.Upsert(ctx, target); err != nil {
		return nil, err
	}

	s.logger.Info("Monthly target set",
		zap.String("store_id", storeID.String()),
		zap.Int("year", year), zap.Int("month", month),
		zap.Int64("amount", amount))

	return &TargetView{StoreID: storeID, Year: year, Month: month, TargetAmount: amount}, nil
}

func toRecordView(r sales.DailyRecord) DailyRecordView {
	return DailyRecordView{
		Date:          r.Date.Format("2006-01-02"),
		SalesAmount:   r.SalesAmount,
		CustomerCount: r.CustomerCount,
	}
}

func errorCode(err error) string {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}
	return "PERSISTENCE_ERROR"
}
