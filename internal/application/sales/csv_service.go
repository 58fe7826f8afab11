package sales

import (
	"context"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lmsales/backend/internal/domain/identity"
	"github.com/lmsales/backend/internal/domain/sales"
	"github.com/lmsales/backend/internal/infrastructure/csvio"
)

// CSVService handles daily-sales file import and export for one store.
type CSVService struct {
	recordRepo sales.DailyRecordRepository
	logger     *zap.Logger
}

// NewCSVService creates a new CSV import/export service
func NewCSVService(recordRepo sales.DailyRecordRepository, logger *zap.Logger) *CSVService {
	return &CSVService{recordRepo: recordRepo, logger: logger}
}

// Import parses a daily-sales file and upserts every valid row into the
// store's records. Parse failures and persistence failures are collected
// into the same per-row error list; a bad row never stops the rest.
func (s *CSVService) Import(ctx context.Context, actor identity.Actor, requestedStore *uuid.UUID, r io.Reader) (*ImportResult, error) {
	storeID, err := actor.ResolveStore(requestedStore)
	if err != nil {
		return nil, err
	}

	rows, errs, err := csvio.ParseDailySales(r)
	if err != nil {
		return nil, err
	}

	result := &ImportResult{}
	for _, row := range rows {
		record, err := sales.NewDailyRecord(storeID, row.Date, row.Amount, row.Count)
		if err != nil {
			errs.Add(csvio.NewRowError(row.Row, csvio.ErrCodePersistence, err.Error(), ""))
			continue
		}
		if err := s.recordRepo.Upsert(ctx, record); err != nil {
			s.logger.Warn("Import row failed to persist",
				zap.Int("row", row.Row),
				zap.String("date", record.Date.Format("2006-01-02")),
				zap.Error(err))
			errs.Add(csvio.NewRowError(row.Row, csvio.ErrCodePersistence, err.Error(), ""))
			continue
		}
		result.SuccessCount++
	}

	result.ErrorCount = errs.TotalCount()
	result.ErrorDetails = errs.Errors()
	result.IsTruncated = errs.IsTruncated()

	s.logger.Info("Daily sales import finished",
		zap.String("store_id", storeID.String()),
		zap.Int("success", result.SuccessCount),
		zap.Int("errors", result.ErrorCount))

	return result, nil
}

// Export renders one store-month as a BOM-prefixed CSV, one row per
// stored day in date order. The output re-imports cleanly.
func (s *CSVService) Export(ctx context.Context, actor identity.Actor, requestedStore *uuid.UUID, year, month int) ([]byte, error) {
	storeID, err := actor.ResolveStore(requestedStore)
	if err != nil {
		return nil, err
	}

	from, to := sales.MonthRange(year, month)
	records, err := s.recordRepo.FindByStoreAndRange(ctx, storeID, from, to)
	if err != nil {
		return nil, err
	}

	rows := make([]csvio.DailyExportRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, csvio.DailyExportRow{
			Date:      r.Date,
			Sales:     r.SalesAmount,
			Customers: r.CustomerCount,
		})
	}
	return csvio.SerializeDailySales(rows)
}
