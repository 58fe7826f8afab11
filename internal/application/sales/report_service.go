package sales

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/lmsales/backend/internal/domain/identity"
	"github.com/lmsales/backend/internal/domain/sales"
	"github.com/lmsales/backend/internal/domain/shared"
	"github.com/lmsales/backend/internal/domain/store"
	"github.com/lmsales/backend/internal/infrastructure/csvio"
)

// ReportService derives the read-side views: monthly aggregates, the
// twelve-month summary, pacing, the admin ranking and statistics.
type ReportService struct {
	recordRepo sales.DailyRecordRepository
	targetRepo sales.TargetRepository
	storeRepo  store.Repository
	logger     *zap.Logger
	now        func() time.Time
}

// NewReportService creates a new report service
func NewReportService(
	recordRepo sales.DailyRecordRepository,
	targetRepo sales.TargetRepository,
	storeRepo store.Repository,
	logger *zap.Logger,
) *ReportService {
	return &ReportService{
		recordRepo: recordRepo,
		targetRepo: targetRepo,
		storeRepo:  storeRepo,
		logger:     logger,
		now:        time.Now,
	}
}

// Monthly returns one store-month: records, derived aggregate, target.
func (s *ReportService) Monthly(ctx context.Context, actor identity.Actor, requestedStore *uuid.UUID, year, month int) (*MonthlyReport, error) {
	storeID, err := actor.ResolveStore(requestedStore)
	if err != nil {
		return nil, err
	}
	st, err := s.storeRepo.FindByID(ctx, storeID)
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

	return &MonthlyReport{
		StoreID:      storeID,
		Year:         year,
		Month:        month,
		Records:      views,
		Aggregate:    sales.AggregateMonth(records, st.TaxRate),
		TargetAmount: s.targetOrZero(ctx, storeID, year, month),
	}, nil
}

// YearSummary builds the twelve-month table for a year, set against the
// prior year's actuals and the store's targets. A year with no data at
// all yields twelve zero rows, not an error.
func (s *ReportService) YearSummary(ctx context.Context, actor identity.Actor, requestedStore *uuid.UUID, year int) (*YearReport, error) {
	storeID, err := actor.ResolveStore(requestedStore)
	if err != nil {
		return nil, err
	}
	st, err := s.storeRepo.FindByID(ctx, storeID)
	if err != nil {
		return nil, err
	}

	current, err := s.monthlyAggregates(ctx, storeID, year, st.TaxRate)
	if err != nil {
		return nil, err
	}
	previous, err := s.monthlyAggregates(ctx, storeID, year-1, st.TaxRate)
	if err != nil {
		return nil, err
	}

	targets := make(map[int]int64)
	stored, err := s.targetRepo.FindByStoreAndYear(ctx, storeID, year)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	for _, target := range stored {
		targets[target.Month] = target.TargetAmount
	}

	months, summary := sales.BuildYearSummary(current, previous, targets)
	return &YearReport{StoreID: storeID, Year: year, Months: months, Summary: summary}, nil
}

// Progress evaluates how the month is pacing against its target.
func (s *ReportService) Progress(ctx context.Context, actor identity.Actor, requestedStore *uuid.UUID, year, month int) (*sales.ProgressSnapshot, error) {
	storeID, err := actor.ResolveStore(requestedStore)
	if err != nil {
		return nil, err
	}

	from, to := sales.MonthRange(year, month)
	records, err := s.recordRepo.FindByStoreAndRange(ctx, storeID, from, to)
	if err != nil {
		return nil, err
	}

	now := s.now()
	isCurrentMonth := now.Year() == year && int(now.Month()) == month
	snap := sales.ComputeProgress(records, s.targetOrZero(ctx, storeID, year, month), year, month, now, isCurrentMonth)
	return &snap, nil
}

// Ranking orders every store by its monthly tax-inclusive sales. Stores
// with no records for the month still appear, with zero figures.
func (s *ReportService) Ranking(ctx context.Context, actor identity.Actor, year, month int) ([]sales.RankingEntry, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}

	stores, err := s.storeRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	from, to := sales.MonthRange(year, month)
	records, err := s.recordRepo.FindByRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	byStore := make(map[uuid.UUID][]sales.DailyRecord)
	for _, r := range records {
		byStore[r.StoreID] = append(byStore[r.StoreID], r)
	}

	entries := make([]sales.RankingEntry, 0, len(stores))
	for _, st := range stores {
		entries = append(entries, sales.RankingEntry{
			StoreID:          st.ID,
			StoreName:        st.Name,
			MonthlyAggregate: sales.AggregateMonth(byStore[st.ID], st.TaxRate),
		})
	}
	return sales.RankStores(entries), nil
}

// ExportRanking renders the ranking as a BOM-prefixed CSV download.
func (s *ReportService) ExportRanking(ctx context.Context, actor identity.Actor, year, month int) ([]byte, error) {
	entries, err := s.Ranking(ctx, actor, year, month)
	if err != nil {
		return nil, err
	}

	rows := make([]csvio.RankingExportRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, csvio.RankingExportRow{
			Rank:               e.Rank,
			StoreName:          e.StoreName,
			Sales:              e.TotalSales,
			SalesExTax:         e.TotalSalesExTax,
			AvgSpend:           e.AvgCustomerPrice,
			BusinessDays:       e.BusinessDayCount,
			AvgDailySales:      e.AvgDailySales,
			AvgDailySalesExTax: avgOver(e.TotalSalesExTax, e.BusinessDayCount),
		})
	}
	return csvio.SerializeRanking(rows)
}

// Statistics is the admin overview of one month across all stores.
// Averages are over stores with at least one record.
func (s *ReportService) Statistics(ctx context.Context, actor identity.Actor, year, month int) (*Statistics, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}

	stores, err := s.storeRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	from, to := sales.MonthRange(year, month)
	records, err := s.recordRepo.FindByRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	stats := &Statistics{
		Year:        year,
		Month:       month,
		StoreCount:  len(stores),
		RecordCount: len(records),
	}
	active := make(map[uuid.UUID]struct{})
	for _, r := range records {
		stats.TotalSales += r.SalesAmount
		stats.TotalCustomers += r.CustomerCount
		active[r.StoreID] = struct{}{}
	}
	stats.ActiveStoreCount = len(active)
	stats.AvgCustomerPrice = sales.AvgSpend(stats.TotalSales, stats.TotalCustomers)
	if n := int64(stats.ActiveStoreCount); n > 0 {
		stats.AvgSalesPerStore = avgOver(stats.TotalSales, n)
		stats.AvgCustomersPerStore = avgOver(stats.TotalCustomers, n)
	}
	return stats, nil
}

func (s *ReportService) monthlyAggregates(ctx context.Context, storeID uuid.UUID, year int, taxRate decimal.Decimal) (map[int]sales.MonthlyAggregate, error) {
	from, _ := sales.MonthRange(year, 1)
	_, to := sales.MonthRange(year, 12)
	records, err := s.recordRepo.FindByStoreAndRange(ctx, storeID, from, to)
	if err != nil {
		return nil, err
	}

	byMonth := make(map[int][]sales.DailyRecord)
	for _, r := range records {
		byMonth[int(r.Date.Month())] = append(byMonth[int(r.Date.Month())], r)
	}

	aggregates := make(map[int]sales.MonthlyAggregate, len(byMonth))
	for month, monthRecords := range byMonth {
		aggregates[month] = sales.AggregateMonth(monthRecords, taxRate)
	}
	return aggregates, nil
}

// avgOver divides total by n rounding half away from zero, matching the
// rounding used throughout the money math.
func avgOver(total, n int64) int64 {
	if n <= 0 {
		return 0
	}
	return decimal.NewFromInt(total).Div(decimal.NewFromInt(n)).Round(0).IntPart()
}

// targetOrZero reads the month's target, treating an unset target as zero.
func (s *ReportService) targetOrZero(ctx context.Context, storeID uuid.UUID, year, month int) int64 {
	target, err := s.targetRepo.FindByStoreAndMonth(ctx, storeID, year, month)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			s.logger.Warn("Failed to read monthly target",
				zap.String("store_id", storeID.String()), zap.Error(err))
		}
		return 0
	}
	return target.TargetAmount
}
