package sales

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProgressSnapshot describes how an in-progress month is pacing against its
// target. All rates are percentages rounded to one decimal place.
type ProgressSnapshot struct {
	PlanProgressPercent float64 `json:"plan_progress_percent"`
	AchievementRate     float64 `json:"achievement_rate"`
	ProgressRatio       float64 `json:"progress_ratio"`
	ActualSales         int64   `json:"actual_sales"`
	ActualCustomers     int64   `json:"actual_customers"`
	BusinessDayCount    int64   `json:"business_day_count"`
	ReferenceDay        int     `json:"reference_day"`
}

// hasActivity is the progress engine's activity predicate: any present
// record counts, even one whose figures are zero, because a record only
// exists when the store explicitly entered the day. This intentionally
// differs from countsAsBusinessDay (aggregate.go), which requires positive
// sales; the two views report different business-day numbers and that
// divergence is preserved rather than unified.
func hasActivity(_ DailyRecord) bool {
	return true
}

// ComputeProgress evaluates pacing for one store-month from its (possibly
// partial) record set and target. today is only consulted when viewing the
// calendar-current month with no data yet; past or future months with no
// data are treated as fully elapsed.
func ComputeProgress(records []DailyRecord, targetAmount int64, year, month int, today time.Time, isCurrentMonth bool) ProgressSnapshot {
	var snap ProgressSnapshot

	referenceDay := 0
	for _, r := range records {
		if !hasActivity(r) {
			continue
		}
		snap.ActualSales += r.SalesAmount
		snap.ActualCustomers += r.CustomerCount
		snap.BusinessDayCount++
		if d := r.Day(); d > referenceDay {
			referenceDay = d
		}
	}

	daysInMonth := DaysInMonth(year, month)
	if referenceDay == 0 {
		if isCurrentMonth {
			referenceDay = today.Day()
		} else {
			referenceDay = daysInMonth
		}
	}
	snap.ReferenceDay = referenceDay

	snap.PlanProgressPercent = ratioPercent(
		decimal.NewFromInt(int64(referenceDay)),
		decimal.NewFromInt(int64(daysInMonth)),
	)
	snap.AchievementRate = ratioPercent(
		decimal.NewFromInt(snap.ActualSales),
		decimal.NewFromInt(targetAmount),
	)
	snap.ProgressRatio = ratioPercent(
		decimal.NewFromFloat(snap.AchievementRate),
		decimal.NewFromFloat(snap.PlanProgressPercent),
	)

	return snap
}
