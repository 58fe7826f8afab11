package sales

// MonthRow is one row of the twelve-month summary table: the month's
// actuals set against its target and the prior year's actuals.
type MonthRow struct {
	Month             int   `json:"month"`
	Sales             int64 `json:"sales"`
	Customers         int64 `json:"customers"`
	Target            int64 `json:"target"`
	AchievementRate   int64 `json:"achievement_rate"` // whole percent, 0 when target is 0
	PreviousYearSales int64 `json:"previous_year_sales"`
	GrowthRate        int64 `json:"growth_rate"` // whole percent, 0 when prior year is 0
	AvgCustomerPrice  int64 `json:"avg_customer_price"`
}

// YearSummary is the annual roll-up of the twelve month rows.
type YearSummary struct {
	TotalSales        int64 `json:"total_sales"`
	TotalCustomers    int64 `json:"total_customers"`
	TotalTarget       int64 `json:"total_target"`
	PreviousYearTotal int64 `json:"previous_year_total"`
	AchievementRate   int64 `json:"achievement_rate"`
	GrowthRate        int64 `json:"growth_rate"`
	AvgCustomerPrice  int64 `json:"avg_customer_price"`
}

// BuildYearSummary combines the target year's monthly aggregates with the
// prior year's series and the per-month targets. Months absent from any of
// the maps default to zero, so a year with no data at all degrades to
// twelve zero-filled rows rather than an error.
func BuildYearSummary(current, previous map[int]MonthlyAggregate, targets map[int]int64) ([]MonthRow, YearSummary) {
	rows := make([]MonthRow, 0, 12)
	var summary YearSummary

	for month := 1; month <= 12; month++ {
		cur := current[month]
		prev := previous[month]
		target := targets[month]

		row := MonthRow{
			Month:             month,
			Sales:             cur.TotalSales,
			Customers:         cur.TotalCustomers,
			Target:            target,
			AchievementRate:   wholePercent(cur.TotalSales, target),
			PreviousYearSales: prev.TotalSales,
			GrowthRate:        wholePercent(cur.TotalSales-prev.TotalSales, prev.TotalSales),
			AvgCustomerPrice:  AvgSpend(cur.TotalSales, cur.TotalCustomers),
		}
		rows = append(rows, row)

		summary.TotalSales += row.Sales
		summary.TotalCustomers += row.Customers
		summary.TotalTarget += row.Target
		summary.PreviousYearTotal += row.PreviousYearSales
	}

	summary.AchievementRate = wholePercent(summary.TotalSales, summary.TotalTarget)
	summary.GrowthRate = wholePercent(summary.TotalSales-summary.PreviousYearTotal, summary.PreviousYearTotal)
	summary.AvgCustomerPrice = AvgSpend(summary.TotalSales, summary.TotalCustomers)

	return rows, summary
}
