package sales

import (
	"github.com/shopspring/decimal"
)

// MonthlyAggregate is the derived roll-up of one store's daily records for
// one month. It is never stored; it is recomputed from the record set on
// every request.
type MonthlyAggregate struct {
	TotalSales       int64 `json:"total_sales"`
	TotalSalesExTax  int64 `json:"total_sales_ex_tax"`
	TotalCustomers   int64 `json:"total_customers"`
	AvgCustomerPrice int64 `json:"avg_customer_price"`
	BusinessDayCount int64 `json:"business_day_count"`
	AvgDailySales    int64 `json:"avg_daily_sales"`
}

// countsAsBusinessDay is the aggregation activity predicate: a day is a
// business day only when it recorded positive sales, regardless of the
// customer count. The progress engine deliberately uses a different
// predicate (hasActivity); see progress.go.
func countsAsBusinessDay(r DailyRecord) bool {
	return r.SalesAmount > 0
}

// AggregateMonth folds a month's records into a MonthlyAggregate.
// Sales and customers sum over every present record (zero records
// contribute their zeros); the business-day count and the tax-exclusive
// total only consider days with positive sales. Days with no record at all
// contribute nothing.
func AggregateMonth(records []DailyRecord, taxRate decimal.Decimal) MonthlyAggregate {
	var agg MonthlyAggregate
	for _, r := range records {
		agg.TotalSales += r.SalesAmount
		agg.TotalCustomers += r.CustomerCount
		if countsAsBusinessDay(r) {
			agg.BusinessDayCount++
			agg.TotalSalesExTax += ExTax(r.SalesAmount, taxRate)
		}
	}
	agg.AvgCustomerPrice = AvgSpend(agg.TotalSales, agg.TotalCustomers)
	agg.AvgDailySales = avgDaily(agg.TotalSales, agg.BusinessDayCount)
	return agg
}
