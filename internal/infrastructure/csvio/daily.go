package csvio

import (
	"fmt"
	"io"
	"time"
)

// DailySalesHeader is the fixed column schema shared by the daily-sales
// import and export, in the labels stores see in their spreadsheets.
var DailySalesHeader = []string{"日付", "税込売上", "客数"}

// ParsedDaily is one successfully parsed data row of a daily-sales file.
type ParsedDaily struct {
	Row    int // 1-based data row, for correlating persistence errors
	Date   time.Time
	Amount int64
	Count  int64
}

// ParseDailySales reads an entire daily-sales file: header row first, then
// one (date, amount, count) triple per row. A bad row is recorded in the
// collection and skipped; parsing always continues to the end of the file.
func ParseDailySales(r io.Reader) ([]ParsedDaily, *ErrorCollection, error) {
	reader, err := NewReader(r)
	if err != nil {
		return nil, nil, err
	}
	if _, err := reader.ReadHeader(); err != nil {
		return nil, nil, err
	}

	var parsed []ParsedDaily
	errs := NewErrorCollection(DetailLimit)

	for {
		row, err := reader.ReadRow()
		if err == io.EOF {
			break
		}
		if err != nil {
			errs.Add(NewRowError(row.Number, ErrCodeMissingFields, "malformed row", ""))
			continue
		}
		if row.IsEmpty() {
			continue
		}
		if p, ok := parseDailyRow(row, errs); ok {
			parsed = append(parsed, p)
		}
	}
	return parsed, errs, nil
}

func parseDailyRow(row Row, errs *ErrorCollection) (ParsedDaily, bool) {
	if len(row.Fields) < 3 {
		errs.Add(NewRowError(row.Number, ErrCodeMissingFields,
			"row needs date, sales amount and customer count", ""))
		return ParsedDaily{}, false
	}

	dateStr, amountStr, countStr := row.Field(0), row.Field(1), row.Field(2)
	if dateStr == "" || amountStr == "" || countStr == "" {
		errs.Add(NewRowError(row.Number, ErrCodeEmptyField,
			fmt.Sprintf("required fields are empty (%s, %s, %s)", dateStr, amountStr, countStr), ""))
		return ParsedDaily{}, false
	}

	date, ok := ParseDate(dateStr)
	if !ok {
		errs.Add(NewRowError(row.Number, ErrCodeInvalidDate, "invalid date format", dateStr))
		return ParsedDaily{}, false
	}
	amount, ok := ParseAmount(amountStr)
	if !ok {
		errs.Add(NewRowError(row.Number, ErrCodeInvalidAmount, "invalid sales amount", amountStr))
		return ParsedDaily{}, false
	}
	count, ok := ParseCount(countStr)
	if !ok {
		errs.Add(NewRowError(row.Number, ErrCodeInvalidCount, "invalid customer count", countStr))
		return ParsedDaily{}, false
	}
	if amount < 0 || count < 0 {
		errs.Add(NewRowError(row.Number, ErrCodeNegativeValue,
			"sales amount and customer count must be >= 0", ""))
		return ParsedDaily{}, false
	}

	return ParsedDaily{Row: row.Number, Date: date, Amount: amount, Count: count}, true
}
