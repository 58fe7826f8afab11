package csvio

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"
)

// RankingHeader is the column schema of the store ranking export.
var RankingHeader = []string{
	"ランキング", "店舗名", "売上(税込)", "売上(税抜)",
	"客単価", "営業日数", "日平均(税込)", "日平均(税抜)",
}

// Writer builds a BOM-prefixed UTF-8 CSV document in memory. The BOM is
// what makes spreadsheet tools pick the right encoding when a store
// double-clicks the download.
type Writer struct {
	buf *bytes.Buffer
	csv *csv.Writer
}

// NewWriter starts a document with the given header row.
func NewWriter(header []string) *Writer {
	buf := &bytes.Buffer{}
	buf.Write([]byte{0xEF, 0xBB, 0xBF})
	w := &Writer{buf: buf, csv: csv.NewWriter(buf)}
	if len(header) > 0 {
		_ = w.csv.Write(header)
	}
	return w
}

// WriteRow appends one data row.
func (w *Writer) WriteRow(fields ...string) error {
	return w.csv.Write(fields)
}

// Bytes flushes and returns the finished document.
func (w *Writer) Bytes() ([]byte, error) {
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		return nil, fmt.Errorf("failed to write CSV: %w", err)
	}
	return w.buf.Bytes(), nil
}

// DailyExportRow is one data row of the daily-sales export.
type DailyExportRow struct {
	Date      time.Time
	Sales     int64
	Customers int64
}

// SerializeDailySales renders records in input order. Values are plain
// integers without separators so the output survives a re-import.
func SerializeDailySales(rows []DailyExportRow) ([]byte, error) {
	w := NewWriter(DailySalesHeader)
	for _, row := range rows {
		err := w.WriteRow(
			row.Date.Format("2006-01-02"),
			strconv.FormatInt(row.Sales, 10),
			strconv.FormatInt(row.Customers, 10),
		)
		if err != nil {
			return nil, err
		}
	}
	return w.Bytes()
}

// RankingExportRow is one data row of the store ranking export.
type RankingExportRow struct {
	Rank              int
	StoreName         string
	Sales             int64
	SalesExTax        int64
	AvgSpend          int64
	BusinessDays      int64
	AvgDailySales     int64
	AvgDailySalesExTax int64
}

// SerializeRanking renders leaderboard entries in input order.
func SerializeRanking(rows []RankingExportRow) ([]byte, error) {
	w := NewWriter(RankingHeader)
	for _, row := range rows {
		err := w.WriteRow(
			strconv.Itoa(row.Rank),
			row.StoreName,
			strconv.FormatInt(row.Sales, 10),
			strconv.FormatInt(row.SalesExTax, 10),
			strconv.FormatInt(row.AvgSpend, 10),
			strconv.FormatInt(row.BusinessDays, 10),
			strconv.FormatInt(row.AvgDailySales, 10),
			strconv.FormatInt(row.AvgDailySalesExTax, 10),
		)
		if err != nil {
			return nil, err
		}
	}
	return w.Bytes()
}
