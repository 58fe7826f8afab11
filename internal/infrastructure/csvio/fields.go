package csvio

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// The files stores upload come from a mix of spreadsheet exports and
// hand-edited text, so dates arrive in several shapes and amounts carry
// thousands separators and currency marks. Parsing here is deliberately
// permissive; validation of the parsed values stays in the domain.

var (
	dateSlashYMD = regexp.MustCompile(`^(\d{4})/(\d{1,2})/(\d{1,2})$`)
	dateDashYMD  = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
	dateSlashMDY = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	dateDotYMD   = regexp.MustCompile(`^(\d{4})\.(\d{1,2})\.(\d{1,2})$`)
	dateKanji    = regexp.MustCompile(`^(\d{4})年(\d{1,2})月(\d{1,2})日$`)

	amountScrub = strings.NewReplacer(",", "", "円", "", "¥", "", "￥", "")
	countScrub  = strings.NewReplacer("人", "", ",", "")
)

// ParseDate interprets a date field. Formats are tried in a fixed order:
// YYYY/MM/DD, YYYY-MM-DD, MM/DD/YYYY, YYYY.MM.DD, YYYY年MM月DD日, and
// finally anything time.Parse accepts as an RFC 3339 timestamp.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	type pattern struct {
		re    *regexp.Regexp
		y, m, d int // capture group indexes
	}
	patterns := []pattern{
		{dateSlashYMD, 1, 2, 3},
		{dateDashYMD, 1, 2, 3},
		{dateSlashMDY, 3, 1, 2},
		{dateDotYMD, 1, 2, 3},
		{dateKanji, 1, 2, 3},
	}

	for _, p := range patterns {
		m := p.re.FindStringSubmatch(s)
		if m == nil {
			continue
		}
		year, _ := strconv.Atoi(m[p.y])
		month, _ := strconv.Atoi(m[p.m])
		day, _ := strconv.Atoi(m[p.d])
		return civilDate(year, month, day)
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
	}
	return time.Time{}, false
}

// civilDate builds the date and rejects overflow like 2024/02/31, which
// time.Date would silently normalize to March.
func civilDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

// ParseAmount reads a currency field, tolerating thousands separators and
// yen marks. Fractional input is rounded to the nearest whole unit.
func ParseAmount(s string) (int64, bool) {
	s = strings.TrimSpace(amountScrub.Replace(strings.TrimSpace(s)))
	if s == "" {
		return 0, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, false
	}
	return d.Round(0).IntPart(), true
}

// ParseCount reads a people-count field, tolerating a 人 suffix and
// separators. Fractional input is truncated toward zero.
func ParseCount(s string) (int64, bool) {
	s = strings.TrimSpace(countScrub.Replace(strings.TrimSpace(s)))
	if s == "" {
		return 0, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, false
	}
	return d.IntPart(), true
}
