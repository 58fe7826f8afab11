package csvio

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes reported per row during an import.
const (
	ErrCodeMissingFields = "CSV_MISSING_FIELDS"
	ErrCodeEmptyField    = "CSV_EMPTY_FIELD"
	ErrCodeInvalidDate   = "CSV_INVALID_DATE"
	ErrCodeInvalidAmount = "CSV_INVALID_AMOUNT"
	ErrCodeInvalidCount  = "CSV_INVALID_COUNT"
	ErrCodeNegativeValue = "CSV_NEGATIVE_VALUE"
	ErrCodePersistence   = "CSV_PERSISTENCE"
)

var (
	// ErrEmptyFile is returned when the uploaded file holds no bytes.
	ErrEmptyFile = errors.New("CSV file is empty")

	// ErrInvalidEncoding is returned when the content is neither valid
	// UTF-8 nor Shift_JIS.
	ErrInvalidEncoding = errors.New("invalid file encoding, expected UTF-8 or Shift_JIS")

	// ErrMissingHeader is returned when the file ends before a header row.
	ErrMissingHeader = errors.New("CSV file missing header row")
)

// RowError describes why one data row was rejected. Row numbers are
// 1-based over data rows, excluding the header, which is how the rows
// were numbered in the files stores already have.
type RowError struct {
	Row     int    `json:"row"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Value   string `json:"value,omitempty"`
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %s", e.Row, e.Message)
}

// NewRowError creates a RowError carrying the offending value.
func NewRowError(row int, code, message, value string) RowError {
	return RowError{Row: row, Code: code, Message: message, Value: value}
}

// DetailLimit is how many row errors an import response spells out.
// The total count is always reported even when details are cut off.
const DetailLimit = 5

// ErrorCollection accumulates row errors during an import, keeping full
// detail for the first DetailLimit and only counting the rest.
type ErrorCollection struct {
	errors     []RowError
	limit      int
	totalCount int
}

// NewErrorCollection creates a collection detailing at most limit errors.
// A non-positive limit falls back to DetailLimit.
func NewErrorCollection(limit int) *ErrorCollection {
	if limit <= 0 {
		limit = DetailLimit
	}
	return &ErrorCollection{
		errors: make([]RowError, 0, limit),
		limit:  limit,
	}
}

// Add records an error, retaining detail while under the limit.
func (ec *ErrorCollection) Add(err RowError) {
	ec.totalCount++
	if len(ec.errors) < ec.limit {
		ec.errors = append(ec.errors, err)
	}
}

// Errors returns the detailed errors, at most the configured limit.
func (ec *ErrorCollection) Errors() []RowError {
	return ec.errors
}

// TotalCount returns how many errors occurred in total.
func (ec *ErrorCollection) TotalCount() int {
	return ec.totalCount
}

// HasErrors reports whether anything was rejected.
func (ec *ErrorCollection) HasErrors() bool {
	return ec.totalCount > 0
}

// IsTruncated reports whether detail was dropped for some errors.
func (ec *ErrorCollection) IsTruncated() bool {
	return ec.totalCount > ec.limit
}

func (ec *ErrorCollection) String() string {
	if !ec.HasErrors() {
		return "no errors"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d error(s)", ec.totalCount)
	if ec.IsTruncated() {
		fmt.Fprintf(&sb, " (showing first %d)", ec.limit)
	}
	sb.WriteString(":\n")
	for _, err := range ec.errors {
		fmt.Fprintf(&sb, "  - %s\n", err.Error())
	}
	return sb.String()
}
