package handler

import (
	"time"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// optionalUUID parses an optional store ID query/body value.
func optionalUUID(s string) (*uuid.UUID, error) {
	if s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// parseDate parses the API's strict date format. The lenient multi-format
// parsing is reserved for CSV files.
func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// monthQuery is the common store/year/month query parameter set. StoreID
// is only meaningful for admins; store users are pinned to their own.
type monthQuery struct {
	StoreID string `form:"store_id" binding:"omitempty,uuid"`
	Year    int    `form:"year" binding:"required,min=2000,max=2100"`
	Month   int    `form:"month" binding:"required,month"`
}

// yearQuery is the store/year query parameter set.
type yearQuery struct {
	StoreID string `form:"store_id" binding:"omitempty,uuid"`
	Year    int    `form:"year" binding:"required,min=2000,max=2100"`
}
