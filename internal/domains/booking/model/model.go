package model

import (
	"time"

	"adspot/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID           = "id"
	FieldSpaceID      = "space_id"
	FieldAdvertiserID = "advertiser_id"
	FieldStartDate    = "start_date"
	FieldEndDate      = "end_date"
	FieldStatus       = "status"
	FieldTotalPrice   = "total_price"
	FieldNotes        = "notes"
)

const (
	StatusPending   = "PENDING"
	StatusConfirmed = "CONFIRMED"
	StatusRejected  = "REJECTED"
	StatusCancelled = "CANCELLED"
)

// Booking reserves a space for the half-open range [StartDate, EndDate).
// The end date is checkout day: a booking ending on a day and another
// starting that day do not conflict.
type Booking struct {
	ID           string    `db:"id"`
	SpaceID      string    `db:"space_id"`
	AdvertiserID string    `db:"advertiser_id"`
	StartDate    time.Time `db:"start_date"`
	EndDate      time.Time `db:"end_date"`
	Status       string    `db:"status"`
	TotalPrice   float64   `db:"total_price"`
	Notes        string    `db:"notes"`
	model.Metadata
}

// ActiveStatuses are the statuses that occupy a date range for conflict
// purposes.
var ActiveStatuses = []string{StatusPending, StatusConfirmed}

var transitions = map[string][]string{
	StatusPending:   {StatusConfirmed, StatusRejected, StatusCancelled},
	StatusConfirmed: {StatusCancelled},
}

// ValidStatus reports whether s is a known booking status.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusRejected, StatusCancelled:
		return true
	}

	return false
}

// TransitionAllowed reports whether a booking may move from one status to
// another. Terminal statuses allow nothing.
func TransitionAllowed(from, to string) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}

	return false
}

// IsTerminal reports whether a status permits no further transitions.
func IsTerminal(status string) bool {
	return len(transitions[status]) == 0
}
