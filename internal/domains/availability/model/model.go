package model

import (
	"time"

	"adspot/shared/model"
)

const (
	TableName  = "availability_entries"
	EntityName = "availability entry"

	FieldID            = "id"
	FieldSpaceID       = "space_id"
	FieldDate          = "date"
	FieldType          = "type"
	FieldNotes         = "notes"
	FieldPriceOverride = "price_override"
	FieldBookingID     = "booking_id"
)

const (
	TypeAvailable = "available"
	TypeBlocked   = "blocked"
	TypeBooked    = "booked"
)

// Entry is one day of a space's availability ledger. The ledger is sparse:
// days without an entry are bookable at the space's base price. Booked
// entries carry the booking that owns them and are never removed by owner
// edits, only by releasing the booking.
type Entry struct {
	ID            string     `db:"id"`
	SpaceID       string     `db:"space_id"`
	Date          time.Time  `db:"date"`
	Type          string     `db:"type"`
	Notes         *string    `db:"notes"`
	PriceOverride *float64   `db:"price_override"`
	BookingID     *string    `db:"booking_id"`
	model.Metadata
}

// ValidType reports whether t is a known ledger entry type.
func ValidType(t string) bool {
	return t == TypeAvailable || t == TypeBlocked || t == TypeBooked
}
