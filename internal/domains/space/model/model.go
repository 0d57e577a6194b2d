package model

import (
	"time"

	"adspot/shared/model"
)

const (
	TableName  = "spaces"
	EntityName = "space"

	FieldID          = "id"
	FieldOwnerID     = "owner_id"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldAddress     = "address"
	FieldCity        = "city"
	FieldBasePrice   = "base_price"
	FieldActive      = "active"
	FieldDeletedAt   = "deleted_at"
)

// Space is a listable physical advertising slot owned by a user. BasePrice
// is the default charge per day; the availability ledger may override it
// per date.
type Space struct {
	ID          string     `db:"id"`
	OwnerID     string     `db:"owner_id"`
	Title       string     `db:"title"`
	Description string     `db:"description"`
	Address     string     `db:"address"`
	City        string     `db:"city"`
	BasePrice   float64    `db:"base_price"`
	Active      bool       `db:"active"`
	DeletedAt   *time.Time `db:"deleted_at"`
	model.Metadata
}
