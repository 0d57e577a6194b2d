package dto

import (
	"github.com/google/uuid"

	"adspot/internal/domains/availability/model"
	bookingModel "adspot/internal/domains/booking/model"
	"adspot/shared/daterange"
	"adspot/shared/failure"
	gModel "adspot/shared/model"
	"adspot/shared/timezone"
)

// DayEntryRequest is one day inside a SetAvailabilityRequest.
type DayEntryRequest struct {
	Date          string   `json:"date"           validate:"required,daydate"`
	Type          string   `json:"type"           validate:"required,oneof=available blocked"`
	Notes         *string  `json:"notes,omitempty"          validate:"omitempty,max=500"`
	PriceOverride *float64 `json:"price_override,omitempty" validate:"omitempty,gt=0"`
}

type SetAvailabilityRequest struct {
	Entries []DayEntryRequest `json:"entries" validate:"required,min=1,max=366,dive"`
}

// ToModels parses and validates the day entries. Past days are rejected;
// owners edit the future of the ledger, never its history.
func (r *SetAvailabilityRequest) ToModels(spaceID, user string) ([]model.Entry, error) {
	entries := make([]model.Entry, 0, len(r.Entries))

	for _, day := range r.Entries {
		date, err := daterange.ParseDay(day.Date)
		if err != nil {
			return nil, failure.BadRequestKind(failure.KindInvalidDate, "invalid date: "+day.Date)
		}

		if daterange.BeforeToday(date) {
			return nil, failure.BadRequestKind(failure.KindInvalidDate, "date is in the past: "+day.Date)
		}

		entries = append(entries, model.Entry{
			ID:            uuid.NewString(),
			SpaceID:       spaceID,
			Date:          date,
			Type:          day.Type,
			Notes:         day.Notes,
			PriceOverride: day.PriceOverride,
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
				CreatedBy:  user,
				ModifiedBy: user,
			},
		})
	}

	return entries, nil
}

type BlockDatesRequest struct {
	Dates []string `json:"dates" validate:"required,min=1,max=366,dive,daydate"`
	Notes *string  `json:"notes,omitempty" validate:"omitempty,max=500"`
}

type SetPriceOverrideRequest struct {
	Dates []string `json:"dates" validate:"required,min=1,max=366,dive,daydate"`
	Price float64  `json:"price" validate:"required,gt=0"`
}

type UnblockDatesRequest struct {
	Dates []string `json:"dates" validate:"required,min=1,max=366,dive,daydate"`
}

type UnblockDatesResponse struct {
	DeletedCount int `json:"deleted_count"`
}

type EntryResponse struct {
	Date          string   `json:"date"`
	Type          string   `json:"type"`
	Notes         *string  `json:"notes,omitempty"`
	PriceOverride *float64 `json:"price_override,omitempty"`
	BookingID     *string  `json:"booking_id,omitempty"`
}

func (r *EntryResponse) FromModel(model model.Entry) {
	r.Date = daterange.Format(model.Date)
	r.Type = model.Type
	r.Notes = model.Notes
	r.PriceOverride = model.PriceOverride
	r.BookingID = model.BookingID
}

// BookingWindowResponse is the slice of a booking visible through an
// availability query. Pending bookings have no ledger entries yet, so the
// range query reports them alongside the explicit entries.
type BookingWindowResponse struct {
	ID        string `json:"id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Status    string `json:"status"`
}

// QueryRangeResponse lists the ledger entries of a space within a range,
// alongside the base price days without an entry fall back to and the
// active bookings intersecting the range.
type QueryRangeResponse struct {
	SpaceID   string                  `json:"space_id"`
	StartDate string                  `json:"start_date"`
	EndDate   string                  `json:"end_date"`
	BasePrice float64                 `json:"base_price"`
	Entries   []EntryResponse         `json:"entries"`
	Bookings  []BookingWindowResponse `json:"bookings"`
}

func (r *QueryRangeResponse) FromModels(models []model.Entry) {
	r.Entries = make([]EntryResponse, len(models))
	for i, mod := range models {
		r.Entries[i].FromModel(mod)
	}
}

func (r *QueryRangeResponse) FromBookingModels(bookings []bookingModel.Booking) {
	r.Bookings = make([]BookingWindowResponse, len(bookings))
	for i, booking := range bookings {
		r.Bookings[i] = BookingWindowResponse{
			ID:        booking.ID,
			StartDate: daterange.Format(booking.StartDate),
			EndDate:   daterange.Format(booking.EndDate),
			Status:    booking.Status,
		}
	}
}

// CheckRangeResponse reports whether a half-open range is free of blocked
// and booked days, listing the conflicting dates when it is not.
type CheckRangeResponse struct {
	Available bool     `json:"available"`
	Conflicts []string `json:"conflicts"`
}
