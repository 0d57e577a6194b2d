package dto

import (
	"time"

	"github.com/google/uuid"

	"adspot/internal/domains/booking/model"
	"adspot/shared"
	"adspot/shared/daterange"
	gDto "adspot/shared/dto"
	"adspot/shared/failure"
	gModel "adspot/shared/model"
	"adspot/shared/timezone"
)

type CreateBookingRequest struct {
	SpaceID   string `json:"space_id"   validate:"required"`
	StartDate string `json:"start_date" validate:"required,daydate"`
	EndDate   string `json:"end_date"   validate:"required,daydate"`
	Notes     string `json:"notes"      validate:"omitempty,max=500"`
}

// ParseDates resolves the request range to day-truncated times and enforces
// the date invariants shared by every creation path.
func (c *CreateBookingRequest) ParseDates() (start, end time.Time, err error) {
	start, err = daterange.ParseDay(c.StartDate)
	if err != nil {
		return start, end, failure.BadRequestKind(failure.KindInvalidDate, "invalid start date: "+c.StartDate)
	}

	end, err = daterange.ParseDay(c.EndDate)
	if err != nil {
		return start, end, failure.BadRequestKind(failure.KindInvalidDate, "invalid end date: "+c.EndDate)
	}

	if !end.After(start) {
		return start, end, failure.BadRequestKind(failure.KindInvalidDateRange, "end date must be after start date")
	}

	if daterange.BeforeToday(start) {
		return start, end, failure.BadRequestKind(failure.KindInvalidDateRange, "start date is in the past")
	}

	return start, end, nil
}

func (c *CreateBookingRequest) ToModel(advertiserID string, start, end time.Time, totalPrice float64) model.Booking {
	return model.Booking{
		ID:           uuid.NewString(),
		SpaceID:      c.SpaceID,
		AdvertiserID: advertiserID,
		StartDate:    start,
		EndDate:      end,
		Status:       model.StatusPending,
		TotalPrice:   totalPrice,
		Notes:        c.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  advertiserID,
			ModifiedBy: advertiserID,
		},
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=CONFIRMED REJECTED CANCELLED"`
}

type BookingResponse struct {
	ID           string  `json:"id"`
	SpaceID      string  `json:"space_id"`
	AdvertiserID string  `json:"advertiser_id"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Status       string  `json:"status"`
	TotalPrice   float64 `json:"total_price"`
	Notes        string  `json:"notes,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.SpaceID = model.SpaceID
	r.AdvertiserID = model.AdvertiserID
	r.StartDate = daterange.Format(model.StartDate)
	r.EndDate = daterange.Format(model.EndDate)
	r.Status = model.Status
	r.TotalPrice = model.TotalPrice
	r.Notes = model.Notes
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
