package dto

import (
	"github.com/google/uuid"

	"adspot/internal/domains/space/model"
	"adspot/shared"
	gDto "adspot/shared/dto"
	gModel "adspot/shared/model"
	"adspot/shared/timezone"
)

type CreateSpaceRequest struct {
	Title       string  `json:"title"       validate:"required,max=150"`
	Description string  `json:"description" validate:"omitempty,max=2000"`
	Address     string  `json:"address"     validate:"required,max=250"`
	City        string  `json:"city"        validate:"required,max=100"`
	BasePrice   float64 `json:"base_price"  validate:"required,gt=0"`
}

func (c *CreateSpaceRequest) ToModel(ownerID string) model.Space {
	return model.Space{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Title:       c.Title,
		Description: c.Description,
		Address:     c.Address,
		City:        c.City,
		BasePrice:   c.BasePrice,
		Active:      true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  ownerID,
			ModifiedBy: ownerID,
		},
	}
}

type UpdateSpaceRequest struct {
	Title       string  `db:"title"       json:"title"       validate:"omitempty,max=150"`
	Description string  `db:"description" json:"description" validate:"omitempty,max=2000"`
	Address     string  `db:"address"     json:"address"     validate:"omitempty,max=250"`
	City        string  `db:"city"        json:"city"        validate:"omitempty,max=100"`
	BasePrice   float64 `db:"base_price"  json:"base_price"  validate:"omitempty,gt=0"`
}

type SpaceResponse struct {
	ID          string  `json:"id"`
	OwnerID     string  `json:"owner_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Address     string  `json:"address"`
	City        string  `json:"city"`
	BasePrice   float64 `json:"base_price"`
	Active      bool    `json:"active"`
	gDto.Metadata
}

func (r *SpaceResponse) FromModel(model model.Space) {
	r.ID = model.ID
	r.OwnerID = model.OwnerID
	r.Title = model.Title
	r.Description = model.Description
	r.Address = model.Address
	r.City = model.City
	r.BasePrice = model.BasePrice
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetSpacesResponse struct {
	Spaces    []SpaceResponse `json:"spaces"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetSpacesResponse) FromModels(models []model.Space, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Spaces = make([]SpaceResponse, len(models))
	for i, mod := range models {
		r.Spaces[i].FromModel(mod)
	}
}
