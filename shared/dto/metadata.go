package dto

import (
	"adspot/shared/constant"
	"adspot/shared/model"
)

type Metadata struct {
	CreatedAt  string `json:"created_at"`
	ModifiedAt string `json:"modified_at"`
	CreatedBy  string `json:"created_by"`
	ModifiedBy string `json:"modified_by"`
}

func (m *Metadata) FromModel(metadata model.Metadata) {
	m.CreatedAt = metadata.CreatedAt.Format(constant.DateFormat)
	m.ModifiedAt = metadata.ModifiedAt.Format(constant.DateFormat)
	m.CreatedBy = metadata.CreatedBy
	m.ModifiedBy = metadata.ModifiedBy
}
