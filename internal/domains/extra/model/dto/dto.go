package dto

import (
	"pms/internal/domains/extra/model"
	"pms/shared"
	gDto "pms/shared/dto"
	gModel "pms/shared/model"
	"pms/shared/timezone"

	"github.com/google/uuid"
)

type CreateExtraRequest struct {
	Name        string  `json:"name"         validate:"required,max=100"`
	Description string  `json:"description"  validate:"omitempty"`
	Price       float64 `json:"price"        validate:"required,gte=0"`
	BillingMode string  `json:"billing_mode" validate:"required,oneof=once_per_stay per_night"`
	Category    string  `json:"category"     validate:"omitempty,max=50"`
}

func (c *CreateExtraRequest) ToModel(user string) model.Extra {
	return model.Extra{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Description: c.Description,
		Price:       c.Price,
		BillingMode: c.BillingMode,
		Category:    c.Category,
		Active:      true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateExtraRequest struct {
	Name        string   `db:"name"         json:"name"         validate:"omitempty,max=100"`
	Description string   `db:"description"  json:"description"  validate:"omitempty"`
	Price       *float64 `db:"price"        json:"price"        validate:"omitempty,gte=0"`
	BillingMode string   `db:"billing_mode" json:"billing_mode" validate:"omitempty,oneof=once_per_stay per_night"`
	Category    string   `db:"category"     json:"category"     validate:"omitempty,max=50"`
	Active      *bool    `db:"active"       json:"active"       validate:"omitempty"`
}

type ExtraResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	BillingMode string  `json:"billing_mode"`
	Category    string  `json:"category"`
	Active      bool    `json:"active"`
	gDto.Metadata
}

func (r *ExtraResponse) FromModel(model model.Extra) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.Price = model.Price
	r.BillingMode = model.BillingMode
	r.Category = model.Category
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetExtrasResponse struct {
	Extras    []ExtraResponse `json:"extras"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetExtrasResponse) FromModels(models []model.Extra, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Extras = make([]ExtraResponse, len(models))
	for i, mod := range models {
		r.Extras[i].FromModel(mod)
	}
}
