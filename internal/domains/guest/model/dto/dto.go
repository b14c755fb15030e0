package dto

import (
	"pms/internal/domains/guest/model"
	"pms/shared"
	gDto "pms/shared/dto"
	gModel "pms/shared/model"
	"pms/shared/timezone"

	"github.com/google/uuid"
)

type CreateGuestRequest struct {
	FirstName   string `json:"first_name"  validate:"required,max=100"`
	LastName    string `json:"last_name"   validate:"required,max=100"`
	Email       string `json:"email"       validate:"omitempty,email,max=100"`
	Phone       string `json:"phone"       validate:"omitempty,max=20"`
	DocumentID  string `json:"document_id" validate:"omitempty,max=50"`
	Nationality string `json:"nationality" validate:"omitempty,max=50"`
}

func (c *CreateGuestRequest) ToModel(user string) model.Guest {
	return model.Guest{
		ID:          uuid.NewString(),
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Email:       c.Email,
		Phone:       c.Phone,
		DocumentID:  c.DocumentID,
		Nationality: c.Nationality,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateGuestRequest struct {
	FirstName   string `db:"first_name"  json:"first_name"  validate:"omitempty,max=100"`
	LastName    string `db:"last_name"   json:"last_name"   validate:"omitempty,max=100"`
	Email       string `db:"email"       json:"email"       validate:"omitempty,email,max=100"`
	Phone       string `db:"phone"       json:"phone"       validate:"omitempty,max=20"`
	DocumentID  string `db:"document_id" json:"document_id" validate:"omitempty,max=50"`
	Nationality string `db:"nationality" json:"nationality" validate:"omitempty,max=50"`
}

type GuestResponse struct {
	ID          string `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	DocumentID  string `json:"document_id"`
	Nationality string `json:"nationality"`
	gDto.Metadata
}

func (r *GuestResponse) FromModel(model model.Guest) {
	r.ID = model.ID
	r.FirstName = model.FirstName
	r.LastName = model.LastName
	r.Email = model.Email
	r.Phone = model.Phone
	r.DocumentID = model.DocumentID
	r.Nationality = model.Nationality
	r.Metadata.FromModel(model.Metadata)
}

type GetGuestsResponse struct {
	Guests    []GuestResponse `json:"guests"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetGuestsResponse) FromModels(models []model.Guest, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Guests = make([]GuestResponse, len(models))
	for i, mod := range models {
		r.Guests[i].FromModel(mod)
	}
}
