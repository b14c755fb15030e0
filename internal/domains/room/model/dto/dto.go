package dto

import (
	"pms/internal/domains/room/model"
	"pms/shared"
	gDto "pms/shared/dto"
	gModel "pms/shared/model"
	"pms/shared/timezone"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type CreateRoomRequest struct {
	Name         string   `json:"name"          validate:"required,max=100"`
	Type         string   `json:"type"          validate:"required,max=50"`
	Description  string   `json:"description"   validate:"omitempty"`
	NightlyPrice float64  `json:"nightly_price" validate:"required,gte=0"`
	MaxAdults    int      `json:"max_adults"    validate:"required,min=1"`
	MaxChildren  int      `json:"max_children"  validate:"min=0"`
	SizeLabel    string   `json:"size_label"    validate:"omitempty,max=50"`
	Amenities    []string `json:"amenities"     validate:"omitempty"`
	Images       []string `json:"images"        validate:"omitempty,dive,url"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	return model.Room{
		ID:           uuid.NewString(),
		Name:         c.Name,
		Type:         c.Type,
		Description:  c.Description,
		NightlyPrice: c.NightlyPrice,
		MaxAdults:    c.MaxAdults,
		MaxChildren:  c.MaxChildren,
		SizeLabel:    c.SizeLabel,
		Amenities:    pq.StringArray(c.Amenities),
		Images:       pq.StringArray(c.Images),
		Active:       true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	Name         string   `db:"name"          json:"name"          validate:"omitempty,max=100"`
	Type         string   `db:"type"          json:"type"          validate:"omitempty,max=50"`
	Description  string   `db:"description"   json:"description"   validate:"omitempty"`
	NightlyPrice *float64 `db:"nightly_price" json:"nightly_price" validate:"omitempty,gte=0"`
	MaxAdults    *int     `db:"max_adults"    json:"max_adults"    validate:"omitempty,min=1"`
	MaxChildren  *int     `db:"max_children"  json:"max_children"  validate:"omitempty,min=0"`
	SizeLabel    string   `db:"size_label"    json:"size_label"    validate:"omitempty,max=50"`
	Amenities    []string `json:"amenities"   validate:"omitempty"`
	Images       []string `json:"images"      validate:"omitempty,dive,url"`
	Active       *bool    `db:"active"        json:"active"        validate:"omitempty"`
}

type RoomResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Type         string   `json:"type"`
	Description  string   `json:"description"`
	NightlyPrice float64  `json:"nightly_price"`
	MaxAdults    int      `json:"max_adults"`
	MaxChildren  int      `json:"max_children"`
	SizeLabel    string   `json:"size_label"`
	Amenities    []string `json:"amenities"`
	Images       []string `json:"images"`
	Active       bool     `json:"active"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Name = model.Name
	r.Type = model.Type
	r.Description = model.Description
	r.NightlyPrice = model.NightlyPrice
	r.MaxAdults = model.MaxAdults
	r.MaxChildren = model.MaxChildren
	r.SizeLabel = model.SizeLabel
	r.Amenities = model.Amenities
	r.Images = model.Images
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
