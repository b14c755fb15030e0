package model

import (
	"pms/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID           = "id"
	FieldName         = "name"
	FieldType         = "type"
	FieldDescription  = "description"
	FieldNightlyPrice = "nightly_price"
	FieldMaxAdults    = "max_adults"
	FieldMaxChildren  = "max_children"
	FieldSizeLabel    = "size_label"
	FieldAmenities    = "amenities"
	FieldImages       = "images"
	FieldActive       = "active"
)

type Room struct {
	ID           string         `db:"id"`
	Name         string         `db:"name"`
	Type         string         `db:"type"`
	Description  string         `db:"description"`
	NightlyPrice float64        `db:"nightly_price"`
	MaxAdults    int            `db:"max_adults"`
	MaxChildren  int            `db:"max_children"`
	SizeLabel    string         `db:"size_label"`
	Amenities    pq.StringArray `db:"amenities"`
	Images       pq.StringArray `db:"images"`
	Active       bool           `db:"active"`
	model.Metadata
}
