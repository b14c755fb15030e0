package model

import "pms/shared/model"

const (
	TableName  = "extras"
	EntityName = "extra"

	FieldID          = "id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldPrice       = "price"
	FieldBillingMode = "billing_mode"
	FieldCategory    = "category"
	FieldActive      = "active"

	BillingModeOncePerStay = "once_per_stay"
	BillingModePerNight    = "per_night"
)

type Extra struct {
	ID          string  `db:"id"`
	Name        string  `db:"name"`
	Description string  `db:"description"`
	Price       float64 `db:"price"`
	BillingMode string  `db:"billing_mode"`
	Category    string  `db:"category"`
	Active      bool    `db:"active"`
	model.Metadata
}
