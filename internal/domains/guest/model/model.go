package model

import "pms/shared/model"

const (
	TableName  = "guests"
	EntityName = "guest"

	FieldID          = "id"
	FieldFirstName   = "first_name"
	FieldLastName    = "last_name"
	FieldEmail       = "email"
	FieldPhone       = "phone"
	FieldDocumentID  = "document_id"
	FieldNationality = "nationality"
)

type Guest struct {
	ID          string `db:"id"`
	FirstName   string `db:"first_name"`
	LastName    string `db:"last_name"`
	Email       string `db:"email"`
	Phone       string `db:"phone"`
	DocumentID  string `db:"document_id"`
	Nationality string `db:"nationality"`
	model.Metadata
}
