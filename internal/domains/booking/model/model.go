package model

import (
	"pms/shared/model"
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID         = "id"
	FieldRoomID     = "room_id"
	FieldGuestID    = "guest_id"
	FieldCheckIn    = "check_in"
	FieldCheckOut   = "check_out"
	FieldAdults     = "adults"
	FieldChildren   = "children"
	FieldStatus     = "status"
	FieldTotalPrice = "total_price"
	FieldPaidAmount = "paid_amount"
	FieldNotes      = "notes"

	StatusPending    = "pending"
	StatusConfirmed  = "confirmed"
	StatusCancelled  = "cancelled"
	StatusCheckedIn  = "checked_in"
	StatusCheckedOut = "checked_out"
)

type Booking struct {
	ID         string    `db:"id"`
	RoomID     string    `db:"room_id"`
	GuestID    string    `db:"guest_id"`
	CheckIn    time.Time `db:"check_in"`
	CheckOut   time.Time `db:"check_out"`
	Adults     int       `db:"adults"`
	Children   int       `db:"children"`
	Status     string    `db:"status"`
	TotalPrice float64   `db:"total_price"`
	PaidAmount float64   `db:"paid_amount"`
	Notes      string    `db:"notes"`
	model.Metadata
}

const (
	ExtraTableName  = "booking_extras"
	ExtraEntityName = "booking_extra"

	FieldExtraBookingID   = "booking_id"
	FieldExtraExtraID     = "extra_id"
	FieldExtraQuantity    = "quantity"
	FieldExtraUnitPrice   = "unit_price"
	FieldExtraBillingMode = "billing_mode"
)

// BookingExtra snapshots the extra's price and billing mode at booking time
// so later catalog edits never change an existing booking's total.
type BookingExtra struct {
	ID          string  `db:"id"`
	BookingID   string  `db:"booking_id"`
	ExtraID     string  `db:"extra_id"`
	Quantity    int     `db:"quantity"`
	UnitPrice   float64 `db:"unit_price"`
	BillingMode string  `db:"billing_mode"`
	model.Metadata
}

const (
	PaymentTableName  = "payments"
	PaymentEntityName = "payment"

	FieldPaymentBookingID = "booking_id"
	FieldPaymentMethod    = "method"
	FieldPaymentStatus    = "status"
	FieldPaymentAmount    = "amount"

	PaymentMethodCard = "card"
	PaymentMethodCash = "cash"

	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)

type Payment struct {
	ID        string  `db:"id"`
	BookingID string  `db:"booking_id"`
	Method    string  `db:"method"`
	Status    string  `db:"status"`
	Amount    float64 `db:"amount"`
	model.Metadata
}

const (
	TimelineTableName  = "booking_timeline"
	TimelineEntityName = "timeline_item"

	FieldTimelineBookingID   = "booking_id"
	FieldTimelineType        = "type"
	FieldTimelineDescription = "description"

	TimelineTypeNote         = "note"
	TimelineTypeStatusChange = "status_change"
	TimelineTypePayment      = "payment"
)

type TimelineItem struct {
	ID          string `db:"id"`
	BookingID   string `db:"booking_id"`
	Type        string `db:"type"`
	Description string `db:"description"`
	model.Metadata
}
