package dto

import (
	"time"

	"pms/internal/domains/booking/engine"
	"pms/internal/domains/booking/model"
	roomDto "pms/internal/domains/room/model/dto"
	"pms/shared"
	"pms/shared/constant"
	gDto "pms/shared/dto"
	"pms/shared/failure"
	gModel "pms/shared/model"
	"pms/shared/timezone"

	"github.com/google/uuid"
)

type AvailabilityRequest struct {
	CheckIn  string `json:"check_in"  validate:"required,staydate"`
	CheckOut string `json:"check_out" validate:"required,staydate"`
	Adults   int    `json:"adults"    validate:"required,min=1"`
	Children int    `json:"children"  validate:"min=0"`
}

func (a *AvailabilityRequest) Range() (checkIn, checkOut time.Time, err error) {
	checkIn, err = time.Parse(constant.StayDateFormat, a.CheckIn)
	if err != nil {
		return checkIn, checkOut, failure.BadRequestFromString("check_in must be a date in YYYY-MM-DD format") //nolint:wrapcheck
	}

	checkOut, err = time.Parse(constant.StayDateFormat, a.CheckOut)
	if err != nil {
		return checkIn, checkOut, failure.BadRequestFromString("check_out must be a date in YYYY-MM-DD format") //nolint:wrapcheck
	}

	return checkIn, checkOut, nil
}

type AvailableRoomsResponse struct {
	Nights int                    `json:"nights"`
	Rooms  []roomDto.RoomResponse `json:"rooms"`
}

type SelectedExtraRequest struct {
	ExtraID  string `json:"extra_id" validate:"required"`
	Quantity int    `json:"quantity" validate:"min=0"`
}

type CreateBookingRequest struct {
	RoomID     string                 `json:"room_id"     validate:"required"`
	GuestID    string                 `json:"guest_id"    validate:"required"`
	CheckIn    string                 `json:"check_in"    validate:"required,staydate"`
	CheckOut   string                 `json:"check_out"   validate:"required,staydate"`
	Adults     int                    `json:"adults"      validate:"required,min=1"`
	Children   int                    `json:"children"    validate:"min=0"`
	Extras     []SelectedExtraRequest `json:"extras"      validate:"omitempty,dive"`
	TotalPrice *float64               `json:"total_price" validate:"omitempty,gte=0"`
	Notes      string                 `json:"notes"       validate:"omitempty"`
}

func (c *CreateBookingRequest) Range() (checkIn, checkOut time.Time, err error) {
	availability := AvailabilityRequest{CheckIn: c.CheckIn, CheckOut: c.CheckOut}

	return availability.Range()
}

func (c *CreateBookingRequest) SelectedExtras() []engine.SelectedExtra {
	selected := make([]engine.SelectedExtra, len(c.Extras))
	for i, line := range c.Extras {
		selected[i] = engine.SelectedExtra{ExtraID: line.ExtraID, Quantity: line.Quantity}
	}

	return selected
}

func (c *CreateBookingRequest) ToModel(user string, checkIn, checkOut time.Time, totalPrice float64) model.Booking {
	return model.Booking{
		ID:         uuid.NewString(),
		RoomID:     c.RoomID,
		GuestID:    c.GuestID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Adults:     c.Adults,
		Children:   c.Children,
		Status:     model.StatusPending,
		TotalPrice: totalPrice,
		PaidAmount: 0,
		Notes:      c.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed cancelled checked_in checked_out"`
}

type UpdateNotesRequest struct {
	Notes string `json:"notes" validate:"required"`
}

type CreatePaymentRequest struct {
	Method string  `json:"method" validate:"required,oneof=card cash"`
	Amount float64 `json:"amount" validate:"required,gte=0"`
}

func (c *CreatePaymentRequest) ToModel(user, bookingID string) model.Payment {
	return model.Payment{
		ID:        uuid.NewString(),
		BookingID: bookingID,
		Method:    c.Method,
		Status:    model.PaymentStatusCompleted,
		Amount:    c.Amount,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type CreateTimelineItemRequest struct {
	Type        string `json:"type"        validate:"required,oneof=note status_change payment"`
	Description string `json:"description" validate:"required"`
}

func (c *CreateTimelineItemRequest) ToModel(user, bookingID string) model.TimelineItem {
	return model.TimelineItem{
		ID:          uuid.NewString(),
		BookingID:   bookingID,
		Type:        c.Type,
		Description: c.Description,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type BookingExtraResponse struct {
	ExtraID     string  `json:"extra_id"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	BillingMode string  `json:"billing_mode"`
}

func (r *BookingExtraResponse) FromModel(model model.BookingExtra) {
	r.ExtraID = model.ExtraID
	r.Quantity = model.Quantity
	r.UnitPrice = model.UnitPrice
	r.BillingMode = model.BillingMode
}

type PaymentResponse struct {
	ID     string  `json:"id"`
	Method string  `json:"method"`
	Status string  `json:"status"`
	Amount float64 `json:"amount"`
	gDto.Metadata
}

func (r *PaymentResponse) FromModel(model model.Payment) {
	r.ID = model.ID
	r.Method = model.Method
	r.Status = model.Status
	r.Amount = model.Amount
	r.Metadata.FromModel(model.Metadata)
}

type TimelineItemResponse struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Description string `json:"description"`
	gDto.Metadata
}

func (r *TimelineItemResponse) FromModel(model model.TimelineItem) {
	r.ID = model.ID
	r.Type = model.Type
	r.Description = model.Description
	r.Metadata.FromModel(model.Metadata)
}

type BookingResponse struct {
	ID         string  `json:"id"`
	RoomID     string  `json:"room_id"`
	GuestID    string  `json:"guest_id"`
	CheckIn    string  `json:"check_in"`
	CheckOut   string  `json:"check_out"`
	Nights     int     `json:"nights"`
	Adults     int     `json:"adults"`
	Children   int     `json:"children"`
	Status     string  `json:"status"`
	TotalPrice float64 `json:"total_price"`
	PaidAmount float64 `json:"paid_amount"`
	Notes      string  `json:"notes"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.GuestID = model.GuestID
	r.CheckIn = model.CheckIn.Format(constant.StayDateFormat)
	r.CheckOut = model.CheckOut.Format(constant.StayDateFormat)
	r.Adults = model.Adults
	r.Children = model.Children
	r.Status = model.Status
	r.TotalPrice = model.TotalPrice
	r.PaidAmount = model.PaidAmount
	r.Notes = model.Notes
	r.Metadata.FromModel(model.Metadata)

	if nights, err := engine.Nights(model.CheckIn, model.CheckOut); err == nil {
		r.Nights = nights
	}
}

type BookingDetailResponse struct {
	BookingResponse
	Extras   []BookingExtraResponse `json:"extras"`
	Payments []PaymentResponse      `json:"payments"`
	Timeline []TimelineItemResponse `json:"timeline"`
}

func (r *BookingDetailResponse) FromModels(booking model.Booking, extras []model.BookingExtra, payments []model.Payment, timeline []model.TimelineItem) {
	r.BookingResponse.FromModel(booking)

	r.Extras = make([]BookingExtraResponse, len(extras))
	for i, extra := range extras {
		r.Extras[i].FromModel(extra)
	}

	r.Payments = make([]PaymentResponse, len(payments))
	for i, payment := range payments {
		r.Payments[i].FromModel(payment)
	}

	r.Timeline = make([]TimelineItemResponse, len(timeline))
	for i, item := range timeline {
		r.Timeline[i].FromModel(item)
	}
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

// BookingEvent is the payload published to the booking events topic on
// lifecycle changes.
type BookingEvent struct {
	Event      string    `json:"event"`
	BookingID  string    `json:"booking_id"`
	RoomID     string    `json:"room_id"`
	GuestID    string    `json:"guest_id"`
	Status     string    `json:"status"`
	TotalPrice float64   `json:"total_price"`
	OccurredAt time.Time `json:"occurred_at"`
}

const (
	EventBookingCreated       = "booking.created"
	EventBookingStatusChanged = "booking.status_changed"
	EventBookingPaymentAdded  = "booking.payment_added"
)
