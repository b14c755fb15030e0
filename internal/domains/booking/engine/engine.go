// Package engine holds the pure availability and pricing computations for
// bookings. It never touches storage; callers pass in snapshots of the room
// catalog and existing bookings and persist the results themselves.
package engine

import (
	bookingModel "pms/internal/domains/booking/model"
	extraModel "pms/internal/domains/extra/model"
	roomModel "pms/internal/domains/room/model"
	"sort"
	"time"

	"github.com/pkg/errors"
)

var (
	ErrInvalidRange      = errors.New("check-in must be before check-out")
	ErrUnknownExtra      = errors.New("unknown extra")
	ErrCapacityExceeded  = errors.New("room capacity exceeded")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// SelectedExtra is one line of a stay's add-on selection. Quantity zero
// lines are ignored by the pricing functions.
type SelectedExtra struct {
	ExtraID  string
	Quantity int
}

// NormalizeDate truncates a timestamp to its calendar date so partial-day
// timestamps never produce fractional nights.
func NormalizeDate(t time.Time) time.Time {
	year, month, day := t.Date()

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Nights returns the whole-number stay duration between two calendar dates.
func Nights(checkIn, checkOut time.Time) (int, error) {
	start := NormalizeDate(checkIn)
	end := NormalizeDate(checkOut)

	if !start.Before(end) {
		return 0, ErrInvalidRange
	}

	return int(end.Sub(start).Hours() / 24), nil
}

// Overlaps reports whether two half-open date ranges intersect. Equal
// boundaries do not overlap, which is what allows same-day turnover.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	aS := NormalizeDate(aStart)
	aE := NormalizeDate(aEnd)
	bS := NormalizeDate(bStart)
	bE := NormalizeDate(bEnd)

	return aS.Before(bE) && bS.Before(aE)
}

// FitsCapacity validates the requested party size against a room's limits.
func FitsCapacity(room roomModel.Room, adults, children int) error {
	if adults > room.MaxAdults || children > room.MaxChildren {
		return ErrCapacityExceeded
	}

	return nil
}

// AvailableRooms filters the room catalog to rooms that fit the party size
// and carry no non-cancelled booking overlapping the requested range. The
// result is ordered by ascending nightly price, ties broken by id. The
// result is advisory: it reflects the snapshot passed in, not a lock.
func AvailableRooms(rooms []roomModel.Room, bookings []bookingModel.Booking, checkIn, checkOut time.Time, adults, children int) ([]roomModel.Room, error) {
	_, err := Nights(checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	occupied := map[string]bool{}

	for _, booking := range bookings {
		if booking.Status == bookingModel.StatusCancelled {
			continue
		}

		if Overlaps(booking.CheckIn, booking.CheckOut, checkIn, checkOut) {
			occupied[booking.RoomID] = true
		}
	}

	available := []roomModel.Room{}

	for _, room := range rooms {
		if FitsCapacity(room, adults, children) != nil {
			continue
		}

		if occupied[room.ID] {
			continue
		}

		available = append(available, room)
	}

	sort.Slice(available, func(i, j int) bool {
		if available[i].NightlyPrice != available[j].NightlyPrice {
			return available[i].NightlyPrice < available[j].NightlyPrice
		}

		return available[i].ID < available[j].ID
	})

	return available, nil
}

// ExtrasTotal sums the selected add-ons against the catalog. Per-night
// extras are multiplied by the stay length, once-per-stay extras are not.
// Zero-quantity lines are skipped before lookup so a cleared selection
// never trips the unknown-extra check.
func ExtrasTotal(selected []SelectedExtra, catalog []extraModel.Extra, nights int) (float64, error) {
	if nights <= 0 {
		return 0, ErrInvalidRange
	}

	byID := make(map[string]extraModel.Extra, len(catalog))
	for _, extra := range catalog {
		byID[extra.ID] = extra
	}

	total := 0.0

	for _, line := range selected {
		if line.Quantity <= 0 {
			continue
		}

		extra, ok := byID[line.ExtraID]
		if !ok {
			return 0, errors.Wrap(ErrUnknownExtra, line.ExtraID)
		}

		contribution := extra.Price * float64(line.Quantity)
		if extra.BillingMode == extraModel.BillingModePerNight {
			contribution *= float64(nights)
		}

		total += contribution
	}

	return total, nil
}

// BookingTotal prices a stay: nights times the room's nightly price plus the
// extras total.
func BookingTotal(room roomModel.Room, nights int, selected []SelectedExtra, catalog []extraModel.Extra) (float64, error) {
	if nights <= 0 {
		return 0, ErrInvalidRange
	}

	extrasTotal, err := ExtrasTotal(selected, catalog, nights)
	if err != nil {
		return 0, err
	}

	return room.NightlyPrice*float64(nights) + extrasTotal, nil
}

var transitions = map[string][]string{
	bookingModel.StatusPending:    {bookingModel.StatusConfirmed, bookingModel.StatusCancelled},
	bookingModel.StatusConfirmed:  {bookingModel.StatusCheckedIn, bookingModel.StatusCancelled},
	bookingModel.StatusCheckedIn:  {bookingModel.StatusCheckedOut},
	bookingModel.StatusCheckedOut: {},
	bookingModel.StatusCancelled:  {},
}

// CanTransition reports whether a booking may move between the two statuses.
func CanTransition(from, to string) bool {
	allowed, ok := transitions[from]
	if !ok {
		return false
	}

	for _, status := range allowed {
		if status == to {
			return true
		}
	}

	return false
}

// Transition validates a status change, returning ErrInvalidTransition for
// any move outside the allowed table.
func Transition(from, to string) error {
	if !CanTransition(from, to) {
		return errors.Wrapf(ErrInvalidTransition, "%s to %s", from, to)
	}

	return nil
}
