package engine_test

import (
	"testing"
	"time"

	"pms/internal/domains/booking/engine"
	bookingModel "pms/internal/domains/booking/model"
	extraModel "pms/internal/domains/extra/model"
	roomModel "pms/internal/domains/room/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(value string) time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}

	return parsed
}

func TestNights(t *testing.T) {
	t.Run("five nights", func(t *testing.T) {
		nights, err := engine.Nights(date("2024-01-20"), date("2024-01-25"))

		require.NoError(t, err)
		assert.Equal(t, 5, nights)
	})

	t.Run("single night", func(t *testing.T) {
		nights, err := engine.Nights(date("2024-01-20"), date("2024-01-21"))

		require.NoError(t, err)
		assert.Equal(t, 1, nights)
	})

	t.Run("partial-day timestamps are normalized to calendar dates", func(t *testing.T) {
		checkIn := time.Date(2024, 1, 20, 15, 30, 0, 0, time.UTC)
		checkOut := time.Date(2024, 1, 22, 11, 0, 0, 0, time.UTC)

		nights, err := engine.Nights(checkIn, checkOut)

		require.NoError(t, err)
		assert.Equal(t, 2, nights)
	})

	t.Run("equal dates fail", func(t *testing.T) {
		_, err := engine.Nights(date("2024-01-20"), date("2024-01-20"))

		assert.ErrorIs(t, err, engine.ErrInvalidRange)
	})

	t.Run("reversed dates fail", func(t *testing.T) {
		_, err := engine.Nights(date("2024-01-25"), date("2024-01-20"))

		assert.ErrorIs(t, err, engine.ErrInvalidRange)
	})
}

func TestOverlaps(t *testing.T) {
	t.Run("overlapping ranges", func(t *testing.T) {
		assert.True(t, engine.Overlaps(date("2024-01-20"), date("2024-01-22"), date("2024-01-21"), date("2024-01-23")))
	})

	t.Run("disjoint ranges", func(t *testing.T) {
		assert.False(t, engine.Overlaps(date("2024-01-20"), date("2024-01-22"), date("2024-01-25"), date("2024-01-27")))
	})

	t.Run("same-day turnover is not an overlap", func(t *testing.T) {
		assert.False(t, engine.Overlaps(date("2024-01-20"), date("2024-01-22"), date("2024-01-22"), date("2024-01-24")))
	})

	t.Run("contained range overlaps", func(t *testing.T) {
		assert.True(t, engine.Overlaps(date("2024-01-20"), date("2024-01-28"), date("2024-01-22"), date("2024-01-24")))
	})

	t.Run("symmetric", func(t *testing.T) {
		pairs := [][4]string{
			{"2024-01-20", "2024-01-22", "2024-01-21", "2024-01-23"},
			{"2024-01-20", "2024-01-22", "2024-01-22", "2024-01-24"},
			{"2024-01-20", "2024-01-22", "2024-01-25", "2024-01-27"},
		}

		for _, pair := range pairs {
			forward := engine.Overlaps(date(pair[0]), date(pair[1]), date(pair[2]), date(pair[3]))
			backward := engine.Overlaps(date(pair[2]), date(pair[3]), date(pair[0]), date(pair[1]))

			assert.Equal(t, forward, backward)
		}
	})
}

func TestFitsCapacity(t *testing.T) {
	room := roomModel.Room{MaxAdults: 2, MaxChildren: 1}

	t.Run("within limits", func(t *testing.T) {
		assert.NoError(t, engine.FitsCapacity(room, 2, 1))
	})

	t.Run("too many adults", func(t *testing.T) {
		assert.ErrorIs(t, engine.FitsCapacity(room, 3, 0), engine.ErrCapacityExceeded)
	})

	t.Run("too many children", func(t *testing.T) {
		assert.ErrorIs(t, engine.FitsCapacity(room, 1, 2), engine.ErrCapacityExceeded)
	})
}

func TestAvailableRooms(t *testing.T) {
	rooms := []roomModel.Room{
		{ID: "room-1", NightlyPrice: 150, MaxAdults: 2, MaxChildren: 2},
		{ID: "room-2", NightlyPrice: 100, MaxAdults: 2, MaxChildren: 1},
		{ID: "room-3", NightlyPrice: 100, MaxAdults: 4, MaxChildren: 2},
	}

	t.Run("excludes room with overlapping confirmed booking", func(t *testing.T) {
		bookings := []bookingModel.Booking{
			{RoomID: "room-2", CheckIn: date("2024-01-21"), CheckOut: date("2024-01-23"), Status: bookingModel.StatusConfirmed},
		}

		available, err := engine.AvailableRooms(rooms, bookings, date("2024-01-20"), date("2024-01-22"), 2, 1)

		require.NoError(t, err)
		require.Len(t, available, 2)

		for _, room := range available {
			assert.NotEqual(t, "room-2", room.ID)
		}
	})

	t.Run("cancelled bookings do not block", func(t *testing.T) {
		bookings := []bookingModel.Booking{
			{RoomID: "room-2", CheckIn: date("2024-01-21"), CheckOut: date("2024-01-23"), Status: bookingModel.StatusCancelled},
		}

		available, err := engine.AvailableRooms(rooms, bookings, date("2024-01-20"), date("2024-01-22"), 2, 1)

		require.NoError(t, err)
		assert.Len(t, available, 3)
	})

	t.Run("same-day turnover keeps room available", func(t *testing.T) {
		bookings := []bookingModel.Booking{
			{RoomID: "room-2", CheckIn: date("2024-01-18"), CheckOut: date("2024-01-20"), Status: bookingModel.StatusCheckedIn},
		}

		available, err := engine.AvailableRooms(rooms, bookings, date("2024-01-20"), date("2024-01-22"), 2, 1)

		require.NoError(t, err)
		assert.Len(t, available, 3)
	})

	t.Run("filters rooms below requested capacity", func(t *testing.T) {
		available, err := engine.AvailableRooms(rooms, nil, date("2024-01-20"), date("2024-01-22"), 3, 0)

		require.NoError(t, err)
		require.Len(t, available, 1)
		assert.Equal(t, "room-3", available[0].ID)
	})

	t.Run("ordered by price then id", func(t *testing.T) {
		available, err := engine.AvailableRooms(rooms, nil, date("2024-01-20"), date("2024-01-22"), 2, 1)

		require.NoError(t, err)
		require.Len(t, available, 3)
		assert.Equal(t, "room-2", available[0].ID)
		assert.Equal(t, "room-3", available[1].ID)
		assert.Equal(t, "room-1", available[2].ID)
	})

	t.Run("empty catalog gives empty result", func(t *testing.T) {
		available, err := engine.AvailableRooms(nil, nil, date("2024-01-20"), date("2024-01-22"), 1, 0)

		require.NoError(t, err)
		assert.Empty(t, available)
	})

	t.Run("zero-night range fails", func(t *testing.T) {
		_, err := engine.AvailableRooms(rooms, nil, date("2024-01-20"), date("2024-01-20"), 1, 0)

		assert.ErrorIs(t, err, engine.ErrInvalidRange)
	})
}

func TestExtrasTotal(t *testing.T) {
	catalog := []extraModel.Extra{
		{ID: "breakfast", Price: 15, BillingMode: extraModel.BillingModePerNight},
		{ID: "transfer", Price: 45, BillingMode: extraModel.BillingModeOncePerStay},
	}

	t.Run("per-night extra multiplies by nights", func(t *testing.T) {
		total, err := engine.ExtrasTotal([]engine.SelectedExtra{{ExtraID: "breakfast", Quantity: 1}}, catalog, 5)

		require.NoError(t, err)
		assert.InDelta(t, 75.0, total, 0.001)
	})

	t.Run("once-per-stay extra ignores nights", func(t *testing.T) {
		total, err := engine.ExtrasTotal([]engine.SelectedExtra{{ExtraID: "transfer", Quantity: 2}}, catalog, 3)

		require.NoError(t, err)
		assert.InDelta(t, 90.0, total, 0.001)
	})

	t.Run("order independent", func(t *testing.T) {
		forward := []engine.SelectedExtra{{ExtraID: "breakfast", Quantity: 1}, {ExtraID: "transfer", Quantity: 2}}
		backward := []engine.SelectedExtra{{ExtraID: "transfer", Quantity: 2}, {ExtraID: "breakfast", Quantity: 1}}

		totalForward, err := engine.ExtrasTotal(forward, catalog, 5)
		require.NoError(t, err)

		totalBackward, err := engine.ExtrasTotal(backward, catalog, 5)
		require.NoError(t, err)

		assert.InDelta(t, totalForward, totalBackward, 0.001)
	})

	t.Run("zero-quantity lines are skipped before lookup", func(t *testing.T) {
		total, err := engine.ExtrasTotal([]engine.SelectedExtra{{ExtraID: "cleared-selection", Quantity: 0}}, catalog, 5)

		require.NoError(t, err)
		assert.InDelta(t, 0.0, total, 0.001)
	})

	t.Run("unknown extra fails", func(t *testing.T) {
		_, err := engine.ExtrasTotal([]engine.SelectedExtra{{ExtraID: "jacuzzi", Quantity: 1}}, catalog, 5)

		assert.ErrorIs(t, err, engine.ErrUnknownExtra)
	})

	t.Run("non-positive nights fail", func(t *testing.T) {
		_, err := engine.ExtrasTotal(nil, catalog, 0)

		assert.ErrorIs(t, err, engine.ErrInvalidRange)
	})
}

func TestBookingTotal(t *testing.T) {
	room := roomModel.Room{ID: "room-1", NightlyPrice: 100}
	catalog := []extraModel.Extra{
		{ID: "breakfast", Price: 15, BillingMode: extraModel.BillingModePerNight},
	}

	t.Run("room only", func(t *testing.T) {
		total, err := engine.BookingTotal(room, 5, nil, catalog)

		require.NoError(t, err)
		assert.InDelta(t, 500.0, total, 0.001)
	})

	t.Run("room plus per-night breakfast", func(t *testing.T) {
		selected := []engine.SelectedExtra{{ExtraID: "breakfast", Quantity: 1}}

		total, err := engine.BookingTotal(room, 5, selected, catalog)

		require.NoError(t, err)
		assert.InDelta(t, 575.0, total, 0.001)
	})

	t.Run("idempotent", func(t *testing.T) {
		selected := []engine.SelectedExtra{{ExtraID: "breakfast", Quantity: 1}}

		first, err := engine.BookingTotal(room, 5, selected, catalog)
		require.NoError(t, err)

		second, err := engine.BookingTotal(room, 5, selected, catalog)
		require.NoError(t, err)

		assert.InDelta(t, first, second, 0.001)
	})

	t.Run("non-positive nights fail", func(t *testing.T) {
		_, err := engine.BookingTotal(room, 0, nil, catalog)

		assert.ErrorIs(t, err, engine.ErrInvalidRange)
	})
}

func TestTransition(t *testing.T) {
	allowed := [][2]string{
		{bookingModel.StatusPending, bookingModel.StatusConfirmed},
		{bookingModel.StatusPending, bookingModel.StatusCancelled},
		{bookingModel.StatusConfirmed, bookingModel.StatusCheckedIn},
		{bookingModel.StatusConfirmed, bookingModel.StatusCancelled},
		{bookingModel.StatusCheckedIn, bookingModel.StatusCheckedOut},
	}

	for _, pair := range allowed {
		t.Run(pair[0]+" to "+pair[1], func(t *testing.T) {
			assert.NoError(t, engine.Transition(pair[0], pair[1]))
		})
	}

	denied := [][2]string{
		{bookingModel.StatusCheckedOut, bookingModel.StatusConfirmed},
		{bookingModel.StatusCancelled, bookingModel.StatusPending},
		{bookingModel.StatusCheckedIn, bookingModel.StatusCancelled},
		{bookingModel.StatusPending, bookingModel.StatusCheckedIn},
		{bookingModel.StatusPending, bookingModel.StatusPending},
		{"unknown", bookingModel.StatusConfirmed},
	}

	for _, pair := range denied {
		t.Run(pair[0]+" to "+pair[1]+" denied", func(t *testing.T) {
			assert.ErrorIs(t, engine.Transition(pair[0], pair[1]), engine.ErrInvalidTransition)
		})
	}
}
