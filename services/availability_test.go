package services

import (
	"testing"
	"time"

	"resort/models"
)

func date(day, month, year int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func TestNextAvailableWeek(t *testing.T) {
	cases := []struct {
		name          string
		bookings      []models.Booking
		now           time.Time
		expectedStart time.Time
	}{
		{
			name:          "no bookings",
			bookings:      nil,
			now:           time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC),
			expectedStart: time.Date(2025, 1, 1, 14, 0, 0, 0, time.UTC),
		},
		{
			name: "week blocked until existing checkout",
			bookings: []models.Booking{
				{CheckInDate: "01/01/2025", CheckOutDate: "08/01/2025", Status: models.BookingStatusPending},
			},
			now:           time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC),
			expectedStart: time.Date(2025, 1, 8, 14, 0, 0, 0, time.UTC),
		},
		{
			name: "week ending on existing check in day fits",
			bookings: []models.Booking{
				{CheckInDate: "08/01/2025", CheckOutDate: "10/01/2025", Status: models.BookingStatusPending},
			},
			now:           time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC),
			expectedStart: time.Date(2025, 1, 1, 14, 0, 0, 0, time.UTC),
		},
		{
			name: "cancelled booking does not block",
			bookings: []models.Booking{
				{CheckInDate: "01/01/2025", CheckOutDate: "08/01/2025", Status: models.BookingStatusCancelled},
			},
			now:           time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC),
			expectedStart: time.Date(2025, 1, 1, 14, 0, 0, 0, time.UTC),
		},
		{
			name: "past check in hour moves to next day",
			bookings: []models.Booking{
				{CheckInDate: "05/01/2025", CheckOutDate: "07/01/2025", Status: models.BookingStatusPending},
			},
			now:           time.Date(2025, 1, 1, 16, 0, 0, 0, time.UTC),
			expectedStart: time.Date(2025, 1, 7, 14, 0, 0, 0, time.UTC),
		},
		{
			name: "gap between bookings too small",
			bookings: []models.Booking{
				{CheckInDate: "03/01/2025", CheckOutDate: "05/01/2025", Status: models.BookingStatusPending},
				{CheckInDate: "09/01/2025", CheckOutDate: "12/01/2025", Status: models.BookingStatusCheckedIn},
			},
			now:           time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC),
			expectedStart: time.Date(2025, 1, 12, 14, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			week := NextAvailableWeek(tc.bookings, tc.now)
			if !week.Start.Equal(tc.expectedStart) {
				t.Fatalf("expected start %v, got %v", tc.expectedStart, week.Start)
			}
			if !week.End.Equal(tc.expectedStart.AddDate(0, 0, 7)) {
				t.Fatalf("expected end %v, got %v", tc.expectedStart.AddDate(0, 0, 7), week.End)
			}
		})
	}
}

func TestRoomAvailableForRange(t *testing.T) {
	bookings := []models.Booking{
		{CheckInDate: "05/01/2025", CheckOutDate: "08/01/2025", Status: models.BookingStatusPending},
	}

	cases := []struct {
		name      string
		checkIn   time.Time
		checkOut  time.Time
		available bool
	}{
		{name: "before existing booking", checkIn: date(1, 1, 2025), checkOut: date(5, 1, 2025), available: true},
		{name: "same day turnover after checkout", checkIn: date(8, 1, 2025), checkOut: date(10, 1, 2025), available: true},
		{name: "overlapping start", checkIn: date(4, 1, 2025), checkOut: date(6, 1, 2025), available: false},
		{name: "fully inside", checkIn: date(6, 1, 2025), checkOut: date(7, 1, 2025), available: false},
		{name: "covering whole booking", checkIn: date(1, 1, 2025), checkOut: date(10, 1, 2025), available: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := RoomAvailableForRange(bookings, tc.checkIn, tc.checkOut)
			if got != tc.available {
				t.Fatalf("expected %v, got %v", tc.available, got)
			}
		})
	}
}

func TestOccupancyByDate(t *testing.T) {
	bookings := []models.Booking{
		{CheckInDate: "02/01/2025", CheckOutDate: "04/01/2025", Status: models.BookingStatusPending},
	}

	occupancy := OccupancyByDate(bookings, date(1, 1, 2025), 4)

	expected := map[string]bool{
		"01/01/2025": false,
		"02/01/2025": true,
		"03/01/2025": true,
		"04/01/2025": false, // ngày trả phòng được tính là trống
	}

	for day, want := range expected {
		if occupancy[day] != want {
			t.Fatalf("day %s: expected %v, got %v", day, want, occupancy[day])
		}
	}
}
