package controllers

import (
	"testing"

	"resort/models"

	"github.com/stretchr/testify/require"
)

func TestFlattenBookingServices(t *testing.T) {
	bookingByID := map[uint]models.Booking{
		7: {
			ID:       7,
			Room:     models.Room{RoomNumber: "101"},
			Customer: models.User{Name: "Nguyễn Văn A"},
		},
	}

	items := []models.BookingService{
		{ID: 1, BookingID: 7, ServiceID: 3, Name: "Spa", Price: 45, Quantity: 2, Status: models.BookingServiceStatusPending},
		{ID: 2, BookingID: 7, ServiceID: 4, Name: "Giặt ủi", Price: 10, Quantity: 1, Status: models.BookingServiceStatusServed},
		{ID: 3, BookingID: 99, ServiceID: 3, Name: "Spa", Price: 45, Quantity: 1}, // booking không còn tồn tại
	}

	flattened := flattenBookingServices(items, bookingByID)

	require.Len(t, flattened, 2)
	require.Equal(t, "101", flattened[0].RoomNumber)
	require.Equal(t, "Nguyễn Văn A", flattened[0].CustomerName)
	require.Equal(t, "Spa", flattened[0].Name)
	require.Equal(t, 2, flattened[0].Quantity)
	require.Equal(t, "Giặt ủi", flattened[1].Name)
	require.Equal(t, models.BookingServiceStatusServed, flattened[1].Status)
}
