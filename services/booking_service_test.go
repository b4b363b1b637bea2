package services

import (
	"testing"

	"resort/models"

	"github.com/stretchr/testify/require"
)

func TestComputeBookingTotals(t *testing.T) {
	checkIn, checkOut, err := ParseBookingDates("01/01/2025", "05/01/2025")
	require.NoError(t, err)

	nights := ComputeNights(checkIn, checkOut)
	require.Equal(t, 4, nights)

	// 4 đêm x 50 = 200
	total := ComputeRoomAmount(50, nights)
	require.Equal(t, 200.0, total)

	// Giảm 20% còn 160
	discounted := ApplyPromotionDiscount(total, 20)
	require.Equal(t, 160.0, discounted)

	// Giảm quá 100% thì chặn ở 0
	require.Equal(t, 0.0, ApplyPromotionDiscount(total, 150))
}

func TestParseBookingDatesInvalid(t *testing.T) {
	cases := []struct {
		name     string
		checkIn  string
		checkOut string
	}{
		{name: "bad format", checkIn: "2025-01-01", checkOut: "05/01/2025"},
		{name: "checkout before checkin", checkIn: "05/01/2025", checkOut: "01/01/2025"},
		{name: "same day", checkIn: "05/01/2025", checkOut: "05/01/2025"},
		{name: "empty", checkIn: "", checkOut: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := ParseBookingDates(tc.checkIn, tc.checkOut)
			require.Error(t, err)
		})
	}
}

func TestAddServiceToItems(t *testing.T) {
	spa := models.Service{ID: 1, ServiceName: "Spa", Price: 45}
	dinner := models.Service{ID: 2, ServiceName: "Ăn tối", Price: 30}

	items, added := AddServiceToItems(nil, spa, 2)
	require.Equal(t, 90.0, added)
	require.Len(t, items, 1)
	require.Equal(t, 2, items[0].Quantity)
	require.Equal(t, models.BookingServiceStatusPending, items[0].Status)

	// Thêm dịch vụ đã có thì chỉ tăng số lượng
	items, added = AddServiceToItems(items, spa, 1)
	require.Equal(t, 45.0, added)
	require.Len(t, items, 1)
	require.Equal(t, 3, items[0].Quantity)

	items, added = AddServiceToItems(items, dinner, 1)
	require.Equal(t, 30.0, added)
	require.Len(t, items, 2)
}

func TestBuildInvoiceItems(t *testing.T) {
	booking := &models.Booking{
		CheckInDate:  "01/01/2025",
		CheckOutDate: "05/01/2025",
		TotalAmount:  250,
		Room: models.Room{
			RoomNumber:    "101",
			PricePerNight: 40,
		},
		Services: []models.BookingService{
			{Name: "Spa", Price: 45, Quantity: 2},
		},
	}

	items, err := BuildInvoiceItems(booking)
	require.NoError(t, err)
	require.Len(t, items, 2)

	// Dòng tiền phòng đứng trước, số lượng là số đêm
	require.Equal(t, "Phòng 101", items[0].Name)
	require.Equal(t, 4, items[0].Quantity)
	require.Equal(t, 40.0, items[0].Price)

	require.Equal(t, "Spa", items[1].Name)
	require.Equal(t, 2, items[1].Quantity)

	// 4 x 40 + 2 x 45 = 250
	require.Equal(t, 250.0, ComputeInvoiceAmount(items))
}

// Booking có ngày hỏng phải fail ngay khi dựng hóa đơn, trước mọi thao tác
// ghi của luồng trả phòng
func TestBuildInvoiceItemsBadDates(t *testing.T) {
	booking := &models.Booking{
		CheckInDate:  "2025-01-01",
		CheckOutDate: "05/01/2025",
		Status:       models.BookingStatusCheckedIn,
		Room:         models.Room{RoomNumber: "101", PricePerNight: 40},
	}

	_, err := BuildInvoiceItems(booking)
	require.Error(t, err)
}

func TestSnapshotService(t *testing.T) {
	service := models.Service{ID: 7, ServiceName: "Giặt ủi", Price: 15}

	item := SnapshotService(service, 0)
	require.Equal(t, 1, item.Quantity)
	require.Equal(t, service.ID, item.ServiceID)
	require.Equal(t, service.ServiceName, item.Name)
	require.Equal(t, service.Price, item.Price)
}
