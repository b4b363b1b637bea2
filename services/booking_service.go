package services

import (
	"fmt"
	"time"

	"resort/models"
)

// InvoiceItem là một dòng trên hóa đơn trả phòng
type InvoiceItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// ParseBookingDates parse và kiểm tra cặp ngày nhận/trả phòng
func ParseBookingDates(checkInStr, checkOutStr string) (time.Time, time.Time, error) {
	checkIn, err := time.Parse(DateLayout, checkInStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("ngày nhận phòng không hợp lệ")
	}
	checkOut, err := time.Parse(DateLayout, checkOutStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("ngày trả phòng không hợp lệ")
	}
	if !checkIn.Before(checkOut) {
		return time.Time{}, time.Time{}, fmt.Errorf("ngày trả phòng phải sau ngày nhận phòng")
	}
	return checkIn, checkOut, nil
}

// ComputeNights tính số đêm giữa hai ngày
func ComputeNights(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn).Hours() / 24)
}

// ComputeRoomAmount tính tiền phòng cho số đêm
func ComputeRoomAmount(pricePerNight float64, nights int) float64 {
	return pricePerNight * float64(nights)
}

// ApplyPromotionDiscount áp mức giảm giá phần trăm lên tổng tiền
func ApplyPromotionDiscount(amount float64, discountPercent int) float64 {
	total := amount * (1 - float64(discountPercent)/100)
	if total < 0 {
		return 0
	}
	return total
}

// ComputeServicesAmount cộng tiền các dòng dịch vụ
func ComputeServicesAmount(items []models.BookingService) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// SnapshotService tạo dòng dịch vụ Pending từ một dịch vụ tại thời điểm đặt
func SnapshotService(service models.Service, quantity int) models.BookingService {
	if quantity <= 0 {
		quantity = 1
	}
	return models.BookingService{
		ServiceID: service.ID,
		Name:      service.ServiceName,
		Price:     service.Price,
		Quantity:  quantity,
		Status:    models.BookingServiceStatusPending,
	}
}

// AddServiceToItems tăng số lượng nếu dịch vụ đã có trên booking, ngược lại
// thêm dòng mới trạng thái Pending. Trả về danh sách mới và số tiền cộng thêm.
func AddServiceToItems(items []models.BookingService, service models.Service, quantity int) ([]models.BookingService, float64) {
	if quantity <= 0 {
		quantity = 1
	}
	for i := range items {
		if items[i].ServiceID == service.ID {
			items[i].Quantity += quantity
			return items, service.Price * float64(quantity)
		}
	}
	items = append(items, SnapshotService(service, quantity))
	return items, service.Price * float64(quantity)
}

// BuildInvoiceItems dựng danh sách dòng hóa đơn: tiền phòng theo đêm trước,
// sau đó từng dòng dịch vụ theo thứ tự trên booking
func BuildInvoiceItems(booking *models.Booking) ([]InvoiceItem, error) {
	checkIn, checkOut, err := ParseBookingDates(booking.CheckInDate, booking.CheckOutDate)
	if err != nil {
		return nil, err
	}
	nights := ComputeNights(checkIn, checkOut)

	items := []InvoiceItem{
		{
			Name:     fmt.Sprintf("Phòng %s", booking.Room.RoomNumber),
			Quantity: nights,
			Price:    booking.Room.PricePerNight,
		},
	}
	for _, s := range booking.Services {
		items = append(items, InvoiceItem{
			Name:     s.Name,
			Quantity: s.Quantity,
			Price:    s.Price,
		})
	}
	return items, nil
}

// ComputeInvoiceAmount tính tổng tiền của danh sách dòng hóa đơn
func ComputeInvoiceAmount(items []InvoiceItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}
