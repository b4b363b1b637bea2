package builders

import (
	"resort/models"
)

// BookingBuilder giúp tạo booking theo từng bước
type BookingBuilder struct {
	booking *models.Booking
}

// NewBookingBuilder tạo instance mới của BookingBuilder
func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		booking: &models.Booking{},
	}
}

// WithCustomer thêm thông tin khách hàng
func (b *BookingBuilder) WithCustomer(customerID uint) *BookingBuilder {
	b.booking.CustomerID = customerID
	return b
}

// WithRoom thêm thông tin phòng
func (b *BookingBuilder) WithRoom(roomID uint) *BookingBuilder {
	b.booking.RoomID = roomID
	return b
}

// WithStatus thêm trạng thái
func (b *BookingBuilder) WithStatus(status int) *BookingBuilder {
	b.booking.Status = status
	return b
}

// WithCheckIn thêm ngày check-in
func (b *BookingBuilder) WithCheckIn(checkIn string) *BookingBuilder {
	b.booking.CheckInDate = checkIn
	return b
}

// WithCheckOut thêm ngày check-out
func (b *BookingBuilder) WithCheckOut(checkOut string) *BookingBuilder {
	b.booking.CheckOutDate = checkOut
	return b
}

// WithPromotion thêm khuyến mãi áp dụng
func (b *BookingBuilder) WithPromotion(promotionID *uint) *BookingBuilder {
	b.booking.PromotionID = promotionID
	return b
}

// WithServices thêm danh sách dịch vụ kèm theo
func (b *BookingBuilder) WithServices(items []models.BookingService) *BookingBuilder {
	b.booking.Services = items
	return b
}

// WithTotalAmount thêm tổng tiền
func (b *BookingBuilder) WithTotalAmount(totalAmount float64) *BookingBuilder {
	b.booking.TotalAmount = totalAmount
	return b
}

// Build tạo booking hoàn chỉnh
func (b *BookingBuilder) Build() *models.Booking {
	return b.booking
}
