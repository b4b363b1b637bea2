package models

import (
	"time"
)

// Booking status constants
const (
	BookingStatusPending    = 0
	BookingStatusCheckedIn  = 1
	BookingStatusCheckedOut = 2
	BookingStatusCancelled  = 3
)

// Booking service status constants
const (
	BookingServiceStatusPending = 0
	BookingServiceStatusServed  = 1
)

type Booking struct {
	ID           uint             `json:"id" gorm:"primaryKey"`
	RoomID       uint             `json:"roomId"`
	CustomerID   uint             `json:"customerId"`
	CheckInDate  string           `json:"checkInDate"`  // Định dạng 02/01/2006
	CheckOutDate string           `json:"checkOutDate"` // Phải sau ngày nhận phòng
	Status       int              `json:"status"`
	PromotionID  *uint            `json:"promotionId,omitempty"`
	TotalAmount  float64          `json:"totalAmount"` // Không bao giờ âm
	CreatedAt    time.Time        `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time        `gorm:"autoUpdateTime" json:"updatedAt"`
	Room         Room             `json:"room" gorm:"foreignKey:RoomID"`
	Customer     User             `json:"customer" gorm:"foreignKey:CustomerID"`
	Services     []BookingService `json:"services" gorm:"foreignKey:BookingID"`
}

// BookingService là dòng dịch vụ gắn với booking, snapshot tại thời điểm đặt.
// Vòng đời thuộc hoàn toàn về booking cha.
type BookingService struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	BookingID uint      `json:"bookingId"`
	ServiceID uint      `json:"serviceId"`
	Name      string    `json:"name"`  // Tên dịch vụ tại thời điểm đặt
	Price     float64   `json:"price"` // Đơn giá tại thời điểm đặt
	Quantity  int       `json:"quantity" gorm:"default:1"`
	Status    int       `json:"status" gorm:"default:0"` // 0: chờ phục vụ, 1: đã phục vụ
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
