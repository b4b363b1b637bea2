package dto

import "time"

// CreateBookingRequest là DTO cho request tạo booking
type CreateBookingRequest struct {
	RoomID       uint   `json:"roomId" binding:"required"`
	CheckInDate  string `json:"checkInDate" binding:"required"`
	CheckOutDate string `json:"checkOutDate" binding:"required"`
	PromotionID  *uint  `json:"promotionId,omitempty"`
	ServiceIDs   []uint `json:"serviceIds,omitempty"`
}

// AddBookingServiceRequest là DTO cho request thêm dịch vụ vào booking
type AddBookingServiceRequest struct {
	ServiceID uint `json:"serviceId" binding:"required"`
	Quantity  int  `json:"quantity"`
}

// BookingRoomResponse là thông tin phòng rút gọn trên booking
type BookingRoomResponse struct {
	ID            uint    `json:"id"`
	RoomNumber    string  `json:"roomNumber"`
	RoomTypeName  string  `json:"roomTypeName"`
	PricePerNight float64 `json:"pricePerNight"`
}

// BookingServiceResponse là một dòng dịch vụ trên booking
type BookingServiceResponse struct {
	ID        uint    `json:"id"`
	ServiceID uint    `json:"serviceId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Status    int     `json:"status"`
}

// BookingResponse là DTO cho response của booking
type BookingResponse struct {
	ID           uint                     `json:"id"`
	Customer     ActorResponse            `json:"customer"`
	Room         BookingRoomResponse      `json:"room"`
	CheckInDate  string                   `json:"checkInDate"`
	CheckOutDate string                   `json:"checkOutDate"`
	Status       int                      `json:"status"`
	PromotionID  *uint                    `json:"promotionId,omitempty"`
	TotalAmount  float64                  `json:"totalAmount"`
	Services     []BookingServiceResponse `json:"services"`
	CreatedAt    time.Time                `json:"createdAt"`
	UpdatedAt    time.Time                `json:"updatedAt"`
}

// FlatBookingServiceResponse là dòng dịch vụ kèm ngữ cảnh booking, dùng cho
// danh sách dịch vụ cần phục vụ của nhân viên
type FlatBookingServiceResponse struct {
	ID           uint      `json:"id"`
	BookingID    uint      `json:"bookingId"`
	RoomNumber   string    `json:"roomNumber"`
	CustomerName string    `json:"customerName"`
	ServiceID    uint      `json:"serviceId"`
	Name         string    `json:"name"`
	Price        float64   `json:"price"`
	Quantity     int       `json:"quantity"`
	Status       int       `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ActorResponse là DTO cho thông tin user/actor
type ActorResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
