package dto

import "time"

// CreateRoomRequest là DTO cho request tạo phòng
type CreateRoomRequest struct {
	RoomNumber    string   `json:"roomNumber" binding:"required"`
	RoomTypeID    uint     `json:"roomTypeId" binding:"required"`
	PricePerNight float64  `json:"pricePerNight" binding:"required"`
	Images        []string `json:"images,omitempty"`
}

// UpdateRoomRequest là DTO cho request cập nhật phòng
type UpdateRoomRequest struct {
	ID            uint     `json:"id" binding:"required"`
	RoomNumber    string   `json:"roomNumber,omitempty"`
	RoomTypeID    uint     `json:"roomTypeId,omitempty"`
	PricePerNight float64  `json:"pricePerNight,omitempty"`
	Images        []string `json:"images,omitempty"`
}

// ChangeRoomStatusRequest là DTO cho request đổi trạng thái phòng
type ChangeRoomStatusRequest struct {
	ID     uint `json:"id" binding:"required"`
	Status int  `json:"status"`
}

// RoomResponse là DTO cho response của phòng
type RoomResponse struct {
	ID            uint             `json:"id"`
	RoomNumber    string           `json:"roomNumber"`
	Status        int              `json:"status"`
	PricePerNight float64          `json:"pricePerNight"`
	Images        []string         `json:"images"`
	AverageRating float64          `json:"averageRating"`
	RoomType      RoomTypeResponse `json:"roomType"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}

// CreateRoomTypeRequest là DTO cho request tạo loại phòng
type CreateRoomTypeRequest struct {
	TypeName         string   `json:"typeName" binding:"required"`
	Description      string   `json:"description"`
	BasePrice        float64  `json:"basePrice" binding:"required"`
	GuestAmount      int      `json:"guestAmount"`
	BedAmount        int      `json:"bedAmount"`
	BedroomAmount    int      `json:"bedroomAmount"`
	SharedBathAmount int      `json:"sharedBathAmount"`
	Amenities        []string `json:"amenities,omitempty"`
	KeyFeatures      []string `json:"keyFeatures,omitempty"`
}

// RoomTypeResponse là DTO cho response của loại phòng
type RoomTypeResponse struct {
	ID               uint     `json:"id"`
	TypeName         string   `json:"typeName"`
	Description      string   `json:"description"`
	BasePrice        float64  `json:"basePrice"`
	GuestAmount      int      `json:"guestAmount"`
	BedAmount        int      `json:"bedAmount"`
	BedroomAmount    int      `json:"bedroomAmount"`
	SharedBathAmount int      `json:"sharedBathAmount"`
	Amenities        []string `json:"amenities"`
	KeyFeatures      []string `json:"keyFeatures"`
}

// FilterRoomsRequest gom các tham số lọc phòng từ query string
type FilterRoomsRequest struct {
	Search           string   `form:"search"`
	Amenities        []string `form:"amenities"`
	GuestAmount      int      `form:"guestAmount"`
	BedAmount        int      `form:"bedAmount"`
	BedroomAmount    int      `form:"bedroomAmount"`
	SharedBathAmount int      `form:"sharedBathAmount"`
	CheckInDate      string   `form:"checkInDate"`
	CheckOutDate     string   `form:"checkOutDate"`
	SortBy           string   `form:"sortBy"`
	SortOrder        string   `form:"sortOrder"`
	Page             int      `form:"page"`
	Limit            int      `form:"limit"`
}

// RoomAvailabilityResponse là lịch trống của một phòng
type RoomAvailabilityResponse struct {
	RoomID        uint            `json:"roomId"`
	NextWeekStart time.Time       `json:"nextWeekStart"`
	NextWeekEnd   time.Time       `json:"nextWeekEnd"`
	Occupancy     map[string]bool `json:"occupancy"`
}
