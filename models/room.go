package models

import (
	"fmt"
	"time"

	"github.com/lib/pq"
)

type Room struct {
	RoomId        uint           `json:"id" gorm:"primaryKey"`
	RoomNumber    string         `json:"roomNumber" gorm:"size:5"` // Số phòng, tối đa 5 ký tự
	RoomTypeID    uint           `json:"roomTypeId"`
	Status        int            `json:"status" gorm:"default:1"` // 1: trống, 2: đang ở, 3: bảo trì
	PricePerNight float64        `json:"pricePerNight"`
	Images        pq.StringArray `json:"images" gorm:"type:text[]"`
	AverageRating float64        `json:"averageRating" gorm:"default:0"` // Tính lại mỗi khi có đánh giá mới
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	RoomType      RoomType       `json:"roomType" gorm:"foreignKey:RoomTypeID"`
	Ratings       []Rating       `json:"ratings,omitempty" gorm:"foreignKey:RoomID"`
}

func (r *Room) ValidateStatus() error {
	if r.Status < 1 || r.Status > 3 {
		return fmt.Errorf("invalid status: %d, must be between 1 and 3", r.Status)
	}
	return nil
}

// ValidateRoomNumber kiểm tra số phòng hợp lệ
func (r *Room) ValidateRoomNumber() error {
	if r.RoomNumber == "" {
		return fmt.Errorf("số phòng không được để trống")
	}
	if len(r.RoomNumber) > 5 {
		return fmt.Errorf("số phòng tối đa 5 ký tự")
	}
	return nil
}
