package models

import (
	"fmt"
	"time"

	"github.com/lib/pq"
)

type RoomType struct {
	ID               uint           `json:"id" gorm:"primaryKey"`
	TypeName         string         `json:"typeName"`                          // Tên loại phòng
	Description      string         `json:"description"`                       // Mô tả loại phòng
	BasePrice        float64        `json:"basePrice"`                         // Giá cơ bản mỗi đêm
	GuestAmount      int            `json:"guestAmount"`                       // Số khách tối đa
	BedAmount        int            `json:"bedAmount"`                         // Số giường
	BedroomAmount    int            `json:"bedroomAmount"`                     // Số phòng ngủ
	SharedBathAmount int            `json:"sharedBathAmount"`                  // Số phòng tắm chung
	Amenities        pq.StringArray `json:"amenities" gorm:"type:text[]"`      // Tiện nghi
	KeyFeatures      pq.StringArray `json:"keyFeatures" gorm:"type:text[]"`    // Điểm nổi bật
	CreatedAt        time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
}

// ValidatePriceBand kiểm tra giá phòng nằm trong khoảng cho phép của loại phòng
func (rt *RoomType) ValidatePriceBand(pricePerNight float64) error {
	min := rt.BasePrice * 0.5
	max := rt.BasePrice * 1.5
	if pricePerNight < min || pricePerNight > max {
		return fmt.Errorf("giá phòng %.2f phải nằm trong khoảng [%.2f, %.2f]", pricePerNight, min, max)
	}
	return nil
}
