package models

import (
	"fmt"
	"time"
)

type Promotion struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	PromotionName   string    `json:"promotionName"`             // Tên chương trình khuyến mãi
	Description     string    `json:"description"`               // Mô tả
	Discount        int       `json:"discount"`                  // Mức giảm giá (%)
	Quantity        int       `json:"quantity"`                  // Số lượt còn có thể dùng
	QuantityPerUser int       `json:"quantityPerUser" gorm:"default:1"` // Số lượt mỗi người dùng
	FromDate        string    `json:"fromDate"`                  // Ngày bắt đầu
	ToDate          string    `json:"toDate"`                    // Ngày kết thúc
	Status          int       `json:"status" gorm:"default:1"`   // 0: Inactive, 1: Active
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (p *Promotion) ValidateStatusPromotion() error {
	if p.Status < 0 || p.Status > 1 {
		return fmt.Errorf("invalid Status: %d, must be either 0 or 1", p.Status)
	}
	return nil
}
