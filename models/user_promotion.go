package models

import "time"

// UserPromotion là sổ khuyến mãi của từng người dùng: mỗi cặp
// (user, promotion) chỉ có một dòng. UsageCount = 0 nghĩa là mới được
// cấp quyền dùng, UsageCount >= 1 nghĩa là đã sử dụng.
type UserPromotion struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	UserID        uint       `gorm:"not null" json:"userId"`
	PromotionID   uint       `gorm:"not null" json:"promotionId"`
	PromotionName string     `json:"promotionName"` // Snapshot tên chương trình
	Discount      int        `json:"discount"`      // Snapshot mức giảm giá
	UsageCount    int        `gorm:"default:0" json:"usageCount"`
	RedeemedAt    *time.Time `json:"redeemedAt,omitempty"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`

	User      User      `gorm:"foreignKey:UserID" json:"user"`
	Promotion Promotion `gorm:"foreignKey:PromotionID" json:"promotion"`
}
