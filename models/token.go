package models

import "time"

// Token là token dùng một lần (refresh / đặt lại mật khẩu), xóa ngay khi dùng
type Token struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null" json:"userId"`
	Type      int       `json:"type"` // 0: refresh token, 1: đặt lại mật khẩu
	Value     string    `gorm:"uniqueIndex;size:64" json:"value"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`

	User User `gorm:"foreignKey:UserID" json:"user"`
}
