package models

import (
	"fmt"
	"time"
)

type User struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Name          string    `gorm:"default:New User" json:"name"`
	Email         string    `gorm:"unique" json:"email"`
	Password      string    `json:"password"`
	IsVerified    bool      `gorm:"default:false" json:"isVerified"`
	IsActive      bool      `gorm:"default:true" json:"isActive"`
	Avatar        string    `gorm:"default:'https://res.cloudinary.com/dqipg0or3/image/upload/v1740564293/avatars/default.png'" json:"avatar"`
	Role          int       `gorm:"default:0" json:"role"` // 0: user, 1: admin, 2: nhân viên dịch vụ, 3: lễ tân
	ServiceTypeID *uint     `json:"serviceTypeId,omitempty"` // Bắt buộc với nhân viên dịch vụ

	ServiceType *ServiceType `json:"serviceType,omitempty" gorm:"foreignKey:ServiceTypeID"`
}

// ValidateRole kiểm tra role hợp lệ, nhân viên dịch vụ phải gắn loại dịch vụ
func (u *User) ValidateRole() error {
	if u.Role < 0 || u.Role > 3 {
		return fmt.Errorf("invalid role: %d, must be between 0 and 3", u.Role)
	}
	if u.Role == 2 && u.ServiceTypeID == nil {
		return fmt.Errorf("nhân viên dịch vụ phải có loại dịch vụ")
	}
	return nil
}
