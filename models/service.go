package models

import (
	"fmt"
	"time"
)

type ServiceType struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	TypeName    string    `json:"typeName"`    // Tên loại dịch vụ
	Description string    `json:"description"` // Mô tả
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

type Service struct {
	ID            uint        `json:"id" gorm:"primaryKey"`
	ServiceName   string      `json:"serviceName"`
	Description   string      `json:"description"`
	Price         float64     `json:"price"`
	ServiceTypeID uint        `json:"serviceTypeId"`
	CreatedAt     time.Time   `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time   `gorm:"autoUpdateTime" json:"updatedAt"`
	ServiceType   ServiceType `json:"serviceType" gorm:"foreignKey:ServiceTypeID"`
}

func (s *Service) ValidatePrice() error {
	if s.Price < 0 {
		return fmt.Errorf("giá dịch vụ không được âm")
	}
	return nil
}
