package dto

import "time"

// CreateServiceRequest là DTO cho request tạo dịch vụ
type CreateServiceRequest struct {
	ServiceName   string  `json:"serviceName" binding:"required"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	ServiceTypeID uint    `json:"serviceTypeId" binding:"required"`
}

// UpdateServiceRequest là DTO cho request cập nhật dịch vụ
type UpdateServiceRequest struct {
	ID            uint    `json:"id" binding:"required"`
	ServiceName   string  `json:"serviceName,omitempty"`
	Description   string  `json:"description,omitempty"`
	Price         float64 `json:"price,omitempty"`
	ServiceTypeID uint    `json:"serviceTypeId,omitempty"`
}

// ServiceResponse là DTO cho response của dịch vụ
type ServiceResponse struct {
	ID              uint      `json:"id"`
	ServiceName     string    `json:"serviceName"`
	Description     string    `json:"description"`
	Price           float64   `json:"price"`
	ServiceTypeID   uint      `json:"serviceTypeId"`
	ServiceTypeName string    `json:"serviceTypeName"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// CreateServiceTypeRequest là DTO cho request tạo loại dịch vụ
type CreateServiceTypeRequest struct {
	TypeName    string `json:"typeName" binding:"required"`
	Description string `json:"description"`
}
