package dto

import "time"

// CreatePromotionRequest là DTO cho request tạo khuyến mãi
type CreatePromotionRequest struct {
	PromotionName   string `json:"promotionName" binding:"required"`
	Description     string `json:"description"`
	Discount        int    `json:"discount" binding:"required"`
	Quantity        int    `json:"quantity"`
	QuantityPerUser int    `json:"quantityPerUser"`
	FromDate        string `json:"fromDate" binding:"required"`
	ToDate          string `json:"toDate" binding:"required"`
}

// UpdatePromotionRequest là DTO cho request cập nhật khuyến mãi
type UpdatePromotionRequest struct {
	ID              uint   `json:"id" binding:"required"`
	PromotionName   string `json:"promotionName,omitempty"`
	Description     string `json:"description,omitempty"`
	Discount        int    `json:"discount,omitempty"`
	Quantity        int    `json:"quantity,omitempty"`
	QuantityPerUser int    `json:"quantityPerUser,omitempty"`
	FromDate        string `json:"fromDate,omitempty"`
	ToDate          string `json:"toDate,omitempty"`
}

// ChangePromotionStatusRequest là DTO cho request đổi trạng thái khuyến mãi
type ChangePromotionStatusRequest struct {
	ID     uint `json:"id" binding:"required"`
	Status int  `json:"status"`
}

// PromotionResponse là DTO cho response của khuyến mãi
type PromotionResponse struct {
	ID              uint      `json:"id"`
	PromotionName   string    `json:"promotionName"`
	Description     string    `json:"description"`
	Discount        int       `json:"discount"`
	Quantity        int       `json:"quantity"`
	QuantityPerUser int       `json:"quantityPerUser"`
	FromDate        string    `json:"fromDate"`
	ToDate          string    `json:"toDate"`
	Status          int       `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// UserPromotionResponse là một dòng trong sổ khuyến mãi của người dùng
type UserPromotionResponse struct {
	ID            uint       `json:"id"`
	PromotionID   uint       `json:"promotionId"`
	PromotionName string     `json:"promotionName"`
	Discount      int        `json:"discount"`
	UsageCount    int        `json:"usageCount"`
	RedeemedAt    *time.Time `json:"redeemedAt,omitempty"`
}
