package dto

import "time"

// CreateUserRequest là DTO cho request tạo user (admin tạo nhân viên)
type CreateUserRequest struct {
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"required"`
	Password      string `json:"password" binding:"required"`
	Role          int    `json:"role"`
	ServiceTypeID *uint  `json:"serviceTypeId,omitempty"`
}

// UpdateUserRequest là DTO cho request cập nhật user
type UpdateUserRequest struct {
	ID            uint   `json:"id" binding:"required"`
	Name          string `json:"name,omitempty"`
	Avatar        string `json:"avatar,omitempty"`
	ServiceTypeID *uint  `json:"serviceTypeId,omitempty"`
}

// ChangeUserStatusRequest là DTO cho request khóa/mở user
type ChangeUserStatusRequest struct {
	ID       uint `json:"id" binding:"required"`
	IsActive bool `json:"isActive"`
}

// UserResponse là DTO cho response của user
type UserResponse struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Avatar        string    `json:"avatar"`
	Role          int       `json:"role"`
	IsVerified    bool      `json:"isVerified"`
	IsActive      bool      `json:"isActive"`
	ServiceTypeID *uint     `json:"serviceTypeId,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
