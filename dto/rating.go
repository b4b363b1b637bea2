package dto

import "time"

// CreateRatingRequest là DTO cho request tạo đánh giá
type CreateRatingRequest struct {
	RoomID        uint   `json:"roomId" binding:"required"`
	Cleanliness   int    `json:"cleanliness" binding:"required"`
	Accuracy      int    `json:"accuracy" binding:"required"`
	CheckIn       int    `json:"checkIn" binding:"required"`
	Communication int    `json:"communication" binding:"required"`
	Location      int    `json:"location" binding:"required"`
	Value         int    `json:"value" binding:"required"`
	Comment       string `json:"comment"`
}

// UserInfo là thông tin người dùng rút gọn trên đánh giá
type UserInfo struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// RatingResponse là DTO cho response của đánh giá
type RatingResponse struct {
	ID            uint      `json:"id"`
	RoomID        uint      `json:"roomId"`
	Cleanliness   int       `json:"cleanliness"`
	Accuracy      int       `json:"accuracy"`
	CheckIn       int       `json:"checkIn"`
	Communication int       `json:"communication"`
	Location      int       `json:"location"`
	Value         int       `json:"value"`
	Average       float64   `json:"average"`
	Comment       string    `json:"comment"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
	User          UserInfo  `json:"user"`
}
