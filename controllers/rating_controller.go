package controllers

import (
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"
	"time"

	"resort/config"
	"resort/dto"
	"resort/models"
	"resort/response"
	"resort/services"

	"github.com/gin-gonic/gin"
)

func convertToRatingResponse(rating models.Rating) dto.RatingResponse {
	return dto.RatingResponse{
		ID:            rating.ID,
		RoomID:        rating.RoomID,
		Cleanliness:   rating.Cleanliness,
		Accuracy:      rating.Accuracy,
		CheckIn:       rating.CheckIn,
		Communication: rating.Communication,
		Location:      rating.Location,
		Value:         rating.Value,
		Average:       rating.Average,
		Comment:       rating.Comment,
		CreatedAt:     rating.CreatedAt,
		UpdatedAt:     rating.UpdatedAt,
		User: dto.UserInfo{
			ID:     rating.User.ID,
			Name:   rating.User.Name,
			Avatar: rating.User.Avatar,
		},
	}
}

// recomputeRoomAverage tính lại điểm trung bình của phòng từ toàn bộ đánh giá
func recomputeRoomAverage(roomID uint) error {
	var ratings []models.Rating
	if err := config.DB.Where("room_id = ?", roomID).Find(&ratings).Error; err != nil {
		return err
	}

	var average float64
	if len(ratings) > 0 {
		var sum float64
		for _, rating := range ratings {
			sum += rating.Average
		}
		average = math.Round(sum/float64(len(ratings))*100) / 100
	}

	return config.DB.Model(&models.Room{}).
		Where("room_id = ?", roomID).
		Update("average_rating", average).Error
}

func GetAllRatings(c *gin.Context) {
	roomIDFilter := c.DefaultQuery("roomId", "")

	cacheKey := "ratings:all"
	if roomIDFilter != "" {
		cacheKey = fmt.Sprintf("ratings:room:%s", roomIDFilter)
	}

	rdb, err := config.ConnectRedis()
	if err != nil {
		response.ServerError(c)
		return
	}

	var ratings []models.Rating

	err = services.GetFromRedis(config.Ctx, rdb, cacheKey, &ratings)
	if err != nil || len(ratings) == 0 {
		tx := config.DB.Preload("User")
		if roomIDFilter != "" {
			if parsedRoomID, err := strconv.Atoi(roomIDFilter); err == nil {
				tx = tx.Where("room_id = ?", parsedRoomID)
			}
		}

		if err := tx.Order("created_at DESC").Limit(20).Find(&ratings).Error; err != nil {
			response.ServerError(c)
			return
		}

		if err := services.SetToRedis(config.Ctx, rdb, cacheKey, ratings, 10*time.Minute); err != nil {
			log.Printf("Lỗi khi lưu danh sách đánh giá vào Redis: %v", err)
		}
	}

	ratingResponses := make([]dto.RatingResponse, 0, len(ratings))
	for _, rating := range ratings {
		ratingResponses = append(ratingResponses, convertToRatingResponse(rating))
	}

	response.Success(c, ratingResponses)
}

func CreateRating(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		response.Unauthorized(c)
		return
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	currentUserID, _, err := services.GetUserIDFromToken(tokenString)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	var request dto.CreateRatingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var room models.Room
	if err := config.DB.First(&room, request.RoomID).Error; err != nil {
		response.NotFound(c)
		return
	}

	// Chỉ khách đã trả phòng mới được đánh giá
	var checkedOutCount int64
	if err := config.DB.Model(&models.Booking{}).
		Where("customer_id = ? AND room_id = ? AND status = ?", currentUserID, request.RoomID, models.BookingStatusCheckedOut).
		Count(&checkedOutCount).Error; err != nil {
		response.ServerError(c)
		return
	}
	if checkedOutCount == 0 {
		response.BadRequest(c, "Bạn chưa từng ở phòng này")
		return
	}

	var existingRating models.Rating
	if err := config.DB.Where("user_id = ? AND room_id = ?", currentUserID, request.RoomID).First(&existingRating).Error; err == nil {
		response.Error(c, 0, "Bạn đã đánh giá phòng này trước đó")
		return
	}

	rating := models.Rating{
		UserID:        currentUserID,
		RoomID:        request.RoomID,
		Cleanliness:   request.Cleanliness,
		Accuracy:      request.Accuracy,
		CheckIn:       request.CheckIn,
		Communication: request.Communication,
		Location:      request.Location,
		Value:         request.Value,
		Comment:       request.Comment,
	}

	if err := config.DB.Create(&rating).Error; err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := recomputeRoomAverage(request.RoomID); err != nil {
		log.Printf("Lỗi tính lại điểm trung bình phòng %d: %v", request.RoomID, err)
	}

	rdb, redisErr := config.ConnectRedis()
	if redisErr == nil {
		_ = services.DeleteKeysByPattern(config.Ctx, rdb, "ratings:*")
		_ = services.DeleteFromRedis(config.Ctx, rdb, "rooms:all")
	}

	if err := config.DB.Preload("User").First(&rating, rating.ID).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, convertToRatingResponse(rating))
}

func GetRatingDetail(c *gin.Context) {
	ratingID := c.Param("id")

	var rating models.Rating
	if err := config.DB.Preload("User").
		Where("id = ?", ratingID).
		First(&rating).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, convertToRatingResponse(rating))
}

func UpdateRating(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		response.Unauthorized(c)
		return
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	currentUserID, _, err := services.GetUserIDFromToken(tokenString)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	type UpdateRatingRequest struct {
		ID            uint   `json:"id" binding:"required"`
		Cleanliness   int    `json:"cleanliness,omitempty"`
		Accuracy      int    `json:"accuracy,omitempty"`
		CheckIn       int    `json:"checkIn,omitempty"`
		Communication int    `json:"communication,omitempty"`
		Location      int    `json:"location,omitempty"`
		Value         int    `json:"value,omitempty"`
		Comment       string `json:"comment,omitempty"`
	}

	var request UpdateRatingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var rating models.Rating
	if err := config.DB.First(&rating, request.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if rating.UserID != currentUserID {
		response.Forbidden(c)
		return
	}

	if request.Cleanliness != 0 {
		rating.Cleanliness = request.Cleanliness
	}
	if request.Accuracy != 0 {
		rating.Accuracy = request.Accuracy
	}
	if request.CheckIn != 0 {
		rating.CheckIn = request.CheckIn
	}
	if request.Communication != 0 {
		rating.Communication = request.Communication
	}
	if request.Location != 0 {
		rating.Location = request.Location
	}
	if request.Value != 0 {
		rating.Value = request.Value
	}
	if request.Comment != "" {
		rating.Comment = request.Comment
	}

	if err := config.DB.Save(&rating).Error; err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := recomputeRoomAverage(rating.RoomID); err != nil {
		log.Printf("Lỗi tính lại điểm trung bình phòng %d: %v", rating.RoomID, err)
	}

	rdb, redisErr := config.ConnectRedis()
	if redisErr == nil {
		_ = services.DeleteKeysByPattern(config.Ctx, rdb, "ratings:*")
		_ = services.DeleteFromRedis(config.Ctx, rdb, "rooms:all")
	}

	response.Success(c, convertToRatingResponse(rating))
}
