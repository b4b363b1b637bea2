package controllers

import (
	"log"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"resort/config"
	"resort/dto"
	appErrors "resort/errors"
	"resort/models"
	"resort/response"
	"resort/services"
	"resort/validator"

	"github.com/gin-gonic/gin"
)

func convertToPromotionResponse(promotion models.Promotion) dto.PromotionResponse {
	return dto.PromotionResponse{
		ID:              promotion.ID,
		PromotionName:   promotion.PromotionName,
		Description:     promotion.Description,
		Discount:        promotion.Discount,
		Quantity:        promotion.Quantity,
		QuantityPerUser: promotion.QuantityPerUser,
		FromDate:        promotion.FromDate,
		ToDate:          promotion.ToDate,
		Status:          promotion.Status,
		CreatedAt:       promotion.CreatedAt,
		UpdatedAt:       promotion.UpdatedAt,
	}
}

func GetPromotions(c *gin.Context) {
	var allPromotions []models.Promotion
	if err := config.DB.Find(&allPromotions).Error; err != nil {
		response.ServerError(c)
		return
	}

	pageStr := c.Query("page")
	limitStr := c.Query("limit")
	nameFilter := c.Query("name")
	statusFilter := c.Query("status")

	page := 0
	limit := 10
	if pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}
	if limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	filteredPromotions := make([]models.Promotion, 0)
	for _, promotion := range allPromotions {
		if nameFilter != "" {
			decodedName, _ := url.QueryUnescape(nameFilter)
			if !strings.Contains(strings.ToLower(promotion.PromotionName), strings.ToLower(decodedName)) {
				continue
			}
		}
		if statusFilter != "" {
			parsedStatus, err := strconv.Atoi(statusFilter)
			if err == nil && promotion.Status != parsedStatus {
				continue
			}
		}
		filteredPromotions = append(filteredPromotions, promotion)
	}

	totalFiltered := len(filteredPromotions)

	sort.Slice(filteredPromotions, func(i, j int) bool {
		return filteredPromotions[i].UpdatedAt.After(filteredPromotions[j].UpdatedAt)
	})

	start := page * limit
	end := start + limit
	if start >= totalFiltered {
		filteredPromotions = []models.Promotion{}
	} else if end > totalFiltered {
		filteredPromotions = filteredPromotions[start:]
	} else {
		filteredPromotions = filteredPromotions[start:end]
	}

	promotionResponses := make([]dto.PromotionResponse, 0, len(filteredPromotions))
	for _, promotion := range filteredPromotions {
		promotionResponses = append(promotionResponses, convertToPromotionResponse(promotion))
	}

	response.SuccessWithPagination(c, promotionResponses, page, limit, totalFiltered)
}

func GetPromotionDetail(c *gin.Context) {
	promotionID := c.Param("id")

	var promotion models.Promotion
	if err := config.DB.Where("id = ?", promotionID).First(&promotion).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, convertToPromotionResponse(promotion))
}

func CreatePromotion(c *gin.Context) {
	var request dto.CreatePromotionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	quantityPerUser := request.QuantityPerUser
	if quantityPerUser <= 0 {
		quantityPerUser = 1
	}

	promotion := models.Promotion{
		PromotionName:   request.PromotionName,
		Description:     request.Description,
		Discount:        request.Discount,
		Quantity:        request.Quantity,
		QuantityPerUser: quantityPerUser,
		FromDate:        request.FromDate,
		ToDate:          request.ToDate,
		Status:          1,
	}

	if err := validator.ValidatePromotion(&promotion); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Create(&promotion).Error; err != nil {
		response.ServerError(c)
		return
	}

	// Cấp sẵn quyền dùng cho người dùng đang hoạt động
	if err := services.SeedPromotionForUsers(config.DB, &promotion); err != nil {
		log.Printf("Lỗi cấp khuyến mãi cho người dùng: %v", err)
	}

	response.Success(c, convertToPromotionResponse(promotion))
}

func UpdatePromotion(c *gin.Context) {
	var request dto.UpdatePromotionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var promotion models.Promotion
	if err := config.DB.First(&promotion, request.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if request.PromotionName != "" {
		promotion.PromotionName = request.PromotionName
	}
	if request.Description != "" {
		promotion.Description = request.Description
	}
	if request.Discount != 0 {
		promotion.Discount = request.Discount
	}
	if request.Quantity != 0 {
		promotion.Quantity = request.Quantity
	}
	if request.QuantityPerUser != 0 {
		promotion.QuantityPerUser = request.QuantityPerUser
	}
	if request.FromDate != "" {
		promotion.FromDate = request.FromDate
	}
	if request.ToDate != "" {
		promotion.ToDate = request.ToDate
	}

	if err := validator.ValidatePromotion(&promotion); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Save(&promotion).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, convertToPromotionResponse(promotion))
}

func DeletePromotion(c *gin.Context) {
	promotionID := c.Param("id")

	var promotion models.Promotion
	if err := config.DB.First(&promotion, promotionID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := config.DB.Where("promotion_id = ? AND usage_count = 0", promotion.ID).
		Delete(&models.UserPromotion{}).Error; err != nil {
		response.ServerError(c)
		return
	}

	if err := config.DB.Delete(&promotion).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"message": "Khuyến mãi đã được xóa"})
}

func ChangePromotionStatus(c *gin.Context) {
	var request dto.ChangePromotionStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var promotion models.Promotion
	if err := config.DB.First(&promotion, request.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	promotion.Status = request.Status
	if err := promotion.ValidateStatusPromotion(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Model(&promotion).Update("status", promotion.Status).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"message": "Trạng thái khuyến mãi đã được cập nhật"})
}

// UsePromotion ghi nhận một lượt dùng khuyến mãi của người dùng hiện tại
func UsePromotion(c *gin.Context) {
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

	type UsePromotionRequest struct {
		PromotionID uint `json:"promotionId" binding:"required"`
	}

	var request UsePromotionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	promotion, err := services.UsePromotion(config.DB, currentUserID, request.PromotionID)
	if err != nil {
		if appErr := appErrors.GetAppError(err); appErr != nil {
			if appErr.Code == appErrors.ErrCodeDBNotFound {
				response.NotFound(c)
				return
			}
			response.BadRequest(c, appErr.Message)
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{
		"promotionId": promotion.ID,
		"discount":    promotion.Discount,
		"remaining":   promotion.Quantity,
	})
}

// GetMyPromotions trả về sổ khuyến mãi của người dùng hiện tại
func GetMyPromotions(c *gin.Context) {
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

	var entries []models.UserPromotion
	if err := config.DB.Where("user_id = ?", currentUserID).
		Order("created_at DESC").
		Find(&entries).Error; err != nil {
		response.ServerError(c)
		return
	}

	entryResponses := make([]dto.UserPromotionResponse, 0, len(entries))
	for _, entry := range entries {
		entryResponses = append(entryResponses, dto.UserPromotionResponse{
			ID:            entry.ID,
			PromotionID:   entry.PromotionID,
			PromotionName: entry.PromotionName,
			Discount:      entry.Discount,
			UsageCount:    entry.UsageCount,
			RedeemedAt:    entry.RedeemedAt,
		})
	}

	response.Success(c, entryResponses)
}
