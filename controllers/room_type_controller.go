package controllers

import (
	"sort"
	"strconv"

	"resort/config"
	"resort/dto"
	"resort/models"
	"resort/response"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
)

func GetRoomTypes(c *gin.Context) {
	var roomTypes []models.RoomType
	if err := config.DB.Find(&roomTypes).Error; err != nil {
		response.ServerError(c)
		return
	}

	pageStr := c.Query("page")
	limitStr := c.Query("limit")
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

	total := len(roomTypes)

	sort.Slice(roomTypes, func(i, j int) bool {
		return roomTypes[i].UpdatedAt.After(roomTypes[j].UpdatedAt)
	})

	start := page * limit
	end := start + limit
	if start >= total {
		roomTypes = []models.RoomType{}
	} else if end > total {
		roomTypes = roomTypes[start:]
	} else {
		roomTypes = roomTypes[start:end]
	}

	typeResponses := make([]dto.RoomTypeResponse, 0, len(roomTypes))
	for _, roomType := range roomTypes {
		typeResponses = append(typeResponses, convertToRoomTypeResponse(roomType))
	}

	response.SuccessWithPagination(c, typeResponses, page, limit, total)
}

func CreateRoomType(c *gin.Context) {
	var request dto.CreateRoomTypeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if request.BasePrice <= 0 {
		response.BadRequest(c, "Giá cơ bản phải lớn hơn 0")
		return
	}

	roomType := models.RoomType{
		TypeName:         request.TypeName,
		Description:      request.Description,
		BasePrice:        request.BasePrice,
		GuestAmount:      request.GuestAmount,
		BedAmount:        request.BedAmount,
		BedroomAmount:    request.BedroomAmount,
		SharedBathAmount: request.SharedBathAmount,
		Amenities:        pq.StringArray(request.Amenities),
		KeyFeatures:      pq.StringArray(request.KeyFeatures),
	}

	if err := config.DB.Create(&roomType).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, convertToRoomTypeResponse(roomType))
}

func GetRoomTypeDetail(c *gin.Context) {
	typeID := c.Param("id")

	var roomType models.RoomType
	if err := config.DB.Where("id = ?", typeID).First(&roomType).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, convertToRoomTypeResponse(roomType))
}

func UpdateRoomType(c *gin.Context) {
	type UpdateRoomTypeRequest struct {
		ID               uint     `json:"id" binding:"required"`
		TypeName         string   `json:"typeName,omitempty"`
		Description      string   `json:"description,omitempty"`
		BasePrice        float64  `json:"basePrice,omitempty"`
		GuestAmount      int      `json:"guestAmount,omitempty"`
		BedAmount        int      `json:"bedAmount,omitempty"`
		BedroomAmount    int      `json:"bedroomAmount,omitempty"`
		SharedBathAmount int      `json:"sharedBathAmount,omitempty"`
		Amenities        []string `json:"amenities,omitempty"`
		KeyFeatures      []string `json:"keyFeatures,omitempty"`
	}

	var request UpdateRoomTypeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var roomType models.RoomType
	if err := config.DB.First(&roomType, request.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if request.TypeName != "" {
		roomType.TypeName = request.TypeName
	}
	if request.Description != "" {
		roomType.Description = request.Description
	}
	if request.BasePrice > 0 {
		roomType.BasePrice = request.BasePrice
	}
	if request.GuestAmount > 0 {
		roomType.GuestAmount = request.GuestAmount
	}
	if request.BedAmount > 0 {
		roomType.BedAmount = request.BedAmount
	}
	if request.BedroomAmount > 0 {
		roomType.BedroomAmount = request.BedroomAmount
	}
	if request.SharedBathAmount > 0 {
		roomType.SharedBathAmount = request.SharedBathAmount
	}
	if len(request.Amenities) > 0 {
		roomType.Amenities = pq.StringArray(request.Amenities)
	}
	if len(request.KeyFeatures) > 0 {
		roomType.KeyFeatures = pq.StringArray(request.KeyFeatures)
	}

	if err := config.DB.Save(&roomType).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateRoomCaches()

	response.Success(c, convertToRoomTypeResponse(roomType))
}
