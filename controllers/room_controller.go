package controllers

import (
	"log"
	"sort"
	"strconv"
	"time"

	"resort/config"
	"resort/constants"
	"resort/dto"
	"resort/models"
	"resort/response"
	"resort/services"
	"resort/validator"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
)

func convertToRoomTypeResponse(roomType models.RoomType) dto.RoomTypeResponse {
	return dto.RoomTypeResponse{
		ID:               roomType.ID,
		TypeName:         roomType.TypeName,
		Description:      roomType.Description,
		BasePrice:        roomType.BasePrice,
		GuestAmount:      roomType.GuestAmount,
		BedAmount:        roomType.BedAmount,
		BedroomAmount:    roomType.BedroomAmount,
		SharedBathAmount: roomType.SharedBathAmount,
		Amenities:        roomType.Amenities,
		KeyFeatures:      roomType.KeyFeatures,
	}
}

func convertToRoomResponse(room models.Room) dto.RoomResponse {
	return dto.RoomResponse{
		ID:            room.RoomId,
		RoomNumber:    room.RoomNumber,
		Status:        room.Status,
		PricePerNight: room.PricePerNight,
		Images:        room.Images,
		AverageRating: room.AverageRating,
		RoomType:      convertToRoomTypeResponse(room.RoomType),
		CreatedAt:     room.CreatedAt,
		UpdatedAt:     room.UpdatedAt,
	}
}

func invalidateRoomCaches() {
	rdb, err := config.ConnectRedis()
	if err != nil {
		return
	}
	_ = services.DeleteFromRedis(config.Ctx, rdb, "rooms:all")
}

func loadAllRooms() ([]models.Room, error) {
	cacheKey := "rooms:all"
	rdb, err := config.ConnectRedis()
	if err != nil {
		return nil, err
	}

	var allRooms []models.Room
	if err := services.GetFromRedis(config.Ctx, rdb, cacheKey, &allRooms); err == nil && len(allRooms) > 0 {
		return allRooms, nil
	}

	if err := config.DB.Preload("RoomType").Find(&allRooms).Error; err != nil {
		return nil, err
	}

	if err := services.SetToRedis(config.Ctx, rdb, cacheKey, allRooms, 10*time.Minute); err != nil {
		log.Printf("Lỗi khi lưu danh sách phòng vào Redis: %v", err)
	}
	return allRooms, nil
}

func GetAllRooms(c *gin.Context) {
	allRooms, err := loadAllRooms()
	if err != nil {
		response.ServerError(c)
		return
	}

	pageStr := c.Query("page")
	limitStr := c.Query("limit")
	statusFilter := c.Query("status")
	roomTypeStr := c.Query("roomTypeId")

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

	filteredRooms := make([]models.Room, 0)
	for _, room := range allRooms {
		if statusFilter != "" {
			parsedStatus, err := strconv.Atoi(statusFilter)
			if err == nil && room.Status != parsedStatus {
				continue
			}
		}
		if roomTypeStr != "" {
			parsedType, err := strconv.Atoi(roomTypeStr)
			if err == nil && room.RoomTypeID != uint(parsedType) {
				continue
			}
		}
		filteredRooms = append(filteredRooms, room)
	}

	totalFiltered := len(filteredRooms)

	sort.Slice(filteredRooms, func(i, j int) bool {
		return filteredRooms[i].UpdatedAt.After(filteredRooms[j].UpdatedAt)
	})

	start := page * limit
	end := start + limit
	if start >= totalFiltered {
		filteredRooms = []models.Room{}
	} else if end > totalFiltered {
		filteredRooms = filteredRooms[start:]
	} else {
		filteredRooms = filteredRooms[start:end]
	}

	roomResponses := make([]dto.RoomResponse, 0, len(filteredRooms))
	for _, room := range filteredRooms {
		roomResponses = append(roomResponses, convertToRoomResponse(room))
	}

	response.SuccessWithPagination(c, roomResponses, page, limit, totalFiltered)
}

// matchesRoomFilter là bước lọc cứng của FilterRooms. Phòng đang có khách hoặc
// đang bảo trì không bao giờ vào kết quả lọc.
func matchesRoomFilter(room models.Room, request dto.FilterRoomsRequest) bool {
	if room.Status == constants.RoomStatusOccupied || room.Status == constants.RoomStatusMaintenance {
		return false
	}
	if !services.HasAllAmenities(room.RoomType, request.Amenities) {
		return false
	}
	if request.GuestAmount > 0 && room.RoomType.GuestAmount < request.GuestAmount {
		return false
	}
	if request.BedAmount > 0 && room.RoomType.BedAmount < request.BedAmount {
		return false
	}
	if request.BedroomAmount > 0 && room.RoomType.BedroomAmount < request.BedroomAmount {
		return false
	}
	if request.SharedBathAmount > 0 && room.RoomType.SharedBathAmount < request.SharedBathAmount {
		return false
	}
	return true
}

// FilterRooms lọc phòng theo chuỗi tìm kiếm gần đúng, tiện nghi, cấu trúc phòng
// và khoảng ngày còn trống
func FilterRooms(c *gin.Context) {
	var request dto.FilterRoomsRequest
	if err := c.ShouldBindQuery(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	allRooms, err := loadAllRooms()
	if err != nil {
		response.ServerError(c)
		return
	}

	// Lọc cứng trước, chấm điểm gần đúng sau
	candidateRooms := make([]models.Room, 0, len(allRooms))
	for _, room := range allRooms {
		if matchesRoomFilter(room, request) {
			candidateRooms = append(candidateRooms, room)
		}
	}

	if request.CheckInDate != "" && request.CheckOutDate != "" {
		checkIn, checkOut, err := services.ParseBookingDates(request.CheckInDate, request.CheckOutDate)
		if err != nil {
			response.BadRequest(c, err.Error())
			return
		}

		availableRooms := make([]models.Room, 0, len(candidateRooms))
		for _, room := range candidateRooms {
			var roomBookings []models.Booking
			if err := config.DB.Where("room_id = ?", room.RoomId).Find(&roomBookings).Error; err != nil {
				response.ServerError(c)
				return
			}
			if services.RoomAvailableForRange(roomBookings, checkIn, checkOut) {
				availableRooms = append(availableRooms, room)
			}
		}
		candidateRooms = availableRooms
	}

	var resultRooms []models.Room
	if request.Search != "" {
		query := services.NormalizeInput(request.Search)
		scoredRooms := services.FilterAndScoreRooms(query, candidateRooms)
		resultRooms = make([]models.Room, 0, len(scoredRooms))
		for _, scored := range scoredRooms {
			resultRooms = append(resultRooms, scored.Room)
		}
	} else {
		resultRooms = candidateRooms
	}

	switch request.SortBy {
	case "price":
		sort.SliceStable(resultRooms, func(i, j int) bool {
			if request.SortOrder == "desc" {
				return resultRooms[i].PricePerNight > resultRooms[j].PricePerNight
			}
			return resultRooms[i].PricePerNight < resultRooms[j].PricePerNight
		})
	case "rating":
		sort.SliceStable(resultRooms, func(i, j int) bool {
			if request.SortOrder == "asc" {
				return resultRooms[i].AverageRating < resultRooms[j].AverageRating
			}
			return resultRooms[i].AverageRating > resultRooms[j].AverageRating
		})
	}

	page := request.Page
	limit := request.Limit
	if page < 0 {
		page = 0
	}
	if limit <= 0 {
		limit = 10
	}

	totalFiltered := len(resultRooms)
	start := page * limit
	end := start + limit
	if start >= totalFiltered {
		resultRooms = []models.Room{}
	} else if end > totalFiltered {
		resultRooms = resultRooms[start:]
	} else {
		resultRooms = resultRooms[start:end]
	}

	roomResponses := make([]dto.RoomResponse, 0, len(resultRooms))
	for _, room := range resultRooms {
		roomResponses = append(roomResponses, convertToRoomResponse(room))
	}

	response.SuccessWithPagination(c, roomResponses, page, limit, totalFiltered)
}

func CreateRoom(c *gin.Context) {
	var request dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var roomType models.RoomType
	if err := config.DB.First(&roomType, request.RoomTypeID).Error; err != nil {
		response.BadRequest(c, "Không tìm thấy loại phòng")
		return
	}

	room := models.Room{
		RoomNumber:    request.RoomNumber,
		RoomTypeID:    request.RoomTypeID,
		PricePerNight: request.PricePerNight,
		Images:        pq.StringArray(request.Images),
	}

	if err := validator.ValidateRoom(&room, &roomType); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var existing models.Room
	if err := config.DB.Where("room_number = ?", room.RoomNumber).First(&existing).Error; err == nil {
		response.BadRequest(c, "Số phòng đã tồn tại")
		return
	}

	if err := config.DB.Create(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	if err := config.DB.Preload("RoomType").First(&room, room.RoomId).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateRoomCaches()

	response.Success(c, convertToRoomResponse(room))
}

func GetRoomDetail(c *gin.Context) {
	roomID := c.Param("id")

	var room models.Room
	if err := config.DB.Preload("RoomType").
		Preload("Ratings.User").
		Where("room_id = ?", roomID).
		First(&room).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, convertToRoomResponse(room))
}

func UpdateRoom(c *gin.Context) {
	var request dto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var room models.Room
	if err := config.DB.Preload("RoomType").First(&room, request.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if request.RoomNumber != "" {
		room.RoomNumber = request.RoomNumber
	}
	if request.RoomTypeID != 0 {
		room.RoomTypeID = request.RoomTypeID
	}
	if request.PricePerNight != 0 {
		room.PricePerNight = request.PricePerNight
	}
	if len(request.Images) > 0 {
		room.Images = pq.StringArray(request.Images)
	}

	var roomType models.RoomType
	if err := config.DB.First(&roomType, room.RoomTypeID).Error; err != nil {
		response.BadRequest(c, "Không tìm thấy loại phòng")
		return
	}

	if err := validator.ValidateRoom(&room, &roomType); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Save(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	if err := config.DB.Preload("RoomType").First(&room, room.RoomId).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateRoomCaches()

	response.Success(c, convertToRoomResponse(room))
}

func ChangeRoomStatus(c *gin.Context) {
	var request dto.ChangeRoomStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var room models.Room
	if err := config.DB.First(&room, request.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	room.Status = request.Status
	if err := room.ValidateStatus(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Model(&room).Update("status", room.Status).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateRoomCaches()

	response.Success(c, gin.H{"message": "Trạng thái phòng đã được cập nhật"})
}

// GetRoomAvailability trả về khoảng 7 ngày trống sớm nhất và lịch 30 ngày tới
func GetRoomAvailability(c *gin.Context) {
	roomID := c.Param("id")

	var room models.Room
	if err := config.DB.Where("room_id = ?", roomID).First(&room).Error; err != nil {
		response.NotFound(c)
		return
	}

	var roomBookings []models.Booking
	if err := config.DB.Where("room_id = ?", room.RoomId).Find(&roomBookings).Error; err != nil {
		response.ServerError(c)
		return
	}

	now := time.Now()
	week := services.NextAvailableWeek(roomBookings, now)
	occupancy := services.OccupancyByDate(roomBookings, now, 30)

	response.Success(c, dto.RoomAvailabilityResponse{
		RoomID:        room.RoomId,
		NextWeekStart: week.Start,
		NextWeekEnd:   week.End,
		Occupancy:     occupancy,
	})
}
