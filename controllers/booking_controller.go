package controllers

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"resort/builders"
	"resort/config"
	"resort/constants"
	"resort/dto"
	appErrors "resort/errors"
	"resort/models"
	"resort/response"
	"resort/services"
	"resort/services/notification"
	"resort/validator"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"gorm.io/gorm"
)

var (
	notifier        notification.Service
	paymentProvider services.PaymentProvider
)

// InitControllers gắn websocket và cổng thanh toán cho các controller
func InitControllers(m *melody.Melody) {
	notifier = notification.NewMelodyService(m)
	paymentProvider = services.NewHTTPPaymentProvider()
}

func convertToBookingRoomResponse(room models.Room) dto.BookingRoomResponse {
	return dto.BookingRoomResponse{
		ID:            room.RoomId,
		RoomNumber:    room.RoomNumber,
		RoomTypeName:  room.RoomType.TypeName,
		PricePerNight: room.PricePerNight,
	}
}

func convertToBookingResponse(booking models.Booking) dto.BookingResponse {
	serviceResponses := make([]dto.BookingServiceResponse, 0, len(booking.Services))
	for _, item := range booking.Services {
		serviceResponses = append(serviceResponses, dto.BookingServiceResponse{
			ID:        item.ID,
			ServiceID: item.ServiceID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Status:    item.Status,
		})
	}

	return dto.BookingResponse{
		ID: booking.ID,
		Customer: dto.ActorResponse{
			ID:    booking.Customer.ID,
			Name:  booking.Customer.Name,
			Email: booking.Customer.Email,
		},
		Room:         convertToBookingRoomResponse(booking.Room),
		CheckInDate:  booking.CheckInDate,
		CheckOutDate: booking.CheckOutDate,
		Status:       booking.Status,
		PromotionID:  booking.PromotionID,
		TotalAmount:  booking.TotalAmount,
		Services:     serviceResponses,
		CreatedAt:    booking.CreatedAt,
		UpdatedAt:    booking.UpdatedAt,
	}
}

func invalidateBookingCaches(currentUserID uint) {
	rdb, err := config.ConnectRedis()
	if err != nil {
		return
	}

	_ = services.DeleteFromRedis(config.Ctx, rdb, "bookings:all")
	_ = services.DeleteFromRedis(config.Ctx, rdb, fmt.Sprintf("bookings:user:%d", currentUserID))
	_ = services.DeleteKeysByPattern(config.Ctx, rdb, "invoices:*")
	_ = services.DeleteFromRedis(config.Ctx, rdb, "rooms:all")
}

func GetBookings(c *gin.Context) {
	cacheKey := "bookings:all"
	rdb, err := config.ConnectRedis()
	if err != nil {
		response.ServerError(c)
		return
	}

	var allBookings []models.Booking

	if err := services.GetFromRedis(config.Ctx, rdb, cacheKey, &allBookings); err != nil || len(allBookings) == 0 {
		if err := config.DB.Model(&models.Booking{}).
			Preload("Room.RoomType").
			Preload("Customer").
			Preload("Services").
			Find(&allBookings).Error; err != nil {
			response.ServerError(c)
			return
		}

		if err := services.SetToRedis(config.Ctx, rdb, cacheKey, allBookings, 10*time.Minute); err != nil {
			log.Printf("Lỗi khi lưu danh sách booking vào Redis: %v", err)
		}
	}

	pageStr := c.Query("page")
	limitStr := c.Query("limit")
	nameFilter := c.Query("name")
	roomNumberFilter := c.Query("roomNumber")
	statusFilter := c.Query("status")
	fromDateStr := c.Query("fromDate")
	toDateStr := c.Query("toDate")

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

	filteredBookings := make([]models.Booking, 0)
	for _, booking := range allBookings {
		if nameFilter != "" {
			decodedName, _ := url.QueryUnescape(nameFilter)
			if !strings.Contains(strings.ToLower(booking.Customer.Name), strings.ToLower(decodedName)) {
				continue
			}
		}
		if roomNumberFilter != "" {
			if !strings.EqualFold(booking.Room.RoomNumber, roomNumberFilter) {
				continue
			}
		}
		if statusFilter != "" {
			parsedStatus, err := strconv.Atoi(statusFilter)
			if err == nil && booking.Status != parsedStatus {
				continue
			}
		}
		if fromDateStr != "" {
			fromDate, err := time.Parse(services.DateLayout, fromDateStr)
			if err != nil {
				response.BadRequest(c, "Sai định dạng fromDate")
				return
			}
			if booking.CreatedAt.Before(fromDate) {
				continue
			}
		}
		if toDateStr != "" {
			toDate, err := time.Parse(services.DateLayout, toDateStr)
			if err != nil {
				response.BadRequest(c, "Sai định dạng toDate")
				return
			}
			if booking.CreatedAt.After(toDate.AddDate(0, 0, 1)) {
				continue
			}
		}
		filteredBookings = append(filteredBookings, booking)
	}

	totalFiltered := len(filteredBookings)

	sort.Slice(filteredBookings, func(i, j int) bool {
		return filteredBookings[i].UpdatedAt.After(filteredBookings[j].UpdatedAt)
	})

	start := page * limit
	end := start + limit
	if start >= totalFiltered {
		filteredBookings = []models.Booking{}
	} else if end > totalFiltered {
		filteredBookings = filteredBookings[start:]
	} else {
		filteredBookings = filteredBookings[start:end]
	}

	bookingResponses := make([]dto.BookingResponse, 0, len(filteredBookings))
	for _, booking := range filteredBookings {
		bookingResponses = append(bookingResponses, convertToBookingResponse(booking))
	}

	response.SuccessWithPagination(c, bookingResponses, page, limit, totalFiltered)
}

func CreateBooking(c *gin.Context) {
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

	var request dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidateBookingDates(request.CheckInDate, request.CheckOutDate); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	checkIn, checkOut, err := services.ParseBookingDates(request.CheckInDate, request.CheckOutDate)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var room models.Room
	if err := config.DB.Preload("RoomType").First(&room, request.RoomID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if room.Status == constants.RoomStatusMaintenance {
		response.BadRequest(c, "Phòng đang bảo trì, không thể đặt")
		return
	}

	var roomBookings []models.Booking
	if err := config.DB.Where("room_id = ?", room.RoomId).Find(&roomBookings).Error; err != nil {
		response.ServerError(c)
		return
	}

	if !services.RoomAvailableForRange(roomBookings, checkIn, checkOut) {
		response.BadRequest(c, "Phòng đã được đặt trong khoảng thời gian này")
		return
	}

	nights := services.ComputeNights(checkIn, checkOut)
	totalAmount := services.ComputeRoomAmount(room.PricePerNight, nights)

	if request.PromotionID != nil {
		promotion, err := services.UsePromotion(config.DB, currentUserID, *request.PromotionID)
		if err != nil {
			if appErr := appErrors.GetAppError(err); appErr != nil {
				response.BadRequest(c, appErr.Message)
				return
			}
			response.ServerError(c)
			return
		}
		totalAmount = services.ApplyPromotionDiscount(totalAmount, promotion.Discount)
	}

	serviceItems := make([]models.BookingService, 0, len(request.ServiceIDs))
	for _, serviceID := range request.ServiceIDs {
		var service models.Service
		if err := config.DB.First(&service, serviceID).Error; err != nil {
			response.BadRequest(c, fmt.Sprintf("Không tìm thấy dịch vụ %d", serviceID))
			return
		}
		serviceItems = append(serviceItems, services.SnapshotService(service, 1))
		totalAmount += service.Price
	}

	booking := builders.NewBookingBuilder().
		WithCustomer(currentUserID).
		WithRoom(room.RoomId).
		WithCheckIn(request.CheckInDate).
		WithCheckOut(request.CheckOutDate).
		WithStatus(models.BookingStatusPending).
		WithPromotion(request.PromotionID).
		WithServices(serviceItems).
		WithTotalAmount(totalAmount).
		Build()

	if err := config.DB.Create(booking).Error; err != nil {
		response.ServerError(c)
		return
	}

	if err := config.DB.Preload("Room.RoomType").
		Preload("Customer").
		Preload("Services").
		First(booking, booking.ID).Error; err != nil {
		response.ServerError(c)
		return
	}

	if notifier != nil {
		message := notification.NewBookingMessageBuilder(booking.ID, booking.Room.RoomNumber, "đặt phòng mới").Build()
		if err := notifier.SendMessage(message); err != nil {
			log.Printf("Lỗi gửi thông báo booking: %v", err)
		}
	}

	invalidateBookingCaches(currentUserID)

	response.Success(c, convertToBookingResponse(*booking))
}

func GetBookingDetail(c *gin.Context) {
	bookingID := c.Param("id")

	var booking models.Booking
	if err := config.DB.Preload("Room.RoomType").
		Preload("Customer").
		Preload("Services").
		Where("id = ?", bookingID).
		First(&booking).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, convertToBookingResponse(booking))
}

func GetBookingsByUserId(c *gin.Context) {
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

	var totalBookings int64
	if err := config.DB.Model(&models.Booking{}).Where("customer_id = ?", currentUserID).Count(&totalBookings).Error; err != nil {
		response.ServerError(c)
		return
	}

	var bookings []models.Booking
	result := config.DB.Preload("Room.RoomType").
		Preload("Customer").
		Preload("Services").
		Where("customer_id = ?", currentUserID).
		Order("created_at DESC").
		Offset(page * limit).
		Limit(limit).
		Find(&bookings)

	if result.Error != nil {
		response.ServerError(c)
		return
	}

	bookingResponses := make([]dto.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		bookingResponses = append(bookingResponses, convertToBookingResponse(booking))
	}

	response.SuccessWithPagination(c, bookingResponses, page, limit, int(totalBookings))
}

func CheckInBooking(c *gin.Context) {
	bookingID := c.Param("id")

	var booking models.Booking
	if err := config.DB.Preload("Room.RoomType").
		Preload("Customer").
		Preload("Services").
		First(&booking, bookingID).Error; err != nil {
		response.NotFound(c)
		return
	}

	state := models.GetBookingState(booking.Status)
	if err := state.CheckIn(&booking); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Save(&booking).Error; err != nil {
		response.ServerError(c)
		return
	}

	if err := config.DB.Model(&models.Room{}).
		Where("room_id = ?", booking.RoomID).
		Update("status", constants.RoomStatusOccupied).Error; err != nil {
		response.ServerError(c)
		return
	}

	if notifier != nil {
		message := notification.NewBookingMessageBuilder(booking.ID, booking.Room.RoomNumber, "khách đã nhận phòng").Build()
		if err := notifier.SendMessage(message); err != nil {
			log.Printf("Lỗi gửi thông báo nhận phòng: %v", err)
		}
	}

	invalidateBookingCaches(booking.CustomerID)

	response.Success(c, convertToBookingResponse(booking))
}

func CheckOutBooking(c *gin.Context) {
	bookingID := c.Param("id")

	var booking models.Booking
	if err := config.DB.Preload("Room.RoomType").
		Preload("Customer").
		Preload("Services").
		First(&booking, bookingID).Error; err != nil {
		response.NotFound(c)
		return
	}

	state := models.GetBookingState(booking.Status)
	if err := state.CheckOut(&booking); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	// Trạng thái CheckedOut chỉ được lưu sau khi hóa đơn đã tồn tại,
	// để checkout lỗi giữa chừng còn thử lại được
	items, err := services.BuildInvoiceItems(&booking)
	if err != nil {
		response.ServerError(c)
		return
	}

	itemNames := make([]string, 0, len(items))
	for _, item := range items {
		itemNames = append(itemNames, fmt.Sprintf("%s x%d", item.Name, item.Quantity))
	}

	invoice, err := services.CreateInvoice(context.Background(), config.DB, paymentProvider, services.CreateInvoiceInput{
		UserID:      booking.CustomerID,
		BookingID:   &booking.ID,
		Amount:      booking.TotalAmount,
		Description: strings.Join(itemNames, ", "),
		ReturnURL:   config.GetEnv("PAYMENT_RETURN_URL"),
		CancelURL:   config.GetEnv("PAYMENT_CANCEL_URL"),
	})
	if err != nil {
		// Cổng thanh toán lỗi thì hóa đơn vẫn nằm PENDING, cron sẽ đối soát lại
		if appErr := appErrors.GetAppError(err); appErr == nil || appErr.Code != appErrors.ErrCodePaymentFailed {
			response.ServerError(c)
			return
		}
		log.Printf("Không tạo được link thanh toán cho booking %d: %v", booking.ID, err)
	}

	if err := config.DB.Save(&booking).Error; err != nil {
		response.ServerError(c)
		return
	}

	if err := config.DB.Model(&models.Room{}).
		Where("room_id = ?", booking.RoomID).
		Update("status", constants.RoomStatusAvailable).Error; err != nil {
		response.ServerError(c)
		return
	}

	if notifier != nil {
		message := notification.NewCheckoutMessageBuilder(booking.ID, invoice.Amount, invoice.CheckoutURL).Build()
		if err := notifier.SendMessage(message); err != nil {
			log.Printf("Lỗi gửi thông báo trả phòng: %v", err)
		}
	}

	invalidateBookingCaches(booking.CustomerID)

	response.Success(c, gin.H{
		"booking": convertToBookingResponse(booking),
		"invoice": gin.H{
			"id":          invoice.ID,
			"invoiceCode": invoice.InvoiceCode,
			"orderCode":   invoice.OrderCode,
			"amount":      invoice.Amount,
			"status":      invoice.Status,
			"checkoutUrl": invoice.CheckoutURL,
			"dueDate":     invoice.DueDate,
			"items":       items,
		},
	})
}

func CancelBooking(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		response.Unauthorized(c)
		return
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	currentUserID, currentUserRole, err := services.GetUserIDFromToken(tokenString)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	bookingID := c.Param("id")

	var booking models.Booking
	if err := config.DB.Preload("Room.RoomType").
		Preload("Customer").
		Preload("Services").
		First(&booking, bookingID).Error; err != nil {
		response.NotFound(c)
		return
	}

	// Khách chỉ hủy được booking của chính mình
	if currentUserRole == constants.RoleUser && booking.CustomerID != currentUserID {
		response.Forbidden(c)
		return
	}

	state := models.GetBookingState(booking.Status)
	if err := state.Cancel(&booking); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Save(&booking).Error; err != nil {
		response.ServerError(c)
		return
	}

	if notifier != nil {
		message := notification.NewBookingMessageBuilder(booking.ID, booking.Room.RoomNumber, "đã hủy").Build()
		if err := notifier.SendMessage(message); err != nil {
			log.Printf("Lỗi gửi thông báo hủy booking: %v", err)
		}
	}

	invalidateBookingCaches(booking.CustomerID)

	response.Success(c, convertToBookingResponse(booking))
}

func AddServiceToBooking(c *gin.Context) {
	bookingID := c.Param("id")

	var request dto.AddBookingServiceRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var booking models.Booking
	if err := config.DB.Preload("Services").First(&booking, bookingID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if booking.Status != models.BookingStatusPending && booking.Status != models.BookingStatusCheckedIn {
		response.BadRequest(c, "Chỉ thêm dịch vụ cho booking chưa trả phòng")
		return
	}

	var service models.Service
	if err := config.DB.First(&service, request.ServiceID).Error; err != nil {
		response.NotFound(c)
		return
	}

	quantity := request.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	var existingItem models.BookingService
	err := config.DB.Where("booking_id = ? AND service_id = ?", booking.ID, service.ID).
		First(&existingItem).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			response.ServerError(c)
			return
		}
		newItem := services.SnapshotService(service, quantity)
		newItem.BookingID = booking.ID
		if err := config.DB.Create(&newItem).Error; err != nil {
			response.ServerError(c)
			return
		}
	} else {
		existingItem.Quantity += quantity
		if err := config.DB.Save(&existingItem).Error; err != nil {
			response.ServerError(c)
			return
		}
	}

	booking.TotalAmount += service.Price * float64(quantity)
	if err := config.DB.Model(&booking).Update("total_amount", booking.TotalAmount).Error; err != nil {
		response.ServerError(c)
		return
	}

	if err := config.DB.Preload("Room.RoomType").
		Preload("Customer").
		Preload("Services").
		First(&booking, booking.ID).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateBookingCaches(booking.CustomerID)

	response.Success(c, convertToBookingResponse(booking))
}

func UpdateBookingServiceStatus(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		response.Unauthorized(c)
		return
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	currentUserID, currentUserRole, err := services.GetUserIDFromToken(tokenString)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	itemID := c.Param("id")

	var item models.BookingService
	if err := config.DB.First(&item, itemID).Error; err != nil {
		response.NotFound(c)
		return
	}

	// Nhân viên dịch vụ chỉ phục vụ được dịch vụ thuộc loại của mình
	if currentUserRole == constants.RoleServiceStaff {
		var staff models.User
		if err := config.DB.First(&staff, currentUserID).Error; err != nil {
			response.ServerError(c)
			return
		}

		var service models.Service
		if err := config.DB.First(&service, item.ServiceID).Error; err != nil {
			response.ServerError(c)
			return
		}

		if staff.ServiceTypeID == nil || *staff.ServiceTypeID != service.ServiceTypeID {
			response.Forbidden(c)
			return
		}
	}

	if err := models.ServeBookingService(&item); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Save(&item).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateBookingCaches(currentUserID)

	response.Success(c, gin.H{"message": "Dịch vụ đã được phục vụ"})
}

func GetBookingServices(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		response.Unauthorized(c)
		return
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	currentUserID, currentUserRole, err := services.GetUserIDFromToken(tokenString)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	pageStr := c.Query("page")
	limitStr := c.Query("limit")
	statusFilter := c.Query("status")
	serviceTypeStr := c.Query("serviceTypeId")

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

	baseTx := config.DB.Model(&models.BookingService{}).
		Joins("JOIN services ON services.id = booking_services.service_id").
		Joins("JOIN bookings ON bookings.id = booking_services.booking_id")

	// Nhân viên dịch vụ chỉ thấy dịch vụ thuộc loại của mình
	if currentUserRole == constants.RoleServiceStaff {
		var staff models.User
		if err := config.DB.First(&staff, currentUserID).Error; err != nil {
			response.ServerError(c)
			return
		}
		if staff.ServiceTypeID == nil {
			response.Forbidden(c)
			return
		}
		baseTx = baseTx.Where("services.service_type_id = ?", *staff.ServiceTypeID)
	} else if serviceTypeStr != "" {
		if serviceTypeID, err := strconv.Atoi(serviceTypeStr); err == nil {
			baseTx = baseTx.Where("services.service_type_id = ?", serviceTypeID)
		}
	}

	if statusFilter != "" {
		if parsedStatus, err := strconv.Atoi(statusFilter); err == nil {
			baseTx = baseTx.Where("booking_services.status = ?", parsedStatus)
		}
	}

	var total int64
	if err := baseTx.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var items []models.BookingService
	if err := baseTx.Select("booking_services.*").
		Order("booking_services.created_at DESC").
		Offset(page * limit).
		Limit(limit).
		Find(&items).Error; err != nil {
		response.ServerError(c)
		return
	}

	// Nạp các booking của trang hiện tại một lượt thay vì từng dòng
	bookingIDs := make([]uint, 0, len(items))
	seen := make(map[uint]bool, len(items))
	for _, item := range items {
		if !seen[item.BookingID] {
			seen[item.BookingID] = true
			bookingIDs = append(bookingIDs, item.BookingID)
		}
	}

	bookingByID := make(map[uint]models.Booking, len(bookingIDs))
	if len(bookingIDs) > 0 {
		var bookings []models.Booking
		if err := config.DB.Preload("Room").Preload("Customer").
			Where("id IN ?", bookingIDs).
			Find(&bookings).Error; err != nil {
			response.ServerError(c)
			return
		}
		for _, b := range bookings {
			bookingByID[b.ID] = b
		}
	}

	response.SuccessWithPagination(c, flattenBookingServices(items, bookingByID), page, limit, int(total))
}

// flattenBookingServices gắn ngữ cảnh phòng và khách vào từng dòng dịch vụ;
// dòng mồ côi (booking đã mất) bị bỏ qua
func flattenBookingServices(items []models.BookingService, bookingByID map[uint]models.Booking) []dto.FlatBookingServiceResponse {
	itemResponses := make([]dto.FlatBookingServiceResponse, 0, len(items))
	for _, item := range items {
		booking, ok := bookingByID[item.BookingID]
		if !ok {
			continue
		}

		itemResponses = append(itemResponses, dto.FlatBookingServiceResponse{
			ID:           item.ID,
			BookingID:    item.BookingID,
			RoomNumber:   booking.Room.RoomNumber,
			CustomerName: booking.Customer.Name,
			ServiceID:    item.ServiceID,
			Name:         item.Name,
			Price:        item.Price,
			Quantity:     item.Quantity,
			Status:       item.Status,
			CreatedAt:    item.CreatedAt,
		})
	}
	return itemResponses
}
