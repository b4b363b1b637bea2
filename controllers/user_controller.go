package controllers

import (
	"net/url"
	"sort"
	"strconv"
	"strings"

	"resort/config"
	"resort/constants"
	"resort/dto"
	"resort/models"
	"resort/response"
	"resort/services"
	"resort/validator"

	"github.com/gin-gonic/gin"
)

func GetUsers(c *gin.Context) {
	var allUsers []models.User
	if err := config.DB.Find(&allUsers).Error; err != nil {
		response.ServerError(c)
		return
	}

	pageStr := c.Query("page")
	limitStr := c.Query("limit")
	nameFilter := c.Query("name")
	roleFilter := c.Query("role")

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

	filteredUsers := make([]models.User, 0)
	for _, user := range allUsers {
		if nameFilter != "" {
			decodedName, _ := url.QueryUnescape(nameFilter)
			if !strings.Contains(strings.ToLower(user.Name), strings.ToLower(decodedName)) &&
				!strings.Contains(strings.ToLower(user.Email), strings.ToLower(decodedName)) {
				continue
			}
		}
		if roleFilter != "" {
			parsedRole, err := strconv.Atoi(roleFilter)
			if err == nil && user.Role != parsedRole {
				continue
			}
		}
		filteredUsers = append(filteredUsers, user)
	}

	totalFiltered := len(filteredUsers)

	sort.Slice(filteredUsers, func(i, j int) bool {
		return filteredUsers[i].UpdatedAt.After(filteredUsers[j].UpdatedAt)
	})

	start := page * limit
	end := start + limit
	if start >= totalFiltered {
		filteredUsers = []models.User{}
	} else if end > totalFiltered {
		filteredUsers = filteredUsers[start:]
	} else {
		filteredUsers = filteredUsers[start:end]
	}

	userResponses := make([]dto.UserResponse, 0, len(filteredUsers))
	for _, user := range filteredUsers {
		userResponses = append(userResponses, convertToUserResponse(user))
	}

	response.SuccessWithPagination(c, userResponses, page, limit, totalFiltered)
}

// CreateUser dùng cho admin tạo tài khoản nhân viên
func CreateUser(c *gin.Context) {
	var request dto.CreateUserRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	request.Email = strings.ToLower(request.Email)

	if err := validator.ValidateEmail(request.Email); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := validator.ValidatePassword(request.Password); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var existing models.User
	if err := config.DB.Where("email = ?", request.Email).First(&existing).Error; err == nil {
		response.BadRequest(c, "Email đã được đăng ký")
		return
	}

	hashed, err := services.HashPassword(request.Password)
	if err != nil {
		response.ServerError(c)
		return
	}

	user := models.User{
		Name:          request.Name,
		Email:         request.Email,
		Password:      hashed,
		Role:          request.Role,
		IsVerified:    true,
		IsActive:      true,
		ServiceTypeID: request.ServiceTypeID,
	}

	if err := user.ValidateRole(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if user.ServiceTypeID != nil {
		var serviceType models.ServiceType
		if err := config.DB.First(&serviceType, *user.ServiceTypeID).Error; err != nil {
			response.BadRequest(c, "Không tìm thấy loại dịch vụ")
			return
		}
	}

	if err := config.DB.Create(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, convertToUserResponse(user))
}

func GetUserByID(c *gin.Context) {
	userID := c.Param("id")

	var user models.User
	if err := config.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, convertToUserResponse(user))
}

func UpdateUser(c *gin.Context) {
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

	var request dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	// Khách chỉ sửa được hồ sơ của chính mình
	if currentUserRole != constants.RoleAdmin && request.ID != currentUserID {
		response.Forbidden(c)
		return
	}

	var user models.User
	if err := config.DB.First(&user, request.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if request.Name != "" {
		user.Name = request.Name
	}
	if request.Avatar != "" {
		user.Avatar = request.Avatar
	}
	if request.ServiceTypeID != nil {
		if currentUserRole != constants.RoleAdmin {
			response.Forbidden(c)
			return
		}
		var serviceType models.ServiceType
		if err := config.DB.First(&serviceType, *request.ServiceTypeID).Error; err != nil {
			response.BadRequest(c, "Không tìm thấy loại dịch vụ")
			return
		}
		user.ServiceTypeID = request.ServiceTypeID
	}

	if err := user.ValidateRole(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Save(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, convertToUserResponse(user))
}

// ChangeUserStatus khóa hoặc mở khóa tài khoản
func ChangeUserStatus(c *gin.Context) {
	var request dto.ChangeUserStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var user models.User
	if err := config.DB.First(&user, request.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := config.DB.Model(&user).Update("is_active", request.IsActive).Error; err != nil {
		response.ServerError(c)
		return
	}

	// Khóa tài khoản thì thu hồi luôn refresh token
	if !request.IsActive {
		if err := config.DB.Where("user_id = ? AND type = ?", user.ID, constants.TokenTypeRefresh).
			Delete(&models.Token{}).Error; err != nil {
			response.ServerError(c)
			return
		}
	}

	response.Success(c, gin.H{"message": "Trạng thái tài khoản đã được cập nhật"})
}

func GetProfile(c *gin.Context) {
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

	var user models.User
	if err := config.DB.Preload("ServiceType").First(&user, currentUserID).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, convertToUserResponse(user))
}
