package controllers

import (
	"context"
	"errors"
	"log"
	"strings"

	"resort/config"
	"resort/constants"
	"resort/dto"
	"resort/models"
	"resort/response"
	"resort/services"
	"resort/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func convertToUserResponse(user models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:            user.ID,
		Name:          user.Name,
		Email:         user.Email,
		Avatar:        user.Avatar,
		Role:          user.Role,
		IsVerified:    user.IsVerified,
		IsActive:      user.IsActive,
		ServiceTypeID: user.ServiceTypeID,
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}
}

func issueTokenPair(user models.User) (string, string, error) {
	accessToken, err := services.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		return "", "", err
	}

	refreshToken, err := services.CreateOpaqueToken(config.DB, user.ID, constants.TokenTypeRefresh)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

func RegisterUser(c *gin.Context) {
	var input dto.RegisterRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	input.Email = strings.ToLower(input.Email)

	if err := validator.ValidateEmail(input.Email); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := validator.ValidatePassword(input.Password); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var existing models.User
	if err := config.DB.Where("email = ?", input.Email).First(&existing).Error; err == nil {
		response.BadRequest(c, "Email đã được đăng ký")
		return
	}

	hashed, err := services.HashPassword(input.Password)
	if err != nil {
		response.ServerError(c)
		return
	}

	user := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: hashed,
		IsActive: true,
		Role:     constants.RoleUser,
	}

	if err := config.DB.Create(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, convertToUserResponse(user))
}

func Login(c *gin.Context) {
	var input dto.LoginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	input.Email = strings.ToLower(input.Email)

	var user models.User
	if err := config.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		response.BadRequest(c, "Email hoặc mật khẩu không hợp lệ")
		return
	}

	if !user.IsActive {
		response.Forbidden(c)
		return
	}

	if err := services.CheckPassword(user.Password, input.Password); err != nil {
		response.BadRequest(c, "Email hoặc mật khẩu không hợp lệ")
		return
	}

	accessToken, refreshToken, err := issueTokenPair(user)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         convertToUserResponse(user),
	})
}

// RefreshToken đổi refresh token lấy cặp token mới, token cũ bị thu hồi
func RefreshToken(c *gin.Context) {
	var input dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	token, err := services.ConsumeToken(config.DB, input.RefreshToken, constants.TokenTypeRefresh)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	var user models.User
	if err := config.DB.First(&user, token.UserID).Error; err != nil {
		response.Unauthorized(c)
		return
	}

	if !user.IsActive {
		response.Forbidden(c)
		return
	}

	accessToken, refreshToken, err := issueTokenPair(user)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         convertToUserResponse(user),
	})
}

func Logout(c *gin.Context) {
	var input dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&input); err == nil && input.RefreshToken != "" {
		if _, err := services.ConsumeToken(config.DB, input.RefreshToken, constants.TokenTypeRefresh); err != nil {
			log.Printf("Lỗi thu hồi refresh token: %v", err)
		}
	}

	response.Success(c, nil)
}

// ForgetPassword cấp token đặt lại mật khẩu cho người dùng
func ForgetPassword(c *gin.Context) {
	var input dto.ForgetPasswordRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", strings.ToLower(input.Email)).First(&user).Error; err != nil {
		response.BadRequest(c, "Người dùng không tồn tại.")
		return
	}

	resetToken, err := services.CreateOpaqueToken(config.DB, user.ID, constants.TokenTypeResetPassword)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"resetToken": resetToken})
}

func ResetPassword(c *gin.Context) {
	var input dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidatePassword(input.NewPassword); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	token, err := services.ConsumeToken(config.DB, input.Token, constants.TokenTypeResetPassword)
	if err != nil {
		response.BadRequest(c, "Token không hợp lệ hoặc đã dùng")
		return
	}

	hashed, err := services.HashPassword(input.NewPassword)
	if err != nil {
		response.ServerError(c)
		return
	}

	if err := config.DB.Model(&models.User{}).
		Where("id = ?", token.UserID).
		Update("password", hashed).Error; err != nil {
		response.ServerError(c)
		return
	}

	// Thu hồi toàn bộ refresh token cũ sau khi đổi mật khẩu
	if err := config.DB.Where("user_id = ? AND type = ?", token.UserID, constants.TokenTypeRefresh).
		Delete(&models.Token{}).Error; err != nil {
		log.Printf("Lỗi thu hồi refresh token của user %d: %v", token.UserID, err)
	}

	response.Success(c, nil)
}

// AuthGoogle xử lý đăng nhập bằng tài khoản Google
func AuthGoogle(c *gin.Context) {
	var input dto.GoogleAuthRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	googleUser, err := services.VerifyGoogleIDToken(context.Background(), input.IDToken)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	if !googleUser.VerifiedEmail {
		response.BadRequest(c, "Email chưa được Google xác thực")
		return
	}

	var user models.User
	result := config.DB.Where("email = ?", googleUser.Email).First(&user)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		user = models.User{
			Name:       googleUser.Name,
			Email:      googleUser.Email,
			IsVerified: true,
			IsActive:   true,
			Role:       constants.RoleUser,
		}
		if googleUser.Picture != "" {
			user.Avatar = googleUser.Picture
		}
		if err := config.DB.Create(&user).Error; err != nil {
			response.ServerError(c)
			return
		}
	} else if result.Error != nil {
		response.ServerError(c)
		return
	}

	if !user.IsActive {
		response.Forbidden(c)
		return
	}

	accessToken, refreshToken, err := issueTokenPair(user)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         convertToUserResponse(user),
	})
}
