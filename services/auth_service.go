package services

import (
	"context"
	"os"
	"time"

	"resort/constants"
	"resort/errors"
	"resort/models"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"
	"gorm.io/gorm"
)

type UserInfo struct {
	UserId uint `json:"userid"`
	Role   int  `json:"role"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

// HashPassword băm mật khẩu bằng bcrypt
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword so sánh mật khẩu với bản băm
func CheckPassword(hashed, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidPassword, "Mật khẩu không đúng", err)
	}
	return nil
}

// GenerateAccessToken tạo JWT chứa userID và role, hết hạn sau 24h
func GenerateAccessToken(userID uint, role int) (string, error) {
	claims := Claims{
		UserInfo: UserInfo{
			UserId: userID,
			Role:   role,
		},
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(24 * time.Hour).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// CreateOpaqueToken tạo token dùng một lần (refresh hoặc đặt lại mật khẩu) và lưu vào DB
func CreateOpaqueToken(db *gorm.DB, userID uint, tokenType int) (string, error) {
	value := uuid.NewString()
	token := models.Token{
		UserID: userID,
		Type:   tokenType,
		Value:  value,
	}
	if err := db.Create(&token).Error; err != nil {
		return "", err
	}
	return value, nil
}

// ConsumeToken kiểm tra token tồn tại đúng loại rồi xóa ngay (dùng một lần)
func ConsumeToken(db *gorm.DB, value string, tokenType int) (*models.Token, error) {
	var token models.Token
	if err := db.Where("value = ? AND type = ?", value, tokenType).First(&token).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Token không hợp lệ hoặc đã dùng", err)
	}
	if err := db.Delete(&token).Error; err != nil {
		return nil, err
	}
	return &token, nil
}

// GoogleUser là thông tin lấy ra từ id token của Google
type GoogleUser struct {
	Name          string
	Email         string
	VerifiedEmail bool
	Picture       string
}

// VerifyGoogleIDToken xác thực id token của Google và trả về thông tin người dùng
func VerifyGoogleIDToken(ctx context.Context, token string) (*GoogleUser, error) {
	payload, err := idtoken.Validate(ctx, token, os.Getenv("GOOGLE_CLIENT_ID"))
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Google token không hợp lệ", err)
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Không tìm thấy email trong token", nil)
	}

	name, _ := payload.Claims["name"].(string)
	verified, _ := payload.Claims["email_verified"].(bool)
	picture, _ := payload.Claims["picture"].(string)

	return &GoogleUser{
		Name:          name,
		Email:         email,
		VerifiedEmail: verified,
		Picture:       picture,
	}, nil
}

// IsStaffRole kiểm tra role thuộc nhóm nhân viên
func IsStaffRole(role int) bool {
	return role == constants.RoleAdmin || role == constants.RoleReceptionist || role == constants.RoleServiceStaff
}
