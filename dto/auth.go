package dto

// RegisterRequest là DTO cho request đăng ký
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest là DTO cho request đăng nhập
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse là DTO cho response đăng nhập
type LoginResponse struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	User         UserResponse `json:"user"`
}

// RefreshTokenRequest là DTO cho request làm mới token
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// ForgetPasswordRequest là DTO cho request quên mật khẩu
type ForgetPasswordRequest struct {
	Email string `json:"email" binding:"required"`
}

// ResetPasswordRequest là DTO cho request đặt lại mật khẩu
type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

// GoogleAuthRequest là DTO cho request đăng nhập Google
type GoogleAuthRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}
