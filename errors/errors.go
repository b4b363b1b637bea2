package errors

import (
	"errors"
	"fmt"
)

// ErrorCode định nghĩa mã lỗi
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized    ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken    ErrorCode = "INVALID_TOKEN"
	ErrCodeMissingToken    ErrorCode = "MISSING_TOKEN"
	ErrCodeInvalidPassword ErrorCode = "INVALID_PASSWORD"
	ErrCodeUserNotFound    ErrorCode = "USER_NOT_FOUND"
	ErrCodeUserExists      ErrorCode = "USER_EXISTS"
	ErrCodeInvalidEmail    ErrorCode = "INVALID_EMAIL"
	ErrCodeInvalidRole     ErrorCode = "INVALID_ROLE"

	// Booking errors
	ErrCodeInvalidBookingID ErrorCode = "INVALID_BOOKING_ID"
	ErrCodeInvalidDates     ErrorCode = "INVALID_DATES"
	ErrCodeInvalidStatus    ErrorCode = "INVALID_STATUS"

	// Promotion errors
	ErrCodePromotionUsed  ErrorCode = "PROMOTION_USED"
	ErrCodePromotionEmpty ErrorCode = "PROMOTION_EMPTY"

	// Payment errors
	ErrCodeInvalidAmount ErrorCode = "INVALID_AMOUNT"
	ErrCodePaymentFailed ErrorCode = "PAYMENT_FAILED"

	// Database errors
	ErrCodeDBError     ErrorCode = "DB_ERROR"
	ErrCodeDBNotFound  ErrorCode = "DB_NOT_FOUND"
	ErrCodeDBDuplicate ErrorCode = "DB_DUPLICATE"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
)

// AppError định nghĩa lỗi của ứng dụng
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// NewAppError tạo một AppError mới
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAppError kiểm tra xem error có phải là AppError không
func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

// GetAppError lấy AppError từ error
func GetAppError(err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return nil
}

var (
	// User errors
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrInvalidPassword   = errors.New("invalid password")
	ErrUnauthorized      = errors.New("unauthorized")

	// Booking errors
	ErrBookingNotFound   = errors.New("booking not found")
	ErrBookingNotPending = errors.New("booking not pending")
	ErrBookingCancelled  = errors.New("booking already cancelled")
	ErrBookingCheckedOut = errors.New("booking already checked out")

	// Room errors
	ErrRoomNotFound     = errors.New("room not found")
	ErrRoomNotAvailable = errors.New("room not available")

	// Promotion errors
	ErrPromotionNotFound = errors.New("promotion not found")
	ErrPromotionUsed     = errors.New("promotion already used")
	ErrPromotionEmpty    = errors.New("promotion out of stock")

	// Payment errors
	ErrPaymentFailed = errors.New("payment failed")
	ErrInvalidAmount = errors.New("invalid amount")
)
