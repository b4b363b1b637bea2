package validator

import (
	"regexp"
	"time"

	"resort/errors"
	"resort/models"
)

const dateLayout = "02/01/2006"

// ValidateUser validate thông tin user
func ValidateUser(user *models.User) error {
	if user.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email không được để trống", nil)
	}

	if !isValidEmail(user.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}

	if user.Password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Mật khẩu không được để trống", nil)
	}

	if len(user.Password) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "Mật khẩu phải có ít nhất 6 ký tự", nil)
	}

	if err := user.ValidateRole(); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidRole, err.Error(), nil)
	}

	return nil
}

// ValidateBookingDates kiểm tra cặp ngày nhận/trả phòng
func ValidateBookingDates(checkInStr, checkOutStr string) error {
	checkIn, err := time.Parse(dateLayout, checkInStr)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày nhận phòng không hợp lệ", err)
	}

	checkOut, err := time.Parse(dateLayout, checkOutStr)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày trả phòng không hợp lệ", err)
	}

	if !checkIn.Before(checkOut) {
		return errors.NewAppError(errors.ErrCodeInvalidDates, "Ngày trả phòng phải sau ngày nhận phòng", nil)
	}

	return nil
}

// ValidatePromotion kiểm tra thông tin chương trình khuyến mãi
func ValidatePromotion(promotion *models.Promotion) error {
	if promotion.PromotionName == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên khuyến mãi không được để trống", nil)
	}

	if promotion.Discount < 0 || promotion.Discount > 100 {
		return errors.NewAppError(errors.ErrCodeValidation, "Mức giảm giá phải nằm trong khoảng từ 0 đến 100", nil)
	}

	fromDate, err := time.Parse(dateLayout, promotion.FromDate)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Định dạng ngày bắt đầu không hợp lệ", err)
	}

	toDate, err := time.Parse(dateLayout, promotion.ToDate)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Định dạng ngày kết thúc không hợp lệ", err)
	}

	if !toDate.After(fromDate) {
		return errors.NewAppError(errors.ErrCodeValidation, "Ngày kết thúc phải sau ngày bắt đầu", nil)
	}

	if promotion.Quantity < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Số lượng khuyến mãi không được âm", nil)
	}

	return nil
}

// ValidateRoom kiểm tra số phòng và giá so với loại phòng
func ValidateRoom(room *models.Room, roomType *models.RoomType) error {
	if err := room.ValidateRoomNumber(); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, err.Error(), nil)
	}

	if room.PricePerNight < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Giá phòng không được âm", nil)
	}

	if err := roomType.ValidatePriceBand(room.PricePerNight); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, err.Error(), nil)
	}

	return nil
}

// ValidateService kiểm tra thông tin dịch vụ
func ValidateService(service *models.Service) error {
	if service.ServiceName == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên dịch vụ không được để trống", nil)
	}

	if service.ServiceTypeID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Loại dịch vụ không được để trống", nil)
	}

	if err := service.ValidatePrice(); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, err.Error(), nil)
	}

	return nil
}

// ValidateEmail kiểm tra email hợp lệ
func ValidateEmail(email string) error {
	if !isValidEmail(email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}
	return nil
}

// ValidatePassword kiểm tra mật khẩu hợp lệ
func ValidatePassword(password string) error {
	if len(password) < 6 {
		return errors.NewAppError(errors.ErrCodeInvalidPassword, "Mật khẩu phải có ít nhất 6 ký tự", nil)
	}
	return nil
}

// isValidEmail kiểm tra email hợp lệ
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}
