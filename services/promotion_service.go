package services

import (
	"time"

	"resort/constants"
	"resort/errors"
	"resort/models"

	"gorm.io/gorm"
)

// PromotionActiveForDate kiểm tra chương trình còn hiệu lực tại một thời điểm
func PromotionActiveForDate(promotion *models.Promotion, now time.Time) bool {
	if promotion.Status != constants.PromotionStatusActive {
		return false
	}
	fromDate, err := time.Parse(DateLayout, promotion.FromDate)
	if err != nil {
		return false
	}
	toDate, err := time.Parse(DateLayout, promotion.ToDate)
	if err != nil {
		return false
	}
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return !day.Before(fromDate) && !day.After(toDate)
}

// CanRedeem kiểm tra một dòng sổ có còn lượt dùng không. Dòng được cấp sẵn
// (UsageCount = 0) là "đủ điều kiện", chưa phải "đã dùng".
func CanRedeem(entry *models.UserPromotion, quantityPerUser int) bool {
	if quantityPerUser <= 0 {
		quantityPerUser = 1
	}
	return entry.UsageCount < quantityPerUser
}

// UsePromotion ghi nhận một lượt dùng khuyến mãi của người dùng.
// Hai lần ghi (sổ người dùng + số lượng của chương trình) không nằm trong
// transaction, giữ nguyên hành vi của hệ thống gốc.
func UsePromotion(db *gorm.DB, userID, promotionID uint) (*models.Promotion, error) {
	if userID == 0 || promotionID == 0 {
		return nil, errors.NewAppError(errors.ErrCodeValidation, "ID người dùng hoặc khuyến mãi không hợp lệ", nil)
	}

	var promotion models.Promotion
	if err := db.First(&promotion, promotionID).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBNotFound, "Không tìm thấy khuyến mãi", err)
	}

	if promotion.Quantity <= 0 {
		return nil, errors.NewAppError(errors.ErrCodePromotionEmpty, "Khuyến mãi đã hết lượt sử dụng", nil)
	}

	if !PromotionActiveForDate(&promotion, time.Now()) {
		return nil, errors.NewAppError(errors.ErrCodeValidation, "Khuyến mãi không còn hiệu lực", nil)
	}

	var entry models.UserPromotion
	err := db.Where("user_id = ? AND promotion_id = ?", userID, promotionID).First(&entry).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return nil, err
		}
		// Chưa có dòng sổ thì tạo mới cho người dùng này
		entry = models.UserPromotion{
			UserID:        userID,
			PromotionID:   promotionID,
			PromotionName: promotion.PromotionName,
			Discount:      promotion.Discount,
		}
	}

	if !CanRedeem(&entry, promotion.QuantityPerUser) {
		return nil, errors.NewAppError(errors.ErrCodePromotionUsed, "Bạn đã sử dụng khuyến mãi này", nil)
	}

	now := time.Now()
	entry.UsageCount++
	entry.RedeemedAt = &now
	if err := db.Save(&entry).Error; err != nil {
		return nil, err
	}

	promotion.Quantity--
	if err := db.Model(&promotion).Update("quantity", promotion.Quantity).Error; err != nil {
		return nil, err
	}

	return &promotion, nil
}

// SeedPromotionForUsers cấp sẵn dòng sổ (UsageCount = 0) cho mọi người dùng
// role user đang hoạt động khi tạo chương trình mới
func SeedPromotionForUsers(db *gorm.DB, promotion *models.Promotion) error {
	var users []models.User
	if err := db.Where("role = ? AND is_active = ?", constants.RoleUser, true).Find(&users).Error; err != nil {
		return err
	}

	for _, user := range users {
		var count int64
		if err := db.Model(&models.UserPromotion{}).
			Where("user_id = ? AND promotion_id = ?", user.ID, promotion.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		entry := models.UserPromotion{
			UserID:        user.ID,
			PromotionID:   promotion.ID,
			PromotionName: promotion.PromotionName,
			Discount:      promotion.Discount,
		}
		if err := db.Create(&entry).Error; err != nil {
			return err
		}
	}
	return nil
}

// DeactivateExpiredPromotions tắt các chương trình đã quá hạn, chạy theo cron
func DeactivateExpiredPromotions(db *gorm.DB, now time.Time) (int, error) {
	var promotions []models.Promotion
	if err := db.Where("status = ?", constants.PromotionStatusActive).Find(&promotions).Error; err != nil {
		return 0, err
	}

	count := 0
	for _, p := range promotions {
		toDate, err := time.Parse(DateLayout, p.ToDate)
		if err != nil {
			continue
		}
		if now.After(toDate.AddDate(0, 0, 1)) {
			if err := db.Model(&p).Update("status", constants.PromotionStatusInactive).Error; err != nil {
				return count, err
			}
			count++
		}
	}
	return count, nil
}
