package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type Invoice struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	InvoiceCode string    `json:"invoiceCode" gorm:"unique;size:20"` // Mã hóa đơn duy nhất
	OrderCode   int64     `json:"orderCode" gorm:"uniqueIndex"`      // Mã đơn gửi sang cổng thanh toán
	BookingID   *uint     `json:"bookingId,omitempty"`
	UserID      uint      `json:"userId"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	Status      string    `json:"status" gorm:"default:PENDING"` // Trạng thái do cổng thanh toán báo về
	ReturnURL   string    `json:"returnUrl"`
	CancelURL   string    `json:"cancelUrl"`
	CheckoutURL string    `json:"checkoutUrl"` // Được gán sau khi tạo link thanh toán
	IssueDate   time.Time `json:"issueDate"`
	DueDate     time.Time `json:"dueDate"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Booking     *Booking  `json:"booking,omitempty" gorm:"foreignKey:BookingID"`
	User        User      `json:"user" gorm:"foreignKey:UserID"`
}

func (invoice *Invoice) BeforeCreate(tx *gorm.DB) (err error) {
	invoice.InvoiceCode = fmt.Sprintf("RST%d", time.Now().Unix())

	var count int64
	if err := tx.Model(&Invoice{}).Where("invoice_code = ?", invoice.InvoiceCode).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("InvoiceCode đã tồn tại, hãy thử lại")
	}
	return nil
}
