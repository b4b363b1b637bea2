package services

import (
	"context"
	"time"

	"resort/constants"
	"resort/errors"
	"resort/models"

	"gorm.io/gorm"
)

// InvoiceDueDays là số ngày được phép thanh toán sau khi xuất hóa đơn
const InvoiceDueDays = 3

// CreateInvoiceInput là dữ liệu tạo hóa đơn
type CreateInvoiceInput struct {
	UserID      uint
	BookingID   *uint
	Amount      float64
	Description string
	ReturnURL   string
	CancelURL   string
}

// CreateInvoice tạo hóa đơn PENDING rồi gọi cổng thanh toán lấy link.
// Nếu cổng thanh toán lỗi, hóa đơn vẫn nằm ở PENDING không có link;
// cron sẽ đối soát lại sau.
func CreateInvoice(ctx context.Context, db *gorm.DB, provider PaymentProvider, input CreateInvoiceInput) (*models.Invoice, error) {
	if input.Amount <= 0 {
		return nil, errors.NewAppError(errors.ErrCodeInvalidAmount, "Số tiền phải lớn hơn 0", nil)
	}

	orderCode, err := GenerateOrderCode()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	invoice := models.Invoice{
		OrderCode:   orderCode,
		BookingID:   input.BookingID,
		UserID:      input.UserID,
		Amount:      input.Amount,
		Description: input.Description,
		Status:      constants.InvoiceStatusPending,
		ReturnURL:   input.ReturnURL,
		CancelURL:   input.CancelURL,
		IssueDate:   now,
		DueDate:     now.AddDate(0, 0, InvoiceDueDays),
	}

	if err := db.Create(&invoice).Error; err != nil {
		return nil, err
	}

	link, err := provider.CreatePaymentLink(ctx, PaymentLinkRequest{
		OrderCode:   invoice.OrderCode,
		Amount:      invoice.Amount,
		Description: invoice.Description,
		ReturnURL:   invoice.ReturnURL,
		CancelURL:   invoice.CancelURL,
	})
	if err != nil {
		return &invoice, errors.NewAppError(errors.ErrCodePaymentFailed, "Không tạo được link thanh toán", err)
	}

	invoice.CheckoutURL = link.CheckoutURL
	if err := db.Save(&invoice).Error; err != nil {
		return nil, err
	}

	return &invoice, nil
}

// ReconcileInvoiceStatus hỏi cổng thanh toán và cập nhật trạng thái hóa đơn nếu thay đổi
func ReconcileInvoiceStatus(ctx context.Context, db *gorm.DB, provider PaymentProvider, invoice *models.Invoice) error {
	info, err := provider.GetPaymentLinkInfo(ctx, invoice.OrderCode)
	if err != nil {
		return err
	}
	if info.Status == invoice.Status {
		return nil
	}

	invoice.Status = info.Status
	return db.Model(invoice).Update("status", info.Status).Error
}

// UpdateInvoiceStatusByOrderCode cập nhật trạng thái theo callback của cổng thanh toán
func UpdateInvoiceStatusByOrderCode(db *gorm.DB, orderCode int64, status string) (*models.Invoice, error) {
	var invoice models.Invoice
	if err := db.Where("order_code = ?", orderCode).First(&invoice).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBNotFound, "Không tìm thấy hóa đơn", err)
	}

	switch status {
	case constants.InvoiceStatusPaid, constants.InvoiceStatusCancelled, constants.InvoiceStatusExpired:
	default:
		return nil, errors.NewAppError(errors.ErrCodeValidation, "Trạng thái thanh toán không hợp lệ", nil)
	}

	invoice.Status = status
	if err := db.Model(&invoice).Update("status", status).Error; err != nil {
		return nil, err
	}
	return &invoice, nil
}

// ReconcilePendingInvoices đối soát các hóa đơn PENDING quá 1 giờ, chạy theo cron
func ReconcilePendingInvoices(ctx context.Context, db *gorm.DB, provider PaymentProvider, now time.Time) (int, error) {
	var invoices []models.Invoice
	cutoff := now.Add(-1 * time.Hour)
	if err := db.Where("status = ? AND created_at < ?", constants.InvoiceStatusPending, cutoff).Find(&invoices).Error; err != nil {
		return 0, err
	}

	updated := 0
	for i := range invoices {
		before := invoices[i].Status
		if err := ReconcileInvoiceStatus(ctx, db, provider, &invoices[i]); err != nil {
			continue
		}
		if invoices[i].Status != before {
			updated++
		}
	}
	return updated, nil
}
