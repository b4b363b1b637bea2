package dto

import "time"

// CreateInvoiceRequest là DTO cho request tạo hóa đơn thủ công
type CreateInvoiceRequest struct {
	UserID      uint    `json:"userId" binding:"required"`
	BookingID   *uint   `json:"bookingId,omitempty"`
	Amount      float64 `json:"amount" binding:"required"`
	Description string  `json:"description"`
	ReturnURL   string  `json:"returnUrl"`
	CancelURL   string  `json:"cancelUrl"`
}

// PaymentCallbackRequest là DTO cho callback từ cổng thanh toán
type PaymentCallbackRequest struct {
	OrderCode int64  `json:"orderCode" binding:"required"`
	Status    string `json:"status" binding:"required"`
}

// InvoiceUserResponse là thông tin người dùng trên hóa đơn
type InvoiceUserResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// InvoiceResponse là DTO cho response của hóa đơn
type InvoiceResponse struct {
	ID          uint                `json:"id"`
	InvoiceCode string              `json:"invoiceCode"`
	OrderCode   int64               `json:"orderCode"`
	BookingID   *uint               `json:"bookingId,omitempty"`
	Amount      float64             `json:"amount"`
	Description string              `json:"description"`
	Status      string              `json:"status"`
	CheckoutURL string              `json:"checkoutUrl"`
	IssueDate   time.Time           `json:"issueDate"`
	DueDate     time.Time           `json:"dueDate"`
	CreatedAt   string              `json:"createdAt"`
	UpdatedAt   string              `json:"updatedAt"`
	User        InvoiceUserResponse `json:"user"`
}
