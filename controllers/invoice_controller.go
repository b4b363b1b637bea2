package controllers

import (
	"context"
	"log"
	"sort"
	"strconv"
	"time"

	"resort/config"
	"resort/constants"
	"resort/dto"
	appErrors "resort/errors"
	"resort/models"
	"resort/response"
	"resort/services"

	"github.com/gin-gonic/gin"
)

func convertToInvoiceResponse(invoice models.Invoice) dto.InvoiceResponse {
	return dto.InvoiceResponse{
		ID:          invoice.ID,
		InvoiceCode: invoice.InvoiceCode,
		OrderCode:   invoice.OrderCode,
		BookingID:   invoice.BookingID,
		Amount:      invoice.Amount,
		Description: invoice.Description,
		Status:      invoice.Status,
		CheckoutURL: invoice.CheckoutURL,
		IssueDate:   invoice.IssueDate,
		DueDate:     invoice.DueDate,
		CreatedAt:   invoice.CreatedAt.Format("02/01/2006 15:04:05"),
		UpdatedAt:   invoice.UpdatedAt.Format("02/01/2006 15:04:05"),
		User: dto.InvoiceUserResponse{
			ID:    invoice.User.ID,
			Name:  invoice.User.Name,
			Email: invoice.User.Email,
		},
	}
}

func GetInvoices(c *gin.Context) {
	cacheKey := "invoices:all"
	rdb, err := config.ConnectRedis()
	if err != nil {
		response.ServerError(c)
		return
	}

	var allInvoices []models.Invoice

	if err := services.GetFromRedis(config.Ctx, rdb, cacheKey, &allInvoices); err != nil || len(allInvoices) == 0 {
		if err := config.DB.Model(&models.Invoice{}).
			Preload("User").
			Find(&allInvoices).Error; err != nil {
			response.ServerError(c)
			return
		}

		if err := services.SetToRedis(config.Ctx, rdb, cacheKey, allInvoices, 10*time.Minute); err != nil {
			log.Printf("Lỗi khi lưu danh sách hóa đơn vào Redis: %v", err)
		}
	}

	pageStr := c.Query("page")
	limitStr := c.Query("limit")
	statusFilter := c.Query("status")
	invoiceCodeFilter := c.Query("invoiceCode")
	userIDStr := c.Query("userId")

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

	filteredInvoices := make([]models.Invoice, 0)
	for _, invoice := range allInvoices {
		if statusFilter != "" && invoice.Status != statusFilter {
			continue
		}
		if invoiceCodeFilter != "" && invoice.InvoiceCode != invoiceCodeFilter {
			continue
		}
		if userIDStr != "" {
			parsedUserID, err := strconv.Atoi(userIDStr)
			if err == nil && invoice.UserID != uint(parsedUserID) {
				continue
			}
		}
		filteredInvoices = append(filteredInvoices, invoice)
	}

	totalFiltered := len(filteredInvoices)

	sort.Slice(filteredInvoices, func(i, j int) bool {
		return filteredInvoices[i].UpdatedAt.After(filteredInvoices[j].UpdatedAt)
	})

	start := page * limit
	end := start + limit
	if start >= totalFiltered {
		filteredInvoices = []models.Invoice{}
	} else if end > totalFiltered {
		filteredInvoices = filteredInvoices[start:]
	} else {
		filteredInvoices = filteredInvoices[start:end]
	}

	invoiceResponses := make([]dto.InvoiceResponse, 0, len(filteredInvoices))
	for _, invoice := range filteredInvoices {
		invoiceResponses = append(invoiceResponses, convertToInvoiceResponse(invoice))
	}

	response.SuccessWithPagination(c, invoiceResponses, page, limit, totalFiltered)
}

// GetDetailInvoice trả về chi tiết hóa đơn, hóa đơn PENDING được đối soát lại
// với cổng thanh toán trước khi trả về
func GetDetailInvoice(c *gin.Context) {
	invoiceID := c.Param("id")

	var invoice models.Invoice
	if err := config.DB.Preload("User").
		Where("id = ?", invoiceID).
		First(&invoice).Error; err != nil {
		response.NotFound(c)
		return
	}

	if invoice.Status == constants.InvoiceStatusPending && paymentProvider != nil {
		if err := services.ReconcileInvoiceStatus(context.Background(), config.DB, paymentProvider, &invoice); err != nil {
			log.Printf("Lỗi đối soát hóa đơn %s: %v", invoice.InvoiceCode, err)
		}
	}

	response.Success(c, convertToInvoiceResponse(invoice))
}

// GetInvoicesByUser trả về hóa đơn của người dùng hiện tại
func GetInvoicesByUser(c *gin.Context) {
	userIDValue, exists := c.Get("userID")
	if !exists {
		response.Unauthorized(c)
		return
	}
	currentUserID := userIDValue.(uint)

	var invoices []models.Invoice
	if err := config.DB.Preload("User").
		Where("user_id = ?", currentUserID).
		Order("created_at DESC").
		Find(&invoices).Error; err != nil {
		response.ServerError(c)
		return
	}

	invoiceResponses := make([]dto.InvoiceResponse, 0, len(invoices))
	for _, invoice := range invoices {
		invoiceResponses = append(invoiceResponses, convertToInvoiceResponse(invoice))
	}

	response.Success(c, invoiceResponses)
}

func invalidateInvoiceCaches() {
	rdb, err := config.ConnectRedis()
	if err != nil {
		return
	}
	_ = services.DeleteKeysByPattern(config.Ctx, rdb, "invoices:*")
}

// respondInvoiceError dịch lỗi từ tầng service sang response. Lỗi cổng thanh
// toán cũng trả BadRequest: hóa đơn đã ở PENDING, người gọi cần biết là chưa có link.
func respondInvoiceError(c *gin.Context, err error) {
	if appErr := appErrors.GetAppError(err); appErr != nil {
		response.BadRequest(c, appErr.Message)
		return
	}
	response.ServerError(c)
}

// CreateInvoice tạo hóa đơn thủ công kèm link thanh toán
func CreateInvoice(c *gin.Context) {
	var request dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var user models.User
	if err := config.DB.First(&user, request.UserID).Error; err != nil {
		response.NotFound(c)
		return
	}

	invoice, err := services.CreateInvoice(context.Background(), config.DB, paymentProvider, services.CreateInvoiceInput{
		UserID:      request.UserID,
		BookingID:   request.BookingID,
		Amount:      request.Amount,
		Description: request.Description,
		ReturnURL:   request.ReturnURL,
		CancelURL:   request.CancelURL,
	})
	if err != nil {
		if appErr := appErrors.GetAppError(err); appErr != nil && appErr.Code == appErrors.ErrCodePaymentFailed {
			// Hóa đơn đã nằm ở PENDING không có link, cron sẽ đối soát lại
			log.Printf("Không tạo được link thanh toán cho hóa đơn %s: %v", invoice.InvoiceCode, err)
			invalidateInvoiceCaches()
		}
		respondInvoiceError(c, err)
		return
	}

	invalidateInvoiceCaches()

	invoice.User = user
	response.Success(c, convertToInvoiceResponse(*invoice))
}

// PaymentCallback nhận trạng thái cuối cùng từ cổng thanh toán
func PaymentCallback(c *gin.Context) {
	var request dto.PaymentCallbackRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	invoice, err := services.UpdateInvoiceStatusByOrderCode(config.DB, request.OrderCode, request.Status)
	if err != nil {
		if appErr := appErrors.GetAppError(err); appErr != nil {
			if appErr.Code == appErrors.ErrCodeDBNotFound {
				response.NotFound(c)
				return
			}
			response.BadRequest(c, appErr.Message)
			return
		}
		response.ServerError(c)
		return
	}

	invalidateInvoiceCaches()

	response.Success(c, gin.H{
		"invoiceCode": invoice.InvoiceCode,
		"status":      invoice.Status,
	})
}
