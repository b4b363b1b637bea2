package services

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"os"
	"time"
)

// PaymentLinkRequest là dữ liệu gửi sang cổng thanh toán khi tạo link
type PaymentLinkRequest struct {
	OrderCode   int64   `json:"orderCode"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	ReturnURL   string  `json:"returnUrl"`
	CancelURL   string  `json:"cancelUrl"`
}

// PaymentLink là kết quả tạo link thanh toán
type PaymentLink struct {
	OrderCode   int64  `json:"orderCode"`
	CheckoutURL string `json:"checkoutUrl"`
	Status      string `json:"status"`
}

// PaymentLinkInfo là trạng thái hiện tại của một link thanh toán
type PaymentLinkInfo struct {
	OrderCode int64   `json:"orderCode"`
	Amount    float64 `json:"amount"`
	Status    string  `json:"status"` // PENDING | PAID | CANCELLED | EXPIRED
}

// PaymentProvider trừu tượng hóa cổng thanh toán để có thể fake trong test
type PaymentProvider interface {
	CreatePaymentLink(ctx context.Context, req PaymentLinkRequest) (*PaymentLink, error)
	GetPaymentLinkInfo(ctx context.Context, orderCode int64) (*PaymentLinkInfo, error)
}

// HTTPPaymentProvider gọi cổng thanh toán qua REST API
type HTTPPaymentProvider struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewHTTPPaymentProvider đọc cấu hình cổng thanh toán từ biến môi trường
func NewHTTPPaymentProvider() *HTTPPaymentProvider {
	return &HTTPPaymentProvider{
		baseURL: os.Getenv("PAYMENT_BASE_URL"),
		apiKey:  os.Getenv("PAYMENT_API_KEY"),
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

type paymentEnvelope struct {
	Code int             `json:"code"`
	Desc string          `json:"desc"`
	Data json.RawMessage `json:"data"`
}

func (p *HTTPPaymentProvider) CreatePaymentLink(ctx context.Context, req PaymentLinkRequest) (*PaymentLink, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/v2/payment-requests", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", p.apiKey)

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cổng thanh toán trả về status %d", resp.StatusCode)
	}

	var envelope paymentEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, err
	}
	if envelope.Code != 0 {
		return nil, fmt.Errorf("cổng thanh toán từ chối: %s", envelope.Desc)
	}

	var link PaymentLink
	if err := json.Unmarshal(envelope.Data, &link); err != nil {
		return nil, err
	}
	return &link, nil
}

func (p *HTTPPaymentProvider) GetPaymentLinkInfo(ctx context.Context, orderCode int64) (*PaymentLinkInfo, error) {
	url := fmt.Sprintf("%s/v2/payment-requests/%d", p.baseURL, orderCode)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("x-api-key", p.apiKey)

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cổng thanh toán trả về status %d", resp.StatusCode)
	}

	var envelope paymentEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, err
	}
	if envelope.Code != 0 {
		return nil, fmt.Errorf("cổng thanh toán từ chối: %s", envelope.Desc)
	}

	var info PaymentLinkInfo
	if err := json.Unmarshal(envelope.Data, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// GenerateOrderCode sinh mã đơn ngẫu nhiên trong khoảng an toàn của cổng thanh toán
func GenerateOrderCode() (int64, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(9_000_000_000))
	if err != nil {
		return 0, err
	}
	return n.Int64() + 1_000_000_000, nil
}
