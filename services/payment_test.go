package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestProvider(baseURL string) *HTTPPaymentProvider {
	return &HTTPPaymentProvider{
		baseURL: baseURL,
		apiKey:  "test-key",
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

func TestCreatePaymentLink(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v2/payment-requests", r.URL.Path)
		require.Equal(t, "test-key", r.Header.Get("x-api-key"))

		var req PaymentLinkRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, int64(1234567890), req.OrderCode)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"code": 0,
			"desc": "success",
			"data": PaymentLink{
				OrderCode:   req.OrderCode,
				CheckoutURL: "https://pay.example.com/1234567890",
				Status:      "PENDING",
			},
		})
	}))
	defer ts.Close()

	provider := newTestProvider(ts.URL)

	link, err := provider.CreatePaymentLink(context.Background(), PaymentLinkRequest{
		OrderCode:   1234567890,
		Amount:      250,
		Description: "Phòng 101 x4, Spa x2",
	})
	require.NoError(t, err)
	require.Equal(t, "https://pay.example.com/1234567890", link.CheckoutURL)
	require.Equal(t, "PENDING", link.Status)
}

func TestCreatePaymentLinkRejected(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"code": 231,
			"desc": "duplicate order code",
		})
	}))
	defer ts.Close()

	provider := newTestProvider(ts.URL)

	_, err := provider.CreatePaymentLink(context.Background(), PaymentLinkRequest{OrderCode: 1})
	require.Error(t, err)
}

func TestGetPaymentLinkInfo(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/v2/payment-requests/1234567890", r.URL.Path)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"code": 0,
			"desc": "success",
			"data": PaymentLinkInfo{
				OrderCode: 1234567890,
				Amount:    250,
				Status:    "PAID",
			},
		})
	}))
	defer ts.Close()

	provider := newTestProvider(ts.URL)

	info, err := provider.GetPaymentLinkInfo(context.Background(), 1234567890)
	require.NoError(t, err)
	require.Equal(t, "PAID", info.Status)
	require.Equal(t, 250.0, info.Amount)
}

func TestGetPaymentLinkInfoServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	provider := newTestProvider(ts.URL)

	_, err := provider.GetPaymentLinkInfo(context.Background(), 1)
	require.Error(t, err)
}

func TestGenerateOrderCode(t *testing.T) {
	for i := 0; i < 100; i++ {
		code, err := GenerateOrderCode()
		require.NoError(t, err)
		require.GreaterOrEqual(t, code, int64(1_000_000_000))
		require.Less(t, code, int64(10_000_000_000))
	}
}
