package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	appErrors "resort/errors"
	"resort/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestRespondInvoiceError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name         string
		err          error
		expectedCode int
		expectedMess string
	}{
		{
			name:         "cổng thanh toán lỗi vẫn trả BadRequest",
			err:          appErrors.NewAppError(appErrors.ErrCodePaymentFailed, "Không tạo được link thanh toán", errors.New("timeout")),
			expectedCode: http.StatusBadRequest,
			expectedMess: "Không tạo được link thanh toán",
		},
		{
			name:         "lỗi validate trả BadRequest kèm message",
			err:          appErrors.NewAppError(appErrors.ErrCodeInvalidAmount, "Số tiền phải lớn hơn 0", nil),
			expectedCode: http.StatusBadRequest,
			expectedMess: "Số tiền phải lớn hơn 0",
		},
		{
			name:         "lỗi không xác định trả ServerError",
			err:          errors.New("connection reset"),
			expectedCode: http.StatusInternalServerError,
			expectedMess: "Lỗi server",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			respondInvoiceError(c, tc.err)

			require.Equal(t, tc.expectedCode, w.Code)

			var body response.Response
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			require.Equal(t, tc.expectedMess, body.Mess)
		})
	}
}
