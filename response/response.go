package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response là khung JSON chung cho mọi endpoint
type Response struct {
	Code       int         `json:"code"`
	Mess       string      `json:"mess"`
	Data       interface{} `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination mô tả trang hiện tại của danh sách
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

func write(c *gin.Context, status, code int, mess string, data interface{}, p *Pagination) {
	c.JSON(status, Response{
		Code:       code,
		Mess:       mess,
		Data:       data,
		Pagination: p,
	})
}

// Success trả về 200 với dữ liệu
func Success(c *gin.Context, data interface{}) {
	write(c, http.StatusOK, 1, "Thành công", data, nil)
}

// SuccessWithPagination trả về 200 kèm thông tin phân trang
func SuccessWithPagination(c *gin.Context, data interface{}, page, limit, total int) {
	write(c, http.StatusOK, 1, "Thành công", data, &Pagination{
		Page:  page,
		Limit: limit,
		Total: total,
	})
}

// Error trả về 400 với mã lỗi nghiệp vụ tùy ý
func Error(c *gin.Context, code int, message string) {
	write(c, http.StatusBadRequest, code, message, nil, nil)
}

// BadRequest trả về 400 với mã lỗi mặc định
func BadRequest(c *gin.Context, message string) {
	write(c, http.StatusBadRequest, 0, message, nil, nil)
}

// ServerError trả về 500
func ServerError(c *gin.Context) {
	write(c, http.StatusInternalServerError, 0, "Lỗi server", nil, nil)
}

// Unauthorized trả về 401
func Unauthorized(c *gin.Context) {
	write(c, http.StatusUnauthorized, 0, "Chưa xác thực", nil, nil)
}

// Forbidden trả về 403
func Forbidden(c *gin.Context) {
	write(c, http.StatusForbidden, 0, "Không có quyền truy cập", nil, nil)
}

// NotFound trả về 404
func NotFound(c *gin.Context) {
	write(c, http.StatusNotFound, 0, "Không tìm thấy", nil, nil)
}
