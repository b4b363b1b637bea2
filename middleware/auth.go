package middleware

import (
	"strings"

	"resort/response"
	"resort/services"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware chặn request không có access token hợp lệ.
// Truyền danh sách role để giới hạn thêm; bỏ trống thì chỉ cần đăng nhập.
func AuthMiddleware(roles ...int) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		userID, userRole, err := services.GetUserIDFromToken(tokenString)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		if len(roles) > 0 && !roleAllowed(userRole, roles) {
			response.Forbidden(c)
			c.Abort()
			return
		}

		c.Set("userID", userID)
		c.Set("userRole", userRole)
		c.Next()
	}
}

func roleAllowed(role int, allowed []int) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}
