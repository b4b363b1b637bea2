package routes

import (
	"context"
	"net/http"

	"resort/config"
	"resort/controllers"
	middlewares "resort/middleware"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"

	"github.com/redis/go-redis/v9"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, cld *cloudinary.Cloudinary, m *melody.Melody) {

	controllers.InitControllers(m)

	v1 := router.Group("/api/v1")

	v1.POST("/auth/register", controllers.RegisterUser)
	v1.POST("/auth/login", controllers.Login)
	v1.POST("/auth/refresh", controllers.RefreshToken)
	v1.DELETE("/auth/logout", controllers.Logout)
	v1.POST("/forgetPassword", controllers.ForgetPassword)
	v1.POST("/newPassword", controllers.ResetPassword)
	v1.POST("/auth/google", controllers.AuthGoogle)

	v1.GET("/users", middlewares.AuthMiddleware(1), controllers.GetUsers)
	v1.POST("/users", middlewares.AuthMiddleware(1), controllers.CreateUser)
	v1.GET("/users/:id", middlewares.AuthMiddleware(1, 3), controllers.GetUserByID)
	v1.PUT("/users", middlewares.AuthMiddleware(0, 1, 2, 3), controllers.UpdateUser)
	v1.PUT("/userStatus", middlewares.AuthMiddleware(1), controllers.ChangeUserStatus)
	v1.GET("/profile", controllers.GetProfile)

	v1.GET("/room", controllers.GetAllRooms)
	v1.GET("/roomFilter", controllers.FilterRooms)
	v1.GET("/room/:id", controllers.GetRoomDetail)
	v1.GET("/room/:id/availability", controllers.GetRoomAvailability)
	v1.POST("/room", middlewares.AuthMiddleware(1), controllers.CreateRoom)
	v1.PUT("/roomUpdate", middlewares.AuthMiddleware(1), controllers.UpdateRoom)
	v1.PUT("/roomStatus", middlewares.AuthMiddleware(1, 3), controllers.ChangeRoomStatus)

	v1.GET("/roomType", controllers.GetRoomTypes)
	v1.GET("/roomType/:id", controllers.GetRoomTypeDetail)
	v1.POST("/roomType", middlewares.AuthMiddleware(1), controllers.CreateRoomType)
	v1.PUT("/roomTypeUpdate", middlewares.AuthMiddleware(1), controllers.UpdateRoomType)

	v1.GET("/services", controllers.GetAllServices)
	v1.GET("/services/:id", controllers.GetServiceDetail)
	v1.POST("/services", middlewares.AuthMiddleware(1), controllers.CreateService)
	v1.PUT("/serviceUpdate", middlewares.AuthMiddleware(1), controllers.UpdateService)
	v1.DELETE("/services/:id", middlewares.AuthMiddleware(1), controllers.DeleteService)
	v1.GET("/serviceTypes", controllers.GetServiceTypes)
	v1.POST("/serviceTypes", middlewares.AuthMiddleware(1), controllers.CreateServiceType)

	v1.GET("/booking", middlewares.AuthMiddleware(1, 3), controllers.GetBookings)
	v1.POST("/booking", controllers.CreateBooking)
	v1.GET("/booking/:id", middlewares.AuthMiddleware(0, 1, 3), controllers.GetBookingDetail)
	v1.GET("/bookingHistory", controllers.GetBookingsByUserId)
	v1.PUT("/booking/:id/checkin", middlewares.AuthMiddleware(1, 3), controllers.CheckInBooking)
	v1.PUT("/booking/:id/checkout", middlewares.AuthMiddleware(1, 3), controllers.CheckOutBooking)
	v1.PUT("/booking/:id/cancel", controllers.CancelBooking)
	v1.POST("/booking/:id/services", middlewares.AuthMiddleware(0, 1, 3), controllers.AddServiceToBooking)
	v1.GET("/bookingServices", controllers.GetBookingServices)
	v1.PUT("/bookingServices/:id/serve", middlewares.AuthMiddleware(1, 2, 3), controllers.UpdateBookingServiceStatus)

	v1.GET("/promotions", controllers.GetPromotions)
	v1.GET("/promotions/:id", controllers.GetPromotionDetail)
	v1.POST("/promotions", middlewares.AuthMiddleware(1), controllers.CreatePromotion)
	v1.PUT("/promotionUpdate", middlewares.AuthMiddleware(1), controllers.UpdatePromotion)
	v1.PUT("/promotionStatus", middlewares.AuthMiddleware(1), controllers.ChangePromotionStatus)
	v1.DELETE("/promotions/:id", middlewares.AuthMiddleware(1), controllers.DeletePromotion)
	v1.POST("/promotions/use", controllers.UsePromotion)
	v1.GET("/myPromotions", controllers.GetMyPromotions)

	v1.GET("/invoices", middlewares.AuthMiddleware(1, 3), controllers.GetInvoices)
	v1.GET("/invoices/:id", middlewares.AuthMiddleware(1, 3), controllers.GetDetailInvoice)
	v1.GET("/myInvoices", middlewares.AuthMiddleware(0, 1, 2, 3), controllers.GetInvoicesByUser)
	v1.POST("/invoices", middlewares.AuthMiddleware(1), controllers.CreateInvoice)
	v1.POST("/paymentCallback", controllers.PaymentCallback)

	v1.GET("/ratings", controllers.GetAllRatings)
	v1.GET("/ratings/:id", controllers.GetRatingDetail)
	v1.POST("/ratings", controllers.CreateRating)
	v1.PUT("/ratingUpdate", controllers.UpdateRating)

	v1.GET("/dashboard", middlewares.AuthMiddleware(1), controllers.GetDashboard)
	v1.GET("/dashboard/yearlyRevenue", middlewares.AuthMiddleware(1), controllers.GetYearlyRevenue)

	v1.POST("/img/multi-upload", func(c *gin.Context) {
		form, er := c.MultipartForm()
		if er != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
			return
		}
		files := form.File["files"]
		if len(files) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
			return
		}

		var urls []string
		for _, file := range files {
			src, err := file.Open()
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Lỗi khi mở file"})
				return
			}
			defer src.Close()

			ctx := context.Background()
			resp, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "rooms"})
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload thất bại"})
				return
			}
			urls = append(urls, resp.SecureURL)
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload thành công",
			"urls":    urls,
		})
	})

	v1.POST("/img/upload", func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
			return
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Lỗi khi mở file"})
			return
		}
		defer src.Close()

		ctx := context.Background()
		resp, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "avatars"})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload thất bại"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload avatar thành công",
			"url":     resp.SecureURL,
		})
	})
}
