package main

import (
	"log"
	"net/http"

	"resort/config"
	"resort/jobs"
	"resort/models"
	"resort/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func migrateTables() {
	if err := config.DB.AutoMigrate(
		&models.User{},
		&models.Token{},
		&models.RoomType{},
		&models.Room{},
		&models.ServiceType{},
		&models.Service{},
		&models.Booking{},
		&models.BookingService{},
		&models.Promotion{},
		&models.UserPromotion{},
		&models.Invoice{},
		&models.Rating{},
	); err != nil {
		panic("Failed to migrate tables: " + err.Error())
	}
}

func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: không load được file .env, sử dụng biến môi trường có sẵn: %v", err)
	}

	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	migrateTables()

	if err := jobs.InitCronJobs(c, m); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	config.InitWebSocket(router, m)

	routes.SetupRoutes(router, config.DB, config.RedisClient, config.Cloudinary, m)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := config.GetEnvDefault("PORT", "8083")

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
