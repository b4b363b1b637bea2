package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
)

var RedisClient *redis.Client

// InitApp dựng gin engine, hub websocket và cron scheduler sau khi
// các thành phần hạ tầng đã kết nối xong
func InitApp() (*gin.Engine, *melody.Melody, *cron.Cron, error) {
	router := gin.Default()
	router.Use(cors.New(corsConfig()))
	router.SetTrustedProxies(nil)

	if err := initComponents(); err != nil {
		return nil, nil, nil, fmt.Errorf("khởi tạo thành phần thất bại: %v", err)
	}

	return router, melody.New(), cron.New(), nil
}

// corsConfig cho phép danh sách origin từ CORS_ORIGINS, mặc định mở cho mọi origin
func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AddAllowHeaders("Authorization")
	cfg.AllowCredentials = true

	if raw := os.Getenv("CORS_ORIGINS"); raw != "" {
		cfg.AllowOrigins = strings.Split(raw, ",")
	} else {
		cfg.AllowAllOrigins = false
		cfg.AllowOriginFunc = func(origin string) bool { return true }
	}
	return cfg
}

func initComponents() error {
	LoadEnv()
	ConnectDB()
	ConnectCloudinary()

	var err error
	RedisClient, err = ConnectRedis()
	if err != nil {
		return fmt.Errorf("kết nối Redis thất bại: %v", err)
	}

	log.Println("Khởi tạo thành phần hạ tầng hoàn tất")
	return nil
}

func InitWebSocket(router *gin.Engine, m *melody.Melody) {
	router.GET("/ws", func(c *gin.Context) {
		m.HandleRequest(c.Writer, c.Request)
	})
}
