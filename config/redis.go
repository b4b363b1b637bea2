package config

import (
	"context"
	"log"
	"os"
	"strconv"

	"github.com/redis/go-redis/v9"
)

var Ctx = context.Background()

// ConnectRedis mở kết nối Redis từ biến môi trường, ping trước khi trả về
func ConnectRedis() (*redis.Client, error) {
	dbIndex := 0
	if raw := os.Getenv("REDIS_DB"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			dbIndex = n
		}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     os.Getenv("REDIS_ADDR"),
		Username: os.Getenv("REDIS_USER"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       dbIndex,
	})

	if _, err := client.Ping(Ctx).Result(); err != nil {
		return nil, err
	}

	log.Println("Kết nối Redis thành công")
	return client, nil
}
