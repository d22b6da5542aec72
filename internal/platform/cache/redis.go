package cache

import (
	"context"
	"fmt"
	"log"

	"galaxy_api/internal/platform/config"

	"github.com/redis/go-redis/v9"
)

// RDB stays nil when REDIS_ADDR is not configured; the login limiter is
// simply disabled in that case.
var RDB *redis.Client

func ConnectRedis() {
	if config.AppConfig.RedisAddr == "" {
		log.Println("REDIS_ADDR not set, login attempt limiting disabled")
		return
	}

	RDB = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisDB,
	})

	ctx := context.Background()
	if _, err := RDB.Ping(ctx).Result(); err != nil {
		log.Fatalf("Could not connect to Redis: %v", err)
	}
	fmt.Println("Successfully connected to Redis!")
}

func CloseRedis() {
	if RDB != nil {
		RDB.Close()
		fmt.Println("Redis connection closed.")
	}
}
