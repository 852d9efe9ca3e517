package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/opabeer/portfolio-api/internal/domain/store"
)

// Seeds the shared admin credential into Redis so the default password can
// be retired before the site goes up.
func main() {
	fmt.Println("setting admin credential...")

	err := godotenv.Load()
	if err != nil {
		log.Println("warning: .env file not found, use system environment variables.")
	}

	addr := os.Getenv("REDIS_ADDR")
	password := os.Getenv("REDIS_PASSWORD")
	adminPassword := os.Getenv("ADMIN_PASSWORD")

	if len(adminPassword) < 4 {
		log.Fatal("ADMIN_PASSWORD must be at least 4 characters")
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})
	defer rdb.Close()

	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("cannot connect Redis: %v", err)
	}

	if err := rdb.Set(ctx, store.KeyCredential, adminPassword, 0).Err(); err != nil {
		log.Fatalf("cannot set credential: %v", err)
	}

	fmt.Println("admin credential updated successfully!")
}
