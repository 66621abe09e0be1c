package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"ai-shopping-be/internal/repository/implementation"
	"ai-shopping-be/pkg/store"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestRedisSessionStore(t *testing.T) {
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		t.Skip("Skipping integration test: REDIS_URL not set")
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		opts = &redis.Options{Addr: redisURL}
	}
	client := redis.NewClient(opts)

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Fatalf("Failed to connect to Redis: %v", err)
	}

	sessions := implementation.NewRedisSessionStore(client, time.Minute)

	session := &store.SearchSession{
		Id:        "sr-itg" + time.Now().Format("150405"),
		UserQuery: "integration test query",
		CreatedAt: time.Now(),
	}
	err = sessions.Save(ctx, session)
	assert.NoError(t, err)

	got, found, err := sessions.Get(ctx, session.Id)
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, session.UserQuery, got.UserQuery)

	_, found, err = sessions.Get(ctx, "sr-00000000")
	assert.NoError(t, err)
	assert.False(t, found)
}
