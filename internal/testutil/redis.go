package testutil

import (
	"context"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// SetupTestRedis connects to a redis on localhost:6379 using database 15.
// The test is skipped when redis is not reachable.
func SetupTestRedis(t *testing.T) *goredis.Client {
	t.Helper()

	client := goredis.NewClient(&goredis.Options{
		Addr: "localhost:6379",
		DB:   15,
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		t.Skipf("test redis not available: %v", err)
	}

	return client
}

// CleanupTestRedis drops every key under prefix and closes the client.
func CleanupTestRedis(t *testing.T, client *goredis.Client, prefix string) {
	t.Helper()
	if client == nil {
		return
	}

	ctx := context.Background()
	iter := client.Scan(ctx, 0, prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := client.Del(ctx, iter.Val()).Err(); err != nil {
			t.Logf("failed to delete key %s: %v", iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		t.Logf("failed to scan keys: %v", err)
	}

	_ = client.Close()
}
