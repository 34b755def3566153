// Package redis wires the shared go-redis client used by every outbound
// adapter: the order record store, the pub/sub notification channel and
// the aggregated-state cache all talk to the same instance.
package redis

import (
	"context"
	"fmt"
	"net"

	goredis "github.com/redis/go-redis/v9"
)

// Config holds the connection settings for the shared Redis instance.
type Config struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// NewClient connects to Redis and verifies the connection with a ping.
func NewClient(ctx context.Context, cfg Config) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     net.JoinHostPort(cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping %s:%s: %w", cfg.Host, cfg.Port, err)
	}

	return client, nil
}
