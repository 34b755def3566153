// Package pubsub implements the notification channel on Redis pub/sub.
// Delivery is fire-and-forget: messages reach whoever is subscribed at
// publish time and are gone afterwards. There is no durability and no
// replay; the record store is the source of truth.
package pubsub

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"pizzeria/internal/pkg/errs"
)

// RedisNotificationChannel implements ports.NotificationChannel.
type RedisNotificationChannel struct {
	client *redis.Client
}

// NewRedisNotificationChannel creates a channel on the given client.
func NewRedisNotificationChannel(client *redis.Client) *RedisNotificationChannel {
	return &RedisNotificationChannel{client: client}
}

// Publish JSON-serializes the payload and pushes it to the topic.
func (c *RedisNotificationChannel) Publish(ctx context.Context, topic string, payload any) error {
	message, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode payload for %s: %w", topic, err)
	}

	if err = c.client.Publish(ctx, topic, message).Err(); err != nil {
		return errs.NewPublishFailedError(topic, err)
	}

	return nil
}

// Subscribe streams raw messages from the topic until ctx is cancelled.
func (c *RedisNotificationChannel) Subscribe(ctx context.Context, topic string) (<-chan []byte, error) {
	sub := c.client.Subscribe(ctx, topic)

	// force the subscription onto the wire before returning
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, fmt.Errorf("subscribe %s: %w", topic, err)
	}

	out := make(chan []byte)
	go func() {
		defer close(out)
		defer func() { _ = sub.Close() }()

		messages := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case message, ok := <-messages:
				if !ok {
					return
				}
				select {
				case out <- []byte(message.Payload):
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}
