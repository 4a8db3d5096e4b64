package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"beton-feedback/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisBroker publishes events on a Redis channel and relays that channel into
// the local hub, so admin sessions on every instance see every mutation.
type RedisBroker struct {
	client  *redis.Client
	channel string
	local   *Hub
	log     *zap.Logger
}

// NewRedisClient connects and verifies the server is reachable.
func NewRedisClient(cfg utils.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("unable to ping redis at %s: %w", cfg.Addr, err)
	}

	return client, nil
}

func NewRedisBroker(client *redis.Client, channel string, local *Hub, log *zap.Logger) *RedisBroker {
	return &RedisBroker{
		client:  client,
		channel: channel,
		local:   local,
		log:     log.With(zap.String("component", "redis_broker")),
	}
}

// Publish sends the event through Redis. When Redis rejects it the event is
// still delivered to local subscribers.
func (b *RedisBroker) Publish(event string, data any) {
	msg := Message{Event: event, Data: data}

	payload, err := json.Marshal(msg)
	if err != nil {
		b.log.Error("Failed to encode event", zap.Error(err), zap.String("event", event))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := b.client.Publish(ctx, b.channel, payload).Err(); err != nil {
		b.log.Warn("Redis publish failed, delivering locally",
			zap.Error(err),
			zap.String("event", event),
		)
		b.local.Deliver(msg)
	}
}

// Run relays the Redis channel into the local hub until ctx is done.
func (b *RedisBroker) Run(ctx context.Context) error {
	sub := b.client.Subscribe(ctx, b.channel)
	defer sub.Close()

	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("subscribe to %s: %w", b.channel, err)
	}

	b.log.Info("Relaying admin events", zap.String("channel", b.channel))

	messages := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case raw, ok := <-messages:
			if !ok {
				return nil
			}
			var msg Message
			if err := json.Unmarshal([]byte(raw.Payload), &msg); err != nil {
				b.log.Warn("Skipping malformed event", zap.Error(err))
				continue
			}
			b.local.Deliver(msg)
		}
	}
}
