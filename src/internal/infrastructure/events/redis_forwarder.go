package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackyeh168/bar_loyalty/src/internal/domain/shared"
	"github.com/redis/go-redis/v9"
)

// DefaultChannel Redis Pub/Sub 頻道
const DefaultChannel = "loyalty:events"

const forwardTimeout = 2 * time.Second

// Envelope 轉發到 Redis 的事件格式
type Envelope struct {
	EventID     string    `json:"event_id"`
	EventType   string    `json:"event_type"`
	AggregateID string    `json:"aggregate_id"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// NewEnvelope 由領域事件建立轉發格式
func NewEnvelope(event shared.DomainEvent) Envelope {
	return Envelope{
		EventID:     event.EventID(),
		EventType:   event.EventType(),
		AggregateID: event.AggregateID(),
		OccurredAt:  event.OccurredAt().UTC(),
	}
}

// RedisForwarder 將事件轉發到 Redis 頻道，供 POS 看板等外部消費者訂閱
type RedisForwarder struct {
	client  redis.UniversalClient
	channel string
}

// NewRedisForwarder 創建轉發器；channel 為空時使用 DefaultChannel
func NewRedisForwarder(client redis.UniversalClient, channel string) *RedisForwarder {
	if channel == "" {
		channel = DefaultChannel
	}
	return &RedisForwarder{client: client, channel: channel}
}

// Handle 可直接註冊為 Publisher 的訂閱者
func (f *RedisForwarder) Handle(event shared.DomainEvent) error {
	body, err := json.Marshal(NewEnvelope(event))
	if err != nil {
		return fmt.Errorf("events: encode %s: %w", event.EventType(), err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), forwardTimeout)
	defer cancel()
	if err := f.client.Publish(ctx, f.channel, body).Err(); err != nil {
		return fmt.Errorf("events: forward %s to redis: %w", event.EventType(), err)
	}
	return nil
}
