package redisbus

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/arteva/arteva-backend/internal/logger"
)

// ProofEvent is the analytics record published after a proof or quote
// document is generated. Publishing is best-effort side channel only; the
// download it describes never depends on it.
type ProofEvent struct {
	Kind      string    `json:"kind"` // "bat" or "quote"
	ProductID string    `json:"product_id,omitempty"`
	ProjectID string    `json:"project_id,omitempty"`
	Locale    string    `json:"locale,omitempty"`
	Bytes     int       `json:"bytes"`
	At        time.Time `json:"at"`
}

type EventBus interface {
	Publish(ctx context.Context, event ProofEvent) error
	Close() error
}

type eventBus struct {
	log     *logger.Logger
	rdb     *goredis.Client
	channel string
}

func NewEventBus(log *logger.Logger) (EventBus, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}

	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}
	ch := strings.TrimSpace(os.Getenv("REDIS_CHANNEL"))
	if ch == "" {
		ch = "proof-events"
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &eventBus{
		log:     log.With("service", "RedisEventBus"),
		rdb:     rdb,
		channel: ch,
	}, nil
}

func (b *eventBus) Publish(ctx context.Context, event ProofEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal proof event: %w", err)
	}
	if err := b.rdb.Publish(ctx, b.channel, payload).Err(); err != nil {
		return fmt.Errorf("publish proof event: %w", err)
	}
	return nil
}

func (b *eventBus) Close() error {
	return b.rdb.Close()
}
