package storage

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"coffeehouse/coffee-svc/internal/domain"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

func (c *RedisCache) ItemKey(id int) string {
	return "coffee:item:" + strconv.Itoa(id)
}

// GetItem returns nil without error on a cache miss.
func (c *RedisCache) GetItem(ctx context.Context, id int) (*domain.CatalogItem, error) {
	raw, err := c.Client.Get(ctx, c.ItemKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var item domain.CatalogItem
	if err := json.Unmarshal(raw, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *RedisCache) SetItem(ctx context.Context, item *domain.CatalogItem) error {
	payload, err := json.Marshal(item)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, c.ItemKey(item.ID), payload, c.TTL).Err()
}

// RedisOrderState keeps the latest OrderParameters per session for checkout.
type RedisOrderState struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisOrderState(client *redis.Client, ttl time.Duration) *RedisOrderState {
	return &RedisOrderState{Client: client, TTL: ttl}
}

func (s *RedisOrderState) Key(sessionID string) string {
	return "checkout:" + sessionID
}

func (s *RedisOrderState) SaveOrder(ctx context.Context, sessionID string, params domain.OrderParameters) error {
	payload, err := json.Marshal(params)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, s.Key(sessionID), payload, s.TTL).Err()
}

func (s *RedisOrderState) LoadOrder(ctx context.Context, sessionID string) (*domain.OrderParameters, error) {
	raw, err := s.Client.Get(ctx, s.Key(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var params domain.OrderParameters
	if err := json.Unmarshal(raw, &params); err != nil {
		return nil, err
	}
	return &params, nil
}

// RedisFlashStore queues transient banner notifications per session.
type RedisFlashStore struct {
	Client *redis.Client
	TTL    time.Duration
	Logger *zap.Logger
}

func NewRedisFlashStore(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisFlashStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisFlashStore{Client: client, TTL: ttl, Logger: logger}
}

func (s *RedisFlashStore) Key(sessionID string) string {
	return "flash:" + sessionID
}

func (s *RedisFlashStore) Push(ctx context.Context, sessionID string, notification domain.Notification) error {
	payload, err := json.Marshal(notification)
	if err != nil {
		return err
	}

	key := s.Key(sessionID)
	pipe := s.Client.TxPipeline()
	pipe.RPush(ctx, key, payload)
	pipe.Expire(ctx, key, s.TTL)
	_, err = pipe.Exec(ctx)
	return err
}

// Drain returns the queued notifications oldest first and clears the queue.
func (s *RedisFlashStore) Drain(ctx context.Context, sessionID string) ([]domain.Notification, error) {
	key := s.Key(sessionID)
	pipe := s.Client.TxPipeline()
	entries := pipe.LRange(ctx, key, 0, -1)
	pipe.Del(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, err
	}

	notifications := make([]domain.Notification, 0, len(entries.Val()))
	for _, raw := range entries.Val() {
		var notification domain.Notification
		if err := json.Unmarshal([]byte(raw), &notification); err != nil {
			s.Logger.Warn("dropping undecodable notification",
				zap.String("session_id", sessionID),
				zap.String("entry", raw),
				zap.Error(err))
			continue
		}
		notifications = append(notifications, notification)
	}
	return notifications, nil
}
