package ai

import (
	"context"
	"encoding/json"
	"time"

	"bvetra/models"

	"github.com/go-redis/redis/v8"
)

const chatHistoryPrefix = "chat:history:"

// HistoryStore keeps per-session conversation turns.
type HistoryStore interface {
	Get(ctx context.Context, sessionID string) ([]models.ChatMessage, error)
	Set(ctx context.Context, sessionID string, history []models.ChatMessage) error
	Clear(ctx context.Context, sessionID string) error
}

// RedisHistoryStore holds chat history in redis with a sliding TTL, so an
// abandoned conversation expires on its own.
type RedisHistoryStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisHistoryStore(client *redis.Client, ttl time.Duration) *RedisHistoryStore {
	return &RedisHistoryStore{client: client, ttl: ttl}
}

func (s *RedisHistoryStore) Get(ctx context.Context, sessionID string) ([]models.ChatMessage, error) {
	key := chatHistoryPrefix + sessionID
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var history []models.ChatMessage
	if err := json.Unmarshal([]byte(data), &history); err != nil {
		return nil, err
	}
	return history, nil
}

func (s *RedisHistoryStore) Set(ctx context.Context, sessionID string, history []models.ChatMessage) error {
	key := chatHistoryPrefix + sessionID
	b, err := json.Marshal(history)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, b, s.ttl).Err()
}

func (s *RedisHistoryStore) Clear(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, chatHistoryPrefix+sessionID).Err()
}
