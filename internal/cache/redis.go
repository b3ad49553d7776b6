package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/HumoyunMamasodiqov/level-test/internal/models"

	"github.com/go-redis/redis/v8"
)

const activeLevelsKey = "levels:active"

type RedisCache struct {
	client *redis.Client
	ctx    context.Context
	ttl    time.Duration
}

func NewRedisCache(addr string) *RedisCache {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisCache{
		client: client,
		ctx:    context.Background(),
		ttl:    24 * time.Hour,
	}
}

func (c *RedisCache) GetActiveLevels() ([]models.Level, error) {
	data, err := c.client.Get(c.ctx, activeLevelsKey).Bytes()
	if err != nil {
		return nil, err
	}

	var levels []models.Level
	err = json.Unmarshal(data, &levels)
	return levels, err
}

func (c *RedisCache) SetActiveLevels(levels []models.Level) error {
	data, err := json.Marshal(levels)
	if err != nil {
		return err
	}
	return c.client.Set(c.ctx, activeLevelsKey, data, c.ttl).Err()
}

func (c *RedisCache) InvalidateLevels() error {
	return c.client.Del(c.ctx, activeLevelsKey).Err()
}
