package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Team-DAS/profile-cell/internal/profile/models"
)

const profileKeyPrefix = "profile:"

// ProfileCache is a read-through cache for whole profile documents. Cache
// failures degrade to store reads; they never fail a request.
type ProfileCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewProfileCache(addr, password string, db int, ttl time.Duration) *ProfileCache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	return &ProfileCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *ProfileCache) GetProfile(ctx context.Context, userID string) (*models.Profile, bool) {
	data, err := c.client.Get(ctx, profileKeyPrefix+userID).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("Cache read failed for user %s: %v", userID, err)
		}
		return nil, false
	}

	var profile models.Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		log.Printf("Dropping undecodable cache entry for user %s: %v", userID, err)
		c.Invalidate(ctx, userID)
		return nil, false
	}
	return &profile, true
}

func (c *ProfileCache) SetProfile(ctx context.Context, profile *models.Profile) {
	data, err := json.Marshal(profile)
	if err != nil {
		log.Printf("Failed to marshal profile for cache: %v", err)
		return
	}

	if err := c.client.Set(ctx, profileKeyPrefix+profile.UserID, data, c.ttl).Err(); err != nil {
		log.Printf("Cache write failed for user %s: %v", profile.UserID, err)
	}
}

func (c *ProfileCache) Invalidate(ctx context.Context, userID string) {
	if err := c.client.Del(ctx, profileKeyPrefix+userID).Err(); err != nil {
		log.Printf("Cache invalidation failed for user %s: %v", userID, err)
	}
}

func (c *ProfileCache) Close() error {
	return c.client.Close()
}
