package cache

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"estatehub/internal/config"

	"github.com/redis/go-redis/v9"
)

const listingPrefix = "listing"

// ListingCache keeps rendered search results in Redis so the public listing
// pages do not hit Postgres on every request. Mutations signal invalidation
// by dropping the whole listing namespace; the cache is an optimization, so
// every method degrades to a no-op on Redis failure.
type ListingCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewListingCache(cfg *config.Config) *ListingCache {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	return &ListingCache{
		client: client,
		ttl:    cfg.Redis.CacheTTL,
	}
}

// Get reports whether the key was present and, if so, unmarshals into dest.
func (c *ListingCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal([]byte(data), dest)
}

func (c *ListingCache) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, c.ttl).Err()
}

// Invalidate drops every cached listing view. Called after any property
// mutation or moderation decision.
func (c *ListingCache) Invalidate(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, listingPrefix+":*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

// SearchKey builds a stable cache key from filter parameters: entries are
// sorted so equivalent criteria always hash to the same key.
func SearchKey(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k, v := range params {
		if v == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var builder strings.Builder
	for i, k := range keys {
		if i > 0 {
			builder.WriteString(":")
		}
		builder.WriteString(k)
		builder.WriteString("=")
		builder.WriteString(params[k])
	}

	hash := md5.Sum([]byte(builder.String()))

	return fmt.Sprintf("%s:%s", listingPrefix, hex.EncodeToString(hash[:]))
}
