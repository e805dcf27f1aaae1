package storage

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// PhotoCache keeps served image bytes in redis so repeated menu loads do not
// hit the filesystem.
type PhotoCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewPhotoCache(client *redis.Client, ttl time.Duration) *PhotoCache {
	return &PhotoCache{Client: client, TTL: ttl}
}

func (c *PhotoCache) PhotoKey(path string) string {
	return "photo:" + path
}

func (c *PhotoCache) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := c.Client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return data, err
}

func (c *PhotoCache) Set(ctx context.Context, key string, data []byte) error {
	return c.Client.Set(ctx, key, data, c.TTL).Err()
}

// PopularityStore tracks how often each dish is ordered, in a daily and an
// all-time sorted set per restaurant.
type PopularityStore struct {
	Client *redis.Client
}

func NewPopularityStore(client *redis.Client) *PopularityStore {
	return &PopularityStore{Client: client}
}

func dailyKey(restaurantID int, day string) string {
	return "popularity:daily:" + day + ":" + strconv.Itoa(restaurantID)
}

func allTimeKey(restaurantID int) string {
	return "popularity:alltime:" + strconv.Itoa(restaurantID)
}

func (s *PopularityStore) RecordOrder(ctx context.Context, restaurantID, dishID int, day string) error {
	member := strconv.Itoa(dishID)
	if err := s.Client.ZIncrBy(ctx, dailyKey(restaurantID, day), 1, member).Err(); err != nil {
		return err
	}
	return s.Client.ZIncrBy(ctx, allTimeKey(restaurantID), 1, member).Err()
}

// TopDishes returns dish ids with scores, best first. Day "" selects the
// all-time set.
func (s *PopularityStore) TopDishes(ctx context.Context, restaurantID int, day string, limit int) (map[int]float64, error) {
	key := allTimeKey(restaurantID)
	if day != "" {
		key = dailyKey(restaurantID, day)
	}
	members, err := s.Client.ZRevRangeWithScores(ctx, key, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	scores := make(map[int]float64, len(members))
	for _, member := range members {
		id, err := strconv.Atoi(member.Member.(string))
		if err != nil {
			continue
		}
		scores[id] = member.Score
	}
	return scores, nil
}
