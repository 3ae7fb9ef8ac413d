package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-token-swap/internal/logger"
	"github.com/sbilibin2017/gw-token-swap/internal/models"
)

// PriceCacheKey is the Redis key holding the last feed payload.
const PriceCacheKey = "prices:feed"

// ErrCacheMiss is returned when no cached payload exists.
var ErrCacheMiss = errors.New("price cache miss")

// PriceCacheRepository caches the price feed payload in Redis.
type PriceCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for the cached payload
}

// NewPriceCacheRepository creates a new repository instance. A zero TTL keeps the payload until overwritten.
func NewPriceCacheRepository(client *redis.Client, expiration time.Duration) *PriceCacheRepository {
	return &PriceCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetPrices returns the cached feed records.
func (r *PriceCacheRepository) GetPrices(ctx context.Context) ([]models.PriceRecord, error) {
	val, err := r.client.Get(ctx, PriceCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		logger.Log.Errorw("failed to read price cache", "key", PriceCacheKey, "error", err)
		return nil, err
	}

	var records []models.PriceRecord
	if err := json.Unmarshal(val, &records); err != nil {
		logger.Log.Warnw("corrupt price cache entry", "key", PriceCacheKey, "error", err)
		return nil, ErrCacheMiss
	}

	logger.Log.Debugw("price cache hit", "key", PriceCacheKey, "records", len(records))
	return records, nil
}

// SetPrices stores the feed records with the configured expiration.
func (r *PriceCacheRepository) SetPrices(ctx context.Context, records []models.PriceRecord) error {
	data, err := json.Marshal(records)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, PriceCacheKey, data, r.exp).Err()
	logger.Log.Infow("price cache updated",
		"key", PriceCacheKey,
		"records", len(records),
		"ttl", r.exp.String(),
		"error", err,
	)
	return err
}
