package flights

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"skymate/models"
)

// CachedProvider decorates a Provider with a short-TTL Redis cache over
// search results. Generation is cheap but static-catalog filtering plus an
// 18-offer batch is the hottest path, and a real backend swapped in behind the
// same interface would make the cache earn its keep. Cache failures are logged
// and fall through to the inner provider; the cache is never authoritative.
type CachedProvider struct {
	Inner  Provider
	Cache  *redis.Client
	TTL    time.Duration
	Logger *zap.Logger
}

// NewCachedProvider wraps a provider with a Redis search cache.
func NewCachedProvider(inner Provider, cache *redis.Client, ttl time.Duration, logger *zap.Logger) *CachedProvider {
	return &CachedProvider{Inner: inner, Cache: cache, TTL: ttl, Logger: logger}
}

func (p *CachedProvider) Name() string { return p.Inner.Name() }

// searchCacheKey derives a stable cache key from the full parameter set.
func searchCacheKey(params models.SearchParams) string {
	raw, _ := json.Marshal(params)
	sum := sha256.Sum256(raw)
	return fmt.Sprintf("flights:search:%s", hex.EncodeToString(sum[:16]))
}

func (p *CachedProvider) Search(ctx context.Context, params models.SearchParams) ([]models.Offer, error) {
	key := searchCacheKey(params)

	if data, err := p.Cache.Get(ctx, key).Result(); err == nil {
		var offers []models.Offer
		if err := json.Unmarshal([]byte(data), &offers); err == nil {
			return offers, nil
		}
		p.Logger.Warn("discarding undecodable cached search result", zap.String("key", key))
	} else if err != redis.Nil {
		p.Logger.Warn("search cache read failed", zap.String("key", key), zap.Error(err))
	}

	offers, err := p.Inner.Search(ctx, params)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(offers); err == nil {
		if err := p.Cache.Set(ctx, key, data, p.TTL).Err(); err != nil {
			p.Logger.Warn("search cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return offers, nil
}

func (p *CachedProvider) GetOffer(ctx context.Context, offerID string) (*models.Offer, error) {
	return p.Inner.GetOffer(ctx, offerID)
}

func (p *CachedProvider) Book(ctx context.Context, input models.BookingInput) (*models.BookingResult, error) {
	return p.Inner.Book(ctx, input)
}

func (p *CachedProvider) Cancel(ctx context.Context, orderID, reason string) (*models.CancelResult, error) {
	return p.Inner.Cancel(ctx, orderID, reason)
}

func (p *CachedProvider) GetOrder(ctx context.Context, orderID string) (*models.OrderSnapshot, error) {
	return p.Inner.GetOrder(ctx, orderID)
}
