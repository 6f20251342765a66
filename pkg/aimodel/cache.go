package aimodel

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"oda-chatbot-be/internal/entity"
	"oda-chatbot-be/internal/pkg/logger"
)

// CachedClient memoizes model responses in redis. Recommendations for a given
// dataset change rarely and the model call is the slowest hop in the request,
// so a generous TTL is fine. Cache failures degrade to the inner client.
type CachedClient struct {
	inner Client
	rdb   *redis.Client
	ttl   time.Duration
	log   logger.ILogger
}

var _ Client = &CachedClient{}

func NewCachedClient(inner Client, rdb *redis.Client, ttl time.Duration, log logger.ILogger) *CachedClient {
	return &CachedClient{
		inner: inner,
		rdb:   rdb,
		ttl:   ttl,
		log:   log,
	}
}

func (c *CachedClient) FullUtilization(ctx context.Context, data *entity.PublicData) (json.RawMessage, error) {
	key := "aimodel:full:" + hashKey(data.FileDataName)
	if cached, err := c.rdb.Get(ctx, key).Bytes(); err == nil {
		return json.RawMessage(cached), nil
	} else if err != redis.Nil {
		c.log.Warn("aimodel", "cache read failed", map[string]interface{}{"error": err.Error()})
	}

	result, err := c.inner.FullUtilization(ctx, data)
	if err != nil {
		return nil, err
	}
	if err := c.rdb.Set(ctx, key, []byte(result), c.ttl).Err(); err != nil {
		c.log.Warn("aimodel", "cache write failed", map[string]interface{}{"error": err.Error()})
	}
	return result, nil
}

func (c *CachedClient) SingleUtilization(ctx context.Context, data *entity.PublicData, analysisType string) ([]string, error) {
	key := "aimodel:single:" + hashKey(data.FileDataName+"|"+analysisType)
	if cached, err := c.rdb.Get(ctx, key).Bytes(); err == nil {
		var recommendations []string
		if json.Unmarshal(cached, &recommendations) == nil {
			return recommendations, nil
		}
	} else if err != redis.Nil {
		c.log.Warn("aimodel", "cache read failed", map[string]interface{}{"error": err.Error()})
	}

	result, err := c.inner.SingleUtilization(ctx, data, analysisType)
	if err != nil {
		return nil, err
	}
	if encoded, err := json.Marshal(result); err == nil {
		if err := c.rdb.Set(ctx, key, encoded, c.ttl).Err(); err != nil {
			c.log.Warn("aimodel", "cache write failed", map[string]interface{}{"error": err.Error()})
		}
	}
	return result, nil
}

func hashKey(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
