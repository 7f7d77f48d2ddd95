// Package limiter provides per-route token bucket rate limiting
// Package limiter 提供按路由前缀的令牌桶限流
package limiter

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/juju/ratelimit"
)

// Face is the limiter interface consumed by the middleware
// Face 是限流中间件消费的接口
type Face interface {
	// Key derives the bucket key from the request
	Key(c *gin.Context) string
	// GetBucket returns the bucket for a key when one is registered
	GetBucket(key string) (*ratelimit.Bucket, bool)
	// AddBuckets registers bucket rules
	AddBuckets(rules ...BucketRule) Face
}

// BucketRule describes one token bucket
// BucketRule 描述一个令牌桶
type BucketRule struct {
	// Key route prefix the bucket applies to // 桶作用的路由前缀
	Key string
	// FillInterval token fill interval // 令牌填充间隔
	FillInterval time.Duration
	// Capacity bucket capacity // 桶容量
	Capacity int64
	// Quantum tokens added per interval // 每次填充的令牌数
	Quantum int64
}

// MethodLimiter keys buckets by request path prefix
// MethodLimiter 按请求路径前缀选择令牌桶
type MethodLimiter struct {
	limiterBuckets map[string]*ratelimit.Bucket
}

// NewMethodLimiter creates an empty MethodLimiter
func NewMethodLimiter() Face {
	return &MethodLimiter{
		limiterBuckets: map[string]*ratelimit.Bucket{},
	}
}

// Key returns the uri without query parameters
// Key 返回去掉查询参数的 uri
func (l *MethodLimiter) Key(c *gin.Context) string {
	uri := c.Request.RequestURI
	if index := strings.Index(uri, "?"); index >= 0 {
		return uri[:index]
	}
	return uri
}

// GetBucket returns the first bucket whose key prefixes the request key
// GetBucket 返回第一个与请求 key 前缀匹配的桶
func (l *MethodLimiter) GetBucket(key string) (*ratelimit.Bucket, bool) {
	for prefix, bucket := range l.limiterBuckets {
		if strings.HasPrefix(key, prefix) {
			return bucket, true
		}
	}
	return nil, false
}

// AddBuckets registers bucket rules, later rules never overwrite earlier ones
// AddBuckets 注册桶规则，后注册的规则不会覆盖先注册的
func (l *MethodLimiter) AddBuckets(rules ...BucketRule) Face {
	for _, rule := range rules {
		if _, ok := l.limiterBuckets[rule.Key]; !ok {
			l.limiterBuckets[rule.Key] = ratelimit.NewBucketWithQuantum(
				rule.FillInterval, rule.Capacity, rule.Quantum)
		}
	}
	return l
}
