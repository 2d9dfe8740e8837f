package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// rateLimiter 基于滑动窗口的简单限流器，按 key（一般为客户端 IP）统计
type rateLimiter struct {
	mu          sync.Mutex
	maxAttempts int
	window      time.Duration
	attempts    map[string][]time.Time
}

func newRateLimiter(maxAttempts int, window time.Duration) *rateLimiter {
	rl := &rateLimiter{
		maxAttempts: maxAttempts,
		window:      window,
		attempts:    make(map[string][]time.Time),
	}
	go rl.cleanupLoop()
	return rl
}

// allow 记录一次请求并判断是否放行
func (rl *rateLimiter) allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	kept := rl.prune(rl.attempts[key], now)
	if len(kept) >= rl.maxAttempts {
		rl.attempts[key] = kept
		return false
	}
	rl.attempts[key] = append(kept, now)
	return true
}

// prune 去掉窗口之外的记录
func (rl *rateLimiter) prune(ts []time.Time, now time.Time) []time.Time {
	cutoff := now.Add(-rl.window)
	kept := ts[:0]
	for _, t := range ts {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	return kept
}

// cleanupLoop 定期清理不再活跃的 key，避免 map 无限增长
func (rl *rateLimiter) cleanupLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for key, ts := range rl.attempts {
			kept := rl.prune(ts, now)
			if len(kept) == 0 {
				delete(rl.attempts, key)
			} else {
				rl.attempts[key] = kept
			}
		}
		rl.mu.Unlock()
	}
}

// RateLimit 按 IP 限流中间件，用于登录、注册等敏感接口
// 每 IP 在 window 内最多 maxAttempts 次请求，超过返回 429
func RateLimit(maxAttempts int, window time.Duration) gin.HandlerFunc {
	rl := newRateLimiter(maxAttempts, window)
	return func(c *gin.Context) {
		if !rl.allow(c.ClientIP()) {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"code":    429,
				"message": "请求过于频繁，请稍后再试",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
