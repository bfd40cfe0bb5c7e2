package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	redisstore "github.com/ulule/limiter/v3/drivers/store/redis"
)

// NewLimiter builds a limiter for the formatted rate (e.g. "100-M").
// Counters live in redis when a client is given, in process memory otherwise.
func NewLimiter(formattedRate string, redisClient *redis.Client) (*limiter.Limiter, error) {
	rate, err := limiter.NewRateFromFormatted(formattedRate)
	if err != nil {
		return nil, fmt.Errorf("invalid rate limit %q: %w", formattedRate, err)
	}

	if redisClient == nil {
		return limiter.New(memory.NewStore(), rate), nil
	}

	store, err := redisstore.NewStoreWithOptions(redisClient, limiter.StoreOptions{Prefix: "finsight_limiter"})
	if err != nil {
		return nil, fmt.Errorf("failed to create redis limiter store: %w", err)
	}
	return limiter.New(store, rate), nil
}

// RateLimit creates a Gin middleware for rate limiting requests. Requests are
// keyed by the authenticated owner when AuthMiddleware ran first, by client IP otherwise.
func RateLimit(limiterInstance *limiter.Limiter) gin.HandlerFunc {
	return limitergin.NewMiddleware(limiterInstance,
		limitergin.WithKeyGetter(rateLimitKey),
		limitergin.WithLimitReachedHandler(func(c *gin.Context) {
			GetLoggerFromCtx(c.Request.Context()).Warn("Rate limit exceeded", slog.String("key", rateLimitKey(c)))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests. Please try again later."})
		}),
		limitergin.WithErrorHandler(func(c *gin.Context, err error) {
			GetLoggerFromCtx(c.Request.Context()).Error("Failed to get rate limit context", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error during rate limit check"})
		}),
	)
}

func rateLimitKey(c *gin.Context) string {
	if ownerID, ok := GetOwnerIDFromContext(c); ok {
		return "owner:" + ownerID
	}
	return "ip:" + c.ClientIP()
}
