// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package.
//
// - cache/memory: in-process cache backed by go-cache
// - cache/redis: Redis cache with a key prefix
// - logger/logrus: structured logger with optional rotated file output
//
// # Cache Implementations
//
// Memory Cache Example:
//
//	cache := memory.NewMemoryCache(10 * time.Minute)
//	err := cache.Set(ctx, "details:homes.example.com:C1234", body, time.Hour)
//	value, err := cache.Get(ctx, "details:homes.example.com:C1234")
//
// Redis Cache Example:
//
//	cache, err := redis.NewRedisCache(config.RedisConfig{
//	    Address:   "localhost:6379",
//	    KeyPrefix: "realtorist:",
//	})
//
// # Logger
//
//	logger := logrus.New(logrus.Options{Level: "debug", Format: "json"})
//	logger.Info("Rendered view", map[string]interface{}{
//	    "view": "property/details",
//	})
package infrastructure
