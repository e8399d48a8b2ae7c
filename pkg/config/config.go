// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, cache, logging, rate limiting and site settings

package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// Log contains logger configuration
	Log LogConfig

	// RateLimit contains per-client request limits
	RateLimit RateLimitConfig

	// Site contains listing catalog and URL settings
	Site SiteConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string `env:"PORT" envDefault:"8000"`

	// BasePath is the application root that "~/" content paths resolve against
	BasePath string `env:"BASE_PATH" envDefault:"/"`

	// TrustProxyHeaders makes absolute URLs use X-Forwarded-Proto and X-Forwarded-Host
	TrustProxyHeaders bool `env:"TRUST_PROXY_HEADERS" envDefault:"false"`

	// ShutdownTimeout bounds graceful shutdown
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (redis/memory)
	Type string `env:"CACHE_TYPE" envDefault:"memory"`

	// FragmentTTL is how long rendered fragments stay cached
	FragmentTTL time.Duration `env:"CACHE_FRAGMENT_TTL" envDefault:"1h"`

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// Memory contains in-memory cache configuration
	Memory MemoryConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string `env:"REDIS_ADDRESS" envDefault:"localhost:6379"`

	// Password is the Redis authentication password
	Password string `env:"REDIS_PASSWORD"`

	// DB is the Redis database number
	DB int `env:"REDIS_DB" envDefault:"0"`

	// KeyPrefix namespaces every key this application writes
	KeyPrefix string `env:"REDIS_KEY_PREFIX" envDefault:"realtorist:"`
}

// MemoryConfig holds in-memory cache configuration
type MemoryConfig struct {
	// CleanupInterval is how often expired entries are purged
	CleanupInterval time.Duration `env:"MEMORY_CACHE_CLEANUP" envDefault:"10m"`
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"text"`
	// File enables rotated file output when set
	File string `env:"LOG_FILE"`
}

// RateLimitConfig holds per-client rate limiting configuration
type RateLimitConfig struct {
	// Requests is the number of requests allowed per Window
	Requests int `env:"RATE_LIMIT_REQUESTS" envDefault:"100"`

	// Window is the period Requests is measured over
	Window time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"1m"`
}

// SiteConfig holds listing catalog and URL settings
type SiteConfig struct {
	// CatalogPath is the YAML seed file with listings and site settings
	CatalogPath string `env:"CATALOG_PATH" envDefault:"data/catalog.yaml"`

	// ListingRoute is the route template for listing detail pages
	ListingRoute string `env:"LISTING_ROUTE" envDefault:"/property/{id}/{address}"`

	// ExcerptLength is the visible character budget for listing card descriptions
	ExcerptLength int `env:"EXCERPT_LENGTH" envDefault:"200"`

	// PageSize is the number of listings per page
	PageSize int `env:"PAGE_SIZE" envDefault:"12"`
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if !strings.HasPrefix(c.Server.BasePath, "/") {
		return errors.New("base path must start with '/'")
	}

	if c.Cache.Type != "redis" && c.Cache.Type != "memory" {
		return errors.New("cache type must be 'redis' or 'memory'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.RateLimit.Requests < 1 || c.RateLimit.Window <= 0 {
		return errors.New("rate limit requests and window must be positive")
	}

	if !strings.Contains(c.Site.ListingRoute, "{id}") {
		return errors.New("listing route must contain {id}")
	}

	if c.Site.ExcerptLength < 1 {
		return errors.New("excerpt length must be at least 1")
	}

	if c.Site.PageSize < 1 {
		return errors.New("page size must be at least 1")
	}

	return nil
}
