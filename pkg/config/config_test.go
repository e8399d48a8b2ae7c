package config

import (
	"os"
	"testing"
	"time"
)

func validConfig() Config {
	return Config{
		Server:    ServerConfig{Port: "8000", BasePath: "/"},
		Cache:     CacheConfig{Type: "memory"},
		RateLimit: RateLimitConfig{Requests: 100, Window: time.Minute},
		Site: SiteConfig{
			ListingRoute:  "/property/{id}/{address}",
			ExcerptLength: 200,
			PageSize:      12,
		},
	}
}

func TestLoadFromEnv(t *testing.T) {
	tests := []struct {
		name          string
		envVars       map[string]string
		expectedPort  string
		expectedRoute string
	}{
		{
			name:          "defaults when nothing set",
			envVars:       map[string]string{},
			expectedPort:  "8000",
			expectedRoute: "/property/{id}/{address}",
		},
		{
			name:          "uses PORT env var when set",
			envVars:       map[string]string{"PORT": "3000"},
			expectedPort:  "3000",
			expectedRoute: "/property/{id}/{address}",
		},
		{
			name:          "uses LISTING_ROUTE env var when set",
			envVars:       map[string]string{"LISTING_ROUTE": "/homes/{id}"},
			expectedPort:  "8000",
			expectedRoute: "/homes/{id}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg, err := LoadFromEnv()
			if err != nil {
				t.Fatalf("LoadFromEnv() error = %v", err)
			}

			if cfg.Server.Port != tt.expectedPort {
				t.Errorf("Port = %v, want %v", cfg.Server.Port, tt.expectedPort)
			}
			if cfg.Site.ListingRoute != tt.expectedRoute {
				t.Errorf("ListingRoute = %v, want %v", cfg.Site.ListingRoute, tt.expectedRoute)
			}
		})
	}
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}

	if cfg.Cache.Type != "memory" {
		t.Errorf("Cache.Type = %v, want memory", cfg.Cache.Type)
	}
	if cfg.Cache.FragmentTTL != time.Hour {
		t.Errorf("Cache.FragmentTTL = %v, want 1h", cfg.Cache.FragmentTTL)
	}
	if cfg.Cache.Redis.KeyPrefix != "realtorist:" {
		t.Errorf("Redis.KeyPrefix = %v, want realtorist:", cfg.Cache.Redis.KeyPrefix)
	}
	if cfg.RateLimit.Window != time.Minute {
		t.Errorf("RateLimit.Window = %v, want 1m", cfg.RateLimit.Window)
	}
	if cfg.Site.ExcerptLength != 200 {
		t.Errorf("Site.ExcerptLength = %v, want 200", cfg.Site.ExcerptLength)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestLoadFromEnv_ParsesTypedValues(t *testing.T) {
	os.Clearenv()
	t.Setenv("RATE_LIMIT_WINDOW", "30s")
	t.Setenv("TRUST_PROXY_HEADERS", "true")
	t.Setenv("REDIS_DB", "3")

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}

	if cfg.RateLimit.Window != 30*time.Second {
		t.Errorf("RateLimit.Window = %v, want 30s", cfg.RateLimit.Window)
	}
	if !cfg.Server.TrustProxyHeaders {
		t.Error("TrustProxyHeaders = false, want true")
	}
	if cfg.Cache.Redis.DB != 3 {
		t.Errorf("Redis.DB = %v, want 3", cfg.Cache.Redis.DB)
	}
}

func TestLoadFromEnv_InvalidNumber(t *testing.T) {
	os.Clearenv()
	t.Setenv("EXCERPT_LENGTH", "not-a-number")

	if _, err := LoadFromEnv(); err == nil {
		t.Error("LoadFromEnv() should fail on a malformed integer")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
		errMsg  string
	}{
		{
			name:   "valid config",
			mutate: func(*Config) {},
		},
		{
			name:    "empty port",
			mutate:  func(c *Config) { c.Server.Port = "" },
			wantErr: true,
			errMsg:  "port cannot be empty",
		},
		{
			name:    "relative base path",
			mutate:  func(c *Config) { c.Server.BasePath = "app" },
			wantErr: true,
			errMsg:  "base path must start with '/'",
		},
		{
			name:    "invalid cache type",
			mutate:  func(c *Config) { c.Cache.Type = "invalid" },
			wantErr: true,
			errMsg:  "cache type must be 'redis' or 'memory'",
		},
		{
			name:    "redis type with empty address",
			mutate:  func(c *Config) { c.Cache.Type = "redis" },
			wantErr: true,
			errMsg:  "redis address cannot be empty when using redis cache",
		},
		{
			name:    "zero rate limit",
			mutate:  func(c *Config) { c.RateLimit.Requests = 0 },
			wantErr: true,
			errMsg:  "rate limit requests and window must be positive",
		},
		{
			name:    "route without id",
			mutate:  func(c *Config) { c.Site.ListingRoute = "/property/{address}" },
			wantErr: true,
			errMsg:  "listing route must contain {id}",
		},
		{
			name:    "zero excerpt length",
			mutate:  func(c *Config) { c.Site.ExcerptLength = 0 },
			wantErr: true,
			errMsg:  "excerpt length must be at least 1",
		},
		{
			name:    "zero page size",
			mutate:  func(c *Config) { c.Site.PageSize = 0 },
			wantErr: true,
			errMsg:  "page size must be at least 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if err != nil && tt.errMsg != "" && err.Error() != tt.errMsg {
				t.Errorf("Validate() error = %v, want %v", err.Error(), tt.errMsg)
			}
		})
	}
}
