package config

import (
    "testing"
    "time"
)

func TestLoadRateLimitConfigClampsTTL(t *testing.T) {
    t.Setenv("RATE_LIMIT_REFILL_INTERVAL", "1m")
    t.Setenv("RATE_LIMIT_TTL", "1s")

    cfg := LoadRateLimitConfig()
    if cfg.TTL != 5*time.Minute {
        t.Fatalf("expected TTL clamped to 5m, got %s", cfg.TTL)
    }
}

func TestLoadRateLimitConfigDefaults(t *testing.T) {
    cfg := LoadRateLimitConfig()
    if !cfg.Enabled || cfg.Capacity != 60 || cfg.RefillInterval != time.Second {
        t.Fatalf("unexpected defaults: %+v", cfg)
    }
}

func TestLoadCacheConfigMethods(t *testing.T) {
    t.Setenv("CACHE_METHODS", "get, head")

    cfg := LoadCacheConfig()
    if !cfg.Methods["GET"] || !cfg.Methods["HEAD"] {
        t.Fatalf("expected GET and HEAD cacheable, got %#v", cfg.Methods)
    }
    if cfg.Methods["POST"] {
        t.Fatal("POST must not be cacheable")
    }
}
