package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Storage.validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}

	if err := c.Market.validate(); err != nil {
		return fmt.Errorf("market: %w", err)
	}

	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerMin <= 0 || c.RateLimit.AuthPerMin <= 0) {
		return fmt.Errorf("rate_limit: limits must be > 0 when enabled")
	}

	return nil
}

func (s *StorageConfig) validate() error {
	s.Driver = strings.ToLower(strings.TrimSpace(s.Driver))

	switch s.Driver {
	case StorageLocal:
		if s.LocalDir == "" {
			return fmt.Errorf("local_dir is required for the local driver")
		}
		if s.PublicBaseURL == "" {
			return fmt.Errorf("public_base_url is required for the local driver")
		}
	case StorageSupabase:
		if s.SupabaseURL == "" || s.SupabaseKey == "" {
			return fmt.Errorf("supabase_url and supabase_key are required for the supabase driver")
		}
	default:
		return fmt.Errorf("unknown driver %q", s.Driver)
	}

	if s.Bucket == "" {
		return fmt.Errorf("bucket is required")
	}
	if s.MaxUploadBytes <= 0 {
		return fmt.Errorf("max_upload_bytes must be > 0 (got %d)", s.MaxUploadBytes)
	}

	return nil
}

func (m *MarketConfig) validate() error {
	if m.FeaturedLimit <= 0 {
		return fmt.Errorf("featured_limit must be > 0 (got %d)", m.FeaturedLimit)
	}
	if m.DefaultPageSize <= 0 {
		return fmt.Errorf("default_page_size must be > 0 (got %d)", m.DefaultPageSize)
	}
	if m.MaxPageSize < m.DefaultPageSize {
		return fmt.Errorf("max_page_size (%d) must be >= default_page_size (%d)", m.MaxPageSize, m.DefaultPageSize)
	}
	return nil
}
