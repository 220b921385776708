package config

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be within [%d, %d] (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}
	if c.Auth.AccessTokenTTL <= 0 || c.Auth.RefreshTokenTTL <= 0 {
		return fmt.Errorf("auth token TTLs must be positive")
	}

	if c.Listing.DefaultPageSize <= 0 || c.Listing.MaxPageSize < c.Listing.DefaultPageSize {
		return fmt.Errorf("listing: page sizes must satisfy 0 < default_page_size <= max_page_size (got %d, %d)",
			c.Listing.DefaultPageSize, c.Listing.MaxPageSize)
	}

	if err := c.Storage.validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}

	if c.Events.Enabled() && strings.TrimSpace(c.Events.KafkaTopic) == "" {
		return fmt.Errorf("events: kafka_topic is required when kafka_brokers is set")
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with / (got %q)", c.Metrics.Path)
	}

	return nil
}

func (s *StorageConfig) validate() error {
	u, err := url.Parse(s.BucketURL)
	if err != nil || u.Scheme == "" {
		return fmt.Errorf("bucket_url must be a URL with a scheme (got %q)", s.BucketURL)
	}
	if _, err := url.ParseRequestURI(s.PublicBaseURL); err != nil {
		return fmt.Errorf("public_base_url: %w", err)
	}
	if s.MaxImageBytes <= 0 {
		return fmt.Errorf("max_image_bytes must be > 0 (got %d)", s.MaxImageBytes)
	}
	if len(s.AllowedContentTypes()) == 0 {
		return fmt.Errorf("allowed_types must not be empty")
	}
	return nil
}
