package config

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded backend configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Auth.PrivateKeyBase64) == "" || strings.TrimSpace(c.Auth.PublicKeyBase64) == "" {
		return fmt.Errorf("auth: both jwt_private_key_base64 and jwt_public_key_base64 are required")
	}
	if c.Auth.AccessTokenTTL <= 0 || c.Auth.RefreshTokenTTL <= 0 || c.Auth.GuestTokenTTL <= 0 {
		return fmt.Errorf("auth: token TTLs must be > 0")
	}
	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.bcrypt_cost must be in [%d, %d] (got %d)", bcrypt.MinCost, bcrypt.MaxCost, c.Auth.BcryptCost)
	}

	if c.VAPI.SyncWorkers <= 0 {
		return fmt.Errorf("vapi.sync_workers must be > 0 (got %d)", c.VAPI.SyncWorkers)
	}
	if err := validateURL("vapi.base_url", c.VAPI.BaseURL); err != nil {
		return err
	}
	if err := validateURL("speech.base_url", c.Speech.BaseURL); err != nil {
		return err
	}

	if c.RateLimit.LoginPerMinute <= 0 || c.RateLimit.GuestPerMinute <= 0 || c.RateLimit.WebhookPerMinute <= 0 {
		return fmt.Errorf("rate_limit: limits must be > 0")
	}

	return c.Log.validate()
}

// Validate performs business-rule validation on the loaded edge configuration.
func (c *EdgeConfig) Validate() error {
	base := c.Edge.APIBaseURL()
	if base == "" {
		return fmt.Errorf("edge: one of API_INTERNAL_URL or NEXT_PUBLIC_API_URL is required")
	}
	if err := validateURL("edge.api_url", base); err != nil {
		return err
	}
	if strings.TrimSpace(c.Edge.PublicKeyBase64) == "" {
		return fmt.Errorf("edge: jwt_public_key_base64 is required")
	}
	if c.Edge.UpstreamTimeout <= 0 {
		return fmt.Errorf("edge.upstream_timeout must be > 0 (got %v)", c.Edge.UpstreamTimeout)
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with / (got %q)", c.Metrics.Path)
	}

	return c.Log.validate()
}

// Validate performs business-rule validation on the maintenance configuration.
func (c *ToolConfig) Validate() error {
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("bcrypt_cost must be in [%d, %d] (got %d)", bcrypt.MinCost, bcrypt.MaxCost, c.BcryptCost)
	}
	return c.Log.validate()
}

func (l LogConfig) validate() error {
	switch strings.ToLower(l.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", l.Format)
	}
	return nil
}

func validateURL(field, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s must be an http(s) URL (got %q)", field, raw)
	}
	if u.Host == "" {
		return fmt.Errorf("%s has no host (got %q)", field, raw)
	}
	return nil
}
