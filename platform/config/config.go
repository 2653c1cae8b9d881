// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// DatabaseConfig provides database connection settings.
type DatabaseConfig interface {
	GetDatabaseURL() string
}

// JWTConfig provides JWT validation settings for middleware.
type JWTConfig interface {
	GetJWTAccessSecret() string
}

// AuthServiceConfig provides settings needed by the auth service.
type AuthServiceConfig interface {
	JWTConfig
	GetAccessTokenTTL() time.Duration
	GetAdminEmail() string
	GetAdminPasswordHash() string
}

// EmailConfig provides settings for email sending.
type EmailConfig interface {
	GetEmailEnabled() bool
	GetEmailProvider() string
	GetResendAPIKey() string
	GetSMTPHost() string
	GetSMTPPort() int
	GetSMTPUsername() string
	GetSMTPPassword() string
	GetEmailFromName() string
	GetEmailFromAddress() string
}

// BusinessConfig provides the fixed destination identifiers for the business.
// The support phone and email used to be inlined at every call site; they are
// collapsed here so the deep-link builder, the email dispatcher, and the
// rendered templates all read the same values.
type BusinessConfig interface {
	GetBusinessName() string
	GetSupportPhone() string
	GetSupportEmail() string
	GetQuoteInboxAddress() string
}

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env               string
	HTTPAddr          string
	DatabaseURL       string
	JWTAccessSecret   string
	AccessTokenTTL    time.Duration
	AdminEmail        string
	AdminPasswordHash string
	CORSAllowAll      bool
	CORSOrigins       []string
	CORSAllowCreds    bool
	EmailEnabled      bool
	EmailProvider     string
	ResendAPIKey      string
	SMTPHost          string
	SMTPPort          int
	SMTPUsername      string
	SMTPPassword      string
	EmailFromName     string
	EmailFromAddress  string
	BusinessName      string
	SupportPhone      string
	SupportEmail      string
	QuoteInboxAddress string
}

// =============================================================================
// Interface Implementations
// =============================================================================

// DatabaseConfig implementation
func (c *Config) GetDatabaseURL() string { return c.DatabaseURL }

// JWTConfig implementation
func (c *Config) GetJWTAccessSecret() string { return c.JWTAccessSecret }

// AuthServiceConfig implementation
func (c *Config) GetAccessTokenTTL() time.Duration { return c.AccessTokenTTL }
func (c *Config) GetAdminEmail() string            { return c.AdminEmail }
func (c *Config) GetAdminPasswordHash() string     { return c.AdminPasswordHash }

// EmailConfig implementation
func (c *Config) GetEmailEnabled() bool       { return c.EmailEnabled }
func (c *Config) GetEmailProvider() string    { return c.EmailProvider }
func (c *Config) GetResendAPIKey() string     { return c.ResendAPIKey }
func (c *Config) GetSMTPHost() string         { return c.SMTPHost }
func (c *Config) GetSMTPPort() int            { return c.SMTPPort }
func (c *Config) GetSMTPUsername() string     { return c.SMTPUsername }
func (c *Config) GetSMTPPassword() string     { return c.SMTPPassword }
func (c *Config) GetEmailFromName() string    { return c.EmailFromName }
func (c *Config) GetEmailFromAddress() string { return c.EmailFromAddress }

// BusinessConfig implementation
func (c *Config) GetBusinessName() string      { return c.BusinessName }
func (c *Config) GetSupportPhone() string      { return c.SupportPhone }
func (c *Config) GetSupportEmail() string      { return c.SupportEmail }
func (c *Config) GetQuoteInboxAddress() string { return c.QuoteInboxAddress }

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool  { return c.CORSAllowCreds }

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "true"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	provider := strings.ToLower(getEnv("EMAIL_PROVIDER", "resend"))
	emailEnabled := strings.EqualFold(getEnv("EMAIL_ENABLED", "true"), "true")

	cfg := &Config{
		Env:               getEnv("APP_ENV", "development"),
		HTTPAddr:          getEnv("HTTP_ADDR", ":8080"),
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		JWTAccessSecret:   getEnv("JWT_ACCESS_SECRET", ""),
		AccessTokenTTL:    mustDuration(getEnv("JWT_ACCESS_TTL", "12h")),
		AdminEmail:        getEnv("ADMIN_EMAIL", ""),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		CORSAllowAll:      corsAllowAll,
		CORSOrigins:       corsOrigins,
		CORSAllowCreds:    strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "false"), "true"),
		EmailEnabled:      emailEnabled,
		EmailProvider:     provider,
		ResendAPIKey:      getEnv("RESEND_API_KEY", ""),
		SMTPHost:          getEnv("SMTP_HOST", ""),
		SMTPPort:          mustInt(getEnv("SMTP_PORT", "587")),
		SMTPUsername:      getEnv("SMTP_USERNAME", ""),
		SMTPPassword:      getEnv("SMTP_PASSWORD", ""),
		EmailFromName:     getEnv("EMAIL_FROM_NAME", "Quote Requests"),
		EmailFromAddress:  getEnv("EMAIL_FROM_ADDRESS", ""),
		BusinessName:      getEnv("BUSINESS_NAME", "Zibeon Cleaning Services"),
		SupportPhone:      getEnv("SUPPORT_PHONE", ""),
		SupportEmail:      getEnv("SUPPORT_EMAIL", ""),
		QuoteInboxAddress: getEnv("QUOTE_INBOX_ADDRESS", ""),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.JWTAccessSecret == "" {
		return nil, fmt.Errorf("JWT_ACCESS_SECRET is required")
	}
	if cfg.AdminEmail == "" || cfg.AdminPasswordHash == "" {
		return nil, fmt.Errorf("ADMIN_EMAIL and ADMIN_PASSWORD_HASH are required")
	}
	if cfg.SupportPhone == "" {
		return nil, fmt.Errorf("SUPPORT_PHONE is required")
	}
	if cfg.EmailEnabled {
		if cfg.QuoteInboxAddress == "" {
			return nil, fmt.Errorf("QUOTE_INBOX_ADDRESS is required when email is enabled")
		}
		if cfg.EmailFromAddress == "" {
			return nil, fmt.Errorf("EMAIL_FROM_ADDRESS is required when email is enabled")
		}
		switch provider {
		case "resend":
			if cfg.ResendAPIKey == "" {
				return nil, fmt.Errorf("RESEND_API_KEY is required when EMAIL_PROVIDER is resend")
			}
		case "smtp":
			if cfg.SMTPHost == "" {
				return nil, fmt.Errorf("SMTP_HOST is required when EMAIL_PROVIDER is smtp")
			}
		default:
			return nil, fmt.Errorf("unknown EMAIL_PROVIDER %q", provider)
		}
	}
	if cfg.CORSAllowAll && cfg.CORSAllowCreds {
		return nil, fmt.Errorf("CORS_ALLOW_CREDENTIALS cannot be true when CORS_ALLOW_ALL is true")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

func mustInt(value string) int {
	result, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return result
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
