package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application.
type Config struct {
	// Server configuration
	ServerPort   string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// Database configuration
	DBHost              string
	DBPort              int
	DBUser              string
	DBPassword          string
	DBName              string
	DBSSLMode           string
	DBMaxConns          int32
	DBMinConns          int32
	DBMaxConnLifetime   time.Duration
	DBMaxConnIdleTime   time.Duration
	DBHealthCheckPeriod time.Duration
	DBAutoMigrate       bool
	MigrationsDir       string

	// Site configuration
	SiteBaseURL       string
	SiteName          string
	SiteLanguage      string
	CORSAllowedOrigin string

	// Sitemap configuration
	SitemapNewsLimit          int
	SitemapOpportunitiesLimit int

	// Auth configuration
	AuthJWTSecret string

	// Subscription reconciliation
	PaymentsSyncURL          string
	PaymentsTimeout          time.Duration
	SubscriptionPollInterval time.Duration

	// Affiliate tracking
	AMQPURL              string
	AffiliateQueue       string
	AffiliateBufferSize  int
	AffiliatePartners    map[string]string
	AffiliateDefaultLink string

	// Logging configuration
	LogLevel string
}

// fileConfig is the optional YAML overlay pointed to by RIMBORSAMI_CONFIG.
type fileConfig struct {
	Site struct {
		BaseURL  string `yaml:"baseUrl"`
		Name     string `yaml:"name"`
		Language string `yaml:"language"`
	} `yaml:"site"`
	Sitemap struct {
		NewsLimit          int `yaml:"newsLimit"`
		OpportunitiesLimit int `yaml:"opportunitiesLimit"`
	} `yaml:"sitemap"`
	Affiliate struct {
		DefaultLink string            `yaml:"defaultLink"`
		Partners    map[string]string `yaml:"partners"`
	} `yaml:"affiliate"`
}

const configPathEnv = "RIMBORSAMI_CONFIG"

// Load loads configuration from the optional YAML file and environment variables.
// Environment variables take precedence over the file.
func Load() (*Config, error) {
	cfg := &Config{
		ServerPort:          getEnv("SERVER_PORT", "8080"),
		ReadTimeout:         getEnvDuration("HTTP_READ_TIMEOUT", 15*time.Second),
		WriteTimeout:        getEnvDuration("HTTP_WRITE_TIMEOUT", 30*time.Second),
		IdleTimeout:         getEnvDuration("HTTP_IDLE_TIMEOUT", 120*time.Second),
		DBHost:              getEnv("DB_HOST", "localhost"),
		DBPort:              getEnvInt("DB_PORT", 5432),
		DBUser:              getEnv("DB_USER", "postgres"),
		DBPassword:          getEnv("DB_PASSWORD", "postgres"),
		DBName:              getEnv("DB_NAME", "rimborsami"),
		DBSSLMode:           getEnv("DB_SSL_MODE", "disable"),
		DBMaxConns:          int32(getEnvInt("DB_MAX_CONNS", 10)),
		DBMinConns:          int32(getEnvInt("DB_MIN_CONNS", 2)),
		DBMaxConnLifetime:   getEnvDuration("DB_MAX_CONN_LIFETIME", time.Hour),
		DBMaxConnIdleTime:   getEnvDuration("DB_MAX_CONN_IDLE_TIME", 30*time.Minute),
		DBHealthCheckPeriod: getEnvDuration("DB_HEALTH_CHECK_PERIOD", time.Minute),
		DBAutoMigrate:       getEnvBool("DB_AUTO_MIGRATE", false),
		MigrationsDir:       getEnv("MIGRATIONS_DIR", "./migrations"),
		SiteBaseURL:         "https://rimborsami.app",
		SiteName:            "Rimborsami",
		SiteLanguage:        "it",
		CORSAllowedOrigin:   getEnv("CORS_ALLOWED_ORIGIN", "*"),

		SitemapNewsLimit:          1000,
		SitemapOpportunitiesLimit: 5000,

		AuthJWTSecret: getEnv("AUTH_JWT_SECRET", ""),

		PaymentsSyncURL:          getEnv("PAYMENTS_SYNC_URL", ""),
		PaymentsTimeout:          getEnvDuration("PAYMENTS_TIMEOUT", 10*time.Second),
		SubscriptionPollInterval: getEnvDuration("SUBSCRIPTION_POLL_INTERVAL", 60*time.Second),

		AMQPURL:             getEnv("AMQP_URL", ""),
		AffiliateQueue:      getEnv("AFFILIATE_QUEUE", "affiliate_clicks"),
		AffiliateBufferSize: getEnvInt("AFFILIATE_BUFFER_SIZE", 256),
		AffiliatePartners:   map[string]string{},

		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	if path := os.Getenv(configPathEnv); path != "" {
		if err := cfg.applyFile(path); err != nil {
			return nil, err
		}
	}

	cfg.SiteBaseURL = strings.TrimRight(getEnv("SITE_BASE_URL", cfg.SiteBaseURL), "/")
	cfg.SiteName = getEnv("SITE_NAME", cfg.SiteName)
	cfg.SiteLanguage = getEnv("SITE_LANGUAGE", cfg.SiteLanguage)
	cfg.SitemapNewsLimit = getEnvInt("SITEMAP_NEWS_LIMIT", cfg.SitemapNewsLimit)
	cfg.SitemapOpportunitiesLimit = getEnvInt("SITEMAP_OPPORTUNITIES_LIMIT", cfg.SitemapOpportunitiesLimit)
	cfg.AffiliateDefaultLink = getEnv("AFFILIATE_DEFAULT_LINK", cfg.AffiliateDefaultLink)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if fc.Site.BaseURL != "" {
		c.SiteBaseURL = fc.Site.BaseURL
	}
	if fc.Site.Name != "" {
		c.SiteName = fc.Site.Name
	}
	if fc.Site.Language != "" {
		c.SiteLanguage = fc.Site.Language
	}
	if fc.Sitemap.NewsLimit > 0 {
		c.SitemapNewsLimit = fc.Sitemap.NewsLimit
	}
	if fc.Sitemap.OpportunitiesLimit > 0 {
		c.SitemapOpportunitiesLimit = fc.Sitemap.OpportunitiesLimit
	}
	if fc.Affiliate.DefaultLink != "" {
		c.AffiliateDefaultLink = fc.Affiliate.DefaultLink
	}
	for partner, link := range fc.Affiliate.Partners {
		c.AffiliatePartners[strings.ToLower(partner)] = link
	}
	return nil
}

// validate validates the configuration.
func (c *Config) validate() error {
	if c.ServerPort == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}
	if c.DBHost == "" {
		return fmt.Errorf("DB_HOST is required")
	}
	if c.DBUser == "" {
		return fmt.Errorf("DB_USER is required")
	}
	if c.DBName == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	if _, err := url.ParseRequestURI(c.SiteBaseURL); err != nil {
		return fmt.Errorf("SITE_BASE_URL is invalid: %s", c.SiteBaseURL)
	}
	if c.SitemapNewsLimit < 1 {
		return fmt.Errorf("SITEMAP_NEWS_LIMIT must be at least 1")
	}
	if c.SitemapOpportunitiesLimit < 1 {
		return fmt.Errorf("SITEMAP_OPPORTUNITIES_LIMIT must be at least 1")
	}
	if c.SubscriptionPollInterval < time.Second {
		return fmt.Errorf("SUBSCRIPTION_POLL_INTERVAL must be at least 1s")
	}
	if c.AffiliateBufferSize < 1 {
		return fmt.Errorf("AFFILIATE_BUFFER_SIZE must be at least 1")
	}
	for partner, link := range c.AffiliatePartners {
		if _, err := url.ParseRequestURI(link); err != nil {
			return fmt.Errorf("invalid affiliate link for %s: %s", partner, link)
		}
	}
	return nil
}

// getEnv gets an environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as int with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvBool gets an environment variable as bool with a default value.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
