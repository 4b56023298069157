package app

import (
	"os"
	"time"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"
)

// Config holds the complete application configuration, loadable from
// environment variables (STOREFRONT_ prefix), flags, or YAML config files.
type Config struct {
	Addr         string `default:"0.0.0.0:8080" usage:"API server listen address"`
	DatabaseURL  string `usage:"PostgreSQL connection URL (STOREFRONT_DATABASE_URL or DATABASE_URL)" flag:"database-url"`
	ImageBaseURL string `default:"" usage:"Base URL for product images (e.g. https://cdn.example.com/images)" flag:"image-base-url"`
	APIKeyPepper string `usage:"HMAC pepper for API key hashing (STOREFRONT_API_KEY_PEPPER)" flag:"api-key-pepper"`
	RateLimit    RateLimitConfig
	CORS         CORSConfig
	Graceful     GracefulConfig
	Outbox       OutboxConfig
	Kafka        KafkaConfig
	SMTP         SMTPConfig
}

// RateLimitConfig controls the per-client sliding window rate limiter.
type RateLimitConfig struct {
	Max         int           `default:"100" usage:"Max requests per window"`
	CheckoutMax int           `default:"10"  usage:"Max order placements per window" flag:"rate-limit-checkout-max"`
	Window      time.Duration `default:"1m"  usage:"Rate limit window duration"`
}

// CORSConfig controls Cross-Origin Resource Sharing headers.
type CORSConfig struct {
	Origins          []string `default:"*" usage:"Allowed CORS origins"`
	AllowCredentials bool     `default:"false" usage:"Allow credentials (cookies, auth headers)" flag:"cors-credentials"`
}

// GracefulConfig controls graceful shutdown timing.
type GracefulConfig struct {
	ReadinessDelay  time.Duration `default:"3s"  usage:"Delay after readiness=false before shutdown" flag:"readiness-delay"`
	ShutdownTimeout time.Duration `default:"15s" usage:"Maximum shutdown duration" flag:"shutdown-timeout"`
}

// OutboxConfig tunes the order event dispatcher.
type OutboxConfig struct {
	PollInterval  time.Duration `default:"5s"  usage:"How often pending order events are polled" flag:"outbox-poll-interval"`
	BatchSize     int           `default:"50"  usage:"Events claimed per poll" flag:"outbox-batch-size"`
	ClaimTimeout  time.Duration `default:"1m"  usage:"Age after which an undispatched claim is retried" flag:"outbox-claim-timeout"`
	MaxBacklogAge time.Duration `default:"15m" usage:"Liveness fails when an event waits longer than this" flag:"outbox-max-backlog-age"`
}

// KafkaConfig selects the in-app notification channel. Without brokers,
// notifications are logged.
type KafkaConfig struct {
	Brokers []string `usage:"Kafka bootstrap brokers" flag:"kafka-brokers"`
	Topic   string   `default:"order-notifications" usage:"Topic for order notifications" flag:"kafka-topic"`
}

// SMTPConfig selects the email channel. Without a host, emails are logged.
type SMTPConfig struct {
	Host     string `usage:"SMTP server host" flag:"smtp-host"`
	Port     int    `default:"587" usage:"SMTP server port" flag:"smtp-port"`
	User     string `usage:"SMTP username" flag:"smtp-user"`
	Password string `usage:"SMTP password" flag:"smtp-password"`
	From     string `default:"orders@storefront.local" usage:"Sender address" flag:"smtp-from"`
	SSL      bool   `default:"false" usage:"Use implicit TLS" flag:"smtp-ssl"`
}

// LoadConfig loads configuration from environment variables, YAML config files,
// and applies platform-specific defaults.
func LoadConfig() (*Config, error) {
	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix: "STOREFRONT",
		Files:     []string{"config.yaml", "/etc/storefront/config.yaml"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
	if err := loader.Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	cfg.applyPlatformDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.DatabaseURL == "" {
		return errors.New("database URL is required: set STOREFRONT_DATABASE_URL or DATABASE_URL")
	}
	if c.APIKeyPepper == "" {
		return errors.New("API key pepper is required: set STOREFRONT_API_KEY_PEPPER")
	}
	if c.RateLimit.Max <= 0 || c.RateLimit.CheckoutMax <= 0 || c.RateLimit.Window <= 0 {
		return errors.New("rate limits and window must be positive")
	}
	if c.Outbox.BatchSize <= 0 {
		return errors.Errorf("outbox batch size must be positive, got %d", c.Outbox.BatchSize)
	}
	if c.Outbox.MaxBacklogAge <= c.Outbox.ClaimTimeout {
		return errors.Errorf("outbox max backlog age %s must exceed the claim timeout %s", c.Outbox.MaxBacklogAge, c.Outbox.ClaimTimeout)
	}
	if c.SMTP.Host != "" && c.SMTP.From == "" {
		return errors.New("smtp sender address is required when an SMTP host is set")
	}
	return nil
}

// applyPlatformDefaults maps platform-provided environment variables (Railway,
// Render, etc.) that use standard names like DATABASE_URL and PORT to the
// application's STOREFRONT_-prefixed configuration.
func (c *Config) applyPlatformDefaults() {
	if c.DatabaseURL == "" {
		if v := os.Getenv("DATABASE_URL"); v != "" {
			c.DatabaseURL = v
		}
	}
	if port := os.Getenv("PORT"); port != "" && c.Addr == "0.0.0.0:8080" {
		c.Addr = "0.0.0.0:" + port
	}
}
