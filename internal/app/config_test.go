package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/xenking/storefront/internal/delivery"
)

func validConfig() Config {
	return Config{
		Addr:         "0.0.0.0:8080",
		DatabaseURL:  "postgres://localhost/storefront",
		APIKeyPepper: "pepper",
		RateLimit:    RateLimitConfig{Max: 100, CheckoutMax: 10, Window: time.Minute},
		Outbox: OutboxConfig{
			PollInterval:  5 * time.Second,
			BatchSize:     50,
			ClaimTimeout:  time.Minute,
			MaxBacklogAge: 15 * time.Minute,
		},
		SMTP: SMTPConfig{Port: 587, From: "orders@storefront.local"},
	}
}

func TestConfigValidate(t *testing.T) {
	for _, tt := range []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "Valid", mutate: func(*Config) {}},
		{name: "NoDatabase", mutate: func(c *Config) { c.DatabaseURL = "" }, wantErr: "database URL is required"},
		{name: "NoPepper", mutate: func(c *Config) { c.APIKeyPepper = "" }, wantErr: "pepper is required"},
		{name: "ZeroCheckoutLimit", mutate: func(c *Config) { c.RateLimit.CheckoutMax = 0 }, wantErr: "rate limits and window must be positive"},
		{name: "ZeroBatch", mutate: func(c *Config) { c.Outbox.BatchSize = 0 }, wantErr: "batch size must be positive"},
		{
			name:    "BacklogAgeBelowClaimTimeout",
			mutate:  func(c *Config) { c.Outbox.MaxBacklogAge = 30 * time.Second },
			wantErr: "must exceed the claim timeout",
		},
		{
			name:    "SMTPWithoutSender",
			mutate:  func(c *Config) { c.SMTP.Host = "smtp.example.com"; c.SMTP.From = "" },
			wantErr: "sender address is required",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestApplyPlatformDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://platform/db")
	t.Setenv("PORT", "9090")

	cfg := validConfig()
	cfg.DatabaseURL = ""
	cfg.applyPlatformDefaults()
	assert.Equal(t, "postgres://platform/db", cfg.DatabaseURL)
	assert.Equal(t, "0.0.0.0:9090", cfg.Addr)

	cfg = validConfig()
	cfg.Addr = "127.0.0.1:8000"
	cfg.applyPlatformDefaults()
	assert.Equal(t, "postgres://localhost/storefront", cfg.DatabaseURL, "explicit URL wins")
	assert.Equal(t, "127.0.0.1:8000", cfg.Addr, "explicit address wins")
}

func TestNewChannelsFallsBackToLogs(t *testing.T) {
	cfg := validConfig()
	notifier, mailer, closer, err := newChannels(&cfg, zap.NewNop())
	require.NoError(t, err)
	defer closer()
	assert.IsType(t, delivery.LogNotifier{}, notifier)
	assert.IsType(t, delivery.LogMailer{}, mailer)
}
