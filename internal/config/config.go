package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v8"
)

// MinOrphanGracePeriod is the shortest age at which an unreferenced upload
// may be swept. Younger objects can belong to an order still being created.
const MinOrphanGracePeriod = 10 * time.Minute

type Config struct {
	// Supabase
	SupabaseURL            string `env:"SUPABASE_URL"`
	SupabasePublishableKey string `env:"SUPABASE_PUBLISHABLE_KEY"`
	SupabaseServiceRoleKey string `env:"SUPABASE_SERVICE_ROLE_KEY"`
	SupabaseJWTSecret      string `env:"SUPABASE_JWT_SECRET"`
	SupabaseStorageBucket  string `env:"SUPABASE_STORAGE_BUCKET" envDefault:"documentos"`
	SupabaseRealtimeTopic  string `env:"SUPABASE_REALTIME_TOPIC" envDefault:"orders"`

	// Database
	DatabaseURL string `env:"DATABASE_URL"`

	// Profile lookup after sign-up
	ProfileLookupAttempts int           `env:"PROFILE_LOOKUP_ATTEMPTS" envDefault:"5"`
	ProfileLookupDelay    time.Duration `env:"PROFILE_LOOKUP_DELAY" envDefault:"500ms"`
	ProfileLookupMaxDelay time.Duration `env:"PROFILE_LOOKUP_MAX_DELAY" envDefault:"2s"`

	// Documents
	MaxUploadSize       int64         `env:"MAX_UPLOAD_SIZE" envDefault:"26214400"`
	OrphanSweepInterval time.Duration `env:"ORPHAN_SWEEP_INTERVAL" envDefault:"0s"`
	OrphanGracePeriod   time.Duration `env:"ORPHAN_GRACE_PERIOD" envDefault:"1h"`

	// Server
	Port        string `env:"PORT" envDefault:"8080"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	BaseURL     string `env:"BASE_URL" envDefault:"http://localhost:8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.SupabaseURL == "" {
		return fmt.Errorf("SUPABASE_URL is required")
	}
	if c.SupabasePublishableKey == "" {
		return fmt.Errorf("SUPABASE_PUBLISHABLE_KEY is required")
	}
	if c.SupabaseJWTSecret == "" {
		return fmt.Errorf("SUPABASE_JWT_SECRET is required")
	}
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.ProfileLookupAttempts < 1 {
		return fmt.Errorf("PROFILE_LOOKUP_ATTEMPTS must be at least 1")
	}
	if c.ProfileLookupMaxDelay < c.ProfileLookupDelay {
		return fmt.Errorf("PROFILE_LOOKUP_MAX_DELAY must not be lower than PROFILE_LOOKUP_DELAY")
	}
	if c.MaxUploadSize <= 0 {
		return fmt.Errorf("MAX_UPLOAD_SIZE must be positive")
	}
	if c.OrphanSweepInterval > 0 && c.OrphanGracePeriod < MinOrphanGracePeriod {
		return fmt.Errorf("ORPHAN_GRACE_PERIOD must be at least %s when ORPHAN_SWEEP_INTERVAL is set", MinOrphanGracePeriod)
	}
	return nil
}

// StorageKey is the key used for Storage calls. The service role key bypasses
// bucket policies; without it uploads run with the publishable key.
func (c *Config) StorageKey() string {
	if c.SupabaseServiceRoleKey != "" {
		return c.SupabaseServiceRoleKey
	}
	return c.SupabasePublishableKey
}
