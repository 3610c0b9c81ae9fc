package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all application configuration parsed from environment variables.
type Config struct {
	Port int `env:"PORT" envDefault:"3000"`

	// Database
	DatabaseURL string `env:"DATABASE_URL"`

	// Admin credentials + session lifetime
	AdminUser  string        `env:"ADMIN_USER" envDefault:"admin"`
	AdminPass  string        `env:"ADMIN_PASS" envDefault:"password"`
	SessionTTL time.Duration `env:"ADMIN_SESSION_TTL" envDefault:"2h"`

	// Uploads
	UploadDir       string        `env:"UPLOAD_DIR" envDefault:"./uploads"`
	MaxUploadBytes  int64         `env:"MAX_UPLOAD_BYTES" envDefault:"20971520"` // 20MB per file
	UploadRetention time.Duration `env:"UPLOAD_RETENTION" envDefault:"24h"`

	// CORS
	AllowedOrigins string `env:"ALLOWED_ORIGINS" envDefault:"http://localhost:3000"`

	// Mailer (optional — both SMTP_USER and SMTP_PASS must be set to enable)
	SMTPHost string `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	SMTPPort int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser string `env:"SMTP_USER"`
	SMTPPass string `env:"SMTP_PASS"`

	// Fixed payment identifiers for QR generation
	FixedUPI    string `env:"FIXED_UPI"`
	FixedAmount string `env:"FIXED_AMOUNT" envDefault:"499"`

	// R2/S3 upload backend (optional — R2_BUCKET_NAME selects it over disk)
	CloudflareAccountID string `env:"CLOUDFLARE_ACCOUNT_ID"`
	R2AccessKeyID       string `env:"R2_ACCESS_KEY_ID"`
	R2AccessKeySecret   string `env:"R2_ACCESS_KEY_SECRET"`
	R2Bucket            string `env:"R2_BUCKET_NAME"`
}

// Load parses environment variables into a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// MailerEnabled reports whether outbound email is configured.
func (c *Config) MailerEnabled() bool {
	return c.SMTPUser != "" && c.SMTPPass != ""
}

// UseR2 reports whether uploads should go to R2 instead of local disk.
func (c *Config) UseR2() bool {
	return c.R2Bucket != ""
}
