// shared/config/config.go
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// ClubServiceConfig holds all configuration for the club service. Values are
// read from environment variables; every field has a development default so
// the service starts with an empty environment.
type ClubServiceConfig struct {
	ListenAddr string `envconfig:"CLUB_SERVICE_LISTEN_ADDR" default:":8080"`

	MongoDBConnStr  string `envconfig:"MONGODB_CONN_STR" default:"mongodb://localhost:27017"`
	MongoDBDatabase string `envconfig:"MONGODB_DATABASE" default:"clubhouse"`

	RedisAddr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`

	// PageCap is the maximum number of documents the backing store returns
	// for a single fetch. All multi-batch reads and $in membership filters
	// are chunked to this size.
	PageCap int64 `envconfig:"PAGE_CAP" default:"20"`

	JWTSecret  string        `envconfig:"JWT_SECRET" default:"dev-secret-change-me"`
	JWTExpiry  time.Duration `envconfig:"JWT_EXPIRY" default:"72h"`
	SessionTTL time.Duration `envconfig:"SESSION_TTL" default:"72h"`

	// ReminderHour is the local hour of day at which the schedule reminder
	// job scans for upcoming events.
	ReminderHour int `envconfig:"REMINDER_HOUR" default:"8"`
}

// LoadClubServiceConfig loads configuration for the club service from the
// environment.
func LoadClubServiceConfig() (*ClubServiceConfig, error) {
	var cfg ClubServiceConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load club service config: %w", err)
	}
	if cfg.PageCap <= 0 {
		return nil, fmt.Errorf("PAGE_CAP must be a positive integer (got %d)", cfg.PageCap)
	}
	if cfg.ReminderHour < 0 || cfg.ReminderHour > 23 {
		return nil, fmt.Errorf("REMINDER_HOUR must be between 0 and 23 (got %d)", cfg.ReminderHour)
	}
	return &cfg, nil
}
