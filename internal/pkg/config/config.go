package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/piresc/crowdpulse/internal/pkg/models"
	"github.com/spf13/viper"
)

// InitConfig loads configuration from the optional file at configPath and
// from the environment. Environment variables override file values and use
// the upper-cased key with "." replaced by "_" (e.g. CROWD_POLL_INTERVAL).
func InitConfig(configPath string) (*models.Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
			}
		}
	}

	configs := &models.Config{}
	if err := v.Unmarshal(configs); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := validate(configs); err != nil {
		return nil, err
	}
	return configs, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "crowdpulse")
	v.SetDefault("app.env", "local")
	v.SetDefault("app.debug", false)
	v.SetDefault("app.version", "dev")
	v.SetDefault("app.user_id", "local")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("server.shutdown_timeout", 15*time.Second)

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)

	v.SetDefault("nats.url", "")
	v.SetDefault("nats.subject_root", "crowdpulse")

	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.issuer", "crowdpulse")

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.file_path", "")

	v.SetDefault("connection.max_reconnect_attempts", 5)
	v.SetDefault("connection.connect_timeout", 5*time.Second)
	v.SetDefault("connection.backoff_base", 500*time.Millisecond)
	v.SetDefault("connection.backoff_max", 10*time.Second)

	v.SetDefault("crowd.analytics_url", "")
	v.SetDefault("crowd.live_poll_interval", 5*time.Second)
	v.SetDefault("crowd.analysis_interval", 15*time.Second)
	v.SetDefault("crowd.poll_interval", 30*time.Second)
	v.SetDefault("crowd.stale_factor", 2.0)

	v.SetDefault("sharing.request_ttl", 5*time.Minute)
	v.SetDefault("sharing.cleanup_interval", time.Minute)

	v.SetDefault("notification.expiry_interval", time.Minute)
	v.SetDefault("notification.default_radius_km", 5.0)

	v.SetDefault("push.vapid_public_key", "")
	v.SetDefault("push.vapid_private_key", "")
	v.SetDefault("push.vapid_keys_file", "")
	v.SetDefault("push.subscriber", "admin@crowdpulse.local")
	v.SetDefault("push.ttl", 60)
}

func validate(c *models.Config) error {
	if c.Connection.MaxReconnectAttempts < 0 {
		return fmt.Errorf("connection.max_reconnect_attempts must not be negative, got %d", c.Connection.MaxReconnectAttempts)
	}
	if c.Crowd.StaleFactor <= 0 {
		return fmt.Errorf("crowd.stale_factor must be positive, got %v", c.Crowd.StaleFactor)
	}
	if c.Sharing.RequestTTL <= 0 {
		return fmt.Errorf("sharing.request_ttl must be positive, got %s", c.Sharing.RequestTTL)
	}
	return nil
}
