package models

import "time"

// Config represents application configuration
type Config struct {
	App          AppConfig          `mapstructure:"app"`
	Server       ServerConfig       `mapstructure:"server"`
	Redis        RedisConfig        `mapstructure:"redis"`
	NATS         NATSConfig         `mapstructure:"nats"`
	JWT          JWTConfig          `mapstructure:"jwt"`
	Logger       LoggerConfig       `mapstructure:"logger"`
	Connection   ConnectionConfig   `mapstructure:"connection"`
	Crowd        CrowdConfig        `mapstructure:"crowd"`
	Sharing      SharingConfig      `mapstructure:"sharing"`
	Notification NotificationConfig `mapstructure:"notification"`
	Push         PushConfig         `mapstructure:"push"`
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"env"`
	Debug       bool   `mapstructure:"debug"`
	Version     string `mapstructure:"version"`
	// UserID identifies the local user this process synchronizes on behalf of
	UserID string `mapstructure:"user_id"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// NATSConfig contains NATS connection configuration. An empty URL selects
// the in-process loopback transport.
type NATSConfig struct {
	URL         string `mapstructure:"url"`
	SubjectRoot string `mapstructure:"subject_root"`
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret string `mapstructure:"secret"`
	Issuer string `mapstructure:"issuer"`
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string `mapstructure:"level"`
	FilePath string `mapstructure:"file_path"`
}

// ConnectionConfig tunes the connection manager state machine
type ConnectionConfig struct {
	MaxReconnectAttempts int           `mapstructure:"max_reconnect_attempts"`
	ConnectTimeout       time.Duration `mapstructure:"connect_timeout"`
	BackoffBase          time.Duration `mapstructure:"backoff_base"`
	BackoffMax           time.Duration `mapstructure:"backoff_max"`
}

// CrowdConfig contains crowd engine configuration
type CrowdConfig struct {
	AnalyticsURL     string        `mapstructure:"analytics_url"`
	LivePollInterval time.Duration `mapstructure:"live_poll_interval"`
	AnalysisInterval time.Duration `mapstructure:"analysis_interval"`
	PollInterval     time.Duration `mapstructure:"poll_interval"`
	StaleFactor      float64       `mapstructure:"stale_factor"`
}

// SharingConfig contains live location sharing configuration
type SharingConfig struct {
	RequestTTL      time.Duration `mapstructure:"request_ttl"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
}

// NotificationConfig contains notification dispatch configuration
type NotificationConfig struct {
	ExpiryInterval  time.Duration `mapstructure:"expiry_interval"`
	DefaultRadiusKm float64       `mapstructure:"default_radius_km"`
}

// PushConfig contains web push (VAPID) configuration
type PushConfig struct {
	VAPIDPublicKey  string `mapstructure:"vapid_public_key"`
	VAPIDPrivateKey string `mapstructure:"vapid_private_key"`
	VAPIDKeysFile   string `mapstructure:"vapid_keys_file"`
	Subscriber      string `mapstructure:"subscriber"`
	TTL             int    `mapstructure:"ttl"`
}
