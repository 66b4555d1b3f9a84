package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Env      Env
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Media    MediaConfig
	Link     LinkConfig
	NATS     NATSConfig
}

type Env struct {
	Env string `envconfig:"ENV" default:"DEV"`
}

type ServerConfig struct {
	Host string `envconfig:"SERVER_HOST" default:"localhost"`
	Port string `envconfig:"SERVER_PORT" default:"8080"`
}

type AuthConfig struct {
	APIKey     string `envconfig:"API_KEY" required:"true"`
	HeaderName string `envconfig:"AUTH_HEADER_NAME" default:"API-Key"`
}

type MediaConfig struct {
	StoreRoot           string  `envconfig:"MEDIA_STORE_ROOT" default:"store"`
	MaxVideoSizeMB      float64 `envconfig:"MEDIA_MAX_VIDEO_SIZE_MB" default:"25"`
	MinVideoDurationSec int     `envconfig:"MEDIA_MIN_VIDEO_DURATION_SEC" default:"5"`
	MaxVideoDurationSec int     `envconfig:"MEDIA_MAX_VIDEO_DURATION_SEC" default:"300"`
	FFmpegPath          string  `envconfig:"MEDIA_FFMPEG_PATH" default:"ffmpeg"`
	FFprobePath         string  `envconfig:"MEDIA_FFPROBE_PATH" default:"ffprobe"`
}

type LinkConfig struct {
	ExpiryMinutes int           `envconfig:"LINK_EXPIRY_MINUTES" default:"60"`
	CleanupEvery  time.Duration `envconfig:"LINK_CLEANUP_EVERY" default:"15m"`
}

// NATSConfig configures the lifecycle event publisher. An empty URL disables
// publishing entirely.
type NATSConfig struct {
	URL           string `envconfig:"NATS_URL" default:""`
	StreamName    string `envconfig:"NATS_STREAM_NAME" default:"CLIPSHARE"`
	SubjectPrefix string `envconfig:"NATS_SUBJECT_PREFIX" default:"clipshare.video"`
}

type DatabaseConfig struct {
	Host           string        `envconfig:"DB_HOST" required:"true"`
	Port           int           `envconfig:"DB_PORT" default:"5432"`
	User           string        `envconfig:"DB_USER" required:"true"`
	Password       string        `envconfig:"DB_PASSWORD" required:"true"`
	Name           string        `envconfig:"DB_NAME" required:"true"`
	SSLMode        string        `envconfig:"DB_SSLMODE" default:"disable"`
	MaxOpenCons    int           `envconfig:"DB_MAX_OPEN_CONS" default:"25"`
	MaxIdleCons    int           `envconfig:"DB_MAX_IDLE_CONS" default:"5"`
	ConMaxLifeTime time.Duration `envconfig:"DB_CONMAX_LIFE_TIME" default:"5m"`
}

func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
