// Package config loads application configuration from a TOML file.
package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// MainConfig holds basic server information.
type MainConfig struct {
	AppName string `toml:"appName"`
	Host    string `toml:"host"`
	Port    int    `toml:"port"`
	// AppURL is the public base URL of this server. When set, new Evolution
	// instances are created with "<appUrl>/api/webhook" as their webhook
	// target; when empty, instances are created without a webhook.
	AppURL string `toml:"appUrl"`
}

// MysqlConfig holds MySQL connection parameters.
type MysqlConfig struct {
	Host         string `toml:"host"`
	Port         int    `toml:"port"`
	User         string `toml:"user"`
	Password     string `toml:"password"`
	DatabaseName string `toml:"databaseName"`
}

// RedisConfig holds redis connection parameters.
type RedisConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	Password string `toml:"password"`
	Db       int    `toml:"db"`
}

// LogConfig configures zap output and lumberjack rotation.
type LogConfig struct {
	LogPath    string `toml:"logPath"`
	FileName   string `toml:"fileName"`
	MaxSize    int    `toml:"maxSize"`    // MB per file
	MaxBackups int    `toml:"maxBackups"` // rotated files kept
	MaxAge     int    `toml:"maxAge"`     // days
	Level      string `toml:"level"`      // debug, info, warn, error
}

// JWTConfig configures token signing.
type JWTConfig struct {
	Secret             string `toml:"secret"`
	AccessTokenExpiry  int    `toml:"accessTokenExpiry"`  // minutes
	RefreshTokenExpiry int    `toml:"refreshTokenExpiry"` // hours
}

// EvolutionConfig configures the inbound webhook endpoint. The per-tenant
// gateway base URL and API key live on the tenant row, not here.
type EvolutionConfig struct {
	// WebhookToken, when non-empty, must be sent by the gateway in the
	// "apikey" header of webhook deliveries. Empty disables the check and
	// the endpoint trusts any caller, matching the gateway default.
	WebhookToken string `toml:"webhookToken"`
}

// KafkaConfig configures the inbox push fan-out.
// messageMode "channel" keeps events in-process; "kafka" routes them through
// a topic so multiple server instances can push to their own websockets.
type KafkaConfig struct {
	MessageMode string        `toml:"messageMode"`
	HostPort    string        `toml:"hostPort"`
	InboxTopic  string        `toml:"inboxTopic"`
	Timeout     time.Duration `toml:"timeout"`
}

// Config aggregates all sections.
type Config struct {
	MainConfig      `toml:"mainConfig"`
	MysqlConfig     `toml:"mysqlConfig"`
	RedisConfig     `toml:"redisConfig"`
	LogConfig       `toml:"logConfig"`
	JWTConfig       `toml:"jwtConfig"`
	EvolutionConfig `toml:"evolutionConfig"`
	KafkaConfig     `toml:"kafkaConfig"`
}

var config *Config

// LoadConfig tries the candidate paths in order and stops at the first file
// that decodes.
func LoadConfig() error {
	paths := []string{
		"configs/config_local.toml",
		"configs/config.toml",
		"../../configs/config_local.toml",
		"../../configs/config.toml",
	}

	for _, path := range paths {
		if _, err := toml.DecodeFile(path, config); err == nil {
			return nil
		}
	}

	return fmt.Errorf("could not find configuration file in any of the search paths")
}

// GetConfig returns the lazily loaded configuration singleton.
func GetConfig() *Config {
	if config == nil {
		config = new(Config)
		_ = LoadConfig()
	}
	return config
}
