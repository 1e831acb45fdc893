package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Remote    RemoteConfig    `mapstructure:"remote"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Log       LogConfig       `mapstructure:"log"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
}

// RemoteConfig points each service at its peer's GraphQL endpoint.
type RemoteConfig struct {
	AdminURL    string `mapstructure:"admin_url"`
	PharmacyURL string `mapstructure:"pharmacy_url"`
}

type RateLimitConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	RPS     float64 `mapstructure:"rps"`
	Burst   int     `mapstructure:"burst"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

// envOverrides are applied on top of the file so deployments can adjust
// the usual knobs without editing yaml.
type envOverrides struct {
	Port        int    `envconfig:"PORT"`
	DBHost      string `envconfig:"DB_HOST"`
	DBPort      int    `envconfig:"DB_PORT"`
	DBUser      string `envconfig:"DB_USER"`
	DBPassword  string `envconfig:"DB_PASSWORD"`
	DBName      string `envconfig:"DB_NAME"`
	AdminURL    string `envconfig:"ADMIN_SERVICE_URL"`
	PharmacyURL string `envconfig:"PHARMACY_SERVICE_URL"`
}

// Load reads config/<name>.yaml and applies environment overrides.
func Load(name string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(name)
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	var env envOverrides
	if err := envconfig.Process("", &env); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	config.apply(env)

	return &config, nil
}

func (c *Config) apply(env envOverrides) {
	if env.Port != 0 {
		c.Server.Port = env.Port
	}
	if env.DBHost != "" {
		c.Database.Host = env.DBHost
	}
	if env.DBPort != 0 {
		c.Database.Port = env.DBPort
	}
	if env.DBUser != "" {
		c.Database.User = env.DBUser
	}
	if env.DBPassword != "" {
		c.Database.Password = env.DBPassword
	}
	if env.DBName != "" {
		c.Database.Name = env.DBName
	}
	if env.AdminURL != "" {
		c.Remote.AdminURL = env.AdminURL
	}
	if env.PharmacyURL != "" {
		c.Remote.PharmacyURL = env.PharmacyURL
	}
}
