// Package config loads and validates the application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Dictionary DictionaryConfig `mapstructure:"dictionary"`
	Auth       AuthConfig       `mapstructure:"auth"`
	Settings   SettingsConfig   `mapstructure:"settings"`
}

type ServerConfig struct {
	Port int        `mapstructure:"port" validate:"required,min=1,max=65535"`
	CORS CORSConfig `mapstructure:"cors"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type DatabaseConfig struct {
	Host            string            `mapstructure:"host" validate:"required"`
	Port            int               `mapstructure:"port" validate:"required,min=1,max=65535"`
	Username        string            `mapstructure:"username" validate:"required"`
	Password        string            `mapstructure:"password"`
	Database        string            `mapstructure:"database" validate:"required"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime"`
}

type DictionaryConfig struct {
	Host      string `mapstructure:"host" validate:"required,hostname"`
	UserAgent string `mapstructure:"user_agent"`
}

type AuthConfig struct {
	JWTSecret     string `mapstructure:"jwt_secret"`
	TokenTTLHours int    `mapstructure:"token_ttl_hours" validate:"min=1"`
}

type SettingsConfig struct {
	FilePath string `mapstructure:"file_path"`
}

func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/kanjistudy")
	}

	v.SetDefault("server.port", 8080)
	v.SetDefault("database.host", "127.0.0.1")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.username", "kanjistudy")
	v.SetDefault("database.database", "kanjistudy")
	v.SetDefault("dictionary.host", "jisho.org")
	v.SetDefault("dictionary.user_agent", "KanjiStudy/1.0")
	v.SetDefault("auth.token_ttl_hours", 72)
	v.SetDefault("settings.file_path", defaultSettingsPath())

	// Bind secrets to environment variables only (not from config file)
	if err := v.BindEnv("database.password", "KANJISTUDY_DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind KANJISTUDY_DB_PASSWORD environment variable: %w", err)
	}
	if err := v.BindEnv("auth.jwt_secret", "KANJISTUDY_JWT_SECRET"); err != nil {
		return nil, fmt.Errorf("failed to bind KANJISTUDY_JWT_SECRET environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func defaultSettingsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "settings.yml")
	}
	return filepath.Join(home, ".config", "kanjistudy", "settings.yml")
}
