package config

import (
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the client core.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	API      APIConfig      `mapstructure:"api"`
	Session  SessionConfig  `mapstructure:"session"`
	Images   ImagesConfig   `mapstructure:"images"`
	S3       S3Config       `mapstructure:"s3"`
	Calendar CalendarConfig `mapstructure:"calendar"`
}

// ServerConfig is the local API the UI layer talks to.
type ServerConfig struct {
	Address string `mapstructure:"address" validate:"required"`
}

// APIConfig points at the coaching backend.
type APIConfig struct {
	BaseURL string        `mapstructure:"base_url" validate:"required,url"`
	Version string        `mapstructure:"version" validate:"required"`
	Timeout time.Duration `mapstructure:"timeout" validate:"gt=0"`
}

type SessionConfig struct {
	Driver        string `mapstructure:"driver" validate:"oneof=sqlite mongo memory"`
	SQLitePath    string `mapstructure:"sqlite_path" validate:"required_if=Driver sqlite"`
	MongoURI      string `mapstructure:"mongo_uri" validate:"required_if=Driver mongo"`
	MongoDatabase string `mapstructure:"mongo_database" validate:"required_if=Driver mongo"`
	Secret        string `mapstructure:"secret" validate:"required,min=8"`
}

type ImagesConfig struct {
	Source      string `mapstructure:"source" validate:"oneof=api s3"`
	AvatarSize  int    `mapstructure:"avatar_size" validate:"gte=16,lte=2048"`
	Concurrency int    `mapstructure:"concurrency" validate:"gte=1,lte=32"`
}

type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	BucketName      string `mapstructure:"bucket_name"`
	PhotoPrefix     string `mapstructure:"photo_prefix"`
	UseSSL          bool   `mapstructure:"use_ssl"`
}

type CalendarConfig struct {
	Language string `mapstructure:"language" validate:"required"`
}

// LoadConfig reads configuration from file or environment variables.
// A .env file next to the config file is loaded first, when present.
func LoadConfig(path string) (config Config, err error) {
	if err = godotenv.Load(filepath.Join(path, ".env")); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return config, err
		}
		err = nil
	}

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// server.address -> SERVER_ADDRESS
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	v.SetDefault("server.address", "127.0.0.1:8090")
	v.SetDefault("api.base_url", "http://localhost:3000")
	v.SetDefault("api.version", "v1")
	v.SetDefault("api.timeout", "90s")
	v.SetDefault("session.driver", "sqlite")
	v.SetDefault("session.sqlite_path", "session.db")
	v.SetDefault("session.mongo_uri", "")
	v.SetDefault("session.mongo_database", "training_client")
	v.SetDefault("session.secret", "")
	v.SetDefault("images.source", "api")
	v.SetDefault("images.avatar_size", 256)
	v.SetDefault("images.concurrency", 4)
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.access_key_id", "")
	v.SetDefault("s3.secret_access_key", "")
	v.SetDefault("s3.bucket_name", "")
	v.SetDefault("s3.photo_prefix", "")
	v.SetDefault("s3.use_ssl", true)
	v.SetDefault("calendar.language", "es")

	err = v.ReadInConfig()
	// a missing file is fine, env vars and defaults may be enough
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		log.Println("INFO: Config file not found, using defaults/env vars.")
		err = nil
	} else if err != nil {
		return
	}

	if err = v.Unmarshal(&config); err != nil {
		return
	}

	err = Validate(config)
	return
}

// Validate checks the struct tags plus the rules that span sections.
func Validate(cfg Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return err
	}
	if cfg.Images.Source == "s3" && cfg.S3.BucketName == "" {
		return errors.New("s3.bucket_name is required when images.source is s3")
	}
	return nil
}
