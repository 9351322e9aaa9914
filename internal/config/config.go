package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	CatalogAPI CatalogAPIConfig `mapstructure:"catalog_api"`
	Cache      CacheConfig      `mapstructure:"cache"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Log        LogConfig        `mapstructure:"log"`
	Browse     BrowseConfig     `mapstructure:"browse"`
}

type ServerConfig struct {
	Port           int           `mapstructure:"port"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

type CatalogAPIConfig struct {
	BaseURL              string        `mapstructure:"base_url"`
	Timeout              time.Duration `mapstructure:"timeout"`
	MaxRetries           int           `mapstructure:"max_retries"`
	MaxRequestsPerSecond int           `mapstructure:"max_requests_per_second"`
	// ScopeSubcategories sends the selected category to /api/subcategories.
	ScopeSubcategories bool `mapstructure:"scope_subcategories"`
}

type CacheConfig struct {
	Driver string        `mapstructure:"driver"`
	TTL    time.Duration `mapstructure:"ttl"`
}

type RedisConfig struct {
	Host      string `mapstructure:"host"`
	Port      int    `mapstructure:"port"`
	Password  string `mapstructure:"password"`
	Database  int    `mapstructure:"database"`
	KeyPrefix string `mapstructure:"key_prefix"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type BrowseConfig struct {
	LogFile       string `mapstructure:"log_file"`
	MarkdownStyle string `mapstructure:"markdown_style"`
}

const (
	CacheDriverMemory = "memory"
	CacheDriverRedis  = "redis"
)

// Load reads configuration from path (or config.yaml in . and ./configs when
// path is empty), then applies environment overrides such as
// CATALOG_API_BASE_URL. A missing config file is not an error.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.CatalogAPI.BaseURL == "" {
		return fmt.Errorf("catalog_api.base_url is required")
	}
	switch c.Cache.Driver {
	case CacheDriverMemory, CacheDriverRedis:
	default:
		return fmt.Errorf("unknown cache driver %q", c.Cache.Driver)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.request_timeout", "30s")

	v.SetDefault("catalog_api.base_url", "http://localhost:3000")
	v.SetDefault("catalog_api.timeout", "10s")
	v.SetDefault("catalog_api.max_retries", 0)
	v.SetDefault("catalog_api.max_requests_per_second", 0)
	v.SetDefault("catalog_api.scope_subcategories", false)

	v.SetDefault("cache.driver", CacheDriverMemory)
	v.SetDefault("cache.ttl", "5m")

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.database", 0)
	v.SetDefault("redis.key_prefix", "stackshop:")

	v.SetDefault("log.level", "info")

	v.SetDefault("browse.log_file", "")
	v.SetDefault("browse.markdown_style", "auto")
}
