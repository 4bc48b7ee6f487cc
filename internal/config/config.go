package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Suggestion provider variants selectable via suggest.provider.
const (
	ProviderSerpAPI = "serpapi"
	ProviderGoogle  = "google"
)

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

type SuggestConfig struct {
	Provider       string `mapstructure:"provider"`
	SerpAPIKey     string `mapstructure:"serpapi_key"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	MaxResults     int    `mapstructure:"max_results"`
	HL             string `mapstructure:"hl"`
	GL             string `mapstructure:"gl"`
}

type RedisConfig struct {
	Addr            string `mapstructure:"addr"`
	Password        string `mapstructure:"password"`
	DB              int    `mapstructure:"db"`
	CacheTTLMinutes int    `mapstructure:"cache_ttl_minutes"`
}

type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Suggest SuggestConfig `mapstructure:"suggest"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Logger  LoggerConfig  `mapstructure:"logger"`
}

var (
	once   sync.Once
	cfg    *Config
	cfgErr error
)

// LoadConfig builds the config from defaults, an optional config file and
// environment variables (singleton). An empty path skips the file step.
func LoadConfig(path string) (*Config, error) {
	once.Do(func() {
		cfg, cfgErr = load(path)
	})
	return cfg, cfgErr
}

func load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8440)
	v.SetDefault("suggest.provider", "")
	v.SetDefault("suggest.serpapi_key", "")
	v.SetDefault("suggest.timeout_seconds", 5)
	v.SetDefault("suggest.max_results", 10)
	v.SetDefault("suggest.hl", "en")
	v.SetDefault("suggest.gl", "us")
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.cache_ttl_minutes", 15)
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Flat aliases in addition to the SECTION_KEY form.
	v.BindEnv("server.port", "PORT", "SERVER_PORT")
	v.BindEnv("suggest.provider", "SUGGEST_PROVIDER")
	v.BindEnv("suggest.serpapi_key", "SERPAPI_API_KEY")
	v.BindEnv("redis.addr", "REDIS_ADDR")
	v.BindEnv("redis.password", "REDIS_PASSWORD")
	v.BindEnv("logger.level", "LOG_LEVEL")
	v.BindEnv("logger.format", "LOG_FORMAT")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("invalid config format: %w", err)
	}

	// Provider defaults to serpapi when a key is present, otherwise the
	// keyless public endpoint.
	if c.Suggest.Provider == "" {
		if c.Suggest.SerpAPIKey != "" {
			c.Suggest.Provider = ProviderSerpAPI
		} else {
			c.Suggest.Provider = ProviderGoogle
		}
	}

	if err := validate(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

func validate(c *Config) error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server port %d out of range", c.Server.Port)
	}
	switch c.Suggest.Provider {
	case ProviderSerpAPI:
		if c.Suggest.SerpAPIKey == "" {
			return errors.New("serpapi provider requires SERPAPI_API_KEY")
		}
	case ProviderGoogle:
	default:
		return fmt.Errorf("unknown suggest provider %q", c.Suggest.Provider)
	}
	if c.Suggest.TimeoutSeconds <= 0 {
		return errors.New("suggest timeout must be positive")
	}
	if c.Suggest.MaxResults <= 0 {
		return errors.New("suggest max_results must be positive")
	}
	return nil
}

// GetConfig returns the loaded config (must call LoadConfig first)
func GetConfig() *Config {
	return cfg
}

// ResetConfigForTest resets the singleton state (for testing only)
func ResetConfigForTest() {
	once = sync.Once{}
	cfg = nil
	cfgErr = nil
}
