package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	DB        DBConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Catalog   CatalogConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

// CatalogConfig selects the machine catalog backend. Driver is either
// "postgres" (default) or "file", in which case FilePath points at the
// JSON catalog snapshot.
type CatalogConfig struct {
	Driver   string
	FilePath string
	CacheTTL time.Duration
}

type RateLimitConfig struct {
	RPS   float64
	Burst int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	refreshExpiry, err := time.ParseDuration(viper.GetString("JWT_REFRESH_EXPIRY"))
	if err != nil {
		refreshExpiry = 7 * 24 * time.Hour
	}

	cacheTTL, err := time.ParseDuration(viper.GetString("CATALOG_CACHE_TTL"))
	if err != nil {
		cacheTTL = 5 * time.Minute
	}

	catalogDriver := viper.GetString("CATALOG_DRIVER")
	if catalogDriver == "" {
		catalogDriver = "postgres"
	}

	rps := viper.GetFloat64("RATE_LIMIT_RPS")
	if rps <= 0 {
		rps = 5
	}
	burst := viper.GetInt("RATE_LIMIT_BURST")
	if burst <= 0 {
		burst = 10
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:        viper.GetString("JWT_SECRET"),
			AccessExpiry:  accessExpiry,
			RefreshExpiry: refreshExpiry,
		},
		Catalog: CatalogConfig{
			Driver:   catalogDriver,
			FilePath: viper.GetString("CATALOG_FILE_PATH"),
			CacheTTL: cacheTTL,
		},
		RateLimit: RateLimitConfig{
			RPS:   rps,
			Burst: burst,
		},
	}

	return config, nil
}
