package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Log        Logger         `mapstructure:"logger"`
	DB         Database       `mapstructure:"database"`
	API        API            `mapstructure:"api"`
	LLM        LLM            `mapstructure:"llm"`
	Similarity Similarity     `mapstructure:"similarity"`
	Ingest     Ingest         `mapstructure:"ingest"`
	Cache      Cache          `mapstructure:"cache"`
	Telegram   TelegramConfig `mapstructure:"telegram"`
}

type Logger struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

type Database struct {
	Driver          string `mapstructure:"driver"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	User            string `mapstructure:"user"`
	Password        string `mapstructure:"password"`
	DBName          string `mapstructure:"name"`
	SSLMode         string `mapstructure:"ssl_mode"`
	TimeZone        string `mapstructure:"time_zone"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime string `mapstructure:"conn_max_lifetime"`
	LogLevel        string `mapstructure:"log_level"`
}

type API struct {
	Port              int           `mapstructure:"port"`
	RateLimitPerSec   int           `mapstructure:"rate_limit_per_sec"`
	RateLimitBurst    int           `mapstructure:"rate_limit_burst"`
	RateLimitExpireIn time.Duration `mapstructure:"rate_limit_expire_in"`
}

// LLM configures the text-generation collaborator used for comparison narratives.
type LLM struct {
	Provider            string        `mapstructure:"provider"`
	BaseURL             string        `mapstructure:"base_url"`
	Model               string        `mapstructure:"model"`
	APIKey              string        `mapstructure:"api_key"`
	Timeout             time.Duration `mapstructure:"timeout"`
	MaxRequestPerMinute int           `mapstructure:"max_request_per_minute"`
	MaxTokenPerMinute   int           `mapstructure:"max_token_per_minute"`
}

type Similarity struct {
	PythonPath      string        `mapstructure:"python_path"`
	ScriptPath      string        `mapstructure:"script_path"`
	DefaultTop      int           `mapstructure:"default_top"`
	Timeout         time.Duration `mapstructure:"timeout"`
	CacheExpiration time.Duration `mapstructure:"cache_expiration"`
}

type Ingest struct {
	CSVPath        string `mapstructure:"csv_path"`
	OnStart        bool   `mapstructure:"on_start"`
	Schedule       string `mapstructure:"schedule"`
	BatchSize      int    `mapstructure:"batch_size"`
	MaxConcurrency int    `mapstructure:"max_concurrency"`
}

type Cache struct {
	DefaultExpiration   time.Duration `mapstructure:"default_expiration"`
	CleanupInterval     time.Duration `mapstructure:"cleanup_interval"`
	SysParamExpDuration time.Duration `mapstructure:"sys_param_exp_duration"`
}

type TelegramConfig struct {
	BotToken                  string        `mapstructure:"bot_token"`
	WebhookURL                string        `mapstructure:"webhook_url"`
	TimeoutDuration           time.Duration `mapstructure:"timeout_duration"`
	MaxGlobalRequestPerSecond int           `mapstructure:"max_global_request_per_second"`
	MaxUserRequestPerSecond   int           `mapstructure:"max_user_request_per_second"`
	RateLimitCleanupDuration  time.Duration `mapstructure:"rate_limit_cleanup_duration"`
	RateLimitExpireDuration   time.Duration `mapstructure:"rate_limit_expire_duration"`
}

func setDefaults() {
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.encoding", "json")

	viper.SetDefault("database.driver", "postgres")
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.ssl_mode", "disable")

	viper.SetDefault("api.port", 8080)
	viper.SetDefault("api.rate_limit_per_sec", 10)
	viper.SetDefault("api.rate_limit_burst", 30)
	viper.SetDefault("api.rate_limit_expire_in", 3*time.Minute)

	viper.SetDefault("llm.provider", "ollama")
	viper.SetDefault("llm.base_url", "http://localhost:11434")
	viper.SetDefault("llm.model", "llama2")
	viper.SetDefault("llm.timeout", 300*time.Second)
	viper.SetDefault("llm.max_request_per_minute", 60)
	viper.SetDefault("llm.max_token_per_minute", 0)

	viper.SetDefault("similarity.python_path", "python")
	viper.SetDefault("similarity.script_path", "scripts/similarity_search.py")
	viper.SetDefault("similarity.default_top", 10)
	viper.SetDefault("similarity.timeout", 2*time.Minute)
	viper.SetDefault("similarity.cache_expiration", 10*time.Minute)

	viper.SetDefault("ingest.batch_size", 200)
	viper.SetDefault("ingest.max_concurrency", 4)

	viper.SetDefault("cache.default_expiration", 10*time.Minute)
	viper.SetDefault("cache.cleanup_interval", 15*time.Minute)
	viper.SetDefault("cache.sys_param_exp_duration", 5*time.Minute)

	viper.SetDefault("telegram.timeout_duration", 5*time.Minute)
	viper.SetDefault("telegram.max_global_request_per_second", 30)
	viper.SetDefault("telegram.max_user_request_per_second", 1)
	viper.SetDefault("telegram.rate_limit_cleanup_duration", 10*time.Minute)
	viper.SetDefault("telegram.rate_limit_expire_duration", 30*time.Minute)
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file loaded:", err)
	}

	viper.SetConfigType("yaml")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AddConfigPath(".")
	viper.AutomaticEnv()
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		fmt.Println("No config file loaded:", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
