package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix 環境變數前綴：database.dsn → LOYALTY_DATABASE_DSN
const EnvPrefix = "LOYALTY"

// DefaultPath 未指定 --config 時讀取的檔案
const DefaultPath = "config.yaml"

// Load 載入設定
//
// 優先順序（高到低）：環境變數 → 設定檔 → DefaultConfig()
// path 為空時讀取 DefaultPath；檔案不存在時只使用預設值與環境變數。
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	registerDefaults(v, DefaultConfig())

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound), errors.Is(err, os.ErrNotExist):
			if explicit {
				return nil, fmt.Errorf("config: %s not found", path)
			}
		default:
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// registerDefaults 每個鍵都要有預設值，AutomaticEnv 才能在 Unmarshal 時覆蓋
func registerDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("database.dsn", d.Database.DSN)
	v.SetDefault("database.max_open_conns", d.Database.MaxOpenConns)
	v.SetDefault("database.conn_max_lifetime", d.Database.ConnMaxLifetime)
	v.SetDefault("database.slow_threshold", d.Database.SlowThreshold)

	v.SetDefault("http.addr", d.HTTP.Addr)
	v.SetDefault("http.mode", d.HTTP.Mode)
	v.SetDefault("http.shutdown_timeout", d.HTTP.ShutdownTimeout)

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("logging.file", d.Logging.File)
	v.SetDefault("logging.max_size_mb", d.Logging.MaxSizeMB)
	v.SetDefault("logging.max_backups", d.Logging.MaxBackups)
	v.SetDefault("logging.max_age_days", d.Logging.MaxAgeDays)

	v.SetDefault("rewards.expire_interval", d.Rewards.ExpireInterval)

	v.SetDefault("redis.addr", d.Redis.Addr)
	v.SetDefault("redis.password", d.Redis.Password)
	v.SetDefault("redis.db", d.Redis.DB)

	v.SetDefault("redemption.peso_per_point", d.Redemption.PesoPerPoint)
}
