// Package config 載入忠誠度服務的 YAML 設定（viper），並提供預設值。
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Config 服務設定
type Config struct {
	Database   DatabaseConfig   `mapstructure:"database" yaml:"database"`
	HTTP       HTTPConfig       `mapstructure:"http" yaml:"http"`
	Logging    LoggingConfig    `mapstructure:"logging" yaml:"logging"`
	Rewards    RewardsConfig    `mapstructure:"rewards" yaml:"rewards"`
	Redis      RedisConfig      `mapstructure:"redis" yaml:"redis"`
	Redemption RedemptionConfig `mapstructure:"redemption" yaml:"redemption"`
}

// DatabaseConfig 資料庫設定；DSN 決定方言（postgres / sqlite）
type DatabaseConfig struct {
	DSN             string `mapstructure:"dsn" yaml:"dsn"`
	MaxOpenConns    int    `mapstructure:"max_open_conns" yaml:"max_open_conns"`
	ConnMaxLifetime string `mapstructure:"conn_max_lifetime" yaml:"conn_max_lifetime"`
	SlowThreshold   string `mapstructure:"slow_threshold" yaml:"slow_threshold"`
}

// HTTPConfig HTTP 服務設定
type HTTPConfig struct {
	Addr            string `mapstructure:"addr" yaml:"addr"`
	Mode            string `mapstructure:"mode" yaml:"mode"` // gin 模式：release / debug / test
	ShutdownTimeout string `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
}

// LoggingConfig 日誌設定；File 為空時只輸出到 stdout
type LoggingConfig struct {
	Level      string `mapstructure:"level" yaml:"level"`
	Format     string `mapstructure:"format" yaml:"format"` // text / json
	File       string `mapstructure:"file" yaml:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" yaml:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days" yaml:"max_age_days"`
}

// RewardsConfig 獎勵過期處理設定
type RewardsConfig struct {
	ExpireInterval string `mapstructure:"expire_interval" yaml:"expire_interval"`
}

// RedisConfig Redis 設定；Addr 為空表示不使用跨實例鎖
type RedisConfig struct {
	Addr     string `mapstructure:"addr" yaml:"addr"`
	Password string `mapstructure:"password" yaml:"password"`
	DB       int    `mapstructure:"db" yaml:"db"`
}

// RedemptionConfig 兌換設定
type RedemptionConfig struct {
	PesoPerPoint string `mapstructure:"peso_per_point" yaml:"peso_per_point"`
}

// Interval 解析過期處理週期
func (c RewardsConfig) Interval() (time.Duration, error) {
	return parseDuration("rewards.expire_interval", c.ExpireInterval)
}

// ShutdownTimeoutDuration 解析關機等待時間
func (c HTTPConfig) ShutdownTimeoutDuration() (time.Duration, error) {
	return parseDuration("http.shutdown_timeout", c.ShutdownTimeout)
}

// Lifetime 解析連線最長存活時間；空字串 → 0（使用預設）
func (c DatabaseConfig) Lifetime() (time.Duration, error) {
	return parseOptionalDuration("database.conn_max_lifetime", c.ConnMaxLifetime)
}

// Slow 解析慢查詢門檻；空字串 → 0（不警告）
func (c DatabaseConfig) Slow() (time.Duration, error) {
	return parseOptionalDuration("database.slow_threshold", c.SlowThreshold)
}

// Rate 解析每點折抵金額
func (c RedemptionConfig) Rate() (decimal.Decimal, error) {
	rate, err := decimal.NewFromString(strings.TrimSpace(c.PesoPerPoint))
	if err != nil {
		return decimal.Zero, fmt.Errorf("config: redemption.peso_per_point: %w", err)
	}
	if !rate.IsPositive() {
		return decimal.Zero, fmt.Errorf("config: redemption.peso_per_point must be positive, got %s", rate)
	}
	return rate, nil
}

// Validate 檢查必要欄位與可解析性
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Database.DSN) == "" {
		return fmt.Errorf("config: database.dsn is required")
	}
	if strings.TrimSpace(c.HTTP.Addr) == "" {
		return fmt.Errorf("config: http.addr is required")
	}
	if _, err := c.Rewards.Interval(); err != nil {
		return err
	}
	if _, err := c.HTTP.ShutdownTimeoutDuration(); err != nil {
		return err
	}
	if _, err := c.Database.Lifetime(); err != nil {
		return err
	}
	if _, err := c.Database.Slow(); err != nil {
		return err
	}
	if _, err := c.Redemption.Rate(); err != nil {
		return err
	}
	switch strings.ToLower(c.Logging.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("config: logging.format must be text or json, got %q", c.Logging.Format)
	}
	return nil
}

func parseDuration(key, value string) (time.Duration, error) {
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("config: %s must be positive, got %s", key, value)
	}
	return d, nil
}

func parseOptionalDuration(key, value string) (time.Duration, error) {
	if strings.TrimSpace(value) == "" {
		return 0, nil
	}
	return parseDuration(key, value)
}
