package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfig 預設設定：本機 SQLite、5 分鐘過期處理、每點折抵 0.5
func DefaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:             "file:data/loyalty.db",
			MaxOpenConns:    25,
			ConnMaxLifetime: "30m",
			SlowThreshold:   "200ms",
		},
		HTTP: HTTPConfig{
			Addr:            ":8080",
			Mode:            "release",
			ShutdownTimeout: "10s",
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "text",
			MaxSizeMB:  100,
			MaxBackups: 5,
			MaxAgeDays: 30,
		},
		Rewards: RewardsConfig{
			ExpireInterval: "5m",
		},
		Redemption: RedemptionConfig{
			PesoPerPoint: "0.5",
		},
	}
}

const defaultHeader = "# Loyalty service configuration\n" +
	"# Every key can be overridden with an environment variable, e.g. LOYALTY_DATABASE_DSN.\n"

// WriteDefault 將預設設定寫成 YAML；檔案已存在時不覆蓋（force 除外）
func WriteDefault(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config: %s already exists", path)
		}
	}

	body, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return fmt.Errorf("config: marshal defaults: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("config: create dir: %w", err)
		}
	}
	return os.WriteFile(path, append([]byte(defaultHeader), body...), 0o644)
}
