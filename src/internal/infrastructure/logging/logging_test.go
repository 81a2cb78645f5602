package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jackyeh168/bar_loyalty/src/internal/infrastructure/config"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test 1: JSON 格式與等級過濾
func TestConfigure_JSONFormat_FiltersByLevel(t *testing.T) {
	// Arrange
	logger := log.New()
	var buf bytes.Buffer

	// Act
	closer, err := configure(logger, config.LoggingConfig{Level: "warn", Format: "json"}, &buf)
	require.NoError(t, err)
	defer closer.Close()

	logger.Info("hidden")
	logger.WithField("customer_id", "c-1").Warn("visible")

	// Assert
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "visible", entry["msg"])
	assert.Equal(t, "c-1", entry["customer_id"])
	assert.NotContains(t, buf.String(), "hidden")
}

// Test 2: 設定檔案時同時寫入 stdout 與檔案
func TestConfigure_WithFile_WritesBoth(t *testing.T) {
	// Arrange
	logger := log.New()
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "logs", "loyalty.log")

	// Act
	closer, err := configure(logger, config.LoggingConfig{Level: "info", File: path, MaxSizeMB: 1}, &buf)
	require.NoError(t, err)
	logger.Info("reward issued")
	require.NoError(t, closer.Close())

	// Assert
	body, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(body), "reward issued")
	assert.Contains(t, buf.String(), "reward issued")
}

// Test 3: 空等級 → info
func TestConfigure_DefaultLevel(t *testing.T) {
	logger := log.New()

	_, err := configure(logger, config.LoggingConfig{}, &bytes.Buffer{})

	require.NoError(t, err)
	assert.Equal(t, log.InfoLevel, logger.GetLevel())
}

// Test 4: 無效設定 → 錯誤
func TestConfigure_InvalidSettings(t *testing.T) {
	_, err := configure(log.New(), config.LoggingConfig{Level: "loud"}, &bytes.Buffer{})
	assert.Error(t, err)

	_, err = configure(log.New(), config.LoggingConfig{Format: "xml"}, &bytes.Buffer{})
	assert.Error(t, err)
}
