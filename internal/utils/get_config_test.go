package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("DB_DRIVER: mysql\nDB_NAME: food\nAPP_PORT: \"9000\"\n"), 0o644))

	t.Setenv("DB_NAME", "food_override")
	LoadConfigFile(path)

	assert.Equal(t, "mysql", GetConfig("DB_DRIVER"))
	assert.Equal(t, "food_override", GetConfig("DB_NAME"))
	assert.Equal(t, "9000", GetConfig("APP_PORT"))
	assert.Equal(t, "./logs", GetConfig("LOG_DIR"))
	assert.Equal(t, "admin", GetConfig("ADMIN_USERNAME"))
	assert.Equal(t, "", GetConfig("NO_SUCH_KEY"))
}

func TestLoadConfigFileMissing(t *testing.T) {
	LoadConfigFile(filepath.Join(t.TempDir(), "absent.yaml"))

	assert.Equal(t, "postgres", GetConfig("DB_DRIVER"))
	assert.Equal(t, "8080", GetConfig("APP_PORT"))
	assert.Equal(t, "info", GetConfig("LOG_LEVEL"))
}
