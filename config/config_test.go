package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wacul/ptr"
)

func TestMockConfigAppliesDefaults(t *testing.T) {
	MockConfig(&Configuration{})

	cnf, err := Fetch()
	require.NoError(t, err)
	assert.Equal(t, "Vadi Server", cnf.ProjectName)
	assert.Equal(t, DefaultPort, cnf.Server.Port)
	assert.Equal(t, BackendSQLite, cnf.Storage.Backend)
	assert.Equal(t, DefaultStorageKey, cnf.Storage.Key)
	assert.Equal(t, DefaultSQLitePath, cnf.Storage.SQLitePath)
	assert.NotNil(t, cnf.RateLimit.CleanupIntervalSec)
}

func TestRateLimitDefaults(t *testing.T) {
	MockConfig(&Configuration{
		RateLimit: RateLimitConfig{RequestsPerSecond: ptr.Float64(5)},
	})
	cnf, err := Fetch()
	require.NoError(t, err)
	require.NotNil(t, cnf.RateLimit.Burst)
	assert.Equal(t, 10, *cnf.RateLimit.Burst)

	MockConfig(&Configuration{
		RateLimit: RateLimitConfig{Burst: ptr.Int(8)},
	})
	cnf, err = Fetch()
	require.NoError(t, err)
	require.NotNil(t, cnf.RateLimit.RequestsPerSecond)
	assert.Equal(t, 4.0, *cnf.RateLimit.RequestsPerSecond)
}

func TestRedisBackendRequiresDSN(t *testing.T) {
	cnf := &Configuration{Storage: StorageConfig{Backend: BackendRedis}}
	assert.Error(t, cnf.validateAndAddDefaults())

	cnf = &Configuration{Storage: StorageConfig{Backend: BackendRedis, RedisDSN: "redis://localhost:6379"}}
	assert.NoError(t, cnf.validateAndAddDefaults())
}

func TestUnknownBackendRejected(t *testing.T) {
	cnf := &Configuration{Storage: StorageConfig{Backend: "cassandra"}}
	assert.Error(t, cnf.validateAndAddDefaults())
}

func TestInitConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vadi.json")
	payload, err := json.Marshal(map[string]interface{}{
		"project_name": "Vadi Test",
		"server":       map[string]string{"port": "6001"},
		"storage":      map[string]string{"backend": "memory", "key": "test-key"},
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, payload, 0o600))

	require.NoError(t, InitConfig(path))
	cnf, err := Fetch()
	require.NoError(t, err)
	assert.Equal(t, "Vadi Test", cnf.ProjectName)
	assert.Equal(t, "6001", cnf.Server.Port)
	assert.Equal(t, BackendMemory, cnf.Storage.Backend)
	assert.Equal(t, "test-key", cnf.Storage.Key)
}

func TestInitConfigMissingFileUsesEnv(t *testing.T) {
	t.Setenv("VADI_SERVER_PORT", "7001")
	t.Setenv("VADI_STORAGE_BACKEND", "memory")

	require.NoError(t, InitConfig(filepath.Join(t.TempDir(), "absent.json")))
	cnf, err := Fetch()
	require.NoError(t, err)
	assert.Equal(t, "7001", cnf.Server.Port)
	assert.Equal(t, BackendMemory, cnf.Storage.Backend)
}
