package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		Port:               "8080",
		Store:              StoreMemory,
		UploadDir:          "uploads",
		UploadMaxBytes:     1024,
		RateLimitPerMinute: 10,
	}
}

func TestValidate_Memory(t *testing.T) {
	cfg := validConfig()
	require.NoError(t, cfg.Validate())
}

func TestValidate_PostgresRequiresDSN(t *testing.T) {
	cfg := validConfig()
	cfg.Store = StorePostgres

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_DSN")

	cfg.DatabaseURL = "postgres://localhost/pets"
	require.NoError(t, cfg.Validate())
}

func TestValidate_CollectsAllProblems(t *testing.T) {
	cfg := validConfig()
	cfg.UploadDir = " "
	cfg.UploadMaxBytes = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UPLOAD_DIR")
	assert.Contains(t, err.Error(), "UPLOAD_MAX_BYTES")
}

func TestString_HidesSecrets(t *testing.T) {
	cfg := validConfig()
	cfg.DatabaseURL = "postgres://user:secret@db/pets"

	out := cfg.String()
	assert.NotContains(t, out, "secret")
}
