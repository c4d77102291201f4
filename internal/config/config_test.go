package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv(APITokenEnvKey, "tok_123")
	t.Setenv(BaseURLEnvKey, "")
	t.Setenv(TimeoutEnvKey, "")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "tok_123", cfg.APIToken)
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.NoError(t, cfg.Validate())
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv(APITokenEnvKey, "tok_123")
	t.Setenv(BaseURLEnvKey, "https://staging.api.nimbus.cloud/v1")
	t.Setenv(TimeoutEnvKey, "5s")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "https://staging.api.nimbus.cloud/v1", cfg.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}

func TestFromEnvBadTimeout(t *testing.T) {
	t.Setenv(APITokenEnvKey, "tok_123")
	t.Setenv(TimeoutEnvKey, "not-a-duration")

	_, err := FromEnv()
	require.Error(t, err)

	t.Setenv(TimeoutEnvKey, "-3s")
	_, err = FromEnv()
	require.Error(t, err)
}

func TestValidateMissingToken(t *testing.T) {
	t.Setenv(APITokenEnvKey, "")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.ErrorIs(t, cfg.Validate(), ErrMissingToken)
}
