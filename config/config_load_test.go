package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Selecting the environment through ENV must not corrupt the env: YAML
// section that shares its name.
func TestNew_WithEnvSelectorSet(t *testing.T) {
	t.Setenv("ENV", "local")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env.Env)
	assert.Equal(t, "tracker", cfg.Env.ServiceName)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	require.NotNil(t, cfg.Postgres)
}

func TestNew_EnvVarOverridesLeaf(t *testing.T) {
	t.Setenv("ENV", "local")
	t.Setenv("SECRETS_ADVENTURER_ACCESS", "overridden-from-env")
	t.Setenv("TOKENS_ACCESSTTL", "30m")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "overridden-from-env", cfg.Secrets.Adventurer.Access)
	assert.Equal(t, 30*time.Minute, cfg.Tokens.AccessTTL)
	// Sibling leaves keep their YAML values.
	assert.NotEmpty(t, cfg.Secrets.Adventurer.Refresh)
	assert.NotEmpty(t, cfg.Secrets.GuildCommander.Access)
}
