package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "quests",
			},
		},
		"secrets": map[string]any{
			"guildCommander": map[string]any{
				"access": "",
			},
		},
		"tokens": map[string]any{
			"accessTTL": "15m",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "SECRETS_GUILDCOMMANDER_ACCESS", want: "secrets.guildCommander.access"},
		{envKey: "TOKENS_ACCESSTTL", want: "tokens.accessTTL"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			got, ok := canonicalizeEnvKey(tt.envKey, existing)
			if !ok {
				t.Fatalf("canonicalizeEnvKey(%q) skipped, want %q", tt.envKey, tt.want)
			}
			if got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

// A process variable whose path resolves to a whole YAML section must be
// skipped: its scalar value cannot overlay a map.
func TestCanonicalizeEnvKey_SkipsSectionNodes(t *testing.T) {
	existing := map[string]any{
		"env": map[string]any{
			"env": "local",
		},
		"secrets": map[string]any{
			"adventurer": map[string]any{
				"access": "",
			},
		},
	}

	for _, envKey := range []string{"ENV", "SECRETS", "SECRETS_ADVENTURER"} {
		t.Run(envKey, func(t *testing.T) {
			if got, ok := canonicalizeEnvKey(envKey, existing); ok {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want skip", envKey, got)
			}
		})
	}

	// The nested env.env leaf still accepts an overlay.
	got, ok := canonicalizeEnvKey("ENV_ENV", existing)
	if !ok || got != "env.env" {
		t.Fatalf("canonicalizeEnvKey(ENV_ENV) = %q, %v; want env.env", got, ok)
	}
}
