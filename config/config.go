// Package config loads the service configuration from a per-environment
// YAML file with environment-variable overrides.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const defaultPath = "."

// Defaults applied when the token section is absent.
const (
	DefaultAccessTTL  = 15 * time.Minute
	DefaultRefreshTTL = 7 * 24 * time.Hour
)

// SecretPair holds the two signing secrets of one principal kind. Access and
// refresh tokens never share a secret.
type SecretPair struct {
	Access  string `json:"access" yaml:"access"`
	Refresh string `json:"refresh" yaml:"refresh"`
}

// Log holds logger settings.
type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// TokensConfig holds token lifetimes, shared by both principal kinds.
type TokensConfig struct {
	AccessTTL  time.Duration `json:"accessTTL" yaml:"accessTTL"`
	RefreshTTL time.Duration `json:"refreshTTL" yaml:"refreshTTL"`
}

// AuthConfig holds credential-hashing settings.
type AuthConfig struct {
	BcryptCost int `json:"bcryptCost" yaml:"bcryptCost"`
}

// Config is the process-wide configuration. Signing secrets are loaded once
// here and passed by reference into the token service at construction; they
// are immutable for the process lifetime.
type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Secrets struct {
		GuildCommander SecretPair `json:"guildCommander" yaml:"guildCommander"`
		Adventurer     SecretPair `json:"adventurer" yaml:"adventurer"`
	} `json:"secrets" yaml:"secrets"`

	Tokens TokensConfig `json:"tokens" yaml:"tokens"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`
}

// LoadWithEnv loads <currEnv>.yaml through koanf and overlays environment
// variables on top of it.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for the config file.
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Overlay environment variables. SECRETS_ADVENTURER_ACCESS becomes
	// secrets.adventurer.access, aligned with the camelCase YAML keys.
	// Variables whose canonical path lands on a whole YAML section are
	// skipped, otherwise unrelated process variables such as ENV (the
	// environment selector itself) would replace the section with a string.
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			key, ok := canonicalizeEnvKey(k, existingConfigMap)
			if !ok {
				return "", nil
			}

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

// New loads the configuration for fx. The environment name comes from ENV
// (default "local"); the file is searched relative to common run locations.
func New() (*Config, error) {
	envName := os.Getenv("ENV")
	if envName == "" {
		envName = "local"
	}

	cfg, err := LoadWithEnv[Config](envName, "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if cfg.Tokens.AccessTTL <= 0 {
		cfg.Tokens.AccessTTL = DefaultAccessTTL
	}
	if cfg.Tokens.RefreshTTL <= 0 {
		cfg.Tokens.RefreshTTL = DefaultRefreshTTL
	}

	return cfg, nil
}

// canonicalizeEnvKey converts ENV_VAR_NAME into a dotted path, reusing the
// exact key casing already present in the loaded YAML so overlays merge into
// the same branch. Example: SECRETS_GUILDCOMMANDER_REFRESH ->
// secrets.guildCommander.refresh. The second return value is false when the
// variable must be skipped: a scalar can only overlay a scalar, so a path
// that resolves to a map node in the YAML (ENV -> the env section, SECRETS
// -> the secrets section) is rejected instead of clobbering the section.
func canonicalizeEnvKey(rawKey string, existing map[string]any) (string, bool) {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	var child map[string]any
	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
			child = next
		} else {
			canonical = append(canonical, segment)
			current = nil
			child = nil
		}
	}

	if child != nil {
		return "", false
	}

	return strings.Join(canonical, "."), true
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
