package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// completeConfig returns a config that passes validation.
func completeConfig() *StructuredConfig {
	return &StructuredConfig{
		Server: Server{HTTPAddress: "localhost:8080"},
		Storage: Storage{
			DB:    DB{DSN: "postgres://localhost/testdb"},
			Redis: Redis{Addr: "localhost:6379"},
		},
	}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs fails
// validation: required connection settings have no defaults.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.Error(t, err)
	assert.ErrorIs(t, err, errNoServerAddress)
	assert.Nil(t, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		completeConfig(),
		&StructuredConfig{App: App{Version: "1.0.0"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "1.0.0", cfg.App.Version)
}

// TestBuild_FirstNonZeroValueWins verifies merge priority: a value already
// set by an earlier source is not overwritten by a later one.
func TestBuild_FirstNonZeroValueWins(t *testing.T) {
	first := completeConfig()
	first.App.Version = "from-env"
	second := completeConfig()
	second.App.Version = "from-json"

	b := newConfigBuilder()
	b.configs = append(b.configs, first, second)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.App.Version)
}

// TestBuild_AppliesDefaults verifies that optional settings left unset by all
// sources receive their fallback values.
func TestBuild_AppliesDefaults(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, completeConfig())

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, cfg.App.SessionDuration)
	assert.Equal(t, 60*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 20, cfg.App.FeedPageSize)
}

// TestBuild_DefaultsDoNotOverrideExplicitValues verifies that explicitly
// configured values survive the defaults pass.
func TestBuild_DefaultsDoNotOverrideExplicitValues(t *testing.T) {
	explicit := completeConfig()
	explicit.App.SessionDuration = 12 * time.Hour
	explicit.App.FeedPageSize = 50
	explicit.Server.RequestTimeout = 30 * time.Second

	b := newConfigBuilder()
	b.configs = append(b.configs, explicit)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, 12*time.Hour, cfg.App.SessionDuration)
	assert.Equal(t, 50, cfg.App.FeedPageSize)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
}

// ── validate ──────────────────────────────────────────────────────────────────

// TestValidate_MissingRequiredSettings verifies each required-setting check.
func TestValidate_MissingRequiredSettings(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(cfg *StructuredConfig)
		expected error
	}{
		{
			name:     "missing server address",
			mutate:   func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" },
			expected: errNoServerAddress,
		},
		{
			name:     "missing database DSN",
			mutate:   func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			expected: errNoDatabaseDSN,
		},
		{
			name:     "missing redis address",
			mutate:   func(cfg *StructuredConfig) { cfg.Storage.Redis.Addr = "" },
			expected: errNoRedisAddress,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := completeConfig()
			tt.mutate(cfg)

			assert.ErrorIs(t, cfg.validate(), tt.expected)
		})
	}
}

// TestValidate_CompleteConfig verifies that a fully populated config passes.
func TestValidate_CompleteConfig(t *testing.T) {
	assert.NoError(t, completeConfig().validate())
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_AppendsOneConfig verifies that withEnv appends exactly one entry.
func TestWithEnv_AppendsOneConfig(t *testing.T) {
	b := newConfigBuilder()
	b.withEnv()
	assert.Len(t, b.configs, 1)
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_VERSION", "env-version")
	t.Setenv("STORAGE_REDIS_ADDRESS", "localhost:6379")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, "localhost:6379", b.configs[0].Storage.Redis.Addr)
}

// TestWithEnv_NoErrorOnEmptyEnv verifies that withEnv does not set b.err
// when no relevant env vars are present.
func TestWithEnv_NoErrorOnEmptyEnv(t *testing.T) {
	clearEnvVars(t)

	b := newConfigBuilder()
	b.withEnv()
	assert.NoError(t, b.err)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_ReturnsBuilder verifies the fluent interface.
func TestWithJSON_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withJSON())
}

// TestWithJSON_NoOp_WhenNoPathSet verifies that withJSON does nothing when
// no config has a JSONFilePath.
func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithJSON_AppendsConfig_WhenValidFile verifies that a valid JSON file is
// parsed and appended.
func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "json-version"
	payload.Storage.Redis.Addr = "localhost:6379"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-version", b.configs[1].App.Version)
	assert.Equal(t, "localhost:6379", b.configs[1].Storage.Redis.Addr)
}

// TestWithJSON_SetsError_WhenFileNotFound verifies that a missing file path
// sets b.err.
func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_SetsError_WhenMalformedJSON verifies that invalid JSON content
// sets b.err.
func TestWithJSON_SetsError_WhenMalformedJSON(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "bad-*.json")
	require.NoError(t, err)
	_, err = f.WriteString("{not valid json")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: f.Name()})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_UsesLastPath verifies that when multiple configs have a
// JSONFilePath, the last non-empty one wins.
func TestWithJSON_UsesLastPath(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "last-wins"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: ""},
		&StructuredConfig{JSONFilePath: path},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "last-wins", b.configs[2].App.Version)
}
