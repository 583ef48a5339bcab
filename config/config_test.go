package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagarc03/quickserve/config"
)

// clearEnv blanks variables that would leak in from the host. Viper treats
// empty variables as unset.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "APP_ENV", "QUICKSERVE_ENV", "QUICKSERVE_SERVER_PORT",
		"QUICKSERVE_SERVER_MAX_BODY_BYTES", "QUICKSERVE_LOG_LEVEL",
		"QUICKSERVE_CORS_ENABLED", "QUICKSERVE_CORS_ALLOWED_ORIGINS",
	} {
		t.Setenv(k, "")
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load(nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.True(t, cfg.DevMode())
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, int64(102400), cfg.Server.MaxBodyBytes)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, 120*time.Second, cfg.Server.IdleTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.True(t, cfg.CORS.Enabled)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Empty(t, cfg.Log.Level)
}

func TestDefaults_MatchesLoad(t *testing.T) {
	clearEnv(t)

	loaded, err := config.Load(nil, nil)
	require.NoError(t, err)

	defaults := config.Defaults()
	assert.Equal(t, defaults.Env, loaded.Env)
	assert.Equal(t, defaults.Server, loaded.Server)
	assert.Equal(t, defaults.CORS.AllowedOrigins, loaded.CORS.AllowedOrigins)
	assert.Equal(t, defaults.Log, loaded.Log)
}

func TestLoad_ConfigFile(t *testing.T) {
	clearEnv(t)

	path := writeFile(t, t.TempDir(), "config.yaml", `
env: production
server:
  port: 8080
  max_body_bytes: 2048
  shutdown_timeout: 5s
cors:
  enabled: false
log:
  level: warn
`)

	cfg, err := config.Load([]string{path}, nil)
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.DevMode())
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, int64(2048), cfg.Server.MaxBodyBytes)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.False(t, cfg.CORS.Enabled)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_ConfigFileMerge(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	base := writeFile(t, dir, "base.yaml", `
server:
  port: 4000
  max_body_bytes: 1024
log:
  level: info
`)
	override := writeFile(t, dir, "override.yaml", `
server:
  port: 9000
`)

	cfg, err := config.Load([]string{base, override}, nil)
	require.NoError(t, err)

	// Overridden values
	assert.Equal(t, 9000, cfg.Server.Port)

	// Preserved from base
	assert.Equal(t, int64(1024), cfg.Server.MaxBodyBytes)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_MissingConfigFileFallsBackToDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load([]string{filepath.Join(t.TempDir(), "missing.yaml")}, nil)
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "port out of range",
			content: "server:\n  port: 70000\n",
		},
		{
			name:    "negative port",
			content: "server:\n  port: -1\n",
		},
		{
			name:    "unknown env",
			content: "env: staging\n",
		},
		{
			name:    "unknown log level",
			content: "log:\n  level: verbose\n",
		},
		{
			name:    "level alias not accepted",
			content: "log:\n  level: warning\n",
		},
		{
			name:    "negative body limit",
			content: "server:\n  max_body_bytes: -5\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			path := writeFile(t, t.TempDir(), "config.yaml", tt.content)

			_, err := config.Load([]string{path}, nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "validate config")
		})
	}
}

func TestLoad_EnvironmentVariables(t *testing.T) {
	clearEnv(t)
	t.Setenv("QUICKSERVE_SERVER_PORT", "7000")
	t.Setenv("QUICKSERVE_ENV", "test")
	t.Setenv("QUICKSERVE_LOG_LEVEL", "error")
	t.Setenv("QUICKSERVE_CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg, err := config.Load(nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, "test", cfg.Env)
	assert.True(t, cfg.DevMode())
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_ConventionalAliases(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "5050")
	t.Setenv("APP_ENV", "production")

	cfg, err := config.Load(nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 5050, cfg.Server.Port)
	assert.True(t, cfg.IsProduction())
}

func TestLoad_PrefixedEnvBeatsAlias(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "5050")
	t.Setenv("QUICKSERVE_SERVER_PORT", "6060")

	cfg, err := config.Load(nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 6060, cfg.Server.Port)
}

func TestLoad_EnvOverridesConfigFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, t.TempDir(), "config.yaml", "server:\n  port: 8080\n")
	t.Setenv("QUICKSERVE_SERVER_PORT", "8181")

	cfg, err := config.Load([]string{path}, nil)
	require.NoError(t, err)

	assert.Equal(t, 8181, cfg.Server.Port)
}

func TestLoad_DotEnvFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, dir, ".env", "QUICKSERVE_SERVER_PORT=4321\n")
	t.Chdir(dir)

	// godotenv never overrides a variable that is present, even when empty.
	require.NoError(t, os.Unsetenv("QUICKSERVE_SERVER_PORT"))
	t.Cleanup(func() { _ = os.Unsetenv("QUICKSERVE_SERVER_PORT") })

	cfg, err := config.Load(nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 4321, cfg.Server.Port)
}

func TestLoad_Flags(t *testing.T) {
	clearEnv(t)
	t.Setenv("QUICKSERVE_SERVER_PORT", "7000")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("port", 0, "")
	flags.Int64("max-body-bytes", 0, "")
	flags.String("env", "", "")
	flags.String("log-level", "", "")
	require.NoError(t, flags.Parse([]string{"--port", "9999", "--env", "production"}))

	cfg, err := config.Load(nil, flags)
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, "production", cfg.Env)

	// Unset flags leave lower layers alone.
	assert.Equal(t, int64(102400), cfg.Server.MaxBodyBytes)
	assert.Empty(t, cfg.Log.Level)
}

func TestConfig_HandlerConfig(t *testing.T) {
	cfg := config.Defaults()
	cfg.Env = config.EnvProduction
	cfg.Server.MaxBodyBytes = 512

	hc := cfg.HandlerConfig()
	assert.False(t, hc.DevMode)
	assert.Equal(t, int64(512), hc.MaxBodyBytes)
	assert.Equal(t, cfg.CORS, hc.CORS)
}

func TestConfig_ServerOptions(t *testing.T) {
	cfg := config.Defaults()
	cfg.Server.ShutdownTimeout = 2 * time.Second

	opts := cfg.ServerOptions()
	assert.Equal(t, 2*time.Second, opts.ShutdownTimeout)
	assert.Equal(t, 30*time.Second, opts.ReadTimeout)
}

func TestWithContext_FromContext(t *testing.T) {
	cfg := config.Defaults()
	ctx := config.WithContext(context.Background(), cfg)

	got, err := config.FromContext(ctx)
	require.NoError(t, err)
	assert.Same(t, cfg, got)
}

func TestFromContext_Missing(t *testing.T) {
	_, err := config.FromContext(context.Background())
	assert.Error(t, err)
}

func TestConfig_YAMLRoundTrip(t *testing.T) {
	clearEnv(t)

	want := config.Defaults()
	want.Env = config.EnvTest
	want.Server.Port = 4444
	want.Server.ShutdownTimeout = 1500 * time.Millisecond
	want.Log.Level = "debug"

	data, err := yaml.Marshal(want)
	require.NoError(t, err)
	assert.Contains(t, string(data), "shutdown_timeout: 1.5s")

	path := writeFile(t, t.TempDir(), "config.yaml", string(data))
	got, err := config.Load([]string{path}, nil)
	require.NoError(t, err)

	assert.Equal(t, want.Env, got.Env)
	assert.Equal(t, want.Server, got.Server)
	assert.Equal(t, want.Log, got.Log)
	assert.Equal(t, want.CORS.Enabled, got.CORS.Enabled)
	assert.Equal(t, want.CORS.AllowedOrigins, got.CORS.AllowedOrigins)
	assert.Equal(t, want.CORS.AllowedMethods, got.CORS.AllowedMethods)
}
