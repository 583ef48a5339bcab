package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	qshttp "github.com/sagarc03/quickserve/http"
)

// Environment names accepted by the env key.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"
)

// EnvFiles are the dotenv files Load reads, highest precedence first.
// Variables already present in the process environment are never overridden.
var EnvFiles = []string{".env.local", ".env"}

// configKey is the context key for storing the loaded configuration.
type configKey struct{}

// WithContext returns a new context with the config stored.
func WithContext(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// FromContext retrieves the config from context.
// Returns an error if config is not found.
func FromContext(ctx context.Context) (*Config, error) {
	cfg, ok := ctx.Value(configKey{}).(*Config)
	if !ok || cfg == nil {
		return nil, errors.New("config not found in context")
	}
	return cfg, nil
}

// Config is the root configuration struct for quickserve.
type Config struct {
	Env    string            `mapstructure:"env" yaml:"env" validate:"required,oneof=development dev production prod test"`
	Server ServerConfig      `mapstructure:"server" yaml:"server"`
	CORS   qshttp.CORSConfig `mapstructure:"cors" yaml:"cors"`
	Log    LogConfig         `mapstructure:"log" yaml:"log"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port            int           `mapstructure:"port" yaml:"port" validate:"min=0,max=65535"`
	MaxBodyBytes    int64         `mapstructure:"max_body_bytes" yaml:"max_body_bytes" validate:"min=0"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" yaml:"read_timeout" validate:"min=0"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" yaml:"write_timeout" validate:"min=0"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout" yaml:"idle_timeout" validate:"min=0"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout" validate:"min=0"`
}

// MarshalYAML writes durations in their string form ("30s") so the output
// reads back through Load.
func (s ServerConfig) MarshalYAML() (any, error) {
	return struct {
		Port            int    `yaml:"port"`
		MaxBodyBytes    int64  `yaml:"max_body_bytes"`
		ReadTimeout     string `yaml:"read_timeout"`
		WriteTimeout    string `yaml:"write_timeout"`
		IdleTimeout     string `yaml:"idle_timeout"`
		ShutdownTimeout string `yaml:"shutdown_timeout"`
	}{
		Port:            s.Port,
		MaxBodyBytes:    s.MaxBodyBytes,
		ReadTimeout:     s.ReadTimeout.String(),
		WriteTimeout:    s.WriteTimeout.String(),
		IdleTimeout:     s.IdleTimeout.String(),
		ShutdownTimeout: s.ShutdownTimeout.String(),
	}, nil
}

// LogConfig holds logging configuration. An empty level means debug in
// development and info in production.
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level" validate:"omitempty,oneof=debug info warn error"`
}

// IsProduction reports whether env names a production deployment.
func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction || c.Env == "prod"
}

// DevMode reports whether error responses may carry diagnostic traces.
func (c *Config) DevMode() bool {
	return !c.IsProduction()
}

// HandlerConfig returns the http handler settings derived from c.
func (c *Config) HandlerConfig() qshttp.HandlerConfig {
	return qshttp.HandlerConfig{
		DevMode:      c.DevMode(),
		MaxBodyBytes: c.Server.MaxBodyBytes,
		CORS:         c.CORS,
	}
}

// ServerOptions returns the server lifecycle settings derived from c.
func (c *Config) ServerOptions() qshttp.ServerOptions {
	return qshttp.ServerOptions{
		ReadTimeout:     c.Server.ReadTimeout,
		WriteTimeout:    c.Server.WriteTimeout,
		IdleTimeout:     c.Server.IdleTimeout,
		ShutdownTimeout: c.Server.ShutdownTimeout,
	}
}

// flagToViperKey maps CLI flag names to viper configuration keys.
var flagToViperKey = map[string]string{
	"port":           "server.port",
	"max-body-bytes": "server.max_body_bytes",
	"log-level":      "log.level",
	"cors":           "cors.enabled",
}

// bindFlags binds CLI flags to viper keys with custom name mapping.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		// Use custom mapping if it exists, otherwise use flag name as-is
		viperKey := f.Name
		if mapped, ok := flagToViperKey[viperKey]; ok {
			viperKey = mapped
		}

		// Only bind if the flag was explicitly set
		if f.Changed {
			_ = v.BindPFlag(viperKey, f)
		}
	})
}

// setDefaults configures default values on the viper instance.
func setDefaults(v *viper.Viper) {
	v.SetDefault("env", EnvDevelopment)

	v.SetDefault("server.port", 3000)
	v.SetDefault("server.max_body_bytes", 100*1024)
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.idle_timeout", 120*time.Second)
	v.SetDefault("server.shutdown_timeout", 30*time.Second)

	v.SetDefault("cors.enabled", true)
	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("cors.allowed_methods", []string{"GET", "HEAD", "PUT", "PATCH", "POST", "DELETE"})
	v.SetDefault("cors.allowed_headers", []string{})
	v.SetDefault("cors.exposed_headers", []string{})
	v.SetDefault("cors.allow_credentials", false)
	v.SetDefault("cors.max_age", 0)

	v.SetDefault("log.level", "")
}

// bindEnv wires the conventional unprefixed variables next to the
// QUICKSERVE_ ones.
func bindEnv(v *viper.Viper) {
	_ = v.BindEnv("server.port", "QUICKSERVE_SERVER_PORT", "PORT")
	_ = v.BindEnv("env", "QUICKSERVE_ENV", "APP_ENV")
}

// loadEnvFiles loads dotenv files into the process environment. Missing files
// are skipped.
func loadEnvFiles(files []string) {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			slog.Warn("error reading env file", "file", f, "err", err)
		}
	}
}

// Defaults returns the configuration made only of default values.
func Defaults() *Config {
	v := viper.New()
	setDefaults(v)

	var cfg Config
	// Defaults always decode.
	_ = v.Unmarshal(&cfg)
	return &cfg
}

// Load reads configuration and returns a validated Config struct.
// Order of precedence (highest to lowest): flags > env > .env files > config files > defaults
//
// Parameters:
//   - configFiles: list of config file paths (later files override earlier ones)
//   - flags: cobra flag set for flag binding (can be nil)
func Load(configFiles []string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Read config files
	if len(configFiles) > 0 {
		v.SetConfigFile(configFiles[0])
		if err := v.ReadInConfig(); err != nil {
			slog.Warn("error reading config file", "file", configFiles[0], "err", err)
		}

		for _, cf := range configFiles[1:] {
			v.SetConfigFile(cf)
			if err := v.MergeInConfig(); err != nil {
				slog.Warn("error merging config file", "file", cf, "err", err)
			}
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		if err := v.ReadInConfig(); err != nil {
			var configNotFound viper.ConfigFileNotFoundError
			if !errors.As(err, &configNotFound) {
				slog.Warn("error reading config file", "err", err)
			}
		}
	}

	// 3. Bind environment variables, including those from .env files
	loadEnvFiles(EnvFiles)
	v.SetEnvPrefix("QUICKSERVE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnv(v)

	// 4. Bind flags (if provided)
	if flags != nil {
		bindFlags(v, flags)
	}

	// 5. Unmarshal into Config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	// 6. Validate using go-playground/validator
	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}
