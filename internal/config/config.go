// Package config loads service settings from configs/config.yml with
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Default values applied before the config file is read.
const (
	DefaultPort          = "8080"
	DefaultDBPath        = "app.db"
	DefaultLogLevel      = "info"
	DefaultTokenTTL      = time.Hour
	DefaultBodyTempC     = 37.0
	DefaultCurveStep     = 10.0
	defaultSigningKey    = "change-me"
	envPrefix            = "COOLING"
	defaultConfigName    = "config"
	defaultConfigDirPath = "configs"
)

// Config is the resolved service configuration.
type Config struct {
	Port     string
	DBPath   string
	LogLevel string
	Auth     AuthConfig
	Model    ModelConfig
}

// AuthConfig controls JWT issuance.
type AuthConfig struct {
	SigningKey string
	TokenTTL   time.Duration
}

// ModelConfig holds cooling-model defaults applied to incomplete requests.
type ModelConfig struct {
	// DefaultBodyTempC is used as T0 when a request leaves it empty.
	DefaultBodyTempC float64
	// DefaultCurveStep is the sampling step when a curve request omits one.
	DefaultCurveStep float64
}

// Load reads <dir>/config.yml. A missing file is not an error; defaults and
// COOLING_* environment variables still apply.
func Load(dir string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	if dir == "" {
		dir = defaultConfigDirPath
	}
	v.AddConfigPath(dir)
	v.SetConfigName(defaultConfigName)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}
	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", DefaultPort)
	v.SetDefault("db.path", DefaultDBPath)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("auth.signing_key", defaultSigningKey)
	v.SetDefault("auth.token_ttl", DefaultTokenTTL)
	v.SetDefault("model.default_body_temp_c", DefaultBodyTempC)
	v.SetDefault("model.default_curve_step", DefaultCurveStep)
}

func fromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		Port:     v.GetString("port"),
		DBPath:   v.GetString("db.path"),
		LogLevel: v.GetString("log.level"),
		Auth: AuthConfig{
			SigningKey: v.GetString("auth.signing_key"),
			TokenTTL:   v.GetDuration("auth.token_ttl"),
		},
		Model: ModelConfig{
			DefaultBodyTempC: v.GetFloat64("model.default_body_temp_c"),
			DefaultCurveStep: v.GetFloat64("model.default_curve_step"),
		},
	}
	if cfg.Auth.SigningKey == "" {
		return Config{}, errors.New("auth.signing_key must not be empty")
	}
	if cfg.Auth.TokenTTL <= 0 {
		return Config{}, fmt.Errorf("auth.token_ttl must be positive, got %s", cfg.Auth.TokenTTL)
	}
	if cfg.Model.DefaultCurveStep <= 0 {
		return Config{}, fmt.Errorf("model.default_curve_step must be positive, got %v", cfg.Model.DefaultCurveStep)
	}
	return cfg, nil
}
