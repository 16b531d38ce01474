// Package config provides configuration loading and management for todo.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/metalagman/todo/internal/task"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. TODO_STORE_PATH.
const EnvPrefix = "TODO"

// ErrInvalid marks configuration that could not be read or failed validation.
var ErrInvalid = errors.New("invalid configuration")

// Config is the root configuration.
type Config struct {
	Store StoreConfig `json:"store" mapstructure:"store"`
	Log   LogConfig   `json:"log"   mapstructure:"log"`
}

// StoreConfig locates the task document.
type StoreConfig struct {
	Path   string      `json:"path"   mapstructure:"path"`
	Format task.Format `json:"format" mapstructure:"format"`
}

// LogConfig controls logging.
type LogConfig struct {
	Debug bool `json:"debug" mapstructure:"debug"`
}

// SetDefaults registers every key so environment overrides apply to it.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("store.path", task.DefaultPath)
	v.SetDefault("store.format", task.FormatAuto.String())
	v.SetDefault("log.debug", false)
}

// BindEnv maps keys to TODO_* environment variables.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// DecodeHook converts raw settings into typed config fields.
func DecodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.TextUnmarshallerHookFunc()
}

// Load decodes and validates the settings held by v. Relative store paths
// are resolved against workDir.
func Load(v *viper.Viper, workDir string) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg, viper.DecodeHook(DecodeHook())); err != nil {
		return Config{}, fmt.Errorf("%w: parse config: %v", ErrInvalid, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	if !filepath.IsAbs(cfg.Store.Path) && workDir != "" {
		cfg.Store.Path = filepath.Join(workDir, cfg.Store.Path)
	}
	return cfg, nil
}

// StoreOptions returns the task store options implied by the config.
func (c Config) StoreOptions() []task.Option {
	return []task.Option{task.WithFormat(c.Store.Format)}
}
