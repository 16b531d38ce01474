package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/metalagman/todo/internal/config"
	"github.com/spf13/viper"
)

const defaultConfigPath = ".todo.yaml"

// loadConfig merges defaults, the config file, .env, the environment and
// flags, in increasing order of precedence.
func loadConfig(workDir string) (config.Config, error) {
	if err := config.LoadDotEnv(workDir); err != nil {
		return config.Config{}, err
	}
	config.SetDefaults(viper.GetViper())
	config.BindEnv(viper.GetViper())

	path, explicit := resolveConfigPath(workDir, viper.GetString("config"))
	if _, err := os.Stat(path); err != nil {
		if !errors.Is(err, fs.ErrNotExist) || explicit {
			return config.Config{}, fmt.Errorf("%w: read config: %v", config.ErrInvalid, err)
		}
		return config.Load(viper.GetViper(), workDir)
	}

	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		return config.Config{}, fmt.Errorf("%w: read config: %v", config.ErrInvalid, err)
	}
	return config.Load(viper.GetViper(), workDir)
}

// resolveConfigPath returns the config file to read and whether the user
// named it explicitly.
func resolveConfigPath(workDir, path string) (string, bool) {
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(workDir, path)
	}
	return path, explicit
}
