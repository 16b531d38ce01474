package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/metalagman/todo/internal/task"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	BindEnv(v)
	return v
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	v := viper.New()
	SetDefaults(v)

	cfg, err := Load(v, "/work")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/work", task.DefaultPath), cfg.Store.Path)
	assert.Equal(t, task.FormatAuto, cfg.Store.Format)
	assert.False(t, cfg.Log.Debug)
}

func TestLoad_ConfigFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "todo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("store:\n  path: /data/tasks.yml\n  format: yaml\nlog:\n  debug: true\n"), 0o644))

	v := viper.New()
	SetDefaults(v)
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := Load(v, dir)
	require.NoError(t, err)
	assert.Equal(t, "/data/tasks.yml", cfg.Store.Path)
	assert.Equal(t, task.FormatYAML, cfg.Store.Format)
	assert.True(t, cfg.Log.Debug)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "todo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("store:\n  path: from-file.json\n"), 0o644))

	t.Setenv("TODO_STORE_PATH", "from-env.yaml")
	t.Setenv("TODO_STORE_FORMAT", "json")
	t.Setenv("TODO_LOG_DEBUG", "true")

	v := newViper()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := Load(v, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "from-env.yaml"), cfg.Store.Path)
	assert.Equal(t, task.FormatJSON, cfg.Store.Format)
	assert.True(t, cfg.Log.Debug)
}

func TestLoad_RejectsUnknownFormat(t *testing.T) {
	t.Parallel()

	v := viper.New()
	SetDefaults(v)
	v.Set("store.format", "toml")

	_, err := Load(v, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "toml")
}

func TestLoad_RejectsEmptyPath(t *testing.T) {
	t.Parallel()

	v := viper.New()
	SetDefaults(v)
	v.Set("store.path", "")

	_, err := Load(v, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "store.path")
}

func TestValidate(t *testing.T) {
	t.Parallel()

	valid := Config{Store: StoreConfig{Path: "todo.json", Format: task.FormatYAML}}
	assert.NoError(t, valid.Validate())

	invalid := Config{}
	err := invalid.Validate()
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "String length must be greater than or equal to 1"), err.Error())
}

func TestStoreOptions(t *testing.T) {
	t.Parallel()

	cfg := Config{Store: StoreConfig{Path: "tasks", Format: task.FormatYAML}}
	s := task.NewStore(cfg.Store.Path, cfg.StoreOptions()...)
	assert.Equal(t, task.FormatYAML, s.Format())
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, DotEnvFile), []byte("TODO_STORE_PATH=from-dotenv.json\nTODO_LOG_DEBUG=true\n"), 0o644))

	// Registered with t.Setenv so the values are restored afterwards, then
	// cleared so the .env file can provide them.
	t.Setenv("TODO_STORE_PATH", "")
	require.NoError(t, os.Unsetenv("TODO_STORE_PATH"))
	t.Setenv("TODO_LOG_DEBUG", "false")

	require.NoError(t, LoadDotEnv(dir))
	assert.Equal(t, "from-dotenv.json", os.Getenv("TODO_STORE_PATH"))
	assert.Equal(t, "false", os.Getenv("TODO_LOG_DEBUG"), "existing variables must win")

	cfg, err := Load(newViper(), dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "from-dotenv.json"), cfg.Store.Path)
	assert.False(t, cfg.Log.Debug)
}

func TestLoadDotEnv_MissingFile(t *testing.T) {
	t.Parallel()

	assert.NoError(t, LoadDotEnv(t.TempDir()))
}
