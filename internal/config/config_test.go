package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("missing file returns defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("empty path returns defaults", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		assert.True(t, cfg.UI.VimMode)
		assert.Equal(t, "info", cfg.Log.Level)
	})

	t.Run("overrides keep unset defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := `ui:
  vim_mode: false
log:
  level: debug
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.False(t, cfg.UI.VimMode)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.False(t, cfg.UI.NotifyOnAllDone)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("ui: [:"), 0o600))

		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config file")
	})
}

func TestWriteTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	require.NoError(t, WriteTemplate(path))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		assert.NoError(t, DefaultConfig().Validate())
	})

	t.Run("bad log level", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Log.Level = "loud"

		err := cfg.Validate()

		var fieldErrs criterio.FieldErrors
		require.ErrorAs(t, err, &fieldErrs)
		assert.Len(t, fieldErrs, 1)
		assert.Equal(t, "log.level", fieldErrs[0].Field)
	})

	t.Run("seed file must exist", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Tasks.SeedFile = filepath.Join(t.TempDir(), "missing.yaml")

		err := cfg.Validate()

		var fieldErrs criterio.FieldErrors
		require.ErrorAs(t, err, &fieldErrs)
		assert.Equal(t, "tasks.seed_file", fieldErrs[0].Field)
	})

	t.Run("seed file must not be a directory", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Tasks.SeedFile = t.TempDir()

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "is a directory")
	})
}
