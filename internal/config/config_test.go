package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/alexiusacademia/gomech/internal/record"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// isolate runs the test in an empty working directory with no user config.
func isolate(t *testing.T) LoadOptions {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("GOMECH_UNITS_SYSTEM", "")
	t.Setenv("GOMECH_LOG_LEVEL", "")
	t.Setenv("GOMECH_DATA_DIR", "")
	t.Setenv("GOMECH_DATA_SQLITE", "")
	return LoadOptions{ConfigDirPath: t.TempDir()}
}

func TestLoadDefaults(t *testing.T) {
	opts := isolate(t)

	cfg, path, err := Load(opts)
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, record.SI, cfg.UnitSystem())
	assert.Equal(t, log.WarnLevel, cfg.LogLevel())
}

func TestLoadFiles(t *testing.T) {
	t.Run("user config dir", func(t *testing.T) {
		opts := isolate(t)
		writeFile(t, filepath.Join(opts.ConfigDirPath, UserFileName), "units:\n  system: imperial\n")

		cfg, path, err := Load(opts)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(opts.ConfigDirPath, UserFileName), path)
		assert.Equal(t, record.Imperial, cfg.UnitSystem())
	})

	t.Run("working directory wins over user dir", func(t *testing.T) {
		opts := isolate(t)
		writeFile(t, filepath.Join(opts.ConfigDirPath, UserFileName), "units:\n  system: imperial\n")
		writeFile(t, LocalFileName, "data:\n  dir: ./tables\nlog:\n  level: debug\n")

		cfg, path, err := Load(opts)
		require.NoError(t, err)
		assert.Equal(t, LocalFileName, path)
		assert.Equal(t, record.SI, cfg.UnitSystem())
		assert.Equal(t, "./tables", cfg.Data.Dir)
		assert.Equal(t, log.DebugLevel, cfg.LogLevel())
	})

	t.Run("explicit file", func(t *testing.T) {
		opts := isolate(t)
		opts.ConfigFilePath = filepath.Join(t.TempDir(), "custom.yaml")
		writeFile(t, opts.ConfigFilePath, "data:\n  sqlite: props.db\n")

		cfg, path, err := Load(opts)
		require.NoError(t, err)
		assert.Equal(t, opts.ConfigFilePath, path)
		assert.Equal(t, "props.db", cfg.Data.SQLite)
	})

	t.Run("explicit file must exist", func(t *testing.T) {
		opts := isolate(t)
		opts.ConfigFilePath = filepath.Join(t.TempDir(), "missing.yaml")
		_, _, err := Load(opts)
		assert.ErrorContains(t, err, "config file not found")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		opts := isolate(t)
		writeFile(t, LocalFileName, "units: [unterminated\n")
		_, _, err := Load(opts)
		assert.Error(t, err)
	})
}

func TestLoadEnvironment(t *testing.T) {
	opts := isolate(t)
	writeFile(t, LocalFileName, "units:\n  system: si\n")
	t.Setenv("GOMECH_UNITS_SYSTEM", "us")

	cfg, _, err := Load(opts)
	require.NoError(t, err)
	assert.Equal(t, record.Imperial, cfg.UnitSystem())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		env  string
		val  string
		key  string
		is   error
	}{
		{"bad unit system", "GOMECH_UNITS_SYSTEM", "cgs", "units.system", record.ErrInvalidUnitSystem},
		{"bad log level", "GOMECH_LOG_LEVEL", "loud", "log.level", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := isolate(t)
			t.Setenv(tt.env, tt.val)

			_, _, err := Load(opts)
			require.ErrorIs(t, err, ErrInvalidConfig)
			var ice *InvalidConfigError
			require.ErrorAs(t, err, &ice)
			assert.Equal(t, tt.key, ice.Key)
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
		})
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Data.Dir = "tables"

	out, err := cfg.YAML()
	require.NoError(t, err)

	var back Config
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, *cfg, back)

	opts := isolate(t)
	writeFile(t, LocalFileName, string(out))
	loaded, _, err := Load(opts)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
