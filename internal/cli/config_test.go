package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "reflection_conditions.json", cfg.Output)
	assert.Equal(t, "skipped_symbols.log", cfg.SkipLog)
	assert.Equal(t, 8, cfg.MaxIndex)
	assert.Empty(t, cfg.Settings)
	assert.Empty(t, cfg.Database)
	assert.Empty(t, cfg.Table)
}

func TestLoadConfig(t *testing.T) {
	path := writeTempFile(t, "sgdb.yaml", `
settings: settings_list.json
output: out.json
database: out.sqlite
max_index: 12
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "settings_list.json", cfg.Settings)
	assert.Equal(t, "out.json", cfg.Output)
	assert.Equal(t, "out.sqlite", cfg.Database)
	assert.Equal(t, 12, cfg.MaxIndex)
	// Unset keys keep their defaults.
	assert.Equal(t, "skipped_symbols.log", cfg.SkipLog)
}

func TestLoadConfigUnknownField(t *testing.T) {
	path := writeTempFile(t, "sgdb.yaml", `
settings: settings_list.json
outpt: typo.json
`)
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigInvalidMaxIndex(t *testing.T) {
	path := writeTempFile(t, "sgdb.yaml", `max_index: -4`)
	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_index")
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
