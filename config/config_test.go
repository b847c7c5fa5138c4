package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/c2h5oh/datasize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadParsesExportSettings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "storekeyctl.yaml")
	content := "seed_path: /tmp/seed.hex\nexport:\n  max_size: 256MB\n  compress: true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/seed.hex", cfg.SeedPath)
	assert.Equal(t, datasize.MB*256, cfg.Export.MaxSize)
	assert.True(t, cfg.Export.Compress)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadDefaultsWhenExportOmitted(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "storekeyctl.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed_path: x\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, datasize.ByteSize(0), cfg.Export.MaxSize)
	assert.False(t, cfg.Export.Compress)
}
