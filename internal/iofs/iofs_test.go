package iofs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/livingcost/lccollect/internal/iofs"
	"github.com/livingcost/lccollect/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDirs(t *testing.T) {
	home := t.TempDir()

	require.NoError(t, iofs.EnsureDirs(home))

	for _, dir := range []string{
		config.ConfigDir(home),
		config.LogDir(home),
	} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}

	// second run is a no-op
	assert.NoError(t, iofs.EnsureDirs(home))
}

func TestEnsureConfigFiles(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, iofs.EnsureDirs(home))
	require.NoError(t, iofs.EnsureConfigFiles(home))

	for _, path := range []string{
		config.ConfigFilePath(home),
		config.RegionsFilePath(home),
		config.IndicatorsFilePath(home),
	} {
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.NotEmpty(t, content, filepath.Base(path))
	}

	// existing files are not overwritten
	custom := []byte("regions: []\n")
	require.NoError(t,
		os.WriteFile(config.RegionsFilePath(home), custom, 0644))
	require.NoError(t, iofs.EnsureConfigFiles(home))

	content, err := os.ReadFile(config.RegionsFilePath(home))
	require.NoError(t, err)
	assert.Equal(t, custom, content)
}
