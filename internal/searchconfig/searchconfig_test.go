package searchconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	require.Equal(t, DefaultConfig(), cfg)
}

func TestLoadPartialFileDefaultsMissingFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "search.toml")
	require.NoError(t, os.WriteFile(path, []byte(`depth = 8`), 0o644))

	cfg := Load(path)
	require.Equal(t, 8, cfg.Depth)
	require.Equal(t, 0, cfg.RootWorkers)
	require.Zero(t, cfg.Weights)
}

func TestLoadWeightOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "search.toml")
	content := `
depth = 4
root_workers = 2

[weights]
queen = 950
pawn = 120
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg := Load(path)
	require.Equal(t, 4, cfg.Depth)
	require.Equal(t, 2, cfg.RootWorkers)
	require.Equal(t, 950, cfg.Weights.Queen)
	require.Equal(t, 120, cfg.Weights.Pawn)
	require.Equal(t, 0, cfg.Weights.Rook)
}

func TestLoadMalformedFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "search.toml")
	require.NoError(t, os.WriteFile(path, []byte(`not valid toml ===`), 0o644))

	cfg := Load(path)
	require.Equal(t, DefaultConfig(), cfg)
}
