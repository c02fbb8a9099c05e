package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseEmptyUsesDefaults(t *testing.T) {
	s, err := Parse(nil)
	require.NoError(t, err)
	require.Equal(t, DefaultSettings(), s)
}

func TestParseOverridesDefaults(t *testing.T) {
	s, err := Parse([]byte(`
tables = "tables.yaml"

[sim]
seed = 99
max_frame_ms = 33.5

[logging]
level = "debug"
format = "json"

[difficulty]
adaptive = false
`))
	require.NoError(t, err)
	require.Equal(t, uint64(99), s.Sim.Seed)
	require.Equal(t, 33.5, s.Sim.MaxFrameMs)
	require.Equal(t, 1, s.Sim.StartLevel)
	require.Equal(t, "json", s.Logging.Format)
	require.False(t, s.Difficulty.Adaptive)
	require.True(t, s.Persistence.Enabled)
	require.Equal(t, "tables.yaml", s.Tables)
}

func TestParseRejectsBadValues(t *testing.T) {
	_, err := Parse([]byte("[sim]\nmax_frame_ms = 0\n"))
	require.ErrorContains(t, err, "max_frame_ms")

	_, err = Parse([]byte("[sim\n"))
	require.Error(t, err)

	s, err := Parse([]byte("[sim]\nstart_level = -3\n"))
	require.NoError(t, err)
	require.Equal(t, 1, s.Sim.StartLevel)
}

func TestLoadReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skyraid.toml")
	require.NoError(t, os.WriteFile(path, []byte("[sim]\nseed = 5\n"), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, uint64(5), s.Sim.Seed)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}
