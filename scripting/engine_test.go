package scripting

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/automoto/skyraid/systems"
	"github.com/stretchr/testify/require"
)

const blend = `
function performance_score(p)
  return p.health * 0.5 + p.combo * 0.5
end
`

func TestScoreCallsFormula(t *testing.T) {
	e, err := NewEngineFromSource(blend, nil)
	require.NoError(t, err)
	defer e.Close()

	got, err := e.Score(systems.PerformanceInputs{HealthFrac: 1, ComboFrac: 0.5})
	require.NoError(t, err)
	require.InDelta(t, 0.75, got, 1e-9)
}

func TestMissingFormula(t *testing.T) {
	_, err := NewEngineFromSource(`x = 1`, nil)
	require.ErrorIs(t, err, ErrNoFormula)
}

func TestSyntaxError(t *testing.T) {
	_, err := NewEngineFromSource(`function performance_score(`, nil)
	require.Error(t, err)
}

func TestNonNumberResult(t *testing.T) {
	e, err := NewEngineFromSource(`function performance_score(p) return "high" end`, nil)
	require.NoError(t, err)
	defer e.Close()

	_, err = e.Score(systems.PerformanceInputs{})
	require.Error(t, err)
}

func TestRuntimeErrorIsReturned(t *testing.T) {
	e, err := NewEngineFromSource(`function performance_score(p) error("boom") end`, nil)
	require.NoError(t, err)
	defer e.Close()

	_, err = e.Score(systems.PerformanceInputs{})
	require.Error(t, err)
}

func TestNewEngineFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "difficulty.lua")
	require.NoError(t, os.WriteFile(path, []byte(blend), 0o600))

	e, err := NewEngine(path, nil)
	require.NoError(t, err)
	defer e.Close()

	got, err := e.Score(systems.PerformanceInputs{HealthFrac: 0.2})
	require.NoError(t, err)
	require.InDelta(t, 0.1, got, 1e-9)
}
