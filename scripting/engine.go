package scripting

import (
	"errors"
	"fmt"
	"os"

	"github.com/automoto/skyraid/systems"
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// FormulaFunc is the Lua global the engine calls to score player performance.
const FormulaFunc = "performance_score"

var ErrNoFormula = errors.New("scripting: performance_score not defined")

// Engine wraps a single gopher-lua VM holding the difficulty formula.
// Single-goroutine access only (simulation tick).
type Engine struct {
	vm  *lua.LState
	log *zap.Logger
}

// NewEngine loads a Lua file that defines performance_score.
func NewEngine(path string, log *zap.Logger) (*Engine, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script %s: %w", path, err)
	}
	return NewEngineFromSource(string(src), log)
}

// NewEngineFromSource loads Lua source that defines performance_score.
func NewEngineFromSource(src string, log *zap.Logger) (*Engine, error) {
	if log == nil {
		log = zap.NewNop()
	}
	vm := lua.NewState(lua.Options{
		SkipOpenLibs: false,
	})
	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	if err := vm.DoString(src); err != nil {
		vm.Close()
		return nil, fmt.Errorf("load formula: %w", err)
	}
	if vm.GetGlobal(FormulaFunc) == lua.LNil {
		vm.Close()
		return nil, ErrNoFormula
	}

	return &Engine{vm: vm, log: log}, nil
}

// Score calls performance_score with a table of the normalized inputs.
func (e *Engine) Score(in systems.PerformanceInputs) (float64, error) {
	fn := e.vm.GetGlobal(FormulaFunc)
	if fn == lua.LNil {
		return 0, ErrNoFormula
	}

	t := e.vm.NewTable()
	t.RawSetString("health", lua.LNumber(in.HealthFrac))
	t.RawSetString("weapon", lua.LNumber(in.WeaponFrac))
	t.RawSetString("combo", lua.LNumber(in.ComboFrac))
	t.RawSetString("time", lua.LNumber(in.TimeFrac))

	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, t); err != nil {
		e.log.Error("lua performance_score error", zap.Error(err))
		return 0, fmt.Errorf("call %s: %w", FormulaFunc, err)
	}

	result := e.vm.Get(-1)
	e.vm.Pop(1)

	n, ok := result.(lua.LNumber)
	if !ok {
		return 0, fmt.Errorf("call %s: returned %s, want number", FormulaFunc, result.Type())
	}
	return float64(n), nil
}

// Close releases the Lua VM.
func (e *Engine) Close() {
	e.vm.Close()
}
