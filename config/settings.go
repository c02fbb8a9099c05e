package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Settings is the run configuration read from a TOML file. Gameplay tables stay in the
// package-level configs; settings only choose how a run is wired.
type Settings struct {
	Sim         SimSettings         `toml:"sim"`
	Logging     LoggingSettings     `toml:"logging"`
	Persistence PersistenceSettings `toml:"persistence"`
	Difficulty  DifficultySettings  `toml:"difficulty"`
	Tables      string              `toml:"tables"`  // optional YAML content override
	Scripts     string              `toml:"scripts"` // optional Lua formula file
}

type SimSettings struct {
	Seed       uint64  `toml:"seed"`
	MaxFrameMs float64 `toml:"max_frame_ms"`
	StartLevel int     `toml:"start_level"`
}

type LoggingSettings struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

type PersistenceSettings struct {
	AppName string `toml:"app_name"`
	Enabled bool   `toml:"enabled"`
}

type DifficultySettings struct {
	Adaptive bool `toml:"adaptive"`
}

// DefaultSettings returns the settings used when no file is given.
func DefaultSettings() *Settings {
	return &Settings{
		Sim: SimSettings{
			Seed:       1,
			MaxFrameMs: 50,
			StartLevel: 1,
		},
		Logging: LoggingSettings{
			Level:  "info",
			Format: "console",
		},
		Persistence: PersistenceSettings{
			AppName: "skyraid",
			Enabled: true,
		},
		Difficulty: DifficultySettings{
			Adaptive: true,
		},
	}
}

// Load reads a TOML settings file on top of the defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read settings %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes TOML settings on top of the defaults.
func Parse(data []byte) (*Settings, error) {
	s := DefaultSettings()
	if err := toml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}
	if s.Sim.MaxFrameMs <= 0 {
		return nil, fmt.Errorf("parse settings: max_frame_ms must be positive, got %v", s.Sim.MaxFrameMs)
	}
	if s.Sim.StartLevel < 1 {
		s.Sim.StartLevel = 1
	}
	return s, nil
}
