package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type dropFileEntry struct {
	Item   string `yaml:"item"`
	Weight int    `yaml:"weight"`
}

type enemyFileEntry struct {
	Kind   string          `yaml:"kind"`
	Weight *int            `yaml:"weight"`
	Cost   *float64        `yaml:"cost"`
	Drops  []dropFileEntry `yaml:"drops"`
}

type tablesFile struct {
	Enemies []enemyFileEntry `yaml:"enemies"`
}

// LoadTables overlays spawn weights, costs and drop tables from a YAML file.
func LoadTables(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read tables %s: %w", path, err)
	}
	return ApplyTables(raw)
}

// ApplyTables overlays YAML table data onto Enemy.Types. Nothing is applied if any
// entry names an unknown kind or item.
func ApplyTables(raw []byte) error {
	var f tablesFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return fmt.Errorf("parse tables: %w", err)
	}

	updated := make(map[EnemyKind]EnemyTypeConfig, len(f.Enemies))
	for _, e := range f.Enemies {
		kind, err := ParseEnemyKind(e.Kind)
		if err != nil {
			return err
		}
		t, ok := updated[kind]
		if !ok {
			if t, ok = LookupEnemy(kind); !ok {
				return fmt.Errorf("enemy %q: %w", e.Kind, ErrUnknownKind)
			}
		}
		if e.Weight != nil {
			if *e.Weight < 0 {
				return fmt.Errorf("enemy %q: negative weight %d", e.Kind, *e.Weight)
			}
			t.Weight = *e.Weight
		}
		if e.Cost != nil {
			t.Cost = *e.Cost
		}
		if len(e.Drops) > 0 {
			drops := make([]DropEntry, 0, len(e.Drops))
			for _, d := range e.Drops {
				item, err := ParseItemKind(d.Item)
				if err != nil {
					return fmt.Errorf("enemy %q drops: %w", e.Kind, err)
				}
				drops = append(drops, DropEntry{Item: item, Weight: d.Weight})
			}
			t.Drops = drops
		}
		updated[kind] = t
	}

	for kind, t := range updated {
		Enemy.Types[kind] = t
	}
	return nil
}
