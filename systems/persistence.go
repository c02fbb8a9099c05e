package systems

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/quasilyte/gdata"
)

// ProgressStore persists the highest level a player has reached.
type ProgressStore interface {
	LoadMaxLevel() (int, error)
	SaveMaxLevel(level int) error
}

// SavedProgress represents the progress data stored on disk
type SavedProgress struct {
	MaxLevelReached int `json:"maxLevelReached"`
}

const progressKey = "progress"

// GdataStore keeps progress in the per-user game data directory.
type GdataStore struct {
	m *gdata.Manager
}

// NewGdataStore opens the gdata manager for an app name.
func NewGdataStore(appName string) (*GdataStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open game data %q: %w", appName, err)
	}
	return &GdataStore{m: m}, nil
}

// LoadMaxLevel returns 0 when nothing was saved yet.
func (s *GdataStore) LoadMaxLevel() (int, error) {
	data, err := s.m.LoadItem(progressKey)
	if err != nil {
		return 0, fmt.Errorf("load progress: %w", err)
	}
	if len(data) == 0 {
		return 0, nil
	}
	var p SavedProgress
	if err := json.Unmarshal(data, &p); err != nil {
		return 0, fmt.Errorf("parse progress: %w", err)
	}
	return p.MaxLevelReached, nil
}

func (s *GdataStore) SaveMaxLevel(level int) error {
	data, err := json.Marshal(SavedProgress{MaxLevelReached: level})
	if err != nil {
		return fmt.Errorf("encode progress: %w", err)
	}
	if err := s.m.SaveItem(progressKey, data); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

// MemoryStore keeps progress in memory. Used by headless runs and tests.
type MemoryStore struct {
	mu    sync.Mutex
	level int
	saves int
}

func (s *MemoryStore) LoadMaxLevel() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.level, nil
}

func (s *MemoryStore) SaveMaxLevel(level int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.level = level
	s.saves++
	return nil
}

// Saves returns how many times progress was written.
func (s *MemoryStore) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}
