package glide

import (
	"encoding/json"
	"fmt"

	"github.com/quasilyte/gdata"
)

// PositionStore persists the scroll position between sessions.
type PositionStore interface {
	// LoadPosition returns the saved position, or ok=false when none exists.
	LoadPosition(key string) (y float64, ok bool, err error)
	SavePosition(key string, y float64) error
}

// savedPosition is the data stored on disk.
type savedPosition struct {
	Y float64 `json:"y"`
}

// GDataStore is a PositionStore backed by gdata, which picks the right
// per-platform location (app data dir, browser local storage, ...).
type GDataStore struct {
	m *gdata.Manager
}

// OpenGDataStore opens the store for appName.
func OpenGDataStore(appName string) (*GDataStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("open position store: %w", err)
	}
	return &GDataStore{m: m}, nil
}

// LoadPosition implements PositionStore.
func (s *GDataStore) LoadPosition(key string) (float64, bool, error) {
	data, err := s.m.LoadItem(key)
	if err != nil {
		return 0, false, fmt.Errorf("load position %q: %w", key, err)
	}
	if data == nil {
		return 0, false, nil
	}
	return decodePosition(key, data)
}

// SavePosition implements PositionStore.
func (s *GDataStore) SavePosition(key string, y float64) error {
	data, err := json.Marshal(savedPosition{Y: y})
	if err != nil {
		return fmt.Errorf("encode position %q: %w", key, err)
	}
	if err := s.m.SaveItem(key, data); err != nil {
		return fmt.Errorf("save position %q: %w", key, err)
	}
	return nil
}

func decodePosition(key string, data []byte) (float64, bool, error) {
	var p savedPosition
	if err := json.Unmarshal(data, &p); err != nil {
		return 0, false, fmt.Errorf("decode position %q: %w", key, err)
	}
	return p.Y, true, nil
}

// MemoryStore is an in-process PositionStore, useful for tests and for
// restoring across remounts within one run.
type MemoryStore struct {
	items map[string][]byte
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string][]byte)}
}

// LoadPosition implements PositionStore.
func (s *MemoryStore) LoadPosition(key string) (float64, bool, error) {
	data, ok := s.items[key]
	if !ok {
		return 0, false, nil
	}
	return decodePosition(key, data)
}

// SavePosition implements PositionStore.
func (s *MemoryStore) SavePosition(key string, y float64) error {
	data, err := json.Marshal(savedPosition{Y: y})
	if err != nil {
		return fmt.Errorf("encode position %q: %w", key, err)
	}
	s.items[key] = data
	return nil
}
