package config

import (
	"sync/atomic"

	"radialmenu/internal/log"
)

// Store holds the current configuration snapshot. Readers get an immutable
// pointer; reloads swap in a new one, so a session that took a snapshot
// keeps seeing it until it ends.
type Store struct {
	path string
	cur  atomic.Pointer[Config]
}

// NewStore returns a store serving cfg, reloading from path.
func NewStore(path string, cfg *Config) *Store {
	s := &Store{path: path}
	if cfg == nil {
		cfg = New()
	}
	s.cur.Store(cfg)
	return s
}

// Open loads path and returns a store for it.
func Open(path string) (*Store, error) {
	cfg, err := LoadConfigFile(path)
	return NewStore(path, cfg), err
}

// Path returns the document path.
func (s *Store) Path() string {
	return s.path
}

// Snapshot returns the current configuration.
func (s *Store) Snapshot() *Config {
	return s.cur.Load()
}

// Swap installs cfg and returns the previous snapshot.
func (s *Store) Swap(cfg *Config) *Config {
	return s.cur.Swap(cfg)
}

// Reload re-reads the document. On failure the current snapshot stays.
func (s *Store) Reload() (*Config, error) {
	cfg, err := ReadConfigFile(s.path)
	if err != nil {
		log.LogWithError(err).Warn("Configuration reload failed, keeping current settings")
		return s.Snapshot(), err
	}
	s.Swap(cfg)
	log.LogWithFields(log.F("path", s.path), log.F("combo", cfg.ActivationCombo())).Info("Configuration reloaded")
	return cfg, nil
}

// Update applies fn to a copy of the current snapshot, saves it and swaps
// it in.
func (s *Store) Update(fn func(*Config)) (*Config, error) {
	cfg := s.Snapshot().Clone()
	fn(cfg)
	if err := SaveConfig(cfg, s.path); err != nil {
		return nil, err
	}
	s.Swap(cfg)
	return cfg, nil
}
