package scripting

import (
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

// Manager owns every loaded Script, keyed by the caller's identifier
// (skill ID), and resolves script paths against a root directory.
//
// Manager is safe for concurrent use.
type Manager struct {
	mu        sync.RWMutex
	root      string
	instLimit int
	scripts   map[string]*Script
	logger    *zap.Logger
}

// NewManager creates a Manager resolving relative paths against root.
//
// Precondition: logger must be non-nil; instLimit <= 0 selects DefaultInstructionLimit.
// Postcondition: Returns a non-nil Manager with no scripts loaded.
func NewManager(root string, instLimit int, logger *zap.Logger) *Manager {
	return &Manager{
		root:      root,
		instLimit: instLimit,
		scripts:   make(map[string]*Script),
		logger:    logger,
	}
}

// Load loads the script at file (relative to the root unless absolute) under key.
// A script already registered under key is closed and replaced.
//
// Precondition: key must be non-empty.
// Postcondition: Get(key) returns the new Script on success.
func (m *Manager) Load(key, file string) (*Script, error) {
	path := file
	if !filepath.IsAbs(path) {
		path = filepath.Join(m.root, file)
	}
	s, err := LoadScript(path, m.instLimit)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	if old, ok := m.scripts[key]; ok {
		old.Close()
	}
	m.scripts[key] = s
	m.mu.Unlock()

	m.logger.Debug("script loaded",
		zap.String("key", key),
		zap.String("path", path),
	)
	return s, nil
}

// Get returns the script registered under key.
func (m *Manager) Get(key string) (*Script, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.scripts[key]
	return s, ok
}

// Len returns the number of loaded scripts.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.scripts)
}

// Close releases every VM. The Manager must not be used afterwards.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for key, s := range m.scripts {
		s.Close()
		delete(m.scripts, key)
	}
	m.logger.Debug("scripts closed", zap.String("root", m.root))
}
