// Package repository declares persistence contracts and the in-memory store
// used when no database is configured.
package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/osse101/lootforge/internal/domain"
	"github.com/osse101/lootforge/internal/validation"
)

// SaveStore persists whole-player saves
type SaveStore interface {
	Save(ctx context.Context, playerID string, data domain.SaveData) error
	// Load returns domain.ErrPlayerNotFound when nothing was saved for playerID
	Load(ctx context.Context, playerID string) (*domain.SaveData, error)
}

// MemoryStore keeps saves in process memory. Saves are stored encoded so
// callers never share state with the store.
type MemoryStore struct {
	mu    sync.RWMutex
	saves map[string][]byte
}

// NewMemoryStore creates an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{saves: make(map[string][]byte)}
}

// Save stores data under playerID, replacing any previous save
func (s *MemoryStore) Save(_ context.Context, playerID string, data domain.SaveData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgEncodeSave, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saves[playerID] = raw
	return nil
}

// Load returns the save of playerID
func (s *MemoryStore) Load(_ context.Context, playerID string) (*domain.SaveData, error) {
	s.mu.RLock()
	raw, ok := s.saves[playerID]
	s.mu.RUnlock()
	if !ok {
		return nil, domain.ErrPlayerNotFound
	}
	if err := validation.ValidateSave(raw); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidSave, err)
	}
	var data domain.SaveData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgDecodeSave, err)
	}
	return &data, nil
}

// Len returns the number of stored saves
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.saves)
}
