// Package simstate stores last simulated positions for the mock telemetry
// path. The store is injected so the simulation can run out of process
// memory or redis, and can be reset deterministically in tests.
package simstate

import (
	"context"
	"sync"
)

// Position is the last simulated location of a single user.
type Position struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Heading float64 `json:"heading"`
}

// Store persists per-user simulated positions.
type Store interface {
	Get(ctx context.Context, userID string) (Position, bool, error)
	Put(ctx context.Context, userID string, pos Position) error
}

type memoryStore struct {
	mu        sync.Mutex
	positions map[string]Position
}

// NewMemoryStore creates an in-process Store. Contents are lost on restart.
func NewMemoryStore() Store {
	return &memoryStore{positions: make(map[string]Position)}
}

func (s *memoryStore) Get(_ context.Context, userID string) (Position, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	pos, ok := s.positions[userID]
	return pos, ok, nil
}

func (s *memoryStore) Put(_ context.Context, userID string, pos Position) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.positions[userID] = pos
	return nil
}
