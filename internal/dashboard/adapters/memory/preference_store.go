package memory

import (
	"context"
	"sync"

	"growth-dashboard/internal/dashboard/core/ports"
)

// PreferenceStore keeps preferences for the lifetime of the process.
type PreferenceStore struct {
	mu     sync.RWMutex
	values map[string]map[string]string
}

func NewPreferenceStore() *PreferenceStore {
	return &PreferenceStore{values: make(map[string]map[string]string)}
}

var _ ports.PreferenceStorePort = (*PreferenceStore)(nil)

func (s *PreferenceStore) Get(ctx context.Context, clientID, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[clientID][key]
	return v, ok, nil
}

func (s *PreferenceStore) Put(ctx context.Context, clientID, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	client, ok := s.values[clientID]
	if !ok {
		client = make(map[string]string)
		s.values[clientID] = client
	}
	client[key] = value
	return nil
}
