package store

import (
	"context"
	"encoding/json"
	"sync"
)

// MemStore is the in-memory Store used by tests. It round-trips records
// through JSON so value-copy semantics match the file store exactly.
type MemStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemStore() *MemStore {
	return &MemStore{data: make(map[string][]byte)}
}

func (s *MemStore) Load(_ context.Context, collection string, out any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.data[collection]
	if !ok {
		return nil
	}
	return json.Unmarshal(b, out)
}

func (s *MemStore) Save(_ context.Context, collection string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[collection] = b
	return nil
}
