package storage

import (
	"context"
	"sync"
)

// MemoryStore implementación en memoria del puerto de persistencia. Útil en tests
// y como driver "none" cuando no se quiere persistir nada entre sesiones.
type MemoryStore struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

// NewMemoryStore construye un store vacío.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string][]byte)}
}

// Load devuelve una copia del blob o ErrBlobNotFound.
func (s *MemoryStore) Load(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.blobs[key]
	if !ok {
		return nil, ErrBlobNotFound
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}

// Save guarda una copia del blob.
func (s *MemoryStore) Save(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b := make([]byte, len(value))
	copy(b, value)
	s.blobs[key] = b
	return nil
}

// Seed precarga un blob, para simular estado persistido previo.
func (s *MemoryStore) Seed(key string, value []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[key] = append([]byte(nil), value...)
}
