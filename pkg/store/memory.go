package store

import (
	"fmt"
	"sync"

	"github.com/arashsheyda/vue-prop-konverter/pkg/types"
)

// MemoryStore implements Store with in-process maps. It is safe for
// concurrent use and intended for tests and one-shot scans.
type MemoryStore struct {
	mu          sync.RWMutex
	contents    map[string]string
	conversions map[string]*types.Conversion
}

// NewMemory creates an empty in-memory store.
func NewMemory() *MemoryStore {
	return &MemoryStore{
		contents:    make(map[string]string),
		conversions: make(map[string]*types.Conversion),
	}
}

func (s *MemoryStore) AddContent(id types.ContentID, path string, size int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.contents[id.Hex()]; !ok {
		s.contents[id.Hex()] = path
	}
	return nil
}

func (s *MemoryStore) ContentExists(id types.ContentID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.contents[id.Hex()]
	return ok, nil
}

func (s *MemoryStore) GetContentPath(id types.ContentID) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	path, ok := s.contents[id.Hex()]
	if !ok {
		return "", fmt.Errorf("content not found: %s", id.Hex())
	}
	return path, nil
}

func (s *MemoryStore) AddConversion(c *types.Conversion) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.conversions[c.StructuralID]; !ok {
		s.conversions[c.StructuralID] = c
	}
	return nil
}

func (s *MemoryStore) ConversionExists(structuralID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.conversions[structuralID]
	return ok, nil
}

func (s *MemoryStore) GetConversions(id types.ContentID) ([]*types.Conversion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*types.Conversion
	for _, c := range s.conversions {
		if c.ContentID == id {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *MemoryStore) GetAllConversions() ([]*types.Conversion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*types.Conversion, 0, len(s.conversions))
	for _, c := range s.conversions {
		out = append(out, c)
	}
	return out, nil
}

func (s *MemoryStore) Close() error {
	return nil
}
