package storage

import (
	"context"
	"encoding/base64"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/pkg/exceptions"
	"sync"
)

// memoryStorage keeps objects in a map. It backs tests and local runs where
// no object store is reachable.
type memoryStorage struct {
	mu      sync.RWMutex
	objects map[string][]byte
}

func NewMemoryStorage() contracts.Storage {
	return &memoryStorage{objects: make(map[string][]byte)}
}

func (m *memoryStorage) PutBase64Object(ctx context.Context, objectKey string, encoded []byte, contentType string) (string, error) {
	decoded, err := base64.StdEncoding.DecodeString(string(encoded))
	if err != nil {
		return "", exceptions.ErrImageValidation(err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[objectKey] = decoded
	return objectKey, nil
}

func (m *memoryStorage) RemoveObject(ctx context.Context, objectKey string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, objectKey)
	return nil
}

// Object returns the stored bytes, for assertions in tests.
func (m *memoryStorage) Object(objectKey string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.objects[objectKey]
	return data, ok
}
