package e2e_test

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"
)

// memoryAssetStorage is an in-process object store so e2e runs don't need
// S3. It tracks stored keys for assertions about asset cleanup.
type memoryAssetStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newMemoryAssetStorage() *memoryAssetStorage {
	return &memoryAssetStorage{objects: make(map[string][]byte)}
}

func (s *memoryAssetStorage) Upload(_ context.Context, key string, reader io.Reader, _ string, _ int64) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = data
	return nil
}

func (s *memoryAssetStorage) GetURL(key string) string {
	return "https://assets.test.local/" + key
}

func (s *memoryAssetStorage) GetSignedURL(key string, _ time.Duration) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.objects[key]; !ok {
		return "", fmt.Errorf("no such object: %s", key)
	}
	return "https://assets.test.local/" + key + "?signed=true", nil
}

func (s *memoryAssetStorage) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	return nil
}

func (s *memoryAssetStorage) object(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.objects[key]
	return data, ok
}

func (s *memoryAssetStorage) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}
