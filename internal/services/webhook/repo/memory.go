package repo

import (
	"context"
	"sort"
	"sync"

	"modhook/internal/services/webhook/domain"
)

// Memory is an in process registry for tests and single node runs
type Memory struct {
	mu      sync.RWMutex
	modules map[string]domain.ModuleRecord
	builds  map[string]domain.Build
}

// NewMemory returns an empty registry
func NewMemory() *Memory {
	return &Memory{
		modules: map[string]domain.ModuleRecord{},
		builds:  map[string]domain.Build{},
	}
}

var _ domain.Registry = (*Memory)(nil)

func (m *Memory) GetModule(_ context.Context, name string) (*domain.ModuleRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.modules[name]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (m *Memory) SaveModule(_ context.Context, rec domain.ModuleRecord) error {
	m.mu.Lock()
	m.modules[rec.Name] = rec
	m.mu.Unlock()
	return nil
}

func (m *Memory) CountByRepository(_ context.Context, repository string) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n := 0
	for _, rec := range m.modules {
		if domain.SameRepository(rec.Repository, repository) {
			n++
		}
	}
	return n, nil
}

// QueueBuild rejects a second build of the same module version
func (m *Memory) QueueBuild(_ context.Context, b domain.Build) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, q := range m.builds {
		if q.Module == b.Module && q.Version == b.Version {
			return domain.ErrBuildQueued
		}
	}
	m.builds[b.ID] = b
	return nil
}

func (m *Memory) GetBuild(_ context.Context, id string) (*domain.Build, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.builds[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

// ListBuilds returns builds of module oldest first; empty module lists all
func (m *Memory) ListBuilds(_ context.Context, module string) ([]domain.Build, error) {
	m.mu.RLock()
	out := make([]domain.Build, 0, len(m.builds))
	for _, b := range m.builds {
		if module == "" || b.Module == module {
			out = append(out, b)
		}
	}
	m.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// MemoryMetadata is an in process blob store keyed like the redis one
type MemoryMetadata struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemoryMetadata returns an empty blob store
func NewMemoryMetadata() *MemoryMetadata { return &MemoryMetadata{blobs: map[string][]byte{}} }

var _ domain.Metadata = (*MemoryMetadata)(nil)

func (m *MemoryMetadata) ReadMetadata(_ context.Context, name, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.blobs[MetaKey(name, key)]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), b...), true, nil
}

func (m *MemoryMetadata) WriteMetadata(_ context.Context, name, key string, data []byte) error {
	m.mu.Lock()
	m.blobs[MetaKey(name, key)] = append([]byte(nil), data...)
	m.mu.Unlock()
	return nil
}

// Keys lists stored blob keys, sorted
func (m *MemoryMetadata) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, 0, len(m.blobs))
	for k := range m.blobs {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
