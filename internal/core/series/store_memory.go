// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package series

import (
	"context"
	"slices"
	"sync"

	"github.com/taibuivan/noctoon/internal/platform/apperr"
)

// MemoryRepository keeps the catalog in process memory.
type MemoryRepository struct {
	mu    sync.RWMutex
	order []string
	items map[string]*Series
}

// NewMemoryRepository returns an empty in-memory catalog.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[string]*Series)}
}

func (repository *MemoryRepository) List(_ context.Context) ([]*Series, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	all := make([]*Series, 0, len(repository.order))
	for _, id := range repository.order {
		all = append(all, repository.items[id].Clone())
	}
	return all, nil
}

func (repository *MemoryRepository) FindByID(_ context.Context, id string) (*Series, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	stored, ok := repository.items[id]
	if !ok {
		return nil, apperr.NotFound("Series")
	}
	return stored.Clone(), nil
}

func (repository *MemoryRepository) Create(_ context.Context, series *Series) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, exists := repository.items[series.ID]; exists {
		return apperr.Conflict("Series already exists")
	}
	repository.items[series.ID] = series.Clone()
	repository.order = append(repository.order, series.ID)
	return nil
}

func (repository *MemoryRepository) Update(_ context.Context, series *Series) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, exists := repository.items[series.ID]; !exists {
		return apperr.NotFound("Series")
	}
	repository.items[series.ID] = series.Clone()
	return nil
}

func (repository *MemoryRepository) Delete(_ context.Context, id string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, exists := repository.items[id]; !exists {
		return apperr.NotFound("Series")
	}
	delete(repository.items, id)
	repository.order = slices.DeleteFunc(repository.order, func(stored string) bool { return stored == id })
	return nil
}
