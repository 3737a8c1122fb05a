// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package chapter

import (
	"context"
	"slices"
	"sync"

	"github.com/taibuivan/noctoon/internal/platform/apperr"
)

// MemoryRepository keeps chapters in process memory, in insertion order.
type MemoryRepository struct {
	mu    sync.RWMutex
	order []string
	items map[string]*Chapter
}

// NewMemoryRepository returns an empty chapter store.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[string]*Chapter)}
}

func (repository *MemoryRepository) ListBySeries(_ context.Context, seriesID string) ([]*Chapter, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	chapters := make([]*Chapter, 0)
	for _, id := range repository.order {
		if stored := repository.items[id]; stored.SeriesID == seriesID {
			chapters = append(chapters, stored.Clone())
		}
	}
	return chapters, nil
}

func (repository *MemoryRepository) FindByID(_ context.Context, id string) (*Chapter, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	stored, ok := repository.items[id]
	if !ok {
		return nil, apperr.NotFound("Chapter")
	}
	return stored.Clone(), nil
}

func (repository *MemoryRepository) Create(_ context.Context, chapter *Chapter) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, exists := repository.items[chapter.ID]; exists {
		return apperr.Conflict("Chapter already exists")
	}
	repository.items[chapter.ID] = chapter.Clone()
	repository.order = append(repository.order, chapter.ID)
	return nil
}

func (repository *MemoryRepository) Update(_ context.Context, chapter *Chapter) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, exists := repository.items[chapter.ID]; !exists {
		return apperr.NotFound("Chapter")
	}
	repository.items[chapter.ID] = chapter.Clone()
	return nil
}

func (repository *MemoryRepository) Delete(_ context.Context, id string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, exists := repository.items[id]; !exists {
		return apperr.NotFound("Chapter")
	}
	delete(repository.items, id)
	repository.order = slices.DeleteFunc(repository.order, func(stored string) bool { return stored == id })
	return nil
}
