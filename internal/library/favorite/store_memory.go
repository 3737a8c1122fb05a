// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package favorite

import (
	"context"
	"slices"
	"sync"

	"github.com/taibuivan/noctoon/internal/platform/apperr"
)

type pairKey struct {
	userID   string
	seriesID string
}

// MemoryRepository keeps favorites in process memory.
type MemoryRepository struct {
	mu    sync.RWMutex
	order []pairKey
	items map[pairKey]Favorite
}

// NewMemoryRepository returns an empty favorites store.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[pairKey]Favorite)}
}

func (repository *MemoryRepository) ListByUser(_ context.Context, userID string) ([]*Favorite, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	favorites := make([]*Favorite, 0)
	for _, key := range repository.order {
		if key.userID == userID {
			stored := repository.items[key]
			favorites = append(favorites, &stored)
		}
	}
	return favorites, nil
}

func (repository *MemoryRepository) Find(_ context.Context, userID, seriesID string) (*Favorite, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	stored, ok := repository.items[pairKey{userID, seriesID}]
	if !ok {
		return nil, apperr.NotFound("Favorite")
	}
	return &stored, nil
}

func (repository *MemoryRepository) Create(_ context.Context, favorite *Favorite) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	key := pairKey{favorite.UserID, favorite.SeriesID}
	if _, exists := repository.items[key]; exists {
		return apperr.Conflict("Favorite already exists")
	}
	repository.items[key] = *favorite
	repository.order = append(repository.order, key)
	return nil
}

func (repository *MemoryRepository) Delete(_ context.Context, userID, seriesID string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	key := pairKey{userID, seriesID}
	if _, exists := repository.items[key]; !exists {
		return apperr.NotFound("Favorite")
	}
	delete(repository.items, key)
	repository.order = slices.DeleteFunc(repository.order, func(stored pairKey) bool { return stored == key })
	return nil
}
