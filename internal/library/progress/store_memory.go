// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package progress

import (
	"context"
	"sync"

	"github.com/taibuivan/noctoon/internal/platform/apperr"
)

type pairKey struct {
	userID   string
	seriesID string
}

// MemoryRepository keeps progress rows in a map keyed on (userId, seriesId).
type MemoryRepository struct {
	mu    sync.RWMutex
	order []pairKey
	items map[pairKey]ReadingProgress
}

// NewMemoryRepository returns an empty progress store.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[pairKey]ReadingProgress)}
}

func (repository *MemoryRepository) ListByUser(_ context.Context, userID string) ([]*ReadingProgress, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	rows := make([]*ReadingProgress, 0)
	for _, key := range repository.order {
		if key.userID == userID {
			stored := repository.items[key]
			rows = append(rows, &stored)
		}
	}
	return rows, nil
}

func (repository *MemoryRepository) Find(_ context.Context, userID, seriesID string) (*ReadingProgress, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	stored, ok := repository.items[pairKey{userID, seriesID}]
	if !ok {
		return nil, apperr.NotFound("Reading progress")
	}
	return &stored, nil
}

func (repository *MemoryRepository) Upsert(_ context.Context, progress *ReadingProgress) (*ReadingProgress, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	key := pairKey{progress.UserID, progress.SeriesID}
	stored, exists := repository.items[key]
	if exists {
		stored.ChapterID = progress.ChapterID
		stored.CurrentPage = progress.CurrentPage
		stored.LastRead = progress.LastRead
	} else {
		stored = *progress
		repository.order = append(repository.order, key)
	}

	repository.items[key] = stored
	return &stored, nil
}
