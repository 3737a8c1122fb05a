// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"sync"

	"github.com/taibuivan/noctoon/internal/platform/apperr"
)

// MemoryUserRepository keeps accounts in process memory.
type MemoryUserRepository struct {
	mu         sync.RWMutex
	byID       map[string]User
	byUsername map[string]string
}

// NewMemoryUserRepository returns an empty account store.
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		byID:       make(map[string]User),
		byUsername: make(map[string]string),
	}
}

func (repository *MemoryUserRepository) FindByID(_ context.Context, id string) (*User, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	user, ok := repository.byID[id]
	if !ok {
		return nil, apperr.NotFound("User")
	}
	return &user, nil
}

func (repository *MemoryUserRepository) FindByUsername(_ context.Context, username string) (*User, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	id, ok := repository.byUsername[username]
	if !ok {
		return nil, apperr.NotFound("User")
	}
	user := repository.byID[id]
	return &user, nil
}

func (repository *MemoryUserRepository) Create(_ context.Context, user *User) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, taken := repository.byUsername[user.Username]; taken {
		return apperr.Conflict("Username already exists")
	}
	if _, taken := repository.byID[user.ID]; taken {
		return apperr.Conflict("User already exists")
	}

	repository.byID[user.ID] = *user
	repository.byUsername[user.Username] = user.ID
	return nil
}
