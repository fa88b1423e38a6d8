package store

import (
	"context"
	"sync"

	"escala-equipe/internal/domain"
)

// UserStore is the mock identity provider's user list. Read-only; accounts
// are seeded at startup.
type UserStore interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByID(ctx context.Context, id int) (*domain.User, error)
}

type userStore struct {
	mu         sync.RWMutex
	byID       map[int]domain.User
	byUsername map[string]int
}

func NewUserStore(users []domain.User) UserStore {
	s := &userStore{
		byID:       make(map[int]domain.User, len(users)),
		byUsername: make(map[string]int, len(users)),
	}
	for _, u := range users {
		s.byID[u.ID] = u
		s.byUsername[u.Username] = u.ID
	}
	return s
}

func (s *userStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byUsername[username]
	if !ok {
		return nil, nil
	}
	user := s.byID[id]
	return &user, nil
}

func (s *userStore) GetByID(ctx context.Context, id int) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.byID[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}
