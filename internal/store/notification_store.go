package store

import (
	"context"
	"sort"
	"sync"

	"escala-equipe/internal/domain"
)

// NotificationStore holds the advisory conflict alerts. Entries are seeded
// at startup; the only mutation is the one-way resolve flip.
type NotificationStore interface {
	// List returns all notifications, unresolved first, newest first
	// within each group.
	List(ctx context.Context) ([]domain.Notification, error)
	Resolve(ctx context.Context, id int) (*domain.Notification, error)
}

type notificationStore struct {
	mu            sync.RWMutex
	notifications []domain.Notification
	index         map[int]int
}

func NewNotificationStore(notifications []domain.Notification) NotificationStore {
	s := &notificationStore{
		notifications: make([]domain.Notification, len(notifications)),
		index:         make(map[int]int, len(notifications)),
	}
	copy(s.notifications, notifications)
	for i, n := range s.notifications {
		s.index[n.ID] = i
	}
	return s
}

func (s *notificationStore) List(ctx context.Context) ([]domain.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Notification, len(s.notifications))
	copy(out, s.notifications)

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Resolved != out[j].Resolved {
			return !out[i].Resolved
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *notificationStore) Resolve(ctx context.Context, id int) (*domain.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return nil, domain.ErrNotificationNotFound
	}

	// Resolving an already-resolved notification is a visible no-op.
	s.notifications[i].Resolved = true
	resolved := s.notifications[i]
	return &resolved, nil
}
