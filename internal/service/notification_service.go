package service

import (
	"context"

	"escala-equipe/internal/domain"
	"escala-equipe/internal/store"
)

type NotificationService interface {
	List(ctx context.Context) ([]domain.Notification, error)
	Resolve(ctx context.Context, id int) (*domain.Notification, error)
	UnresolvedCount(ctx context.Context) (int, error)
}

type notificationService struct {
	notifications store.NotificationStore
}

func NewNotificationService(notifications store.NotificationStore) NotificationService {
	return &notificationService{notifications: notifications}
}

func (s *notificationService) List(ctx context.Context) ([]domain.Notification, error) {
	return s.notifications.List(ctx)
}

func (s *notificationService) Resolve(ctx context.Context, id int) (*domain.Notification, error) {
	return s.notifications.Resolve(ctx, id)
}

func (s *notificationService) UnresolvedCount(ctx context.Context) (int, error) {
	all, err := s.notifications.List(ctx)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, n := range all {
		if !n.Resolved {
			count++
		}
	}
	return count, nil
}
