package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/synchomes/synchomes-api/internal/model"
	"github.com/synchomes/synchomes-api/internal/repository"
)

type SubscriberService struct {
	repo repository.SubscriberRepository
}

func NewSubscriberService(repo repository.SubscriberRepository) *SubscriberService {
	return &SubscriberService{repo: repo}
}

func (s *SubscriberService) List(ctx context.Context) ([]*model.Subscriber, error) {
	return s.repo.GetAll(ctx)
}

func (s *SubscriberService) Create(ctx context.Context, email string) (*model.Subscriber, error) {
	subscriber := &model.Subscriber{Email: normalizeEmail(email)}
	if err := s.repo.Create(ctx, subscriber); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrSubscriberExists
		}
		return nil, fmt.Errorf("create subscriber: %w", err)
	}
	return subscriber, nil
}
