package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/synchomes/synchomes-api/internal/model"
	"github.com/synchomes/synchomes-api/internal/repository"
)

type ContactService struct {
	repo repository.ContactRepository
}

func NewContactService(repo repository.ContactRepository) *ContactService {
	return &ContactService{repo: repo}
}

func (s *ContactService) List(ctx context.Context) ([]*model.Contact, error) {
	return s.repo.GetAll(ctx)
}

// Create records a lead. One lead per email address.
func (s *ContactService) Create(ctx context.Context, req model.ContactRequest) (*model.Contact, error) {
	contact := &model.Contact{
		Name:  cleanText(req.Name),
		Email: normalizeEmail(req.Email),
		Phone: cleanText(req.Phone),
		City:  cleanText(req.City),
	}
	if contact.Name == "" || contact.Phone == "" || contact.City == "" {
		return nil, ErrBlankField
	}

	if err := s.repo.Create(ctx, contact); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrContactExists
		}
		return nil, fmt.Errorf("create contact: %w", err)
	}
	return contact, nil
}
