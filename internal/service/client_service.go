package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/rs/zerolog"
	"github.com/synchomes/synchomes-api/internal/config"
	"github.com/synchomes/synchomes-api/internal/model"
	"github.com/synchomes/synchomes-api/internal/repository"
)

// ClientInput carries the fields of a new testimonial.
type ClientInput struct {
	Name        string
	Description string
	Designation string
}

type ClientService struct {
	repo  repository.ClientRepository
	media *MediaService
	cache ListCache
	log   zerolog.Logger
}

func NewClientService(repo repository.ClientRepository, media *MediaService, cache ListCache, log zerolog.Logger) *ClientService {
	return &ClientService{
		repo:  repo,
		media: media,
		cache: cache,
		log:   log.With().Str("component", "client_service").Logger(),
	}
}

func (s *ClientService) List(ctx context.Context) ([]*model.Client, error) {
	key := config.CacheKey.ClientListKey()

	var cached []*model.Client
	if s.cache.Load(ctx, key, &cached) {
		return cached, nil
	}

	clients, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	s.cache.Store(ctx, key, clients)
	return clients, nil
}

// Create stores a testimonial; (name, description, designation) must be unused.
func (s *ClientService) Create(ctx context.Context, in ClientInput, image *multipart.FileHeader) (*model.Client, error) {
	client := &model.Client{
		Name:        cleanText(in.Name),
		Description: cleanText(in.Description),
		Designation: cleanText(in.Designation),
	}
	if client.Name == "" || client.Description == "" || client.Designation == "" {
		return nil, ErrBlankField
	}

	if image != nil {
		url, err := s.media.SaveUpload(image)
		if err != nil {
			return nil, err
		}
		client.Image = url
	}

	if err := s.repo.Create(ctx, client); err != nil {
		if client.Image != "" {
			if rmErr := s.media.Remove(client.Image); rmErr != nil {
				s.log.Warn().Err(rmErr).Str("image", client.Image).Msg("failed to remove unused upload")
			}
		}
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrClientExists
		}
		return nil, fmt.Errorf("create client: %w", err)
	}

	s.cache.Invalidate(ctx, config.CacheKey.ClientListKey())
	return client, nil
}
