package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/synchomes/synchomes-api/internal/config"
	"github.com/synchomes/synchomes-api/internal/model"
	"github.com/synchomes/synchomes-api/internal/repository"
)

// ProjectInput carries the mutable fields of a project.
type ProjectInput struct {
	Category string
	Name     string
	Location string
	// Image is the path kept when no new file is uploaded. Empty clears it.
	Image string
}

type ProjectService struct {
	repo  repository.ProjectRepository
	media *MediaService
	cache ListCache
	log   zerolog.Logger
}

func NewProjectService(repo repository.ProjectRepository, media *MediaService, cache ListCache, log zerolog.Logger) *ProjectService {
	return &ProjectService{
		repo:  repo,
		media: media,
		cache: cache,
		log:   log.With().Str("component", "project_service").Logger(),
	}
}

// List returns every project, served from the list cache when warm.
func (s *ProjectService) List(ctx context.Context) ([]*model.Project, error) {
	key := config.CacheKey.ProjectListKey()

	var cached []*model.Project
	if s.cache.Load(ctx, key, &cached) {
		return cached, nil
	}

	projects, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	s.cache.Store(ctx, key, projects)
	return projects, nil
}

// Create stores a new project. A duplicate (category, name, location) is
// rejected by the storage unique index and reported as ErrProjectExists.
func (s *ProjectService) Create(ctx context.Context, in ProjectInput, image *multipart.FileHeader) (*model.Project, error) {
	project, err := buildProject(in)
	if err != nil {
		return nil, err
	}
	// New projects never adopt a caller-supplied path.
	project.Image = ""

	uploaded, err := s.attach(project, image)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, project); err != nil {
		s.discard(uploaded)
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrProjectExists
		}
		return nil, fmt.Errorf("create project: %w", err)
	}

	s.cache.Invalidate(ctx, config.CacheKey.ProjectListKey())
	return project, nil
}

// Update replaces every mutable field. The image becomes the newly uploaded
// file, else in.Image, else empty. The previous file is left on disk.
func (s *ProjectService) Update(ctx context.Context, id uuid.UUID, in ProjectInput, image *multipart.FileHeader) (*model.Project, error) {
	project, err := buildProject(in)
	if err != nil {
		return nil, err
	}
	if project.Image != "" && !s.media.Owns(project.Image) {
		return nil, ErrInvalidImagePath
	}
	project.ID = id

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("get project: %w", err)
	}

	uploaded, err := s.attach(project, image)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, project); err != nil {
		s.discard(uploaded)
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return nil, ErrProjectExists
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("update project: %w", err)
	}

	s.cache.Invalidate(ctx, config.CacheKey.ProjectListKey())
	return project, nil
}

// Delete removes the record only; its image file stays on disk.
func (s *ProjectService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("delete project: %w", err)
	}

	s.cache.Invalidate(ctx, config.CacheKey.ProjectListKey())
	return nil
}

// attach saves image, if any, and points the project at it.
func (s *ProjectService) attach(project *model.Project, image *multipart.FileHeader) (string, error) {
	if image == nil {
		return "", nil
	}
	url, err := s.media.SaveUpload(image)
	if err != nil {
		return "", err
	}
	project.Image = url
	return url, nil
}

// discard removes a file saved for a write that did not commit.
func (s *ProjectService) discard(url string) {
	if url == "" {
		return
	}
	if err := s.media.Remove(url); err != nil {
		s.log.Warn().Err(err).Str("image", url).Msg("failed to remove unused upload")
	}
}

func buildProject(in ProjectInput) (*model.Project, error) {
	category := model.ProjectCategory(in.Category)
	if !category.Valid() {
		return nil, ErrInvalidCategory
	}
	project := &model.Project{
		Category: category,
		Name:     cleanText(in.Name),
		Location: cleanText(in.Location),
		Image:    strings.TrimSpace(in.Image),
	}
	if project.Name == "" || project.Location == "" {
		return nil, ErrBlankField
	}
	return project, nil
}
