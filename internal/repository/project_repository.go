package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/synchomes/synchomes-api/internal/model"
)

type ProjectRepository interface {
	GetAll(ctx context.Context) ([]*model.Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Project, error)
	Create(ctx context.Context, project *model.Project) error
	Update(ctx context.Context, project *model.Project) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type projectRepository struct {
	db *pgxpool.Pool
}

func NewProjectRepository(db *pgxpool.Pool) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) GetAll(ctx context.Context) ([]*model.Project, error) {
	query := `SELECT id, category, name, location, image, created_at, updated_at FROM projects ORDER BY created_at ASC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := []*model.Project{}
	for rows.Next() {
		p := &model.Project{}
		if err := rows.Scan(&p.ID, &p.Category, &p.Name, &p.Location, &p.Image, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *projectRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	query := `SELECT id, category, name, location, image, created_at, updated_at FROM projects WHERE id = $1`
	p := &model.Project{}
	err := r.db.QueryRow(ctx, query, id).Scan(&p.ID, &p.Category, &p.Name, &p.Location, &p.Image, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, translate(err)
	}
	return p, nil
}

func (r *projectRepository) Create(ctx context.Context, project *model.Project) error {
	query := `
		INSERT INTO projects (category, name, location, image)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, project.Category, project.Name, project.Location, project.Image).
		Scan(&project.ID, &project.CreatedAt, &project.UpdatedAt)
	return translate(err)
}

// Update overwrites every mutable column; there is no partial patch.
func (r *projectRepository) Update(ctx context.Context, project *model.Project) error {
	query := `
		UPDATE projects
		SET category = $1, name = $2, location = $3, image = $4, updated_at = CURRENT_TIMESTAMP
		WHERE id = $5
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, project.Category, project.Name, project.Location, project.Image, project.ID).
		Scan(&project.CreatedAt, &project.UpdatedAt)
	return translate(err)
}

func (r *projectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
