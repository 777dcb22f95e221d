package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/synchomes/synchomes-api/internal/model"
)

type ClientRepository interface {
	GetAll(ctx context.Context) ([]*model.Client, error)
	Create(ctx context.Context, client *model.Client) error
}

type clientRepository struct {
	db *pgxpool.Pool
}

func NewClientRepository(db *pgxpool.Pool) ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) GetAll(ctx context.Context) ([]*model.Client, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, description, designation, image, created_at FROM clients ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clients := []*model.Client{}
	for rows.Next() {
		cl := &model.Client{}
		if err := rows.Scan(&cl.ID, &cl.Name, &cl.Description, &cl.Designation, &cl.Image, &cl.CreatedAt); err != nil {
			return nil, err
		}
		clients = append(clients, cl)
	}
	return clients, rows.Err()
}

func (r *clientRepository) Create(ctx context.Context, client *model.Client) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO clients (name, description, designation, image)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		client.Name, client.Description, client.Designation, client.Image,
	).Scan(&client.ID, &client.CreatedAt)
	return translate(err)
}
