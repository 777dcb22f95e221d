package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/synchomes/synchomes-api/internal/model"
)

type SubscriberRepository interface {
	GetAll(ctx context.Context) ([]*model.Subscriber, error)
	Create(ctx context.Context, subscriber *model.Subscriber) error
}

type subscriberRepository struct {
	db *pgxpool.Pool
}

func NewSubscriberRepository(db *pgxpool.Pool) SubscriberRepository {
	return &subscriberRepository{db: db}
}

func (r *subscriberRepository) GetAll(ctx context.Context) ([]*model.Subscriber, error) {
	rows, err := r.db.Query(ctx, `SELECT id, email, created_at FROM subscribers ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subscribers := []*model.Subscriber{}
	for rows.Next() {
		s := &model.Subscriber{}
		if err := rows.Scan(&s.ID, &s.Email, &s.CreatedAt); err != nil {
			return nil, err
		}
		subscribers = append(subscribers, s)
	}
	return subscribers, rows.Err()
}

func (r *subscriberRepository) Create(ctx context.Context, subscriber *model.Subscriber) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO subscribers (email) VALUES ($1) RETURNING id, created_at`,
		subscriber.Email,
	).Scan(&subscriber.ID, &subscriber.CreatedAt)
	return translate(err)
}
