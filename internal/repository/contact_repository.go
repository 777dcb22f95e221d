package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/synchomes/synchomes-api/internal/model"
)

type ContactRepository interface {
	GetAll(ctx context.Context) ([]*model.Contact, error)
	Create(ctx context.Context, contact *model.Contact) error
}

type contactRepository struct {
	db *pgxpool.Pool
}

func NewContactRepository(db *pgxpool.Pool) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) GetAll(ctx context.Context) ([]*model.Contact, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, email, phone, city, created_at FROM contacts ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	contacts := []*model.Contact{}
	for rows.Next() {
		ct := &model.Contact{}
		if err := rows.Scan(&ct.ID, &ct.Name, &ct.Email, &ct.Phone, &ct.City, &ct.CreatedAt); err != nil {
			return nil, err
		}
		contacts = append(contacts, ct)
	}
	return contacts, rows.Err()
}

func (r *contactRepository) Create(ctx context.Context, contact *model.Contact) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO contacts (name, email, phone, city)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		contact.Name, contact.Email, contact.Phone, contact.City,
	).Scan(&contact.ID, &contact.CreatedAt)
	return translate(err)
}
