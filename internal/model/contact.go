package model

import (
	"time"

	"github.com/google/uuid"
)

// Contact is a lead submitted through the public contact form. Email is unique.
type Contact struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	City      string    `json:"city"`
	CreatedAt time.Time `json:"createdAt"`
}

type ContactRequest struct {
	Name  string `json:"name" binding:"required,max=100"`
	Email string `json:"email" binding:"required,email,max=255"`
	Phone string `json:"phone" binding:"required,max=32"`
	City  string `json:"city" binding:"required,max=100"`
}
