package model

import (
	"time"

	"github.com/google/uuid"
)

// Subscriber is a newsletter signup. Email is unique.
type Subscriber struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type SubscriberRequest struct {
	Email string `json:"email" binding:"required,email,max=255"`
}
