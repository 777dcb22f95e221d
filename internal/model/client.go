package model

import (
	"time"

	"github.com/google/uuid"
)

// Client is a customer testimonial shown on the landing page.
// (Name, Description, Designation) is unique.
type Client struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Designation string    `json:"designation"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ClientForm is the multipart payload for creating a testimonial.
type ClientForm struct {
	Name        string `form:"name" binding:"required,max=100"`
	Description string `form:"description" binding:"required,max=2000"`
	Designation string `form:"designation" binding:"required,max=100"`
}
