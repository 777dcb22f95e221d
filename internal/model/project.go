package model

import (
	"time"

	"github.com/google/uuid"
)

// ProjectCategory is the closed set of service lines a project belongs to.
type ProjectCategory string

const (
	CategoryConsultation ProjectCategory = "Consultation"
	CategoryConstruction ProjectCategory = "Construction"
	CategoryRenovation   ProjectCategory = "Renovation"
	CategoryDesign       ProjectCategory = "Design"
	CategoryMarketing    ProjectCategory = "Marketing"
)

// ProjectCategories lists every category in display order.
var ProjectCategories = []ProjectCategory{
	CategoryConsultation,
	CategoryConstruction,
	CategoryRenovation,
	CategoryDesign,
	CategoryMarketing,
}

// Valid reports whether c is one of the known categories.
func (c ProjectCategory) Valid() bool {
	for _, known := range ProjectCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Project is a showcased piece of work. (Category, Name, Location) is unique.
type Project struct {
	ID        uuid.UUID       `json:"id"`
	Category  ProjectCategory `json:"category"`
	Name      string          `json:"name"`
	Location  string          `json:"location"`
	Image     string          `json:"image"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// ProjectForm is the multipart payload for create and update. Image carries
// the current image path when the caller keeps the existing file on update.
type ProjectForm struct {
	Category string `form:"category" binding:"required,oneof=Consultation Construction Renovation Design Marketing"`
	Name     string `form:"name" binding:"required,max=200"`
	Location string `form:"location" binding:"required,max=200"`
	Image    string `form:"image" binding:"max=512"`
}
