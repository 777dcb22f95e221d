package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/synchomes/synchomes-api/internal/model"
	"github.com/synchomes/synchomes-api/internal/response"
	"github.com/synchomes/synchomes-api/internal/service"
	"github.com/synchomes/synchomes-api/internal/validator"
)

// ContactHandler handles the public contact form.
type ContactHandler struct {
	contactService *service.ContactService
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// ListContacts godoc
// GET /api/contacts
func (h *ContactHandler) ListContacts(c *gin.Context) {
	contacts, err := h.contactService.List(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}

	response.List(c, contacts)
}

// CreateContact godoc
// POST /api/contacts
func (h *ContactHandler) CreateContact(c *gin.Context) {
	var req model.ContactRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	contact, err := h.contactService.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrContactExists):
			response.Fail(c, http.StatusBadRequest, response.ErrContactExists)
		case failWrite(c, err):
		default:
			response.InternalError(c, err)
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "Contact created successfully",
		"contact": contact,
	})
}
