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

// ClientHandler handles testimonial endpoints.
type ClientHandler struct {
	clientService *service.ClientService
}

// NewClientHandler creates a new ClientHandler.
func NewClientHandler(clientService *service.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// ListClients godoc
// GET /api/clients
func (h *ClientHandler) ListClients(c *gin.Context) {
	clients, err := h.clientService.List(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}

	response.List(c, clients)
}

// CreateClient godoc
// POST /api/clients
// Multipart: name, description, designation and an optional image file.
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var form model.ClientForm
	if fields := validator.BindForm(c, &form); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	in := service.ClientInput{
		Name:        form.Name,
		Description: form.Description,
		Designation: form.Designation,
	}
	client, err := h.clientService.Create(c.Request.Context(), in, formImage(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrClientExists):
			response.Fail(c, http.StatusBadRequest, response.ErrClientExists)
		case failWrite(c, err):
		default:
			response.InternalError(c, err)
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "Client created successfully",
		"client":  client,
	})
}
