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

// SubscriberHandler handles newsletter signups.
type SubscriberHandler struct {
	subscriberService *service.SubscriberService
}

// NewSubscriberHandler creates a new SubscriberHandler.
func NewSubscriberHandler(subscriberService *service.SubscriberService) *SubscriberHandler {
	return &SubscriberHandler{subscriberService: subscriberService}
}

// ListSubscribers godoc
// GET /api/subscribers
func (h *SubscriberHandler) ListSubscribers(c *gin.Context) {
	subscribers, err := h.subscriberService.List(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}

	response.List(c, subscribers)
}

// CreateSubscriber godoc
// POST /api/subscribers
func (h *SubscriberHandler) CreateSubscriber(c *gin.Context) {
	var req model.SubscriberRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	subscriber, err := h.subscriberService.Create(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, service.ErrSubscriberExists) {
			response.Fail(c, http.StatusBadRequest, response.ErrSubscriberExists)
			return
		}
		response.InternalError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message":    "Subscribed successfully",
		"subscriber": subscriber,
	})
}
