package handler

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/synchomes/synchomes-api/internal/response"
	"github.com/synchomes/synchomes-api/internal/service"
)

// imageField is the multipart field carrying an uploaded image.
const imageField = "image"

// parseID reads the :id path parameter. A malformed id has already been
// answered with 400 when ok is false.
func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return uuid.Nil, false
	}
	return id, true
}

// formImage returns the optional image file of a multipart request.
func formImage(c *gin.Context) *multipart.FileHeader {
	header, err := c.FormFile(imageField)
	if err != nil {
		return nil
	}
	return header
}

// failWrite maps the service errors shared by every write endpoint. It
// reports false when err is not one of them.
func failWrite(c *gin.Context, err error) bool {
	switch {
	case errors.Is(err, service.ErrUnsupportedFileType):
		response.Fail(c, http.StatusBadRequest, response.ErrUnsupportedFile)
	case errors.Is(err, service.ErrFileTooLarge):
		response.Fail(c, http.StatusBadRequest, response.ErrFileTooLarge)
	case errors.Is(err, service.ErrBlankField), errors.Is(err, service.ErrInvalidCategory):
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, blankFields(err))
	default:
		return false
	}
	return true
}

func blankFields(err error) map[string]string {
	if errors.Is(err, service.ErrInvalidCategory) {
		return map[string]string{"category": "category must be one of the listed categories"}
	}
	return map[string]string{"_": "text fields must not be blank"}
}
