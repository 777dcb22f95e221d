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

// ProjectHandler handles showcase project CRUD.
type ProjectHandler struct {
	projectService *service.ProjectService
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(projectService *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// ListProjects godoc
// GET /api/projects
// Lists every project, oldest first.
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.projectService.List(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}

	response.List(c, projects)
}

// CreateProject godoc
// POST /api/projects
// Multipart: category, name, location and an optional image file.
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var form model.ProjectForm
	if fields := validator.BindForm(c, &form); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	project, err := h.projectService.Create(c.Request.Context(), projectInput(form), formImage(c))
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "Project created successfully",
		"project": project,
	})
}

// UpdateProject godoc
// PUT /api/projects/:id
// Replaces every field. Resend the current image path in the "image" text
// field to keep it; omit both file and path to clear it.
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var form model.ProjectForm
	if fields := validator.BindForm(c, &form); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	project, err := h.projectService.Update(c.Request.Context(), id, projectInput(form), formImage(c))
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Project updated successfully",
		"project": project,
	})
}

// DeleteProject godoc
// DELETE /api/projects/:id
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.projectService.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Project deleted successfully")
}

func (h *ProjectHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrProjectExists):
		response.Fail(c, http.StatusBadRequest, response.ErrProjectExists)
	case errors.Is(err, service.ErrProjectNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrProjectNotFound)
	case errors.Is(err, service.ErrInvalidImagePath):
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidImagePath)
	case failWrite(c, err):
	default:
		response.InternalError(c, err)
	}
}

func projectInput(form model.ProjectForm) service.ProjectInput {
	return service.ProjectInput{
		Category: form.Category,
		Name:     form.Name,
		Location: form.Location,
		Image:    form.Image,
	}
}
