package api

import (
	"errors"
	"fmt"
	"net/http"

	"trackhq/trackhq-server/internal/domain"
	"trackhq/trackhq-server/internal/service"

	"github.com/gin-gonic/gin"
)

// TemplateHandler exposes the active profile's saved workout templates.
type TemplateHandler struct {
	recordService service.RecordService
}

// NewTemplateHandler creates a new TemplateHandler.
func NewTemplateHandler(recordService service.RecordService) *TemplateHandler {
	return &TemplateHandler{recordService: recordService}
}

// ListTemplates godoc
// @Summary List saved templates
// @Tags Templates
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.SavedTemplate "Saved templates"
// @Router /templates [get]
func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	templates, err := h.recordService.ListTemplates(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list templates.")
		return
	}
	if templates == nil {
		templates = []domain.SavedTemplate{}
	}
	c.JSON(http.StatusOK, templates)
}

// SaveTemplate godoc
// @Summary Save a workout template
// @Description Upserts by ID, assigning one for new templates.
// @Tags Templates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param template body domain.SavedTemplate true "Template"
// @Success 200 {object} domain.SavedTemplate "Stored template"
// @Failure 400 {object} gin.H "Invalid input"
// @Router /templates [put]
func (h *TemplateHandler) SaveTemplate(c *gin.Context) {
	var template domain.SavedTemplate
	if err := c.ShouldBindJSON(&template); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	stored, err := h.recordService.SaveTemplate(c.Request.Context(), template)
	if err != nil {
		if errors.Is(err, service.ErrTemplateNameEmpty) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to save template.")
		}
		return
	}
	c.JSON(http.StatusOK, stored)
}

// GetTemplate godoc
// @Summary Get a saved template by ID
// @Tags Templates
// @Produce json
// @Security BearerAuth
// @Param id path string true "Template ID"
// @Success 200 {object} domain.SavedTemplate "Template"
// @Failure 404 {object} gin.H "Unknown template"
// @Router /templates/{id} [get]
func (h *TemplateHandler) GetTemplate(c *gin.Context) {
	template, err := h.recordService.GetTemplateByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrTemplateNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to get template.")
		}
		return
	}
	c.JSON(http.StatusOK, template)
}

// DeleteTemplate godoc
// @Summary Delete a saved template
// @Description Deleting an unknown ID is a no-op.
// @Tags Templates
// @Produce json
// @Security BearerAuth
// @Param id path string true "Template ID"
// @Success 204 "Template deleted"
// @Router /templates/{id} [delete]
func (h *TemplateHandler) DeleteTemplate(c *gin.Context) {
	if err := h.recordService.DeleteTemplate(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to delete template.")
		return
	}
	c.Status(http.StatusNoContent)
}
