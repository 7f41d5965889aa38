package api

import (
	"fmt"
	"net/http"

	"trackhq/trackhq-server/internal/service"

	"github.com/gin-gonic/gin"
)

// PreferencesHandler exposes the active profile's free-form preference bag.
type PreferencesHandler struct {
	recordService service.RecordService
}

// NewPreferencesHandler creates a new PreferencesHandler.
func NewPreferencesHandler(recordService service.RecordService) *PreferencesHandler {
	return &PreferencesHandler{recordService: recordService}
}

// GetPreferences godoc
// @Summary Get the preference bag
// @Description Returns an empty object when nothing has been saved yet.
// @Tags Preferences
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]any "Preferences"
// @Router /preferences [get]
func (h *PreferencesHandler) GetPreferences(c *gin.Context) {
	prefs, err := h.recordService.GetPreferences(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get preferences.")
		return
	}
	if prefs == nil {
		prefs = map[string]any{}
	}
	c.JSON(http.StatusOK, prefs)
}

// SavePreferences godoc
// @Summary Replace the preference bag
// @Description The stored object is replaced wholesale, not merged.
// @Tags Preferences
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param preferences body map[string]any true "Preferences"
// @Success 200 {object} map[string]any "Stored preferences"
// @Failure 400 {object} gin.H "Invalid input"
// @Router /preferences [put]
func (h *PreferencesHandler) SavePreferences(c *gin.Context) {
	var prefs map[string]any
	if err := c.ShouldBindJSON(&prefs); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	if err := h.recordService.SavePreferences(c.Request.Context(), prefs); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to save preferences.")
		return
	}
	c.JSON(http.StatusOK, prefs)
}
