package api

import (
	"net/http"

	"trackhq/trackhq-server/internal/catalog"
	"trackhq/trackhq-server/internal/domain"

	"github.com/gin-gonic/gin"
)

// ExerciseHandler serves the compiled-in exercise catalog. The catalog is
// public: it is static reference data, not profile records.
type ExerciseHandler struct{}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler() *ExerciseHandler {
	return &ExerciseHandler{}
}

// ListExercises godoc
// @Summary List catalog exercises
// @Tags Exercises
// @Produce json
// @Param category query string false "Filter by category"
// @Success 200 {array} domain.Exercise "Exercises"
// @Router /exercises [get]
func (h *ExerciseHandler) ListExercises(c *gin.Context) {
	if category := c.Query("category"); category != "" {
		c.JSON(http.StatusOK, catalog.ByCategory(domain.Category(category)))
		return
	}
	c.JSON(http.StatusOK, catalog.Exercises())
}

// GetExercise godoc
// @Summary Get a catalog exercise by ID
// @Tags Exercises
// @Produce json
// @Param id path string true "Exercise ID"
// @Success 200 {object} domain.Exercise "Exercise"
// @Failure 404 {object} gin.H "Unknown exercise"
// @Router /exercises/{id} [get]
func (h *ExerciseHandler) GetExercise(c *gin.Context) {
	exercise, ok := catalog.ByID(c.Param("id"))
	if !ok {
		abortWithError(c, http.StatusNotFound, "Exercise not found.")
		return
	}
	c.JSON(http.StatusOK, exercise)
}

// ListCategories godoc
// @Summary List catalog categories in display order
// @Tags Exercises
// @Produce json
// @Success 200 {array} string "Categories"
// @Router /exercises/categories [get]
func (h *ExerciseHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.CategoryOrder)
}
