package api

import (
	"errors"
	"fmt"
	"net/http"

	"trackhq/trackhq-server/internal/domain"
	"trackhq/trackhq-server/internal/service"

	"github.com/gin-gonic/gin"
)

// WorkoutHandler exposes the active profile's workout log.
type WorkoutHandler struct {
	recordService service.RecordService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(recordService service.RecordService) *WorkoutHandler {
	return &WorkoutHandler{recordService: recordService}
}

// ListWorkouts godoc
// @Summary List all workouts of the active profile
// @Description Entries are ordered newest first.
// @Tags Workouts
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.WorkoutEntry "Workout entries"
// @Router /workouts [get]
func (h *WorkoutHandler) ListWorkouts(c *gin.Context) {
	workouts, err := h.recordService.ListWorkouts(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list workouts.")
		return
	}
	if workouts == nil {
		workouts = []domain.WorkoutEntry{}
	}
	c.JSON(http.StatusOK, workouts)
}

// SaveWorkout godoc
// @Summary Save a workout entry
// @Description Upserts by ID. An entry without an ID gets one assigned and is
// @Description prepended as the newest entry; a matching ID is replaced in place.
// @Tags Workouts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param workout body domain.WorkoutEntry true "Workout entry"
// @Success 200 {object} domain.WorkoutEntry "Stored entry"
// @Failure 400 {object} gin.H "Invalid input"
// @Router /workouts [put]
func (h *WorkoutHandler) SaveWorkout(c *gin.Context) {
	var entry domain.WorkoutEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	stored, err := h.recordService.SaveWorkout(c.Request.Context(), entry)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDate) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to save workout.")
		}
		return
	}
	c.JSON(http.StatusOK, stored)
}

// GetWorkoutByDate godoc
// @Summary Get the workout logged on a calendar date
// @Description Returns the first entry matching the date.
// @Tags Workouts
// @Produce json
// @Security BearerAuth
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} domain.WorkoutEntry "Workout entry"
// @Failure 400 {object} gin.H "Malformed date"
// @Failure 404 {object} gin.H "No workout on that date"
// @Router /workouts/date/{date} [get]
func (h *WorkoutHandler) GetWorkoutByDate(c *gin.Context) {
	workout, err := h.recordService.GetWorkoutByDate(c.Request.Context(), c.Param("date"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDate):
			abortWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrWorkoutNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to get workout.")
		}
		return
	}
	c.JSON(http.StatusOK, workout)
}

// DeleteWorkout godoc
// @Summary Delete a workout entry
// @Description Deleting an unknown ID is a no-op.
// @Tags Workouts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Workout ID"
// @Success 204 "Workout deleted"
// @Router /workouts/{id} [delete]
func (h *WorkoutHandler) DeleteWorkout(c *gin.Context) {
	if err := h.recordService.DeleteWorkout(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to delete workout.")
		return
	}
	c.Status(http.StatusNoContent)
}
