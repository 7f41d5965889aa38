package api

import (
	"errors"
	"fmt"
	"net/http"

	"trackhq/trackhq-server/internal/domain"
	"trackhq/trackhq-server/internal/repository"
	"trackhq/trackhq-server/internal/service"

	"github.com/gin-gonic/gin"
)

// ProfileHandler exposes local profile management.
type ProfileHandler struct {
	profileService service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// --- Request Structs ---

type CreateProfileRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"omitempty,email"`
}

// UpdateProfileRequest carries a partial update; omitted fields stay as
// they are.
type UpdateProfileRequest struct {
	Name        *string             `json:"name"`
	Email       *string             `json:"email"`
	Preferences *domain.Preferences `json:"preferences"`
}

type SetActiveProfileRequest struct {
	ID string `json:"id" binding:"required"`
}

// --- Handler Methods ---

// ListProfiles godoc
// @Summary List all local profiles
// @Tags Profiles
// @Produce json
// @Security BearerAuth
// @Success 200 {array} ProfileResponse "Profiles in creation order"
// @Router /profiles [get]
func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	profiles, err := h.profileService.ListProfiles(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list profiles.")
		return
	}

	responses := make([]ProfileResponse, 0, len(profiles))
	for i := range profiles {
		responses = append(responses, MapProfileToResponse(&profiles[i]))
	}
	c.JSON(http.StatusOK, responses)
}

// CreateProfile godoc
// @Summary Create a new profile
// @Description The first profile ever created becomes active automatically.
// @Tags Profiles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body CreateProfileRequest true "Profile details"
// @Success 201 {object} ProfileResponse "Profile created"
// @Failure 400 {object} gin.H "Invalid input"
// @Router /profiles [post]
func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	var req CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	profile, err := h.profileService.CreateProfile(c.Request.Context(), req.Name, req.Email)
	if err != nil {
		if errors.Is(err, service.ErrProfileNameEmpty) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to create profile.")
		}
		return
	}
	c.JSON(http.StatusCreated, MapProfileToResponse(profile))
}

// GetActiveProfile godoc
// @Summary Get the active profile
// @Tags Profiles
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ProfileResponse "Active profile"
// @Failure 404 {object} gin.H "No active profile"
// @Router /profiles/active [get]
func (h *ProfileHandler) GetActiveProfile(c *gin.Context) {
	profile, err := h.profileService.GetActiveProfile(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrNoActiveProfile) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to get active profile.")
		}
		return
	}
	c.JSON(http.StatusOK, MapProfileToResponse(profile))
}

// SetActiveProfile godoc
// @Summary Switch the active profile
// @Description All record operations are scoped to the active profile.
// @Tags Profiles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body SetActiveProfileRequest true "Profile to activate"
// @Success 200 {object} gin.H "Profile activated"
// @Failure 404 {object} gin.H "Unknown profile"
// @Router /profiles/active [put]
func (h *ProfileHandler) SetActiveProfile(c *gin.Context) {
	var req SetActiveProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	if err := h.profileService.SetActiveProfile(c.Request.Context(), req.ID); err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to set active profile.")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"active": req.ID})
}

// UpdateProfile godoc
// @Summary Update a profile
// @Tags Profiles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Profile ID"
// @Param profile body UpdateProfileRequest true "Fields to update"
// @Success 200 {object} ProfileResponse "Updated profile"
// @Failure 404 {object} gin.H "Unknown profile"
// @Router /profiles/{id} [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	update := repository.ProfileUpdate{
		Name:        req.Name,
		Email:       req.Email,
		Preferences: req.Preferences,
	}
	profile, err := h.profileService.UpdateProfile(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProfileNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrProfileNameEmpty):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to update profile.")
		}
		return
	}
	c.JSON(http.StatusOK, MapProfileToResponse(profile))
}

// DeleteProfile godoc
// @Summary Delete a profile and all of its data
// @Description Refused for the last remaining profile. Reassigns the active profile when needed.
// @Tags Profiles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Profile ID"
// @Success 204 "Profile deleted"
// @Failure 404 {object} gin.H "Unknown profile"
// @Failure 409 {object} gin.H "Last remaining profile"
// @Router /profiles/{id} [delete]
func (h *ProfileHandler) DeleteProfile(c *gin.Context) {
	err := h.profileService.DeleteProfile(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProfileNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrLastProfile):
			abortWithError(c, http.StatusConflict, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to delete profile.")
		}
		return
	}
	c.Status(http.StatusNoContent)
}
