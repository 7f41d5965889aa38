package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"trackhq/trackhq-server/internal/service"

	"github.com/gin-gonic/gin"
)

// Import payloads larger than this are rejected before parsing.
const maxImportSize = 32 << 20 // 32 MiB

// ExportHandler exposes backup export, import and offsite mirroring.
type ExportHandler struct {
	exportService service.ExportService
	recordService service.RecordService
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(exportService service.ExportService, recordService service.RecordService) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
		recordService: recordService,
	}
}

// Export godoc
// @Summary Download a backup of the active profile's records
// @Description Returns the versioned backup envelope as a JSON attachment.
// @Tags Export
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.ExportFile "Backup file"
// @Router /export [get]
func (h *ExportHandler) Export(c *gin.Context) {
	file, err := h.exportService.Export(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to export data.")
		return
	}

	fileName := h.exportService.BackupFileName(file.ExportDate)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.JSON(http.StatusOK, file)
}

// Import godoc
// @Summary Restore records from a backup file
// @Description Validates the envelope, then replaces each collection present
// @Description in it wholesale. A rejected file leaves stored data untouched.
// @Tags Export
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param backup body domain.ExportFile true "Backup file"
// @Success 200 {object} service.ImportSummary "What was restored"
// @Failure 400 {object} gin.H "Invalid backup file"
// @Router /import [post]
func (h *ExportHandler) Import(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxImportSize))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Failed to read request body.")
		return
	}

	summary, err := h.exportService.Import(c.Request.Context(), payload)
	if err != nil {
		if errors.Is(err, service.ErrInvalidBackupFile) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to import data.")
		}
		return
	}
	c.JSON(http.StatusOK, summary)
}

// ClearAll godoc
// @Summary Delete all records of the active profile
// @Description Removes workouts, templates and preferences. The profile itself stays.
// @Tags Export
// @Produce json
// @Security BearerAuth
// @Success 204 "Data cleared"
// @Router /data [delete]
func (h *ExportHandler) ClearAll(c *gin.Context) {
	if err := h.recordService.ClearAll(c.Request.Context()); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to clear data.")
		return
	}
	c.Status(http.StatusNoContent)
}

// UploadBackup godoc
// @Summary Mirror a backup to object storage
// @Tags Export
// @Produce json
// @Security BearerAuth
// @Success 201 {object} gin.H "Object key of the uploaded backup"
// @Failure 503 {object} gin.H "Offsite backup not configured"
// @Router /backups [post]
func (h *ExportHandler) UploadBackup(c *gin.Context) {
	objectKey, err := h.exportService.UploadBackup(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrBackupNotEnabled) {
			abortWithError(c, http.StatusServiceUnavailable, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to upload backup.")
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"key": objectKey, "uploadedAt": time.Now().UTC()})
}

// DownloadBackup godoc
// @Summary Download an uploaded backup through the server
// @Tags Export
// @Produce json
// @Security BearerAuth
// @Param key path string true "Backup object key"
// @Success 200 {object} domain.ExportFile "Backup file contents"
// @Failure 503 {object} gin.H "Offsite backup not configured"
// @Router /backups/{key} [get]
func (h *ExportHandler) DownloadBackup(c *gin.Context) {
	objectKey := c.Param("key")
	body, err := h.exportService.DownloadBackup(c.Request.Context(), objectKey)
	if err != nil {
		if errors.Is(err, service.ErrBackupNotEnabled) {
			abortWithError(c, http.StatusServiceUnavailable, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to download backup.")
		}
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", objectKey))
	c.Data(http.StatusOK, "application/json", body)
}

// DeleteBackup godoc
// @Summary Delete an uploaded backup
// @Tags Export
// @Produce json
// @Security BearerAuth
// @Param key path string true "Backup object key"
// @Success 204 "Backup deleted"
// @Failure 503 {object} gin.H "Offsite backup not configured"
// @Router /backups/{key} [delete]
func (h *ExportHandler) DeleteBackup(c *gin.Context) {
	if err := h.exportService.DeleteBackup(c.Request.Context(), c.Param("key")); err != nil {
		if errors.Is(err, service.ErrBackupNotEnabled) {
			abortWithError(c, http.StatusServiceUnavailable, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to delete backup.")
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// BackupDownloadURL godoc
// @Summary Get a presigned download URL for an uploaded backup
// @Tags Export
// @Produce json
// @Security BearerAuth
// @Param key path string true "Backup object key"
// @Success 200 {object} gin.H "Presigned URL"
// @Failure 503 {object} gin.H "Offsite backup not configured"
// @Router /backups/{key}/download-url [get]
func (h *ExportHandler) BackupDownloadURL(c *gin.Context) {
	url, err := h.exportService.BackupDownloadURL(c.Request.Context(), c.Param("key"))
	if err != nil {
		if errors.Is(err, service.ErrBackupNotEnabled) {
			abortWithError(c, http.StatusServiceUnavailable, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to generate download URL.")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
