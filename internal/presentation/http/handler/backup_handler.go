package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/atkinsguitar/pos-api/internal/application/service"
	"github.com/atkinsguitar/pos-api/internal/domain/repository"
	"github.com/atkinsguitar/pos-api/internal/presentation/http/dto/response"
)

type BackupHandler struct {
	backupService *service.BackupService
}

func NewBackupHandler(backupService *service.BackupService) *BackupHandler {
	return &BackupHandler{backupService: backupService}
}

// Export handles GET /backup/export. Returns the full data set as a JSON
// attachment so the browser saves it as a file.
func (h *BackupHandler) Export(c *gin.Context) {
	snapshot, err := h.backupService.Export(c.Request.Context())
	if err != nil {
		response.HandleError(c, err)
		return
	}

	filename := "pos-backup-" + time.Now().Format("20060102-150405") + ".json"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.JSON(http.StatusOK, snapshot)
}

// Restore handles POST /backup/restore. Destructive: replaces all data with
// the uploaded snapshot.
func (h *BackupHandler) Restore(c *gin.Context) {
	var snapshot repository.BackupSnapshot
	if err := c.ShouldBindJSON(&snapshot); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid backup file", err.Error())
		return
	}

	if err := h.backupService.Restore(c.Request.Context(), &snapshot); err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Backup restored", nil)
}

// Stats handles GET /backup/stats
func (h *BackupHandler) Stats(c *gin.Context) {
	stats, err := h.backupService.Stats(c.Request.Context())
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", stats)
}
