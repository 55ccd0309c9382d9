package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kafekita/pos-app/storage"
	"github.com/kafekita/pos-app/utils"
)

type BackupController struct {
	Store *storage.Gateway
}

func NewBackupController(store *storage.Gateway) *BackupController {
	return &BackupController{Store: store}
}

// Export returns every collection in one envelope for offline backup.
func (bc *BackupController) Export(c *gin.Context) {
	backup, err := bc.Store.Export()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="kafekita-backup.json"`)
	c.JSON(http.StatusOK, backup)
}

// Import restores collections from a backup envelope. Malformed input
// aborts with nothing overwritten.
func (bc *BackupController) Import(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := bc.Store.Import(raw); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.InfoLogger.Println("Backup imported")
	utils.RespondJSON(c, http.StatusOK, "Backup restored", nil)
}
