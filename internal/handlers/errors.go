package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// handleEntityError terminates the request for the unrecoverable cases: a
// missing row is a 404, anything else from the storage layer is a 500.
// Validation failures never reach here; they turn into flash redirects.
func handleEntityError(c *gin.Context, err error, entity string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.String(http.StatusNotFound, "%s not found", entity)
		return
	}
	c.String(http.StatusInternalServerError, "failed to process %s request", entity)
}
