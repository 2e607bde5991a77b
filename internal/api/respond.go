package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tastebook/backend/internal/apperr"
)

// respondError translates a typed error into the transport response. Only the
// API layer speaks HTTP; repositories and services raise apperr values.
func respondError(c *gin.Context, err error) {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		if appErr.Kind == apperr.KindInternal {
			log.Printf("[%s] %v", appErr.Source, err)
		}
		c.JSON(appErr.Code, gin.H{
			"error": appErr.Message,
			"kind":  appErr.Kind,
		})
		return
	}

	log.Printf("unhandled error: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "internal server error",
		"kind":  apperr.KindInternal,
	})
}

// respondBindError handles gin binding failures as validation errors.
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"error": err.Error(),
		"kind":  apperr.KindValidation,
	})
}
