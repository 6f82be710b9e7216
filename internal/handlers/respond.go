package handlers

import (
	"errors"
	"log"
	"net/http"

	apperrors "bet-tracker/pkg/errors"

	"github.com/gin-gonic/gin"
)

// respondError maps the error taxonomy onto HTTP status codes:
// validation 400, not found 404, invalid transition 409, storage 500.
func respondError(c *gin.Context, err error) {
	var (
		validationErr *apperrors.ValidationError
		notFoundErr   *apperrors.NotFoundError
		transitionErr *apperrors.InvalidTransitionError
		storageErr    *apperrors.StorageError
	)

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundErr.Error()})
	case errors.As(err, &transitionErr):
		c.JSON(http.StatusConflict, gin.H{"error": transitionErr.Error()})
	case errors.As(err, &storageErr):
		log.Printf("Storage failure: %v", storageErr)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "storage failure"})
	default:
		log.Printf("Unexpected error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
