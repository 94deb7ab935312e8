package httpserver

import (
	"errors"
	"net/http"

	"storefront/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// writeError maps service errors to HTTP statuses. Delete-protection
// carries a resource-specific message, so handlers check ErrProtected
// themselves before delegating here.
func writeError(c *gin.Context, logger zerolog.Logger, err error) {
	var invalid *domain.InvalidError
	switch {
	case errors.As(err, &invalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": invalid.Msg})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, domain.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{"error": "The cart is empty."})
	case errors.Is(err, domain.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": "already exists"})
	case errors.Is(err, domain.ErrIntegrity):
		c.JSON(http.StatusConflict, gin.H{"error": "conflicting reference"})
	case errors.Is(err, domain.ErrProtected):
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "cannot be deleted"})
	default:
		logger.Error().Err(err).Msg("internal error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
