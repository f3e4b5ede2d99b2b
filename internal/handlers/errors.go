package handlers

import (
	"errors"
	"net/http"

	"food_ordering/internal/services"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto HTTP status codes. Anything outside
// the known taxonomy is reported as a 500 without leaking internals.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrDuplicateReview),
		errors.Is(err, services.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, services.ErrItemNotInCart),
		errors.Is(err, services.ErrMixedRestaurants),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidRating),
		errors.Is(err, services.ErrInvalidMembership),
		errors.Is(err, services.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
