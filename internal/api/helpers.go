package api

import (
	"errors"
	"net/http"

	"skillsynclab/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// abortWithError sends a JSON error response and stops the handler chain.
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// abortNotFound maps an absent-resource failure to 404.
func abortNotFound(c *gin.Context, message string) {
	abortWithError(c, http.StatusNotFound, message)
}

// abortServiceError maps a service error onto the HTTP taxonomy: validation
// failures are client errors, everything else is a server error. Not-found
// and conflict cases are matched per handler before falling through here.
func abortServiceError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrValidation) {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	abortWithError(c, http.StatusInternalServerError, "Internal server error")
}
