package handlers

import (
	"net/http"

	"backoffice/internal/domain"

	"github.com/gin-gonic/gin"
)

const msgInternal = "An unexpected error occurred"

// RespondDomainError maps domain errors to HTTP responses. Unclassified
// errors are attached to the gin context for the access log and never
// echoed to the client.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		RespondError(c, http.StatusBadRequest, err.Error())
	case domain.IsNotFound(err):
		RespondError(c, http.StatusNotFound, err.Error())
	case domain.IsUnauthorized(err):
		RespondError(c, http.StatusUnauthorized, err.Error())
	case domain.IsConflict(err):
		RespondError(c, http.StatusConflict, err.Error())
	default:
		_ = c.Error(err)
		RespondError(c, http.StatusInternalServerError, msgInternal)
	}
}
