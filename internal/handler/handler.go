package handler

import (
	"errors"
	"net/http"

	"backend/internal/apperror"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// respondError maps the service error taxonomy onto HTTP statuses:
// validation 400, missing document 404, partial prior state 409,
// store failure 503, anything else 500.
func respondError(c *gin.Context, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperror.ErrValidation):
		code = http.StatusBadRequest
	case errors.Is(err, apperror.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, apperror.ErrInvalidState):
		code = http.StatusConflict
	case errors.Is(err, apperror.ErrStoreUnavailable):
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, response.Error(code, err.Error()))
}
