package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/moneywise/finance-tracker/internal/domain/entity"
	domainerr "github.com/moneywise/finance-tracker/internal/domain/error"
	"github.com/moneywise/finance-tracker/internal/infrastructure/adapter/api/dto"
	"github.com/moneywise/finance-tracker/internal/infrastructure/adapter/api/middleware"
)

// httpStatus maps a domain error to an HTTP status code
func httpStatus(err error) int {
	switch {
	case domainerr.IsNotFoundError(err):
		return http.StatusNotFound
	case domainerr.IsConflictError(err):
		return http.StatusConflict
	case domainerr.IsAuthError(err):
		return http.StatusUnauthorized
	case errors.Is(err, domainerr.ErrInvalidAmount),
		errors.Is(err, domainerr.ErrNegativeAmount),
		errors.Is(err, domainerr.ErrInvalidCategoryName),
		errors.Is(err, domainerr.ErrInvalidUserID),
		errors.Is(err, domainerr.ErrInvalidUserData),
		errors.Is(err, domainerr.ErrInvalidRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes a standardized error body for a domain error
func respondError(c *gin.Context, err error) {
	status := status5xxSafeMessage(err)
	c.JSON(status.code, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: status.message,
	})
}

type statusMessage struct {
	code    int
	message string
}

// status5xxSafeMessage hides internal detail for 5xx responses and exposes
// the domain message otherwise
func status5xxSafeMessage(err error) statusMessage {
	code := httpStatus(err)
	if code == http.StatusInternalServerError {
		return statusMessage{code: code, message: "Internal server error"}
	}
	return statusMessage{code: code, message: err.Error()}
}

// principalFromContext returns the authenticated principal set by the auth
// middleware, aborting with 401 when absent
func principalFromContext(c *gin.Context) (*entity.Principal, bool) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidAccessToken),
			Message: "authentication required",
		})
		return nil, false
	}
	return principal, true
}
