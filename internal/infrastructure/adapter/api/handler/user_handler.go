package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/moneywise/finance-tracker/internal/domain/port/core"
	"github.com/moneywise/finance-tracker/internal/domain/port/usecase"
	"github.com/moneywise/finance-tracker/internal/infrastructure/adapter/api/dto"
)

// UserHandler handles user profile HTTP requests
type UserHandler struct {
	userUseCase usecase.UserUseCase
	authUseCase usecase.AuthUseCase
	logger      coreport.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(
	userUseCase usecase.UserUseCase,
	authUseCase usecase.AuthUseCase,
	logger coreport.Logger,
) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		authUseCase: authUseCase,
		logger:      logger,
	}
}

// Me handles the GET /users/me endpoint
func (h *UserHandler) Me(c *gin.Context) {
	principal, ok := principalFromContext(c)
	if !ok {
		return
	}

	user, err := h.userUseCase.GetUserByID(c.Request.Context(), h.authUseCase.UserID(principal))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Username:  user.Username,
		Email:     user.Email,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
	})
}

// DeleteMe handles the DELETE /users/me endpoint
func (h *UserHandler) DeleteMe(c *gin.Context) {
	principal, ok := principalFromContext(c)
	if !ok {
		return
	}

	userID := h.authUseCase.UserID(principal)
	if err := h.userUseCase.DeleteUser(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}

	h.logger.Info("Account deleted via API", map[string]any{
		"user_id": userID,
	})
	c.Status(http.StatusNoContent)
}
