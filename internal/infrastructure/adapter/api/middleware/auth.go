package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/moneywise/finance-tracker/internal/domain/entity"
	domainerr "github.com/moneywise/finance-tracker/internal/domain/error"
	coreport "github.com/moneywise/finance-tracker/internal/domain/port/core"
	"github.com/moneywise/finance-tracker/internal/domain/port/persistence"
	"github.com/moneywise/finance-tracker/internal/infrastructure/adapter/api/dto"
)

const principalKey = "principal"

// Auth verifies the bearer token and resolves the authenticated principal.
// The token subject is the login email; the user row is loaded so a token
// for a since-deleted account is rejected even while still signed and live.
func Auth(signer coreport.TokenSigner, userRepo persistence.UserRepository, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			abortUnauthorized(c)
			return
		}

		subject, err := signer.Subject(tokenString)
		if err != nil {
			abortUnauthorized(c)
			return
		}

		user, err := userRepo.GetByEmail(c.Request.Context(), subject)
		if err != nil {
			logger.Warn("Token subject has no account", map[string]any{
				"subject": subject,
			})
			abortUnauthorized(c)
			return
		}

		claims, err := signer.Validate(tokenString, user.Email)
		if err != nil {
			abortUnauthorized(c)
			return
		}

		c.Set(principalKey, &entity.Principal{
			UserID: user.ID,
			Email:  claims.Subject,
			Role:   user.Role,
		})
		c.Next()
	}
}

// GetPrincipal returns the principal resolved by the Auth middleware
func GetPrincipal(c *gin.Context) (*entity.Principal, bool) {
	value, exists := c.Get(principalKey)
	if !exists {
		return nil, false
	}
	principal, ok := value.(*entity.Principal)
	return principal, ok
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(domainerr.ErrInvalidAccessToken),
		Message: "invalid or missing access token",
	})
}
