package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/moneywise/finance-tracker/internal/domain/entity"
	errs "github.com/moneywise/finance-tracker/internal/domain/error"
)

// Refresh-token lifecycle: absent -> active -> expired-pending-deletion -> absent.
// Minting happens on register/login when the user holds no token, deletion
// only when an expired token is presented on refresh. There is no background
// sweep and no rotation on use.

// obtainRefreshToken returns the user's current refresh token, minting one
// only when none exists. An outstanding token is returned unchanged even
// near expiry; exactly one refresh token lives per user.
func (s *Service) obtainRefreshToken(ctx context.Context, userID uint64) (*entity.RefreshToken, error) {
	existing, err := s.refreshRepo.FindByUserID(ctx, userID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, errs.ErrRefreshTokenNotFound) {
		return nil, err
	}

	token := entity.NewRefreshToken(
		userID,
		uuid.NewString(),
		s.timeProvider.Now().Add(s.refreshTokenTTL),
	)

	if err := s.refreshRepo.Create(ctx, token); err != nil {
		s.logger.Error("Failed to store refresh token", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Refresh token issued", map[string]any{
		"user_id":    userID,
		"expires_at": token.ExpiresAt,
	})

	return token, nil
}

// verifyRefreshToken looks up a presented refresh token and checks its
// expiration. An expired token is deleted synchronously before the error
// surfaces, moving the lifecycle back to absent.
func (s *Service) verifyRefreshToken(ctx context.Context, refreshToken string) (*entity.RefreshToken, error) {
	token, err := s.refreshRepo.FindByToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	if token.IsExpired(s.timeProvider.Now()) {
		if err := s.refreshRepo.Delete(ctx, token.Token); err != nil {
			s.logger.Error("Failed to delete expired refresh token", map[string]any{
				"user_id": token.UserID,
				"error":   err.Error(),
			})
			return nil, err
		}
		s.logger.Info("Expired refresh token deleted", map[string]any{
			"user_id": token.UserID,
		})
		return nil, errs.ErrRefreshTokenExpired
	}

	return token, nil
}
