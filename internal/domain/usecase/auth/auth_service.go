package auth

import (
	"context"
	"errors"
	"time"

	"github.com/moneywise/finance-tracker/internal/domain/entity"
	errs "github.com/moneywise/finance-tracker/internal/domain/error"
	coreport "github.com/moneywise/finance-tracker/internal/domain/port/core"
	"github.com/moneywise/finance-tracker/internal/domain/port/persistence"
	"github.com/moneywise/finance-tracker/internal/domain/port/usecase"
)

// Service handles identity verification, access-token issuance and
// refresh-token orchestration
type Service struct {
	userRepo        persistence.UserRepository
	refreshRepo     persistence.RefreshTokenRepository
	hasher          coreport.PasswordHasher
	signer          coreport.TokenSigner
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	refreshTokenTTL time.Duration
}

// NewService creates a new auth Service
func NewService(
	userRepo persistence.UserRepository,
	refreshRepo persistence.RefreshTokenRepository,
	hasher coreport.PasswordHasher,
	signer coreport.TokenSigner,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	refreshTokenTTL time.Duration,
) *Service {
	return &Service{
		userRepo:        userRepo,
		refreshRepo:     refreshRepo,
		hasher:          hasher,
		signer:          signer,
		timeProvider:    timeProvider,
		logger:          logger,
		refreshTokenTTL: refreshTokenTTL,
	}
}

// Register creates a new account with the default USER role and returns its
// token pair. Fails with ErrEmailAlreadyRegistered if the email is taken.
func (s *Service) Register(ctx context.Context, req usecase.RegisterRequest) (*usecase.TokenPair, error) {
	taken, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		s.logger.Warn("Registration rejected, email already in use", map[string]any{
			"email": req.Email,
		})
		return nil, errs.ErrEmailAlreadyRegistered
	}

	passwordHash, err := s.hasher.Hash(req.Password)
	if err != nil {
		s.logger.Error("Failed to hash password", map[string]any{
			"error": err.Error(),
		})
		return nil, errs.ErrInternalServer
	}

	user, err := entity.NewUser(req.Name, req.Username, req.Email, passwordHash, s.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		s.logger.Error("Failed to create user", map[string]any{
			"email": req.Email,
			"error": err.Error(),
		})
		return nil, err
	}

	s.logger.Info("User registered", map[string]any{
		"user_id": user.ID,
		"email":   user.Email,
	})

	return s.issueTokenPair(ctx, user)
}

// Login verifies credentials and returns a token pair. Any verification
// failure, unknown email included, is normalized to ErrInvalidCredentials
// so the response does not reveal which field was wrong.
func (s *Service) Login(ctx context.Context, email, password string) (*usecase.TokenPair, error) {
	if err := s.authenticate(ctx, email, password); err != nil {
		s.logger.Warn("Login failed", map[string]any{
			"email": email,
		})
		return nil, err
	}

	// Authentication succeeded, so the user should exist; a concurrent
	// deletion can still race this lookup, hence the explicit handling.
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	s.logger.Info("User logged in", map[string]any{
		"user_id": user.ID,
	})

	return s.issueTokenPair(ctx, user)
}

// RefreshAccessToken exchanges a live refresh token for a fresh access
// token. Refresh tokens are not rotated: the same value is returned. An
// expired token is deleted before ErrRefreshTokenExpired is raised, so the
// next login mints a new one.
func (s *Service) RefreshAccessToken(ctx context.Context, refreshToken string) (*usecase.TokenPair, error) {
	token, err := s.verifyRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, token.UserID)
	if err != nil {
		return nil, err
	}

	accessToken, err := s.signer.Generate(user.ID, user.Email, string(user.Role))
	if err != nil {
		s.logger.Error("Failed to sign access token", map[string]any{
			"user_id": user.ID,
			"error":   err.Error(),
		})
		return nil, errs.ErrInternalServer
	}

	s.logger.Debug("Access token refreshed", map[string]any{
		"user_id": user.ID,
	})

	return &usecase.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: token.Token,
	}, nil
}

// UserID extracts the numeric user id from an authenticated principal
func (s *Service) UserID(principal *entity.Principal) uint64 {
	return principal.UserID
}

// authenticate checks the password against the stored hash. Every failure
// mode collapses into ErrInvalidCredentials.
func (s *Service) authenticate(ctx context.Context, email, password string) error {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return errs.ErrInvalidCredentials
		}
		return err
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return errs.ErrInvalidCredentials
	}

	return nil
}

// issueTokenPair signs an access token and obtains the user's refresh token
func (s *Service) issueTokenPair(ctx context.Context, user *entity.User) (*usecase.TokenPair, error) {
	accessToken, err := s.signer.Generate(user.ID, user.Email, string(user.Role))
	if err != nil {
		s.logger.Error("Failed to sign access token", map[string]any{
			"user_id": user.ID,
			"error":   err.Error(),
		})
		return nil, errs.ErrInternalServer
	}

	refreshToken, err := s.obtainRefreshToken(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &usecase.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken.Token,
	}, nil
}
