package service

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/google/uuid"

	authmodel "contenthub-backend/internal/domains/auth/model"
	usermodel "contenthub-backend/internal/domains/user/model"
	userservice "contenthub-backend/internal/domains/user/service"
	"contenthub-backend/internal/infrastructure/tokenstore"
	"contenthub-backend/pkg/jwt"
)

// ServiceInterface is the session surface: the gateway exchanges an
// authenticated profile for a token pair, refresh rotates it, logout
// revokes it.
type ServiceInterface interface {
	Exchange(ctx context.Context, req authmodel.ExchangeRequest) (*usermodel.User, *authmodel.TokenPair, error)
	Refresh(ctx context.Context, req authmodel.RefreshRequest) (*authmodel.TokenPair, error)
	Logout(ctx context.Context, req authmodel.LogoutRequest) error
}

type authService struct {
	userService    userservice.ServiceInterface
	jwtManager     *jwt.Manager
	tokens         *tokenstore.Store
	exchangeSecret string
}

func NewAuthService(
	userService userservice.ServiceInterface,
	jwtManager *jwt.Manager,
	tokens *tokenstore.Store,
	exchangeSecret string,
) ServiceInterface {
	return &authService{
		userService:    userService,
		jwtManager:     jwtManager,
		tokens:         tokens,
		exchangeSecret: exchangeSecret,
	}
}

// =====================================================
// EXCHANGE
// =====================================================

// Exchange upserts the user record from the gateway profile and issues
// a fresh token pair. Sign-in and sign-up are the same operation: the
// upsert merges whatever profile fields the gateway sent.
func (s *authService) Exchange(ctx context.Context, req authmodel.ExchangeRequest) (*usermodel.User, *authmodel.TokenPair, error) {
	if err := req.Validate(); err != nil {
		return nil, nil, err
	}

	if subtle.ConstantTimeCompare([]byte(req.ExchangeSecret), []byte(s.exchangeSecret)) != 1 {
		return nil, nil, authmodel.ErrBadExchangeSecret
	}

	params := usermodel.UpsertUserParams{
		Email: req.Email,
		Name:  req.Name,
		Image: req.Image,
	}
	if req.UserID != nil {
		params.ID = *req.UserID
	}

	user, err := s.userService.UpsertUser(ctx, params)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to upsert user: %w", err)
	}

	pair, err := s.issuePair(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	return user, pair, nil
}

// =====================================================
// REFRESH & LOGOUT
// =====================================================

// Refresh rotates the session: the presented token is revoked and a new
// pair is issued. A token that fails any check, including having been
// rotated already, is reported as invalid without detail.
func (s *authService) Refresh(ctx context.Context, req authmodel.RefreshRequest) (*authmodel.TokenPair, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	claims, err := s.jwtManager.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, authmodel.ErrInvalidRefreshToken
	}

	ok, err := s.tokens.Verify(ctx, claims.UserID, claims.ID, req.RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("failed to verify refresh token: %w", err)
	}
	if !ok {
		return nil, authmodel.ErrInvalidRefreshToken
	}

	userID, err := uuidFromClaims(claims)
	if err != nil {
		return nil, authmodel.ErrInvalidRefreshToken
	}

	user, err := s.userService.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil {
		// Account was deleted while the session was alive.
		return nil, authmodel.ErrInvalidRefreshToken
	}

	if err := s.tokens.Revoke(ctx, claims.UserID, claims.ID); err != nil {
		return nil, fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	return s.issuePair(ctx, user)
}

// Logout revokes the presented refresh token. Already-invalid tokens
// are a no-op, not an error.
func (s *authService) Logout(ctx context.Context, req authmodel.LogoutRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	claims, err := s.jwtManager.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil
	}

	if err := s.tokens.Revoke(ctx, claims.UserID, claims.ID); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	return nil
}

// =====================================================
// HELPERS
// =====================================================

func uuidFromClaims(claims *jwt.Claims) (uuid.UUID, error) {
	return uuid.Parse(claims.UserID)
}

func (s *authService) issuePair(ctx context.Context, user *usermodel.User) (*authmodel.TokenPair, error) {
	email := ""
	if user.Email != nil {
		email = *user.Email
	}

	access, err := s.jwtManager.GenerateAccessToken(user.ID.String(), email, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refresh, tokenID, err := s.jwtManager.GenerateRefreshToken(user.ID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	if err := s.tokens.Save(ctx, user.ID.String(), tokenID, refresh, s.jwtManager.RefreshTTL()); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &authmodel.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}
