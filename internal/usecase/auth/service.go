package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"logitrack/internal/config"
	domainUser "logitrack/internal/domain/user"
	"logitrack/internal/logger"
	appErrors "logitrack/pkg/errors"
	"logitrack/pkg/utils"
)

// Service implements the authentication use cases.
type Service struct {
	userRepo         domainUser.Repository
	refreshTokenRepo domainUser.RefreshTokenRepository
	config           *config.Config
}

func NewService(
	userRepo domainUser.Repository,
	refreshTokenRepo domainUser.RefreshTokenRepository,
	cfg *config.Config,
) *Service {
	return &Service{
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		config:           cfg,
	}
}

func (s *Service) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError(appErrors.CodeValidation, "Invalid input", err)
	}

	u, err := s.userRepo.GetByNomUtilisateur(ctx, utils.SanitizeString(req.NomUtilisateur))
	if err != nil {
		if errors.Is(err, domainUser.ErrUserNotFound) {
			logger.Warn("Login attempt with unknown username",
				zap.String("nom_utilisateur", req.NomUtilisateur),
				zap.String("event", "login_failed_user_not_found"),
			)
			return nil, appErrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !u.Actif {
		logger.Warn("Login attempt for deactivated user",
			zap.Int64("user_id", u.ID),
			zap.String("event", "login_failed_inactive_user"),
		)
		return nil, appErrors.ErrUserInactive
	}

	if !utils.CheckPassword(u.MotDePasseHash, req.MotDePasse) {
		logger.Warn("Login attempt with invalid password",
			zap.Int64("user_id", u.ID),
			zap.String("event", "login_failed_invalid_password"),
		)
		return nil, appErrors.ErrInvalidCredentials
	}

	role, ok := domainUser.NormalizeRole(string(u.Role))
	if !ok {
		logger.Error("User carries a role outside the known set",
			zap.Int64("user_id", u.ID),
			zap.String("role", string(u.Role)),
			zap.String("event", "login_failed_unknown_role"),
		)
		return nil, appErrors.ErrInvalidUserRole
	}

	tokenPair, err := s.issueTokens(ctx, u.ID, u.NomUtilisateur, role)
	if err != nil {
		return nil, err
	}

	logger.Info("User logged in",
		zap.Int64("user_id", u.ID),
		zap.String("nom_utilisateur", u.NomUtilisateur),
		zap.String("role", string(role)),
		zap.String("event", "login_success"),
	)

	u.Role = role
	return &AuthResponse{
		User:         ToUserResponse(u),
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		ExpiresAt:    tokenPair.ExpiresAt,
	}, nil
}

// Refresh rotates the refresh token: the presented token is looked up,
// checked, then every stored token of the user is revoked before a new
// pair is issued.
func (s *Service) Refresh(ctx context.Context, req *RefreshRequest) (*TokenResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError(appErrors.CodeValidation, "Invalid input", err)
	}

	dbToken, err := s.refreshTokenRepo.GetByToken(ctx, req.RefreshToken)
	if err != nil {
		logger.Warn("Token refresh attempt with unknown token",
			zap.String("event", "token_refresh_failed_not_found"),
		)
		return nil, appErrors.ErrInvalidToken
	}

	if !dbToken.IsValid() {
		logger.Warn("Token refresh attempt with expired or revoked token",
			zap.Int64("user_id", dbToken.UserID),
			zap.String("event", "token_refresh_failed_invalid"),
		)
		return nil, appErrors.ErrInvalidToken
	}

	u, err := s.userRepo.GetByID(ctx, dbToken.UserID)
	if err != nil {
		return nil, appErrors.ErrInvalidToken
	}
	if !u.Actif {
		return nil, appErrors.ErrUserInactive
	}

	if err := s.refreshTokenRepo.RevokeAllUserTokens(ctx, u.ID); err != nil {
		logger.Error("Failed to revoke refresh tokens on rotation",
			zap.Int64("user_id", u.ID),
			zap.Error(err),
		)
	}

	tokenPair, err := s.issueTokens(ctx, u.ID, u.NomUtilisateur, u.Role)
	if err != nil {
		return nil, err
	}

	logger.Debug("Refresh token rotated",
		zap.Int64("user_id", u.ID),
		zap.String("event", "token_refresh_success"),
	)

	return &TokenResponse{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		ExpiresAt:    tokenPair.ExpiresAt,
	}, nil
}

// Logout revokes every refresh token of the user. The access token
// stays valid until it expires.
func (s *Service) Logout(ctx context.Context, userID int64) error {
	if err := s.refreshTokenRepo.RevokeAllUserTokens(ctx, userID); err != nil {
		return fmt.Errorf("failed to revoke tokens: %w", err)
	}

	logger.Info("User logged out",
		zap.Int64("user_id", userID),
		zap.String("event", "logout_success"),
	)

	return nil
}

// Me returns the caller's account, entrepot assignment included, read
// fresh from the database.
func (s *Service) Me(ctx context.Context, userID int64) (*UserResponse, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return ToUserResponse(u), nil
}

func (s *Service) issueTokens(ctx context.Context, userID int64, nomUtilisateur string, role domainUser.Role) (*utils.TokenPair, error) {
	tokenPair, err := utils.GenerateTokenPair(
		userID,
		nomUtilisateur,
		string(role),
		s.config.JWT.Secret,
		s.config.JWT.ExpiryHours,
		s.config.JWT.RefreshExpiryHours,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	refreshToken := &domainUser.RefreshToken{
		UserID:    userID,
		Token:     tokenPair.RefreshToken,
		ExpiresAt: time.Now().Add(time.Duration(s.config.JWT.RefreshExpiryHours) * time.Hour),
		Revoked:   false,
		CreatedAt: time.Now(),
	}
	if err := s.refreshTokenRepo.Create(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return tokenPair, nil
}
