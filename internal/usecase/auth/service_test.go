package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logitrack/internal/config"
	domainUser "logitrack/internal/domain/user"
	"logitrack/internal/logger"
	appErrors "logitrack/pkg/errors"
	"logitrack/pkg/utils"
)

func init() {
	_ = logger.Init("development")
}

type stubUserRepo struct {
	domainUser.Repository
	byNom map[string]*domainUser.User
	byID  map[int64]*domainUser.User
}

func (s *stubUserRepo) GetByNomUtilisateur(_ context.Context, nom string) (*domainUser.User, error) {
	if u, ok := s.byNom[nom]; ok {
		return u, nil
	}
	return nil, domainUser.ErrUserNotFound
}

func (s *stubUserRepo) GetByID(_ context.Context, id int64) (*domainUser.User, error) {
	if u, ok := s.byID[id]; ok {
		return u, nil
	}
	return nil, domainUser.ErrUserNotFound
}

type stubTokenRepo struct {
	domainUser.RefreshTokenRepository
	stored  []*domainUser.RefreshToken
	revoked map[int64]bool
	byToken map[string]*domainUser.RefreshToken
}

func newStubTokenRepo() *stubTokenRepo {
	return &stubTokenRepo{
		revoked: make(map[int64]bool),
		byToken: make(map[string]*domainUser.RefreshToken),
	}
}

func (s *stubTokenRepo) Create(_ context.Context, token *domainUser.RefreshToken) error {
	s.stored = append(s.stored, token)
	s.byToken[token.Token] = token
	return nil
}

func (s *stubTokenRepo) GetByToken(_ context.Context, token string) (*domainUser.RefreshToken, error) {
	if t, ok := s.byToken[token]; ok {
		return t, nil
	}
	return nil, domainUser.ErrTokenNotFound
}

func (s *stubTokenRepo) RevokeAllUserTokens(_ context.Context, userID int64) error {
	s.revoked[userID] = true
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:             "test-secret",
			ExpiryHours:        1,
			RefreshExpiryHours: 24,
		},
	}
}

func activeUser(t *testing.T, nom, password string) *domainUser.User {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	return &domainUser.User{
		ID:             7,
		NomUtilisateur: nom,
		MotDePasseHash: hash,
		Role:           domainUser.RoleGestionnaire,
		Actif:          true,
	}
}

func TestLoginSuccess(t *testing.T) {
	u := activeUser(t, "rachid", "Secret123")
	userRepo := &stubUserRepo{byNom: map[string]*domainUser.User{"rachid": u}}
	tokenRepo := newStubTokenRepo()
	svc := NewService(userRepo, tokenRepo, testConfig())

	resp, err := svc.Login(context.Background(), &LoginRequest{
		NomUtilisateur: "rachid",
		MotDePasse:     "Secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.User.ID)
	assert.Equal(t, "GESTIONNAIRE", resp.User.Role)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	require.Len(t, tokenRepo.stored, 1)
	assert.Equal(t, resp.RefreshToken, tokenRepo.stored[0].Token)
}

func TestLoginWrongPassword(t *testing.T) {
	u := activeUser(t, "rachid", "Secret123")
	userRepo := &stubUserRepo{byNom: map[string]*domainUser.User{"rachid": u}}
	svc := NewService(userRepo, newStubTokenRepo(), testConfig())

	_, err := svc.Login(context.Background(), &LoginRequest{
		NomUtilisateur: "rachid",
		MotDePasse:     "WrongPass1",
	})
	assert.ErrorIs(t, err, appErrors.ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	userRepo := &stubUserRepo{byNom: map[string]*domainUser.User{}}
	svc := NewService(userRepo, newStubTokenRepo(), testConfig())

	_, err := svc.Login(context.Background(), &LoginRequest{
		NomUtilisateur: "ghost",
		MotDePasse:     "Whatever1",
	})
	assert.ErrorIs(t, err, appErrors.ErrInvalidCredentials)
}

func TestLoginInactiveUser(t *testing.T) {
	u := activeUser(t, "rachid", "Secret123")
	u.Actif = false
	userRepo := &stubUserRepo{byNom: map[string]*domainUser.User{"rachid": u}}
	svc := NewService(userRepo, newStubTokenRepo(), testConfig())

	_, err := svc.Login(context.Background(), &LoginRequest{
		NomUtilisateur: "rachid",
		MotDePasse:     "Secret123",
	})
	assert.ErrorIs(t, err, appErrors.ErrUserInactive)
}

func TestRefreshRotatesToken(t *testing.T) {
	u := activeUser(t, "rachid", "Secret123")
	userRepo := &stubUserRepo{
		byNom: map[string]*domainUser.User{"rachid": u},
		byID:  map[int64]*domainUser.User{7: u},
	}
	tokenRepo := newStubTokenRepo()
	svc := NewService(userRepo, tokenRepo, testConfig())

	login, err := svc.Login(context.Background(), &LoginRequest{
		NomUtilisateur: "rachid",
		MotDePasse:     "Secret123",
	})
	require.NoError(t, err)

	resp, err := svc.Refresh(context.Background(), &RefreshRequest{RefreshToken: login.RefreshToken})
	require.NoError(t, err)
	assert.NotEqual(t, login.RefreshToken, resp.RefreshToken)
	assert.True(t, tokenRepo.revoked[7])
	assert.Len(t, tokenRepo.stored, 2)
}

func TestRefreshUnknownToken(t *testing.T) {
	u := activeUser(t, "rachid", "Secret123")
	userRepo := &stubUserRepo{byID: map[int64]*domainUser.User{7: u}}
	svc := NewService(userRepo, newStubTokenRepo(), testConfig())

	_, err := svc.Refresh(context.Background(), &RefreshRequest{RefreshToken: "nope"})
	assert.ErrorIs(t, err, appErrors.ErrInvalidToken)
}

func TestRefreshRevokedToken(t *testing.T) {
	u := activeUser(t, "rachid", "Secret123")
	userRepo := &stubUserRepo{
		byNom: map[string]*domainUser.User{"rachid": u},
		byID:  map[int64]*domainUser.User{7: u},
	}
	tokenRepo := newStubTokenRepo()
	svc := NewService(userRepo, tokenRepo, testConfig())

	login, err := svc.Login(context.Background(), &LoginRequest{
		NomUtilisateur: "rachid",
		MotDePasse:     "Secret123",
	})
	require.NoError(t, err)

	tokenRepo.byToken[login.RefreshToken].Revoked = true

	_, err = svc.Refresh(context.Background(), &RefreshRequest{RefreshToken: login.RefreshToken})
	assert.ErrorIs(t, err, appErrors.ErrInvalidToken)
}

func TestLogoutRevokesAllTokens(t *testing.T) {
	tokenRepo := newStubTokenRepo()
	svc := NewService(&stubUserRepo{}, tokenRepo, testConfig())

	require.NoError(t, svc.Logout(context.Background(), 7))
	assert.True(t, tokenRepo.revoked[7])
}
