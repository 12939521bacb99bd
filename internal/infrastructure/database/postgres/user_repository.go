package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"logitrack/internal/domain/user"
	"logitrack/internal/infrastructure/database/postgres/models"
)

type UserRepository struct {
	db *DB
}

func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db}
}

func toUserEntity(m *models.UserModel) *user.User {
	role, _ := user.NormalizeRole(m.Role)
	return &user.User{
		ID:             m.ID,
		NomUtilisateur: m.NomUtilisateur,
		MotDePasseHash: m.MotDePasse,
		Role:           role,
		CIN:            m.CIN,
		Actif:          m.Actif,
		IDEntrepot:     m.IDEntrepot,
		DateCreation:   m.DateCreation,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	dbModel := &models.UserModel{
		NomUtilisateur: u.NomUtilisateur,
		MotDePasse:     u.MotDePasseHash,
		Role:           string(u.Role),
		CIN:            u.CIN,
		Actif:          u.Actif,
		IDEntrepot:     u.IDEntrepot,
	}

	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return user.ErrUserAlreadyExists
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	u.ID = dbModel.ID
	u.DateCreation = dbModel.DateCreation

	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*user.User, error) {
	var dbModel models.UserModel
	err := r.db.DB.WithContext(ctx).
		Where("id_utilisateur = ?", id).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, user.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return toUserEntity(&dbModel), nil
}

func (r *UserRepository) GetByNomUtilisateur(ctx context.Context, nom string) (*user.User, error) {
	var dbModel models.UserModel
	err := r.db.DB.WithContext(ctx).
		Where("nom_utilisateur = ?", nom).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, user.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return toUserEntity(&dbModel), nil
}

func (r *UserRepository) List(ctx context.Context) ([]*user.User, error) {
	var dbModels []models.UserModel
	if err := r.db.DB.WithContext(ctx).
		Order("id_utilisateur").
		Find(&dbModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]*user.User, 0, len(dbModels))
	for i := range dbModels {
		users = append(users, toUserEntity(&dbModels[i]))
	}
	return users, nil
}

func (r *UserRepository) Update(ctx context.Context, id int64, fields *user.UpdateFields) error {
	updates := map[string]interface{}{}

	if fields.Actif != nil {
		updates["actif"] = *fields.Actif
	}
	if fields.Role != nil {
		updates["role"] = string(*fields.Role)
	}
	if fields.CIN != nil {
		updates["cin"] = *fields.CIN
	}
	if fields.IDEntrepot != nil {
		updates["id_entrepot"] = *fields.IDEntrepot
	}

	if len(updates) == 0 {
		return nil
	}

	result := r.db.DB.WithContext(ctx).
		Model(&models.UserModel{}).
		Where("id_utilisateur = ?", id).
		Updates(updates)

	if result.Error != nil {
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

func (r *UserRepository) GetEntrepotID(ctx context.Context, id int64) (*int64, error) {
	var dbModel models.UserModel
	err := r.db.DB.WithContext(ctx).
		Select("id_entrepot").
		Where("id_utilisateur = ?", id).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, user.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user entrepot: %w", err)
	}

	return dbModel.IDEntrepot, nil
}

func (r *UserRepository) ListActiveByRoles(ctx context.Context, roles ...user.Role) ([]*user.User, error) {
	roleStrings := make([]string, 0, len(roles))
	for _, role := range roles {
		roleStrings = append(roleStrings, string(role))
	}

	var dbModels []models.UserModel
	if err := r.db.DB.WithContext(ctx).
		Where("role IN ? AND actif = ?", roleStrings, true).
		Order("nom_utilisateur").
		Find(&dbModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list users by role: %w", err)
	}

	users := make([]*user.User, 0, len(dbModels))
	for i := range dbModels {
		users = append(users, toUserEntity(&dbModels[i]))
	}
	return users, nil
}

func (r *UserRepository) CountActiveByRole(ctx context.Context, role user.Role) (int64, error) {
	var count int64
	if err := r.db.DB.WithContext(ctx).
		Model(&models.UserModel{}).
		Where("role = ? AND actif = ?", string(role), true).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

// RefreshTokenRepository persists refresh tokens for the JWT flow.
type RefreshTokenRepository struct {
	db *DB
}

func NewRefreshTokenRepository(db *DB) *RefreshTokenRepository {
	return &RefreshTokenRepository{db: db}
}

func (r *RefreshTokenRepository) Create(ctx context.Context, token *user.RefreshToken) error {
	dbModel := &models.RefreshTokenModel{
		UserID:    token.UserID,
		Token:     token.Token,
		ExpiresAt: token.ExpiresAt,
		Revoked:   token.Revoked,
	}

	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create refresh token: %w", err)
	}

	token.ID = dbModel.ID
	token.CreatedAt = dbModel.CreatedAt

	return nil
}

func (r *RefreshTokenRepository) GetByToken(ctx context.Context, tokenValue string) (*user.RefreshToken, error) {
	var dbModel models.RefreshTokenModel
	err := r.db.DB.WithContext(ctx).
		Where("token = ?", tokenValue).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, user.ErrTokenNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get refresh token: %w", err)
	}

	return &user.RefreshToken{
		ID:        dbModel.ID,
		UserID:    dbModel.UserID,
		Token:     dbModel.Token,
		ExpiresAt: dbModel.ExpiresAt,
		Revoked:   dbModel.Revoked,
		CreatedAt: dbModel.CreatedAt,
	}, nil
}

func (r *RefreshTokenRepository) RevokeAllUserTokens(ctx context.Context, userID int64) error {
	if err := r.db.DB.WithContext(ctx).
		Model(&models.RefreshTokenModel{}).
		Where("id_utilisateur = ? AND revoked = ?", userID, false).
		Update("revoked", true).Error; err != nil {
		return fmt.Errorf("failed to revoke refresh tokens: %w", err)
	}
	return nil
}

func (r *RefreshTokenRepository) DeleteExpired(ctx context.Context) (int64, error) {
	result := r.db.DB.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Delete(&models.RefreshTokenModel{})

	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete expired tokens: %w", result.Error)
	}
	return result.RowsAffected, nil
}
