package user

import (
	"context"
)

// UpdateFields is a partial update: nil fields are untouched.
type UpdateFields struct {
	Actif      *bool
	Role       *Role
	CIN        *string
	IDEntrepot *int64
}

// Repository defines the persistence operations for users.
type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByNomUtilisateur(ctx context.Context, nom string) (*User, error)
	List(ctx context.Context) ([]*User, error)
	Update(ctx context.Context, id int64, fields *UpdateFields) error
	GetEntrepotID(ctx context.Context, id int64) (*int64, error)
	ListActiveByRoles(ctx context.Context, roles ...Role) ([]*User, error)
	CountActiveByRole(ctx context.Context, role Role) (int64, error)
}

// RefreshTokenRepository stores refresh tokens for the JWT flow.
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *RefreshToken) error
	GetByToken(ctx context.Context, token string) (*RefreshToken, error)
	RevokeAllUserTokens(ctx context.Context, userID int64) error
	DeleteExpired(ctx context.Context) (int64, error)
}
