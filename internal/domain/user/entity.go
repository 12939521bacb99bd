package user

import (
	"strings"
	"time"
)

// Role is the closed set of roles the application dispatches on.
type Role string

const (
	RoleAdmin        Role = "ADMIN"
	RoleGestionnaire Role = "GESTIONNAIRE"
	RoleLivreur      Role = "LIVREUR"
)

// NormalizeRole maps stored role values onto the closed enumeration.
// Stored values may carry stray casing or whitespace, so every
// comparison goes through here.
func NormalizeRole(raw string) (Role, bool) {
	switch Role(strings.ToUpper(strings.TrimSpace(raw))) {
	case RoleAdmin:
		return RoleAdmin, true
	case RoleGestionnaire:
		return RoleGestionnaire, true
	case RoleLivreur:
		return RoleLivreur, true
	}
	return "", false
}

// User represents an application account. Accounts are never deleted,
// only deactivated through the Actif flag.
type User struct {
	ID             int64
	NomUtilisateur string
	MotDePasseHash string
	Role           Role
	CIN            *string
	Actif          bool
	IDEntrepot     *int64
	DateCreation   time.Time
}

// RefreshToken backs the JWT refresh flow.
type RefreshToken struct {
	ID        int64
	UserID    int64
	Token     string
	ExpiresAt time.Time
	Revoked   bool
	CreatedAt time.Time
}

func (rt *RefreshToken) IsExpired() bool {
	return time.Now().After(rt.ExpiresAt)
}

func (rt *RefreshToken) IsValid() bool {
	return !rt.Revoked && !rt.IsExpired()
}
