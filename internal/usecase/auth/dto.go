package auth

import (
	"time"

	domainUser "logitrack/internal/domain/user"
)

type LoginRequest struct {
	NomUtilisateur string `json:"nom_utilisateur" validate:"required,min=3,max=100"`
	MotDePasse     string `json:"mot_de_passe" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type UserResponse struct {
	ID             int64     `json:"id_utilisateur"`
	NomUtilisateur string    `json:"nom_utilisateur"`
	Role           string    `json:"role"`
	CIN            *string   `json:"cin,omitempty"`
	Actif          bool      `json:"actif"`
	IDEntrepot     *int64    `json:"id_entrepot,omitempty"`
	DateCreation   time.Time `json:"date_creation"`
}

type AuthResponse struct {
	User         *UserResponse `json:"user"`
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	ExpiresAt    int64         `json:"expires_at"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    int64  `json:"expires_at"`
}

func ToUserResponse(u *domainUser.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:             u.ID,
		NomUtilisateur: u.NomUtilisateur,
		Role:           string(u.Role),
		CIN:            u.CIN,
		Actif:          u.Actif,
		IDEntrepot:     u.IDEntrepot,
		DateCreation:   u.DateCreation,
	}
}
