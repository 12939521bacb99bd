package admin

import (
	"time"

	domainClient "logitrack/internal/domain/client"
	domainEntrepot "logitrack/internal/domain/entrepot"
	domainUser "logitrack/internal/domain/user"
	domainVehicule "logitrack/internal/domain/vehicule"
)

type KPIResponse struct {
	TotalColis      int64   `json:"total_colis"`
	TotalLivraisons int64   `json:"total_livraisons"`
	ChiffreAffaires float64 `json:"chiffre_affaires"`
	Livreurs        int64   `json:"livreurs"`
	Entrepots       int64   `json:"entrepots"`
	Clients         int64   `json:"clients"`
	Admins          int64   `json:"admins"`
	Gestionnaires   int64   `json:"gestionnaires"`
}

type CreateUserRequest struct {
	NomUtilisateur string  `json:"nom_utilisateur" validate:"required,min=3,max=100"`
	MotDePasse     string  `json:"mot_de_passe" validate:"required,min=8"`
	Role           string  `json:"role" validate:"required,user_role"`
	CIN            *string `json:"cin" validate:"omitempty,max=20"`
	IDEntrepot     *int64  `json:"id_entrepot"`
}

// UpdateUserRequest is a partial update: absent fields are untouched.
type UpdateUserRequest struct {
	Actif      *bool   `json:"actif"`
	Role       *string `json:"role" validate:"omitempty,user_role"`
	CIN        *string `json:"cin" validate:"omitempty,max=20"`
	IDEntrepot *int64  `json:"id_entrepot"`
}

type UserResponse struct {
	ID             int64     `json:"id_utilisateur"`
	NomUtilisateur string    `json:"nom_utilisateur"`
	Role           string    `json:"role"`
	CIN            *string   `json:"cin"`
	Actif          bool      `json:"actif"`
	IDEntrepot     *int64    `json:"id_entrepot"`
	DateCreation   time.Time `json:"date_creation"`
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

type CreateEntrepotRequest struct {
	Adresse   string  `json:"adresse" validate:"required,min=2,max=255"`
	Ville     string  `json:"ville" validate:"required,min=2,max=100"`
	Telephone *string `json:"telephone" validate:"omitempty,max=20"`
	IDUser    *int64  `json:"id_user"`
}

type EntrepotResponse struct {
	ID              int64     `json:"id_entrepot"`
	Adresse         string    `json:"adresse"`
	Ville           string    `json:"ville"`
	Telephone       *string   `json:"telephone"`
	IDUser          *int64    `json:"id_user"`
	GestionnaireNom *string   `json:"gestionnaire_nom"`
	DateCreation    time.Time `json:"date_creation"`
}

func ToEntrepotResponse(d *domainEntrepot.Detail) *EntrepotResponse {
	if d == nil {
		return nil
	}
	return &EntrepotResponse{
		ID:              d.ID,
		Adresse:         d.Adresse,
		Ville:           d.Ville,
		Telephone:       d.Telephone,
		IDUser:          d.IDUser,
		GestionnaireNom: d.GestionnaireNom,
		DateCreation:    d.DateCreation,
	}
}

type CreateClientRequest struct {
	Prenom    string  `json:"prenom" validate:"required,min=2,max=100"`
	Nom       string  `json:"nom" validate:"required,min=2,max=100"`
	CIN       *string `json:"cin" validate:"omitempty,max=20"`
	Telephone *string `json:"telephone" validate:"omitempty,max=20"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Adresse   *string `json:"adresse" validate:"omitempty,max=255"`
}

type ClientResponse struct {
	ID             int64     `json:"id_client"`
	Prenom         string    `json:"prenom"`
	Nom            string    `json:"nom"`
	CIN            *string   `json:"cin"`
	Telephone      *string   `json:"telephone"`
	Email          *string   `json:"email"`
	Adresse        *string   `json:"adresse"`
	IDGestionnaire int64     `json:"id_gestionnaire"`
	DateCreation   time.Time `json:"date_creation"`
}

func ToClientResponse(c *domainClient.Client) *ClientResponse {
	if c == nil {
		return nil
	}
	return &ClientResponse{
		ID:             c.ID,
		Prenom:         c.Prenom,
		Nom:            c.Nom,
		CIN:            c.CIN,
		Telephone:      c.Telephone,
		Email:          c.Email,
		Adresse:        c.Adresse,
		IDGestionnaire: c.IDGestionnaire,
		DateCreation:   c.DateCreation,
	}
}

type CreateVehiculeRequest struct {
	Immatriculation string `json:"immatriculation" validate:"required,min=2,max=20"`
	TypeVehicule    string `json:"type_vehicule" validate:"required,vehicule_type"`
	IDEntrepot      *int64 `json:"id_entrepot"`
}

// UpdateVehiculeRequest moves a vehicule to another entrepot and/or
// changes its status. Absent fields are untouched.
type UpdateVehiculeRequest struct {
	IDEntrepot *int64  `json:"id_entrepot"`
	Statut     *string `json:"statut"`
}

type VehiculeResponse struct {
	ID              int64     `json:"id_vehicule"`
	Immatriculation string    `json:"immatriculation"`
	TypeVehicule    string    `json:"type_vehicule"`
	Statut          string    `json:"statut"`
	IDEntrepot      *int64    `json:"id_entrepot"`
	EntrepotVille   *string   `json:"entrepot_ville"`
	DateCreation    time.Time `json:"date_creation"`
}

func ToVehiculeResponse(d *domainVehicule.Detail) *VehiculeResponse {
	if d == nil {
		return nil
	}
	return &VehiculeResponse{
		ID:              d.ID,
		Immatriculation: d.Immatriculation,
		TypeVehicule:    string(d.TypeVehicule),
		Statut:          string(d.Statut),
		IDEntrepot:      d.IDEntrepot,
		EntrepotVille:   d.EntrepotVille,
		DateCreation:    d.DateCreation,
	}
}
