package gestionnaire

import (
	"time"

	domainClient "logitrack/internal/domain/client"
	domainColis "logitrack/internal/domain/colis"
	domainEntrepot "logitrack/internal/domain/entrepot"
	domainVehicule "logitrack/internal/domain/vehicule"
)

type CreateColisRequest struct {
	IDClient            *int64  `json:"id_client"`
	Poids               float64 `json:"poids" validate:"required,gte=1"`
	TypeColis           *string `json:"type_colis" validate:"omitempty,colis_type"`
	ReceiverCIN         string  `json:"receiver_cin" validate:"required,min=3,max=20"`
	IDEntrepotReception int64   `json:"id_entrepot_reception" validate:"required"`
}

type UpdateColisStatutRequest struct {
	Statut string `json:"statut" validate:"required"`
}

type RecupererRequest struct {
	ReceiverCIN string `json:"receiver_cin" validate:"required,min=3,max=20"`
}

type RecupererResponse struct {
	Updated int64 `json:"updated"`
}

type UpdateVehiculeStatutRequest struct {
	Statut string `json:"statut" validate:"required"`
}

type ColisResponse struct {
	ID                     int64     `json:"id_colis"`
	IDClient               *int64    `json:"id_client"`
	ClientNom              *string   `json:"client_nom"`
	Poids                  float64   `json:"poids"`
	TypeColis              string    `json:"type_colis"`
	ReceiverCIN            string    `json:"receiver_cin"`
	Statut                 string    `json:"statut"`
	VilleDestination       string    `json:"ville_destination"`
	Prix                   float64   `json:"prix"`
	IDEntrepotLocalisation *int64    `json:"id_entrepot_localisation"`
	LocalisationVille      *string   `json:"localisation_ville"`
	IDLivraison            *int64    `json:"id_livraison"`
	DateCreation           time.Time `json:"date_creation"`
}

func ToColisResponse(d *domainColis.Detail) *ColisResponse {
	if d == nil {
		return nil
	}
	return &ColisResponse{
		ID:                     d.ID,
		IDClient:               d.IDClient,
		ClientNom:              d.ClientNom,
		Poids:                  d.Poids,
		TypeColis:              string(d.TypeColis),
		ReceiverCIN:            d.ReceiverCIN,
		Statut:                 string(d.Statut),
		VilleDestination:       d.VilleDestination,
		Prix:                   d.Prix,
		IDEntrepotLocalisation: d.IDEntrepotLocalisation,
		LocalisationVille:      d.LocalisationVille,
		IDLivraison:            d.IDLivraison,
		DateCreation:           d.DateCreation,
	}
}

type HistoryEntry struct {
	ID             int64     `json:"id"`
	AncienStatut   *string   `json:"ancien_statut"`
	NouveauStatut  string    `json:"nouveau_statut"`
	NomUtilisateur *string   `json:"nom_utilisateur"`
	DateChangement time.Time `json:"date_changement"`
}

func ToHistoryEntry(d *domainColis.HistoriqueDetail) *HistoryEntry {
	if d == nil {
		return nil
	}
	var ancien *string
	if d.AncienStatut != nil {
		s := string(*d.AncienStatut)
		ancien = &s
	}
	return &HistoryEntry{
		ID:             d.ID,
		AncienStatut:   ancien,
		NouveauStatut:  string(d.NouveauStatut),
		NomUtilisateur: d.NomUtilisateur,
		DateChangement: d.DateChangement,
	}
}

type StatsResponse struct {
	TotalColis int64 `json:"total_colis"`
	Enregistre int64 `json:"enregistre"`
	EnCours    int64 `json:"en_cours"`
	Livre      int64 `json:"livre"`
	Recuperee  int64 `json:"recuperee"`
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
	ID           int64     `json:"id_client"`
	Prenom       string    `json:"prenom"`
	Nom          string    `json:"nom"`
	CIN          *string   `json:"cin"`
	Telephone    *string   `json:"telephone"`
	Email        *string   `json:"email"`
	Adresse      *string   `json:"adresse"`
	DateCreation time.Time `json:"date_creation"`
}

func ToClientResponse(c *domainClient.Client) *ClientResponse {
	if c == nil {
		return nil
	}
	return &ClientResponse{
		ID:           c.ID,
		Prenom:       c.Prenom,
		Nom:          c.Nom,
		CIN:          c.CIN,
		Telephone:    c.Telephone,
		Email:        c.Email,
		Adresse:      c.Adresse,
		DateCreation: c.DateCreation,
	}
}

// EntrepotOption is the dropdown row for picking a reception entrepot.
type EntrepotOption struct {
	ID      int64  `json:"id_entrepot"`
	Ville   string `json:"ville"`
	Adresse string `json:"adresse"`
}

func ToEntrepotOption(d *domainEntrepot.Detail) *EntrepotOption {
	if d == nil {
		return nil
	}
	return &EntrepotOption{
		ID:      d.ID,
		Ville:   d.Ville,
		Adresse: d.Adresse,
	}
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
