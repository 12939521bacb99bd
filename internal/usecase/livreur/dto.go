package livreur

import (
	"time"

	domainLivraison "logitrack/internal/domain/livraison"
	domainVehicule "logitrack/internal/domain/vehicule"
)

type PrendreRequest struct {
	IDVehicule int64 `json:"id_vehicule" validate:"required"`
}

type LivraisonResponse struct {
	ID            int64      `json:"id_livraison"`
	Source        string     `json:"source"`
	Destination   string     `json:"destination"`
	Livreur       *string    `json:"livreur"`
	Vehicule      *string    `json:"vehicule"`
	Statut        string     `json:"statut"`
	DateCreation  time.Time  `json:"date_creation"`
	DateLivraison *time.Time `json:"date_livraison"`
	NbColis       int64      `json:"nb_colis"`
}

func ToLivraisonResponse(d *domainLivraison.Detail) *LivraisonResponse {
	if d == nil {
		return nil
	}
	return &LivraisonResponse{
		ID:            d.ID,
		Source:        d.Source,
		Destination:   d.Destination,
		Livreur:       d.Livreur,
		Vehicule:      d.Vehicule,
		Statut:        string(d.Statut),
		DateCreation:  d.DateCreation,
		DateLivraison: d.DateLivraison,
		NbColis:       d.NbColis,
	}
}

type VehiculeResponse struct {
	ID              int64   `json:"id_vehicule"`
	Immatriculation string  `json:"immatriculation"`
	TypeVehicule    string  `json:"type_vehicule"`
	Statut          string  `json:"statut"`
	IDEntrepot      *int64  `json:"id_entrepot"`
	EntrepotVille   *string `json:"entrepot_ville"`
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
	}
}
