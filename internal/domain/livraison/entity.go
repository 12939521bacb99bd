package livraison

import (
	"time"

	"logitrack/internal/domain/vehicule"
)

type Statut string

const (
	StatutCreee   Statut = "CREEE"
	StatutEnCours Statut = "EN_COURS"
	StatutLivree  Statut = "LIVREE"
	StatutAnnulee Statut = "ANNULEE"
)

// Livraison is a delivery run between two entrepots. Livreur and
// vehicule are assigned when the run is taken, not at creation.
type Livraison struct {
	ID                    int64
	IDEntrepotSource      int64
	IDEntrepotDestination int64
	IDLivreur             *int64
	IDVehicule            *int64
	Statut                Statut
	DateCreation          time.Time
	DateLivraison         *time.Time
}

// CheckPrendre validates that the run can be taken with the given
// vehicle: the run must still be CREEE and the vehicle DISPONIBLE at
// the run's source entrepot.
func (l *Livraison) CheckPrendre(v *vehicule.Vehicule) error {
	if l.Statut != StatutCreee {
		return ErrNotAvailable
	}
	if v.Statut != vehicule.StatutDisponible {
		return vehicule.ErrVehiculeInUse
	}
	if v.IDEntrepot == nil || *v.IDEntrepot != l.IDEntrepotSource {
		return vehicule.ErrVehiculeWrongEntrepot
	}
	return nil
}

// CheckLivrer validates that the acting livreur may close the run:
// it must be EN_COURS and assigned to that livreur.
func (l *Livraison) CheckLivrer(actingUserID int64) error {
	if l.Statut != StatutEnCours {
		return ErrNotInProgress
	}
	if l.IDLivreur == nil || *l.IDLivreur != actingUserID {
		return ErrNotAssignedLivreur
	}
	return nil
}

// StatutsLivreur lists the run states a livreur's history shows:
// runs being carried and runs already delivered.
func StatutsLivreur() []Statut {
	return []Statut{StatutEnCours, StatutLivree}
}

// Detail is the joined listing row the livreur endpoints return.
type Detail struct {
	ID            int64
	Source        string
	Destination   string
	Livreur       *string
	Vehicule      *string
	Statut        Statut
	DateCreation  time.Time
	DateLivraison *time.Time
	NbColis       int64
}
