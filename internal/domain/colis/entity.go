package colis

import (
	"math"
	"time"
)

type Statut string

const (
	StatutEnregistre Statut = "ENREGISTRE" // created at the expedition entrepot
	StatutEnCours    Statut = "EN_COURS"   // riding an EN_COURS livraison
	StatutLivre      Statut = "LIVRE"      // arrived at the destination entrepot
	StatutRecuperee  Statut = "RECUPEREE"  // picked up by the receiver
	StatutAnnule     Statut = "ANNULE"     // cancelled before delivery
)

type TypeColis string

const (
	TypeStandard TypeColis = "STANDARD"
	TypeFragile  TypeColis = "FRAGILE"
)

// Colis is a parcel. VilleDestination is denormalized from the
// reception entrepot at creation time. IDLivraison is nil only before
// the parcel is attached to a route.
type Colis struct {
	ID                     int64
	IDClient               *int64
	Poids                  float64
	TypeColis              TypeColis
	ReceiverCIN            string
	Statut                 Statut
	VilleDestination       string
	Prix                   float64
	IDEntrepotLocalisation *int64
	IDLivraison            *int64
	IDUser                 int64
	DateCreation           time.Time
}

// HistoriqueStatut is one append-only status change record.
type HistoriqueStatut struct {
	ID             int64
	IDColis        int64
	AncienStatut   *Statut
	NouveauStatut  Statut
	IDUtilisateur  int64
	DateChangement time.Time
}

// HistoriqueDetail joins the acting user's name onto a history row.
type HistoriqueDetail struct {
	HistoriqueStatut
	NomUtilisateur *string
}

var transitions = map[Statut][]Statut{
	StatutEnregistre: {StatutEnCours, StatutAnnule},
	StatutEnCours:    {StatutLivre, StatutAnnule},
	StatutLivre:      {StatutRecuperee},
	StatutRecuperee:  {},
	StatutAnnule:     {},
}

// CanTransition reports whether from -> to is a legal edge of the
// parcel lifecycle.
func CanTransition(from, to Statut) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition is possible.
func IsTerminal(s Statut) bool {
	return len(transitions[s]) == 0
}

// Recuperable reports whether a parcel can be handed over to its
// receiver: only parcels already delivered (LIVRE) qualify.
func Recuperable(s Statut) bool {
	return s == StatutLivre
}

// ParseStatut validates a raw status string against the vocabulary.
func ParseStatut(raw string) (Statut, bool) {
	switch Statut(raw) {
	case StatutEnregistre, StatutEnCours, StatutLivre, StatutRecuperee, StatutAnnule:
		return Statut(raw), true
	}
	return "", false
}

const (
	prixBase          = 10.0
	prixParKg         = 2.5
	fragileMultiplier = 1.5
)

// ComputePrix prices a parcel from its weight and type.
func ComputePrix(poids float64, typeColis TypeColis) float64 {
	prix := prixBase + prixParKg*poids
	if typeColis == TypeFragile {
		prix *= fragileMultiplier
	}
	return math.Round(prix*100) / 100
}
