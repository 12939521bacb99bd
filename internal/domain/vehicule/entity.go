package vehicule

import "time"

type Statut string

const (
	StatutDisponible    Statut = "DISPONIBLE"
	StatutEnUtilisation Statut = "EN_UTILISATION"
	StatutMaintenance   Statut = "MAINTENANCE"
)

type TypeVehicule string

const (
	TypePetitCamion TypeVehicule = "PETIT_CAMION"
	TypeGrandCamion TypeVehicule = "GRAND_CAMION"
)

// Vehicule belongs to exactly one entrepot at a time (nullable while
// unassigned). EN_UTILISATION means a livraison holds it.
type Vehicule struct {
	ID              int64
	Immatriculation string
	TypeVehicule    TypeVehicule
	Statut          Statut
	IDEntrepot      *int64
	DateCreation    time.Time
}

// CanGestionnaireSet reports whether a gestionnaire may move the
// vehicle to the target status. Only the DISPONIBLE/MAINTENANCE pair
// is reachable; a vehicle reserved by an active livraison is frozen.
func (v *Vehicule) CanGestionnaireSet(target Statut) bool {
	if v.Statut == StatutEnUtilisation || target == StatutEnUtilisation {
		return false
	}
	return target == StatutDisponible || target == StatutMaintenance
}
