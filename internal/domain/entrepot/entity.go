package entrepot

import "time"

// Entrepot is a warehouse. IDUser points at the gestionnaire
// responsible for it; at most one per entrepot, possibly none.
type Entrepot struct {
	ID           int64
	Adresse      string
	Ville        string
	Telephone    *string
	IDUser       *int64
	DateCreation time.Time
}

// Detail is an entrepot row joined with its gestionnaire's name for
// the admin listing.
type Detail struct {
	Entrepot
	GestionnaireNom *string
}
