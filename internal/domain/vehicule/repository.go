package vehicule

import "context"

// Detail is a vehicule row joined with its entrepot's ville for the
// listings.
type Detail struct {
	Vehicule
	EntrepotVille *string
}

type Repository interface {
	Create(ctx context.Context, v *Vehicule) error
	GetByID(ctx context.Context, id int64) (*Vehicule, error)
	List(ctx context.Context, entrepotID *int64) ([]*Detail, error)
	ListDisponibles(ctx context.Context, entrepotID int64) ([]*Detail, error)
	UpdateStatut(ctx context.Context, id int64, statut Statut) error
	// Reassign moves the vehicule to another entrepot (nil detaches it).
	Reassign(ctx context.Context, id int64, entrepotID *int64) error
}
