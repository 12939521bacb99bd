package entrepot

import "context"

type Repository interface {
	Create(ctx context.Context, e *Entrepot) error
	GetByID(ctx context.Context, id int64) (*Entrepot, error)
	List(ctx context.Context) ([]*Detail, error)
	// AssignGestionnaire sets the responsible gestionnaire only when
	// none is set yet. Returns true when the row was updated.
	AssignGestionnaire(ctx context.Context, entrepotID, userID int64) (bool, error)
	Count(ctx context.Context) (int64, error)
}
