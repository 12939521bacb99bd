package livraison

import "context"

type Repository interface {
	GetByID(ctx context.Context, id int64) (*Livraison, error)

	// FindOrCreateOpen returns the CREEE livraison for the route,
	// creating one when none is open. Colis registration attaches to
	// the returned run.
	FindOrCreateOpen(ctx context.Context, sourceID, destinationID int64) (*Livraison, error)

	// ListDisponibles returns CREEE runs sourced at the entrepot that
	// carry at least one colis.
	ListDisponibles(ctx context.Context, sourceEntrepotID int64) ([]*Detail, error)
	// ListByLivreur returns the livreur's EN_COURS and LIVREE runs.
	ListByLivreur(ctx context.Context, livreurID int64) ([]*Detail, error)

	// Prendre atomically assigns livreur and vehicule to a CREEE run:
	// run goes EN_COURS, the vehicule EN_UTILISATION, every attached
	// colis EN_COURS with a history row.
	Prendre(ctx context.Context, livraisonID, livreurID, vehiculeID int64) error

	// Livrer atomically completes an EN_COURS run: run goes LIVREE
	// with its delivery date, the vehicule returns DISPONIBLE at the
	// destination, every colis goes LIVRE relocated to the
	// destination, each with a history row.
	Livrer(ctx context.Context, livraisonID, actingUserID int64) error

	Count(ctx context.Context) (int64, error)
}
