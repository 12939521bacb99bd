package colis

import "context"

// Detail joins the denormalized display columns the listings need.
type Detail struct {
	Colis
	ClientNom         *string
	LocalisationVille *string
}

// Stats are the per-entrepot dashboard counters.
type Stats struct {
	TotalColis int64
	Enregistre int64
	EnCours    int64
	Livre      int64
	Recuperee  int64
}

type Repository interface {
	// Create inserts the parcel together with its initial history row.
	Create(ctx context.Context, c *Colis) error
	GetByID(ctx context.Context, id int64) (*Colis, error)
	UpdateStatut(ctx context.Context, id int64, statut Statut) error

	// ListEnvoyes returns the outbound view for an entrepot: parcels
	// without a livraison located there, plus parcels whose livraison
	// sources there.
	ListEnvoyes(ctx context.Context, entrepotID int64) ([]*Detail, error)
	// ListRecus returns the inbound view: parcels whose livraison
	// destination is the entrepot, located there, in LIVRE or
	// RECUPEREE status.
	ListRecus(ctx context.Context, entrepotID int64) ([]*Detail, error)

	// MarkRecuperees flips every LIVRE colis with the given receiver
	// CIN at the entrepot to RECUPEREE, appending a history row per
	// parcel. Returns how many were updated.
	MarkRecuperees(ctx context.Context, receiverCIN string, entrepotID, actingUserID int64) (int64, error)

	AppendHistory(ctx context.Context, h *HistoriqueStatut) error
	History(ctx context.Context, colisID int64) ([]*HistoriqueDetail, error)

	Stats(ctx context.Context, entrepotID int64) (*Stats, error)
	Count(ctx context.Context) (int64, error)
	SumPrixDelivered(ctx context.Context) (float64, error)
}
