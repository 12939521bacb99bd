package livraison

import "errors"

var (
	ErrLivraisonNotFound  = errors.New("livraison not found")
	ErrNotAvailable       = errors.New("livraison is not available to take")
	ErrNotInProgress      = errors.New("livraison is not in progress")
	ErrNotAssignedLivreur = errors.New("livraison is assigned to another livreur")
)
