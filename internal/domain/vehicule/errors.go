package vehicule

import "errors"

var (
	ErrVehiculeNotFound      = errors.New("vehicule not found")
	ErrVehiculeInUse         = errors.New("vehicule is reserved by an active livraison")
	ErrInvalidTransition     = errors.New("invalid vehicule status change")
	ErrDuplicatePlate        = errors.New("a vehicule with this immatriculation already exists")
	ErrVehiculeWrongEntrepot = errors.New("vehicule is stationed at another entrepot")
)
