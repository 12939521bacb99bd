package colis

import "errors"

var (
	ErrColisNotFound        = errors.New("colis not found")
	ErrInvalidStatut        = errors.New("invalid colis status")
	ErrInvalidTransition    = errors.New("invalid colis status transition")
	ErrColisAlreadyTerminal = errors.New("colis is in a terminal status")
)
