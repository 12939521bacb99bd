package entrepot

import "errors"

var ErrEntrepotNotFound = errors.New("entrepot not found")
