package client

import "errors"

var (
	ErrClientNotFound = errors.New("client not found")
	ErrDuplicateCIN   = errors.New("a client with this CIN already exists")
)
