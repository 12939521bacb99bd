package client

import "time"

// Client is a sender/recipient profile. IDGestionnaire records the
// creating manager and scopes non-admin visibility.
type Client struct {
	ID             int64
	Prenom         string
	Nom            string
	CIN            *string
	Telephone      *string
	Email          *string
	Adresse        *string
	IDGestionnaire int64
	DateCreation   time.Time
}
