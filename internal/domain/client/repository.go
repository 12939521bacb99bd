package client

import "context"

type Repository interface {
	Create(ctx context.Context, c *Client) error
	GetByID(ctx context.Context, id int64) (*Client, error)
	List(ctx context.Context) ([]*Client, error)
	ListByGestionnaire(ctx context.Context, gestionnaireID int64) ([]*Client, error)
	Count(ctx context.Context) (int64, error)
}
