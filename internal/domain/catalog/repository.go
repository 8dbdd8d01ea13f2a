package catalog

import "context"

type Repository interface {
	ListAll(ctx context.Context) ([]*Item, error)
	FindByID(ctx context.Context, id string) (*Item, error)
	Save(ctx context.Context, item *Item) error
}
