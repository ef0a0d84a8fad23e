package interfaces

import (
	"context"
	"pedezap/internal/domain/entities"
)

// IProductRepository abstracts catalog persistence for Product.
//
// The bot reads the catalog as an immutable-per-turn snapshot via List; the
// dashboard performs full CRUD.

type IProductRepository interface {
	Create(ctx context.Context, p entities.Product) (entities.Product, error)
	Update(ctx context.Context, p entities.Product) (entities.Product, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (entities.Product, error)
	List(ctx context.Context) ([]entities.Product, error)
}
