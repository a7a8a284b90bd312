package repository

import (
	"context"

	"github.com/jhoicas/brand-catalog-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Los productos leídos traen BrandName completo. Las lecturas unitarias devuelven
// (nil, nil) cuando no hay fila.
type ProductRepository interface {
	// Create persiste el producto; (marca, categoría) repetida -> domain.ErrProductAlreadyExists.
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetByBrandAndCategory(ctx context.Context, brandID string, c entity.Category) (*entity.Product, error)
	// ListByCategory ordenado por nombre de marca.
	ListByCategory(ctx context.Context, c entity.Category) ([]*entity.Product, error)
	// ListByBrand ordenado por el orden fijo de categorías.
	ListByBrand(ctx context.Context, brandID string) ([]*entity.Product, error)
	// ListAll ordenado por nombre de marca y luego categoría.
	ListAll(ctx context.Context) ([]*entity.Product, error)
	// UpdatePrice sobrescribe el precio; id inexistente -> domain.ErrProductNotFound.
	UpdatePrice(ctx context.Context, id string, price int64) error
	// Update reasigna marca, categoría y precio de un producto existente.
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
	DeleteByBrand(ctx context.Context, brandID string) error
}
