package repository

import (
	"context"

	"github.com/jhoicas/brand-catalog-api/internal/domain/entity"
)

// BrandRepository define el puerto de persistencia para Brand (DIP).
// Las lecturas devuelven (nil, nil) cuando la marca no existe.
type BrandRepository interface {
	// Create persiste la marca; nombre repetido -> domain.ErrBrandAlreadyExists.
	Create(ctx context.Context, brand *entity.Brand) error
	GetByName(ctx context.Context, name string) (*entity.Brand, error)
	// GetByNameForUpdate igual que GetByName pero bloquea la marca hasta el fin de la
	// transacción; serializa las escrituras sobre una misma marca.
	GetByNameForUpdate(ctx context.Context, name string) (*entity.Brand, error)
	// List devuelve todas las marcas ordenadas por nombre.
	List(ctx context.Context) ([]*entity.Brand, error)
	// Delete elimina la marca y en cascada todos sus productos.
	Delete(ctx context.Context, id string) error
}
