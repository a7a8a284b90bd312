package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/brand-catalog-api/internal/domain"
	"github.com/jhoicas/brand-catalog-api/internal/domain/entity"
	"github.com/jhoicas/brand-catalog-api/internal/domain/repository"
)

var _ repository.BrandRepository = (*BrandRepo)(nil)

// BrandRepo implementación del puerto BrandRepository sobre PostgreSQL (usable con pool o tx).
type BrandRepo struct {
	q Querier
}

// NewBrandRepository construye el adaptador de persistencia para marcas. Pasar pool o tx (Querier).
func NewBrandRepository(q Querier) *BrandRepo {
	return &BrandRepo{q: q}
}

// Create persiste una nueva marca.
func (r *BrandRepo) Create(ctx context.Context, brand *entity.Brand) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO brands (id, name, created_at, updated_at) VALUES ($1, $2, $3, $4)`,
		brand.ID, brand.Name, brand.CreatedAt, brand.UpdatedAt,
	)
	if err != nil {
		if _, constraint := pgErrorCode(err); isUniqueViolation(err) && constraint == constraintBrandName {
			return fmt.Errorf("%w: %q", domain.ErrBrandAlreadyExists, brand.Name)
		}
		return fmt.Errorf("insert brand: %w", err)
	}
	return nil
}

// GetByName obtiene una marca por nombre exacto.
func (r *BrandRepo) GetByName(ctx context.Context, name string) (*entity.Brand, error) {
	return r.getByName(ctx, `SELECT id, name, created_at, updated_at FROM brands WHERE name = $1`, name)
}

// GetByNameForUpdate obtiene la marca y bloquea la fila (SELECT FOR UPDATE) hasta el fin de la tx.
func (r *BrandRepo) GetByNameForUpdate(ctx context.Context, name string) (*entity.Brand, error) {
	return r.getByName(ctx, `SELECT id, name, created_at, updated_at FROM brands WHERE name = $1 FOR UPDATE`, name)
}

func (r *BrandRepo) getByName(ctx context.Context, query, name string) (*entity.Brand, error) {
	var b entity.Brand
	err := r.q.QueryRow(ctx, query, name).Scan(&b.ID, &b.Name, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get brand: %w", err)
	}
	return &b, nil
}

// List devuelve todas las marcas ordenadas por nombre (orden de bytes).
func (r *BrandRepo) List(ctx context.Context) ([]*entity.Brand, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name, created_at, updated_at FROM brands ORDER BY name COLLATE "C"`)
	if err != nil {
		return nil, fmt.Errorf("list brands: %w", err)
	}
	defer rows.Close()
	var list []*entity.Brand
	for rows.Next() {
		var b entity.Brand
		if err := rows.Scan(&b.ID, &b.Name, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan brand: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// Delete elimina la marca; ON DELETE CASCADE elimina sus productos en la misma sentencia.
func (r *BrandRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM brands WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete brand: %w", err)
	}
	return nil
}
