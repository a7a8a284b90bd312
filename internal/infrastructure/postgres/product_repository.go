package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/brand-catalog-api/internal/domain"
	"github.com/jhoicas/brand-catalog-api/internal/domain/category"
	"github.com/jhoicas/brand-catalog-api/internal/domain/entity"
	"github.com/jhoicas/brand-catalog-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `p.id, p.brand_id, b.name, p.category, p.price, p.created_at, p.updated_at`

// categoryOrder ordena por la posición de la categoría en el registro fijo ($1 = códigos).
const categoryOrder = `array_position($1::text[], p.category)`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

func categoryCodes() []string {
	all := category.All()
	codes := make([]string, len(all))
	for i, c := range all {
		codes[i] = string(c)
	}
	return codes
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO products (id, brand_id, category, price, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		product.ID, product.BrandID, string(product.Category), product.Price, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		return r.mapWriteError(err, product)
	}
	return nil
}

func (r *ProductRepo) mapWriteError(err error, product *entity.Product) error {
	_, constraint := pgErrorCode(err)
	switch {
	case isUniqueViolation(err) && constraint == constraintProductPair:
		return fmt.Errorf("%w: %s", domain.ErrProductAlreadyExists, product.Category)
	case isForeignKeyViolation(err) && constraint == constraintProductBrandFK:
		return fmt.Errorf("%w: id %s", domain.ErrBrandNotFound, product.BrandID)
	}
	return fmt.Errorf("write product: %w", err)
}

// GetByID obtiene un producto por ID. Un ID que no es UUID se trata como inexistente.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	row := r.q.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products p JOIN brands b ON b.id = p.brand_id WHERE p.id = $1`, id)
	p, err := scanProduct(row)
	if err != nil {
		if isNoRows(err) || isInvalidID(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetByBrandAndCategory obtiene el producto del par (marca, categoría).
func (r *ProductRepo) GetByBrandAndCategory(ctx context.Context, brandID string, c entity.Category) (*entity.Product, error) {
	row := r.q.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products p JOIN brands b ON b.id = p.brand_id
		 WHERE p.brand_id = $1 AND p.category = $2`, brandID, string(c))
	p, err := scanProduct(row)
	if err != nil {
		if isNoRows(err) || isInvalidID(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by pair: %w", err)
	}
	return p, nil
}

// ListByCategory productos de la categoría ordenados por nombre de marca.
func (r *ProductRepo) ListByCategory(ctx context.Context, c entity.Category) ([]*entity.Product, error) {
	return r.list(ctx,
		`SELECT `+productColumns+` FROM products p JOIN brands b ON b.id = p.brand_id
		 WHERE p.category = $1 ORDER BY b.name COLLATE "C"`, string(c))
}

// ListByBrand productos de la marca en el orden fijo de categorías.
func (r *ProductRepo) ListByBrand(ctx context.Context, brandID string) ([]*entity.Product, error) {
	return r.list(ctx,
		`SELECT `+productColumns+` FROM products p JOIN brands b ON b.id = p.brand_id
		 WHERE p.brand_id = $2 ORDER BY `+categoryOrder, categoryCodes(), brandID)
}

// ListAll todos los productos ordenados por marca y categoría.
func (r *ProductRepo) ListAll(ctx context.Context) ([]*entity.Product, error) {
	return r.list(ctx,
		`SELECT `+productColumns+` FROM products p JOIN brands b ON b.id = p.brand_id
		 ORDER BY b.name COLLATE "C", `+categoryOrder, categoryCodes())
}

func (r *ProductRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// UpdatePrice sobrescribe el precio y la fecha de actualización.
func (r *ProductRepo) UpdatePrice(ctx context.Context, id string, price int64) error {
	tag, err := r.q.Exec(ctx, `UPDATE products SET price = $2, updated_at = now() WHERE id = $1`, id, price)
	if err != nil && !isInvalidID(err) {
		return fmt.Errorf("update price: %w", err)
	}
	if err != nil || tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrProductNotFound, id)
	}
	return nil
}

// Update reasigna marca, categoría y precio.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE products SET brand_id = $2, category = $3, price = $4, updated_at = $5 WHERE id = $1`,
		product.ID, product.BrandID, string(product.Category), product.Price, product.UpdatedAt,
	)
	if err != nil {
		if isInvalidID(err) {
			return fmt.Errorf("%w: %s", domain.ErrProductNotFound, product.ID)
		}
		return r.mapWriteError(err, product)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrProductNotFound, product.ID)
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id); err != nil && !isInvalidID(err) {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// DeleteByBrand elimina todos los productos de la marca.
func (r *ProductRepo) DeleteByBrand(ctx context.Context, brandID string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM products WHERE brand_id = $1`, brandID); err != nil {
		return fmt.Errorf("delete products by brand: %w", err)
	}
	return nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var (
		p    entity.Product
		code string
	)
	if err := row.Scan(&p.ID, &p.BrandID, &p.BrandName, &code, &p.Price, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	c, err := category.FromCode(code)
	if err != nil {
		return nil, err
	}
	p.Category = c
	return &p, nil
}
