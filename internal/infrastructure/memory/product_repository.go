package memory

import (
	"context"
	"fmt"

	"github.com/jhoicas/brand-catalog-api/internal/domain"
	"github.com/jhoicas/brand-catalog-api/internal/domain/entity"
	"github.com/jhoicas/brand-catalog-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo vista de productos atada a una transacción del Store.
type ProductRepo struct {
	st       *state
	readOnly bool
}

// Create persiste un producto; exige que la marca exista y que el par sea libre.
func (r *ProductRepo) Create(_ context.Context, product *entity.Product) error {
	if r.readOnly {
		return errReadOnly
	}
	if _, ok := r.st.brands[product.BrandID]; !ok {
		return fmt.Errorf("%w: id %s", domain.ErrBrandNotFound, product.BrandID)
	}
	key := brandCategory{brandID: product.BrandID, category: product.Category}
	if _, taken := r.st.productByPair[key]; taken {
		return fmt.Errorf("%w: %s", domain.ErrProductAlreadyExists, product.Category)
	}
	p := *product
	p.BrandName = ""
	r.st.products[p.ID] = p
	r.st.productsByBrand[p.BrandID][p.ID] = struct{}{}
	r.st.productByPair[key] = p.ID
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := r.st.products[id]
	if !ok {
		return nil, nil
	}
	return r.st.withBrandName(p), nil
}

// GetByBrandAndCategory obtiene el producto único del par (marca, categoría).
func (r *ProductRepo) GetByBrandAndCategory(_ context.Context, brandID string, c entity.Category) (*entity.Product, error) {
	id, ok := r.st.productByPair[brandCategory{brandID: brandID, category: c}]
	if !ok {
		return nil, nil
	}
	return r.st.withBrandName(r.st.products[id]), nil
}

// ListByCategory productos de una categoría ordenados por marca.
func (r *ProductRepo) ListByCategory(_ context.Context, c entity.Category) ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range r.st.products {
		if p.Category == c {
			list = append(list, r.st.withBrandName(p))
		}
	}
	sortProducts(list)
	return list, nil
}

// ListByBrand productos de una marca en el orden fijo de categorías.
func (r *ProductRepo) ListByBrand(_ context.Context, brandID string) ([]*entity.Product, error) {
	var list []*entity.Product
	for id := range r.st.productsByBrand[brandID] {
		list = append(list, r.st.withBrandName(r.st.products[id]))
	}
	sortProducts(list)
	return list, nil
}

// ListAll todos los productos ordenados por marca y categoría.
func (r *ProductRepo) ListAll(_ context.Context) ([]*entity.Product, error) {
	list := make([]*entity.Product, 0, len(r.st.products))
	for _, p := range r.st.products {
		list = append(list, r.st.withBrandName(p))
	}
	sortProducts(list)
	return list, nil
}

// UpdatePrice sobrescribe el precio.
func (r *ProductRepo) UpdatePrice(_ context.Context, id string, price int64) error {
	if r.readOnly {
		return errReadOnly
	}
	p, ok := r.st.products[id]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrProductNotFound, id)
	}
	p.Price = price
	r.st.products[id] = p
	return nil
}

// Update reasigna marca, categoría y precio manteniendo los índices.
func (r *ProductRepo) Update(_ context.Context, product *entity.Product) error {
	if r.readOnly {
		return errReadOnly
	}
	old, ok := r.st.products[product.ID]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrProductNotFound, product.ID)
	}
	if _, ok := r.st.brands[product.BrandID]; !ok {
		return fmt.Errorf("%w: id %s", domain.ErrBrandNotFound, product.BrandID)
	}
	newKey := brandCategory{brandID: product.BrandID, category: product.Category}
	if owner, taken := r.st.productByPair[newKey]; taken && owner != product.ID {
		return fmt.Errorf("%w: %s", domain.ErrProductAlreadyExists, product.Category)
	}

	delete(r.st.productByPair, brandCategory{brandID: old.BrandID, category: old.Category})
	delete(r.st.productsByBrand[old.BrandID], old.ID)

	p := *product
	p.BrandName = ""
	p.CreatedAt = old.CreatedAt
	r.st.products[p.ID] = p
	r.st.productsByBrand[p.BrandID][p.ID] = struct{}{}
	r.st.productByPair[newKey] = p.ID
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(_ context.Context, id string) error {
	if r.readOnly {
		return errReadOnly
	}
	p, ok := r.st.products[id]
	if !ok {
		return nil
	}
	delete(r.st.productByPair, brandCategory{brandID: p.BrandID, category: p.Category})
	delete(r.st.productsByBrand[p.BrandID], id)
	delete(r.st.products, id)
	return nil
}

// DeleteByBrand elimina todos los productos de la marca (la marca permanece).
func (r *ProductRepo) DeleteByBrand(_ context.Context, brandID string) error {
	if r.readOnly {
		return errReadOnly
	}
	for id := range r.st.productsByBrand[brandID] {
		p := r.st.products[id]
		delete(r.st.productByPair, brandCategory{brandID: brandID, category: p.Category})
		delete(r.st.products, id)
	}
	if _, ok := r.st.productsByBrand[brandID]; ok {
		r.st.productsByBrand[brandID] = make(map[string]struct{})
	}
	return nil
}
