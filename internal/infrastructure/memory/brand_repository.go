package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/jhoicas/brand-catalog-api/internal/domain"
	"github.com/jhoicas/brand-catalog-api/internal/domain/entity"
	"github.com/jhoicas/brand-catalog-api/internal/domain/repository"
)

var _ repository.BrandRepository = (*BrandRepo)(nil)

// BrandRepo vista de marcas atada a una transacción del Store.
type BrandRepo struct {
	st       *state
	readOnly bool
}

// Create persiste una marca nueva.
func (r *BrandRepo) Create(_ context.Context, brand *entity.Brand) error {
	if r.readOnly {
		return errReadOnly
	}
	if _, ok := r.st.brandByName[brand.Name]; ok {
		return fmt.Errorf("%w: %q", domain.ErrBrandAlreadyExists, brand.Name)
	}
	r.st.brands[brand.ID] = *brand
	r.st.brandByName[brand.Name] = brand.ID
	r.st.productsByBrand[brand.ID] = make(map[string]struct{})
	return nil
}

// GetByName busca una marca por nombre exacto.
func (r *BrandRepo) GetByName(_ context.Context, name string) (*entity.Brand, error) {
	id, ok := r.st.brandByName[name]
	if !ok {
		return nil, nil
	}
	b := r.st.brands[id]
	return &b, nil
}

// GetByNameForUpdate el candado de escritura del Store ya serializa la transacción.
func (r *BrandRepo) GetByNameForUpdate(ctx context.Context, name string) (*entity.Brand, error) {
	return r.GetByName(ctx, name)
}

// List devuelve las marcas ordenadas por nombre.
func (r *BrandRepo) List(_ context.Context) ([]*entity.Brand, error) {
	list := make([]*entity.Brand, 0, len(r.st.brands))
	for _, b := range r.st.brands {
		b := b
		list = append(list, &b)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

// Delete elimina la marca y en cascada sus productos.
func (r *BrandRepo) Delete(_ context.Context, id string) error {
	if r.readOnly {
		return errReadOnly
	}
	b, ok := r.st.brands[id]
	if !ok {
		return nil
	}
	for pid := range r.st.productsByBrand[id] {
		p := r.st.products[pid]
		delete(r.st.productByPair, brandCategory{brandID: id, category: p.Category})
		delete(r.st.products, pid)
	}
	delete(r.st.productsByBrand, id)
	delete(r.st.brandByName, b.Name)
	delete(r.st.brands, id)
	return nil
}
