// Package pricing expone las tres vistas agregadas del catálogo. Cada consulta lee una
// instantánea consistente (TxRunner.ReadOnly) y delega el cálculo en domain/pricing.
package pricing

import (
	"context"

	"github.com/jhoicas/brand-catalog-api/internal/application/dto"
	"github.com/jhoicas/brand-catalog-api/internal/domain/category"
	domainpricing "github.com/jhoicas/brand-catalog-api/internal/domain/pricing"
	"github.com/jhoicas/brand-catalog-api/internal/domain/repository"
)

// SnapshotRunner ejecuta fn sobre una instantánea de sólo lectura.
type SnapshotRunner interface {
	ReadOnly(ctx context.Context, fn repository.TxFunc) error
}

// Observer recibe el resultado de cada consulta (métricas).
type Observer interface {
	Operation(op string, err error)
}

// PricingUseCase consultas de precios agregados.
type PricingUseCase struct {
	snap SnapshotRunner
	obs  Observer
}

// NewPricingUseCase construye el caso de uso. obs puede ser nil.
func NewPricingUseCase(snap SnapshotRunner, obs Observer) *PricingUseCase {
	return &PricingUseCase{snap: snap, obs: obs}
}

func (uc *PricingUseCase) done(op string, err error) {
	if uc.obs != nil {
		uc.obs.Operation(op, err)
	}
}

// CheapestPerCategory la marca más barata de cada categoría y la suma total.
func (uc *PricingUseCase) CheapestPerCategory(ctx context.Context) (_ *dto.LowestByCategoryResponse, err error) {
	defer func() { uc.done("cheapest_per_category", err) }()

	var res *domainpricing.CheapestByCategory
	err = uc.snap.ReadOnly(ctx, func(_ repository.BrandRepository, products repository.ProductRepository) error {
		all, err := products.ListAll(ctx)
		if err != nil {
			return err
		}
		res, err = domainpricing.CheapestPerCategory(category.All(), all)
		return err
	})
	if err != nil {
		return nil, err
	}

	out := &dto.LowestByCategoryResponse{Items: make([]dto.CategoryBrandPriceDTO, 0, len(res.Items)), Total: res.Total}
	for _, it := range res.Items {
		out.Items = append(out.Items, dto.CategoryBrandPriceDTO{
			Category: category.DisplayName(it.Category),
			Brand:    it.Brand,
			Price:    it.Price,
		})
	}
	return out, nil
}

// CheapestBrandBundle la marca que cubre todas las categorías con el menor total.
func (uc *PricingUseCase) CheapestBrandBundle(ctx context.Context) (_ *dto.LowestByBrandResponse, err error) {
	defer func() { uc.done("cheapest_brand_bundle", err) }()

	var res *domainpricing.BrandBundle
	err = uc.snap.ReadOnly(ctx, func(brands repository.BrandRepository, products repository.ProductRepository) error {
		bl, err := brands.List(ctx)
		if err != nil {
			return err
		}
		all, err := products.ListAll(ctx)
		if err != nil {
			return err
		}
		res, err = domainpricing.CheapestFullCoverageBrand(category.All(), len(bl), all)
		return err
	})
	if err != nil {
		return nil, err
	}

	out := &dto.LowestByBrandResponse{Brand: res.Brand, Categories: make([]dto.CategoryPriceDTO, 0, len(res.Items)), Total: res.Total}
	for _, it := range res.Items {
		out.Categories = append(out.Categories, dto.CategoryPriceDTO{Category: category.DisplayName(it.Category), Price: it.Price})
	}
	return out, nil
}

// CategoryStat precio mínimo y máximo de la categoría con todas las marcas empatadas.
func (uc *PricingUseCase) CategoryStat(ctx context.Context, categoryName string) (_ *dto.CategoryStatResponse, err error) {
	defer func() { uc.done("category_stat", err) }()

	c, err := category.Resolve(categoryName)
	if err != nil {
		return nil, err
	}
	var res *domainpricing.CategoryStat
	err = uc.snap.ReadOnly(ctx, func(_ repository.BrandRepository, products repository.ProductRepository) error {
		list, err := products.ListByCategory(ctx, c)
		if err != nil {
			return err
		}
		res, err = domainpricing.Stat(c, list)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &dto.CategoryStatResponse{
		Category: category.DisplayName(res.Category),
		Lowest:   toBrandPrices(res.Lowest),
		Highest:  toBrandPrices(res.Highest),
	}, nil
}

// Categories el registro de categorías en su orden fijo.
func Categories() *dto.CategoryListResponse {
	out := &dto.CategoryListResponse{Items: make([]dto.CategoryResponse, 0, category.Count())}
	for _, c := range category.All() {
		out.Items = append(out.Items, dto.CategoryResponse{Code: string(c), Name: category.DisplayName(c)})
	}
	return out
}

func toBrandPrices(in []domainpricing.BrandPrice) []dto.BrandPriceDTO {
	out := make([]dto.BrandPriceDTO, len(in))
	for i, bp := range in {
		out[i] = dto.BrandPriceDTO{Brand: bp.Brand, Price: bp.Price}
	}
	return out
}
