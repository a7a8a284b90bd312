package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/brand-catalog-api/internal/application/dto"
	"github.com/jhoicas/brand-catalog-api/internal/domain"
	"github.com/jhoicas/brand-catalog-api/internal/domain/category"
	"github.com/jhoicas/brand-catalog-api/internal/domain/entity"
	"github.com/jhoicas/brand-catalog-api/internal/domain/repository"
)

// BrandUseCase alta, reemplazo de precios, baja y consulta de marcas.
type BrandUseCase struct {
	base
}

// NewBrandUseCase construye el caso de uso.
func NewBrandUseCase(d Deps) *BrandUseCase {
	return &BrandUseCase{base: newBase(d)}
}

// CreateBrand crea la marca y un producto por cada entrada de prices. Ante cualquier
// error de validación o conflicto no se crea nada.
func (uc *BrandUseCase) CreateBrand(ctx context.Context, name string, prices map[string]int64) (_ *dto.BrandResponse, err error) {
	defer func() { uc.done("create_brand", err) }()

	name, err = normalizeBrandName(name)
	if err != nil {
		return nil, err
	}
	resolved, err := resolvePrices(prices)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	brand := &entity.Brand{ID: uuid.New().String(), Name: name, CreatedAt: now, UpdatedAt: now}
	var out *dto.BrandResponse
	err = uc.tx.Run(ctx, func(brands repository.BrandRepository, products repository.ProductRepository) error {
		existing, err := brands.GetByName(ctx, name)
		if err != nil {
			return err
		}
		if existing != nil {
			return fmt.Errorf("%w: %q", domain.ErrBrandAlreadyExists, name)
		}
		if err := brands.Create(ctx, brand); err != nil {
			return err
		}
		for _, c := range inRegistryOrder(resolved) {
			p := &entity.Product{
				ID:        uuid.New().String(),
				BrandID:   brand.ID,
				Category:  c,
				Price:     resolved[c],
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := products.Create(ctx, p); err != nil {
				return err
			}
		}
		out, err = loadBrand(ctx, products, brand)
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("brand", name).Int("products", len(resolved)).Msg("marca creada")
	uc.publish(ctx, entity.CatalogEvent{Type: entity.EventBrandCreated, Brand: name})
	return out, nil
}

// ReplaceBrandPrices aplica prices sobre una marca existente. ModeMerge actualiza o crea
// las categorías dadas y deja intactas las demás; ModeReplace elimina antes todos los
// productos de la marca. La fila de la marca queda bloqueada durante la transacción.
func (uc *BrandUseCase) ReplaceBrandPrices(ctx context.Context, name string, prices map[string]int64, mode ReplaceMode) (_ *dto.BrandResponse, err error) {
	defer func() { uc.done("replace_brand_prices", err) }()

	if mode != ModeMerge && mode != ModeReplace {
		return nil, fmt.Errorf("%w: modo %q", domain.ErrInvalidInput, mode)
	}
	name, err = normalizeBrandName(name)
	if err != nil {
		return nil, err
	}
	resolved, err := resolvePrices(prices)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	var out *dto.BrandResponse
	err = uc.tx.Run(ctx, func(brands repository.BrandRepository, products repository.ProductRepository) error {
		brand, err := brands.GetByNameForUpdate(ctx, name)
		if err != nil {
			return err
		}
		if brand == nil {
			return fmt.Errorf("%w: %q", domain.ErrBrandNotFound, name)
		}
		if mode == ModeReplace {
			if err := products.DeleteByBrand(ctx, brand.ID); err != nil {
				return err
			}
		}
		for _, c := range inRegistryOrder(resolved) {
			current, err := products.GetByBrandAndCategory(ctx, brand.ID, c)
			if err != nil {
				return err
			}
			if current != nil {
				if err := products.UpdatePrice(ctx, current.ID, resolved[c]); err != nil {
					return err
				}
				continue
			}
			p := &entity.Product{
				ID:        uuid.New().String(),
				BrandID:   brand.ID,
				Category:  c,
				Price:     resolved[c],
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := products.Create(ctx, p); err != nil {
				return err
			}
		}
		out, err = loadBrand(ctx, products, brand)
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("brand", name).Str("mode", string(mode)).Int("products", len(resolved)).Msg("precios de marca actualizados")
	uc.publish(ctx, entity.CatalogEvent{Type: entity.EventBrandPricesReplaced, Brand: name})
	return out, nil
}

// DeleteBrand elimina la marca y en cascada todos sus productos.
func (uc *BrandUseCase) DeleteBrand(ctx context.Context, name string) (err error) {
	defer func() { uc.done("delete_brand", err) }()

	name, err = normalizeBrandName(name)
	if err != nil {
		return err
	}
	err = uc.tx.Run(ctx, func(brands repository.BrandRepository, _ repository.ProductRepository) error {
		brand, err := brands.GetByNameForUpdate(ctx, name)
		if err != nil {
			return err
		}
		if brand == nil {
			return fmt.Errorf("%w: %q", domain.ErrBrandNotFound, name)
		}
		return brands.Delete(ctx, brand.ID)
	})
	if err != nil {
		return err
	}

	uc.log.Info().Str("brand", name).Msg("marca eliminada")
	uc.publish(ctx, entity.CatalogEvent{Type: entity.EventBrandDeleted, Brand: name})
	return nil
}

// ListBrandNames nombres de todas las marcas ordenados.
func (uc *BrandUseCase) ListBrandNames(ctx context.Context) (*dto.BrandListResponse, error) {
	out := &dto.BrandListResponse{Brands: []string{}}
	err := uc.tx.ReadOnly(ctx, func(brands repository.BrandRepository, _ repository.ProductRepository) error {
		list, err := brands.List(ctx)
		if err != nil {
			return err
		}
		for _, b := range list {
			out.Brands = append(out.Brands, b.Name)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetBrand marca con sus precios por nombre visible de categoría.
func (uc *BrandUseCase) GetBrand(ctx context.Context, name string) (*dto.BrandResponse, error) {
	name, err := normalizeBrandName(name)
	if err != nil {
		return nil, err
	}
	var out *dto.BrandResponse
	err = uc.tx.ReadOnly(ctx, func(brands repository.BrandRepository, products repository.ProductRepository) error {
		brand, err := brands.GetByName(ctx, name)
		if err != nil {
			return err
		}
		if brand == nil {
			return fmt.Errorf("%w: %q", domain.ErrBrandNotFound, name)
		}
		out, err = loadBrand(ctx, products, brand)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func loadBrand(ctx context.Context, products repository.ProductRepository, brand *entity.Brand) (*dto.BrandResponse, error) {
	list, err := products.ListByBrand(ctx, brand.ID)
	if err != nil {
		return nil, err
	}
	out := &dto.BrandResponse{Brand: brand.Name, Prices: make(map[string]int64, len(list))}
	for _, p := range list {
		out.Prices[category.DisplayName(p.Category)] = p.Price
	}
	return out, nil
}
