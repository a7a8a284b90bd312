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

// ProductUseCase altas, cambios de precio, reasignación y bajas de productos individuales.
type ProductUseCase struct {
	base
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(d Deps) *ProductUseCase {
	return &ProductUseCase{base: newBase(d)}
}

// CreateProduct registra el precio de una marca existente para una categoría libre.
func (uc *ProductUseCase) CreateProduct(ctx context.Context, brandName, categoryName string, price int64) (_ *dto.ProductResponse, err error) {
	defer func() { uc.done("create_product", err) }()

	brandName, err = normalizeBrandName(brandName)
	if err != nil {
		return nil, err
	}
	c, err := category.Resolve(categoryName)
	if err != nil {
		return nil, err
	}
	if err := checkPrice(price); err != nil {
		return nil, err
	}

	now := uc.now()
	var created *entity.Product
	err = uc.tx.Run(ctx, func(brands repository.BrandRepository, products repository.ProductRepository) error {
		brand, err := brands.GetByNameForUpdate(ctx, brandName)
		if err != nil {
			return err
		}
		if brand == nil {
			return fmt.Errorf("%w: %q", domain.ErrBrandNotFound, brandName)
		}
		existing, err := products.GetByBrandAndCategory(ctx, brand.ID, c)
		if err != nil {
			return err
		}
		if existing != nil {
			return fmt.Errorf("%w: %q / %s", domain.ErrProductAlreadyExists, brand.Name, category.DisplayName(c))
		}
		p := &entity.Product{
			ID:        uuid.New().String(),
			BrandID:   brand.ID,
			Category:  c,
			Price:     price,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := products.Create(ctx, p); err != nil {
			return err
		}
		p.BrandName = brand.Name
		created = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("brand", created.BrandName).Str("category", string(c)).Int64("price", price).Msg("producto creado")
	uc.publish(ctx, entity.CatalogEvent{Type: entity.EventProductCreated, Brand: created.BrandName, ProductID: created.ID, Category: c})
	return toProductResponse(created), nil
}

// UpdatePrice sobrescribe el precio de un producto.
func (uc *ProductUseCase) UpdatePrice(ctx context.Context, id string, price int64) (_ *dto.ProductResponse, err error) {
	defer func() { uc.done("update_price", err) }()

	if err := checkPrice(price); err != nil {
		return nil, err
	}
	var updated *entity.Product
	err = uc.tx.Run(ctx, func(_ repository.BrandRepository, products repository.ProductRepository) error {
		if err := products.UpdatePrice(ctx, id, price); err != nil {
			return err
		}
		p, err := products.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if p == nil {
			return fmt.Errorf("%w: %s", domain.ErrProductNotFound, id)
		}
		updated = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("product_id", id).Int64("price", price).Msg("precio actualizado")
	uc.publish(ctx, entity.CatalogEvent{Type: entity.EventProductUpdated, Brand: updated.BrandName, ProductID: id, Category: updated.Category})
	return toProductResponse(updated), nil
}

// UpdateProduct reasigna marca, categoría y precio de un producto. El par destino no
// puede pertenecer a otro producto.
func (uc *ProductUseCase) UpdateProduct(ctx context.Context, id, brandName, categoryName string, price int64) (_ *dto.ProductResponse, err error) {
	defer func() { uc.done("update_product", err) }()

	brandName, err = normalizeBrandName(brandName)
	if err != nil {
		return nil, err
	}
	c, err := category.Resolve(categoryName)
	if err != nil {
		return nil, err
	}
	if err := checkPrice(price); err != nil {
		return nil, err
	}

	var updated *entity.Product
	err = uc.tx.Run(ctx, func(brands repository.BrandRepository, products repository.ProductRepository) error {
		current, err := products.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return fmt.Errorf("%w: %s", domain.ErrProductNotFound, id)
		}
		brand, err := brands.GetByNameForUpdate(ctx, brandName)
		if err != nil {
			return err
		}
		if brand == nil {
			return fmt.Errorf("%w: %q", domain.ErrBrandNotFound, brandName)
		}
		owner, err := products.GetByBrandAndCategory(ctx, brand.ID, c)
		if err != nil {
			return err
		}
		if owner != nil && owner.ID != id {
			return fmt.Errorf("%w: %q / %s", domain.ErrProductAlreadyExists, brand.Name, category.DisplayName(c))
		}
		p := &entity.Product{
			ID:        id,
			BrandID:   brand.ID,
			Category:  c,
			Price:     price,
			CreatedAt: current.CreatedAt,
			UpdatedAt: uc.now(),
		}
		if err := products.Update(ctx, p); err != nil {
			return err
		}
		p.BrandName = brand.Name
		updated = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("product_id", id).Str("brand", updated.BrandName).Str("category", string(c)).Msg("producto actualizado")
	uc.publish(ctx, entity.CatalogEvent{Type: entity.EventProductUpdated, Brand: updated.BrandName, ProductID: id, Category: c})
	return toProductResponse(updated), nil
}

// DeleteProduct elimina un producto por ID.
func (uc *ProductUseCase) DeleteProduct(ctx context.Context, id string) (err error) {
	defer func() { uc.done("delete_product", err) }()

	var deleted *entity.Product
	err = uc.tx.Run(ctx, func(_ repository.BrandRepository, products repository.ProductRepository) error {
		p, err := products.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if p == nil {
			return fmt.Errorf("%w: %s", domain.ErrProductNotFound, id)
		}
		deleted = p
		return products.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	uc.log.Info().Str("product_id", id).Str("brand", deleted.BrandName).Msg("producto eliminado")
	uc.publish(ctx, entity.CatalogEvent{Type: entity.EventProductDeleted, Brand: deleted.BrandName, ProductID: id, Category: deleted.Category})
	return nil
}

// GetProduct obtiene un producto por ID.
func (uc *ProductUseCase) GetProduct(ctx context.Context, id string) (*dto.ProductResponse, error) {
	var out *dto.ProductResponse
	err := uc.tx.ReadOnly(ctx, func(_ repository.BrandRepository, products repository.ProductRepository) error {
		p, err := products.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if p == nil {
			return fmt.Errorf("%w: %s", domain.ErrProductNotFound, id)
		}
		out = toProductResponse(p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListProducts todos los productos ordenados por marca y categoría.
func (uc *ProductUseCase) ListProducts(ctx context.Context) (*dto.ProductListResponse, error) {
	out := &dto.ProductListResponse{Items: []dto.ProductResponse{}}
	err := uc.tx.ReadOnly(ctx, func(_ repository.BrandRepository, products repository.ProductRepository) error {
		list, err := products.ListAll(ctx)
		if err != nil {
			return err
		}
		for _, p := range list {
			out.Items = append(out.Items, *toProductResponse(p))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:           p.ID,
		Brand:        p.BrandName,
		Category:     category.DisplayName(p.Category),
		CategoryCode: string(p.Category),
		Price:        p.Price,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
