package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/brand-catalog-api/internal/domain"
	"github.com/jhoicas/brand-catalog-api/internal/domain/entity"
	"github.com/jhoicas/brand-catalog-api/internal/domain/repository"
	"github.com/jhoicas/brand-catalog-api/internal/infrastructure/memory"
)

func seedBrand(t *testing.T, s *memory.Store, id, name string, prices map[entity.Category]int64) {
	t.Helper()
	err := s.Run(context.Background(), func(brands repository.BrandRepository, products repository.ProductRepository) error {
		if err := brands.Create(context.Background(), &entity.Brand{ID: id, Name: name}); err != nil {
			return err
		}
		for c, price := range prices {
			p := &entity.Product{ID: id + "-" + string(c), BrandID: id, Category: c, Price: price}
			if err := products.Create(context.Background(), p); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)
}

func TestStore_DeleteBrandEnCascada(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	seedBrand(t, s, "b1", "X", map[entity.Category]int64{entity.CategoryTop: 1000, entity.CategoryBottom: 1500})
	seedBrand(t, s, "b2", "Y", map[entity.Category]int64{entity.CategoryTop: 900})

	require.NoError(t, s.Run(ctx, func(brands repository.BrandRepository, _ repository.ProductRepository) error {
		return brands.Delete(ctx, "b1")
	}))

	require.NoError(t, s.ReadOnly(ctx, func(brands repository.BrandRepository, products repository.ProductRepository) error {
		byBrand, err := products.ListByBrand(ctx, "b1")
		require.NoError(t, err)
		assert.Empty(t, byBrand)

		b, err := brands.GetByName(ctx, "X")
		require.NoError(t, err)
		assert.Nil(t, b)

		p, err := products.GetByBrandAndCategory(ctx, "b1", entity.CategoryTop)
		require.NoError(t, err)
		assert.Nil(t, p)

		all, err := products.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, "Y", all[0].BrandName)
		return nil
	}))
}

func TestStore_UnicidadMarcaYPar(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	seedBrand(t, s, "b1", "X", map[entity.Category]int64{entity.CategoryTop: 1000})

	err := s.Run(ctx, func(brands repository.BrandRepository, _ repository.ProductRepository) error {
		return brands.Create(ctx, &entity.Brand{ID: "b9", Name: "X"})
	})
	assert.ErrorIs(t, err, domain.ErrBrandAlreadyExists)

	err = s.Run(ctx, func(_ repository.BrandRepository, products repository.ProductRepository) error {
		return products.Create(ctx, &entity.Product{ID: "dup", BrandID: "b1", Category: entity.CategoryTop, Price: 1})
	})
	assert.ErrorIs(t, err, domain.ErrProductAlreadyExists)
}

func TestStore_RollbackSiFnFalla(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	boom := errors.New("boom")

	err := s.Run(ctx, func(brands repository.BrandRepository, products repository.ProductRepository) error {
		require.NoError(t, brands.Create(ctx, &entity.Brand{ID: "b1", Name: "X"}))
		require.NoError(t, products.Create(ctx, &entity.Product{ID: "p1", BrandID: "b1", Category: entity.CategoryTop, Price: 1}))
		return boom
	})
	require.ErrorIs(t, err, boom)

	require.NoError(t, s.ReadOnly(ctx, func(brands repository.BrandRepository, products repository.ProductRepository) error {
		list, err := brands.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, list, "nada debe quedar aplicado")
		p, err := products.GetByID(ctx, "p1")
		require.NoError(t, err)
		assert.Nil(t, p)
		return nil
	}))
}

func TestStore_ReadOnlyRechazaEscrituras(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	err := s.ReadOnly(ctx, func(brands repository.BrandRepository, _ repository.ProductRepository) error {
		return brands.Create(ctx, &entity.Brand{ID: "b1", Name: "X"})
	})
	assert.Error(t, err)
}

func TestStore_UpdateMueveIndices(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	seedBrand(t, s, "b1", "X", map[entity.Category]int64{entity.CategoryTop: 1000})
	seedBrand(t, s, "b2", "Y", map[entity.Category]int64{entity.CategoryBag: 300})

	require.NoError(t, s.Run(ctx, func(_ repository.BrandRepository, products repository.ProductRepository) error {
		return products.Update(ctx, &entity.Product{ID: "b1-TOP", BrandID: "b2", Category: entity.CategoryHat, Price: 77})
	}))

	require.NoError(t, s.ReadOnly(ctx, func(_ repository.BrandRepository, products repository.ProductRepository) error {
		old, err := products.GetByBrandAndCategory(ctx, "b1", entity.CategoryTop)
		require.NoError(t, err)
		assert.Nil(t, old)

		moved, err := products.GetByBrandAndCategory(ctx, "b2", entity.CategoryHat)
		require.NoError(t, err)
		require.NotNil(t, moved)
		assert.Equal(t, "Y", moved.BrandName)
		assert.Equal(t, int64(77), moved.Price)

		ofY, err := products.ListByBrand(ctx, "b2")
		require.NoError(t, err)
		require.Len(t, ofY, 2)
		assert.Equal(t, entity.CategoryBag, ofY[0].Category, "orden fijo: BAG antes que HAT")
		return nil
	}))
}

func TestStore_ListByCategoryOrdenadoPorMarca(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	seedBrand(t, s, "b3", "C", map[entity.Category]int64{entity.CategoryTop: 3})
	seedBrand(t, s, "b1", "A", map[entity.Category]int64{entity.CategoryTop: 1})
	seedBrand(t, s, "b2", "B", map[entity.Category]int64{entity.CategoryTop: 2, entity.CategoryBag: 9})

	require.NoError(t, s.ReadOnly(ctx, func(_ repository.BrandRepository, products repository.ProductRepository) error {
		list, err := products.ListByCategory(ctx, entity.CategoryTop)
		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.Equal(t, []string{"A", "B", "C"}, []string{list[0].BrandName, list[1].BrandName, list[2].BrandName})
		return nil
	}))
}
