package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/brand-catalog-api/internal/domain"
	"github.com/jhoicas/brand-catalog-api/internal/domain/entity"
)

func TestCreateProduct(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	_, err := f.brands.CreateBrand(ctx, "X", nil)
	require.NoError(t, err)

	p, err := f.products.CreateProduct(ctx, "X", "상의", 1000)
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "X", p.Brand)
	assert.Equal(t, "상의", p.Category)
	assert.Equal(t, "TOP", p.CategoryCode)
	assert.Equal(t, int64(1000), p.Price)

	_, err = f.products.CreateProduct(ctx, "X", "상의", 1)
	assert.ErrorIs(t, err, domain.ErrProductAlreadyExists)
	assert.Equal(t, 1, f.countProducts(t), "el par repetido nunca crea un segundo producto")

	_, err = f.products.CreateProduct(ctx, "Z", "상의", 1)
	assert.ErrorIs(t, err, domain.ErrBrandNotFound)

	_, err = f.products.CreateProduct(ctx, "X", "신발", 1)
	assert.ErrorIs(t, err, domain.ErrUnknownCategory)

	_, err = f.products.CreateProduct(ctx, "X", "바지", -1)
	assert.ErrorIs(t, err, domain.ErrNegativePrice)
}

func TestUpdatePrice(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	_, err := f.brands.CreateBrand(ctx, "X", nil)
	require.NoError(t, err)
	p, err := f.products.CreateProduct(ctx, "X", "상의", 1000)
	require.NoError(t, err)

	out, err := f.products.UpdatePrice(ctx, p.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), out.Price)

	_, err = f.products.UpdatePrice(ctx, p.ID, -1)
	assert.ErrorIs(t, err, domain.ErrNegativePrice)

	_, err = f.products.UpdatePrice(ctx, "no-existe", 10)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestUpdateProduct_MueveDeMarcaYCategoria(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	_, err := f.brands.CreateBrand(ctx, "X", map[string]int64{"상의": 1000})
	require.NoError(t, err)
	_, err = f.brands.CreateBrand(ctx, "Y", map[string]int64{"바지": 2000})
	require.NoError(t, err)
	list, err := f.products.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, list.Items, 2)
	top := list.Items[0]
	require.Equal(t, "X", top.Brand)

	out, err := f.products.UpdateProduct(ctx, top.ID, "Y", "모자", 700)
	require.NoError(t, err)
	assert.Equal(t, "Y", out.Brand)
	assert.Equal(t, "모자", out.Category)

	x, err := f.brands.GetBrand(ctx, "X")
	require.NoError(t, err)
	assert.Empty(t, x.Prices)

	// Mismo par que ya ocupa otro producto.
	_, err = f.products.UpdateProduct(ctx, top.ID, "Y", "바지", 1)
	assert.ErrorIs(t, err, domain.ErrProductAlreadyExists)

	// Mismo producto sobre su propio par: permitido.
	_, err = f.products.UpdateProduct(ctx, top.ID, "Y", "모자", 800)
	assert.NoError(t, err)

	_, err = f.products.UpdateProduct(ctx, top.ID, "Z", "모자", 800)
	assert.ErrorIs(t, err, domain.ErrBrandNotFound)
	_, err = f.products.UpdateProduct(ctx, "nada", "Y", "모자", 800)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestDeleteProductYGetProduct(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	_, err := f.brands.CreateBrand(ctx, "X", nil)
	require.NoError(t, err)
	p, err := f.products.CreateProduct(ctx, "X", "양말", 100)
	require.NoError(t, err)

	got, err := f.products.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)

	require.NoError(t, f.products.DeleteProduct(ctx, p.ID))
	_, err = f.products.GetProduct(ctx, p.ID)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.ErrorIs(t, f.products.DeleteProduct(ctx, p.ID), domain.ErrProductNotFound)

	assert.Equal(t, []string{
		entity.EventBrandCreated, entity.EventProductCreated, entity.EventProductDeleted,
	}, f.events.types())
}

func TestListProducts_Vacio(t *testing.T) {
	out, err := newFixture().products.ListProducts(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, out.Items)
	assert.Empty(t, out.Items)
}
