package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/brand-catalog-api/internal/application/catalog"
	"github.com/jhoicas/brand-catalog-api/internal/application/dto"
	"github.com/jhoicas/brand-catalog-api/internal/application/pricing"
	"github.com/jhoicas/brand-catalog-api/internal/infrastructure/memory"
	"github.com/jhoicas/brand-catalog-api/internal/infrastructure/metrics"
	apphttp "github.com/jhoicas/brand-catalog-api/internal/interfaces/http"
	"github.com/jhoicas/brand-catalog-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp arma la API completa sobre un almacenamiento en memoria.
// Con seed=true se carga el catálogo de referencia (marcas A a I).
func buildTestApp(t *testing.T, seed bool, policy catalog.ReplaceMode) (*fiber.App, *metrics.Metrics) {
	t.Helper()
	store := memory.NewStore()
	m := metrics.New("test")
	deps := catalog.Deps{Tx: store, Observer: m}
	brandUC := catalog.NewBrandUseCase(deps)
	if seed {
		_, err := catalog.Seed(context.Background(), brandUC, catalog.ReferenceCatalog(), 4)
		require.NoError(t, err)
	}

	app := apphttp.NewApp("test")
	app.Use(apphttp.RequestObserver(logger.Nop(), m))
	apphttp.Router(app, apphttp.RouterDeps{
		BrandUC:       brandUC,
		ProductUC:     catalog.NewProductUseCase(deps),
		PricingUC:     pricing.NewPricingUseCase(store, m),
		ReplacePolicy: policy,
		Log:           logger.Nop(),
	})
	return app, m
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func price(v int64) *int64 { return &v }

// ──────────────────────────────────────────────────────────────────────────────
// Consultas agregadas
// ──────────────────────────────────────────────────────────────────────────────

func TestCheapestBrands_Catalogo(t *testing.T) {
	app, _ := buildTestApp(t, true, catalog.ModeMerge)

	resp := doJSON(t, app, http.MethodGet, "/api/v1/categories/cheapest-brands", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	out := decode[dto.LowestByCategoryResponse](t, resp)
	assert.Equal(t, int64(34100), out.Total)
	require.Len(t, out.Items, 8)
	assert.Equal(t, dto.CategoryBrandPriceDTO{Category: "상의", Brand: "C", Price: 10000}, out.Items[0])
}

func TestCheapestBrand_NoCapturadoPorName(t *testing.T) {
	app, _ := buildTestApp(t, true, catalog.ModeMerge)

	resp := doJSON(t, app, http.MethodGet, "/api/v1/brands/cheapest", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	out := decode[dto.LowestByBrandResponse](t, resp)
	assert.Equal(t, "D", out.Brand)
	assert.Equal(t, int64(36100), out.Total)
}

func TestPriceStats_CategoriaEnCoreano(t *testing.T) {
	app, _ := buildTestApp(t, true, catalog.ModeMerge)

	resp := doJSON(t, app, http.MethodGet, "/api/v1/categories/"+url.PathEscape("상의")+"/price-stats", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	out := decode[dto.CategoryStatResponse](t, resp)
	assert.Equal(t, "상의", out.Category)
	assert.Equal(t, []dto.BrandPriceDTO{{Brand: "C", Price: 10000}}, out.Lowest)
	assert.Equal(t, []dto.BrandPriceDTO{{Brand: "I", Price: 11400}}, out.Highest)

	resp = doJSON(t, app, http.MethodGet, "/api/v1/categories/"+url.PathEscape("신발")+"/price-stats", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION_ERROR", decode[dto.ErrorResponse](t, resp).Code)
}

func TestAgregaciones_CatalogoVacio(t *testing.T) {
	app, _ := buildTestApp(t, false, catalog.ModeMerge)

	resp := doJSON(t, app, http.MethodGet, "/api/v1/brands/cheapest", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "CATALOG_EMPTY", decode[dto.ErrorResponse](t, resp).Code)

	resp = doJSON(t, app, http.MethodGet, "/api/v1/categories/cheapest-brands", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "CATEGORY_EMPTY", decode[dto.ErrorResponse](t, resp).Code)

	resp = doJSON(t, app, http.MethodPost, "/api/v1/brands", dto.BrandRequest{Brand: "Z", Prices: map[string]int64{"상의": 1}})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/v1/brands/cheapest", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NO_FULL_COVERAGE", decode[dto.ErrorResponse](t, resp).Code)
}

func TestCategories(t *testing.T) {
	app, _ := buildTestApp(t, false, catalog.ModeMerge)
	resp := doJSON(t, app, http.MethodGet, "/api/v1/categories", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	out := decode[dto.CategoryListResponse](t, resp)
	require.Len(t, out.Items, 8)
	assert.Equal(t, "TOP", out.Items[0].Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Marcas
// ──────────────────────────────────────────────────────────────────────────────

func TestBrands_CicloCompleto(t *testing.T) {
	app, _ := buildTestApp(t, false, catalog.ModeMerge)

	resp := doJSON(t, app, http.MethodPost, "/api/v1/brands", dto.BrandRequest{Brand: "X", Prices: map[string]int64{"상의": 1000, "바지": 1500}})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/v1/brands", dto.BrandRequest{Brand: "X"})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "BRAND_ALREADY_EXISTS", decode[dto.ErrorResponse](t, resp).Code)

	// Política por defecto (merge).
	resp = doJSON(t, app, http.MethodPut, "/api/v1/brands/X", dto.BrandPricesRequest{Prices: map[string]int64{"상의": 900}})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, map[string]int64{"상의": 900, "바지": 1500}, decode[dto.BrandResponse](t, resp).Prices)

	// Override por petición.
	resp = doJSON(t, app, http.MethodPut, "/api/v1/brands/X?mode=replace", dto.BrandPricesRequest{Prices: map[string]int64{"모자": 300}})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, map[string]int64{"모자": 300}, decode[dto.BrandResponse](t, resp).Prices)

	resp = doJSON(t, app, http.MethodPut, "/api/v1/brands/X?mode=wipe", dto.BrandPricesRequest{})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/v1/brands", nil)
	assert.Equal(t, []string{"X"}, decode[dto.BrandListResponse](t, resp).Brands)

	resp = doJSON(t, app, http.MethodDelete, "/api/v1/brands/X", nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/v1/brands/X", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "BRAND_NOT_FOUND", decode[dto.ErrorResponse](t, resp).Code)

	resp = doJSON(t, app, http.MethodGet, "/api/v1/products", nil)
	assert.Empty(t, decode[dto.ProductListResponse](t, resp).Items, "la baja de la marca elimina sus productos")
}

func TestBrands_PoliticaReplacePorConfiguracion(t *testing.T) {
	app, _ := buildTestApp(t, false, catalog.ModeReplace)

	resp := doJSON(t, app, http.MethodPost, "/api/v1/brands", dto.BrandRequest{Brand: "X", Prices: map[string]int64{"상의": 1000, "바지": 1500}})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPut, "/api/v1/brands/X", dto.BrandPricesRequest{Prices: map[string]int64{"상의": 900}})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, map[string]int64{"상의": 900}, decode[dto.BrandResponse](t, resp).Prices)
}

func TestBrands_Validacion(t *testing.T) {
	app, _ := buildTestApp(t, false, catalog.ModeMerge)

	resp := doJSON(t, app, http.MethodPost, "/api/v1/brands", dto.BrandRequest{Brand: "X", Prices: map[string]int64{"신발": 1}})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION_ERROR", decode[dto.ErrorResponse](t, resp).Code)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/brands", bytes.NewBufferString("{no json"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", decode[dto.ErrorResponse](t, resp).Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

func TestProducts_CicloCompleto(t *testing.T) {
	app, _ := buildTestApp(t, false, catalog.ModeMerge)
	resp := doJSON(t, app, http.MethodPost, "/api/v1/brands", dto.BrandRequest{Brand: "X"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/v1/products", dto.CreateProductRequest{Brand: "X", Category: "상의", Price: price(1000)})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	created := decode[dto.ProductResponse](t, resp)

	resp = doJSON(t, app, http.MethodPost, "/api/v1/products", dto.CreateProductRequest{Brand: "X", Category: "상의", Price: price(5)})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "PRODUCT_ALREADY_EXISTS", decode[dto.ErrorResponse](t, resp).Code)

	resp = doJSON(t, app, http.MethodPost, "/api/v1/products", dto.CreateProductRequest{Brand: "X", Category: "바지"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, "price obligatorio")

	resp = doJSON(t, app, http.MethodPatch, "/api/v1/products/"+created.ID+"/price", dto.UpdatePriceRequest{Price: price(800)})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(800), decode[dto.ProductResponse](t, resp).Price)

	resp = doJSON(t, app, http.MethodPatch, "/api/v1/products/"+created.ID+"/price", dto.UpdatePriceRequest{Price: price(-1)})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPut, "/api/v1/products/"+created.ID, dto.UpdateProductRequest{Brand: "X", Category: "모자", Price: price(50)})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "모자", decode[dto.ProductResponse](t, resp).Category)

	resp = doJSON(t, app, http.MethodGet, "/api/v1/products/"+created.ID, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(50), decode[dto.ProductResponse](t, resp).Price)

	resp = doJSON(t, app, http.MethodDelete, "/api/v1/products/"+created.ID, nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, "/api/v1/products/"+created.ID, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "PRODUCT_NOT_FOUND", decode[dto.ErrorResponse](t, resp).Code)

	resp = doJSON(t, app, http.MethodGet, "/api/v1/products/no-es-uuid", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestRutaInexistente_JSON(t *testing.T) {
	app, _ := buildTestApp(t, false, catalog.ModeMerge)
	resp := doJSON(t, app, http.MethodGet, "/api/v1/nada", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decode[dto.ErrorResponse](t, resp).Code)
}

func TestMetricas_RegistranPeticiones(t *testing.T) {
	app, m := buildTestApp(t, true, catalog.ModeMerge)
	resp := doJSON(t, app, http.MethodGet, "/api/v1/brands/cheapest", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rec.Body.String()
	assert.Contains(t, body, `test_http_requests_total{method="GET",path="/api/v1/brands/cheapest",status="200"} 1`)
	assert.Contains(t, body, `test_operations_total{operation="cheapest_brand_bundle",result="ok"} 1`)
	assert.Contains(t, body, `test_operations_total{operation="create_brand",result="ok"} 9`)
}
