package dto

import "time"

// BrandRequest alta de marca con sus precios. Las claves de Prices son nombres visibles
// de categoría (상의, 바지, ...).
type BrandRequest struct {
	Brand  string           `json:"brand" example:"A"`
	Prices map[string]int64 `json:"prices"`
}

// BrandPricesRequest precios a aplicar sobre una marca existente (merge o replace).
type BrandPricesRequest struct {
	Prices map[string]int64 `json:"prices"`
}

// BrandResponse marca con sus precios por nombre visible de categoría.
type BrandResponse struct {
	Brand  string           `json:"brand"`
	Prices map[string]int64 `json:"prices"`
}

// BrandListResponse nombres de marca ordenados.
type BrandListResponse struct {
	Brands []string `json:"brands"`
}

// CreateProductRequest alta de un producto individual.
type CreateProductRequest struct {
	Brand    string `json:"brand" example:"A"`
	Category string `json:"category" example:"상의"`
	Price    *int64 `json:"price" example:"11200"`
}

// UpdateProductRequest reasigna marca, categoría y precio (todos obligatorios).
type UpdateProductRequest struct {
	Brand    string `json:"brand"`
	Category string `json:"category"`
	Price    *int64 `json:"price"`
}

// UpdatePriceRequest nuevo precio de un producto.
type UpdatePriceRequest struct {
	Price *int64 `json:"price" example:"9900"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID           string    `json:"id"`
	Brand        string    `json:"brand"`
	Category     string    `json:"category"`
	CategoryCode string    `json:"category_code"`
	Price        int64     `json:"price"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ProductListResponse listado completo de productos (marca, luego categoría).
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
}

// CategoryResponse entrada del registro de categorías.
type CategoryResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// CategoryListResponse registro completo en su orden fijo.
type CategoryListResponse struct {
	Items []CategoryResponse `json:"items"`
}
