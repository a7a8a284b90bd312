package dto

// CategoryBrandPriceDTO categoría con la marca elegida y su precio.
type CategoryBrandPriceDTO struct {
	Category string `json:"category"`
	Brand    string `json:"brand"`
	Price    int64  `json:"price"`
}

// LowestByCategoryResponse mínimo por categoría y suma total.
type LowestByCategoryResponse struct {
	Items []CategoryBrandPriceDTO `json:"items"`
	Total int64                   `json:"total"`
}

// CategoryPriceDTO precio de una categoría.
type CategoryPriceDTO struct {
	Category string `json:"category"`
	Price    int64  `json:"price"`
}

// LowestByBrandResponse marca única más barata que cubre todas las categorías.
type LowestByBrandResponse struct {
	Brand      string             `json:"brand"`
	Categories []CategoryPriceDTO `json:"categories"`
	Total      int64              `json:"total"`
}

// BrandPriceDTO par marca/precio.
type BrandPriceDTO struct {
	Brand string `json:"brand"`
	Price int64  `json:"price"`
}

// CategoryStatResponse precio mínimo y máximo de una categoría con todas las marcas empatadas.
type CategoryStatResponse struct {
	Category string          `json:"category"`
	Lowest   []BrandPriceDTO `json:"lowest"`
	Highest  []BrandPriceDTO `json:"highest"`
}
