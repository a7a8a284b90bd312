package entity

import "time"

// Product precio de una marca para una categoría. Como máximo uno por (BrandID, Category).
// Price va en la unidad mínima de la moneda y nunca es negativo.
type Product struct {
	ID        string
	BrandID   string
	BrandName string // se completa al leer (JOIN con brands)
	Category  Category
	Price     int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
