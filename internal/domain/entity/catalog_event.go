package entity

import "time"

// Tipos de evento emitidos tras una mutación confirmada del catálogo.
const (
	EventBrandCreated        = "brand.created"
	EventBrandPricesReplaced = "brand.prices_replaced"
	EventBrandDeleted        = "brand.deleted"
	EventProductCreated      = "product.created"
	EventProductUpdated      = "product.updated"
	EventProductDeleted      = "product.deleted"
)

// CatalogEvent notificación de cambio del catálogo (se publica después del Commit).
type CatalogEvent struct {
	Type       string    `json:"type"`
	Brand      string    `json:"brand"`
	ProductID  string    `json:"product_id,omitempty"`
	Category   Category  `json:"category,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
