package domain

import (
	"errors"
	"fmt"
)

// Clases de error de dominio (sin dependencias externas).
// Los errores específicos envuelven una de estas clases: usar errors.Is para clasificarlos.
var (
	ErrInvalidInput = errors.New("entrada inválida")
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrConflict     = errors.New("conflicto con el estado actual")
)

// Validación.
var (
	ErrUnknownCategory    = fmt.Errorf("%w: categoría desconocida", ErrInvalidInput)
	ErrNegativePrice      = fmt.Errorf("%w: el precio no puede ser negativo", ErrInvalidInput)
	ErrPriceTooHigh       = fmt.Errorf("%w: el precio supera el máximo admitido", ErrInvalidInput)
	ErrBlankBrandName     = fmt.Errorf("%w: el nombre de la marca es obligatorio", ErrInvalidInput)
	ErrDuplicatedCategory = fmt.Errorf("%w: categoría repetida", ErrInvalidInput)
)

// No encontrado. ErrCatalogEmpty y ErrNoFullCoverage son causas distintas del mismo 404.
var (
	ErrBrandNotFound   = fmt.Errorf("%w: marca no encontrada", ErrNotFound)
	ErrProductNotFound = fmt.Errorf("%w: producto no encontrado", ErrNotFound)
	ErrCategoryEmpty   = fmt.Errorf("%w: la categoría no tiene productos", ErrNotFound)
	ErrCatalogEmpty    = fmt.Errorf("%w: no hay marcas en el catálogo", ErrNotFound)
	ErrNoFullCoverage  = fmt.Errorf("%w: ninguna marca cubre todas las categorías", ErrNotFound)
)

// ErrTotalOverflow la suma de precios no cabe en int64. Con el tope de MaxPrice no debería
// ocurrir; aparece sólo con datos cargados sin pasar por la validación.
var ErrTotalOverflow = errors.New("la suma de precios desborda el rango representable")

// Conflicto de unicidad.
var (
	ErrBrandAlreadyExists   = fmt.Errorf("%w: la marca ya existe", ErrConflict)
	ErrProductAlreadyExists = fmt.Errorf("%w: ya existe un producto para la marca y categoría", ErrConflict)
)
