// Package category es el registro fijo de categorías del catálogo: orden canónico,
// nombres visibles y resolución nombre -> identificador.
package category

import (
	"fmt"
	"math"

	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/brand-catalog-api/internal/domain"
	"github.com/jhoicas/brand-catalog-api/internal/domain/entity"
)

type definition struct {
	id          entity.Category
	displayName string
}

// Orden fijo: define el orden de iteración de las agregaciones.
var table = []definition{
	{entity.CategoryTop, "상의"},
	{entity.CategoryOuter, "아우터"},
	{entity.CategoryBottom, "바지"},
	{entity.CategorySneakers, "스니커즈"},
	{entity.CategoryBag, "가방"},
	{entity.CategoryHat, "모자"},
	{entity.CategorySocks, "양말"},
	{entity.CategoryAccessory, "액세서리"},
}

var (
	byDisplayName = make(map[string]entity.Category, len(table))
	byID          = make(map[entity.Category]string, len(table))
)

func init() {
	for _, d := range table {
		byDisplayName[norm.NFC.String(d.displayName)] = d.id
		byID[d.id] = d.displayName
	}
}

// Resolve convierte un nombre visible en su categoría. La comparación es exacta sobre la
// forma NFC, así "바지" en NFD (macOS) resuelve igual que en NFC.
// Nombre vacío o desconocido -> domain.ErrUnknownCategory.
func Resolve(displayName string) (entity.Category, error) {
	if displayName == "" {
		return "", fmt.Errorf("%w: nombre vacío", domain.ErrUnknownCategory)
	}
	if c, ok := byDisplayName[norm.NFC.String(displayName)]; ok {
		return c, nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnknownCategory, displayName)
}

// FromCode valida un identificador canónico (p. ej. leído de la base de datos).
func FromCode(code string) (entity.Category, error) {
	c := entity.Category(code)
	if _, ok := byID[c]; !ok {
		return "", fmt.Errorf("%w: código %q", domain.ErrUnknownCategory, code)
	}
	return c, nil
}

// All devuelve las categorías en el orden fijo. Cada llamada devuelve una copia.
func All() []entity.Category {
	out := make([]entity.Category, len(table))
	for i, d := range table {
		out[i] = d.id
	}
	return out
}

// Count número de categorías del registro.
func Count() int { return len(table) }

// MaxPrice precio máximo admitido: la suma de un producto por categoría siempre cabe en int64.
func MaxPrice() int64 { return math.MaxInt64 / int64(len(table)) }

// DisplayName nombre visible de la categoría; vacío si no pertenece al registro.
func DisplayName(c entity.Category) string {
	return byID[c]
}

// Valid indica si c pertenece al registro.
func Valid(c entity.Category) bool {
	_, ok := byID[c]
	return ok
}
