package catalog

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/jhoicas/brand-catalog-api/internal/domain"
	"github.com/jhoicas/brand-catalog-api/internal/domain/category"
	"github.com/jhoicas/brand-catalog-api/internal/domain/entity"
)

func normalizeBrandName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", domain.ErrBlankBrandName
	}
	return name, nil
}

func checkPrice(price int64) error {
	if price < 0 {
		return fmt.Errorf("%w: %d", domain.ErrNegativePrice, price)
	}
	if limit := category.MaxPrice(); price > limit {
		return fmt.Errorf("%w: %d > %d", domain.ErrPriceTooHigh, price, limit)
	}
	return nil
}

// resolvePrices traduce un mapa nombre visible -> precio. Informa juntas todas las
// categorías desconocidas; después rechaza claves equivalentes y precios negativos.
func resolvePrices(prices map[string]int64) (map[entity.Category]int64, error) {
	keys := slices.Sorted(maps.Keys(prices))

	var unknown []string
	for _, k := range keys {
		if _, err := category.Resolve(k); err != nil {
			unknown = append(unknown, strconv.Quote(k))
		}
	}
	if len(unknown) > 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownCategory, strings.Join(unknown, ", "))
	}

	out := make(map[entity.Category]int64, len(prices))
	for _, k := range keys {
		c, _ := category.Resolve(k)
		if _, dup := out[c]; dup {
			return nil, fmt.Errorf("%w: %s", domain.ErrDuplicatedCategory, category.DisplayName(c))
		}
		if err := checkPrice(prices[k]); err != nil {
			return nil, fmt.Errorf("%w (%s)", err, k)
		}
		out[c] = prices[k]
	}
	return out, nil
}

// inRegistryOrder devuelve las categorías de m en el orden fijo del registro.
func inRegistryOrder(m map[entity.Category]int64) []entity.Category {
	out := make([]entity.Category, 0, len(m))
	for _, c := range category.All() {
		if _, ok := m[c]; ok {
			out = append(out, c)
		}
	}
	return out
}
