// Package pricing contiene los cálculos de agregación de precios del catálogo.
// Son funciones puras sobre una instantánea de productos: no acceden al almacenamiento.
//
// Desempates (deterministas, independientes del orden del almacenamiento):
//   - mínimo por categoría: el menor nombre de marca (orden de bytes);
//   - mejor marca completa: a igual total, el menor nombre de marca;
//   - listas de extremos: todas las marcas empatadas, ordenadas por nombre.
package pricing

import (
	"fmt"
	"math"
	"sort"

	"github.com/jhoicas/brand-catalog-api/internal/domain"
	"github.com/jhoicas/brand-catalog-api/internal/domain/entity"
)

// CategoryPick producto elegido para una categoría.
type CategoryPick struct {
	Category entity.Category
	Brand    string
	Price    int64
}

// CheapestByCategory resultado de CheapestPerCategory.
type CheapestByCategory struct {
	Items []CategoryPick
	Total int64
}

// CategoryPrice precio de una categoría dentro de un paquete de marca.
type CategoryPrice struct {
	Category entity.Category
	Price    int64
}

// BrandBundle la marca que cubre todas las categorías al menor total.
type BrandBundle struct {
	Brand string
	Items []CategoryPrice
	Total int64
}

// BrandPrice par (marca, precio).
type BrandPrice struct {
	Brand string
	Price int64
}

// CategoryStat extremos de precio de una categoría con todas las marcas empatadas.
type CategoryStat struct {
	Category entity.Category
	Lowest   []BrandPrice
	Highest  []BrandPrice
}

// cheaper define el orden total usado para elegir un único producto.
func cheaper(price int64, brand string, than *CategoryPick) bool {
	if price != than.Price {
		return price < than.Price
	}
	return brand < than.Brand
}

// addPrice suma precios no negativos; ok es false si el resultado desborda int64.
func addPrice(total, price int64) (int64, bool) {
	if price > math.MaxInt64-total {
		return total, false
	}
	return total + price, true
}

// CheapestPerCategory elige, para cada categoría en el orden dado, el producto más barato.
// Una categoría sin productos aborta todo el cálculo con domain.ErrCategoryEmpty.
// Una sola pasada agrupada sobre products: O(P + C).
func CheapestPerCategory(categories []entity.Category, products []*entity.Product) (*CheapestByCategory, error) {
	best := make(map[entity.Category]*CategoryPick, len(categories))
	for _, p := range products {
		cur, ok := best[p.Category]
		if !ok {
			best[p.Category] = &CategoryPick{Category: p.Category, Brand: p.BrandName, Price: p.Price}
			continue
		}
		if cheaper(p.Price, p.BrandName, cur) {
			cur.Brand, cur.Price = p.BrandName, p.Price
		}
	}

	out := &CheapestByCategory{Items: make([]CategoryPick, 0, len(categories))}
	for _, c := range categories {
		pick, ok := best[c]
		if !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrCategoryEmpty, c)
		}
		out.Items = append(out.Items, *pick)
		total, ok := addPrice(out.Total, pick.Price)
		if !ok {
			return nil, fmt.Errorf("%w: mínimos por categoría", domain.ErrTotalOverflow)
		}
		out.Total = total
	}
	return out, nil
}

type brandGroup struct {
	name   string
	prices map[entity.Category]int64
}

// CheapestFullCoverageBrand busca la marca que tiene producto en todas las categorías con
// el menor total. brandCount distingue catálogo vacío (domain.ErrCatalogEmpty) de catálogo
// sin cobertura completa (domain.ErrNoFullCoverage).
// Si una marca tuviera dos productos en la misma categoría se conserva el más barato.
// Una marca cuyo total desborda int64 nunca gana; si sólo hay marcas así ->
// domain.ErrTotalOverflow.
func CheapestFullCoverageBrand(categories []entity.Category, brandCount int, products []*entity.Product) (*BrandBundle, error) {
	if brandCount == 0 && len(products) == 0 {
		return nil, domain.ErrCatalogEmpty
	}

	wanted := make(map[entity.Category]struct{}, len(categories))
	for _, c := range categories {
		wanted[c] = struct{}{}
	}

	groups := make(map[string]*brandGroup)
	for _, p := range products {
		if _, ok := wanted[p.Category]; !ok {
			continue
		}
		g, ok := groups[p.BrandID]
		if !ok {
			g = &brandGroup{name: p.BrandName, prices: make(map[entity.Category]int64, len(categories))}
			groups[p.BrandID] = g
		}
		if cur, dup := g.prices[p.Category]; !dup || p.Price < cur {
			g.prices[p.Category] = p.Price
		}
	}

	var winner *brandGroup
	var winnerTotal int64
	overflowed := false
	for _, g := range groups {
		if len(g.prices) != len(wanted) {
			continue
		}
		total, ok := bundleTotal(g.prices)
		if !ok {
			overflowed = true
			continue
		}
		if winner == nil || total < winnerTotal || (total == winnerTotal && g.name < winner.name) {
			winner, winnerTotal = g, total
		}
	}
	if winner == nil {
		if overflowed {
			return nil, fmt.Errorf("%w: paquetes de marca", domain.ErrTotalOverflow)
		}
		return nil, domain.ErrNoFullCoverage
	}

	bundle := &BrandBundle{Brand: winner.name, Total: winnerTotal, Items: make([]CategoryPrice, 0, len(categories))}
	for _, c := range categories {
		bundle.Items = append(bundle.Items, CategoryPrice{Category: c, Price: winner.prices[c]})
	}
	return bundle, nil
}

func bundleTotal(prices map[entity.Category]int64) (int64, bool) {
	var total int64
	for _, price := range prices {
		var ok bool
		if total, ok = addPrice(total, price); !ok {
			return 0, false
		}
	}
	return total, true
}

// Stat calcula mínimo y máximo de la categoría c y devuelve todas las marcas en cada
// extremo. Con un único producto ambas listas son iguales. Sin productos ->
// domain.ErrCategoryEmpty. Los productos de otras categorías se ignoran.
func Stat(c entity.Category, products []*entity.Product) (*CategoryStat, error) {
	var inCategory []*entity.Product
	for _, p := range products {
		if p.Category == c {
			inCategory = append(inCategory, p)
		}
	}
	if len(inCategory) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrCategoryEmpty, c)
	}

	minPrice, maxPrice := inCategory[0].Price, inCategory[0].Price
	for _, p := range inCategory[1:] {
		if p.Price < minPrice {
			minPrice = p.Price
		}
		if p.Price > maxPrice {
			maxPrice = p.Price
		}
	}

	return &CategoryStat{
		Category: c,
		Lowest:   pricedAt(inCategory, minPrice),
		Highest:  pricedAt(inCategory, maxPrice),
	}, nil
}

func pricedAt(products []*entity.Product, price int64) []BrandPrice {
	var out []BrandPrice
	for _, p := range products {
		if p.Price == price {
			out = append(out, BrandPrice{Brand: p.BrandName, Price: p.Price})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Brand < out[j].Brand })
	return out
}
