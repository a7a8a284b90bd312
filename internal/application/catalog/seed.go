package catalog

import (
	"context"
	"errors"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/brand-catalog-api/internal/domain"
)

// ReferenceCatalog catálogo de referencia: 9 marcas con las 8 categorías completas.
func ReferenceCatalog() map[string]map[string]int64 {
	row := func(top, outer, bottom, sneakers, bag, hat, socks, accessory int64) map[string]int64 {
		return map[string]int64{
			"상의": top, "아우터": outer, "바지": bottom, "스니커즈": sneakers,
			"가방": bag, "모자": hat, "양말": socks, "액세서리": accessory,
		}
	}
	return map[string]map[string]int64{
		"A": row(11200, 5500, 4200, 9000, 2000, 1700, 1800, 2300),
		"B": row(10500, 5900, 3800, 9100, 2100, 2000, 2000, 2200),
		"C": row(10000, 6200, 3300, 9200, 2200, 1900, 2200, 2100),
		"D": row(10100, 5100, 3000, 9500, 2500, 1500, 2400, 2000),
		"E": row(10700, 5000, 3800, 9900, 2300, 1800, 2100, 2100),
		"F": row(11200, 7200, 4000, 9300, 2100, 1600, 2300, 1900),
		"G": row(10500, 5800, 3900, 9000, 2200, 1700, 2100, 2000),
		"H": row(10800, 6300, 3100, 9700, 2100, 1600, 2000, 2000),
		"I": row(11400, 6700, 3200, 9500, 2400, 1700, 1700, 2400),
	}
}

// SeedResult resumen de una carga.
type SeedResult struct {
	Created int
	Skipped int
}

// Seed crea las marcas de data con hasta parallelism altas concurrentes. Las marcas que
// ya existen se omiten; cualquier otro error cancela el resto de la carga.
func Seed(ctx context.Context, uc *BrandUseCase, data map[string]map[string]int64, parallelism int) (SeedResult, error) {
	if parallelism < 1 {
		parallelism = 1
	}
	var created, skipped atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)
	for name, prices := range data {
		g.Go(func() error {
			_, err := uc.CreateBrand(gctx, name, prices)
			switch {
			case err == nil:
				created.Add(1)
			case errors.Is(err, domain.ErrBrandAlreadyExists):
				skipped.Add(1)
			default:
				return err
			}
			return nil
		})
	}
	err := g.Wait()
	return SeedResult{Created: int(created.Load()), Skipped: int(skipped.Load())}, err
}
