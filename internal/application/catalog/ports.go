package catalog

import (
	"context"

	"github.com/jhoicas/brand-catalog-api/internal/domain/entity"
	"github.com/jhoicas/brand-catalog-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción del almacenamiento, pasando
// repositorios atados a esa tx. Run hace commit sólo si fn no devuelve error; ReadOnly
// ofrece una instantánea consistente de sólo lectura.
type TxRunner interface {
	Run(ctx context.Context, fn repository.TxFunc) error
	ReadOnly(ctx context.Context, fn repository.TxFunc) error
}

// EventPublisher notifica cambios confirmados del catálogo (Redis pub/sub o no-op).
type EventPublisher interface {
	Publish(ctx context.Context, evt entity.CatalogEvent) error
}

// NoopPublisher descarta los eventos.
type NoopPublisher struct{}

// Publish no hace nada.
func (NoopPublisher) Publish(context.Context, entity.CatalogEvent) error { return nil }

// Observer recibe el resultado de cada operación (métricas).
type Observer interface {
	Operation(op string, err error)
}

type noopObserver struct{}

func (noopObserver) Operation(string, error) {}
