// Package catalog contiene los casos de uso que modifican el catálogo de marcas y
// productos. Cada operación corre en una única transacción del almacenamiento y, tras el
// commit, publica un evento de cambio.
package catalog

import (
	"context"
	"time"

	"github.com/jhoicas/brand-catalog-api/internal/domain/entity"
	"github.com/jhoicas/brand-catalog-api/pkg/logger"
)

// Deps dependencias compartidas por los casos de uso del catálogo.
// Events, Log y Observer son opcionales.
type Deps struct {
	Tx       TxRunner
	Events   EventPublisher
	Log      *logger.Logger
	Observer Observer
}

type base struct {
	tx     TxRunner
	events EventPublisher
	log    *logger.Logger
	obs    Observer
	now    func() time.Time
}

func newBase(d Deps) base {
	b := base{tx: d.Tx, events: d.Events, log: d.Log, obs: d.Observer, now: time.Now}
	if b.events == nil {
		b.events = NoopPublisher{}
	}
	if b.log == nil {
		b.log = logger.Nop()
	}
	if b.obs == nil {
		b.obs = noopObserver{}
	}
	return b
}

// publish se llama sólo después del commit: un fallo se registra y no deshace la mutación.
func (b base) publish(ctx context.Context, evt entity.CatalogEvent) {
	evt.OccurredAt = b.now().UTC()
	if err := b.events.Publish(ctx, evt); err != nil {
		b.log.Warn().Err(err).Str("event", evt.Type).Str("brand", evt.Brand).Msg("no se pudo publicar el evento del catálogo")
	}
}

func (b base) done(op string, err error) {
	b.obs.Operation(op, err)
	if err != nil {
		b.log.Debug().Err(err).Str("op", op).Msg("operación rechazada")
	}
}
