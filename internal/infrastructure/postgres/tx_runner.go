package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/brand-catalog-api/internal/domain/repository"
)

// TxRunner ejecuta operaciones dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner de transacciones.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repositorios que usan la tx y hace commit
// o rollback según el resultado.
func (r *TxRunner) Run(ctx context.Context, fn repository.TxFunc) error {
	return r.run(ctx, pgx.TxOptions{}, fn)
}

// ReadOnly ejecuta fn sobre una instantánea REPEATABLE READ de sólo lectura: todas las
// consultas de fn ven el mismo estado comprometido.
func (r *TxRunner) ReadOnly(ctx context.Context, fn repository.TxFunc) error {
	return r.run(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}, fn)
}

func (r *TxRunner) run(ctx context.Context, opts pgx.TxOptions, fn repository.TxFunc) error {
	tx, err := r.pool.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewBrandRepository(tx), NewProductRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
