package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Códigos SQLSTATE usados para traducir errores a errores de dominio.
const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
	invalidTextRepr     = "22P02"
)

// Nombres de constraint definidos en schema.sql.
const (
	constraintBrandName      = "brands_name_key"
	constraintProductPair    = "uq_products_brand_category"
	constraintProductBrandFK = "products_brand_id_fkey"
)

func pgErrorCode(err error) (code, constraint string) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName
	}
	return "", ""
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	code, _ := pgErrorCode(err)
	return code == uniqueViolation
}

// isForeignKeyViolation verifica si un error es una violación de llave foránea (23503).
func isForeignKeyViolation(err error) bool {
	code, _ := pgErrorCode(err)
	return code == foreignKeyViolation
}

// isInvalidID un UUID mal formado se trata como fila inexistente.
func isInvalidID(err error) bool {
	code, _ := pgErrorCode(err)
	return code == invalidTextRepr
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
