package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/stockalert-api/internal/domain"
	"github.com/jhoicas/stockalert-api/internal/domain/repository"
)

// Querier lo que los repositorios necesitan de un pool o de una tx.
// *pgxpool.Pool y pgx.Tx lo satisfacen.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// UUIDValidator valida ids contra el formato de las llaves primarias (uuid).
type UUIDValidator struct{}

var _ repository.IDValidator = UUIDValidator{}

// ValidID indica si id es un UUID.
func (UUIDValidator) ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// isInvalidText verifica si un parámetro no pudo convertirse al tipo de la columna (22P02),
// p. ej. un id que no es uuid.
func isInvalidText(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "22P02" // invalid_text_representation
	}
	return false
}

// wrapQueryErr envuelve el error con la operación; los errores de conversión de ids
// se traducen a domain.ErrInvalidReference.
func wrapQueryErr(op string, err error) error {
	if isInvalidText(err) {
		return fmt.Errorf("%s: %w: %w", op, domain.ErrInvalidReference, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
