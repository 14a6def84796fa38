package repository

import (
	"context"

	"github.com/jhoicas/stockalert-api/internal/domain/entity"
)

// IDValidator informa si un identificador tiene el formato del almacén
// (UUID en PostgreSQL, ObjectID hexadecimal en MongoDB).
type IDValidator interface {
	ValidID(id string) bool
}

// CompanyRepository define el puerto de lectura para Company (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	// GetByID devuelve nil, nil si la empresa no existe.
	GetByID(ctx context.Context, id string) (*entity.Company, error)
}
