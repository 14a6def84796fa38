package repository

import (
	"context"

	"github.com/jhoicas/stockalert-api/internal/domain/entity"
)

// SupplierRepository define el puerto de lectura para vínculos producto-proveedor.
type SupplierRepository interface {
	// FindPrimaryByProducts devuelve los vínculos primarios de los productos dados,
	// ordenados por producto y luego por id de proveedor.
	FindPrimaryByProducts(ctx context.Context, productIDs []string) ([]entity.ProductSupplier, error)
}
