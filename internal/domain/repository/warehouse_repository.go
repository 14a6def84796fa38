package repository

import (
	"context"

	"github.com/jhoicas/stockalert-api/internal/domain/entity"
)

// WarehouseRepository define el puerto de lectura para Warehouse (DIP).
type WarehouseRepository interface {
	// ListActiveByCompany devuelve solo las bodegas activas de la empresa.
	ListActiveByCompany(ctx context.Context, companyID string) ([]*entity.Warehouse, error)
}
