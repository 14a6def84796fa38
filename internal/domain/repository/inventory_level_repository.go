package repository

import (
	"context"

	"github.com/jhoicas/stockalert-api/internal/domain/entity"
)

// InventoryLevelRepository define el puerto para consultar stock por bodega+producto (DIP).
type InventoryLevelRepository interface {
	// FindSnapshotsByPairs devuelve las filas de inventario de los pares indicados
	// unidas con su producto y su bodega. Los pares sin fila de inventario no aparecen.
	FindSnapshotsByPairs(ctx context.Context, pairs []entity.PairKey) ([]entity.InventorySnapshot, error)
}
