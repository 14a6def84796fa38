package postgres

import (
	"context"

	"github.com/jhoicas/stockalert-api/internal/domain/entity"
	"github.com/jhoicas/stockalert-api/internal/domain/repository"
)

var _ repository.InventoryLevelRepository = (*InventoryLevelRepo)(nil)

// InventoryLevelRepo implementación de InventoryLevelRepository sobre PostgreSQL.
type InventoryLevelRepo struct {
	q Querier
}

// NewInventoryLevelRepository construye el adaptador. Acepta pool o tx (Querier).
func NewInventoryLevelRepository(q Querier) *InventoryLevelRepo {
	return &InventoryLevelRepo{q: q}
}

// FindSnapshotsByPairs trae las filas de inventario de los pares pedidos unidas con
// producto y bodega. Los pares viajan como dos arreglos paralelos y se cruzan con unnest.
func (r *InventoryLevelRepo) FindSnapshotsByPairs(ctx context.Context, pairs []entity.PairKey) ([]entity.InventorySnapshot, error) {
	if len(pairs) == 0 {
		return []entity.InventorySnapshot{}, nil
	}
	productIDs := make([]string, len(pairs))
	warehouseIDs := make([]string, len(pairs))
	for i, p := range pairs {
		productIDs[i] = p.ProductID
		warehouseIDs[i] = p.WarehouseID
	}

	query := `
		SELECT i.product_id, i.warehouse_id, i.quantity, i.reserved_quantity, i.updated_at,
		       p.id, p.sku, p.name, COALESCE(p.category, ''), p.is_bundle, p.is_active,
		       w.id, w.company_id, w.name, COALESCE(w.location, ''), COALESCE(w.address, ''), w.is_active
		FROM inventory i
		JOIN unnest($1::uuid[], $2::uuid[]) AS k(product_id, warehouse_id)
		  ON k.product_id = i.product_id AND k.warehouse_id = i.warehouse_id
		JOIN products p ON p.id = i.product_id
		JOIN warehouses w ON w.id = i.warehouse_id
		ORDER BY i.product_id, i.warehouse_id`
	rows, err := r.q.Query(ctx, query, productIDs, warehouseIDs)
	if err != nil {
		return nil, wrapQueryErr("find inventory snapshots", err)
	}
	defer rows.Close()

	list := make([]entity.InventorySnapshot, 0, len(pairs))
	for rows.Next() {
		var s entity.InventorySnapshot
		if err := rows.Scan(
			&s.Level.ProductID, &s.Level.WarehouseID, &s.Level.Quantity, &s.Level.ReservedQuantity, &s.Level.UpdatedAt,
			&s.Product.ID, &s.Product.SKU, &s.Product.Name, &s.Product.Category, &s.Product.IsBundle, &s.Product.Active,
			&s.Warehouse.ID, &s.Warehouse.CompanyID, &s.Warehouse.Name, &s.Warehouse.Location, &s.Warehouse.Address, &s.Warehouse.Active,
		); err != nil {
			return nil, wrapQueryErr("scan inventory snapshot", err)
		}
		list = append(list, s)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr("find inventory snapshots", err)
	}
	return list, nil
}
