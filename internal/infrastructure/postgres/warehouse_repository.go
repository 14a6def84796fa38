package postgres

import (
	"context"

	"github.com/jhoicas/stockalert-api/internal/domain/entity"
	"github.com/jhoicas/stockalert-api/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// WarehouseRepo implementación del puerto WarehouseRepository sobre PostgreSQL.
type WarehouseRepo struct {
	q Querier
}

// NewWarehouseRepository construye el adaptador de persistencia para bodegas.
func NewWarehouseRepository(q Querier) *WarehouseRepo {
	return &WarehouseRepo{q: q}
}

// ListActiveByCompany lista las bodegas activas de la empresa en orden de creación.
func (r *WarehouseRepo) ListActiveByCompany(ctx context.Context, companyID string) ([]*entity.Warehouse, error) {
	query := `
		SELECT id, company_id, name, COALESCE(location, ''), COALESCE(address, ''), is_active
		FROM warehouses
		WHERE company_id = $1 AND is_active
		ORDER BY created_at, id`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, wrapQueryErr("list active warehouses", err)
	}
	defer rows.Close()

	list := make([]*entity.Warehouse, 0)
	for rows.Next() {
		var w entity.Warehouse
		if err := rows.Scan(&w.ID, &w.CompanyID, &w.Name, &w.Location, &w.Address, &w.Active); err != nil {
			return nil, wrapQueryErr("scan warehouse", err)
		}
		list = append(list, &w)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr("list active warehouses", err)
	}
	return list, nil
}
