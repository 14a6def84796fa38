package postgres

import (
	"context"

	"github.com/jhoicas/stockalert-api/internal/domain/entity"
	"github.com/jhoicas/stockalert-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo vínculos producto-proveedor sobre PostgreSQL.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador.
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// FindPrimaryByProducts vínculos primarios con los datos del proveedor.
// unit_cost es NUMERIC y se lee como decimal.Decimal (codec registrado en NewPool).
func (r *SupplierRepo) FindPrimaryByProducts(ctx context.Context, productIDs []string) ([]entity.ProductSupplier, error) {
	if len(productIDs) == 0 {
		return []entity.ProductSupplier{}, nil
	}
	query := `
		SELECT ps.product_id, s.id, s.name, COALESCE(s.contact_email, ''), COALESCE(s.phone, ''),
		       ps.is_primary, COALESCE(ps.lead_time_days, 0), COALESCE(ps.minimum_order_quantity, 0),
		       COALESCE(ps.unit_cost, 0)
		FROM product_suppliers ps
		JOIN suppliers s ON s.id = ps.supplier_id
		WHERE ps.product_id = ANY($1::uuid[]) AND ps.is_primary
		ORDER BY ps.product_id, s.id`
	rows, err := r.q.Query(ctx, query, productIDs)
	if err != nil {
		return nil, wrapQueryErr("find primary suppliers", err)
	}
	defer rows.Close()

	list := make([]entity.ProductSupplier, 0)
	for rows.Next() {
		var l entity.ProductSupplier
		if err := rows.Scan(
			&l.ProductID, &l.Supplier.ID, &l.Supplier.Name, &l.Supplier.ContactEmail, &l.Supplier.Phone,
			&l.IsPrimary, &l.LeadTimeDays, &l.MinimumOrderQuantity, &l.UnitCost,
		); err != nil {
			return nil, wrapQueryErr("scan product supplier", err)
		}
		list = append(list, l)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr("find primary suppliers", err)
	}
	return list, nil
}
