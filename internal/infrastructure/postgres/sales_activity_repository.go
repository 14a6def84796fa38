package postgres

import (
	"context"
	"time"

	"github.com/jhoicas/stockalert-api/internal/domain/repository"
)

var _ repository.SalesActivityRepository = (*SalesActivityRepo)(nil)

// SalesActivityRepo agregaciones de solo lectura sobre sales_activity.
type SalesActivityRepo struct {
	q Querier
}

// NewSalesActivityRepository construye el adaptador.
func NewSalesActivityRepository(q Querier) *SalesActivityRepo {
	return &SalesActivityRepo{q: q}
}

// AggregateByPair total vendido y última venta por (producto, bodega) en [startDate, endDate].
func (r *SalesActivityRepo) AggregateByPair(
	ctx context.Context,
	warehouseIDs []string,
	startDate, endDate time.Time,
) ([]repository.RecentSalesResult, error) {
	query := `
		SELECT product_id, warehouse_id, SUM(quantity_sold)::bigint, MAX(sale_date)
		FROM sales_activity
		WHERE warehouse_id = ANY($1::uuid[])
		  AND sale_date BETWEEN $2 AND $3
		GROUP BY product_id, warehouse_id
		ORDER BY product_id, warehouse_id`
	rows, err := r.q.Query(ctx, query, warehouseIDs, startDate, endDate)
	if err != nil {
		return nil, wrapQueryErr("aggregate recent sales", err)
	}
	defer rows.Close()

	results := make([]repository.RecentSalesResult, 0)
	for rows.Next() {
		var res repository.RecentSalesResult
		if err := rows.Scan(&res.ProductID, &res.WarehouseID, &res.TotalQuantitySold, &res.LastSaleDate); err != nil {
			return nil, wrapQueryErr("scan recent sales", err)
		}
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr("aggregate recent sales", err)
	}
	return results, nil
}

// AggregateDailyVelocity total vendido y días calendario (UTC) distintos con ventas por par.
func (r *SalesActivityRepo) AggregateDailyVelocity(
	ctx context.Context,
	warehouseIDs []string,
	startDate, endDate time.Time,
) ([]repository.SalesVelocityResult, error) {
	query := `
		SELECT product_id, warehouse_id,
		       SUM(quantity_sold)::bigint,
		       COUNT(DISTINCT (sale_date AT TIME ZONE 'UTC')::date)::int
		FROM sales_activity
		WHERE warehouse_id = ANY($1::uuid[])
		  AND sale_date BETWEEN $2 AND $3
		GROUP BY product_id, warehouse_id
		ORDER BY product_id, warehouse_id`
	rows, err := r.q.Query(ctx, query, warehouseIDs, startDate, endDate)
	if err != nil {
		return nil, wrapQueryErr("aggregate sales velocity", err)
	}
	defer rows.Close()

	results := make([]repository.SalesVelocityResult, 0)
	for rows.Next() {
		var res repository.SalesVelocityResult
		if err := rows.Scan(&res.ProductID, &res.WarehouseID, &res.TotalQuantitySold, &res.DaysWithSales); err != nil {
			return nil, wrapQueryErr("scan sales velocity", err)
		}
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr("aggregate sales velocity", err)
	}
	return results, nil
}
