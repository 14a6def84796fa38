package repository

import (
	"context"
	"time"
)

// RecentSalesResult resultado crudo de la agregación de recencia por par.
type RecentSalesResult struct {
	ProductID         string
	WarehouseID       string
	TotalQuantitySold int64
	LastSaleDate      time.Time
}

// SalesVelocityResult resultado crudo de la agregación de velocidad por par.
type SalesVelocityResult struct {
	ProductID         string
	WarehouseID       string
	TotalQuantitySold int64
	DaysWithSales     int // días calendario (UTC) distintos con al menos una venta
}

// SalesActivityRepository define las agregaciones de solo lectura sobre el registro de ventas.
// Ambas consultas filtran sale_date BETWEEN startDate AND endDate sobre las bodegas dadas.
type SalesActivityRepository interface {
	// AggregateByPair agrupa por (producto, bodega): suma de unidades y última fecha de venta.
	AggregateByPair(
		ctx context.Context,
		warehouseIDs []string,
		startDate, endDate time.Time,
	) ([]RecentSalesResult, error)

	// AggregateDailyVelocity agrupa por (producto, bodega): suma de unidades y
	// número de días distintos con ventas.
	AggregateDailyVelocity(
		ctx context.Context,
		warehouseIDs []string,
		startDate, endDate time.Time,
	) ([]SalesVelocityResult, error)
}
