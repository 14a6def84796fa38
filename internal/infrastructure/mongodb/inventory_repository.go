package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/stockalert-api/internal/domain/entity"
	"github.com/jhoicas/stockalert-api/internal/domain/repository"
)

var (
	_ repository.InventoryLevelRepository = (*InventoryRepo)(nil)
	_ repository.SalesActivityRepository  = (*SalesActivityRepo)(nil)
	_ repository.SupplierRepository       = (*SupplierRepo)(nil)
)

// InventoryRepo niveles de inventario sobre MongoDB.
type InventoryRepo struct {
	col *mongo.Collection
}

// NewInventoryRepository construye el adaptador.
func NewInventoryRepository(db *mongo.Database) *InventoryRepo {
	return &InventoryRepo{col: db.Collection(colInventories)}
}

// FindSnapshotsByPairs filas de inventario de los pares con producto y bodega unidos.
func (r *InventoryRepo) FindSnapshotsByPairs(ctx context.Context, pairs []entity.PairKey) ([]entity.InventorySnapshot, error) {
	if len(pairs) == 0 {
		return []entity.InventorySnapshot{}, nil
	}
	ids := make([]pairID, 0, len(pairs))
	for _, p := range pairs {
		pid, err := objectID(p.ProductID)
		if err != nil {
			return nil, err
		}
		wid, err := objectID(p.WarehouseID)
		if err != nil {
			return nil, err
		}
		ids = append(ids, pairID{ProductID: pid, WarehouseID: wid})
	}

	cur, err := r.col.Aggregate(ctx, snapshotsPipeline(ids))
	if err != nil {
		return nil, fmt.Errorf("find inventory snapshots: %w", err)
	}
	var docs []snapshotDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode inventory snapshots: %w", err)
	}

	list := make([]entity.InventorySnapshot, 0, len(docs))
	for _, d := range docs {
		list = append(list, d.toEntity())
	}
	return list, nil
}

// SalesActivityRepo agregaciones sobre salesactivities.
type SalesActivityRepo struct {
	col *mongo.Collection
}

// NewSalesActivityRepository construye el adaptador.
func NewSalesActivityRepository(db *mongo.Database) *SalesActivityRepo {
	return &SalesActivityRepo{col: db.Collection(colSalesActivities)}
}

// AggregateByPair total vendido y última venta por par.
func (r *SalesActivityRepo) AggregateByPair(
	ctx context.Context,
	warehouseIDs []string,
	startDate, endDate time.Time,
) ([]repository.RecentSalesResult, error) {
	oids, err := objectIDs(warehouseIDs)
	if err != nil {
		return nil, err
	}
	cur, err := r.col.Aggregate(ctx, recentSalesPipeline(oids, startDate, endDate))
	if err != nil {
		return nil, fmt.Errorf("aggregate recent sales: %w", err)
	}
	var docs []recentSalesDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode recent sales: %w", err)
	}

	results := make([]repository.RecentSalesResult, 0, len(docs))
	for _, d := range docs {
		results = append(results, repository.RecentSalesResult{
			ProductID:         d.ID.ProductID.Hex(),
			WarehouseID:       d.ID.WarehouseID.Hex(),
			TotalQuantitySold: d.TotalQuantitySold,
			LastSaleDate:      d.LastSaleDate,
		})
	}
	return results, nil
}

// AggregateDailyVelocity total vendido y días UTC distintos con ventas por par.
func (r *SalesActivityRepo) AggregateDailyVelocity(
	ctx context.Context,
	warehouseIDs []string,
	startDate, endDate time.Time,
) ([]repository.SalesVelocityResult, error) {
	oids, err := objectIDs(warehouseIDs)
	if err != nil {
		return nil, err
	}
	cur, err := r.col.Aggregate(ctx, velocityPipeline(oids, startDate, endDate))
	if err != nil {
		return nil, fmt.Errorf("aggregate sales velocity: %w", err)
	}
	var docs []velocityDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode sales velocity: %w", err)
	}

	results := make([]repository.SalesVelocityResult, 0, len(docs))
	for _, d := range docs {
		results = append(results, repository.SalesVelocityResult{
			ProductID:         d.ID.ProductID.Hex(),
			WarehouseID:       d.ID.WarehouseID.Hex(),
			TotalQuantitySold: d.TotalQuantitySold,
			DaysWithSales:     d.DaysWithSales,
		})
	}
	return results, nil
}

// SupplierRepo vínculos producto-proveedor sobre MongoDB.
type SupplierRepo struct {
	col *mongo.Collection
}

// NewSupplierRepository construye el adaptador.
func NewSupplierRepository(db *mongo.Database) *SupplierRepo {
	return &SupplierRepo{col: db.Collection(colProductSuppliers)}
}

// FindPrimaryByProducts vínculos primarios ordenados por producto y proveedor.
func (r *SupplierRepo) FindPrimaryByProducts(ctx context.Context, productIDs []string) ([]entity.ProductSupplier, error) {
	if len(productIDs) == 0 {
		return []entity.ProductSupplier{}, nil
	}
	oids, err := objectIDs(productIDs)
	if err != nil {
		return nil, err
	}
	cur, err := r.col.Aggregate(ctx, primarySuppliersPipeline(oids))
	if err != nil {
		return nil, fmt.Errorf("find primary suppliers: %w", err)
	}
	var docs []productSupplierDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode primary suppliers: %w", err)
	}

	list := make([]entity.ProductSupplier, 0, len(docs))
	for _, d := range docs {
		link, err := d.toEntity()
		if err != nil {
			return nil, fmt.Errorf("product supplier %s: %w", d.ProductID.Hex(), err)
		}
		list = append(list, link)
	}
	return list, nil
}
