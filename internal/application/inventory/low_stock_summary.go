package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/stockalert-api/internal/application/dto"
	"github.com/jhoicas/stockalert-api/internal/domain"
	"github.com/jhoicas/stockalert-api/internal/domain/entity"
	"github.com/jhoicas/stockalert-api/internal/domain/inventory"
)

// GenerateSummary cuenta alertas de stock bajo y críticas de la empresa, por bodega y
// por categoría. Usa los mismos umbrales y la misma unión que GenerateAlerts, sin
// override y sin productos inactivos.
func (uc *LowStockAlertUseCase) GenerateSummary(
	ctx context.Context,
	companyID string,
) (resp *dto.LowStockSummaryResponse, err error) {
	start := time.Now()
	defer func() {
		alerts := 0
		if resp != nil {
			alerts = resp.Summary.LowStockAlerts
		}
		uc.observe(OperationSummary, start, alerts, err)
	}()

	if !uc.repos.IDs.ValidID(companyID) {
		return nil, fmt.Errorf("%w: company_id con formato inválido", domain.ErrInvalidInput)
	}
	ctx, cancel := uc.fetchContext(ctx)
	defer cancel()

	company, err := uc.loadCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	thresholds := inventory.NewThresholdTable(company.LowStockThresholds)
	now := uc.now().UTC()

	resp = &dto.LowStockSummaryResponse{
		Summary: dto.LowStockSummaryDTO{
			ByWarehouse: []dto.WarehouseAlertCountDTO{},
			ByCategory:  []dto.CategoryAlertCountDTO{},
		},
		GeneratedAt: now,
	}

	warehouses, err := uc.repos.Warehouses.ListActiveByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("inventory.GenerateSummary: bodegas: %w", err)
	}
	resp.Summary.TotalWarehouses = len(warehouses)
	if len(warehouses) == 0 {
		return resp, nil
	}

	rows, err := uc.repos.Sales.AggregateByPair(
		ctx, warehouseIDs(warehouses), now.AddDate(0, 0, -RecencyWindowDays), now)
	if err != nil {
		return nil, fmt.Errorf("inventory.GenerateSummary: ventas recientes: %w", err)
	}
	recent := indexRecentSales(rows)
	resp.Summary.TotalProductsMonitored = len(recent.pairs)
	if len(recent.pairs) == 0 {
		return resp, nil
	}

	snaps, err := uc.repos.Inventory.FindSnapshotsByPairs(ctx, recent.pairs)
	if err != nil {
		return nil, fmt.Errorf("inventory.GenerateSummary: niveles de inventario: %w", err)
	}

	summarize(&resp.Summary, joinSnapshots(snaps, recent, false), thresholds)

	uc.log.Debug().
		Str("company_id", companyID).
		Int("warehouses", len(warehouses)).
		Int("pairs", len(recent.pairs)).
		Int("low_stock", resp.Summary.LowStockAlerts).
		Int("critical", resp.Summary.CriticalAlerts).
		Dur("elapsed", time.Since(start)).
		Msg("resumen de stock bajo generado")

	return resp, nil
}

// summarize acumula los conteos de las filas que califican como alerta.
func summarize(out *dto.LowStockSummaryDTO, joined []entity.InventorySnapshot, thresholds inventory.ThresholdTable) {
	byWarehouse := inventory.NewOrderedCounter()
	byCategory := inventory.NewOrderedCounter()

	for _, snap := range joined {
		threshold := thresholds.Resolve(snap.Product.Category, nil)
		available := snap.Level.AvailableStock()
		if available > int64(threshold) {
			continue
		}
		out.LowStockAlerts++
		if inventory.IsCritical(available, threshold) {
			out.CriticalAlerts++
		}
		byWarehouse.Inc(snap.Warehouse.Name)
		byCategory.Inc(strings.ToLower(snap.Product.Category))
	}

	for _, e := range byWarehouse.Sorted() {
		out.ByWarehouse = append(out.ByWarehouse, dto.WarehouseAlertCountDTO{WarehouseName: e.Key, AlertCount: e.Count})
	}
	for _, e := range byCategory.Sorted() {
		out.ByCategory = append(out.ByCategory, dto.CategoryAlertCountDTO{Category: e.Key, AlertCount: e.Count})
	}
}
