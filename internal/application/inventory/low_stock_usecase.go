package inventory

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/stockalert-api/internal/application/dto"
	"github.com/jhoicas/stockalert-api/internal/domain"
	"github.com/jhoicas/stockalert-api/internal/domain/entity"
	"github.com/jhoicas/stockalert-api/internal/domain/inventory"
)

// Nombres de operación reportados al PipelineObserver.
const (
	OperationAlerts  = "alerts"
	OperationSummary = "summary"
	OperationReport  = "report"
)

// Deps dependencias del caso de uso. Observer, Renderer y Now son opcionales.
type Deps struct {
	Repos    Repositories
	Config   Config
	Logger   zerolog.Logger
	Observer PipelineObserver
	Renderer ReportRenderer
	Now      func() time.Time
}

// LowStockAlertUseCase genera alertas de stock bajo priorizadas y su resumen
// a partir de las ventas recientes, el inventario y los proveedores primarios.
type LowStockAlertUseCase struct {
	repos    Repositories
	cfg      Config
	log      zerolog.Logger
	observer PipelineObserver
	renderer ReportRenderer
	now      func() time.Time
}

// NewLowStockAlertUseCase construye el caso de uso.
func NewLowStockAlertUseCase(deps Deps) *LowStockAlertUseCase {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &LowStockAlertUseCase{
		repos:    deps.Repos,
		cfg:      deps.Config,
		log:      deps.Logger,
		observer: deps.Observer,
		renderer: deps.Renderer,
		now:      now,
	}
}

// GenerateAlerts devuelve las alertas de stock bajo de la empresa ordenadas por urgencia.
// Sin bodegas activas o sin ventas recientes responde con lista vacía y Message.
func (uc *LowStockAlertUseCase) GenerateAlerts(
	ctx context.Context,
	companyID string,
	q dto.LowStockAlertQuery,
) (resp *dto.LowStockAlertsResponse, err error) {
	start := time.Now()
	defer func() {
		alerts := 0
		if resp != nil {
			alerts = resp.TotalAlerts
		}
		uc.observe(OperationAlerts, start, alerts, err)
	}()

	if err := uc.validateQuery(companyID, q); err != nil {
		return nil, err
	}

	ctx, cancel := uc.fetchContext(ctx)
	defer cancel()

	company, err := uc.loadCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	thresholds := inventory.NewThresholdTable(company.LowStockThresholds)
	now := uc.now().UTC()

	resp = &dto.LowStockAlertsResponse{
		Alerts:         []dto.LowStockAlertDTO{},
		CompanyName:    company.Name,
		ThresholdsUsed: thresholds,
		FiltersApplied: dto.FiltersAppliedDTO{
			CompanyID:         companyID,
			Limit:             q.Limit,
			IncludeInactive:   q.IncludeInactive,
			ThresholdOverride: overrideLabel(q),
		},
		GeneratedAt: now,
	}

	warehouses, err := uc.repos.Warehouses.ListActiveByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("inventory.GenerateAlerts: bodegas: %w", err)
	}
	if len(warehouses) == 0 {
		resp.Message = MsgNoActiveWarehouses
		return resp, nil
	}

	data, err := uc.fetchAlertData(ctx, warehouseIDs(warehouses), now)
	if err != nil {
		return nil, fmt.Errorf("inventory.GenerateAlerts: %w", err)
	}
	if len(data.recent.pairs) == 0 {
		resp.Message = MsgNoRecentSales
		return resp, nil
	}

	joined := joinSnapshots(data.snapshots, data.recent, q.IncludeInactive)
	alerts := buildAlerts(joined, data, thresholds, q.ThresholdOverride)
	inventory.RankAlerts(alerts)
	limited := inventory.ApplyLimit(alerts, q.Limit)

	resp.TotalAlerts = len(alerts)
	resp.LimitedAlerts = len(limited)
	resp.Alerts = make([]dto.LowStockAlertDTO, 0, len(limited))
	for i := range limited {
		resp.Alerts = append(resp.Alerts, toAlertDTO(&limited[i]))
	}

	uc.log.Debug().
		Str("company_id", companyID).
		Int("warehouses", len(warehouses)).
		Int("pairs", len(data.recent.pairs)).
		Int("joined", len(joined)).
		Int("alerts", resp.TotalAlerts).
		Dur("elapsed", time.Since(start)).
		Msg("alertas de stock bajo generadas")

	return resp, nil
}

// GenerateAlertsReport genera el listado de alertas y lo entrega como documento.
func (uc *LowStockAlertUseCase) GenerateAlertsReport(
	ctx context.Context,
	companyID string,
	q dto.LowStockAlertQuery,
) (doc []byte, err error) {
	if uc.renderer == nil {
		return nil, errors.New("inventory.GenerateAlertsReport: renderer no configurado")
	}
	resp, err := uc.GenerateAlerts(ctx, companyID, q)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	defer func() { uc.observe(OperationReport, start, resp.LimitedAlerts, err) }()

	doc, err = uc.renderer.RenderLowStockReport(ctx, resp)
	if err != nil {
		return nil, fmt.Errorf("inventory.GenerateAlertsReport: %w", err)
	}
	return doc, nil
}

// fetchAlertData lee ventas, inventario y proveedores. La velocidad (7 días) no depende
// de nada y se lanza primero; inventario y proveedores necesitan los pares de la
// agregación de recencia. Si no hay ventas recientes se cancela lo pendiente.
func (uc *LowStockAlertUseCase) fetchAlertData(
	ctx context.Context,
	warehouseIDs []string,
	now time.Time,
) (*alertData, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.parallelism())

	data := &alertData{}

	g.Go(func() error {
		rows, err := uc.repos.Sales.AggregateDailyVelocity(
			gctx, warehouseIDs, now.AddDate(0, 0, -VelocityWindowDays), now)
		if err != nil {
			return fmt.Errorf("velocidad de ventas: %w", err)
		}
		data.velocity = indexVelocity(rows)
		return nil
	})

	rows, err := uc.repos.Sales.AggregateByPair(
		gctx, warehouseIDs, now.AddDate(0, 0, -RecencyWindowDays), now)
	if err != nil {
		// Si gctx se canceló por un fallo de la velocidad, ese es el error de origen.
		if werr := g.Wait(); werr != nil {
			return nil, werr
		}
		return nil, fmt.Errorf("ventas recientes: %w", err)
	}
	data.recent = indexRecentSales(rows)

	if len(data.recent.pairs) == 0 {
		cancel()
		_ = g.Wait()
		return data, nil
	}

	pairs := data.recent.pairs
	productIDs := data.recent.productIDs()

	g.Go(func() error {
		snaps, err := uc.repos.Inventory.FindSnapshotsByPairs(gctx, pairs)
		if err != nil {
			return fmt.Errorf("niveles de inventario: %w", err)
		}
		data.snapshots = snaps
		return nil
	})
	g.Go(func() error {
		links, err := uc.repos.Suppliers.FindPrimaryByProducts(gctx, productIDs)
		if err != nil {
			return fmt.Errorf("proveedores: %w", err)
		}
		data.suppliers = resolvePrimarySuppliers(links)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return data, nil
}

func (uc *LowStockAlertUseCase) validateQuery(companyID string, q dto.LowStockAlertQuery) error {
	if !uc.repos.IDs.ValidID(companyID) {
		return fmt.Errorf("%w: company_id con formato inválido", domain.ErrInvalidInput)
	}
	if !inventory.ValidLimit(q.Limit) {
		return fmt.Errorf("%w: limit debe estar entre %d y %d",
			domain.ErrInvalidInput, inventory.MinAlertLimit, inventory.MaxAlertLimit)
	}
	return nil
}

func (uc *LowStockAlertUseCase) loadCompany(ctx context.Context, companyID string) (*entity.Company, error) {
	company, err := uc.repos.Companies.GetByID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("inventory.loadCompany: %w", err)
	}
	if company == nil {
		return nil, fmt.Errorf("%w: empresa %s", domain.ErrNotFound, companyID)
	}
	return company, nil
}

func (uc *LowStockAlertUseCase) fetchContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if uc.cfg.FetchTimeout > 0 {
		return context.WithTimeout(ctx, uc.cfg.FetchTimeout)
	}
	return context.WithCancel(ctx)
}

func (uc *LowStockAlertUseCase) parallelism() int {
	if uc.cfg.MaxParallelFetches < 1 {
		return 1
	}
	return uc.cfg.MaxParallelFetches
}

func (uc *LowStockAlertUseCase) observe(operation string, start time.Time, alerts int, err error) {
	if uc.observer == nil {
		return
	}
	uc.observer.ObservePipeline(operation, time.Since(start), alerts, err)
}

func warehouseIDs(warehouses []*entity.Warehouse) []string {
	ids := make([]string, 0, len(warehouses))
	for _, w := range warehouses {
		ids = append(ids, w.ID)
	}
	return ids
}

func overrideLabel(q dto.LowStockAlertQuery) string {
	switch {
	case q.ThresholdOverride != nil:
		return strconv.Itoa(*q.ThresholdOverride)
	case q.ThresholdOverrideRaw != "":
		return q.ThresholdOverrideRaw
	default:
		return "none"
	}
}

func toAlertDTO(a *inventory.Alert) dto.LowStockAlertDTO {
	out := dto.LowStockAlertDTO{
		ProductID:           a.ProductID,
		ProductName:         a.ProductName,
		SKU:                 a.SKU,
		WarehouseID:         a.WarehouseID,
		WarehouseName:       a.WarehouseName,
		CurrentStock:        a.AvailableStock,
		Threshold:           a.Threshold,
		DaysUntilStockout:   a.DaysUntilStockout,
		AverageDailySales:   a.AverageDailySales,
		UnitsSoldLast30Days: a.UnitsSoldLast30Days,
		LastSaleDate:        a.LastSaleDate,
		Supplier:            toSupplierDTO(a.Supplier),
		Category:            a.Category,
		ReservedQuantity:    a.ReservedQuantity,
		TotalQuantity:       a.TotalQuantity,
		WarehouseLocation:   a.WarehouseLocation,
		WarehouseAddress:    a.WarehouseAddress,
	}
	if !a.LastUpdated.IsZero() {
		updated := a.LastUpdated
		out.LastUpdated = &updated
	}
	return out
}

func toSupplierDTO(s inventory.SupplierInfo) dto.SupplierDTO {
	out := dto.SupplierDTO{
		Name:         s.Name,
		ContactEmail: s.ContactEmail,
		ContactPhone: s.ContactPhone,
	}
	if !s.Assigned {
		return out
	}
	id := s.ID
	lead := s.LeadTimeDays
	moq := s.MinimumOrderQuantity
	cost := s.UnitCost
	out.ID = &id
	out.LeadTimeDays = &lead
	out.MinimumOrderQuantity = &moq
	out.UnitCost = &cost
	return out
}
