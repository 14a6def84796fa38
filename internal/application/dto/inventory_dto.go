package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── Query parameters ──────────────────────────────────────────────────────────

// LowStockAlertQuery parámetros ya tipados de GET /api/companies/{id}/alerts/low-stock.
type LowStockAlertQuery struct {
	Limit             int  `query:"limit" validate:"min=1,max=1000"`
	IncludeInactive   bool `query:"include_inactive"`
	ThresholdOverride *int `query:"threshold_override"` // nil = sin override; cualquier entero
	// ThresholdOverrideRaw valor recibido tal cual; se refleja en filters_applied aunque no sea un entero.
	ThresholdOverrideRaw string `query:"-"`
}

// ── Alertas ───────────────────────────────────────────────────────────────────

// SupplierDTO proveedor primario para reposición ("No supplier assigned" si no existe).
type SupplierDTO struct {
	ID                   *string          `json:"id"` // null cuando no hay proveedor primario
	Name                 string           `json:"name"`
	ContactEmail         string           `json:"contact_email"`
	ContactPhone         string           `json:"contact_phone"`
	LeadTimeDays         *int             `json:"lead_time_days,omitempty"`
	MinimumOrderQuantity *int             `json:"minimum_order_quantity,omitempty"`
	UnitCost             *decimal.Decimal `json:"unit_cost,omitempty"`
}

// LowStockAlertDTO alerta de stock bajo para un par producto-bodega.
type LowStockAlertDTO struct {
	ProductID           string          `json:"product_id"`
	ProductName         string          `json:"product_name"`
	SKU                 string          `json:"sku"`
	WarehouseID         string          `json:"warehouse_id"`
	WarehouseName       string          `json:"warehouse_name"`
	CurrentStock        int64           `json:"current_stock"` // disponible = cantidad - reservado (puede ser negativo)
	Threshold           int             `json:"threshold"`
	DaysUntilStockout   *int64          `json:"days_until_stockout"` // null si no hubo ventas en 7 días
	AverageDailySales   decimal.Decimal `json:"average_daily_sales"`
	UnitsSoldLast30Days int64           `json:"units_sold_last_30_days"`
	LastSaleDate        time.Time       `json:"last_sale_date"`
	Supplier            SupplierDTO     `json:"supplier"`
	Category            string          `json:"category"`
	ReservedQuantity    int64           `json:"reserved_quantity"`
	TotalQuantity       int64           `json:"total_quantity"`
	LastUpdated         *time.Time      `json:"last_updated,omitempty"`
	WarehouseLocation   string          `json:"warehouse_location"`
	WarehouseAddress    string          `json:"warehouse_address"`
}

// FiltersAppliedDTO eco de los filtros efectivos de la consulta.
type FiltersAppliedDTO struct {
	CompanyID         string `json:"company_id"`
	Limit             int    `json:"limit"`
	IncludeInactive   bool   `json:"include_inactive"`
	ThresholdOverride string `json:"threshold_override"` // "none" si no se envió
}

// LowStockAlertsResponse respuesta de GET /api/companies/{id}/alerts/low-stock.
// Los resultados vacíos son 200 con Message explicando el motivo.
type LowStockAlertsResponse struct {
	Alerts         []LowStockAlertDTO `json:"alerts"`
	TotalAlerts    int                `json:"total_alerts"`
	LimitedAlerts  int                `json:"limited_alerts"`
	CompanyName    string             `json:"company_name"`
	ThresholdsUsed map[string]int     `json:"thresholds_used"`
	FiltersApplied FiltersAppliedDTO  `json:"filters_applied"`
	GeneratedAt    time.Time          `json:"generated_at"`
	Message        string             `json:"message,omitempty"`
}

// ── Resumen ───────────────────────────────────────────────────────────────────

// WarehouseAlertCountDTO alertas por bodega.
type WarehouseAlertCountDTO struct {
	WarehouseName string `json:"warehouse_name"`
	AlertCount    int    `json:"alert_count"`
}

// CategoryAlertCountDTO alertas por categoría (en minúscula).
type CategoryAlertCountDTO struct {
	Category   string `json:"category"`
	AlertCount int    `json:"alert_count"`
}

// LowStockSummaryDTO conteos agregados de stock bajo de una empresa.
type LowStockSummaryDTO struct {
	TotalWarehouses        int                      `json:"total_warehouses"`
	TotalProductsMonitored int                      `json:"total_products_monitored"`
	LowStockAlerts         int                      `json:"low_stock_alerts"`
	CriticalAlerts         int                      `json:"critical_alerts"`
	ByWarehouse            []WarehouseAlertCountDTO `json:"by_warehouse"`
	ByCategory             []CategoryAlertCountDTO  `json:"by_category"`
}

// LowStockSummaryResponse respuesta de GET /api/companies/{id}/alerts/low-stock/summary.
type LowStockSummaryResponse struct {
	Summary     LowStockSummaryDTO `json:"summary"`
	GeneratedAt time.Time          `json:"generated_at"`
}
