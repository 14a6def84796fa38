package inventory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockalert-api/internal/domain/entity"
)

// Valores de contacto cuando el producto no tiene proveedor primario.
const (
	NoSupplierName = "No supplier assigned"
	NotAvailable   = "N/A"
)

// SupplierInfo datos de reposición del proveedor primario.
// Assigned es false para el valor de respaldo de NoSupplier.
type SupplierInfo struct {
	Assigned             bool
	ID                   string
	Name                 string
	ContactEmail         string
	ContactPhone         string
	LeadTimeDays         int
	MinimumOrderQuantity int
	UnitCost             decimal.Decimal
}

// NoSupplier valor de respaldo para productos sin vínculo primario.
func NoSupplier() SupplierInfo {
	return SupplierInfo{
		Name:         NoSupplierName,
		ContactEmail: NotAvailable,
		ContactPhone: NotAvailable,
	}
}

// SupplierInfoFromLink convierte un vínculo primario; email/teléfono vacíos se muestran como N/A.
func SupplierInfoFromLink(link entity.ProductSupplier) SupplierInfo {
	return SupplierInfo{
		Assigned:             true,
		ID:                   link.Supplier.ID,
		Name:                 link.Supplier.Name,
		ContactEmail:         orNotAvailable(link.Supplier.ContactEmail),
		ContactPhone:         orNotAvailable(link.Supplier.Phone),
		LeadTimeDays:         link.LeadTimeDays,
		MinimumOrderQuantity: link.MinimumOrderQuantity,
		UnitCost:             link.UnitCost,
	}
}

func orNotAvailable(s string) string {
	if s == "" {
		return NotAvailable
	}
	return s
}

// RecentActivity totales de un par en la ventana de recencia.
type RecentActivity struct {
	TotalQuantitySold int64
	LastSaleDate      time.Time
}

// Alert alerta de stock bajo para un par (producto, bodega). Se construye por
// petición y no se persiste.
type Alert struct {
	ProductID         string
	ProductName       string
	SKU               string
	Category          string
	WarehouseID       string
	WarehouseName     string
	WarehouseLocation string
	WarehouseAddress  string

	AvailableStock   int64
	ReservedQuantity int64
	TotalQuantity    int64
	Threshold        int

	DaysUntilStockout   *int64 // nil = horizonte desconocido (sin ventas en la ventana de velocidad)
	AverageDailySales   decimal.Decimal
	UnitsSoldLast30Days int64
	LastSaleDate        time.Time

	Supplier    SupplierInfo
	LastUpdated time.Time
}

// AlertInput lo que BuildAlert necesita además de la fila de inventario.
type AlertInput struct {
	Threshold int
	Velocity  SalesVelocity
	Recent    RecentActivity
	Supplier  SupplierInfo
}

// BuildAlert aplica la regla de calificación (available <= threshold, inclusive)
// y deriva el horizonte de quiebre. ok es false si el par no califica.
func BuildAlert(snap entity.InventorySnapshot, in AlertInput) (alert Alert, ok bool) {
	available := snap.Level.AvailableStock()
	if available > int64(in.Threshold) {
		return Alert{}, false
	}
	return Alert{
		ProductID:           snap.Product.ID,
		ProductName:         snap.Product.Name,
		SKU:                 snap.Product.SKU,
		Category:            snap.Product.Category,
		WarehouseID:         snap.Warehouse.ID,
		WarehouseName:       snap.Warehouse.Name,
		WarehouseLocation:   snap.Warehouse.Location,
		WarehouseAddress:    snap.Warehouse.Address,
		AvailableStock:      available,
		ReservedQuantity:    snap.Level.ReservedQuantity,
		TotalQuantity:       snap.Level.Quantity,
		Threshold:           in.Threshold,
		DaysUntilStockout:   in.Velocity.DaysUntilStockout(available),
		AverageDailySales:   in.Velocity.AverageDailySales(),
		UnitsSoldLast30Days: in.Recent.TotalQuantitySold,
		LastSaleDate:        in.Recent.LastSaleDate,
		Supplier:            in.Supplier,
		LastUpdated:         snap.Level.UpdatedAt,
	}, true
}
