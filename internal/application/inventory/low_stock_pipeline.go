package inventory

import (
	"github.com/jhoicas/stockalert-api/internal/domain/entity"
	"github.com/jhoicas/stockalert-api/internal/domain/inventory"
	"github.com/jhoicas/stockalert-api/internal/domain/repository"
)

// recentActivity resultado de la agregación de recencia indexado por par.
// pairs conserva el orden en que llegó cada par.
type recentActivity struct {
	byPair map[entity.PairKey]inventory.RecentActivity
	pairs  []entity.PairKey
}

func indexRecentSales(rows []repository.RecentSalesResult) recentActivity {
	out := recentActivity{
		byPair: make(map[entity.PairKey]inventory.RecentActivity, len(rows)),
		pairs:  make([]entity.PairKey, 0, len(rows)),
	}
	for _, r := range rows {
		key := entity.PairKey{ProductID: r.ProductID, WarehouseID: r.WarehouseID}
		prev, seen := out.byPair[key]
		if !seen {
			out.pairs = append(out.pairs, key)
			out.byPair[key] = inventory.RecentActivity{
				TotalQuantitySold: r.TotalQuantitySold,
				LastSaleDate:      r.LastSaleDate,
			}
			continue
		}
		// Un adaptador que devuelva el mismo par en varias filas se consolida aquí.
		prev.TotalQuantitySold += r.TotalQuantitySold
		if r.LastSaleDate.After(prev.LastSaleDate) {
			prev.LastSaleDate = r.LastSaleDate
		}
		out.byPair[key] = prev
	}
	return out
}

// productIDs ids de producto distintos en orden de aparición.
func (r recentActivity) productIDs() []string {
	seen := make(map[string]struct{}, len(r.pairs))
	ids := make([]string, 0, len(r.pairs))
	for _, p := range r.pairs {
		if _, ok := seen[p.ProductID]; ok {
			continue
		}
		seen[p.ProductID] = struct{}{}
		ids = append(ids, p.ProductID)
	}
	return ids
}

func indexVelocity(rows []repository.SalesVelocityResult) map[entity.PairKey]inventory.SalesVelocity {
	out := make(map[entity.PairKey]inventory.SalesVelocity, len(rows))
	for _, r := range rows {
		key := entity.PairKey{ProductID: r.ProductID, WarehouseID: r.WarehouseID}
		v := out[key]
		v.TotalQuantity += r.TotalQuantitySold
		v.DaysWithSales += r.DaysWithSales
		out[key] = v
	}
	return out
}

// joinSnapshots deja una fila por par con actividad reciente. Descarta productos
// compuestos (bundles), productos inactivos salvo includeInactive y filas de
// pares que no estaban en la agregación de recencia.
func joinSnapshots(
	snapshots []entity.InventorySnapshot,
	recent recentActivity,
	includeInactive bool,
) []entity.InventorySnapshot {
	seen := make(map[entity.PairKey]struct{}, len(snapshots))
	out := make([]entity.InventorySnapshot, 0, len(snapshots))
	for _, s := range snapshots {
		key := s.Level.Key()
		if _, ok := recent.byPair[key]; !ok {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		if s.Product.IsBundle {
			continue
		}
		if !s.Product.Active && !includeInactive {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}
	return out
}

// supplierDirectory proveedor primario por producto.
type supplierDirectory map[string]inventory.SupplierInfo

// resolvePrimarySuppliers elige un proveedor primario por producto. Con varios
// vínculos primarios gana el de menor id de proveedor, sin depender del orden del adaptador.
func resolvePrimarySuppliers(links []entity.ProductSupplier) supplierDirectory {
	chosen := make(map[string]entity.ProductSupplier, len(links))
	for _, l := range links {
		if !l.IsPrimary {
			continue
		}
		cur, ok := chosen[l.ProductID]
		if !ok || l.Supplier.ID < cur.Supplier.ID {
			chosen[l.ProductID] = l
		}
	}
	dir := make(supplierDirectory, len(chosen))
	for productID, l := range chosen {
		dir[productID] = inventory.SupplierInfoFromLink(l)
	}
	return dir
}

// lookup devuelve el proveedor del producto o el valor "No supplier assigned".
func (d supplierDirectory) lookup(productID string) inventory.SupplierInfo {
	if s, ok := d[productID]; ok {
		return s
	}
	return inventory.NoSupplier()
}

// alertData insumos ya indexados para construir alertas.
type alertData struct {
	recent    recentActivity
	velocity  map[entity.PairKey]inventory.SalesVelocity
	snapshots []entity.InventorySnapshot
	suppliers supplierDirectory
}

// buildAlerts evalúa cada fila unida contra su umbral y devuelve las que califican,
// en el orden de las filas.
func buildAlerts(
	joined []entity.InventorySnapshot,
	data *alertData,
	thresholds inventory.ThresholdTable,
	override *int,
) []inventory.Alert {
	alerts := make([]inventory.Alert, 0, len(joined))
	for _, snap := range joined {
		key := snap.Level.Key()
		alert, ok := inventory.BuildAlert(snap, inventory.AlertInput{
			Threshold: thresholds.Resolve(snap.Product.Category, override),
			Velocity:  data.velocity[key],
			Recent:    data.recent.byPair[key],
			Supplier:  data.suppliers.lookup(snap.Product.ID),
		})
		if ok {
			alerts = append(alerts, alert)
		}
	}
	return alerts
}
