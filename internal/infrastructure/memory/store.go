package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stockalert-api/internal/domain/entity"
	"github.com/jhoicas/stockalert-api/internal/domain/repository"
)

// Store almacén en memoria que implementa todos los puertos de lectura del motor
// de alertas. Se usa en tests y con STORE_DRIVER=memory; los ids son UUID.
type Store struct {
	mu         sync.RWMutex
	companies  map[string]entity.Company
	warehouses []entity.Warehouse
	products   map[string]entity.Product
	levels     []entity.InventoryLevel
	sales      []entity.SalesActivity
	links      []entity.ProductSupplier
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		companies: make(map[string]entity.Company),
		products:  make(map[string]entity.Product),
	}
}

// Verificar cumplimiento de interfaces
var (
	_ repository.IDValidator              = (*Store)(nil)
	_ repository.CompanyRepository        = (*Store)(nil)
	_ repository.WarehouseRepository      = (*Store)(nil)
	_ repository.InventoryLevelRepository = (*Store)(nil)
	_ repository.SalesActivityRepository  = (*Store)(nil)
	_ repository.SupplierRepository       = (*Store)(nil)
)

// ── Carga ─────────────────────────────────────────────────────────────────────

// AddCompany registra o reemplaza una empresa.
func (s *Store) AddCompany(c entity.Company) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.companies[c.ID] = c
}

// AddWarehouse agrega una bodega.
func (s *Store) AddWarehouse(w entity.Warehouse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.warehouses = append(s.warehouses, w)
}

// AddProduct registra o reemplaza un producto.
func (s *Store) AddProduct(p entity.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[p.ID] = p
}

// AddInventoryLevel agrega una fila de inventario. No impide pares repetidos.
func (s *Store) AddInventoryLevel(l entity.InventoryLevel) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.levels = append(s.levels, l)
}

// AddSale agrega un evento de venta.
func (s *Store) AddSale(sale entity.SalesActivity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sales = append(s.sales, sale)
}

// AddProductSupplier agrega un vínculo producto-proveedor.
func (s *Store) AddProductSupplier(link entity.ProductSupplier) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.links = append(s.links, link)
}

// ── Puertos ───────────────────────────────────────────────────────────────────

// ValidID acepta UUID.
func (s *Store) ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// GetByID devuelve una copia de la empresa o nil si no existe.
func (s *Store) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.companies[id]
	if !ok {
		return nil, nil
	}
	if c.LowStockThresholds != nil {
		thresholds := make(map[string]int, len(c.LowStockThresholds))
		for k, v := range c.LowStockThresholds {
			thresholds[k] = v
		}
		c.LowStockThresholds = thresholds
	}
	return &c, nil
}

// ListActiveByCompany bodegas activas de la empresa en orden de alta.
func (s *Store) ListActiveByCompany(ctx context.Context, companyID string) ([]*entity.Warehouse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.Warehouse, 0)
	for i := range s.warehouses {
		w := s.warehouses[i]
		if w.CompanyID == companyID && w.Active {
			out = append(out, &w)
		}
	}
	return out, nil
}

// FindSnapshotsByPairs une cada fila de inventario de los pares pedidos con su producto
// y su bodega. Filas sin producto o bodega conocidos se omiten, como en un INNER JOIN.
func (s *Store) FindSnapshotsByPairs(ctx context.Context, pairs []entity.PairKey) ([]entity.InventorySnapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	want := make(map[entity.PairKey]struct{}, len(pairs))
	for _, p := range pairs {
		want[p] = struct{}{}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	warehouses := make(map[string]entity.Warehouse, len(s.warehouses))
	for _, w := range s.warehouses {
		warehouses[w.ID] = w
	}

	out := make([]entity.InventorySnapshot, 0, len(pairs))
	for _, l := range s.levels {
		if _, ok := want[l.Key()]; !ok {
			continue
		}
		p, okP := s.products[l.ProductID]
		w, okW := warehouses[l.WarehouseID]
		if !okP || !okW {
			continue
		}
		out = append(out, entity.InventorySnapshot{Level: l, Product: p, Warehouse: w})
	}
	return out, nil
}

// AggregateByPair suma unidades y toma la última fecha de venta por par dentro de
// [startDate, endDate]. El resultado sale ordenado por producto y bodega.
func (s *Store) AggregateByPair(
	ctx context.Context,
	warehouseIDs []string,
	startDate, endDate time.Time,
) ([]repository.RecentSalesResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	byPair := make(map[entity.PairKey]*repository.RecentSalesResult)
	s.eachSale(warehouseIDs, startDate, endDate, func(sale entity.SalesActivity) {
		r, ok := byPair[sale.Key()]
		if !ok {
			r = &repository.RecentSalesResult{ProductID: sale.ProductID, WarehouseID: sale.WarehouseID}
			byPair[sale.Key()] = r
		}
		r.TotalQuantitySold += sale.QuantitySold
		if sale.SaleDate.After(r.LastSaleDate) {
			r.LastSaleDate = sale.SaleDate
		}
	})

	out := make([]repository.RecentSalesResult, 0, len(byPair))
	for _, r := range byPair {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool {
		return pairLess(out[i].ProductID, out[i].WarehouseID, out[j].ProductID, out[j].WarehouseID)
	})
	return out, nil
}

// AggregateDailyVelocity suma unidades y cuenta días calendario UTC distintos con ventas.
func (s *Store) AggregateDailyVelocity(
	ctx context.Context,
	warehouseIDs []string,
	startDate, endDate time.Time,
) ([]repository.SalesVelocityResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	type acc struct {
		total int64
		days  map[string]struct{}
	}
	byPair := make(map[entity.PairKey]*acc)
	s.eachSale(warehouseIDs, startDate, endDate, func(sale entity.SalesActivity) {
		a, ok := byPair[sale.Key()]
		if !ok {
			a = &acc{days: make(map[string]struct{})}
			byPair[sale.Key()] = a
		}
		a.total += sale.QuantitySold
		a.days[sale.SaleDate.UTC().Format(time.DateOnly)] = struct{}{}
	})

	out := make([]repository.SalesVelocityResult, 0, len(byPair))
	for key, a := range byPair {
		out = append(out, repository.SalesVelocityResult{
			ProductID:         key.ProductID,
			WarehouseID:       key.WarehouseID,
			TotalQuantitySold: a.total,
			DaysWithSales:     len(a.days),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return pairLess(out[i].ProductID, out[i].WarehouseID, out[j].ProductID, out[j].WarehouseID)
	})
	return out, nil
}

// FindPrimaryByProducts vínculos primarios ordenados por producto y proveedor.
func (s *Store) FindPrimaryByProducts(ctx context.Context, productIDs []string) ([]entity.ProductSupplier, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	want := make(map[string]struct{}, len(productIDs))
	for _, id := range productIDs {
		want[id] = struct{}{}
	}

	s.mu.RLock()
	out := make([]entity.ProductSupplier, 0)
	for _, l := range s.links {
		if _, ok := want[l.ProductID]; ok && l.IsPrimary {
			out = append(out, l)
		}
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return pairLess(out[i].ProductID, out[i].Supplier.ID, out[j].ProductID, out[j].Supplier.ID)
	})
	return out, nil
}

// eachSale recorre las ventas de las bodegas dadas con fecha en [start, end].
func (s *Store) eachSale(warehouseIDs []string, start, end time.Time, fn func(entity.SalesActivity)) {
	scope := make(map[string]struct{}, len(warehouseIDs))
	for _, id := range warehouseIDs {
		scope[id] = struct{}{}
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sale := range s.sales {
		if _, ok := scope[sale.WarehouseID]; !ok {
			continue
		}
		if sale.SaleDate.Before(start) || sale.SaleDate.After(end) {
			continue
		}
		fn(sale)
	}
}

func pairLess(a1, a2, b1, b2 string) bool {
	if a1 != b1 {
		return a1 < b1
	}
	return a2 < b2
}
