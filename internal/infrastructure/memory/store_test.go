package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockalert-api/internal/domain/entity"
)

var base = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func TestStore_AggregateByPair_VentanaInclusiva(t *testing.T) {
	s := NewStore()
	start, end := base.AddDate(0, 0, -30), base
	s.AddSale(entity.SalesActivity{ProductID: "p1", WarehouseID: "w1", QuantitySold: 2, SaleDate: start})
	s.AddSale(entity.SalesActivity{ProductID: "p1", WarehouseID: "w1", QuantitySold: 3, SaleDate: end})
	s.AddSale(entity.SalesActivity{ProductID: "p1", WarehouseID: "w1", QuantitySold: 100, SaleDate: start.Add(-time.Second)})
	s.AddSale(entity.SalesActivity{ProductID: "p1", WarehouseID: "w9", QuantitySold: 7, SaleDate: end})

	rows, err := s.AggregateByPair(context.Background(), []string{"w1"}, start, end)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(5), rows[0].TotalQuantitySold)
	assert.Equal(t, end, rows[0].LastSaleDate)
}

func TestStore_AggregateDailyVelocity_DiasDistintosUTC(t *testing.T) {
	s := NewStore()
	bogota := time.FixedZone("COT", -5*3600)
	day := time.Date(2026, 3, 8, 10, 0, 0, 0, time.UTC)
	s.AddSale(entity.SalesActivity{ProductID: "p1", WarehouseID: "w1", QuantitySold: 4, SaleDate: day})
	s.AddSale(entity.SalesActivity{ProductID: "p1", WarehouseID: "w1", QuantitySold: 1, SaleDate: day.Add(2 * time.Hour)})
	// 21:00 en Bogotá del 8 es el 9 en UTC
	s.AddSale(entity.SalesActivity{ProductID: "p1", WarehouseID: "w1", QuantitySold: 5, SaleDate: time.Date(2026, 3, 8, 21, 0, 0, 0, bogota)})

	rows, err := s.AggregateDailyVelocity(context.Background(), []string{"w1"}, base.AddDate(0, 0, -7), base)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(10), rows[0].TotalQuantitySold)
	assert.Equal(t, 2, rows[0].DaysWithSales)
}

func TestStore_FindSnapshotsByPairs_SoloParesPedidos(t *testing.T) {
	s := NewStore()
	s.AddWarehouse(entity.Warehouse{ID: "w1", Name: "Central", Active: true})
	s.AddProduct(entity.Product{ID: "p1", Name: "Router"})
	s.AddProduct(entity.Product{ID: "p2", Name: "Switch"})
	s.AddInventoryLevel(entity.InventoryLevel{ProductID: "p1", WarehouseID: "w1", Quantity: 4})
	s.AddInventoryLevel(entity.InventoryLevel{ProductID: "p2", WarehouseID: "w1", Quantity: 9})
	s.AddInventoryLevel(entity.InventoryLevel{ProductID: "p3", WarehouseID: "w1", Quantity: 1})

	snaps, err := s.FindSnapshotsByPairs(context.Background(), []entity.PairKey{
		{ProductID: "p1", WarehouseID: "w1"},
		{ProductID: "p3", WarehouseID: "w1"},
	})
	require.NoError(t, err)
	require.Len(t, snaps, 1, "p3 no tiene producto registrado")
	assert.Equal(t, "Router", snaps[0].Product.Name)
	assert.Equal(t, "Central", snaps[0].Warehouse.Name)
}

func TestStore_FindPrimaryByProducts_OrdenYFiltro(t *testing.T) {
	s := NewStore()
	s.AddProductSupplier(entity.ProductSupplier{ProductID: "p1", Supplier: entity.Supplier{ID: "s2"}, IsPrimary: true})
	s.AddProductSupplier(entity.ProductSupplier{ProductID: "p1", Supplier: entity.Supplier{ID: "s1"}, IsPrimary: true})
	s.AddProductSupplier(entity.ProductSupplier{ProductID: "p1", Supplier: entity.Supplier{ID: "s0"}, IsPrimary: false})
	s.AddProductSupplier(entity.ProductSupplier{ProductID: "p2", Supplier: entity.Supplier{ID: "s3"}, IsPrimary: true})

	links, err := s.FindPrimaryByProducts(context.Background(), []string{"p1"})
	require.NoError(t, err)
	require.Len(t, links, 2)
	assert.Equal(t, "s1", links[0].Supplier.ID)
	assert.Equal(t, "s2", links[1].Supplier.ID)
}

func TestStore_GetByID_NoExiste(t *testing.T) {
	s := NewStore()
	c, err := s.GetByID(context.Background(), "x")
	assert.NoError(t, err)
	assert.Nil(t, c)
}

func TestStore_ValidID(t *testing.T) {
	s := NewStore()
	assert.True(t, s.ValidID("0b6f2d3e-6a55-4a8e-9a61-0c3a7f1e2d01"))
	assert.False(t, s.ValidID("507f1f77bcf86cd799439011"))
}
