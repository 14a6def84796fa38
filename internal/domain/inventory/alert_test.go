package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockalert-api/internal/domain/entity"
	"github.com/jhoicas/stockalert-api/internal/domain/inventory"
)

func snapshot(qty, reserved int64) entity.InventorySnapshot {
	return entity.InventorySnapshot{
		Level:     entity.InventoryLevel{ProductID: "p1", WarehouseID: "w1", Quantity: qty, ReservedQuantity: reserved},
		Product:   entity.Product{ID: "p1", SKU: "SKU-1", Name: "Router", Category: "Electronics", Active: true},
		Warehouse: entity.Warehouse{ID: "w1", Name: "Central", Active: true},
	}
}

func TestBuildAlert_StockIgualAlUmbralCalifica(t *testing.T) {
	alert, ok := inventory.BuildAlert(snapshot(10, 0), inventory.AlertInput{Threshold: 10, Supplier: inventory.NoSupplier()})

	require.True(t, ok, "la comparación es <=, el stock igual al umbral genera alerta")
	assert.Equal(t, int64(10), alert.AvailableStock)
	assert.Nil(t, alert.DaysUntilStockout)
}

func TestBuildAlert_SobreElUmbralNoCalifica(t *testing.T) {
	_, ok := inventory.BuildAlert(snapshot(3, 0), inventory.AlertInput{Threshold: 1})
	assert.False(t, ok)
}

func TestBuildAlert_StockNegativoSeConserva(t *testing.T) {
	alert, ok := inventory.BuildAlert(snapshot(2, 5), inventory.AlertInput{
		Threshold: 10,
		Velocity:  inventory.SalesVelocity{TotalQuantity: 4, DaysWithSales: 2},
	})

	require.True(t, ok)
	assert.Equal(t, int64(-3), alert.AvailableStock, "no se recorta a cero")
	assert.Equal(t, int64(2), alert.TotalQuantity)
	assert.Equal(t, int64(5), alert.ReservedQuantity)
	require.NotNil(t, alert.DaysUntilStockout)
	assert.Equal(t, int64(-1), *alert.DaysUntilStockout)
}

func TestSupplierInfo_RespaldoYContactosVacios(t *testing.T) {
	none := inventory.NoSupplier()
	assert.False(t, none.Assigned)
	assert.Equal(t, "No supplier assigned", none.Name)
	assert.Equal(t, "N/A", none.ContactEmail)
	assert.Equal(t, "N/A", none.ContactPhone)

	info := inventory.SupplierInfoFromLink(entity.ProductSupplier{
		ProductID: "p1",
		Supplier:  entity.Supplier{ID: "s1", Name: "Acme", ContactEmail: "ventas@acme.co"},
		IsPrimary: true,
	})
	assert.True(t, info.Assigned)
	assert.Equal(t, "ventas@acme.co", info.ContactEmail)
	assert.Equal(t, "N/A", info.ContactPhone)
}
